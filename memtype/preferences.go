package memtype

import (
	"strings"

	"github.com/vkngwrapper/core/v2/core1_0"
)

// Preferences is an ordered list of acceptable memory property flag combinations, most preferred first
type Preferences []core1_0.MemoryPropertyFlags

// HostSharedPreferences returns the preferences used for resources the host and the device both access.
// Cached memory is preferred for fast host reads, but coherent-only memory is still a correct placement.
func HostSharedPreferences() Preferences {
	return Preferences{
		core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCached | core1_0.MemoryPropertyHostCoherent,
		core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent,
	}
}

// DeviceLocalPreferences returns the preferences used for resources only the device accesses. There is
// no fallback: a compute device without device-local memory for the resource cannot host it.
func DeviceLocalPreferences() Preferences {
	return Preferences{
		core1_0.MemoryPropertyDeviceLocal,
	}
}

func (p Preferences) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, flags := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(flags.String())
	}
	sb.WriteString("]")

	return sb.String()
}
