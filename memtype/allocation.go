package memtype

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/compute/memutils"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// RequirementsSource is anything the driver can report memory requirements for. Both core1_0.Buffer and
// core1_0.Image satisfy it.
type RequirementsSource interface {
	MemoryRequirements() *core1_0.MemoryRequirements
}

// AllocationParameters is the placement decided for a single resource: how many bytes it needs and which
// memory type they should come from
type AllocationParameters struct {
	Size            int
	MemoryTypeIndex int
}

// Found reports whether a memory type was chosen
func (p AllocationParameters) Found() bool {
	return p.MemoryTypeIndex != NoMemoryType
}

// Check converts an unplaceable resource into core1_0.VKErrorOutOfDeviceMemory and an error wrapping
// memutils.ErrNoCompatibleMemoryType
func (p AllocationParameters) Check() (common.VkResult, error) {
	if !p.Found() {
		return core1_0.VKErrorOutOfDeviceMemory, errors.Wrapf(memutils.ErrNoCompatibleMemoryType,
			"a resource of size %d cannot be placed in any memory type of this device", p.Size)
	}

	return core1_0.VKSuccess, nil
}

// SelectMemoryFor queries the memory requirements of source and resolves them against preferences.
// The requirements are read from the driver on every call.
func (t *Table) SelectMemoryFor(source RequirementsSource, preferences Preferences) AllocationParameters {
	memReqs := source.MemoryRequirements()

	return AllocationParameters{
		Size:            memReqs.Size,
		MemoryTypeIndex: t.Resolve(CompatibilityBits(memReqs.MemoryTypeBits), preferences),
	}
}
