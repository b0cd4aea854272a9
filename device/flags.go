package device

import (
	"github.com/vkngwrapper/core/v2/common"
)

// CreateFlags indicate specific device behaviors to activate or deactivate
type CreateFlags int32

var createFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	createFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return createFlagsMapping.FlagsToString(f)
}

const (
	// CreateExternallySynchronized ensures that the queue allocator of this device will not be
	// synchronized internally. The consumer must guarantee AllocateQueue is called from only one
	// goroutine at a time or is synchronized by some other mechanism.
	CreateExternallySynchronized CreateFlags = 1 << iota
)

func init() {
	CreateExternallySynchronized.Register("CreateExternallySynchronized")
}

// DeviceType is the kind of compute device reported to consumers
type DeviceType int32

const (
	// DeviceTypeCustom is reported for devices that are neither a GPU nor a CPU
	DeviceTypeCustom DeviceType = iota
	// DeviceTypeGPU is reported for integrated, discrete, and virtual GPUs
	DeviceTypeGPU
	// DeviceTypeCPU is reported for software implementations running on the host
	DeviceTypeCPU
)

var deviceTypeMapping = make(map[DeviceType]string)

func (t DeviceType) String() string {
	return deviceTypeMapping[t]
}

func init() {
	deviceTypeMapping[DeviceTypeCustom] = "DeviceTypeCustom"
	deviceTypeMapping[DeviceTypeGPU] = "DeviceTypeGPU"
	deviceTypeMapping[DeviceTypeCPU] = "DeviceTypeCPU"
}
