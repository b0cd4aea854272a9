package device

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/compute/memtype"
	"github.com/vkngwrapper/compute/memutils"
	"github.com/vkngwrapper/compute/queue"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

const (
	// maxSamplers is the number of distinct samplers that can be expressed in OpenCL 1.2
	maxSamplers int = 20
	// globalMemoryAllocMultiplier bounds the reported global memory size to a multiple of the
	// largest single allocation
	globalMemoryAllocMultiplier int = 4
	bitsPerByte                 int = 8
)

// Device owns the device-wide state that memory placement and queue allocation decisions are made
// against: a snapshot of the physical device's properties, its memory type table, and the pool of
// compute queues.
//
// Memory placement methods only read state fixed at creation and may be called from any goroutine.
// AllocateQueue mutates the queue cursor; see CreateExternallySynchronized.
type Device struct {
	logger      *slog.Logger
	createFlags CreateFlags

	physicalDevice PhysicalDevice
	logicalDevice  LogicalDevice
	// Only set when the logical device was created by Create and must be destroyed with this Device
	ownedDevice core1_0.Device

	properties       *core1_0.PhysicalDeviceProperties
	memoryTypes      *memtype.Table
	queueFamilyIndex int
	queues           *queue.RoundRobin
	memBaseAddrAlign int
}

// FindComputeQueueFamily returns the index of the first queue family that supports compute work and
// has at least one queue
func FindComputeQueueFamily(queueFamilies []*core1_0.QueueFamilyProperties) (int, error) {
	for familyIndex, family := range queueFamilies {
		if family == nil {
			continue
		}

		if family.QueueFlags&core1_0.QueueCompute != 0 && family.QueueCount > 0 {
			return familyIndex, nil
		}
	}

	return -1, errors.Wrapf(memutils.ErrNoComputeQueue, "none of the %d queue families support compute", len(queueFamilies))
}

// New creates a Device over a logical device that was created elsewhere. The logical device must have
// been created with at least as many queues in the compute queue family (see FindComputeQueueFamily)
// as CreateOptions.MaxQueues permits, which is what Create requests.
//
// logger - The logger to write diagnostic output to, or nil to use slog.Default()
//
// physicalDevice - The PhysicalDevice logicalDevice was created from
//
// logicalDevice - The Device queues will be retrieved from
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, physicalDevice PhysicalDevice, logicalDevice LogicalDevice, options CreateOptions) (*Device, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("Device::New")

	if options.MaxQueues < 0 {
		return nil, errors.Newf("CreateOptions.MaxQueues must not be negative, but was %d", options.MaxQueues)
	}

	device := &Device{
		logger:         logger,
		createFlags:    options.Flags,
		physicalDevice: physicalDevice,
		logicalDevice:  logicalDevice,
	}

	var err error
	device.properties, err = physicalDevice.Properties()
	if err != nil {
		return nil, err
	}
	if device.properties == nil || device.properties.Limits == nil {
		return nil, errors.New("physical device did not report its limits")
	}

	device.memoryTypes, err = memtype.NewTable(physicalDevice.MemoryProperties())
	if err != nil {
		return nil, err
	}

	device.memBaseAddrAlign, err = calculateMemBaseAddrAlign(device.properties.Limits)
	if err != nil {
		return nil, err
	}
	memutils.DebugCheckPow2(device.memBaseAddrAlign, "memBaseAddrAlign")

	queueFamilies := physicalDevice.QueueFamilyProperties()
	device.queueFamilyIndex, err = FindComputeQueueFamily(queueFamilies)
	if err != nil {
		return nil, err
	}

	queueCount := options.queueCount(int(queueFamilies[device.queueFamilyIndex].QueueCount))
	if queueCount == 0 {
		return nil, errors.Wrap(memutils.ErrNoComputeQueue, "CreateOptions.MaxQueues permits no queues")
	}

	pool := make([]*queue.Wrapper, 0, queueCount)
	for queueIndex := 0; queueIndex < queueCount; queueIndex++ {
		vkQueue := logicalDevice.GetQueue(device.queueFamilyIndex, queueIndex)
		pool = append(pool, queue.NewWrapper(vkQueue, device.queueFamilyIndex, queueIndex))
	}
	device.queues = queue.NewRoundRobin(pool, options.Flags&CreateExternallySynchronized == 0)

	logger.Debug("    Created Device",
		slog.String("Name", device.Name()),
		slog.String("Type", device.Type().String()),
		slog.Int("MemoryTypeCount", device.memoryTypes.MemoryTypeCount()),
		slog.Int("MemoryHeapCount", device.memoryTypes.MemoryHeapCount()),
		slog.Int("QueueFamilyIndex", device.queueFamilyIndex),
		slog.Int("QueueCount", queueCount),
		slog.String("Flags", options.Flags.String()),
	)

	return device, nil
}

func calculateMemBaseAddrAlign(limits *core1_0.PhysicalDeviceLimits) (int, error) {
	storageAlign := int(limits.MinStorageBufferOffsetAlignment)
	err := memutils.CheckPow2(storageAlign, "device minStorageBufferOffsetAlignment")
	if err != nil {
		return 0, err
	}

	uniformAlign := int(limits.MinUniformBufferOffsetAlignment)
	err = memutils.CheckPow2(uniformAlign, "device minUniformBufferOffsetAlignment")
	if err != nil {
		return 0, err
	}

	align := memutils.Max(memutils.Max(storageAlign, uniformAlign), 1)
	return align * bitsPerByte, nil
}

// MemoryTypes returns the memory type table of this device
func (d *Device) MemoryTypes() *memtype.Table {
	return d.memoryTypes
}

// Properties returns the properties snapshot taken when this device was created
func (d *Device) Properties() *core1_0.PhysicalDeviceProperties {
	return d.properties
}

// SelectMemoryForBuffer decides where a buffer the host and the device share should be placed. Host
// cached memory is preferred, host coherent memory is accepted. The result must be checked with
// AllocationParameters.Found or AllocationParameters.Check before it is used.
func (d *Device) SelectMemoryForBuffer(buffer memtype.RequirementsSource) memtype.AllocationParameters {
	d.logger.Debug("Device::SelectMemoryForBuffer")

	return d.selectMemoryFor(buffer, memtype.HostSharedPreferences())
}

// SelectMemoryForImage decides where an image only the device accesses should be placed. Only device
// local memory is accepted.
func (d *Device) SelectMemoryForImage(image memtype.RequirementsSource) memtype.AllocationParameters {
	d.logger.Debug("Device::SelectMemoryForImage")

	return d.selectMemoryFor(image, memtype.DeviceLocalPreferences())
}

func (d *Device) selectMemoryFor(source memtype.RequirementsSource, preferences memtype.Preferences) memtype.AllocationParameters {
	params := d.memoryTypes.SelectMemoryFor(source, preferences)
	if !params.Found() {
		d.logger.Debug("    No compatible memory type",
			slog.Int("Size", params.Size),
			slog.String("Preferences", preferences.String()),
		)
	}

	return params
}

// AllocateQueue returns the next queue in round-robin order
func (d *Device) AllocateQueue() *queue.Wrapper {
	return d.queues.Allocate()
}

// QueueCount returns the number of queues AllocateQueue rotates through
func (d *Device) QueueCount() int {
	return d.queues.Len()
}

// QueueFamilyIndex returns the index of the queue family every queue of this device belongs to
func (d *Device) QueueFamilyIndex() int {
	return d.queueFamilyIndex
}

// ActualMemorySize returns the size of the smallest memory heap, which is the most memory a
// consumer can count on reaching through any memory type
func (d *Device) ActualMemorySize() int {
	return d.memoryTypes.SmallestHeapSize()
}

// MaxAllocSize returns the largest single allocation consumers should attempt
func (d *Device) MaxAllocSize() int {
	return memutils.Min(int(d.properties.Limits.MaxStorageBufferRange), d.ActualMemorySize())
}

// MemorySize returns the global memory size reported to consumers
func (d *Device) MemorySize() int {
	maxAlloc := d.MaxAllocSize()
	actual := d.ActualMemorySize()

	if maxAlloc > actual/globalMemoryAllocMultiplier {
		return actual
	}
	return maxAlloc * globalMemoryAllocMultiplier
}

// MemBaseAddrAlign returns the alignment, in bits, of the base address of any buffer
func (d *Device) MemBaseAddrAlign() int {
	return d.memBaseAddrAlign
}

// MaxSamplers returns the number of samplers a single kernel may use
func (d *Device) MaxSamplers() int {
	return memutils.Min(maxSamplers, int(d.properties.Limits.MaxPerStageDescriptorSamplers))
}

// Name returns the driver name the physical device reports
func (d *Device) Name() string {
	return d.properties.DriverName
}

// VendorID returns the PCI vendor ID of the physical device
func (d *Device) VendorID() uint32 {
	return uint32(d.properties.VendorID)
}

// Type maps the Vulkan physical device type to the kind of compute device it is exposed as
func (d *Device) Type() DeviceType {
	switch d.properties.DriverType {
	case core1_0.PhysicalDeviceTypeIntegratedGPU,
		core1_0.PhysicalDeviceTypeDiscreteGPU,
		core1_0.PhysicalDeviceTypeVirtualGPU:
		return DeviceTypeGPU
	case core1_0.PhysicalDeviceTypeCPU:
		return DeviceTypeCPU
	}

	return DeviceTypeCustom
}

// HasHostUnifiedMemory reports whether the device and the host share physical memory
func (d *Device) HasHostUnifiedMemory() bool {
	switch d.properties.DriverType {
	case core1_0.PhysicalDeviceTypeCPU,
		core1_0.PhysicalDeviceTypeIntegratedGPU,
		core1_0.PhysicalDeviceTypeVirtualGPU:
		return true
	}

	return false
}

// BuildStatsString returns a JSON document describing this device, its queues, and its memory types
func (d *Device) BuildStatsString() string {
	writer := jwriter.NewWriter()

	obj := writer.Object()
	obj.Name("Name").String(d.Name())
	obj.Name("VendorID").Int(int(d.VendorID()))
	obj.Name("Type").String(d.Type().String())
	obj.Name("QueueFamilyIndex").Int(d.queueFamilyIndex)
	obj.Name("QueueCount").Int(d.queues.Len())
	obj.Name("MemBaseAddrAlign").Int(d.memBaseAddrAlign)
	obj.Name("MaxAllocSize").Int(d.MaxAllocSize())
	obj.Name("MemorySize").Int(d.MemorySize())
	d.memoryTypes.BuildStatsString(obj.Name("Memory"))
	obj.End()

	return string(writer.Bytes())
}

// Destroy destroys the logical device if it was created by Create. Devices created with New leave the
// logical device to its creator.
func (d *Device) Destroy() {
	d.logger.Debug("Device::Destroy")

	if d.ownedDevice != nil {
		d.ownedDevice.Destroy(nil)
		d.ownedDevice = nil
	}
}
