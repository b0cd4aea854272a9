package device

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"golang.org/x/exp/slog"
)

const (
	queuePriority float32 = 1.0
)

// Create creates a logical device on physicalDevice with queues from its first compute queue family,
// then wraps it in a Device that owns it. Device.Destroy will destroy the logical device.
//
// logger - The logger to write diagnostic output to, or nil to use slog.Default()
//
// physicalDevice - The PhysicalDevice to create the logical device on
//
// options - Optional parameters: it is valid to leave all the fields blank
func Create(logger *slog.Logger, physicalDevice core1_0.PhysicalDevice, options CreateOptions) (*Device, common.VkResult, error) {
	if options.MaxQueues < 0 {
		return nil, core1_0.VKErrorUnknown, errors.Newf("CreateOptions.MaxQueues must not be negative, but was %d", options.MaxQueues)
	}

	queueFamilies := physicalDevice.QueueFamilyProperties()
	familyIndex, err := FindComputeQueueFamily(queueFamilies)
	if err != nil {
		return nil, core1_0.VKErrorFeatureNotPresent, err
	}

	queueCount := options.queueCount(int(queueFamilies[familyIndex].QueueCount))
	priorities := make([]float32, queueCount)
	for i := range priorities {
		priorities[i] = queuePriority
	}

	logicalDevice, res, err := physicalDevice.CreateDevice(nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos: []core1_0.DeviceQueueCreateInfo{
			{
				QueueFamilyIndex: familyIndex,
				QueuePriorities:  priorities,
			},
		},
	})
	if err != nil {
		return nil, res, err
	}

	device, err := New(logger, physicalDevice, logicalDevice, options)
	if err != nil {
		logicalDevice.Destroy(nil)
		return nil, core1_0.VKErrorUnknown, err
	}
	device.ownedDevice = logicalDevice

	return device, res, nil
}
