package device

import "github.com/vkngwrapper/core/v2/core1_0"

//go:generate mockgen -source interfaces.go -destination ./mocks/mocks.go -package mock_device

// PhysicalDevice is the subset of core1_0.PhysicalDevice a Device reads while it is initialized
type PhysicalDevice interface {
	Properties() (*core1_0.PhysicalDeviceProperties, error)
	MemoryProperties() *core1_0.PhysicalDeviceMemoryProperties
	QueueFamilyProperties() []*core1_0.QueueFamilyProperties
}

// LogicalDevice is the subset of core1_0.Device a Device uses to retrieve its queues
type LogicalDevice interface {
	GetQueue(queueFamilyIndex int, queueIndex int) core1_0.Queue
}
