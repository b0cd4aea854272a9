// Package device ties memory placement and queue allocation to a single Vulkan device.
//
// A Device is created once per physical device, either over a logical device the caller already owns
// (New) or by creating one with queues from the first compute-capable queue family (Create). Resource
// creation code asks it where buffers and images should live, and submission code asks it for the next
// queue to submit to.
package device
