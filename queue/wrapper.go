package queue

import "github.com/vkngwrapper/core/v2/core1_0"

// Wrapper is one execution queue of a device. Wrappers are created once when the device is
// initialized and live as long as the device; callers borrow them through RoundRobin.Allocate
// and must not hold onto them past the device's lifetime.
type Wrapper struct {
	queue       core1_0.Queue
	familyIndex int
	queueIndex  int
}

// NewWrapper wraps the queue at queueIndex of queue family familyIndex
func NewWrapper(queue core1_0.Queue, familyIndex, queueIndex int) *Wrapper {
	return &Wrapper{
		queue:       queue,
		familyIndex: familyIndex,
		queueIndex:  queueIndex,
	}
}

// Queue returns the underlying Vulkan queue work is submitted to
func (w *Wrapper) Queue() core1_0.Queue {
	return w.queue
}

// FamilyIndex returns the index of the queue family this queue was retrieved from
func (w *Wrapper) FamilyIndex() int {
	return w.familyIndex
}

// Index returns the index of this queue within its family
func (w *Wrapper) Index() int {
	return w.queueIndex
}
