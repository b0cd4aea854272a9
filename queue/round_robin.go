package queue

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/compute/internal/utils"
	"github.com/vkngwrapper/compute/memutils"
)

// RoundRobin hands out the queues of a fixed pool in order, starting over from the first queue
// after the last one has been handed out. It does not look at how busy a queue is.
//
// The rotation cursor is the only mutable state. When useMutex is false, callers must make sure
// Allocate is never called from two goroutines at once.
type RoundRobin struct {
	mutex  utils.OptionalMutex
	pool   []*Wrapper
	cursor int
}

var _ memutils.Validatable = &RoundRobin{}

// NewRoundRobin creates a RoundRobin over pool. The pool is copied and never changes afterward.
// An empty pool is a programming error and panics.
func NewRoundRobin(pool []*Wrapper, useMutex bool) *RoundRobin {
	if len(pool) == 0 {
		panic("attempted to create a queue RoundRobin with an empty queue pool")
	}

	queues := make([]*Wrapper, len(pool))
	copy(queues, pool)

	return &RoundRobin{
		mutex: utils.OptionalMutex{UseMutex: useMutex},
		pool:  queues,
	}
}

// Allocate returns the queue under the cursor and advances the cursor, wrapping to the start of the
// pool. It never fails.
func (r *RoundRobin) Allocate() *Wrapper {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	queue := r.pool[r.cursor]
	r.cursor++
	if r.cursor == len(r.pool) {
		r.cursor = 0
	}

	memutils.DebugValidate(r)

	return queue
}

// Len returns the number of queues in the pool
func (r *RoundRobin) Len() int {
	return len(r.pool)
}

// Queues returns the pool in rotation order
func (r *RoundRobin) Queues() []*Wrapper {
	queues := make([]*Wrapper, len(r.pool))
	copy(queues, r.pool)
	return queues
}

func (r *RoundRobin) Validate() error {
	if len(r.pool) == 0 {
		return errors.New("queue pool is empty")
	}

	if r.cursor < 0 || r.cursor >= len(r.pool) {
		return errors.Newf("queue cursor %d is outside of the pool, which has %d queues", r.cursor, len(r.pool))
	}

	for index, queue := range r.pool {
		if queue == nil {
			return errors.Newf("queue pool entry %d is nil", index)
		}
	}

	return nil
}
