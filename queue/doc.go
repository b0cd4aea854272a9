// Package queue distributes a device's execution queues between independent units of work.
//
// A device creates its queues once, wraps each of them in a Wrapper, and gives the resulting pool to a
// RoundRobin. Each call to RoundRobin.Allocate returns the next queue in pool order, wrapping back to
// the first queue after the last.
package queue
