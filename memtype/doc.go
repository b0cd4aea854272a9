// Package memtype resolves which of a device's memory types a buffer or image should be placed in.
//
// A Table is a read-only snapshot of the memory types and heaps reported by a physical device. Given
// the compatibility bits a driver reports for a resource and an ordered list of acceptable property
// flag combinations, the Table picks the first memory type, in ascending index order, that the resource
// may live in and that carries every flag of the most preferred combination that can be satisfied.
//
// Resolution never fails with an error: when nothing matches, NoMemoryType is returned and it is up to
// the caller to report the resource as impossible to place. AllocationParameters.Check performs that
// conversion for callers that want an error.
//
// A Table is never modified after NewTable returns, so it may be shared between goroutines freely.
package memtype
