package memutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// ErrNoCompatibleMemoryType is returned when none of the memory types a resource may be placed in
// carries the property flags the caller asked for. The memory type table of a device never changes,
// so this is not worth retrying.
var ErrNoCompatibleMemoryType error = errors.New("no compatible memory type")

// ErrInvalidMemoryProperties is returned when the memory properties reported by a physical device
// cannot describe a usable memory type table
var ErrInvalidMemoryProperties error = errors.New("invalid physical device memory properties")

// ErrNoComputeQueue is returned when a physical device does not expose any queue that can run
// compute work
var ErrNoComputeQueue error = errors.New("no compute queue available")
