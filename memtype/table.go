package memtype

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/compute/memutils"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// NoMemoryType is returned by resolution methods when no memory type satisfies the request
const NoMemoryType int = -1

// Table is an immutable snapshot of a physical device's memory types and heaps
type Table struct {
	memoryTypes []core1_0.MemoryType
	memoryHeaps []core1_0.MemoryHeap
}

// NewTable copies the memory types and heaps out of the provided memory properties. An error wrapping
// memutils.ErrInvalidMemoryProperties is returned if the properties could not have come from a
// conformant driver.
func NewTable(memoryProperties *core1_0.PhysicalDeviceMemoryProperties) (*Table, error) {
	if memoryProperties == nil {
		return nil, errors.Wrap(memutils.ErrInvalidMemoryProperties, "memory properties were nil")
	}

	table := &Table{
		memoryTypes: make([]core1_0.MemoryType, len(memoryProperties.MemoryTypes)),
		memoryHeaps: make([]core1_0.MemoryHeap, len(memoryProperties.MemoryHeaps)),
	}
	copy(table.memoryTypes, memoryProperties.MemoryTypes)
	copy(table.memoryHeaps, memoryProperties.MemoryHeaps)

	err := table.Validate()
	if err != nil {
		return nil, err
	}

	return table, nil
}

// Validate checks the memory type and heap counts against the Vulkan limits, and that every memory
// type refers to an existing heap
func (t *Table) Validate() error {
	if len(t.memoryTypes) > common.MaxMemoryTypes {
		return errors.Wrapf(memutils.ErrInvalidMemoryProperties, "%d memory types were reported, but at most %d are permitted",
			len(t.memoryTypes), common.MaxMemoryTypes)
	}

	if len(t.memoryHeaps) > common.MaxMemoryHeaps {
		return errors.Wrapf(memutils.ErrInvalidMemoryProperties, "%d memory heaps were reported, but at most %d are permitted",
			len(t.memoryHeaps), common.MaxMemoryHeaps)
	}

	for memoryTypeIndex, memoryType := range t.memoryTypes {
		if memoryType.HeapIndex < 0 || memoryType.HeapIndex >= len(t.memoryHeaps) {
			return errors.Wrapf(memutils.ErrInvalidMemoryProperties, "memory type %d refers to heap %d, but there are only %d heaps",
				memoryTypeIndex, memoryType.HeapIndex, len(t.memoryHeaps))
		}
	}

	return nil
}

// MemoryTypeCount returns the number of memory types in this table
func (t *Table) MemoryTypeCount() int {
	return len(t.memoryTypes)
}

// MemoryHeapCount returns the number of memory heaps in this table
func (t *Table) MemoryHeapCount() int {
	return len(t.memoryHeaps)
}

// MemoryTypeProperties returns the memory type at memoryTypeIndex, and panics if it is out of range
func (t *Table) MemoryTypeProperties(memoryTypeIndex int) core1_0.MemoryType {
	t.checkMemoryTypeIndex(memoryTypeIndex)
	return t.memoryTypes[memoryTypeIndex]
}

// MemoryHeapProperties returns the memory heap at heapIndex, and panics if it is out of range
func (t *Table) MemoryHeapProperties(heapIndex int) core1_0.MemoryHeap {
	if heapIndex < 0 || heapIndex >= len(t.memoryHeaps) {
		panic(fmt.Sprintf("attempted to read heap %d from a table with %d heaps", heapIndex, len(t.memoryHeaps)))
	}
	return t.memoryHeaps[heapIndex]
}

// MemoryTypeIndexToHeapIndex returns the index of the heap the memory type at memoryTypeIndex draws from
func (t *Table) MemoryTypeIndexToHeapIndex(memoryTypeIndex int) int {
	t.checkMemoryTypeIndex(memoryTypeIndex)
	return t.memoryTypes[memoryTypeIndex].HeapIndex
}

// IsMemoryTypeHostNonCoherent reports whether the memory type is host visible without being host coherent
func (t *Table) IsMemoryTypeHostNonCoherent(memoryTypeIndex int) bool {
	flags := t.MemoryTypeProperties(memoryTypeIndex).PropertyFlags

	return flags&(core1_0.MemoryPropertyHostVisible|core1_0.MemoryPropertyHostCoherent) == core1_0.MemoryPropertyHostVisible
}

// GlobalMemoryTypeBits returns the CompatibilityBits allowing every memory type in this table
func (t *Table) GlobalMemoryTypeBits() CompatibilityBits {
	return AllMemoryTypes(len(t.memoryTypes))
}

// SmallestHeapSize returns the size in bytes of the smallest memory heap. It is the conservative
// estimate of how much memory any single memory type can reach. A table without heaps returns math.MaxInt.
func (t *Table) SmallestHeapSize() int {
	size := math.MaxInt
	for _, heap := range t.memoryHeaps {
		size = memutils.Min(size, heap.Size)
	}

	return size
}

func (t *Table) checkMemoryTypeIndex(memoryTypeIndex int) {
	if memoryTypeIndex < 0 || memoryTypeIndex >= len(t.memoryTypes) {
		panic(fmt.Sprintf("attempted to read memory type %d from a table with %d memory types", memoryTypeIndex, len(t.memoryTypes)))
	}
}
