package memtype

import (
	"math/bits"

	"github.com/vkngwrapper/core/v2/common"
)

// CompatibilityBits is the set of memory type indices a resource may be placed in, with bit k set
// when memory type k is a legal placement. It is the MemoryTypeBits field of core1_0.MemoryRequirements.
type CompatibilityBits uint32

// AllMemoryTypes returns the CompatibilityBits allowing every memory type of a table with
// memoryTypeCount entries
func AllMemoryTypes(memoryTypeCount int) CompatibilityBits {
	if memoryTypeCount >= common.MaxMemoryTypes {
		return ^CompatibilityBits(0)
	}
	if memoryTypeCount <= 0 {
		return 0
	}

	return CompatibilityBits(1)<<memoryTypeCount - 1
}

// Allows reports whether memory type memoryTypeIndex is a legal placement. Indices outside of the
// range Vulkan can express are never allowed.
func (b CompatibilityBits) Allows(memoryTypeIndex int) bool {
	if memoryTypeIndex < 0 || memoryTypeIndex >= common.MaxMemoryTypes {
		return false
	}

	return b&(1<<memoryTypeIndex) != 0
}

// Empty reports whether no memory type at all is allowed
func (b CompatibilityBits) Empty() bool {
	return b == 0
}

// Count returns the number of allowed memory types
func (b CompatibilityBits) Count() int {
	return bits.OnesCount32(uint32(b))
}
