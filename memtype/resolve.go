package memtype

import "github.com/vkngwrapper/core/v2/core1_0"

// ResolveSingle returns the lowest memory type index that is allowed by memoryTypeBits and whose
// property flags include every flag in requiredFlags. Extra flags on the memory type are acceptable.
// If no memory type qualifies, NoMemoryType is returned.
func (t *Table) ResolveSingle(memoryTypeBits CompatibilityBits, requiredFlags core1_0.MemoryPropertyFlags) int {
	for memTypeIndex := 0; memTypeIndex < len(t.memoryTypes); memTypeIndex++ {
		if !memoryTypeBits.Allows(memTypeIndex) {
			// This memory type is banned by the bitmask
			continue
		}

		flags := t.memoryTypes[memTypeIndex].PropertyFlags
		if requiredFlags&flags != requiredFlags {
			// This memory type is missing required flags
			continue
		}

		return memTypeIndex
	}

	return NoMemoryType
}

// Resolve tries each entry of preferences in order with ResolveSingle and returns the first memory type
// index found. NoMemoryType is returned if preferences is empty or none of its entries can be satisfied.
func (t *Table) Resolve(memoryTypeBits CompatibilityBits, preferences Preferences) int {
	if memoryTypeBits.Empty() {
		return NoMemoryType
	}

	for _, requiredFlags := range preferences {
		memTypeIndex := t.ResolveSingle(memoryTypeBits, requiredFlags)
		if memTypeIndex != NoMemoryType {
			return memTypeIndex
		}
	}

	return NoMemoryType
}
