package memtype

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
)

var hostCachedCoherent = core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCached | core1_0.MemoryPropertyHostCoherent
var hostCoherent = core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent

var resolveTestCases = map[string]struct {
	MemoryTypeBits CompatibilityBits
	Preferences    Preferences

	ExpectedIndex int
}{
	"TestPrefersCached": {
		MemoryTypeBits: 0b110,
		Preferences:    Preferences{hostCachedCoherent, hostCoherent},
		ExpectedIndex:  2,
	},
	"TestFallsBackToCoherent": {
		MemoryTypeBits: 0b010,
		Preferences:    Preferences{hostCachedCoherent, hostCoherent},
		ExpectedIndex:  1,
	},
	"TestDeviceLocalOnlyNotHostVisible": {
		MemoryTypeBits: 0b001,
		Preferences:    Preferences{hostCachedCoherent, hostCoherent},
		ExpectedIndex:  NoMemoryType,
	},
	"TestEmptyPreferences": {
		MemoryTypeBits: 0b111,
		Preferences:    Preferences{},
		ExpectedIndex:  NoMemoryType,
	},
	"TestNilPreferences": {
		MemoryTypeBits: 0b111,
		ExpectedIndex:  NoMemoryType,
	},
	"TestZeroBits": {
		MemoryTypeBits: 0,
		Preferences:    Preferences{0, hostCoherent, core1_0.MemoryPropertyDeviceLocal},
		ExpectedIndex:  NoMemoryType,
	},
	"TestNoRequiredFlagsTakesLowest": {
		MemoryTypeBits: 0b110,
		Preferences:    Preferences{0},
		ExpectedIndex:  1,
	},
	"TestDeviceLocal": {
		MemoryTypeBits: 0xffffffff,
		Preferences:    DeviceLocalPreferences(),
		ExpectedIndex:  0,
	},
	"TestDeviceLocalExcluded": {
		MemoryTypeBits: 0b110,
		Preferences:    DeviceLocalPreferences(),
		ExpectedIndex:  NoMemoryType,
	},
	"TestBitsBeyondTableIgnored": {
		MemoryTypeBits: 0b11000,
		Preferences:    Preferences{0},
		ExpectedIndex:  NoMemoryType,
	},
	"TestLaterPreferenceUsedWhenEarlierUnsatisfiable": {
		MemoryTypeBits: 0b111,
		Preferences:    Preferences{core1_0.MemoryPropertyLazilyAllocated, core1_0.MemoryPropertyDeviceLocal},
		ExpectedIndex:  0,
	},
}

func TestResolve(t *testing.T) {
	table := scenarioTable(t)

	for testName, testCase := range resolveTestCases {
		t.Run(testName, func(t *testing.T) {
			require.Equal(t, testCase.ExpectedIndex, table.Resolve(testCase.MemoryTypeBits, testCase.Preferences))
		})
	}
}

func TestResolveSingleTieBreak(t *testing.T) {
	table := scenarioTable(t)

	// Types 1 and 2 are both host coherent
	require.Equal(t, 1, table.ResolveSingle(0b111, hostCoherent))
	require.Equal(t, 2, table.ResolveSingle(0b100, hostCoherent))
	require.Equal(t, 2, table.ResolveSingle(0b111, hostCachedCoherent))
	require.Equal(t, NoMemoryType, table.ResolveSingle(0b011, hostCachedCoherent))
}

var allPropertyFlags = []core1_0.MemoryPropertyFlags{
	core1_0.MemoryPropertyDeviceLocal,
	core1_0.MemoryPropertyHostVisible,
	core1_0.MemoryPropertyHostCoherent,
	core1_0.MemoryPropertyHostCached,
	core1_0.MemoryPropertyLazilyAllocated,
}

func flagCombinations() []core1_0.MemoryPropertyFlags {
	var combinations []core1_0.MemoryPropertyFlags
	for mask := 0; mask < 1<<len(allPropertyFlags); mask++ {
		var flags core1_0.MemoryPropertyFlags
		for bit, flag := range allPropertyFlags {
			if mask&(1<<bit) != 0 {
				flags |= flag
			}
		}
		combinations = append(combinations, flags)
	}

	return combinations
}

func propertyTable(t *testing.T) *Table {
	table, err := NewTable(&core1_0.PhysicalDeviceMemoryProperties{
		MemoryTypes: []core1_0.MemoryType{
			{PropertyFlags: 0, HeapIndex: 1},
			{PropertyFlags: core1_0.MemoryPropertyDeviceLocal, HeapIndex: 0},
			{PropertyFlags: hostCoherent, HeapIndex: 1},
			{PropertyFlags: hostCachedCoherent, HeapIndex: 1},
			{PropertyFlags: core1_0.MemoryPropertyDeviceLocal | hostCoherent, HeapIndex: 2},
			{PropertyFlags: core1_0.MemoryPropertyDeviceLocal | core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCached, HeapIndex: 1},
			{PropertyFlags: core1_0.MemoryPropertyLazilyAllocated, HeapIndex: 0},
		},
		MemoryHeaps: []core1_0.MemoryHeap{
			{Size: 8000000000, Flags: core1_0.MemoryHeapDeviceLocal},
			{Size: 16000000000, Flags: 0},
			{Size: 200000000, Flags: core1_0.MemoryHeapDeviceLocal},
		},
	})
	require.NoError(t, err)

	return table
}

func TestResolveSingleProperties(t *testing.T) {
	table := propertyTable(t)
	memTypeCount := table.MemoryTypeCount()

	for memoryTypeBits := CompatibilityBits(0); memoryTypeBits < 1<<memTypeCount; memoryTypeBits++ {
		for _, required := range flagCombinations() {
			index := table.ResolveSingle(memoryTypeBits, required)

			// Determinism
			require.Equal(t, index, table.ResolveSingle(memoryTypeBits, required))

			if index == NoMemoryType {
				for memTypeIndex := 0; memTypeIndex < memTypeCount; memTypeIndex++ {
					flags := table.MemoryTypeProperties(memTypeIndex).PropertyFlags
					require.False(t, memoryTypeBits.Allows(memTypeIndex) && flags&required == required)
				}
				continue
			}

			require.True(t, memoryTypeBits.Allows(index))
			require.Equal(t, required, table.MemoryTypeProperties(index).PropertyFlags&required)

			// Nothing lower also qualifies
			for memTypeIndex := 0; memTypeIndex < index; memTypeIndex++ {
				flags := table.MemoryTypeProperties(memTypeIndex).PropertyFlags
				require.False(t, memoryTypeBits.Allows(memTypeIndex) && flags&required == required)
			}
		}
	}
}

func TestResolveFallbackProperties(t *testing.T) {
	table := propertyTable(t)
	combinations := flagCombinations()
	memTypeCount := table.MemoryTypeCount()

	for memoryTypeBits := CompatibilityBits(0); memoryTypeBits < 1<<memTypeCount; memoryTypeBits++ {
		for _, first := range combinations {
			for _, second := range combinations {
				index := table.Resolve(memoryTypeBits, Preferences{first, second})

				expected := table.ResolveSingle(memoryTypeBits, first)
				if expected == NoMemoryType {
					expected = table.ResolveSingle(memoryTypeBits, second)
				}
				require.Equal(t, expected, index)

				if memoryTypeBits == 0 {
					require.Equal(t, NoMemoryType, index)
				}
			}
		}

		require.Equal(t, NoMemoryType, table.Resolve(memoryTypeBits, nil))
	}
}
