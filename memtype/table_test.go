package memtype

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/compute/memutils"
	"github.com/vkngwrapper/core/v2/core1_0"
)

func scenarioTable(t *testing.T) *Table {
	table, err := NewTable(&core1_0.PhysicalDeviceMemoryProperties{
		MemoryTypes: []core1_0.MemoryType{
			{
				PropertyFlags: core1_0.MemoryPropertyDeviceLocal,
				HeapIndex:     0,
			},
			{
				PropertyFlags: core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCoherent,
				HeapIndex:     1,
			},
			{
				PropertyFlags: core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCached | core1_0.MemoryPropertyHostCoherent,
				HeapIndex:     1,
			},
		},
		MemoryHeaps: []core1_0.MemoryHeap{
			{
				Size:  8000000000, // 8 GB
				Flags: core1_0.MemoryHeapDeviceLocal,
			},
			{
				Size:  16000000000, // 16 GB
				Flags: 0,
			},
		},
	})
	require.NoError(t, err)

	return table
}

var newTableErrorTestCases = map[string]*core1_0.PhysicalDeviceMemoryProperties{
	"TestNilProperties": nil,
	"TestMissingHeap": {
		MemoryTypes: []core1_0.MemoryType{
			{PropertyFlags: core1_0.MemoryPropertyDeviceLocal, HeapIndex: 1},
		},
		MemoryHeaps: []core1_0.MemoryHeap{
			{Size: 1024, Flags: core1_0.MemoryHeapDeviceLocal},
		},
	},
	"TestNegativeHeap": {
		MemoryTypes: []core1_0.MemoryType{
			{PropertyFlags: core1_0.MemoryPropertyDeviceLocal, HeapIndex: -1},
		},
		MemoryHeaps: []core1_0.MemoryHeap{
			{Size: 1024, Flags: core1_0.MemoryHeapDeviceLocal},
		},
	},
	"TestTooManyMemoryTypes": {
		MemoryTypes: make([]core1_0.MemoryType, 33),
		MemoryHeaps: []core1_0.MemoryHeap{
			{Size: 1024},
		},
	},
	"TestTooManyHeaps": {
		MemoryHeaps: make([]core1_0.MemoryHeap, 17),
	},
}

func TestNewTableErrors(t *testing.T) {
	for testName, properties := range newTableErrorTestCases {
		t.Run(testName, func(t *testing.T) {
			table, err := NewTable(properties)
			require.Nil(t, table)
			require.Error(t, err)
			require.True(t, errors.Is(err, memutils.ErrInvalidMemoryProperties))
		})
	}
}

func TestNewTableCopiesProperties(t *testing.T) {
	properties := &core1_0.PhysicalDeviceMemoryProperties{
		MemoryTypes: []core1_0.MemoryType{
			{PropertyFlags: core1_0.MemoryPropertyDeviceLocal, HeapIndex: 0},
		},
		MemoryHeaps: []core1_0.MemoryHeap{
			{Size: 1024, Flags: core1_0.MemoryHeapDeviceLocal},
		},
	}

	table, err := NewTable(properties)
	require.NoError(t, err)

	properties.MemoryTypes[0].PropertyFlags = core1_0.MemoryPropertyHostVisible
	properties.MemoryHeaps[0].Size = 1

	require.Equal(t, core1_0.MemoryPropertyDeviceLocal, table.MemoryTypeProperties(0).PropertyFlags)
	require.Equal(t, 1024, table.MemoryHeapProperties(0).Size)
}

func TestTableAccessors(t *testing.T) {
	table := scenarioTable(t)

	require.Equal(t, 3, table.MemoryTypeCount())
	require.Equal(t, 2, table.MemoryHeapCount())
	require.Equal(t, 0, table.MemoryTypeIndexToHeapIndex(0))
	require.Equal(t, 1, table.MemoryTypeIndexToHeapIndex(2))
	require.Equal(t, CompatibilityBits(0b111), table.GlobalMemoryTypeBits())
	require.Equal(t, 8000000000, table.SmallestHeapSize())
	require.False(t, table.IsMemoryTypeHostNonCoherent(0))
	require.False(t, table.IsMemoryTypeHostNonCoherent(1))

	require.Panics(t, func() {
		table.MemoryTypeProperties(3)
	})
	require.Panics(t, func() {
		table.MemoryHeapProperties(-1)
	})
}

func TestHostNonCoherent(t *testing.T) {
	table, err := NewTable(&core1_0.PhysicalDeviceMemoryProperties{
		MemoryTypes: []core1_0.MemoryType{
			{PropertyFlags: core1_0.MemoryPropertyHostVisible | core1_0.MemoryPropertyHostCached, HeapIndex: 0},
		},
		MemoryHeaps: []core1_0.MemoryHeap{
			{Size: 1024},
		},
	})
	require.NoError(t, err)
	require.True(t, table.IsMemoryTypeHostNonCoherent(0))
}

func TestSmallestHeapSizeNoHeaps(t *testing.T) {
	table, err := NewTable(&core1_0.PhysicalDeviceMemoryProperties{})
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, table.SmallestHeapSize())
	require.Equal(t, NoMemoryType, table.Resolve(0xffffffff, HostSharedPreferences()))
}
