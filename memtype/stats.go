package memtype

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// BuildStatsString writes a JSON object describing every memory type and heap in the table
func (t *Table) BuildStatsString(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	types := obj.Name("MemoryTypes").Array()
	for memTypeIndex, memoryType := range t.memoryTypes {
		o := types.Object()
		o.Name("Index").Int(memTypeIndex)
		o.Name("Flags").String(memoryType.PropertyFlags.String())
		o.Name("HeapIndex").Int(memoryType.HeapIndex)
		o.End()
	}
	types.End()

	heaps := obj.Name("MemoryHeaps").Array()
	for heapIndex, heap := range t.memoryHeaps {
		o := heaps.Object()
		o.Name("Index").Int(heapIndex)
		o.Name("Size").Int(heap.Size)
		o.Name("Flags").String(heap.Flags.String())
		o.End()
	}
	heaps.End()
}
