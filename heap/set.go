package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// SetData backs kind.Set: insertion-ordered unique values, the same
// entries-plus-rebuilt-index shape as MapData without a separate
// value per key.
type SetData struct {
	ObjectData
	Entries []value.Value
	Index   map[value.Value]int
}

func traceSet(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[SetData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
	for i := range rec.Entries {
		rec.Entries[i].VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
	}
	rec.Index = make(map[value.Value]int, len(rec.Entries))
	for i, e := range rec.Entries {
		rec.Index[e] = i
	}
}

func debugSet(store kind.Store, idx kind.Index) string {
	rec := storeVector[SetData](store).Get(idx)
	return fmt.Sprintf("Set#%d{%d entries}", idx, len(rec.Entries))
}

func init() {
	kind.Register(kind.Set, kind.Funcs{Trace: traceSet, DebugPrint: debugSet})
}
