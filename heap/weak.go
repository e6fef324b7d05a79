package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// WeakMapData backs kind.WeakMap. Keys must be Objects per
// ECMAScript, but this collector traces them as strong references: a
// true ephemeron scheme (key reachability gates value reachability,
// independent of the WeakMap's own reachability) needs a fixpoint
// pass threaded through mark rather than a single recursive walk, and
// spec.md's mark-compact algorithm doesn't define one. Entries here
// keep their targets alive for as long as the WeakMap itself is
// reachable, same as a strong Map. A real ephemeron pass is future
// work, not attempted here.
type WeakMapData struct {
	ObjectData
	Entries []mapEntry
}

func traceWeakMap(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[WeakMapData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
	for i := range rec.Entries {
		rec.Entries[i].Key.VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
		rec.Entries[i].Val.VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
	}
}

func debugWeakMap(store kind.Store, idx kind.Index) string {
	rec := storeVector[WeakMapData](store).Get(idx)
	return fmt.Sprintf("WeakMap#%d{%d entries}", idx, len(rec.Entries))
}

// WeakSetData backs kind.WeakSet, with the same strong-tracing
// simplification as WeakMapData.
type WeakSetData struct {
	ObjectData
	Entries []value.Value
}

func traceWeakSet(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[WeakSetData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
	for i := range rec.Entries {
		rec.Entries[i].VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
	}
}

func debugWeakSet(store kind.Store, idx kind.Index) string {
	rec := storeVector[WeakSetData](store).Get(idx)
	return fmt.Sprintf("WeakSet#%d{%d entries}", idx, len(rec.Entries))
}

func init() {
	kind.Register(kind.WeakMap, kind.Funcs{Trace: traceWeakMap, DebugPrint: debugWeakMap})
	kind.Register(kind.WeakSet, kind.Funcs{Trace: traceWeakSet, DebugPrint: debugWeakSet})
}
