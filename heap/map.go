package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// mapEntry is one key/value pair in insertion order, matching
// ECMAScript Map's iteration-order guarantee.
type mapEntry struct {
	Key, Val value.Value
}

// MapData backs kind.Map. Entries is kept in insertion order; Index
// is a plain Go map mirroring it for O(1) lookup, rebuilt rather than
// traced (it holds the same Values as Entries, just indexed).
type MapData struct {
	ObjectData
	Entries []mapEntry
	Index   map[value.Value]int
}

func traceMap(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[MapData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
	for i := range rec.Entries {
		rec.Entries[i].Key.VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
		rec.Entries[i].Val.VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
	}
	// Index's keys are copies of Entries[*].Key taken before
	// compaction rewrote them; rebuilding it is cheaper and safer
	// than trying to rewrite map keys in place.
	rebuildMapIndex(rec)
}

func rebuildMapIndex(rec *MapData) {
	rec.Index = make(map[value.Value]int, len(rec.Entries))
	for i, e := range rec.Entries {
		rec.Index[e.Key] = i
	}
}

func debugMap(store kind.Store, idx kind.Index) string {
	rec := storeVector[MapData](store).Get(idx)
	return fmt.Sprintf("Map#%d{%d entries}", idx, len(rec.Entries))
}

func init() {
	kind.Register(kind.Map, kind.Funcs{Trace: traceMap, DebugPrint: debugMap})
}
