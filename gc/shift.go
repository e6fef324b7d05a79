package gc

import (
	"github.com/heapkit/heapkit/heap"
	"github.com/heapkit/heapkit/kind"
)

// rewriteVisitor implements kind.Visitor for Phase 4's rewrite step:
// every stored (kind, index) pair is looked up in that kind's
// compaction list and shifted down in place.
type rewriteVisitor struct {
	lists *[kind.Count]*CompactionList
}

func (r *rewriteVisitor) VisitRef(k *kind.Kind, idx *kind.Index) {
	list := r.lists[*k]
	if list == nil {
		return
	}
	*idx -= kind.Index(list.ShiftFor(*idx))
}

// Shift runs Phase 4: for every kind, physically compact its vector to
// just the marked records (in ascending original-index order), then —
// only once every kind has finished shifting — walk every surviving
// record in every kind plus every root through the same rewriting
// visitor, replacing each stored reference's old index with its
// post-compaction index.
//
// The two-part ordering (shift all kinds, then rewrite all kinds) is
// mandatory: a rewrite step run against kind K before kind K' has
// finished shifting would compute K's shift against an as-yet-correct
// CompactionList but write a reference into a K' slot that hasn't
// moved there yet, corrupting the rewrite. Building every
// CompactionList from the Phase-2 bitmaps before touching any vector,
// as Collect does, is what makes the two parts independent of
// execution order.
func Shift(store *heap.Store, bitmaps [kind.Count]*Bitmap, roots RootSource) [kind.Count]*CompactionList {
	var lists [kind.Count]*CompactionList
	for k := kind.Kind(0); k < kind.Count; k++ {
		length := kind.Index(bitmaps[k].Len())
		lists[k] = BuildCompactionList(bitmaps[k], length)
	}

	// Finalize and shift: run each dropped record's finalizer, then
	// physically compact every kind's vector.
	for k := kind.Kind(0); k < kind.Count; k++ {
		length := kind.Index(bitmaps[k].Len())
		for i := kind.Index(0); i < length; i++ {
			if !bitmaps[k].IsSet(i) {
				kind.Finalize(store.VectorFor(k), k, i)
			}
		}
		order := KeepOrder(bitmaps[k], length)
		store.Compactable(k).CompactKeep(order)
	}

	// Rewrite: only after every kind has finished shifting.
	rv := &rewriteVisitor{lists: &lists}
	roots.VisitAll(rv)
	for k := kind.Kind(0); k < kind.Count; k++ {
		newLen := lists[k].NewLength
		for i := kind.Index(0); i < newLen; i++ {
			kind.Trace(store.VectorFor(k), k, i, rv)
		}
	}

	return lists
}
