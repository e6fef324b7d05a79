package gc

import (
	"fmt"

	"github.com/heapkit/heapkit/heap"
	"github.com/heapkit/heapkit/kind"
)

// Bitmap is a dense one-bit-per-index mark bitmap for a single kind's
// vector, sized to that vector's length at the start of Phase 2.
//
// Ground: hive/walker/core.go's Bitmap — word-packed uint64s with the
// same Set/IsSet/Count shape, carried over close to unchanged since a
// mark bitmap is exactly that structure applied to heap indices
// instead of block offsets.
type Bitmap struct {
	words []uint64
	n     int
}

// NewBitmap allocates a zeroed bitmap covering indices [0, n).
func NewBitmap(n int) *Bitmap {
	return &Bitmap{words: make([]uint64, (n+63)/64), n: n}
}

// Set marks i. Panics if i is outside the bitmap's declared range
// [0, Len()); markVisitor grows a bitmap before calling Set on an
// index past it.
func (b *Bitmap) Set(i kind.Index) {
	if int(i) >= b.n {
		panic(fmt.Sprintf("gc: bitmap index %d out of range [0, %d)", i, b.n))
	}
	b.words[i/64] |= 1 << (i % 64)
}

// IsSet reports whether i has been marked.
func (b *Bitmap) IsSet(i kind.Index) bool {
	return b.words[i/64]&(1<<(i%64)) != 0
}

// Len returns the number of indices this bitmap covers.
func (b *Bitmap) Len() int { return b.n }

// Count returns the number of set bits.
func (b *Bitmap) Count() int {
	n := 0
	for _, w := range b.words {
		for w != 0 {
			n++
			w &= w - 1
		}
	}
	return n
}

// markVisitor implements kind.Visitor for Phase 2: the first time a
// reference is observed it's marked and pushed onto the work stack;
// subsequent observations of an already-marked reference are dropped,
// which is what keeps the walk O(live objects) instead of O(edges) on
// a cyclic graph.
type markVisitor struct {
	bitmaps [kind.Count]*Bitmap
	stack   []kind.Ref
}

func (m *markVisitor) VisitRef(k *kind.Kind, idx *kind.Index) {
	bm := m.bitmaps[*k]
	if bm == nil || int(*idx) >= bm.Len() {
		// A root or a record allocated after marking began (e.g. by a
		// finalizer) pointing past the snapshot. Grow lazily rather
		// than panic: it only affects correctness if the allocation
		// outlives this cycle, and mark-compact doesn't run finalizers
		// until Phase 4.
		m.growBitmap(*k, int(*idx)+1)
		bm = m.bitmaps[*k]
	}
	if bm.IsSet(*idx) {
		return
	}
	bm.Set(*idx)
	m.stack = append(m.stack, kind.Ref{Kind: *k, Index: *idx})
}

func (m *markVisitor) growBitmap(k kind.Kind, n int) {
	old := m.bitmaps[k]
	nb := NewBitmap(n)
	if old != nil {
		copy(nb.words, old.words)
	}
	m.bitmaps[k] = nb
}

// Mark runs Phase 2: every root is visited, then every reference
// reachable from a root is visited transitively via the work stack,
// using the flat kind.Trace dispatch table so the collector never
// needs a type switch over record types. It returns one Bitmap per
// kind, sized to that kind's vector length when marking began.
func Mark(store *heap.Store, roots RootSource) [kind.Count]*Bitmap {
	mv := &markVisitor{}
	for k := kind.Kind(0); k < kind.Count; k++ {
		mv.bitmaps[k] = NewBitmap(int(store.Len(k)))
	}
	roots.VisitAll(mv)
	for len(mv.stack) > 0 {
		ref := mv.stack[len(mv.stack)-1]
		mv.stack = mv.stack[:len(mv.stack)-1]
		kind.Trace(store.VectorFor(ref.Kind), ref.Kind, ref.Index, mv)
	}
	return mv.bitmaps
}
