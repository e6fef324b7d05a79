package gc

import (
	"sync"

	"github.com/heapkit/heapkit/kind"
)

// WriteBarrier tracks references recorded as written by the mutator.
// agent.Collect drains it and passes the drained refs to Collect as
// extra roots next to the full root set; the mark still starts from
// every root.
//
// Ground: hive/dirty/dirty.go's Tracker.Add — a mutex-guarded set of
// dirty keys accumulated during a transaction and drained once at
// commit. Here the "transaction" is one concurrent collection cycle
// and the dirty keys are (kind, index) pairs instead of row keys.
type WriteBarrier struct {
	mu    sync.Mutex
	dirty map[kind.Ref]struct{}
}

// NewWriteBarrier returns an empty barrier.
func NewWriteBarrier() *WriteBarrier {
	return &WriteBarrier{dirty: make(map[kind.Ref]struct{})}
}

// Record marks ref dirty. No write path in this module calls it; a
// host that writes references into the heap records them here.
func (b *WriteBarrier) Record(ref kind.Ref) {
	b.mu.Lock()
	b.dirty[ref] = struct{}{}
	b.mu.Unlock()
}

// Drain returns every recorded ref and resets the barrier. agent.Collect
// calls it before starting a collection cycle.
func (b *WriteBarrier) Drain() []kind.Ref {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]kind.Ref, 0, len(b.dirty))
	for r := range b.dirty {
		out = append(out, r)
	}
	b.dirty = make(map[kind.Ref]struct{})
	return out
}

// Len reports the number of currently dirty refs, for diagnostics.
func (b *WriteBarrier) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.dirty)
}

// dirtyRoots adapts a drained dirty set to RootSource so Mark can walk
// it the same way it walks any other root list.
type dirtyRoots []kind.Ref

func (d dirtyRoots) VisitAll(v kind.Visitor) {
	for i := range d {
		v.VisitRef(&d[i].Kind, &d[i].Index)
	}
}
