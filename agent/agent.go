package agent

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/heapkit/heapkit/frame"
	"github.com/heapkit/heapkit/gc"
	"github.com/heapkit/heapkit/heap"
	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/refs"
	"github.com/heapkit/heapkit/value"
)

// Agent is the single in-process embedding surface: one heap.Store,
// one may-GC epoch, and every root source Phase 1 enumerates, wired
// together so a host never has to hand-assemble a gc.Roots itself.
//
// Ground: pkg/hive.Hive's relationship to its lower hive/* packages —
// one struct a caller opens once, drives through a small method set,
// and closes, with the storage internals (here, package heap) owned
// but never exposed raw except through narrow accessors.
type Agent struct {
	mu sync.Mutex

	store  *heap.Store
	mayGC  gc.MayGC
	opts   Options
	log    *slog.Logger
	closed bool

	scoped  *refs.ScopedTable
	globals *refs.GlobalTable
	frames  *frame.Stack
	barrier *gc.WriteBarrier

	realms  *IndexRootList
	interns *IndexRootList

	lastStats gc.CollectionStats
}

// IndexRootList is a mutable, growable gc.IndexRoots for a single
// kind — realm records and interned strings are both "every record of
// this kind is a root for the agent's whole lifetime," so both use
// the same small wrapper instead of each hand-rolling append logic.
type IndexRootList struct {
	kind    kind.Kind
	indices []kind.Index
}

func newIndexRootList(k kind.Kind) *IndexRootList {
	return &IndexRootList{kind: k}
}

func (l *IndexRootList) add(idx kind.Index) {
	l.indices = append(l.indices, idx)
}

// VisitAll implements gc.RootSource.
func (l *IndexRootList) VisitAll(v kind.Visitor) {
	k := l.kind
	for i := range l.indices {
		kk := k
		v.VisitRef(&kk, &l.indices[i])
	}
}

// dirtyRootList adapts a drained gc.WriteBarrier snapshot to
// gc.RootSource, since package gc's own dirtyRoots type is
// unexported.
type dirtyRootList []kind.Ref

func (d dirtyRootList) VisitAll(v kind.Visitor) {
	for i := range d {
		v.VisitRef(&d[i].Kind, &d[i].Index)
	}
}

// New constructs an agent with a freshly built Store covering every
// registered kind. Options.GrowthFactor must be greater than 1.0.
func New(opts Options) (*Agent, error) {
	if opts.GrowthFactor == 0 {
		opts.GrowthFactor = DefaultOptions().GrowthFactor
	}
	if opts.GrowthFactor <= 1.0 {
		return nil, ErrInvalidGrowthFactor
	}

	var rq *heap.RetireQueue
	if opts.Concurrent {
		rq = heap.NewRetireQueue()
	}
	store := heap.NewDefaultStore(opts.GrowthFactor, opts.Concurrent, rq)

	a := &Agent{
		store:   store,
		mayGC:   gc.NewMayGC(),
		opts:    opts,
		log:     opts.logger(),
		scoped:  refs.NewScopedTable(),
		globals: refs.NewGlobalTable(opts.LeakDetectGlobals),
		frames:  frame.NewStack(),
		realms:  newIndexRootList(kind.Realm),
		interns: newIndexRootList(kind.String),
	}
	if opts.Concurrent {
		a.barrier = gc.NewWriteBarrier()
	}

	a.log.Debug("agent created", "concurrent", opts.Concurrent, "growth_factor", opts.GrowthFactor)
	return a, nil
}

// roots assembles the current Phase 1 enumeration order: globals,
// scoped handles, execution contexts, realm well-known objects,
// interned strings — matching gc.Roots's documented ordering.
func (a *Agent) roots() gc.Roots {
	return gc.Roots{Sources: []gc.RootSource{
		a.globals,
		a.scoped,
		a.frames,
		a.realms,
		a.interns,
	}}
}

// Store exposes the per-kind vector bundle this agent owns, for a
// mutator that needs direct Push/Get access to a specific kind's
// vector (e.g. the bytecode interpreter this module doesn't include).
func (a *Agent) Store() *heap.Store { return a.store }

// ScopedTable exposes the stack-discipline handle table.
func (a *Agent) ScopedTable() *refs.ScopedTable { return a.scoped }

// GlobalTable exposes the explicit-release handle table.
func (a *Agent) GlobalTable() *refs.GlobalTable { return a.globals }

// Contexts exposes the running execution-context stack Phase 1 walks
// as a root source.
func (a *Agent) Contexts() *frame.Stack { return a.frames }

// WriteBarrier exposes the concurrent-mode dirty-root tracker. Nil
// when Options.Concurrent was false.
func (a *Agent) WriteBarrier() *gc.WriteBarrier { return a.barrier }

// NoGC derives a read-only, shared capability from the agent's MayGC
// token, the entry point to spec.md §4.E's borrow discipline for
// mutator code that only reads values and never triggers collection.
func (a *Agent) NoGC() gc.NoGC { return a.mayGC.DeriveNoGC() }

// NewRealm pushes a fresh, empty RealmData record and registers it as
// a permanent root — every live realm keeps its own intrinsics alive
// for the agent's lifetime, since nothing else references them.
func (a *Agent) NewRealm() kind.Ref {
	a.mu.Lock()
	defer a.mu.Unlock()
	vec := heap.VectorOf[heap.RealmData](a.store, kind.Realm)
	idx := vec.Push(heap.RealmData{Intrinsics: make(map[string]value.Value)})
	a.realms.add(idx)
	return kind.Ref{Kind: kind.Realm, Index: idx}
}

// InternString returns the heap-resident String record for s,
// creating and permanently rooting one on first use. Two calls with
// equal s return the same index.
func (a *Agent) InternString(s string) value.Value {
	a.mu.Lock()
	defer a.mu.Unlock()
	if idx, ok := a.store.Interned().Lookup(s); ok {
		return value.FromHeap(kind.String, idx)
	}
	vec := heap.VectorOf[heap.StringData](a.store, kind.String)
	idx := vec.Push(heap.StringData{Text: s})
	a.store.Interned().Intern(s, idx)
	a.interns.add(idx)
	return value.FromHeap(kind.String, idx)
}

// Collect runs one full mark-compact cycle. In concurrent mode, the
// write barrier's dirty set is drained and folded into Phase 1's root
// enumeration first, so references written since the last cycle are
// treated as freshly-rooted rather than relying on a prior mark to
// have seen them.
func (a *Agent) Collect() (gc.CollectionStats, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return gc.CollectionStats{}, ErrClosed
	}

	roots := a.roots()
	var rs gc.RootSource = roots
	if a.barrier != nil {
		dirty := a.barrier.Drain()
		rs = gc.Roots{Sources: append(append([]gc.RootSource{}, roots.Sources...), dirtyRootList(dirty))}
	}

	a.log.Info("collection starting", "epoch", a.mayGC.Epoch())
	stats, err := gc.Collect(a.store, rs, &a.mayGC, gc.Options{CheckInvariants: a.opts.CheckInvariants})
	if err != nil {
		a.log.Error("collection failed invariant checks", "error", err)
		return stats, &Error{Kind: ErrKindInvariant, Msg: "post-collection invariants failed", Err: err}
	}
	a.lastStats = stats
	a.log.Info("collection finished",
		"epoch", stats.Epoch,
		"duration", stats.Duration,
		"live", stats.TotalLive(),
		"reclaimed", stats.TotalReclaimed(),
	)
	return stats, nil
}

// Stats reports current heap occupancy and the result of the most
// recent Collect call.
func (a *Agent) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := Stats{
		ScopedDepth:    a.scoped.Depth(),
		LiveGlobals:    a.globals.LiveCount(),
		LastCollection: a.lastStats,
		MaxRSSBytes:    maxRSSBytes(),
	}
	for k := kind.Kind(0); k < kind.Count; k++ {
		s.LiveByKind[k] = a.store.Len(k)
	}
	if rq := a.store.Retire(); rq != nil {
		s.RetiredPending = rq.Len()
	}
	return s
}

// Close reports any global handle still live (a host-visible resource
// leak, per refs.GlobalTable.CheckLeaks's doc comment) and marks the
// agent unusable. Subsequent calls to Collect return ErrClosed.
func (a *Agent) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	a.closed = true

	leaks := a.globals.CheckLeaks()
	if len(leaks) == 0 {
		a.log.Debug("agent closed", "leaks", 0)
		return nil
	}

	a.log.Warn("agent closed with live global handles", "count", len(leaks))
	for _, l := range leaks {
		a.log.Warn("live global handle", "handle", l.Handle, "alloc_site", l.AllocSite)
	}
	return &Error{
		Kind: ErrKindLeak,
		Msg:  fmt.Sprintf("%d global handle(s) still live at close", len(leaks)),
	}
}
