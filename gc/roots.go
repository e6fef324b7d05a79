package gc

import "github.com/heapkit/heapkit/kind"

// RootSource is anything Phase 1 root enumeration walks: the scoped
// and global reference tables in package refs, the execution context
// stack in package frame, and the small fixed-kind index lists below
// for realm well-known objects and interned strings.
type RootSource interface {
	VisitAll(v kind.Visitor)
}

// Roots aggregates every root source an agent registers. The order
// sources appear in matches spec.md §4.A's Phase 1 enumeration order
// (globals, scoped, execution contexts, realm well-known objects,
// intern tables) though marking is order-independent — it only
// affects the order work-stack entries are first pushed.
type Roots struct {
	Sources []RootSource
}

// VisitAll runs every root through v.
func (r Roots) VisitAll(v kind.Visitor) {
	for _, s := range r.Sources {
		s.VisitAll(v)
	}
}

// IndexRoots is a RootSource for a flat list of same-kind indices —
// used for realm well-known objects (every live Realm record is kept
// alive directly, since nothing else roots the intrinsics it owns)
// and interned strings (every entry in the string intern table is
// kept alive for the lifetime of the agent, the classic interning
// trade of permanence for identity-comparable strings).
type IndexRoots struct {
	Kind    kind.Kind
	Indices []kind.Index
}

// VisitAll implements RootSource. When v is a rewriting visitor, the
// rewritten index is written back into Indices so a later collection
// cycle enumerates the post-compaction index.
func (r IndexRoots) VisitAll(v kind.Visitor) {
	for i := range r.Indices {
		k := r.Kind
		v.VisitRef(&k, &r.Indices[i])
	}
}
