package heap

import "github.com/heapkit/heapkit/kind"

// Compactable is the kind-agnostic view the collector needs of a
// single kind's vector during Phase 4 (shift and rewrite). Every
// *Vector[T] satisfies it regardless of T, because neither method's
// signature mentions T — see Vector.CompactKeep's doc comment.
type Compactable interface {
	Len() kind.Index
	CompactKeep(order []kind.Index)
}

// Store holds one vector per heap kind for a single agent. An agent
// owns exactly one Store; multiple agents, each with their own Store,
// can coexist in one process, which is why kind.Funcs.Trace takes an
// opaque kind.Store argument instead of closing over a fixed vector:
// the same process-wide dispatch table in package kind must serve
// every agent's Store in turn.
//
// Ground: pkg/hive/types.go's single struct holding every registry
// hive's root handle, generalized from "one of a fixed set of hive
// files" to "one of a fixed set of kind vectors."
type Store struct {
	vectors  [kind.Count]Compactable
	untyped  [kind.Count]any
	retire   *RetireQueue
	interned *InternTables
}

// NewStore builds an empty Store with one vector per kind, all
// sharing rq as their retire queue (nil is fine for non-concurrent
// agents). register is called once and must call Put(k, vec) for
// every kind with a freshly constructed *Vector[ConcreteRecordType].
func NewStore(rq *RetireQueue, register func(s *Store)) *Store {
	s := &Store{retire: rq, interned: NewInternTables()}
	register(s)
	for k := kind.Kind(0); k < kind.Count; k++ {
		if s.vectors[k] == nil {
			panic("heap: Store built without a vector for " + k.String())
		}
	}
	return s
}

// Put installs vec as the vector backing k. vec must be a *Vector[T]
// for whatever record type k uses; it's stored once as a Compactable
// for the collector and once as an opaque kind.Store for trace
// dispatch.
func Put[T any](s *Store, k kind.Kind, vec *Vector[T]) {
	s.vectors[k] = vec
	s.untyped[k] = vec
}

// VectorFor returns the opaque handle to pass as the kind.Store
// argument of kind.Trace/Finalize/DebugPrint for k.
func (s *Store) VectorFor(k kind.Kind) kind.Store { return s.untyped[k] }

// Compactable returns the kind-agnostic compaction view for k, used by
// the collector's Phase 4 shift step.
func (s *Store) Compactable(k kind.Kind) Compactable { return s.vectors[k] }

// Len reports the live record count for k.
func (s *Store) Len(k kind.Kind) kind.Index { return s.vectors[k].Len() }

// Interned exposes the string intern table shared by all
// vectors in this Store.
func (s *Store) Interned() *InternTables { return s.interned }

// Retire exposes the retire queue shared by all vectors in this
// Store, so the collector can Drain it at the end of a cycle.
func (s *Store) Retire() *RetireQueue { return s.retire }

// VectorOf type-asserts the concrete *Vector[T] backing k out of s. It
// panics on a kind/type mismatch, which only a programmer error (a
// wrong T at a call site) can cause — never live data.
func VectorOf[T any](s *Store, k kind.Kind) *Vector[T] {
	vec, ok := s.untyped[k].(*Vector[T])
	if !ok {
		panic(NewStoreMismatch(k))
	}
	return vec
}

// storeVector type-asserts the opaque per-kind handle a
// kind.Trace/Finalize/DebugPrint dispatch hands to a record type's
// callback back to that kind's concrete vector. Unlike VectorOf, the
// caller here already has the single-kind handle VectorFor returned,
// not the whole Store — each record type's own Trace function is the
// only thing that knows its own concrete record type, matching
// spec.md's flat dispatch-table design: the collector never needs to
// know what T is for any given kind.
func storeVector[T any](store kind.Store) *Vector[T] {
	return store.(*Vector[T])
}
