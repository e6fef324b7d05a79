package kind

import "fmt"

// Index names a slot in a specific heap-kind vector. Indices are
// unstable across collection cycles but stable within one.
type Index uint32

// Ref is a (kind, index) pair — the fundamental shape of every
// outgoing reference a heap record can hold.
type Ref struct {
	Kind  Kind
	Index Index
}

// Visit calls v.VisitRef on r's own fields, letting record Trace
// functions treat a bare Ref field the same way value.Value.VisitSelf
// lets them treat a Value field.
func (r *Ref) Visit(v Visitor) { v.VisitRef(&r.Kind, &r.Index) }

// Visitor is invoked once per outgoing reference a heap record holds.
// It receives mutable pointers to the stored (kind, index) pair so a
// single dispatch can serve both marking (read then set a bit) and
// compaction rewriting (read then overwrite).
//
// Trace functions must call VisitRef for every reference a record
// holds, including references into its own kind's vector.
type Visitor interface {
	VisitRef(k *Kind, idx *Index)
}

// Store is the opaque per-kind vector handle a collector passes back
// into a Funcs.Trace/Finalize/DebugPrint call. kind deliberately
// doesn't know the concrete type (that would require depending on
// package heap, which depends on kind) — each kind's Funcs, defined
// alongside its record type, type-asserts Store back to its own
// *heap.Vector[ConcreteRecordType].
type Store any

// Funcs bundles the three per-kind dispatch functions described in the
// Design Notes: trace (for the collector), finalize (host-visible
// teardown hooks, e.g. releasing a non-heap resource a record wraps),
// and debug-print (used by diagnostics and tests).
//
// Trace is mandatory; Finalize and DebugPrint may be nil for kinds
// that hold no external resources or need no special formatting.
type Funcs struct {
	// Trace visits every outgoing reference stored at heap index idx
	// within the given kind's vector.
	Trace func(store Store, idx Index, v Visitor)

	// Finalize runs once, immediately before a record is dropped by
	// compaction. Most kinds need none.
	Finalize func(store Store, idx Index)

	// DebugPrint renders a short, human-readable description of the
	// record at idx. Used by diagnostics and tests, not by the
	// collector.
	DebugPrint func(store Store, idx Index) string
}

var registry [Count]Funcs
var registered [Count]bool

// Register installs the dispatch functions for k. Called once from an
// init() in the package that owns k's record type and vector. It
// panics on a double-registration — that's a build-time programmer
// error, not a runtime condition to recover from.
func Register(k Kind, fns Funcs) {
	if !k.Valid() {
		panic(fmt.Sprintf("kind: Register called with invalid kind %d", k))
	}
	if registered[k] {
		panic(fmt.Sprintf("kind: %s already registered", k))
	}
	if fns.Trace == nil {
		panic(fmt.Sprintf("kind: %s registered with nil Trace", k))
	}
	registry[k] = fns
	registered[k] = true
}

// Trace dispatches to the registered Trace function for k. Panics if
// k has no registered Funcs — this indicates a new Kind constant was
// added without a matching Register call in package heap, exactly the
// "static check that none is missing" spec.md calls for in a
// language without compile-time exhaustiveness checks over a plain
// array index.
func Trace(store Store, k Kind, idx Index, v Visitor) {
	if !registered[k] {
		panic(fmt.Sprintf("kind: %s has no registered trace function", k))
	}
	registry[k].Trace(store, idx, v)
}

// Finalize dispatches to k's Finalize function, if any. A no-op when
// none was registered.
func Finalize(store Store, k Kind, idx Index) {
	if !registered[k] || registry[k].Finalize == nil {
		return
	}
	registry[k].Finalize(store, idx)
}

// DebugPrint dispatches to k's DebugPrint function, falling back to a
// generic "(kind)#index" rendering when none was registered.
func DebugPrint(store Store, k Kind, idx Index) string {
	if !registered[k] || registry[k].DebugPrint == nil {
		return fmt.Sprintf("%s#%d", k, idx)
	}
	return registry[k].DebugPrint(store, idx)
}

// AllRegistered reports whether every declared Kind in [0, Count) has
// a registered Trace function. Intended for a package init-order test
// that imports every kind-owning package and asserts completeness.
func AllRegistered() (missing []Kind) {
	for k := Kind(0); k < Count; k++ {
		if !registered[k] {
			missing = append(missing, k)
		}
	}
	return missing
}
