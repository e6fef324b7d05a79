// Package refs holds the two reference-handle disciplines a host
// program uses to keep heap values alive across a collection cycle:
// ScopedTable's stack-discipline push/pop-to-mark handles for
// short-lived, strictly-nested lifetimes (function calls, local
// temporaries), and GlobalTable's explicit-release handles for
// anything that must outlive the call that created it.
package refs

import (
	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// ScopedHandle names a slot in a ScopedTable. Handles are stable only
// until the next PopTo drops them; using one past its scope's exit is
// a programmer error this module doesn't try to detect at the handle
// level (use ScopedTable.Get's bounds check as the backstop).
//
// Ground: hive/alloc.CellRef's plain-uint32 convention — Go has no
// move semantics to make a handle non-copyable cheaply, so this
// module doesn't try.
type ScopedHandle uint32

// ScopedTable is a stack of live Values, mirroring hive/tx.Manager's
// single-in-flight-region discipline: Mark records where a scope
// begins, PopTo unwinds everything pushed since, and nesting scopes is
// just nesting Mark/PopTo pairs — there is no separate "commit",
// unlike tx.Manager, because a scoped handle has no persisted state to
// flush.
type ScopedTable struct {
	slots []value.Value
}

// NewScopedTable returns an empty table.
func NewScopedTable() *ScopedTable {
	return &ScopedTable{slots: make([]value.Value, 0, 64)}
}

// Mark returns a token identifying the table's current depth. Pass it
// to PopTo when the scope that called Mark exits.
func (t *ScopedTable) Mark() int { return len(t.slots) }

// New pushes v and returns a handle to it, valid until the next PopTo
// at or below the current depth.
func (t *ScopedTable) New(v value.Value) ScopedHandle {
	t.slots = append(t.slots, v)
	return ScopedHandle(len(t.slots) - 1)
}

// Get returns the Value at h. Panics on an out-of-range handle — a
// handle used after its scope popped is a programmer error, not a
// runtime condition to recover from silently.
func (t *ScopedTable) Get(h ScopedHandle) value.Value {
	return t.slots[h]
}

// Set overwrites the Value at h in place.
func (t *ScopedTable) Set(h ScopedHandle, v value.Value) {
	t.slots[h] = v
}

// PopTo discards every handle pushed since the matching Mark,
// unwinding the stack back to depth mark. Calling PopTo with a mark
// from an already-exited outer scope is safe (PopTo is idempotent
// going deeper than necessary is not: it would silently drop live
// handles an enclosing scope still expects).
func (t *ScopedTable) PopTo(mark int) {
	t.slots = t.slots[:mark]
}

// Depth reports the current number of live scoped handles, used by
// agent.Stats and leak-detection diagnostics in tests.
func (t *ScopedTable) Depth() int { return len(t.slots) }

// VisitAll runs every live scoped handle through v as a GC root,
// rewriting each Value's (kind, index) in place when v is a
// compaction-rewriting visitor. This is Component B's part of root
// enumeration (spec.md §4.B): agent.Agent examines scoped handles
// after global handles and before the execution context stack.
func (t *ScopedTable) VisitAll(v kind.Visitor) {
	for i := range t.slots {
		t.slots[i].VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
	}
}
