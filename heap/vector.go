// Package heap holds the indexed, per-kind heap vectors; the record
// types stored in them; the growth protocol (including the
// concurrent-marking-compatible retire queue); and the string intern
// table.
package heap

import (
	"sync/atomic"

	"github.com/heapkit/heapkit/kind"
)

// DefaultGrowthFactor is the geometric growth factor applied when a
// Vector must reallocate, matching spec.md §4.H's "capacity growth is
// geometric (factor ≥ 1.5)".
const DefaultGrowthFactor = 1.5

// storage is the boxed backing array a Vector points to. Boxing it
// lets concurrent-marking mode publish a new (data, len) pair
// atomically without the reader observing a torn read.
type storage[T any] struct {
	data []T
}

// Vector is a growable, contiguous, typed sequence backing one heap
// kind. Indices returned by Push are stable until the next
// compaction. Vector is safe for single-mutator-thread use always;
// under concurrent marking (Concurrent == true) it additionally
// allows collector goroutines to call Len/Get/Snapshot while the
// mutator pushes, by retiring old backing arrays instead of freeing
// them immediately (see retire.go).
type Vector[T any] struct {
	box          atomic.Pointer[storage[T]]
	growthFactor float64
	concurrent   bool
	retire       *RetireQueue
}

// NewVector creates an empty Vector. growthFactor <= 1 is treated as
// DefaultGrowthFactor. When concurrent is true, capacity-forcing
// pushes retire their old backing array onto rq instead of letting Go
// collect it immediately, per spec.md §4.H's concurrent-marking mode.
func NewVector[T any](growthFactor float64, concurrent bool, rq *RetireQueue) *Vector[T] {
	if growthFactor <= 1 {
		growthFactor = DefaultGrowthFactor
	}
	v := &Vector[T]{growthFactor: growthFactor, concurrent: concurrent, retire: rq}
	v.box.Store(&storage[T]{data: make([]T, 0, 0)})
	return v
}

func (v *Vector[T]) load() *storage[T] { return v.box.Load() }

// Len returns the number of live slots.
func (v *Vector[T]) Len() kind.Index { return kind.Index(len(v.load().data)) }

// Get returns a pointer to the record at idx, or nil if idx is out of
// range. The returned pointer is only valid until the next Push that
// forces reallocation or the next Compact.
func (v *Vector[T]) Get(idx kind.Index) *T {
	s := v.load()
	if int(idx) >= len(s.data) {
		return nil
	}
	return &s.data[idx]
}

// Push appends rec and returns its new index, growing the backing
// array if necessary.
func (v *Vector[T]) Push(rec T) kind.Index {
	s := v.load()
	if len(s.data) < cap(s.data) {
		// Fits without reallocating. In concurrent mode this still
		// needs a fresh box publish so in-flight readers that already
		// loaded the old box don't observe a slice length change out
		// from under them (Go slices sharing a backing array would
		// otherwise let a reader observe the new element via cap
		// without ever seeing it through Len/Get's atomic load).
		grown := append(s.data, rec)
		idx := kind.Index(len(grown) - 1)
		v.box.Store(&storage[T]{data: grown})
		return idx
	}
	return v.grow(rec)
}

// Truncate shortens the vector to newLen, discarding everything at or
// after it.
func (v *Vector[T]) Truncate(newLen kind.Index) {
	s := v.load()
	if int(newLen) > len(s.data) {
		return
	}
	v.box.Store(&storage[T]{data: s.data[:newLen]})
}

// CompactTo overwrites the vector's contents with kept, in order, and
// truncates to len(kept). This is the spec.md §4.A "compaction
// primitive": CompactKeep, which the collector calls once per kind,
// gathers the surviving records and passes them here.
func (v *Vector[T]) CompactTo(kept []T) {
	v.box.Store(&storage[T]{data: kept})
}

// Snapshot returns the live slice for read-only bulk iteration (root
// enumeration, trace dispatch). Callers must not retain it past a
// Push/Compact on this Vector.
func (v *Vector[T]) Snapshot() []T { return v.load().data }

// CompactKeep rebuilds the vector to contain exactly the records at
// order, in that order. order is produced by the collector's Phase 4
// shift step (gc.KeepOrder, from a kind's mark bitmap); it names
// original indices in ascending order. CompactKeep has no type
// parameter in its signature, which is what lets *Vector[T] satisfy
// the kind-agnostic heap.Compactable interface regardless of T.
func (v *Vector[T]) CompactKeep(order []kind.Index) {
	s := v.load()
	kept := make([]T, len(order))
	for i, idx := range order {
		kept[i] = s.data[idx]
	}
	v.CompactTo(kept)
}
