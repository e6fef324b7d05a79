package heap

import (
	"math"

	"github.com/heapkit/heapkit/kind"
)

// grow reallocates the backing array to a geometrically larger
// capacity, appends rec, publishes the new storage, and — in
// concurrent mode — retires the old one instead of discarding it,
// ground: hive/alloc/bump.go's HBIN-doubling grow(), generalized from
// fixed-size disk pages to a geometric Go-slice capacity.
func (v *Vector[T]) grow(rec T) kind.Index {
	old := v.load()
	oldLen := len(old.data)
	newCap := nextCapacity(cap(old.data), v.growthFactor)

	grown := make([]T, oldLen, newCap)
	copy(grown, old.data)
	grown = append(grown, rec)

	if v.concurrent {
		// Publish the new storage atomically; a collector goroutine
		// already holding `old` via Snapshot keeps reading valid
		// (stale but internally consistent) data until the next
		// safepoint, and the old array is freed only after the
		// retire queue is drained at the end of the cycle.
		v.box.Store(&storage[T]{data: grown})
		if v.retire != nil {
			v.retire.Add(old)
		}
	} else {
		v.box.Store(&storage[T]{data: grown})
	}
	return kind.Index(len(grown) - 1)
}

// nextCapacity returns the next backing-array capacity, at least
// factor times the current one (minimum 4 to avoid repeated
// reallocation for tiny vectors), per spec.md §4.H.
func nextCapacity(current int, factor float64) int {
	if current == 0 {
		return 4
	}
	next := int(math.Ceil(float64(current) * factor))
	if next <= current {
		next = current + 1
	}
	return next
}
