package heap

import "sync"

// RetireQueue accumulates backing arrays displaced by a concurrent
// Vector.grow so that collector goroutines that captured a Snapshot
// before the grow keep a valid reference until the end of the current
// collection cycle, rather than racing Go's own GC to decide when the
// old array becomes unreachable.
//
// Ground: hive/dirty.Tracker's "accumulate now, process later at a
// safepoint" shape — here the thing accumulated is a retired backing
// array instead of a dirty byte range, and "process" means "drop the
// reference" instead of "flush to disk."
type RetireQueue struct {
	mu    sync.Mutex
	items []any
}

// NewRetireQueue returns an empty queue with a small pre-allocated
// capacity, mirroring hive/dirty.Tracker's defaultRangeCapacity
// rationale (most cycles retire only a handful of arrays).
func NewRetireQueue() *RetireQueue {
	return &RetireQueue{items: make([]any, 0, 8)}
}

// Add retires x. Safe to call from the mutator goroutine while
// collector goroutines read concurrently — it never touches any
// Vector's storage, only this queue's own slice.
func (q *RetireQueue) Add(x any) {
	q.mu.Lock()
	q.items = append(q.items, x)
	q.mu.Unlock()
}

// Drain clears the queue and returns everything retired since the
// last Drain. Must only be called from the stop-the-world portion of
// a collection cycle, after every collector goroutine has finished
// reading (spec.md §5: "before sweep begins, the world is stopped").
func (q *RetireQueue) Drain() []any {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = make([]any, 0, 8)
	return out
}

// Len reports the number of retired-but-undrained entries, used by
// agent.Stats for diagnostics.
func (q *RetireQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
