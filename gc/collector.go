package gc

import (
	"time"

	"github.com/heapkit/heapkit/heap"
	"github.com/heapkit/heapkit/kind"
)

// Options configures a single Collect call.
type Options struct {
	// CheckInvariants runs the debug-only assertion suite after
	// compaction. Expensive (an extra full trace pass); leave off in
	// production, on in tests.
	CheckInvariants bool
}

// Collect runs one full mark-compact cycle to completion: Phase 1
// (root enumeration via roots), Phase 2 (mark), Phase 3 (build a
// compaction list per kind), Phase 4 (shift every kind, then rewrite
// every surviving reference and every root). It bumps mayGC's epoch
// first, invalidating every Bound value produced under the previous
// epoch, matching spec.md §4.E rule 1.
//
// Collect is a stop-the-world cycle: it assumes no other goroutine
// mutates store or roots while it runs. Concurrent marking (spec.md
// §5) is layered on top via WriteBarrier and is not this function's
// concern — a concurrent-mode agent drains its barrier and passes the
// drained refs in roots alongside its other root sources.
func Collect(store *heap.Store, roots RootSource, mayGC *MayGC, opts Options) (CollectionStats, error) {
	start := time.Now()
	mayGC.bumpEpoch()

	bitmaps := Mark(store, roots)

	var before [kind.Count]kind.Index
	for k := kind.Kind(0); k < kind.Count; k++ {
		before[k] = store.Len(k)
	}

	lists := Shift(store, bitmaps, roots)

	if rq := store.Retire(); rq != nil {
		rq.Drain()
	}

	stats := CollectionStats{Epoch: mayGC.Epoch(), Duration: time.Since(start)}
	for k := kind.Kind(0); k < kind.Count; k++ {
		stats.LiveCounts[k] = lists[k].NewLength
		stats.Reclaimed[k] = before[k] - lists[k].NewLength
	}

	if opts.CheckInvariants {
		if err := CheckInvariants(store, lists); err != nil {
			return stats, err
		}
		if err := CheckRewriteRange(store, lists, roots); err != nil {
			return stats, err
		}
	}

	return stats, nil
}
