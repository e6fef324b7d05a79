package agent

import (
	"github.com/heapkit/heapkit/gc"
	"github.com/heapkit/heapkit/kind"
)

// Stats reports the agent's current heap occupancy and the result of
// its most recent collection, the "query statistics" half of External
// Interfaces' collection-control surface.
//
// Ground: cmd/hivectl/stats.go's HiveStats struct, which groups file
// info, structure counts, and a type/size breakdown into one snapshot
// a caller reads once rather than polling several accessors; LiveByKind
// plays the role HiveStats.ValueTypes played there (a per-category
// count map), here keyed by kind.Kind instead of registry value type.
type Stats struct {
	// LiveByKind is the current live record count for each kind,
	// indexed by kind.Kind.
	LiveByKind [kind.Count]kind.Index

	// ScopedDepth is refs.ScopedTable.Depth() at the time Stats was
	// called.
	ScopedDepth int

	// LiveGlobals is refs.GlobalTable.LiveCount() at the time Stats
	// was called.
	LiveGlobals int

	// RetiredPending is heap.RetireQueue.Len() — backing arrays
	// awaiting the next collection's drain, only nonzero between a
	// concurrent grow and the following Collect.
	RetiredPending int

	// LastCollection is the result of the most recent Collect call,
	// or the zero value if Collect has never run.
	LastCollection gc.CollectionStats

	// MaxRSSBytes is the process's peak resident-set size, sourced
	// from the platform's rusage mechanism. Zero on platforms with no
	// implementation.
	MaxRSSBytes uint64
}

// TotalLive sums LiveByKind across every kind.
func (s Stats) TotalLive() kind.Index {
	var total kind.Index
	for _, n := range s.LiveByKind {
		total += n
	}
	return total
}
