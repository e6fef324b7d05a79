package gc

import (
	"time"

	"github.com/heapkit/heapkit/kind"
)

// CollectionStats summarizes one completed Collect call: per-kind live
// counts after compaction, the number of records reclaimed per kind,
// and how long the cycle took. Exposed through agent.Stats.
type CollectionStats struct {
	Epoch      uint64
	Duration   time.Duration
	LiveCounts [kind.Count]kind.Index
	Reclaimed  [kind.Count]kind.Index
}

// TotalLive sums LiveCounts across every kind.
func (s CollectionStats) TotalLive() kind.Index {
	var total kind.Index
	for _, n := range s.LiveCounts {
		total += n
	}
	return total
}

// TotalReclaimed sums Reclaimed across every kind.
func (s CollectionStats) TotalReclaimed() kind.Index {
	var total kind.Index
	for _, n := range s.Reclaimed {
		total += n
	}
	return total
}
