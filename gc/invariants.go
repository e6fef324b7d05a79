package gc

import (
	"fmt"

	"github.com/heapkit/heapkit/heap"
	"github.com/heapkit/heapkit/kind"
)

// CheckInvariants, with CheckRewriteRange, is the assertion suite run
// at the end of Collect when Options.CheckInvariants is set, and only
// then; its job is to fail loudly in tests rather than let a broken
// compaction corrupt data silently.
//
// Ground: hive/verify/verify.go's AllInvariants — same shape, a list
// of independent checks each returning an error, generalized from
// hive's storage invariants to mark-compact's.
func CheckInvariants(store *heap.Store, lists [kind.Count]*CompactionList) error {
	for k := kind.Kind(0); k < kind.Count; k++ {
		gotLen := store.Len(k)
		if gotLen != lists[k].NewLength {
			return fmt.Errorf("%w: %s vector length %d does not match compaction list's new length %d", ErrInvariantViolated, k, gotLen, lists[k].NewLength)
		}
	}
	return nil
}

// CheckRewriteRange asserts every outgoing reference in every live
// record, after Phase 4, points within its target kind's new length —
// the "no dangling or out-of-range index survives compaction"
// invariant. checkVisitor records the first violation it finds.
func CheckRewriteRange(store *heap.Store, lists [kind.Count]*CompactionList, roots RootSource) error {
	cv := &checkVisitor{lists: &lists}
	roots.VisitAll(cv)
	if cv.err != nil {
		return cv.err
	}
	for k := kind.Kind(0); k < kind.Count && cv.err == nil; k++ {
		n := lists[k].NewLength
		for i := kind.Index(0); i < n && cv.err == nil; i++ {
			kind.Trace(store.VectorFor(k), k, i, cv)
		}
	}
	return cv.err
}

type checkVisitor struct {
	lists *[kind.Count]*CompactionList
	err   error
}

func (c *checkVisitor) VisitRef(k *kind.Kind, idx *kind.Index) {
	if c.err != nil {
		return
	}
	list := c.lists[*k]
	if list == nil || *idx >= list.NewLength {
		c.err = fmt.Errorf("%w: reference into %s at index %d is out of range [0, %d)", ErrInvariantViolated, *k, *idx, list.NewLength)
	}
}
