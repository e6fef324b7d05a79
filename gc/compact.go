package gc

import "github.com/heapkit/heapkit/kind"

// CompactionEntry records that every marked slot at or after FromIndex
// (and before the next entry's FromIndex) shifts down by Shift
// positions. Ground: hive/alloc/size_classes.go's sorted
// threshold-table-plus-binary-search shape, applied here to index
// shifts instead of size classes.
type CompactionEntry struct {
	FromIndex kind.Index
	Shift     uint32
}

// CompactionList is the output of Phase 3 for a single kind: a
// monotonically increasing run-length encoding of how far each
// surviving index needs to move down, plus the kind's post-compaction
// length.
type CompactionList struct {
	Entries   []CompactionEntry
	NewLength kind.Index
}

// BuildCompactionList implements spec.md §4.G's Phase 3 rule exactly:
// "starting with shift = 0, each unmarked slot increments shift by 1;
// each marked slot whose shift differs from the previous record's
// shift emits a new list entry." length is the kind's vector length
// when marking began (bm.Len()).
func BuildCompactionList(bm *Bitmap, length kind.Index) *CompactionList {
	list := &CompactionList{}
	var shift uint32
	var lastShift uint32
	first := true
	for i := kind.Index(0); i < length; i++ {
		if !bm.IsSet(i) {
			shift++
			continue
		}
		if first || shift != lastShift {
			list.Entries = append(list.Entries, CompactionEntry{FromIndex: i, Shift: shift})
			lastShift = shift
			first = false
		}
		list.NewLength++
	}
	return list
}

// ShiftFor returns the shift amount that applies to idx, found by
// binary search over Entries for the last entry whose FromIndex <=
// idx. Returns 0 if idx precedes every entry (nothing has been
// dropped yet at that point in the vector).
func (l *CompactionList) ShiftFor(idx kind.Index) uint32 {
	entries := l.Entries
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := (lo + hi) / 2
		if entries[mid].FromIndex <= idx {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return 0
	}
	return entries[lo-1].Shift
}

// KeepOrder returns the ascending list of original indices marked
// live in bm, covering [0, length). This is what Vector.CompactKeep
// expects: the physical-move counterpart to the shift-arithmetic
// CompactionList used for reference rewriting. The two are built from
// the same bitmap and always agree on which indices survive.
func KeepOrder(bm *Bitmap, length kind.Index) []kind.Index {
	order := make([]kind.Index, 0, bm.Count())
	for i := kind.Index(0); i < length; i++ {
		if bm.IsSet(i) {
			order = append(order, i)
		}
	}
	return order
}
