package gc_test

import (
	"testing"

	"github.com/heapkit/heapkit/gc"
	"github.com/heapkit/heapkit/kind"
	"github.com/stretchr/testify/assert"
)

func TestBuildCompactionListMatchesRunLengthRule(t *testing.T) {
	bm := gc.NewBitmap(6)
	// live: 0, 2, 3, 5  -- dead: 1, 4
	for _, i := range []kind.Index{0, 2, 3, 5} {
		bm.Set(i)
	}

	list := gc.BuildCompactionList(bm, 6)

	// shift sequence by index: 0->0, 1(dead)->shift becomes 1, 2->shift1,
	// 3->shift1 (same as prior live entry, no new record), 4(dead)->shift2,
	// 5->shift2 (new record, shift changed from 1 to 2).
	assert.Equal(t, kind.Index(4), list.NewLength)
	assert.Equal(t, []gc.CompactionEntry{
		{FromIndex: 0, Shift: 0},
		{FromIndex: 2, Shift: 1},
		{FromIndex: 5, Shift: 2},
	}, list.Entries)
}

func TestShiftForBinarySearch(t *testing.T) {
	bm := gc.NewBitmap(6)
	for _, i := range []kind.Index{0, 2, 3, 5} {
		bm.Set(i)
	}
	list := gc.BuildCompactionList(bm, 6)

	assert.Equal(t, uint32(0), list.ShiftFor(0))
	assert.Equal(t, uint32(1), list.ShiftFor(2))
	assert.Equal(t, uint32(1), list.ShiftFor(3))
	assert.Equal(t, uint32(2), list.ShiftFor(5))
}

func TestKeepOrderMatchesMarkedBits(t *testing.T) {
	bm := gc.NewBitmap(6)
	for _, i := range []kind.Index{0, 2, 3, 5} {
		bm.Set(i)
	}
	order := gc.KeepOrder(bm, 6)
	assert.Equal(t, []kind.Index{0, 2, 3, 5}, order)
}

func TestBitmapCount(t *testing.T) {
	bm := gc.NewBitmap(130)
	for _, i := range []kind.Index{0, 1, 64, 65, 129} {
		bm.Set(i)
	}
	assert.Equal(t, 5, bm.Count())
}
