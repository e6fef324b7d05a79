package refs

import (
	"testing"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopedTablePushAndGet(t *testing.T) {
	tbl := NewScopedTable()
	h := tbl.New(value.SmallInt(7))
	assert.Equal(t, int32(7), tbl.Get(h).AsSmallInt())
}

func TestScopedTablePopToUnwindsStack(t *testing.T) {
	tbl := NewScopedTable()
	tbl.New(value.SmallInt(1))
	mark := tbl.Mark()
	tbl.New(value.SmallInt(2))
	tbl.New(value.SmallInt(3))
	assert.Equal(t, 3, tbl.Depth())

	tbl.PopTo(mark)
	assert.Equal(t, 1, tbl.Depth())
}

func TestScopedTableNestedScopesUnwindIndependently(t *testing.T) {
	tbl := NewScopedTable()
	outer := tbl.Mark()
	tbl.New(value.SmallInt(1))
	inner := tbl.Mark()
	tbl.New(value.SmallInt(2))
	tbl.PopTo(inner)
	assert.Equal(t, 1, tbl.Depth())
	tbl.PopTo(outer)
	assert.Equal(t, 0, tbl.Depth())
}

func TestScopedTableVisitAllRewritesInPlace(t *testing.T) {
	tbl := NewScopedTable()
	h := tbl.New(value.FromHeap(kind.Object, 4))
	tbl.VisitAll(rewriteTo(4, 9))
	assert.Equal(t, kind.Index(9), tbl.Get(h).HeapIndex())
}

func TestGlobalTableNewGetRelease(t *testing.T) {
	tbl := NewGlobalTable(false)
	h := tbl.New(value.SmallInt(5))
	assert.Equal(t, int32(5), tbl.Get(h).AsSmallInt())
	assert.Equal(t, 1, tbl.LiveCount())

	tbl.Release(h)
	assert.Equal(t, 0, tbl.LiveCount())
	assert.Panics(t, func() { tbl.Get(h) })
}

func TestGlobalTableReusesFreedSlots(t *testing.T) {
	tbl := NewGlobalTable(false)
	h1 := tbl.New(value.SmallInt(1))
	tbl.Release(h1)
	h2 := tbl.New(value.SmallInt(2))
	assert.Equal(t, h1, h2)
}

func TestGlobalTableDoubleReleasePanics(t *testing.T) {
	tbl := NewGlobalTable(false)
	h := tbl.New(value.SmallInt(1))
	tbl.Release(h)
	assert.Panics(t, func() { tbl.Release(h) })
}

func TestGlobalTableLeakDetectionReportsAllocSite(t *testing.T) {
	tbl := NewGlobalTable(true)
	h := tbl.New(value.SmallInt(1))
	leaks := tbl.CheckLeaks()
	require.Len(t, leaks, 1)
	assert.Equal(t, h, leaks[0].Handle)
	assert.Contains(t, leaks[0].AllocSite, "refs_test.go")
}

func TestGlobalTableVisitAllSkipsReleasedSlots(t *testing.T) {
	tbl := NewGlobalTable(false)
	h1 := tbl.New(value.FromHeap(kind.Object, 1))
	h2 := tbl.New(value.FromHeap(kind.Object, 2))
	tbl.Release(h1)

	seen := 0
	tbl.VisitAll(visitorFunc(func(*kind.Kind, *kind.Index) { seen++ }))
	assert.Equal(t, 1, seen)
	assert.Equal(t, kind.Index(2), tbl.Get(h2).HeapIndex())
}

type visitorFunc func(k *kind.Kind, idx *kind.Index)

func (f visitorFunc) VisitRef(k *kind.Kind, idx *kind.Index) { f(k, idx) }

func rewriteTo(from, to kind.Index) kind.Visitor {
	return visitorFunc(func(_ *kind.Kind, idx *kind.Index) {
		if *idx == from {
			*idx = to
		}
	})
}
