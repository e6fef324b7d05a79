package gc_test

import (
	"testing"

	"github.com/heapkit/heapkit/gc"
	"github.com/heapkit/heapkit/heap"
	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *heap.Store {
	t.Helper()
	return heap.NewDefaultStore(0, false, heap.NewRetireQueue())
}

func pushObject(t *testing.T, store *heap.Store, shapeIdx kind.Index, slots ...value.Value) kind.Index {
	t.Helper()
	vec := heap.VectorOf[heap.ObjectData](store, kind.Object)
	return vec.Push(heap.ObjectData{
		Proto: value.Null,
		Shape: kind.Ref{Kind: kind.Shape, Index: shapeIdx},
		Slots: slots,
	})
}

func pushShape(t *testing.T, store *heap.Store) kind.Index {
	t.Helper()
	vec := heap.VectorOf[heap.ShapeData](store, kind.Shape)
	return vec.Push(heap.ShapeData{})
}

func TestMarkVisitsReachableObjectsOnly(t *testing.T) {
	store := newTestStore(t)
	shapeIdx := pushShape(t, store)

	b := pushObject(t, store, shapeIdx)
	a := pushObject(t, store, shapeIdx, value.FromHeap(kind.Object, b))
	_ = pushObject(t, store, shapeIdx) // unreachable

	roots := gc.Roots{Sources: []gc.RootSource{gc.IndexRoots{Kind: kind.Object, Indices: []kind.Index{a}}}}
	bitmaps := gc.Mark(store, roots)

	assert.True(t, bitmaps[kind.Object].IsSet(a))
	assert.True(t, bitmaps[kind.Object].IsSet(b))
	assert.False(t, bitmaps[kind.Object].IsSet(2))
	assert.True(t, bitmaps[kind.Shape].IsSet(shapeIdx))
}

func TestCollectReclaimsUnreachableAndRewritesSurvivorReferences(t *testing.T) {
	store := newTestStore(t)
	shapeIdx := pushShape(t, store)

	c := pushObject(t, store, shapeIdx)
	_ = pushObject(t, store, shapeIdx) // dropped, sits between b and c
	b := pushObject(t, store, shapeIdx, value.FromHeap(kind.Object, c))
	_ = pushObject(t, store, shapeIdx) // dropped
	a := pushObject(t, store, shapeIdx, value.FromHeap(kind.Object, b))

	rootIdx := []kind.Index{a}
	indexRoots := gc.IndexRoots{Kind: kind.Object, Indices: rootIdx}
	roots := gc.Roots{Sources: []gc.RootSource{indexRoots}}

	mayGC := gc.NewMayGC()
	stats, err := gc.Collect(store, roots, &mayGC, gc.Options{CheckInvariants: true})
	require.NoError(t, err)

	assert.Equal(t, kind.Index(3), stats.LiveCounts[kind.Object])
	assert.Equal(t, kind.Index(2), stats.Reclaimed[kind.Object])
	assert.Equal(t, kind.Index(3), store.Len(kind.Object))

	newA := indexRoots.Indices[0]
	objs := heap.VectorOf[heap.ObjectData](store, kind.Object)
	aRec := objs.Get(newA)
	require.Len(t, aRec.Slots, 1)
	bIdx := aRec.Slots[0].HeapIndex()
	bRec := objs.Get(bIdx)
	require.Len(t, bRec.Slots, 1)
	cIdx := bRec.Slots[0].HeapIndex()
	assert.NotNil(t, objs.Get(cIdx))
}

func TestDoubleCollectionWithNoMutationIsStable(t *testing.T) {
	store := newTestStore(t)
	shapeIdx := pushShape(t, store)
	b := pushObject(t, store, shapeIdx)
	a := pushObject(t, store, shapeIdx, value.FromHeap(kind.Object, b))

	indexRoots := gc.IndexRoots{Kind: kind.Object, Indices: []kind.Index{a}}
	roots := gc.Roots{Sources: []gc.RootSource{indexRoots}}
	mayGC := gc.NewMayGC()

	first, err := gc.Collect(store, roots, &mayGC, gc.Options{CheckInvariants: true})
	require.NoError(t, err)
	second, err := gc.Collect(store, roots, &mayGC, gc.Options{CheckInvariants: true})
	require.NoError(t, err)

	assert.Equal(t, first.LiveCounts, second.LiveCounts)
	assert.Equal(t, kind.Index(0), second.Reclaimed[kind.Object])
}

func TestSoleRootCollapsesToIndexZero(t *testing.T) {
	store := newTestStore(t)
	shapeIdx := pushShape(t, store)
	obj := pushObject(t, store, shapeIdx)

	indexRoots := gc.IndexRoots{Kind: kind.Object, Indices: []kind.Index{obj}}
	roots := gc.Roots{Sources: []gc.RootSource{indexRoots}}
	mayGC := gc.NewMayGC()

	_, err := gc.Collect(store, roots, &mayGC, gc.Options{})
	require.NoError(t, err)

	assert.Equal(t, kind.Index(1), store.Len(kind.Object))
	assert.Equal(t, kind.Index(0), indexRoots.Indices[0])
}

func TestParallelKindsEveryOtherPairRemoved(t *testing.T) {
	store := newTestStore(t)
	strs := heap.VectorOf[heap.StringData](store, kind.String)
	shapeIdx := pushShape(t, store)

	var keptStrings []kind.Index
	var keptObjects []kind.Index
	for i := 0; i < 10; i++ {
		sIdx := strs.Push(heap.StringData{Text: "s"})
		oIdx := pushObject(t, store, shapeIdx)
		if i%2 == 0 {
			keptStrings = append(keptStrings, sIdx)
			keptObjects = append(keptObjects, oIdx)
		}
	}

	roots := gc.Roots{Sources: []gc.RootSource{
		gc.IndexRoots{Kind: kind.String, Indices: keptStrings},
		gc.IndexRoots{Kind: kind.Object, Indices: keptObjects},
	}}
	mayGC := gc.NewMayGC()
	stats, err := gc.Collect(store, roots, &mayGC, gc.Options{CheckInvariants: true})
	require.NoError(t, err)

	assert.Equal(t, kind.Index(5), stats.LiveCounts[kind.String])
	assert.Equal(t, kind.Index(5), stats.LiveCounts[kind.Object])
}
