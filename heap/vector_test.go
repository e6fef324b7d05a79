package heap

import (
	"testing"

	"github.com/heapkit/heapkit/kind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorPushGet(t *testing.T) {
	v := NewVector[int](0, false, nil)
	idx := v.Push(42)
	assert.Equal(t, kind.Index(0), idx)
	require.NotNil(t, v.Get(idx))
	assert.Equal(t, 42, *v.Get(idx))
	assert.Nil(t, v.Get(idx+1))
}

func TestVectorGrowsGeometrically(t *testing.T) {
	v := NewVector[int](1.5, false, nil)
	for i := 0; i < 100; i++ {
		got := v.Push(i)
		assert.Equal(t, kind.Index(i), got)
	}
	assert.Equal(t, kind.Index(100), v.Len())
	for i := 0; i < 100; i++ {
		assert.Equal(t, i, *v.Get(kind.Index(i)))
	}
}

func TestVectorConcurrentGrowthRetiresOldBacking(t *testing.T) {
	rq := NewRetireQueue()
	v := NewVector[int](1.5, true, rq)
	for i := 0; i < 20; i++ {
		v.Push(i)
	}
	assert.Positive(t, rq.Len())
	retired := rq.Drain()
	assert.NotEmpty(t, retired)
	assert.Zero(t, rq.Len())
}

func TestVectorCompactKeep(t *testing.T) {
	v := NewVector[string](0, false, nil)
	v.Push("a")
	v.Push("b")
	v.Push("c")
	v.CompactKeep([]kind.Index{0, 2})
	assert.Equal(t, kind.Index(2), v.Len())
	assert.Equal(t, "a", *v.Get(0))
	assert.Equal(t, "c", *v.Get(1))
}

func TestVectorTruncate(t *testing.T) {
	v := NewVector[int](0, false, nil)
	v.Push(1)
	v.Push(2)
	v.Push(3)
	v.Truncate(1)
	assert.Equal(t, kind.Index(1), v.Len())
	v.Truncate(5) // no-op, can't grow via Truncate
	assert.Equal(t, kind.Index(1), v.Len())
}

func TestVectorSatisfiesCompactable(t *testing.T) {
	var c Compactable = NewVector[int](0, false, nil)
	c.(*Vector[int]).Push(1)
	assert.Equal(t, kind.Index(1), c.Len())
}
