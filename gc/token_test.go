package gc_test

import (
	"testing"

	"github.com/heapkit/heapkit/gc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundGetSucceedsWithinSameEpoch(t *testing.T) {
	mayGC := gc.NewMayGC()
	noGC := mayGC.DeriveNoGC()
	b := gc.Bind(42, noGC)
	assert.Equal(t, 42, b.Get())
}

func TestBoundGetPanicsAfterEpochBump(t *testing.T) {
	store := newTestStore(t)
	shapeIdx := pushShape(t, store)
	_ = pushObject(t, store, shapeIdx)

	mayGC := gc.NewMayGC()
	noGC := mayGC.DeriveNoGC()
	b := gc.Bind("bound-before-collect", noGC)

	roots := gc.Roots{}
	_, err := gc.Collect(store, roots, &mayGC, gc.Options{})
	require.NoError(t, err)

	assert.Panics(t, func() { b.Get() })
}

func TestDeriveNoGCAfterCollectSeesFreshEpoch(t *testing.T) {
	store := newTestStore(t)
	shapeIdx := pushShape(t, store)
	_ = pushObject(t, store, shapeIdx)

	mayGC := gc.NewMayGC()
	before := mayGC.Epoch()
	_, err := gc.Collect(store, gc.Roots{}, &mayGC, gc.Options{})
	require.NoError(t, err)
	after := mayGC.Epoch()
	assert.Greater(t, after, before)

	noGC := mayGC.DeriveNoGC()
	b := gc.Bind("bound-after-collect", noGC)
	assert.Equal(t, "bound-after-collect", b.Get())
}

func TestUnbindReturnsPayloadWithoutEpochCheck(t *testing.T) {
	mayGC := gc.NewMayGC()
	noGC := mayGC.DeriveNoGC()
	b := gc.Bind(7, noGC)
	assert.Equal(t, 7, gc.Unbind(b))
}
