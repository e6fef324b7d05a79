package agent_test

import (
	"testing"

	"github.com/heapkit/heapkit/agent"
	"github.com/heapkit/heapkit/frame"
	"github.com/heapkit/heapkit/heap"
	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAgent(t *testing.T) *agent.Agent {
	t.Helper()
	a, err := agent.New(agent.Options{GrowthFactor: 2.0, CheckInvariants: true})
	require.NoError(t, err)
	return a
}

func pushObject(t *testing.T, store *heap.Store, shapeIdx kind.Index, slots ...value.Value) kind.Index {
	t.Helper()
	vec := heap.VectorOf[heap.ObjectData](store, kind.Object)
	return vec.Push(heap.ObjectData{
		Shape: kind.Ref{Kind: kind.Shape, Index: shapeIdx},
		Slots: slots,
	})
}

func TestNewRejectsInvalidGrowthFactor(t *testing.T) {
	_, err := agent.New(agent.Options{GrowthFactor: 1.0})
	assert.ErrorIs(t, err, agent.ErrInvalidGrowthFactor)
}

func TestNewAppliesDefaultGrowthFactorWhenZero(t *testing.T) {
	a, err := agent.New(agent.Options{})
	require.NoError(t, err)
	assert.NotNil(t, a)
}

func TestCollectReclaimsUnreachableObjectsReachableOnlyFromScopedHandle(t *testing.T) {
	a := newTestAgent(t)
	store := a.Store()

	shapeVec := heap.VectorOf[heap.ShapeData](store, kind.Shape)
	shapeIdx := shapeVec.Push(heap.ShapeData{})

	keep := pushObject(t, store, shapeIdx)
	_ = pushObject(t, store, shapeIdx) // unreachable

	a.ScopedTable().New(value.FromHeap(kind.Object, keep))

	stats, err := a.Collect()
	require.NoError(t, err)
	assert.Equal(t, kind.Index(1), stats.LiveCounts[kind.Object])
	assert.Equal(t, kind.Index(1), stats.Reclaimed[kind.Object])
}

func TestCollectRewritesExecutionContextStackRoots(t *testing.T) {
	a := newTestAgent(t)
	store := a.Store()

	shapeVec := heap.VectorOf[heap.ShapeData](store, kind.Shape)
	shapeIdx := shapeVec.Push(heap.ShapeData{})

	ctxVec := heap.VectorOf[heap.ExecutionContextData](store, kind.ExecutionContext)
	ctxIdx := ctxVec.Push(heap.ExecutionContextData{})

	_ = pushObject(t, store, shapeIdx) // dropped, shifts everything after it
	keep := pushObject(t, store, shapeIdx)

	a.Contexts().Push(frame.Frame{
		Context:  kind.Ref{Kind: kind.ExecutionContext, Index: ctxIdx},
		Operands: []value.Value{value.FromHeap(kind.Object, keep)},
	})

	_, err := a.Collect()
	require.NoError(t, err)

	assert.Equal(t, kind.Index(0), a.Contexts().Top().Operands[0].HeapIndex())
	assert.Equal(t, kind.Index(0), a.Contexts().Top().Context.Index)
}

func TestInternStringDeduplicatesAndSurvivesCollection(t *testing.T) {
	a := newTestAgent(t)

	first := a.InternString("hello")
	second := a.InternString("hello")
	assert.Equal(t, first.HeapIndex(), second.HeapIndex())

	stats, err := a.Collect()
	require.NoError(t, err)
	assert.Equal(t, kind.Index(1), stats.LiveCounts[kind.String])

	resolved := a.InternString("hello")
	assert.Equal(t, first.Ref().Kind, resolved.Ref().Kind)
}

func TestNewRealmIsRootedAcrossCollection(t *testing.T) {
	a := newTestAgent(t)
	ref := a.NewRealm()

	stats, err := a.Collect()
	require.NoError(t, err)
	assert.Equal(t, kind.Index(1), stats.LiveCounts[kind.Realm])
	assert.Equal(t, kind.Realm, ref.Kind)
}

func TestCloseReportsLiveGlobalHandlesAsLeaks(t *testing.T) {
	a, err := agent.New(agent.Options{GrowthFactor: 2.0, LeakDetectGlobals: true})
	require.NoError(t, err)

	a.GlobalTable().New(value.Undefined)

	err = a.Close()
	var agentErr *agent.Error
	require.ErrorAs(t, err, &agentErr)
	assert.Equal(t, agent.ErrKindLeak, agentErr.Kind)
}

func TestCloseWithNoLiveHandlesSucceeds(t *testing.T) {
	a := newTestAgent(t)
	assert.NoError(t, a.Close())
}

func TestCollectAfterCloseReturnsErrClosed(t *testing.T) {
	a := newTestAgent(t)
	require.NoError(t, a.Close())

	_, err := a.Collect()
	assert.ErrorIs(t, err, agent.ErrClosed)
}

func TestStatsReportsLiveCountsAndScopedDepth(t *testing.T) {
	a := newTestAgent(t)
	a.ScopedTable().New(value.Undefined)
	a.ScopedTable().New(value.Undefined)

	stats := a.Stats()
	assert.Equal(t, 2, stats.ScopedDepth)
	assert.Equal(t, 0, stats.LiveGlobals)
}
