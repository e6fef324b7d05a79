package frame

import (
	"testing"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
	"github.com/stretchr/testify/assert"
)

func TestPushTopPop(t *testing.T) {
	s := NewStack()
	s.Push(Frame{Context: kind.Ref{Kind: kind.ExecutionContext, Index: 3}})
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, kind.Index(3), s.Top().Context.Index)

	s.Pop()
	assert.Equal(t, 0, s.Depth())
	assert.Panics(t, func() { s.Pop() })
}

func TestVisitAllWalksContextOperandsAndLocals(t *testing.T) {
	s := NewStack()
	s.Push(Frame{
		Context:  kind.Ref{Kind: kind.ExecutionContext, Index: 0},
		Operands: []value.Value{value.FromHeap(kind.Object, 5)},
		Locals:   []value.Value{value.FromHeap(kind.Object, 6)},
	})

	var seen []kind.Ref
	s.VisitAll(visitorFunc(func(k *kind.Kind, idx *kind.Index) {
		seen = append(seen, kind.Ref{Kind: *k, Index: *idx})
	}))

	assert.ElementsMatch(t, []kind.Ref{
		{Kind: kind.ExecutionContext, Index: 0},
		{Kind: kind.Object, Index: 5},
		{Kind: kind.Object, Index: 6},
	}, seen)
}

func TestVisitAllRewritesInPlace(t *testing.T) {
	s := NewStack()
	s.Push(Frame{Operands: []value.Value{value.FromHeap(kind.Object, 5)}})

	s.VisitAll(visitorFunc(func(_ *kind.Kind, idx *kind.Index) {
		if *idx == 5 {
			*idx = 9
		}
	}))

	assert.Equal(t, kind.Index(9), s.Top().Operands[0].HeapIndex())
}

type visitorFunc func(k *kind.Kind, idx *kind.Index)

func (f visitorFunc) VisitRef(k *kind.Kind, idx *kind.Index) { f(k, idx) }
