package heap

import (
	"testing"

	"github.com/heapkit/heapkit/kind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutAndVectorOf(t *testing.T) {
	s := &Store{retire: NewRetireQueue(), interned: NewInternTables()}
	vec := NewVector[StringData](0, false, s.retire)
	Put(s, kind.String, vec)

	got := VectorOf[StringData](s, kind.String)
	require.Same(t, vec, got)

	idx := got.Push(StringData{Text: "hi"})
	assert.Equal(t, kind.Index(1), s.Len(kind.String))
	assert.Equal(t, "hi", s.Compactable(kind.String).(*Vector[StringData]).Get(idx).Text)
}

func TestStoreVectorForIsOpaqueHandle(t *testing.T) {
	s := &Store{retire: NewRetireQueue(), interned: NewInternTables()}
	vec := NewVector[NumberData](0, false, s.retire)
	Put(s, kind.Number, vec)

	handle := s.VectorFor(kind.Number)
	idx := vec.Push(NumberData{F: 3.5})
	kind.Trace(handle, kind.Number, idx, noopVisitor{})
}

type noopVisitor struct{}

func (noopVisitor) VisitRef(*kind.Kind, *kind.Index) {}

func TestNewStorePanicsOnMissingKind(t *testing.T) {
	assert.Panics(t, func() {
		NewStore(NewRetireQueue(), func(s *Store) {
			Put(s, kind.String, NewVector[StringData](0, false, s.retire))
			// every other kind left unregistered
		})
	})
}
