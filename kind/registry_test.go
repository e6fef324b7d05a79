package kind_test

import (
	"testing"

	"github.com/heapkit/heapkit/kind"

	// Imported for side effects: each owning package registers its
	// kinds' dispatch funcs in init(). This is the only place the
	// whole module is pulled together to assert completeness.
	_ "github.com/heapkit/heapkit/heap"

	"github.com/stretchr/testify/assert"
)

func TestAllKindsRegistered(t *testing.T) {
	missing := kind.AllRegistered()
	assert.Empty(t, missing, "heap kinds missing a registered trace function: %v", missing)
}

func TestKindStringRoundTrips(t *testing.T) {
	for k := kind.Kind(0); k < kind.Count; k++ {
		assert.NotEmpty(t, k.String())
		assert.True(t, k.Valid())
	}
	assert.False(t, kind.Count.Valid())
}

func TestDoubleRegisterPanics(t *testing.T) {
	assert.Panics(t, func() {
		kind.Register(kind.Object, kind.Funcs{Trace: func(kind.Store, kind.Index, kind.Visitor) {}})
	})
}

func TestRegisterInvalidKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		kind.Register(kind.Shape+1, kind.Funcs{})
	})
}
