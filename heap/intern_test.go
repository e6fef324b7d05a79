package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternTablesLookupAndIntern(t *testing.T) {
	tb := NewInternTables()
	_, ok := tb.Lookup("hello world this is long enough to need interning")
	assert.False(t, ok)

	tb.Intern("hello world this is long enough to need interning", 7)
	idx, ok := tb.Lookup("hello world this is long enough to need interning")
	require.True(t, ok)
	assert.EqualValues(t, 7, idx)
}

func TestInternTablesWidthClassification(t *testing.T) {
	tb := NewInternTables()
	tb.Intern("plain ascii", 1)
	tb.Intern("全角文字", 2)

	assert.NotEqual(t, tb.WidthOf("全角文字"), tb.WidthOf("plain ascii"))
}
