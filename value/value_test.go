package value_test

import (
	"testing"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmediateSingletons(t *testing.T) {
	assert.True(t, value.Undefined.IsUndefined())
	assert.True(t, value.Null.IsNull())
	assert.True(t, value.True.IsBoolean())
	assert.True(t, value.True.AsBoolean())
	assert.False(t, value.False.AsBoolean())
	assert.False(t, value.Undefined.Equal(value.Null))
}

func TestSmallIntRoundTrip(t *testing.T) {
	v := value.SmallInt(-7)
	require.True(t, v.IsSmallInt())
	assert.Equal(t, int32(-7), v.AsSmallInt())
}

func TestInlineStringRoundTrip(t *testing.T) {
	v, ok := value.InlineString("hello")
	require.True(t, ok)
	assert.True(t, v.IsInlineString())
	assert.Equal(t, "hello", v.AsInlineString())

	_, ok = value.InlineString("too-long-for-inline")
	assert.False(t, ok)
}

func TestInlineStringEmptyAndBoundary(t *testing.T) {
	v, ok := value.InlineString("")
	require.True(t, ok)
	assert.Equal(t, "", v.AsInlineString())

	v, ok = value.InlineString("1234567")
	require.True(t, ok)
	assert.Equal(t, "1234567", v.AsInlineString())

	_, ok = value.InlineString("12345678")
	assert.False(t, ok)
}

func TestInlineBigIntRoundTrip(t *testing.T) {
	v, ok := value.InlineBigInt(true, []byte{0x01, 0x02, 0x03})
	require.True(t, ok)
	assert.True(t, v.IsInlineBigInt())
	neg, mag := v.AsInlineBigInt()
	assert.True(t, neg)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, mag)
}

func TestHeapValueRoundTrip(t *testing.T) {
	v := value.FromHeap(kind.Object, 42)
	require.True(t, v.IsHeapBacked())
	assert.Equal(t, kind.Object, v.HeapKind())
	assert.Equal(t, kind.Index(42), v.HeapIndex())
	assert.Equal(t, kind.Ref{Kind: kind.Object, Index: 42}, v.Ref())
}

func TestEqualityIsBitwise(t *testing.T) {
	a := value.FromHeap(kind.Object, 1)
	b := value.FromHeap(kind.Object, 1)
	c := value.FromHeap(kind.Object, 2)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestVisitSelfRewritesInPlace(t *testing.T) {
	v := value.FromHeap(kind.String, 10)
	v.VisitSelf(func(k *kind.Kind, idx *kind.Index) {
		assert.Equal(t, kind.String, *k)
		assert.Equal(t, kind.Index(10), *idx)
		*idx = 3
	})
	assert.Equal(t, kind.Index(3), v.HeapIndex())
	assert.Equal(t, kind.String, v.HeapKind())
}

func TestVisitSelfSkipsImmediates(t *testing.T) {
	v := value.SmallInt(5)
	called := false
	v.VisitSelf(func(*kind.Kind, *kind.Index) { called = true })
	assert.False(t, called)
}

func TestSubsetConversions(t *testing.T) {
	obj := value.FromHeap(kind.Array, 1)
	o, ok := value.TryObject(obj)
	require.True(t, ok)
	assert.True(t, o.AsValue().Equal(obj))

	_, ok = value.TryObject(value.SmallInt(1))
	assert.False(t, ok)

	fn := value.FromHeap(kind.BuiltinFunction, 2)
	f, ok := value.TryFunction(fn)
	require.True(t, ok)
	assert.True(t, f.AsValue().Equal(fn))

	pk, ok := value.TryPropertyKey(value.FromHeap(kind.Symbol, 3))
	require.True(t, ok)
	assert.True(t, pk.AsValue().IsHeapBacked())

	str, _ := value.InlineString("k")
	pk2, ok := value.TryPropertyKey(str)
	require.True(t, ok)
	assert.Equal(t, str, pk2.AsValue())

	num, ok := value.TryNumeric(value.SmallInt(4))
	require.True(t, ok)
	assert.Equal(t, int32(4), num.AsValue().AsSmallInt())

	prim, ok := value.TryPrimitive(value.FromHeap(kind.String, 5))
	require.True(t, ok)
	assert.True(t, prim.AsValue().IsHeapBacked())

	_, ok = value.TryPrimitive(value.FromHeap(kind.Object, 6))
	assert.False(t, ok)
}
