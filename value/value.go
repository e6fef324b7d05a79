// Package value defines the tagged Value discriminator used to
// represent every ECMAScript value on the heap, plus the narrowed
// subset enums (Object, PropertyKey, Numeric, Function, Primitive)
// that statically exclude discriminants a caller has already proven
// absent.
//
// Value is a fixed-size struct, not NaN-boxed: a small integer,
// inline string (up to 7 bytes), inline bigint, or one of the
// well-known singletons lives directly in the payload; anything
// larger is a (kind, index) pair into the matching heap.Vector.
package value

import "github.com/heapkit/heapkit/kind"

// Tag discriminates a Value's payload. Tags below firstHeapTag are
// immediates; tags at or above it name a heap kind one-to-one with
// kind.Kind (tag - firstHeapTag == kind.Kind value).
type Tag uint8

const (
	TagUndefined Tag = iota
	TagNull
	TagBoolean
	TagSmallInt
	TagInlineString
	TagInlineBigInt

	firstHeapTag
)

// heapTag returns the Tag that addresses heap kind k.
func heapTag(k kind.Kind) Tag { return firstHeapTag + Tag(k) }

// kindOf recovers the heap kind a heap Tag addresses. Only valid when
// IsHeap() is true.
func (t Tag) kindOf() kind.Kind { return kind.Kind(t - firstHeapTag) }

// IsHeap reports whether the tag addresses a heap-resident record.
func (t Tag) IsHeap() bool { return t >= firstHeapTag }

// Value is a tagged (discriminant, payload) pair. Two Values compare
// identity-equal iff their (tag, payload) pairs are bitwise equal;
// heap compaction must rewrite every live copy of a heap Value
// consistently to preserve this.
type Value struct {
	tag     Tag
	payload uint64
}

// Tag returns the discriminant.
func (v Value) Tag() Tag { return v.tag }

// Equal is bitwise (tag, payload) equality.
func (v Value) Equal(o Value) bool { return v.tag == o.tag && v.payload == o.payload }

// IsHeapBacked reports whether v addresses a record on some
// kind.Kind vector, as opposed to carrying an immediate payload.
func (v Value) IsHeapBacked() bool { return v.tag.IsHeap() }

// HeapKind returns the heap kind v addresses. Only meaningful when
// IsHeapBacked is true.
func (v Value) HeapKind() kind.Kind { return v.tag.kindOf() }

// HeapIndex returns the heap index v addresses. Only meaningful when
// IsHeapBacked is true.
func (v Value) HeapIndex() kind.Index { return kind.Index(uint32(v.payload)) }

// Ref returns (HeapKind(), HeapIndex()) as a kind.Ref, the shape the
// trace dispatcher and collector operate on.
func (v Value) Ref() kind.Ref { return kind.Ref{Kind: v.HeapKind(), Index: v.HeapIndex()} }

// rewrite replaces a heap Value's index in place, used only by the
// collector's rewriting visitor during compaction. It is not part of
// the mutator-facing API.
func (v *Value) rewrite(newIndex kind.Index) {
	v.payload = uint64(uint32(newIndex))
}

// VisitSelf implements the single-reference case of kind.Visitor for
// callers that hold one Value and want to run it through the trace
// dispatch machinery (e.g. roots). It exposes mutable (*Kind, *Index)
// views consistent with kind.Visitor's contract.
func (v *Value) VisitSelf(visit func(k *kind.Kind, idx *kind.Index)) {
	if !v.tag.IsHeap() {
		return
	}
	k := v.tag.kindOf()
	idx := v.HeapIndex()
	visit(&k, &idx)
	v.tag = heapTag(k)
	v.rewrite(idx)
}

// FromHeap constructs a Value addressing (k, idx).
func FromHeap(k kind.Kind, idx kind.Index) Value {
	return Value{tag: heapTag(k), payload: uint64(uint32(idx))}
}

// Undefined, Null, and the booleans are the immediate singletons.
var (
	Undefined = Value{tag: TagUndefined}
	Null      = Value{tag: TagNull}
	True      = Value{tag: TagBoolean, payload: 1}
	False     = Value{tag: TagBoolean, payload: 0}
)

// Boolean returns True or False.
func Boolean(b bool) Value {
	if b {
		return True
	}
	return False
}

// IsUndefined, IsNull, IsBoolean report on the immediate singletons.
func (v Value) IsUndefined() bool { return v.tag == TagUndefined }
func (v Value) IsNull() bool      { return v.tag == TagNull }
func (v Value) IsBoolean() bool   { return v.tag == TagBoolean }

// AsBoolean returns the boolean payload. Only meaningful when
// IsBoolean is true.
func (v Value) AsBoolean() bool { return v.payload != 0 }

// SmallInt returns a Value holding an inline 32-bit integer. Values
// outside int32 range need a heap-backed Number record instead.
func SmallInt(n int32) Value {
	return Value{tag: TagSmallInt, payload: uint64(uint32(n))}
}

// IsSmallInt reports whether v is an inline integer.
func (v Value) IsSmallInt() bool { return v.tag == TagSmallInt }

// AsSmallInt returns the inline integer payload. Only meaningful when
// IsSmallInt is true.
func (v Value) AsSmallInt() int32 { return int32(uint32(v.payload)) }
