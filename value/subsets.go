package value

import "github.com/heapkit/heapkit/kind"

// Object is a Value statically known to be one of the object-like
// heap kinds (plain object, array, any function flavor, and the
// built-in object-shaped kinds that behave like ordinary objects for
// property access purposes).
type Object struct{ v Value }

// TryObject narrows v to Object, or reports ok=false if v's kind
// isn't one of the object-like kinds.
func TryObject(v Value) (o Object, ok bool) {
	if !v.tag.IsHeap() || !isObjectKind(v.tag.kindOf()) {
		return Object{}, false
	}
	return Object{v: v}, true
}

func isObjectKind(k kind.Kind) bool {
	switch k {
	case kind.Object, kind.Array, kind.OrdinaryFunction, kind.BuiltinFunction,
		kind.BoundFunction, kind.ArrayBuffer, kind.DataView, kind.TypedArray,
		kind.Map, kind.Set, kind.WeakMap, kind.WeakSet, kind.Date, kind.RegExp,
		kind.Error, kind.Proxy, kind.Promise:
		return true
	default:
		return false
	}
}

// AsValue widens o back to a plain Value. Total, per spec.md §3.
func (o Object) AsValue() Value { return o.v }

// PropertyKey is a Value statically known to be either an
// interned/inline string or a Symbol — the two JS property key kinds.
type PropertyKey struct{ v Value }

// TryPropertyKey narrows v to PropertyKey.
func TryPropertyKey(v Value) (PropertyKey, bool) {
	if v.IsInlineString() {
		return PropertyKey{v: v}, true
	}
	if v.tag.IsHeap() && (v.tag.kindOf() == kind.String || v.tag.kindOf() == kind.Symbol) {
		return PropertyKey{v: v}, true
	}
	return PropertyKey{}, false
}

func (p PropertyKey) AsValue() Value { return p.v }

// Numeric is a Value statically known to be a Number or BigInt
// (immediate small int, inline bigint, or their heap-backed forms).
type Numeric struct{ v Value }

func TryNumeric(v Value) (Numeric, bool) {
	if v.IsSmallInt() || v.IsInlineBigInt() {
		return Numeric{v: v}, true
	}
	if v.tag.IsHeap() && (v.tag.kindOf() == kind.Number || v.tag.kindOf() == kind.BigInt) {
		return Numeric{v: v}, true
	}
	return Numeric{}, false
}

func (n Numeric) AsValue() Value { return n.v }

// Function is a Value statically known to be callable: an ordinary,
// builtin, or bound function record.
type Function struct{ v Value }

func TryFunction(v Value) (Function, bool) {
	if !v.tag.IsHeap() {
		return Function{}, false
	}
	switch v.tag.kindOf() {
	case kind.OrdinaryFunction, kind.BuiltinFunction, kind.BoundFunction:
		return Function{v: v}, true
	default:
		return Function{}, false
	}
}

func (f Function) AsValue() Value { return f.v }

// Primitive is a Value statically known not to be an Object: every
// immediate, plus heap-backed String, Symbol, BigInt, and Number.
type Primitive struct{ v Value }

func TryPrimitive(v Value) (Primitive, bool) {
	if !v.tag.IsHeap() {
		return Primitive{v: v}, true
	}
	switch v.tag.kindOf() {
	case kind.String, kind.Symbol, kind.BigInt, kind.Number:
		return Primitive{v: v}, true
	default:
		return Primitive{}, false
	}
}

func (p Primitive) AsValue() Value { return p.v }
