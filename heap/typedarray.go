package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
)

// ElementType enumerates the fixed set of typed-array element kinds
// ECMAScript defines (Int8Array through Float64Array and friends).
type ElementType uint8

const (
	ElementInt8 ElementType = iota
	ElementUint8
	ElementUint8Clamped
	ElementInt16
	ElementUint16
	ElementInt32
	ElementUint32
	ElementFloat32
	ElementFloat64
	ElementBigInt64
	ElementBigUint64
)

// TypedArrayData backs kind.TypedArray: a typed view over an
// ArrayBuffer, interpreting its bytes as a dense array of ElementType.
type TypedArrayData struct {
	ObjectData
	Buffer     kind.Ref // kind.ArrayBuffer
	ByteOffset uint32
	Length     uint32
	Element    ElementType
	TrackedLen bool
}

func traceTypedArray(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[TypedArrayData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
	rec.Buffer.Visit(v)
}

func debugTypedArray(store kind.Store, idx kind.Index) string {
	rec := storeVector[TypedArrayData](store).Get(idx)
	return fmt.Sprintf("TypedArray#%d{len=%d}", idx, rec.Length)
}

func init() {
	kind.Register(kind.TypedArray, kind.Funcs{Trace: traceTypedArray, DebugPrint: debugTypedArray})
}
