package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// ArrayData backs kind.Array. Dense elements live in Elements; sparse
// or non-index properties are the same shape-indexed slot mechanism
// as ObjectData, reused here through an embedded ObjectData so an
// Array is traced and shaped exactly like a plain object plus its
// dense storage.
type ArrayData struct {
	ObjectData
	Elements []value.Value
	Length   uint32
}

func traceArray(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[ArrayData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
	for i := range rec.Elements {
		rec.Elements[i].VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
	}
}

func debugArray(store kind.Store, idx kind.Index) string {
	rec := storeVector[ArrayData](store).Get(idx)
	return fmt.Sprintf("Array#%d{len=%d}", idx, rec.Length)
}

func init() {
	kind.Register(kind.Array, kind.Funcs{Trace: traceArray, DebugPrint: debugArray})
}
