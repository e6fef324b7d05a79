package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// ObjectData is the record backing kind.Object: a plain ECMAScript
// object with a prototype link, an indirection to its current Shape
// (property layout), and the slice of property values the shape's
// slot assignment indexes into.
type ObjectData struct {
	Proto      value.Value // Object or Null
	Shape      kind.Ref    // kind.Shape
	Slots      []value.Value
	Extensible bool
}

func traceObject(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[ObjectData](store).Get(idx)
	traceObjectFields(rec, v)
}

func debugObject(store kind.Store, idx kind.Index) string {
	rec := storeVector[ObjectData](store).Get(idx)
	return fmt.Sprintf("Object#%d{slots=%d}", idx, len(rec.Slots))
}

func init() {
	kind.Register(kind.Object, kind.Funcs{Trace: traceObject, DebugPrint: debugObject})
}
