package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// ErrorData backs kind.Error: the heap-resident record underlying
// Error/TypeError/RangeError/... instances. Every JS error subtype
// shares the one Error heap kind; the record has no subtype field.
type ErrorData struct {
	ObjectData
	Message value.Value // String, or Undefined
	Cause   value.Value // any Value, or Undefined
	Stack   string
}

func traceError(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[ErrorData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
	rec.Message.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	rec.Cause.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
}

func debugError(store kind.Store, idx kind.Index) string {
	return fmt.Sprintf("Error#%d", idx)
}

func init() {
	kind.Register(kind.Error, kind.Funcs{Trace: traceError, DebugPrint: debugError})
}
