package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// IteratorRecordData backs kind.IteratorRecord: the (iterator object,
// next method, done flag) triple ECMAScript threads through every
// for-of loop and spread operation.
type IteratorRecordData struct {
	Iterator value.Value
	NextMethod value.Value
	Done     bool
}

func traceIteratorRecord(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[IteratorRecordData](store).Get(idx)
	rec.Iterator.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	rec.NextMethod.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
}

func debugIteratorRecord(store kind.Store, idx kind.Index) string {
	rec := storeVector[IteratorRecordData](store).Get(idx)
	return fmt.Sprintf("IteratorRecord#%d{done=%v}", idx, rec.Done)
}

func init() {
	kind.Register(kind.IteratorRecord, kind.Funcs{Trace: traceIteratorRecord, DebugPrint: debugIteratorRecord})
}
