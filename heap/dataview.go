package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
)

// DataViewData backs kind.DataView: a fixed-offset, fixed-length
// window over an ArrayBuffer's bytes, interpreted field-by-field by
// the host rather than this module.
type DataViewData struct {
	ObjectData
	Buffer      kind.Ref // kind.ArrayBuffer
	ByteOffset  uint32
	ByteLength  uint32
	TrackedLen  bool // true for a length-tracking view over a resizable buffer
}

func traceDataView(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[DataViewData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
	rec.Buffer.Visit(v)
}

func debugDataView(store kind.Store, idx kind.Index) string {
	rec := storeVector[DataViewData](store).Get(idx)
	return fmt.Sprintf("DataView#%d{off=%d len=%d}", idx, rec.ByteOffset, rec.ByteLength)
}

func init() {
	kind.Register(kind.DataView, kind.Funcs{Trace: traceDataView, DebugPrint: debugDataView})
}
