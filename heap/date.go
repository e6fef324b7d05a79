package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
)

// DateData backs kind.Date. TimeValueMillis is NaN for an Invalid
// Date; callers test it with math.IsNaN, not against a sentinel
// constant.
type DateData struct {
	ObjectData
	TimeValueMillis float64
}

func traceDate(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[DateData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
}

func debugDate(store kind.Store, idx kind.Index) string {
	rec := storeVector[DateData](store).Get(idx)
	return fmt.Sprintf("Date#%d(%v ms)", idx, rec.TimeValueMillis)
}

func init() {
	kind.Register(kind.Date, kind.Funcs{Trace: traceDate, DebugPrint: debugDate})
}
