package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
)

// NumberData backs kind.Number, used for float64 values and integers
// outside value.SmallInt's int32 range. Most integers and all NaN/Inf
// handling flow through here rather than through the immediate tag.
type NumberData struct {
	F float64
}

func traceNumber(kind.Store, kind.Index, kind.Visitor) {
	// Numbers hold no outgoing references.
}

func debugNumber(store kind.Store, idx kind.Index) string {
	rec := storeVector[NumberData](store).Get(idx)
	return fmt.Sprintf("Number#%d(%v)", idx, rec.F)
}

func init() {
	kind.Register(kind.Number, kind.Funcs{Trace: traceNumber, DebugPrint: debugNumber})
}
