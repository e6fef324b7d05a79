package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
)

// StringData backs kind.String: a heap-resident string too long to
// fit in a Value's 7-byte inline budget. Interned through the owning
// Store's InternTables so two equal long strings share one record.
type StringData struct {
	Text string
}

func traceString(kind.Store, kind.Index, kind.Visitor) {
	// Strings hold no outgoing references.
}

func debugString(store kind.Store, idx kind.Index) string {
	rec := storeVector[StringData](store).Get(idx)
	s := rec.Text
	if len(s) > 24 {
		s = s[:24] + "..."
	}
	return fmt.Sprintf("String#%d(%q)", idx, s)
}

func init() {
	kind.Register(kind.String, kind.Funcs{Trace: traceString, DebugPrint: debugString})
}
