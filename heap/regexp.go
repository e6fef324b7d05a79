package heap

import (
	"fmt"
	"regexp"

	"github.com/heapkit/heapkit/kind"
)

// RegExpData backs kind.RegExp. Compiled is built from Source/Flags by
// the host at construction time; this module never re-derives it.
type RegExpData struct {
	ObjectData
	Source    string
	Flags     string
	Compiled  *regexp.Regexp
	LastIndex uint32
}

func traceRegExp(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[RegExpData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
}

func debugRegExp(store kind.Store, idx kind.Index) string {
	rec := storeVector[RegExpData](store).Get(idx)
	return fmt.Sprintf("RegExp#%d(/%s/%s)", idx, rec.Source, rec.Flags)
}

func init() {
	kind.Register(kind.RegExp, kind.Funcs{Trace: traceRegExp, DebugPrint: debugRegExp})
}
