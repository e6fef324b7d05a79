package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// PropertyKeyStorageData backs kind.PropertyKeyStorage: the ordered
// list of PropertyKeys a Shape's slot assignment indexes into. Shapes
// that share a common prefix (the usual case for objects built by the
// same constructor) share one PropertyKeyStorage record up to the
// point they diverge, rather than each carrying its own copy.
type PropertyKeyStorageData struct {
	Keys []value.Value // each a PropertyKey-shaped Value
}

func tracePropertyKeyStorage(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[PropertyKeyStorageData](store).Get(idx)
	for i := range rec.Keys {
		rec.Keys[i].VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
	}
}

func debugPropertyKeyStorage(store kind.Store, idx kind.Index) string {
	rec := storeVector[PropertyKeyStorageData](store).Get(idx)
	return fmt.Sprintf("PropertyKeyStorage#%d{%d keys}", idx, len(rec.Keys))
}

func init() {
	kind.Register(kind.PropertyKeyStorage, kind.Funcs{Trace: tracePropertyKeyStorage, DebugPrint: debugPropertyKeyStorage})
}
