package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// ProxyData backs kind.Proxy: a Target/Handler pair. A revoked proxy
// keeps both values as Undefined; Revoked distinguishes that state
// from a proxy legitimately wrapping undefined (which ECMAScript
// disallows, but this module doesn't enforce host-language
// invariants).
type ProxyData struct {
	Target  value.Value
	Handler value.Value
	Revoked bool
}

func traceProxy(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[ProxyData](store).Get(idx)
	rec.Target.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	rec.Handler.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
}

func debugProxy(store kind.Store, idx kind.Index) string {
	rec := storeVector[ProxyData](store).Get(idx)
	if rec.Revoked {
		return fmt.Sprintf("Proxy#%d(revoked)", idx)
	}
	return fmt.Sprintf("Proxy#%d", idx)
}

func init() {
	kind.Register(kind.Proxy, kind.Funcs{Trace: traceProxy, DebugPrint: debugProxy})
}
