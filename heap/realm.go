package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// RealmData backs kind.Realm: the global object, its environment, and
// the intrinsic objects every built-in in that realm is wired to, per
// ECMAScript §9.3.
type RealmData struct {
	GlobalObject value.Value
	GlobalEnv    kind.Ref // kind.EnvironmentRecord; any other Kind (the zero Ref) means none yet
	Intrinsics   map[string]value.Value
}

func traceRealm(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[RealmData](store).Get(idx)
	rec.GlobalObject.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	if rec.GlobalEnv.Kind == kind.EnvironmentRecord {
		rec.GlobalEnv.Visit(v)
	}
	for name, val := range rec.Intrinsics {
		val.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
		rec.Intrinsics[name] = val
	}
}

func debugRealm(store kind.Store, idx kind.Index) string {
	rec := storeVector[RealmData](store).Get(idx)
	return fmt.Sprintf("Realm#%d{%d intrinsics}", idx, len(rec.Intrinsics))
}

func init() {
	kind.Register(kind.Realm, kind.Funcs{Trace: traceRealm, DebugPrint: debugRealm})
}
