package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// ScriptData backs kind.Script: a realm-bound unit of top-level
// ECMAScript code. The parsed/compiled form lives outside this module,
// with the host — this record only carries
// what the collector and runtime bookkeeping need: which realm the
// script runs in and its own top-level environment.
type ScriptData struct {
	Realm       kind.Ref // kind.Realm
	Environment kind.Ref // kind.EnvironmentRecord
	HostDefined value.Value
}

// ModuleData backs kind.Module: an ECMAScript module record. Imports
// and exports resolve to other Module records through the
// RequestedModules graph; this collector traces that graph just like
// any other outgoing reference, so a cycle of modules keeps itself
// alive only as long as something outside the cycle reaches in.
type ModuleData struct {
	Realm             kind.Ref // kind.Realm
	Environment       kind.Ref // kind.EnvironmentRecord
	Namespace         value.Value
	RequestedModules  []kind.Ref // kind.Module
	HostDefined       value.Value
}

func traceScript(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[ScriptData](store).Get(idx)
	rec.Realm.Visit(v)
	rec.Environment.Visit(v)
	rec.HostDefined.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
}

func traceModule(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[ModuleData](store).Get(idx)
	rec.Realm.Visit(v)
	rec.Environment.Visit(v)
	rec.Namespace.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	for i := range rec.RequestedModules {
		rec.RequestedModules[i].Visit(v)
	}
	rec.HostDefined.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
}

func debugScript(store kind.Store, idx kind.Index) string {
	return fmt.Sprintf("Script#%d", idx)
}

func debugModule(store kind.Store, idx kind.Index) string {
	rec := storeVector[ModuleData](store).Get(idx)
	return fmt.Sprintf("Module#%d{%d requested}", idx, len(rec.RequestedModules))
}

func init() {
	kind.Register(kind.Script, kind.Funcs{Trace: traceScript, DebugPrint: debugScript})
	kind.Register(kind.Module, kind.Funcs{Trace: traceModule, DebugPrint: debugModule})
}
