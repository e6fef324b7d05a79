package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// EnvironmentKind distinguishes the environment record flavors
// ECMAScript §9.1 defines. This module stores them as one heap kind
// with a flavor tag rather than four heap kinds, since they share
// every field except ThisValue/HasThis.
type EnvironmentKind uint8

const (
	EnvDeclarative EnvironmentKind = iota
	EnvFunction
	EnvGlobal
	EnvModule
)

type binding struct {
	Value     value.Value
	Mutable   bool
	Initialized bool
}

// EnvironmentRecordData backs kind.EnvironmentRecord.
type EnvironmentRecordData struct {
	Flavor    EnvironmentKind
	Outer     kind.Ref // kind.EnvironmentRecord; ignored unless HasOuter
	HasOuter  bool
	Bindings  map[string]binding
	ThisValue value.Value // meaningful for EnvFunction/EnvGlobal/EnvModule
	HasThis   bool
}

func traceEnvironmentRecord(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[EnvironmentRecordData](store).Get(idx)
	if rec.HasOuter {
		rec.Outer.Visit(v)
	}
	for name, b := range rec.Bindings {
		b.Value.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
		rec.Bindings[name] = b
	}
	if rec.HasThis {
		rec.ThisValue.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	}
}

func debugEnvironmentRecord(store kind.Store, idx kind.Index) string {
	rec := storeVector[EnvironmentRecordData](store).Get(idx)
	return fmt.Sprintf("EnvironmentRecord#%d{%d bindings}", idx, len(rec.Bindings))
}

func init() {
	kind.Register(kind.EnvironmentRecord, kind.Funcs{Trace: traceEnvironmentRecord, DebugPrint: debugEnvironmentRecord})
}
