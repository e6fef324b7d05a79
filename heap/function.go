package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// OrdinaryFunctionData backs kind.OrdinaryFunction: a function defined
// by ECMAScript source, closing over an environment and pointing at
// the script that holds its compiled body (parsing and bytecode live
// outside this module).
type OrdinaryFunctionData struct {
	ObjectData
	Environment kind.Ref // kind.EnvironmentRecord
	Realm       kind.Ref // kind.Realm
	HomeObject  value.Value
	IsStrict    bool
}

// BuiltinFunctionData backs kind.BuiltinFunction: a host-implemented
// function. The record holds no callback; the host keeps the Go code
// that implements it outside the heap.
type BuiltinFunctionData struct {
	ObjectData
	Realm kind.Ref // kind.Realm
	Name  string
}

// BoundFunctionData backs kind.BoundFunction: the result of
// Function.prototype.bind, wrapping a target with a fixed this and a
// prefix of arguments.
type BoundFunctionData struct {
	ObjectData
	Target    value.Value
	BoundThis value.Value
	BoundArgs []value.Value
}

func traceOrdinaryFunction(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[OrdinaryFunctionData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
	rec.Environment.Visit(v)
	rec.Realm.Visit(v)
	rec.HomeObject.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
}

func traceBuiltinFunction(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[BuiltinFunctionData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
	rec.Realm.Visit(v)
}

func traceBoundFunction(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[BoundFunctionData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
	rec.Target.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	rec.BoundThis.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	for i := range rec.BoundArgs {
		rec.BoundArgs[i].VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
	}
}

// traceObjectFields is the common Proto/Shape/Slots walk every
// object-shaped record (Array, the three function flavors, Map, Set,
// ...) embeds ObjectData for and must replay in its own Trace, since
// Go has no field-promotion-aware interface dispatch.
func traceObjectFields(rec *ObjectData, v kind.Visitor) {
	rec.Proto.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	rec.Shape.Visit(v)
	for i := range rec.Slots {
		rec.Slots[i].VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
	}
}

func debugOrdinaryFunction(store kind.Store, idx kind.Index) string {
	return fmt.Sprintf("OrdinaryFunction#%d", idx)
}

func debugBuiltinFunction(store kind.Store, idx kind.Index) string {
	rec := storeVector[BuiltinFunctionData](store).Get(idx)
	return fmt.Sprintf("BuiltinFunction#%d{%s}", idx, rec.Name)
}

func debugBoundFunction(store kind.Store, idx kind.Index) string {
	return fmt.Sprintf("BoundFunction#%d", idx)
}

func init() {
	kind.Register(kind.OrdinaryFunction, kind.Funcs{Trace: traceOrdinaryFunction, DebugPrint: debugOrdinaryFunction})
	kind.Register(kind.BuiltinFunction, kind.Funcs{Trace: traceBuiltinFunction, DebugPrint: debugBuiltinFunction})
	kind.Register(kind.BoundFunction, kind.Funcs{Trace: traceBoundFunction, DebugPrint: debugBoundFunction})
}
