package heap

import "github.com/heapkit/heapkit/kind"

// NewDefaultStore builds a Store with one vector per kind, each using
// growthFactor and concurrent mode as given and sharing rq as their
// retire queue. This is the constructor package agent uses to build
// its single per-agent Store; it also saves every test in this module
// and in package gc from hand-registering all 31 kinds themselves.
func NewDefaultStore(growthFactor float64, concurrent bool, rq *RetireQueue) *Store {
	return NewStore(rq, func(s *Store) {
		Put(s, kind.Object, NewVector[ObjectData](growthFactor, concurrent, rq))
		Put(s, kind.Array, NewVector[ArrayData](growthFactor, concurrent, rq))
		Put(s, kind.OrdinaryFunction, NewVector[OrdinaryFunctionData](growthFactor, concurrent, rq))
		Put(s, kind.BuiltinFunction, NewVector[BuiltinFunctionData](growthFactor, concurrent, rq))
		Put(s, kind.BoundFunction, NewVector[BoundFunctionData](growthFactor, concurrent, rq))
		Put(s, kind.String, NewVector[StringData](growthFactor, concurrent, rq))
		Put(s, kind.Symbol, NewVector[SymbolData](growthFactor, concurrent, rq))
		Put(s, kind.BigInt, NewVector[BigIntData](growthFactor, concurrent, rq))
		Put(s, kind.Number, NewVector[NumberData](growthFactor, concurrent, rq))
		Put(s, kind.ArrayBuffer, NewVector[ArrayBufferData](growthFactor, concurrent, rq))
		Put(s, kind.DataView, NewVector[DataViewData](growthFactor, concurrent, rq))
		Put(s, kind.TypedArray, NewVector[TypedArrayData](growthFactor, concurrent, rq))
		Put(s, kind.Map, NewVector[MapData](growthFactor, concurrent, rq))
		Put(s, kind.Set, NewVector[SetData](growthFactor, concurrent, rq))
		Put(s, kind.WeakMap, NewVector[WeakMapData](growthFactor, concurrent, rq))
		Put(s, kind.WeakSet, NewVector[WeakSetData](growthFactor, concurrent, rq))
		Put(s, kind.Date, NewVector[DateData](growthFactor, concurrent, rq))
		Put(s, kind.RegExp, NewVector[RegExpData](growthFactor, concurrent, rq))
		Put(s, kind.Error, NewVector[ErrorData](growthFactor, concurrent, rq))
		Put(s, kind.Proxy, NewVector[ProxyData](growthFactor, concurrent, rq))
		Put(s, kind.Promise, NewVector[PromiseData](growthFactor, concurrent, rq))
		Put(s, kind.IteratorRecord, NewVector[IteratorRecordData](growthFactor, concurrent, rq))
		Put(s, kind.EnvironmentRecord, NewVector[EnvironmentRecordData](growthFactor, concurrent, rq))
		Put(s, kind.Realm, NewVector[RealmData](growthFactor, concurrent, rq))
		Put(s, kind.Script, NewVector[ScriptData](growthFactor, concurrent, rq))
		Put(s, kind.Module, NewVector[ModuleData](growthFactor, concurrent, rq))
		Put(s, kind.ExecutionContext, NewVector[ExecutionContextData](growthFactor, concurrent, rq))
		Put(s, kind.ReferenceRecord, NewVector[ReferenceRecordData](growthFactor, concurrent, rq))
		Put(s, kind.PropertyDescriptor, NewVector[PropertyDescriptorData](growthFactor, concurrent, rq))
		Put(s, kind.PropertyKeyStorage, NewVector[PropertyKeyStorageData](growthFactor, concurrent, rq))
		Put(s, kind.Shape, NewVector[ShapeData](growthFactor, concurrent, rq))
	})
}
