// Package kind enumerates every category of heap-resident entity and
// holds the flat, build-time-populated dispatch tables (trace,
// finalize, debug-print) that the collector and agent use instead of
// virtual dispatch.
package kind

// Kind names one category of heap-resident entity. It is a closed
// enumeration: adding a new category means extending this list,
// adding a vector for it in heap.Store, and registering its Funcs in
// an init() alongside its record type.
type Kind uint8

const (
	Object Kind = iota
	Array
	OrdinaryFunction
	BuiltinFunction
	BoundFunction
	String
	Symbol
	BigInt
	Number
	ArrayBuffer
	DataView
	TypedArray
	Map
	Set
	WeakMap
	WeakSet
	Date
	RegExp
	Error
	Proxy
	Promise
	IteratorRecord
	EnvironmentRecord
	Realm
	Script
	Module
	ExecutionContext
	ReferenceRecord
	PropertyDescriptor
	PropertyKeyStorage
	Shape

	// Count is the number of heap kinds. Keep it last.
	Count
)

var names = [Count]string{
	Object:             "Object",
	Array:              "Array",
	OrdinaryFunction:   "OrdinaryFunction",
	BuiltinFunction:    "BuiltinFunction",
	BoundFunction:      "BoundFunction",
	String:             "String",
	Symbol:             "Symbol",
	BigInt:             "BigInt",
	Number:             "Number",
	ArrayBuffer:        "ArrayBuffer",
	DataView:           "DataView",
	TypedArray:         "TypedArray",
	Map:                "Map",
	Set:                "Set",
	WeakMap:            "WeakMap",
	WeakSet:            "WeakSet",
	Date:               "Date",
	RegExp:             "RegExp",
	Error:              "Error",
	Proxy:              "Proxy",
	Promise:            "Promise",
	IteratorRecord:     "IteratorRecord",
	EnvironmentRecord:  "EnvironmentRecord",
	Realm:              "Realm",
	Script:             "Script",
	Module:             "Module",
	ExecutionContext:   "ExecutionContext",
	ReferenceRecord:    "ReferenceRecord",
	PropertyDescriptor: "PropertyDescriptor",
	PropertyKeyStorage: "PropertyKeyStorage",
	Shape:              "Shape",
}

// String returns the kind's name, or "Kind(invalid)" for an out-of-range value.
func (k Kind) String() string {
	if int(k) < 0 || k >= Count {
		return "Kind(invalid)"
	}
	return names[k]
}

// Valid reports whether k is a declared kind (not the Count sentinel
// and not out of range).
func (k Kind) Valid() bool {
	return k < Count
}
