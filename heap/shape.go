package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// PropertyAttributes packs the writable/enumerable/configurable trio
// ECMAScript attaches to every data property, one byte per slot
// instead of three bools to keep a Shape's per-slot metadata compact.
type PropertyAttributes uint8

const (
	AttrWritable PropertyAttributes = 1 << iota
	AttrEnumerable
	AttrConfigurable
)

// shapeTransition is one outgoing edge of the shape transition tree:
// adding Key with Attrs moves an object from this shape to Next.
type shapeTransition struct {
	Key   value.Value
	Attrs PropertyAttributes
	Next  kind.Index
}

// ShapeData backs kind.Shape: the structural description of an
// object's property layout, shared across every object built the same
// way (same constructor, same properties added in the same order).
// ObjectData.Shape plus ObjectData.Slots together replace a classic
// hash-map-per-object representation with hidden-class-style sharing.
type ShapeData struct {
	Parent      kind.Index // Shape this one extends by one property; ignored unless HasParent
	HasParent   bool
	Keys        kind.Ref // kind.PropertyKeyStorage; any other Kind (the zero Ref) means no key storage
	Attrs       []PropertyAttributes
	Transitions []shapeTransition
	SlotCount   uint32
}

func traceShape(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[ShapeData](store).Get(idx)
	if rec.HasParent {
		parentK, parentI := kind.Shape, rec.Parent
		v.VisitRef(&parentK, &parentI)
		rec.Parent = parentI
	}
	if rec.Keys.Kind == kind.PropertyKeyStorage {
		rec.Keys.Visit(v)
	}
	for i := range rec.Transitions {
		rec.Transitions[i].Key.VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
		transK, transI := kind.Shape, rec.Transitions[i].Next
		v.VisitRef(&transK, &transI)
		rec.Transitions[i].Next = transI
	}
}

func debugShape(store kind.Store, idx kind.Index) string {
	rec := storeVector[ShapeData](store).Get(idx)
	return fmt.Sprintf("Shape#%d{slots=%d}", idx, rec.SlotCount)
}

func init() {
	kind.Register(kind.Shape, kind.Funcs{Trace: traceShape, DebugPrint: debugShape})
}
