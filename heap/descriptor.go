package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// PropertyDescriptorData backs kind.PropertyDescriptor, per
// ECMAScript §6.2.6. Each field's "present" flag lets a partial
// descriptor (as produced by Object.defineProperty's argument) be
// represented without a separate optional-value wrapper type.
type PropertyDescriptorData struct {
	Value        value.Value
	HasValue     bool
	Get          value.Value
	HasGet       bool
	Set          value.Value
	HasSet       bool
	Writable     bool
	HasWritable  bool
	Enumerable   bool
	HasEnumerable bool
	Configurable  bool
	HasConfigurable bool
}

func tracePropertyDescriptor(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[PropertyDescriptorData](store).Get(idx)
	if rec.HasValue {
		rec.Value.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	}
	if rec.HasGet {
		rec.Get.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	}
	if rec.HasSet {
		rec.Set.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	}
}

func debugPropertyDescriptor(store kind.Store, idx kind.Index) string {
	return fmt.Sprintf("PropertyDescriptor#%d", idx)
}

func init() {
	kind.Register(kind.PropertyDescriptor, kind.Funcs{Trace: tracePropertyDescriptor, DebugPrint: debugPropertyDescriptor})
}
