package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// ReferenceRecordData backs kind.ReferenceRecord, per ECMAScript
// §6.2.5: the (base, referenced name, strict) triple produced by
// evaluating an identifier or member expression, before it's either
// read (GetValue) or written (PutValue).
type ReferenceRecordData struct {
	Base           value.Value // an Object/Environment/Value, or Unresolvable
	Unresolvable   bool
	ReferencedName value.Value // a PropertyKey
	Strict         bool
	ThisValue      value.Value
	HasThisValue   bool
}

func traceReferenceRecord(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[ReferenceRecordData](store).Get(idx)
	rec.Base.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	rec.ReferencedName.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	if rec.HasThisValue {
		rec.ThisValue.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	}
}

func debugReferenceRecord(store kind.Store, idx kind.Index) string {
	rec := storeVector[ReferenceRecordData](store).Get(idx)
	if rec.Unresolvable {
		return fmt.Sprintf("ReferenceRecord#%d(unresolvable)", idx)
	}
	return fmt.Sprintf("ReferenceRecord#%d", idx)
}

func init() {
	kind.Register(kind.ReferenceRecord, kind.Funcs{Trace: traceReferenceRecord, DebugPrint: debugReferenceRecord})
}
