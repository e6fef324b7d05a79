package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// PromiseState is one of the three states ECMAScript §27.2.6 defines.
type PromiseState uint8

const (
	PromisePending PromiseState = iota
	PromiseFulfilled
	PromiseRejected
)

// promiseReaction is one entry of a pending promise's fulfill/reject
// reaction list, each a callable plus the result promise it settles.
type promiseReaction struct {
	Handler value.Value // Function, or Undefined for a pass-through reaction
	Result  value.Value // the Promise returned by .then()
}

// PromiseData backs kind.Promise.
type PromiseData struct {
	ObjectData
	State              PromiseState
	Result             value.Value
	FulfillReactions   []promiseReaction
	RejectReactions    []promiseReaction
	IsHandled          bool
}

func tracePromise(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[PromiseData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
	rec.Result.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	for i := range rec.FulfillReactions {
		rec.FulfillReactions[i].Handler.VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
		rec.FulfillReactions[i].Result.VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
	}
	for i := range rec.RejectReactions {
		rec.RejectReactions[i].Handler.VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
		rec.RejectReactions[i].Result.VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
	}
}

func debugPromise(store kind.Store, idx kind.Index) string {
	rec := storeVector[PromiseData](store).Get(idx)
	names := [...]string{"pending", "fulfilled", "rejected"}
	return fmt.Sprintf("Promise#%d(%s)", idx, names[rec.State])
}

func init() {
	kind.Register(kind.Promise, kind.Funcs{Trace: tracePromise, DebugPrint: debugPromise})
}
