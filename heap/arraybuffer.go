package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
)

// ArrayBufferData backs kind.ArrayBuffer. Bytes is the raw backing
// store; Detached mirrors ECMAScript's one-way detach operation
// (Transfer, postMessage) after which every view over it must read as
// empty rather than panic.
type ArrayBufferData struct {
	ObjectData
	Bytes    []byte
	Detached bool
}

func traceArrayBuffer(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[ArrayBufferData](store).Get(idx)
	traceObjectFields(&rec.ObjectData, v)
}

func debugArrayBuffer(store kind.Store, idx kind.Index) string {
	rec := storeVector[ArrayBufferData](store).Get(idx)
	return fmt.Sprintf("ArrayBuffer#%d{%d bytes}", idx, len(rec.Bytes))
}

func init() {
	kind.Register(kind.ArrayBuffer, kind.Funcs{Trace: traceArrayBuffer, DebugPrint: debugArrayBuffer})
}
