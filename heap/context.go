package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// ExecutionContextData backs kind.ExecutionContext, per ECMAScript
// §9.4. The running execution context stack itself lives in package
// frame as a Go-level slice of Frame values — that stack, not this
// record, is the root source the collector's enumeration walks.
//
// A Ref field whose Kind is not the one noted beside it (the zero Ref
// included) is treated as absent and is not traced.
type ExecutionContextData struct {
	Function            value.Value // Object (a Function), or Undefined for the top-level context
	Realm               kind.Ref    // kind.Realm
	ScriptOrModule      kind.Ref    // kind.Script or kind.Module; Kind distinguishes which
	LexicalEnvironment  kind.Ref    // kind.EnvironmentRecord
	VariableEnvironment kind.Ref    // kind.EnvironmentRecord
}

func traceExecutionContext(store kind.Store, idx kind.Index, v kind.Visitor) {
	rec := storeVector[ExecutionContextData](store).Get(idx)
	rec.Function.VisitSelf(func(k *kind.Kind, i *kind.Index) { v.VisitRef(k, i) })
	if rec.Realm.Kind == kind.Realm {
		rec.Realm.Visit(v)
	}
	if rec.ScriptOrModule.Kind == kind.Script || rec.ScriptOrModule.Kind == kind.Module {
		rec.ScriptOrModule.Visit(v)
	}
	if rec.LexicalEnvironment.Kind == kind.EnvironmentRecord {
		rec.LexicalEnvironment.Visit(v)
	}
	if rec.VariableEnvironment.Kind == kind.EnvironmentRecord {
		rec.VariableEnvironment.Visit(v)
	}
}

func debugExecutionContext(store kind.Store, idx kind.Index) string {
	return fmt.Sprintf("ExecutionContext#%d", idx)
}

func init() {
	kind.Register(kind.ExecutionContext, kind.Funcs{Trace: traceExecutionContext, DebugPrint: debugExecutionContext})
}
