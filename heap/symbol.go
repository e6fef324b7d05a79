package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/kind"
)

// SymbolData backs kind.Symbol. Description is optional (the empty
// string and "no description" are distinguished by HasDescription,
// matching ECMAScript's Symbol() vs Symbol(undefined) distinction).
type SymbolData struct {
	Description    string
	HasDescription bool
}

func traceSymbol(kind.Store, kind.Index, kind.Visitor) {
	// Symbols hold no outgoing references.
}

func debugSymbol(store kind.Store, idx kind.Index) string {
	rec := storeVector[SymbolData](store).Get(idx)
	if !rec.HasDescription {
		return fmt.Sprintf("Symbol#%d()", idx)
	}
	return fmt.Sprintf("Symbol#%d(%q)", idx, rec.Description)
}

func init() {
	kind.Register(kind.Symbol, kind.Funcs{Trace: traceSymbol, DebugPrint: debugSymbol})
}
