// Package value is documented in value.go; this file only exists to
// hold the package-level example below, kept separate so value.go
// stays focused on the type definitions.
//
// Example (conceptual — the agent package supplies the may-GC
// constructors that actually allocate):
//
//	v := value.SmallInt(42)
//	if n, ok := value.TryNumeric(v); ok {
//	    _ = n.AsValue()
//	}
package value
