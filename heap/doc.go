// Package heap holds the one-vector-per-kind storage the rest of the
// module operates over: the growable Vector type, its geometric growth
// and concurrent-marking retire-queue protocol, the Store that gathers
// one Vector per kind.Kind for a single agent, the string intern
// table, and the 31 record types kind.Kind enumerates along
// with their Trace/DebugPrint registrations.
//
// Nothing in this package knows how to mark or compact — that's
// package gc, which operates on a Store purely through the
// kind.Store-typed handles VectorFor returns and the Compactable
// interface Store.Compactable exposes. Keeping the split this way
// means heap has no dependency on gc, only the reverse.
package heap
