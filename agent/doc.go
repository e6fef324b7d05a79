// Package agent is the single public entry point a host program
// embeds: it owns one heap.Store, one collection epoch, and every
// root source spec.md's Phase 1 enumerates, and exposes the
// construction, teardown, collection-control, and statistics surface
// the rest of this module's packages don't expose on their own.
//
// Ground: pkg/hive's relationship to the lower hive/* packages — a
// single struct a host constructs once and drives through a narrow
// method set, with the binary-format internals kept in packages it
// composes rather than re-implements.
package agent
