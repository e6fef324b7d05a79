// Package kind is the closed enumeration of heap-resident entity
// categories, plus the flat per-kind dispatch tables (trace, finalize,
// debug-print) that replace virtual dispatch.
//
// # Design
//
// Every heap kind is a plain array index, not an interface
// implementation. Adding a kind means:
//
//  1. Adding a constant to the Kind enumeration in kind.go.
//  2. Adding its record type and vector to package heap.
//  3. Calling kind.Register from that package's init() with at least
//     a Trace function.
//
// kind.AllRegistered (checked by a test in this package) stands
// in for the compile-time exhaustiveness check a language with sum
// types would give for free.
package kind
