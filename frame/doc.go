// Package frame holds the running execution context stack: the
// Go-level call stack a host interpreter pushes one frame onto per
// ECMAScript function invocation. Each frame names its heap-resident
// ExecutionContext record (heap.ExecutionContextData) plus the
// operand and local value slots the interpreter hasn't yet spilled
// into that record's environment — all of it root content for
// Component A's Phase 1 enumeration (spec.md §4.A: "the execution
// context stack including operand/local slots").
//
// The interpreter that pushes and pops frames is outside this
// module's scope; frame only defines the stack shape a host builds on
// top of and the collector's root enumeration walks.
package frame
