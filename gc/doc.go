// Package gc implements the mark-compact safepoint collector: the
// MayGC/NoGC/Bound borrow-discipline tokens (package kind and heap
// have no notion of these — they're pure data), root enumeration over
// any registered RootSource, the mark bitmap and work-stack walk, the
// per-kind compaction list, and the shift-then-rewrite Phase 4 that
// ties them together in Collect.
//
// gc depends on both kind and heap; neither depends back on gc, so a
// mark or rewrite pass is expressed entirely in terms of kind.Visitor
// and kind.Trace dispatch rather than any gc-specific hook baked into
// a record type.
package gc
