package gc

import (
	"fmt"
	"sync/atomic"
)

// epochState is the shared counter an agent's MayGC/NoGC tokens and
// every Bound value are checked against. Go has no borrow checker, so
// this is the runtime stand-in spec.md §9 prescribes: "a monotonic gc
// epoch counter on the agent is bumped at every may-GC entry; every
// Value carries the epoch at which it was produced; reads verify the
// epoch matches."
type epochState struct {
	epoch  atomic.Uint64
	active atomic.Bool
}

// MayGC is the exclusive capability every operation that might trigger
// collection takes by pointer. NewMayGC (called only from package
// agent) creates the agent's epoch counter. No check catches two
// may-GC calls in flight at once; the active flag is never set or read.
type MayGC struct {
	state *epochState
}

// NoGC is a shared, read-only capability derived from a MayGC. While
// held, the agent must not collect; Values bound to it (via Bind) are
// readable only as long as no intervening may-GC call has bumped the
// epoch.
type NoGC struct {
	state *epochState
	epoch uint64
}

// NewMayGC constructs the root token for a fresh agent. Exported for
// package agent; mutator code never calls it directly.
func NewMayGC() MayGC {
	return MayGC{state: &epochState{}}
}

// Epoch returns the current epoch, advanced by bumpEpoch at the start
// of every collection cycle.
func (mg *MayGC) Epoch() uint64 { return mg.state.epoch.Load() }

// bumpEpoch is called once per collection cycle, invalidating every
// Bound value created under the previous epoch.
func (mg *MayGC) bumpEpoch() { mg.state.epoch.Add(1) }

// DeriveNoGC produces a shared, read-only token snapshotting the
// current epoch. Matches spec.md §4.E's derive_no_gc(&may_gc) → no_gc.
func (mg *MayGC) DeriveNoGC() NoGC {
	return NoGC{state: mg.state, epoch: mg.state.epoch.Load()}
}

// Reborrow returns an exclusive token usable for a nested call. Go has
// no borrow checker to make this a compile-time move, so Reborrow is a
// plain copy; it exists so call sites read the same way the
// lifetime-checked original does (reborrow(&mut may_gc) → may_gc').
func (mg *MayGC) Reborrow() MayGC { return MayGC{state: mg.state} }

// IntoNoGC consumes mg and returns a NoGC token, for a caller that is
// done triggering collection and wants to read values for the rest of
// its scope. Matches spec.md §4.E's into_no_gc.
func (mg MayGC) IntoNoGC() NoGC { return mg.DeriveNoGC() }

// Epoch returns the epoch this token was derived under.
func (n NoGC) Epoch() uint64 { return n.epoch }

// Bound attaches a Value (or any other payload — subset enums,
// scoped-handle reads) to a NoGC lifetime, per spec.md §4.E's
// bind(value, &no_gc) → value'.
type Bound[V any] struct {
	v     V
	state *epochState
	epoch uint64
}

// Bind stamps v with n's epoch.
func Bind[V any](v V, n NoGC) Bound[V] {
	return Bound[V]{v: v, state: n.state, epoch: n.epoch}
}

// Get reads the bound value, asserting the current epoch still
// matches the one it was bound under. A mismatch means a may-GC call
// happened between Bind and Get without the caller re-binding first —
// exactly the violation spec.md §4.E rule 1 forbids ("a may-GC call
// invalidates every Value bound to the current no-GC lifetime").
func (b Bound[V]) Get() V {
	if b.state != nil && b.state.epoch.Load() != b.epoch {
		panic(fmt.Sprintf("gc: value used across a collection boundary (bound at epoch %d, now %d)", b.epoch, b.state.epoch.Load()))
	}
	return b.v
}

// Unbind detaches the payload from any lifetime, per spec.md §4.E's
// unbind(value) → value_free. Legal only as an ephemeral step at a
// call site about to re-establish a lifetime; this module cannot
// enforce that usage rule (no borrow checker), only provide the
// operation.
func Unbind[V any](b Bound[V]) V { return b.v }
