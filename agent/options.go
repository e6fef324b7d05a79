package agent

import "log/slog"

// Options controls how New builds an agent's Store and collector
// behavior. New treats a zero GrowthFactor as DefaultOptions's value,
// so the zero Options is usable; DefaultOptions is the usual start.
//
// Ground: pkg/hive/options.go's struct-of-knobs shape (MergeOptions,
// OperationOptions), generalized from "one registry operation" to
// "one agent for the lifetime of the process."
type Options struct {
	// GrowthFactor is the multiplier each kind's Vector grows its
	// backing array by when it runs out of room. Must be > 1.0.
	GrowthFactor float64

	// Concurrent enables the WriteBarrier-tracked dirty-root path
	// described in spec.md §5 and makes vectors hand replaced backing
	// arrays to a retire queue instead of dropping them. It does not
	// make Vector.Push or the handle tables safe for several mutating
	// goroutines at once.
	Concurrent bool

	// CheckInvariants runs the debug-only post-collection assertion
	// suite (gc.CheckInvariants, gc.CheckRewriteRange) after every
	// Collect call. Expensive; intended for tests and development
	// builds, not production.
	CheckInvariants bool

	// LeakDetectGlobals records an allocation site for every
	// refs.GlobalHandle so Close can report exactly where an
	// outstanding handle was allocated. Costs a runtime.Caller per
	// global allocation; leave off in production.
	LeakDetectGlobals bool

	// Logger receives structured events for collection start/end and
	// leak reports. Defaults to slog.Default() when nil.
	Logger *slog.Logger
}

// DefaultOptions returns sane defaults for a single-threaded embedder
// with invariant checking and leak detection off.
func DefaultOptions() Options {
	return Options{
		GrowthFactor: 1.5,
		Concurrent:   false,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
