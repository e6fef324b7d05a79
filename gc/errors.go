package gc

import "errors"

// ErrInvariantViolated is wrapped by CheckInvariants/CheckRewriteRange
// failures, letting callers distinguish a debug-assertion failure from
// any other error Collect might surface.
var ErrInvariantViolated = errors.New("gc: invariant violated")
