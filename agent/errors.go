package agent

import "fmt"

// ErrKind categorizes an agent-level failure so a caller can branch
// on the failure family without string-matching Error.Msg.
type ErrKind int

const (
	// ErrKindConfig marks a bad Options value caught at New time.
	ErrKindConfig ErrKind = iota
	// ErrKindLeak marks live global handles still outstanding at Close.
	ErrKindLeak
	// ErrKindInvariant marks a CheckInvariants/CheckRewriteRange
	// failure surfaced by a debug-mode collection.
	ErrKindInvariant
	// ErrKindState marks a method called on an agent in the wrong
	// lifecycle state, e.g. Collect after Close.
	ErrKindState
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindConfig:
		return "config"
	case ErrKindLeak:
		return "leak"
	case ErrKindInvariant:
		return "invariant"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is the concrete error type every exported agent method
// returns. Kind lets a caller recover programmatically; Err, when
// non-nil, wraps whatever lower-level error (typically from package
// gc) triggered it.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("agent: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("agent: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrClosed is returned by Collect on an agent after Close. Other
// methods do not check whether the agent is closed.
var ErrClosed = &Error{Kind: ErrKindState, Msg: "agent is closed"}

// ErrInvalidGrowthFactor is returned by New when Options.GrowthFactor
// is not greater than 1.0.
var ErrInvalidGrowthFactor = &Error{Kind: ErrKindConfig, Msg: "growth factor must be > 1.0"}
