//go:build !linux && !freebsd && !darwin && !windows

package agent

// maxRSSBytes has no implementation on this platform; Stats.MaxRSSBytes
// reports zero rather than the agent failing to build.
func maxRSSBytes() uint64 { return 0 }
