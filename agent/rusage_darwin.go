//go:build darwin

package agent

import "golang.org/x/sys/unix"

// maxRSSBytes reads the process's peak resident-set size via
// getrusage(2). On Darwin, Rusage.Maxrss is already reported in
// bytes, unlike Linux/FreeBSD's kilobytes.
//
// Ground: hive/dirty/flush_darwin.go's separate build constraint for
// macOS-specific semantics of an otherwise-shared x/sys/unix call.
func maxRSSBytes() uint64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return uint64(ru.Maxrss)
}
