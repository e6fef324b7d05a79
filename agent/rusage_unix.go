//go:build linux || freebsd

package agent

import "golang.org/x/sys/unix"

// maxRSSBytes reads the process's peak resident-set size via
// getrusage(2). On Linux and FreeBSD, Rusage.Maxrss is reported in
// kilobytes.
//
// Ground: hive/dirty/flush_unix.go's build-tag split and its direct
// golang.org/x/sys/unix syscall usage, repointed from msync/fdatasync
// to getrusage.
func maxRSSBytes() uint64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return uint64(ru.Maxrss) * 1024
}
