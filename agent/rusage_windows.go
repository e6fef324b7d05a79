//go:build windows

package agent

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modpsapi              = windows.NewLazySystemDLL("psapi.dll")
	procGetProcessMemInfo = modpsapi.NewProc("GetProcessMemoryInfo")
)

// processMemoryCounters mirrors the fields of Win32's
// PROCESS_MEMORY_COUNTERS we need; psapi.dll has no x/sys/windows
// high-level wrapper, so this module calls it the same way
// golang.org/x/sys/windows.LazyDLL/LazyProc was designed for: a raw
// syscall.Syscall against a resolved proc address.
type processMemoryCounters struct {
	cb                         uint32
	pageFaultCount             uint32
	peakWorkingSetSize         uintptr
	workingSetSize             uintptr
	quotaPeakPagedPoolUsage    uintptr
	quotaPagedPoolUsage        uintptr
	quotaPeakNonPagedPoolUsage uintptr
	quotaNonPagedPoolUsage     uintptr
	pagefileUsage              uintptr
	peakPagefileUsage          uintptr
}

// maxRSSBytes reads the process's peak working-set size via
// GetProcessMemoryInfo, Windows' analog of getrusage's Maxrss field.
//
// Ground: hive/dirty/flush_windows.go's build-tag split pairing a
// Windows-specific syscall with the same golang.org/x/sys module the
// Unix variants use.
func maxRSSBytes() uint64 {
	var counters processMemoryCounters
	counters.cb = uint32(unsafe.Sizeof(counters))
	r, _, _ := procGetProcessMemInfo.Call(
		uintptr(windows.CurrentProcess()),
		uintptr(unsafe.Pointer(&counters)),
		uintptr(counters.cb),
	)
	if r == 0 {
		return 0
	}
	return uint64(counters.peakWorkingSetSize)
}
