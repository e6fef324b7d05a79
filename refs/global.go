package refs

import (
	"fmt"
	"runtime"

	"github.com/heapkit/heapkit/kind"
	"github.com/heapkit/heapkit/value"
)

// GlobalHandle names a slot in a GlobalTable. Unlike ScopedHandle,
// it's meant to be held across many collection cycles and must be
// explicitly released; a released handle's slot number may be reused
// by a later New call.
type GlobalHandle uint32

type globalSlot struct {
	value value.Value
	live  bool
	// allocSite records where New was called, used only when the
	// table was built with leak detection on. Empty otherwise.
	allocSite string
}

// GlobalTable holds handles with independent, explicitly-managed
// lifetimes. Freed slots are recycled through freeList rather than
// left as permanent holes, the same free-slot-reuse shape as
// hive/alloc's cell allocator, generalized from byte-addressed cells
// to handle-table slots.
type GlobalTable struct {
	slots       []globalSlot
	freeList    []GlobalHandle
	leakDetect  bool
}

// NewGlobalTable returns an empty table. When leakDetect is true, New
// records the caller's file:line so Close can report exactly where
// each still-live handle was allocated; leave it false in production
// for the allocation-site lookup's overhead.
func NewGlobalTable(leakDetect bool) *GlobalTable {
	return &GlobalTable{leakDetect: leakDetect}
}

// New allocates a handle for v, reusing a freed slot if one exists.
func (t *GlobalTable) New(v value.Value) GlobalHandle {
	var site string
	if t.leakDetect {
		site = callerSite()
	}
	if n := len(t.freeList); n > 0 {
		h := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.slots[h] = globalSlot{value: v, live: true, allocSite: site}
		return h
	}
	t.slots = append(t.slots, globalSlot{value: v, live: true, allocSite: site})
	return GlobalHandle(len(t.slots) - 1)
}

// Get returns the Value at h. Panics if h was never allocated or has
// been released.
func (t *GlobalTable) Get(h GlobalHandle) value.Value {
	s := t.slots[h]
	if !s.live {
		panic(fmt.Sprintf("refs: GlobalHandle %d used after Release", h))
	}
	return s.value
}

// Set overwrites the Value at a live handle.
func (t *GlobalTable) Set(h GlobalHandle, v value.Value) {
	if !t.slots[h].live {
		panic(fmt.Sprintf("refs: GlobalHandle %d used after Release", h))
	}
	t.slots[h].value = v
}

// Release marks h free and eligible for reuse by a future New.
// Releasing an already-released handle panics — double-release
// usually means two owners both think they hold the only reference.
func (t *GlobalTable) Release(h GlobalHandle) {
	if !t.slots[h].live {
		panic(fmt.Sprintf("refs: double Release of GlobalHandle %d", h))
	}
	t.slots[h] = globalSlot{}
	t.freeList = append(t.freeList, h)
}

// LiveCount reports the number of allocated, unreleased handles.
func (t *GlobalTable) LiveCount() int {
	n := 0
	for _, s := range t.slots {
		if s.live {
			n++
		}
	}
	return n
}

// LeakReport names one still-live handle at Close time, with its
// allocation site when the table was built with leak detection on.
type LeakReport struct {
	Handle    GlobalHandle
	AllocSite string
}

// CheckLeaks returns one LeakReport per still-live handle. Intended
// for agent.Close to call before tearing down the heap: global
// handles are the one reference kind that outlives a single call, so
// they're the one kind a host can actually leak.
func (t *GlobalTable) CheckLeaks() []LeakReport {
	var out []LeakReport
	for i, s := range t.slots {
		if s.live {
			out = append(out, LeakReport{Handle: GlobalHandle(i), AllocSite: s.allocSite})
		}
	}
	return out
}

// VisitAll runs every live global handle through v as a GC root;
// agent.Agent enumerates these first, before ScopedTable.VisitAll.
func (t *GlobalTable) VisitAll(v kind.Visitor) {
	for i := range t.slots {
		if !t.slots[i].live {
			continue
		}
		t.slots[i].value.VisitSelf(func(k *kind.Kind, idx *kind.Index) { v.VisitRef(k, idx) })
	}
}

func callerSite() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
