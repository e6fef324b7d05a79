package heap

import (
	"sync"

	"golang.org/x/text/width"

	"github.com/heapkit/heapkit/kind"
)

// InternTables deduplicates heap-resident (non-inline) strings so two
// identical long strings share one String record; symbols are not
// interned. A plain Go map keyed by the string's content, ground: the
// map-based index shape of hive/index.StringIndex, here keyed by
// string content instead of "parentOffset:name".
//
// Width classification (golang.org/x/text/width) precomputes each
// interned string's East-Asian width category at intern time and
// caches it alongside the index; a host that needs fixed-width
// terminal rendering of a string reads the cached category instead of
// re-scanning the string on every redraw.
type InternTables struct {
	mu      sync.Mutex
	strings map[string]kind.Index
	widths  map[string]width.Kind
}

// NewInternTables returns an empty set of intern tables with the same
// small starting capacity hivekit's string index uses for a fresh
// hive.
func NewInternTables() *InternTables {
	return &InternTables{
		strings: make(map[string]kind.Index, 1024),
		widths:  make(map[string]width.Kind, 1024),
	}
}

// Lookup returns the index of an already-interned string and true, or
// (0, false) if s has never been interned.
func (t *InternTables) Lookup(s string) (kind.Index, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx, ok := t.strings[s]
	return idx, ok
}

// Intern records that s lives at idx in the String vector, classifying
// its display width category the first time it's seen. Callers must
// check Lookup first; Intern unconditionally overwrites.
func (t *InternTables) Intern(s string, idx kind.Index) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.strings[s] = idx
	if _, ok := t.widths[s]; !ok {
		t.widths[s] = classifyWidth(s)
	}
}

// WidthOf returns the cached East-Asian width classification for an
// interned string. A string never interned (inline strings never
// reach this table, since they're immediate values, not heap records)
// is classified on each call and not cached.
func (t *InternTables) WidthOf(s string) width.Kind {
	t.mu.Lock()
	defer t.mu.Unlock()
	if k, ok := t.widths[s]; ok {
		return k
	}
	return classifyWidth(s)
}

func classifyWidth(s string) width.Kind {
	widest := width.Neutral
	for _, r := range s {
		p := width.LookupRune(r)
		if k := p.Kind(); k == width.EastAsianWide || k == width.EastAsianFullwidth {
			widest = k
		}
	}
	return widest
}
