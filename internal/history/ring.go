// Package history keeps the bounded, most-recent-first list of past
// searches and its JSON persistence.
package history

import "time"

// DefaultLimit is how many searches are kept when no limit is configured
const DefaultLimit = 50

// Entry is one remembered search
type Entry struct {
	Query     string `json:"query"`
	Timestamp int64  `json:"timestamp"` // unix seconds
}

// Ring is a de-duplicated, newest-first list of past queries capped at
// a fixed size, with a circular selection cursor for the history pane.
type Ring struct {
	entries  []Entry
	limit    int
	selected int
	now      func() time.Time
}

// NewRing creates an empty ring capped at limit entries
func NewRing(limit int) *Ring {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Ring{limit: limit, now: time.Now}
}

// Record inserts query at the front with the current timestamp. Any
// existing entry with the same query text is removed first, and the
// ring is truncated to its limit afterwards.
func (r *Ring) Record(query string) {
	for i, e := range r.entries {
		if e.Query == query {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}

	entry := Entry{Query: query, Timestamp: r.now().Unix()}
	r.entries = append([]Entry{entry}, r.entries...)

	if len(r.entries) > r.limit {
		r.entries = r.entries[:r.limit]
	}
	if r.selected >= len(r.entries) {
		r.selected = 0
	}
}

// Entries returns the entries, newest first
func (r *Ring) Entries() []Entry {
	return r.entries
}

// Len returns the number of entries
func (r *Ring) Len() int {
	return len(r.entries)
}

// Replace swaps in previously persisted entries, enforcing the cap
func (r *Ring) Replace(entries []Entry) {
	if len(entries) > r.limit {
		entries = entries[:r.limit]
	}
	r.entries = entries
	r.selected = 0
}

// SelectedIndex returns the position of the selection cursor
func (r *Ring) SelectedIndex() int {
	return r.selected
}

// Selected returns the entry under the selection cursor
func (r *Ring) Selected() (Entry, bool) {
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[r.selected], true
}

// SelectNext moves the selection down, wrapping past the oldest entry
func (r *Ring) SelectNext() {
	if len(r.entries) > 0 {
		r.selected = (r.selected + 1) % len(r.entries)
	}
}

// SelectPrev moves the selection up, wrapping past the newest entry
func (r *Ring) SelectPrev() {
	if len(r.entries) > 0 {
		r.selected = (r.selected + len(r.entries) - 1) % len(r.entries)
	}
}
