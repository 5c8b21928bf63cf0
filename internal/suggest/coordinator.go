// Package suggest owns the autocomplete state machine: deciding when a
// lookup should be dispatched for the current buffer text, and merging
// asynchronous results back in without letting a stale lookup overwrite
// a newer one.
package suggest

import "skycast/internal/domain"

// Coordinator tracks the live suggestion set and the last query a
// lookup was dispatched for. It is owned by the UI loop; results
// produced by background lookups must pass through Apply, which
// re-validates them against the live buffer content.
type Coordinator struct {
	minChars  int
	lastQuery string // last dispatched lookup query
	query     string // query the current results belong to
	results   []domain.Location
	selected  int
	visible   bool
}

// New returns a coordinator that arms lookups once the buffer holds at
// least minChars characters
func New(minChars int) *Coordinator {
	return &Coordinator{minChars: minChars}
}

// ShouldDispatch reports whether a lookup should be dispatched for
// text, and records text as the last dispatched query when it should.
// A lookup is due when the buffer holds at least minChars characters
// and its content differs from the last dispatched query.
func (c *Coordinator) ShouldDispatch(text string) bool {
	if len([]rune(text)) < c.minChars || text == c.lastQuery {
		return false
	}
	c.lastQuery = text
	return true
}

// Apply merges a completed lookup into the suggestion state. The
// results are applied only if query still equals the live buffer
// content - out-of-order completions from superseded keystrokes are
// silently discarded. Returns whether the results were applied.
func (c *Coordinator) Apply(query, live string, results []domain.Location) bool {
	if query != live {
		return false
	}
	c.query = query
	c.results = results
	c.selected = 0
	c.visible = len(results) > 0
	return true
}

// Sync reacts to a buffer change that did not warrant a dispatch:
// shrinking below the minimum clears and hides the set immediately,
// without waiting for any in-flight lookup.
func (c *Coordinator) Sync(text string) {
	if len([]rune(text)) < c.minChars {
		c.clear()
	}
}

// Visible reports whether the suggestion list should be shown
func (c *Coordinator) Visible() bool {
	return c.visible
}

// Results returns the current candidates
func (c *Coordinator) Results() []domain.Location {
	return c.results
}

// Selected returns the index of the highlighted candidate
func (c *Coordinator) Selected() int {
	return c.selected
}

// SelectNext moves the highlight down, wrapping at the end
func (c *Coordinator) SelectNext() {
	if len(c.results) > 0 {
		c.selected = (c.selected + 1) % len(c.results)
	}
}

// SelectPrev moves the highlight up, wrapping at the start
func (c *Coordinator) SelectPrev() {
	if len(c.results) > 0 {
		c.selected = (c.selected + len(c.results) - 1) % len(c.results)
	}
}

// Accept returns the highlighted candidate and clears the set. The
// second return is false when nothing is visible to accept.
func (c *Coordinator) Accept() (domain.Location, bool) {
	if !c.visible || len(c.results) == 0 {
		return domain.Location{}, false
	}
	loc := c.results[c.selected]
	c.clear()
	return loc, true
}

// Hide clears and hides the suggestion set
func (c *Coordinator) Hide() {
	c.clear()
}

func (c *Coordinator) clear() {
	c.results = nil
	c.selected = 0
	c.visible = false
}
