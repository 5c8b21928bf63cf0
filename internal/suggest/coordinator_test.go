package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skycast/internal/domain"
)

func locations(names ...string) []domain.Location {
	locs := make([]domain.Location, len(names))
	for i, n := range names {
		locs[i] = domain.Location{Name: n, Country: "Testland"}
	}
	return locs
}

func TestDispatchThresholdAndChangeDetection(t *testing.T) {
	c := New(3)

	// buffer grows p, pa, par, pari
	assert.False(t, c.ShouldDispatch("p"))
	assert.False(t, c.ShouldDispatch("pa"))
	assert.True(t, c.ShouldDispatch("par"))
	assert.True(t, c.ShouldDispatch("pari"))

	// unchanged content never re-dispatches
	assert.False(t, c.ShouldDispatch("pari"))
}

func TestDispatchCountsRunesNotBytes(t *testing.T) {
	c := New(3)

	// two characters, four bytes
	assert.False(t, c.ShouldDispatch("東京"))
	assert.True(t, c.ShouldDispatch("東京都"))
}

func TestStaleResultDiscarded(t *testing.T) {
	c := New(3)
	c.ShouldDispatch("Ber")
	c.ShouldDispatch("Berl")

	// the older lookup resolves after the buffer moved on
	applied := c.Apply("Ber", "Berl", locations("Bergen"))
	assert.False(t, applied)
	assert.False(t, c.Visible())
	assert.Empty(t, c.Results())

	// the current one matches and lands
	applied = c.Apply("Berl", "Berl", locations("Berlin", "Berlingen"))
	assert.True(t, applied)
	assert.True(t, c.Visible())
	assert.Equal(t, 0, c.Selected())
	assert.Len(t, c.Results(), 2)
}

func TestOutOfOrderArrivalIsIdempotent(t *testing.T) {
	c := New(3)
	c.ShouldDispatch("par")
	c.ShouldDispatch("pari")

	assert.True(t, c.Apply("pari", "pari", locations("Paris")))
	// the superseded lookup lands afterwards and changes nothing
	assert.False(t, c.Apply("par", "pari", locations("Parma", "Paros")))
	assert.Equal(t, "Paris", c.Results()[0].Name)
}

func TestEmptyResultsApplyButStayHidden(t *testing.T) {
	c := New(3)
	c.ShouldDispatch("zzz")

	assert.True(t, c.Apply("zzz", "zzz", nil))
	assert.False(t, c.Visible())
}

func TestShrinkBelowMinimumClearsSynchronously(t *testing.T) {
	c := New(3)
	c.ShouldDispatch("par")
	c.Apply("par", "par", locations("Paris"))
	assert.True(t, c.Visible())

	c.Sync("pa")
	assert.False(t, c.Visible())
	assert.Empty(t, c.Results())

	// no pending dispatch for the shrunk content
	assert.False(t, c.ShouldDispatch("pa"))
}

func TestSelectionWrapsBothWays(t *testing.T) {
	c := New(3)
	c.Apply("par", "par", locations("a", "b", "c"))

	c.SelectPrev()
	assert.Equal(t, 2, c.Selected())
	c.SelectNext()
	assert.Equal(t, 0, c.Selected())
	c.SelectNext()
	c.SelectNext()
	c.SelectNext()
	assert.Equal(t, 0, c.Selected())
}

func TestSelectionNoopWhenEmpty(t *testing.T) {
	c := New(3)
	c.SelectNext()
	c.SelectPrev()
	assert.Equal(t, 0, c.Selected())
}

func TestAcceptReturnsHighlightedAndClears(t *testing.T) {
	c := New(3)
	c.Apply("ber", "ber", locations("Berlin", "Bern"))
	c.SelectNext()

	loc, ok := c.Accept()
	assert.True(t, ok)
	assert.Equal(t, "Bern", loc.Name)
	assert.False(t, c.Visible())
	assert.Empty(t, c.Results())

	_, ok = c.Accept()
	assert.False(t, ok)
}

func TestHide(t *testing.T) {
	c := New(3)
	c.Apply("ber", "ber", locations("Berlin"))
	c.Hide()

	assert.False(t, c.Visible())
	assert.Empty(t, c.Results())
}
