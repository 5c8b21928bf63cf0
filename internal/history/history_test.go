package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ringAt(limit int, start time.Time) (*Ring, *time.Time) {
	r := NewRing(limit)
	now := start
	r.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	return r, &now
}

func TestRecordDeduplicatesAndMovesToFront(t *testing.T) {
	r, _ := ringAt(50, time.Unix(1000, 0))

	r.Record("Paris")
	r.Record("London")
	r.Record("Paris")

	require.Equal(t, 2, r.Len())
	assert.Equal(t, "Paris", r.Entries()[0].Query)
	assert.Equal(t, "London", r.Entries()[1].Query)

	// the surviving Paris entry carries the later timestamp
	assert.Greater(t, r.Entries()[0].Timestamp, r.Entries()[1].Timestamp)
}

func TestRecordEvictsOldestBeyondCap(t *testing.T) {
	r, _ := ringAt(50, time.Unix(1000, 0))

	for i := 0; i < 51; i++ {
		r.Record(fmt.Sprintf("city-%d", i))
	}

	require.Equal(t, 50, r.Len())
	assert.Equal(t, "city-50", r.Entries()[0].Query)
	// city-0 was the oldest and is gone
	for _, e := range r.Entries() {
		assert.NotEqual(t, "city-0", e.Query)
	}
}

func TestSelectionWrapsCircularly(t *testing.T) {
	r, _ := ringAt(50, time.Unix(1000, 0))
	r.Record("a")
	r.Record("b")
	r.Record("c") // order: c, b, a

	r.SelectPrev()
	assert.Equal(t, 2, r.SelectedIndex())
	r.SelectNext()
	assert.Equal(t, 0, r.SelectedIndex())
	r.SelectNext()
	r.SelectNext()
	r.SelectNext()
	assert.Equal(t, 0, r.SelectedIndex())

	entry, ok := r.Selected()
	require.True(t, ok)
	assert.Equal(t, "c", entry.Query)
}

func TestSelectionNoopOnEmptyRing(t *testing.T) {
	r := NewRing(50)
	r.SelectNext()
	r.SelectPrev()
	assert.Equal(t, 0, r.SelectedIndex())

	_, ok := r.Selected()
	assert.False(t, ok)
}

func TestSelectionClampedAfterEviction(t *testing.T) {
	r, _ := ringAt(2, time.Unix(1000, 0))
	r.Record("a")
	r.Record("b")
	r.SelectNext() // on the last entry

	r.Record("a") // dedupe shuffles the list
	assert.Less(t, r.SelectedIndex(), r.Len())
}

func TestReplaceEnforcesCap(t *testing.T) {
	r := NewRing(2)
	r.Replace([]Entry{{Query: "a"}, {Query: "b"}, {Query: "c"}})
	assert.Equal(t, 2, r.Len())
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	store := NewStoreAtPath(path)

	entries := []Entry{
		{Query: "Paris", Timestamp: 1700000001},
		{Query: "Oslo", Timestamp: 1700000000},
	}
	require.NoError(t, store.Save(entries))

	loaded := store.Load()
	assert.Equal(t, entries, loaded)

	// pretty-printed on disk
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStoreAtPath(filepath.Join(t.TempDir(), "nope.json"))
	assert.Empty(t, store.Load())
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewStoreAtPath(path)
	assert.Empty(t, store.Load())
}
