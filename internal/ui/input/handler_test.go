package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast/internal/ui/input/types"
)

type fakeContext struct {
	focus       types.Focus
	bufferEmpty bool
	suggestions bool
}

func (c fakeContext) Focus() types.Focus       { return c.focus }
func (c fakeContext) BufferEmpty() bool        { return c.bufferEmpty }
func (c fakeContext) SuggestionsVisible() bool { return c.suggestions }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandlerStartsInNormalMode(t *testing.T) {
	h := New()
	assert.Equal(t, types.ModeNormal, h.Mode())
}

func TestHandlerResolvesModeChanges(t *testing.T) {
	h := New()

	actions := h.HandleKey(runes("i"), fakeContext{})
	assert.Empty(t, actions) // the transition itself is consumed
	assert.Equal(t, types.ModeInsert, h.Mode())

	// keys are now interpreted by insert mode
	actions = h.HandleKey(runes("x"), fakeContext{})
	require.Len(t, actions, 1)
	assert.Equal(t, types.InsertTextAction{Runes: []rune("x")}, actions[0])
}

func TestHandlerForwardsCompanionActions(t *testing.T) {
	h := New()

	// "A" enters insert mode and moves the cursor to the end
	actions := h.HandleKey(runes("A"), fakeContext{})
	require.Len(t, actions, 1)
	assert.Equal(t, types.MoveCursorAction{Motion: "end"}, actions[0])
	assert.Equal(t, types.ModeInsert, h.Mode())
}

func TestHandlerEscRoundTrip(t *testing.T) {
	h := New()
	h.HandleKey(runes("i"), fakeContext{})

	actions := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{})
	assert.Equal(t, types.ModeNormal, h.Mode())
	require.Len(t, actions, 2)
	assert.Equal(t, types.MoveCursorAction{Motion: "left"}, actions[0])
	assert.Equal(t, types.HideSuggestionsAction{}, actions[1])
}

func TestHandlerChangeModeDirectly(t *testing.T) {
	h := New()
	h.ChangeMode(types.ModeInsert)
	assert.Equal(t, types.ModeInsert, h.Mode())

	h.Reset()
	assert.Equal(t, types.ModeNormal, h.Mode())
}

func TestHandlerUnboundKeyProducesNothing(t *testing.T) {
	h := New()
	assert.Empty(t, h.HandleKey(runes("z"), fakeContext{}))
	assert.Equal(t, types.ModeNormal, h.Mode())
}
