package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"skycast/internal/ui/input/types"
)

// InsertMode types characters into the search buffer. While the
// suggestion list is visible, up/down move its selection and Tab/Enter
// accept the highlighted candidate instead of their usual meaning.
type InsertMode struct{}

func NewInsertMode() *InsertMode {
	return &InsertMode{}
}

func (m *InsertMode) Name() string {
	return "insert"
}

func (m *InsertMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *InsertMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *InsertMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyEsc:
		// Back to normal mode, cursor one step left, suggestions gone
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeNormal},
			types.MoveCursorAction{Motion: "left"},
			types.HideSuggestionsAction{},
		}, true

	case tea.KeyRunes:
		return []types.Action{types.InsertTextAction{Runes: msg.Runes}}, true

	case tea.KeySpace:
		return []types.Action{types.InsertTextAction{Runes: []rune{' '}}}, true

	case tea.KeyBackspace:
		return []types.Action{types.DeleteBackwardAction{}}, true

	case tea.KeyDelete:
		return []types.Action{types.DeleteForwardAction{}}, true

	case tea.KeyLeft:
		return []types.Action{types.MoveCursorAction{Motion: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.MoveCursorAction{Motion: "right"}}, true

	case tea.KeyHome:
		return []types.Action{types.MoveCursorAction{Motion: "start"}}, true

	case tea.KeyEnd:
		return []types.Action{types.MoveCursorAction{Motion: "end"}}, true

	case tea.KeyDown:
		if ctx.SuggestionsVisible() {
			return []types.Action{types.SuggestNavigateAction{Direction: "next"}}, true
		}
		return nil, true

	case tea.KeyUp:
		if ctx.SuggestionsVisible() {
			return []types.Action{types.SuggestNavigateAction{Direction: "prev"}}, true
		}
		return nil, true

	case tea.KeyTab:
		if ctx.SuggestionsVisible() {
			return []types.Action{types.AcceptSuggestionAction{}}, true
		}
		return []types.Action{types.SwitchPaneAction{}}, true

	case tea.KeyEnter:
		if ctx.SuggestionsVisible() {
			return []types.Action{types.AcceptSuggestionAction{}}, true
		}
		if !ctx.BufferEmpty() {
			return []types.Action{types.SubmitAction{}}, true
		}
		return nil, true
	}

	return nil, false
}
