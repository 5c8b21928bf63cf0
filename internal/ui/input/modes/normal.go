package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"skycast/internal/ui/input/types"
)

// NormalMode interprets vim-style command keys. Character motions act
// on the search buffer only while the search pane has focus; j/k drive
// the history selection only while the history pane has focus.
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyEsc:
		return []types.Action{types.QuitAction{}}, true

	case tea.KeyCtrlD:
		return []types.Action{types.ClearBufferAction{}}, true

	case tea.KeyTab:
		return []types.Action{types.SwitchPaneAction{}}, true

	case tea.KeyEnter:
		if ctx.Focus() == types.FocusHistory {
			return []types.Action{types.LoadHistoryAction{}}, true
		}
		if !ctx.BufferEmpty() {
			return []types.Action{types.SubmitAction{}}, true
		}
		return nil, true // empty submission is a no-op, not an error
	}

	switch msg.String() {
	case "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeInsert}}, true

	case "I":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeInsert},
			types.MoveCursorAction{Motion: "start"},
		}, true

	case "a":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeInsert},
			types.MoveCursorAction{Motion: "right"},
		}, true

	case "A":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeInsert},
			types.MoveCursorAction{Motion: "end"},
		}, true

	case "h":
		if ctx.Focus() == types.FocusSearch {
			return []types.Action{types.MoveCursorAction{Motion: "left"}}, true
		}
		return nil, true

	case "l":
		if ctx.Focus() == types.FocusSearch {
			return []types.Action{types.MoveCursorAction{Motion: "right"}}, true
		}
		return nil, true

	case "j":
		if ctx.Focus() == types.FocusHistory {
			return []types.Action{types.HistoryNavigateAction{Direction: "next"}}, true
		}
		return nil, true

	case "k":
		if ctx.Focus() == types.FocusHistory {
			return []types.Action{types.HistoryNavigateAction{Direction: "prev"}}, true
		}
		return nil, true

	case "0", "^":
		return []types.Action{types.MoveCursorAction{Motion: "start"}}, true

	case "$":
		return []types.Action{types.MoveCursorAction{Motion: "end"}}, true

	case "w":
		return []types.Action{types.MoveCursorAction{Motion: "word-next"}}, true

	case "b":
		return []types.Action{types.MoveCursorAction{Motion: "word-prev"}}, true

	case "x":
		return []types.Action{types.DeleteForwardAction{}}, true

	case "y":
		return []types.Action{types.YankAction{}}, true

	case "?":
		return []types.Action{types.ShowHelpAction{}}, true
	}

	return nil, false
}
