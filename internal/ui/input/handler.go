package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"skycast/internal/ui/input/modes"
	"skycast/internal/ui/input/types"
)

// Handler owns the current input mode and routes keystrokes to the
// active mode's handler. Mode transitions are resolved here; all other
// actions are returned for the model to apply.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeInsert] = modes.NewInsertMode()

	return h
}

// HandleKey processes a keystroke through the active mode handler and
// returns the actions the model should apply
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var out []types.Action
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			out = append(out, h.changeMode(changeMode.Mode, ctx)...)
			continue
		}
		out = append(out, action)
	}
	return out
}

// Mode returns the current input mode
func (h *Handler) Mode() types.Mode {
	return h.currentMode
}

// ChangeMode forces a mode transition from outside the key path (used
// when loading a history entry or leaving the Display screen)
func (h *Handler) ChangeMode(mode types.Mode) {
	h.changeMode(mode, nil)
}

// Reset puts the handler back into normal mode
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
}

func (h *Handler) changeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}

	var out []types.Action
	if old := h.modes[h.currentMode]; old != nil {
		out = append(out, old.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}
