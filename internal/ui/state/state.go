package state

import (
	"skycast/internal/domain"
	"skycast/internal/ui/input/types"
)

// Phase is the top-level application state. Exactly one phase is
// active; it decides which component accepts input.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseLoading
	PhaseDisplay
	PhaseError
)

// AppState contains all the application state the UI loop owns
type AppState struct {
	// Phase and its payloads
	Phase        Phase
	Report       *domain.Report // set while Phase == PhaseDisplay
	ErrorMessage string         // set while Phase == PhaseError
	PendingQuery string         // query being fetched while Phase == PhaseLoading

	// Pane focus
	Focus types.Focus

	// UI state
	Width  int
	Height int
}

// NewAppState creates the entry state: Input phase, search pane focused
func NewAppState() *AppState {
	return &AppState{
		Phase: PhaseInput,
		Focus: types.FocusSearch,
	}
}

// SwitchFocus toggles between the search and history panes
func (s *AppState) SwitchFocus() {
	if s.Focus == types.FocusSearch {
		s.Focus = types.FocusHistory
	} else {
		s.Focus = types.FocusSearch
	}
}

// BeginLoading enters the Loading phase for query
func (s *AppState) BeginLoading(query string) {
	s.Phase = PhaseLoading
	s.PendingQuery = query
}

// ShowReport enters the Display phase with a resolved report
func (s *AppState) ShowReport(report domain.Report) {
	s.Phase = PhaseDisplay
	s.Report = &report
	s.PendingQuery = ""
	s.ErrorMessage = ""
}

// ShowError enters the Error phase carrying a user-facing message
func (s *AppState) ShowError(message string) {
	s.Phase = PhaseError
	s.ErrorMessage = message
	s.PendingQuery = ""
}

// ReturnToInput leaves Display or Error back to the Input phase
func (s *AppState) ReturnToInput() {
	s.Phase = PhaseInput
	s.ErrorMessage = ""
}
