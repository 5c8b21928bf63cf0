package types

// Cursor motions
type MoveCursorAction struct {
	Motion string // "left", "right", "start", "end", "word-next", "word-prev"
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

// Buffer mutations
type InsertTextAction struct {
	Runes []rune
}

func (a InsertTextAction) Type() string { return "insert_text" }

type DeleteBackwardAction struct{}

func (a DeleteBackwardAction) Type() string { return "delete_backward" }

type DeleteForwardAction struct{}

func (a DeleteForwardAction) Type() string { return "delete_forward" }

type ClearBufferAction struct{}

func (a ClearBufferAction) Type() string { return "clear_buffer" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Pane focus
type SwitchPaneAction struct{}

func (a SwitchPaneAction) Type() string { return "switch_pane" }

// Suggestion actions
type SuggestNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SuggestNavigateAction) Type() string { return "suggest_navigate" }

type AcceptSuggestionAction struct{}

func (a AcceptSuggestionAction) Type() string { return "accept_suggestion" }

type HideSuggestionsAction struct{}

func (a HideSuggestionsAction) Type() string { return "hide_suggestions" }

// History actions
type HistoryNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a HistoryNavigateAction) Type() string { return "history_navigate" }

type LoadHistoryAction struct{}

func (a LoadHistoryAction) Type() string { return "load_history" }

// Submission
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

// Clipboard
type YankAction struct{}

func (a YankAction) Type() string { return "yank" }

// Help pager
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
