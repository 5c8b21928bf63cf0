package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"skycast/internal/config"
	"skycast/internal/eventbus"
	"skycast/internal/forecast"
	"skycast/internal/history"
	"skycast/internal/lookup"
	"skycast/internal/suggest"
	"skycast/internal/textbuf"
	"skycast/internal/ui/input"
	"skycast/internal/ui/input/types"
	"skycast/internal/ui/state"
	"skycast/internal/ui/views"
)

const tickInterval = 80 * time.Millisecond

// Model is the Bubble Tea model. It owns all mutable state; background
// services only reach it through events forwarded as EventMsg.
type Model struct {
	cfg *config.Config

	buffer      *textbuf.Buffer
	handler     *input.Handler
	coordinator *suggest.Coordinator
	ring        *history.Ring
	store       *history.Store
	lookupSvc   lookup.Service
	forecastSvc forecast.Service

	appState *state.AppState
	renderer *views.Renderer
	helpOps  *HelpOps
}

// NewModel creates the UI model wired to its background services
func NewModel(cfg *config.Config, ring *history.Ring, store *history.Store, lookupSvc lookup.Service, forecastSvc forecast.Service) *Model {
	return &Model{
		cfg:         cfg,
		buffer:      textbuf.New(),
		handler:     input.New(),
		coordinator: suggest.New(cfg.MinQueryChars),
		ring:        ring,
		store:       store,
		lookupSvc:   lookupSvc,
		forecastSvc: forecastSvc,
		appState:    state.NewAppState(),
		renderer:    views.NewRenderer(),
	}
}

// SetProgram hands the model its running program, needed for the help
// pager's terminal release/restore dance
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// inputContext exposes the state the mode handlers are allowed to see
type inputContext struct {
	m *Model
}

func (c inputContext) Focus() types.Focus       { return c.m.appState.Focus }
func (c inputContext) BufferEmpty() bool        { return c.m.buffer.Empty() }
func (c inputContext) SuggestionsVisible() bool { return c.m.coordinator.Visible() }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.appState.Width = msg.Width
		m.appState.Height = msg.Height
		return m, nil

	case tickMsg:
		// the tick only exists to animate the spinner
		if m.appState.Phase == state.PhaseLoading {
			return m, tick()
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("help pager: %v", msg.err)
		}
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) View() string {
	vs := views.ViewState{
		Width:  m.appState.Width,
		Height: m.appState.Height,

		Phase: m.appState.Phase,
		Mode:  m.handler.Mode(),
		Focus: m.appState.Focus,

		InputText: m.buffer.String(),
		CursorPos: m.buffer.Cursor(),

		Suggestions:        m.coordinator.Results(),
		SelectedSuggestion: m.coordinator.Selected(),
		ShowSuggestions:    m.coordinator.Visible(),

		History:         m.ring.Entries(),
		SelectedHistory: m.ring.SelectedIndex(),

		Report:       m.appState.Report,
		ErrorMessage: m.appState.ErrorMessage,
		PendingQuery: m.appState.PendingQuery,
	}
	return m.renderer.Render(vs)
}

// handleEvent merges background service results into the model. Every
// payload carries the query it was produced for, and is dropped when
// the model has moved on since the work was dispatched.
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.SuggestionsFetchedEvent:
		// suggestions only ever surface while typing: a lookup that
		// completes after leaving insert mode is dropped even when its
		// query still matches the buffer
		if m.appState.Phase == state.PhaseInput && m.handler.Mode() == types.ModeInsert {
			m.coordinator.Apply(e.Query, m.buffer.String(), e.Locations)
		}

	case eventbus.WeatherFetchedEvent:
		if m.appState.Phase == state.PhaseLoading && e.Query == m.appState.PendingQuery {
			m.appState.ShowReport(e.Report)
			m.recordSearch(e.Query)
			m.buffer.Clear()
			m.coordinator.Hide()
			m.handler.Reset()
		}

	case eventbus.WeatherFailedEvent:
		if m.appState.Phase == state.PhaseLoading && e.Query == m.appState.PendingQuery {
			m.appState.ShowError(e.Message)
			m.handler.Reset()
		}

	case eventbus.ErrorEvent:
		log.Printf("error event: %s: %v", e.Message, e.Err)
	}

	return m, nil
}

// recordSearch updates the in-memory ring and persists it off the UI
// goroutine. Persistence failures are logged, never surfaced.
func (m *Model) recordSearch(query string) {
	m.ring.Record(query)
	entries := append([]history.Entry(nil), m.ring.Entries()...)
	store := m.store
	if store == nil {
		return
	}
	go func() {
		if err := store.Save(entries); err != nil {
			log.Printf("saving history: %v", err)
		}
	}()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.appState.Phase {
	case state.PhaseLoading:
		// only quit can interrupt a fetch in flight
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil

	case state.PhaseDisplay, state.PhaseError:
		return m.handleResultKey(msg)

	default:
		actions := m.handler.HandleKey(msg, inputContext{m: m})
		return m.applyActions(actions)
	}
}

// handleResultKey covers the Display and Error screens, where a few
// keys act directly and anything else starts a fresh search
func (m *Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
		return m, tea.Quit
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "y":
		if m.appState.Phase == state.PhaseDisplay {
			m.yankReport()
			return m, nil
		}
	case "?":
		return m, m.showHelpCmd()
	case "i":
		m.appState.ReturnToInput()
		m.appState.Focus = types.FocusSearch
		m.handler.ChangeMode(types.ModeInsert)
		return m, nil
	}

	m.appState.ReturnToInput()
	m.handler.Reset()
	return m, nil
}

func (m *Model) applyActions(actions []types.Action) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	for _, action := range actions {
		switch a := action.(type) {
		case types.MoveCursorAction:
			m.moveCursor(a.Motion)

		case types.InsertTextAction:
			for _, r := range a.Runes {
				m.buffer.Insert(r)
			}
			m.afterEdit()

		case types.DeleteBackwardAction:
			m.buffer.DeleteBackward()
			m.afterEdit()

		case types.DeleteForwardAction:
			m.buffer.DeleteForward()
			m.afterEdit()

		case types.ClearBufferAction:
			m.buffer.Clear()
			m.coordinator.Hide()

		case types.SwitchPaneAction:
			m.appState.SwitchFocus()
			m.coordinator.Hide()

		case types.SuggestNavigateAction:
			if a.Direction == "next" {
				m.coordinator.SelectNext()
			} else {
				m.coordinator.SelectPrev()
			}

		case types.AcceptSuggestionAction:
			if loc, ok := m.coordinator.Accept(); ok {
				m.buffer.SetString(loc.Label())
			}

		case types.HideSuggestionsAction:
			m.coordinator.Hide()

		case types.HistoryNavigateAction:
			if a.Direction == "next" {
				m.ring.SelectNext()
			} else {
				m.ring.SelectPrev()
			}

		case types.LoadHistoryAction:
			if entry, ok := m.ring.Selected(); ok {
				m.buffer.SetString(entry.Query)
				m.appState.Focus = types.FocusSearch
				m.handler.ChangeMode(types.ModeInsert)
				m.coordinator.Hide()
			}

		case types.SubmitAction:
			if cmd := m.submit(); cmd != nil {
				cmds = append(cmds, cmd)
			}

		case types.YankAction:
			m.yank(m.buffer.String())

		case types.ShowHelpAction:
			cmds = append(cmds, m.showHelpCmd())

		case types.QuitAction:
			return m, tea.Quit
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) moveCursor(motion string) {
	switch motion {
	case "left":
		m.buffer.MoveLeft()
	case "right":
		m.buffer.MoveRight()
	case "start":
		m.buffer.MoveToStart()
	case "end":
		m.buffer.MoveToEnd()
	case "word-next":
		m.buffer.MoveToNextWord()
	case "word-prev":
		m.buffer.MoveToPrevWord()
	}
}

// afterEdit runs after every buffer mutation: it reconciles the
// suggestion state with the new text and kicks off a lookup when one
// is due. Autocomplete is an insert-mode feature; Normal-mode edits
// like x never arm a lookup, though shrinking still clears the set.
func (m *Model) afterEdit() {
	text := m.buffer.String()
	m.coordinator.Sync(text)
	if m.handler.Mode() != types.ModeInsert {
		return
	}
	if m.coordinator.ShouldDispatch(text) {
		m.lookupSvc.Lookup(text)
	}
}

// submit sends the buffer content verbatim; only an all-whitespace
// line counts as empty and is ignored
func (m *Model) submit() tea.Cmd {
	query := m.buffer.String()
	if strings.TrimSpace(query) == "" {
		return nil
	}

	m.appState.BeginLoading(query)
	m.coordinator.Hide()
	m.forecastSvc.Fetch(query)
	return tick()
}

func (m *Model) yankReport() {
	if m.appState.Report == nil {
		return
	}
	m.yank(m.appState.Report.Summary())
}

func (m *Model) yank(text string) {
	if text == "" {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.Printf("clipboard: %v", err)
	}
}

func (m *Model) showHelpCmd() tea.Cmd {
	ops := m.helpOps
	content := renderHelpContent()
	return func() tea.Msg {
		if ops == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
