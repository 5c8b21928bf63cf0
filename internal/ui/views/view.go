package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"skycast/internal/domain"
	"skycast/internal/history"
	"skycast/internal/ui/input/types"
	"skycast/internal/ui/state"
)

const historyPaneWidth = 34

// ViewState is a snapshot of everything the renderer needs. The model
// assembles one per frame so rendering stays free of business logic.
type ViewState struct {
	Width  int
	Height int

	Phase state.Phase
	Mode  types.Mode
	Focus types.Focus

	InputText string
	CursorPos int // rune index into InputText

	Suggestions        []domain.Location
	SelectedSuggestion int
	ShowSuggestions    bool

	History         []history.Entry
	SelectedHistory int

	Report       *domain.Report
	ErrorMessage string
	PendingQuery string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	help   help.Model
}

func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
		help:   help.New(),
	}
}

// Render produces the complete frame for the current state
func (r *Renderer) Render(s ViewState) string {
	if s.Width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(r.renderTitle(s))
	b.WriteString("\n")

	leftWidth := s.Width - historyPaneWidth - 2
	if leftWidth < 20 {
		leftWidth = s.Width - 4
	}

	main := r.renderMain(s, leftWidth)
	if s.Width-leftWidth >= historyPaneWidth {
		hist := r.renderHistory(s, historyPaneWidth-4)
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, hist)
	}
	b.WriteString(main)
	b.WriteString("\n")

	b.WriteString(r.renderFooter(s))
	return b.String()
}

func (r *Renderer) renderTitle(s ViewState) string {
	title := r.styles.Title.Render("Skycast")
	mode := r.styles.Mode.Render(fmt.Sprintf("-- %s --", s.Mode))

	parts := []string{title, mode}
	if s.Phase == state.PhaseLoading {
		parts = append(parts, r.styles.Loading.Render(spinnerFrame()))
	}
	return "  " + strings.Join(parts, "  ")
}

func (r *Renderer) renderMain(s ViewState, width int) string {
	var content string
	switch s.Phase {
	case state.PhaseLoading:
		content = r.renderLoading(s, width-4)
	case state.PhaseDisplay:
		content = r.renderReport(s, width-4)
	case state.PhaseError:
		content = r.renderError(s, width-4)
	default:
		content = r.renderSearch(s, width-4)
	}

	style := r.styles.PaneInactive
	if s.Focus == types.FocusSearch {
		style = r.styles.PaneActive
	}
	return style.Width(width).Render(content)
}

func (r *Renderer) renderSearch(s ViewState, width int) string {
	var b strings.Builder
	b.WriteString(r.styles.Dim.Render("City search"))
	b.WriteString("\n\n")
	b.WriteString("  > ")
	b.WriteString(r.renderInputLine(s))
	b.WriteString("\n")

	if s.ShowSuggestions && len(s.Suggestions) > 0 {
		b.WriteString("\n")
		for i, loc := range s.Suggestions {
			label := runewidth.Truncate(loc.Display(), width-4, "…")
			if i == s.SelectedSuggestion {
				b.WriteString("  " + r.styles.Selected.Render(label))
			} else {
				b.WriteString("  " + r.styles.ListItem.Render(label))
			}
			b.WriteString("\n")
		}
	} else if s.InputText == "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("  Type a city name, Enter to search"))
		b.WriteString("\n")
	}
	return b.String()
}

// renderInputLine draws the buffer with a cell-wide cursor overlay. The
// cursor sits on the rune at CursorPos, or on a trailing space when the
// cursor is past the end of the text.
func (r *Renderer) renderInputLine(s ViewState) string {
	runes := []rune(s.InputText)
	pos := s.CursorPos
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}

	before := r.styles.InputText.Render(string(runes[:pos]))
	if pos == len(runes) {
		return before + r.styles.Cursor.Render(" ")
	}
	under := r.styles.Cursor.Render(string(runes[pos]))
	after := r.styles.InputText.Render(string(runes[pos+1:]))
	return before + under + after
}

func (r *Renderer) renderLoading(s ViewState, width int) string {
	msg := fmt.Sprintf("%s Fetching weather for %s...", spinnerFrame(), s.PendingQuery)
	return "\n" + r.styles.Loading.Render(runewidth.Truncate(msg, width, "…")) + "\n"
}

func (r *Renderer) renderReport(s ViewState, width int) string {
	if s.Report == nil {
		return ""
	}
	rep := s.Report

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(rep.Location.Display()))
	b.WriteString("\n\n")

	temp := fmt.Sprintf("%.1f%s", rep.Current.Temperature, rep.Units.Temperature)
	b.WriteString("  " + r.styles.Temperature.Render(temp))
	b.WriteString("  " + r.styles.Condition.Render(rep.Descriptor))
	b.WriteString("\n\n")

	fields := []struct {
		name  string
		value string
	}{
		{"Feels like", fmt.Sprintf("%.1f%s", rep.Current.ApparentTemperature, rep.Units.Temperature)},
		{"Humidity", fmt.Sprintf("%d%%", rep.Current.RelativeHumidity)},
		{"Wind", fmt.Sprintf("%.1f %s", rep.Current.WindSpeed, rep.Units.WindSpeed)},
		{"Precipitation", fmt.Sprintf("%.1f %s", rep.Current.Precipitation, rep.Units.Precipitation)},
		{"Pressure", fmt.Sprintf("%.1f %s", rep.Current.PressureMSL, rep.Units.PressureMSL)},
	}
	for _, f := range fields {
		name := runewidth.FillRight(f.name, 15)
		b.WriteString("  " + r.styles.FieldName.Render(name) + r.styles.FieldValue.Render(f.value))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderError(s ViewState, width int) string {
	var b strings.Builder
	b.WriteString(r.styles.Error.Render("Error"))
	b.WriteString("\n\n")
	for _, line := range wrap(s.ErrorMessage, width) {
		b.WriteString("  " + r.styles.FieldValue.Render(line) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("  Press any key to search again, q to quit"))
	return b.String()
}

func (r *Renderer) renderHistory(s ViewState, width int) string {
	var b strings.Builder
	b.WriteString(r.styles.Dim.Render("History"))
	b.WriteString("\n\n")

	if len(s.History) == 0 {
		b.WriteString(r.styles.Dim.Render("  No searches yet"))
		b.WriteString("\n")
	}
	for i, e := range s.History {
		when := time.Unix(e.Timestamp, 0).Format("Jan 02 15:04")
		label := runewidth.Truncate(e.Query, width-len(when)-3, "…")
		line := runewidth.FillRight(label, width-len(when)-1) + r.styles.Dim.Render(when)
		if s.Focus == types.FocusHistory && i == s.SelectedHistory {
			line = r.styles.Selected.Render(runewidth.FillRight(label, width-len(when)-1)) + r.styles.Dim.Render(when)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	style := r.styles.PaneInactive
	if s.Focus == types.FocusHistory {
		style = r.styles.PaneActive
	}
	return style.Width(historyPaneWidth - 2).Render(b.String())
}

func (r *Renderer) renderFooter(s ViewState) string {
	r.help.Width = s.Width

	var km keyMap
	switch {
	case s.Phase == state.PhaseDisplay || s.Phase == state.PhaseError:
		km = resultKeyMap()
	case s.Mode == types.ModeInsert:
		km = insertKeyMap()
	default:
		km = normalKeyMap()
	}
	return " " + r.help.View(km)
}

// spinnerFrame derives the animation frame from wall time so the
// spinner advances on every tick redraw without extra state.
func spinnerFrame() string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := int(time.Now().UnixMilli()/80) % len(frames)
	return frames[frame]
}

func wrap(text string, width int) []string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(text)
	var lines []string
	var cur string
	for _, w := range words {
		if cur == "" {
			cur = w
			continue
		}
		if runewidth.StringWidth(cur)+1+runewidth.StringWidth(w) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
