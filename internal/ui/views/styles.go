package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Mode         lipgloss.Style
	Dim          lipgloss.Style
	Cursor       lipgloss.Style
	PaneActive   lipgloss.Style
	PaneInactive lipgloss.Style
	InputText    lipgloss.Style
	Selected     lipgloss.Style
	ListItem     lipgloss.Style
	FieldName    lipgloss.Style
	FieldValue   lipgloss.Style
	Temperature  lipgloss.Style
	Condition    lipgloss.Style
	Error        lipgloss.Style
	Loading      lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Mode: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Cursor: lipgloss.NewStyle().Reverse(true),
		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1),
		PaneInactive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputText: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("214")),
		ListItem:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FieldName:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		FieldValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Temperature: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		Condition:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
