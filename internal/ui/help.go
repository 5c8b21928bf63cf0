package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// renderHelpContent builds the key reference shown in the pager
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	row := func(k, d string) string {
		return fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-12s", k)), descStyle.Render(d))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("Skycast Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Normal Mode"))
	help.WriteString("\n")
	help.WriteString(row("i", "Enter insert mode at cursor"))
	help.WriteString(row("I / A", "Insert at start / end of line"))
	help.WriteString(row("a", "Insert after cursor"))
	help.WriteString(row("h / l", "Move cursor left / right"))
	help.WriteString(row("w / b", "Next / previous word"))
	help.WriteString(row("0 ^ $", "Start / start / end of line"))
	help.WriteString(row("x", "Delete character under cursor"))
	help.WriteString(row("Ctrl+D", "Clear the search line"))
	help.WriteString(row("Enter", "Search for the typed city"))
	help.WriteString(row("Esc", "Quit"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Insert Mode"))
	help.WriteString("\n")
	help.WriteString(row("Esc", "Back to normal mode"))
	help.WriteString(row("↑ / ↓", "Move through suggestions"))
	help.WriteString(row("Tab / Enter", "Accept highlighted suggestion"))
	help.WriteString(row("Enter", "Search (no suggestions shown)"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("History Pane"))
	help.WriteString("\n")
	help.WriteString(row("Tab", "Switch between search and history"))
	help.WriteString(row("j / k", "Move through past searches"))
	help.WriteString(row("Enter", "Load entry into the search line"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Results"))
	help.WriteString("\n")
	help.WriteString(row("y", "Copy report summary to clipboard"))
	help.WriteString(row("i", "Search again in insert mode"))
	help.WriteString(row("q", "Quit"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(row("?", "Show this help"))
	help.WriteString(row("Ctrl+C", "Quit from anywhere"))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	reader := strings.NewReader(helpContent)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Don't write pager contents over our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
