package views

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap feeds the help bubble in the footer. The visible hints depend
// on the input mode and the current phase, so each screen gets its own
// map.
type keyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return k.short }
func (k keyMap) FullHelp() [][]key.Binding { return k.full }

func normalKeyMap() keyMap {
	insert := key.NewBinding(key.WithKeys("i", "a"), key.WithHelp("i/a", "insert"))
	motions := key.NewBinding(key.WithKeys("h", "l", "w", "b"), key.WithHelp("h/l/w/b", "move"))
	pane := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane"))
	submit := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search"))
	help := key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))
	quit := key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit"))

	return keyMap{
		short: []key.Binding{insert, motions, pane, submit, help, quit},
		full:  [][]key.Binding{{insert, motions}, {pane, submit}, {help, quit}},
	}
}

func insertKeyMap() keyMap {
	normal := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode"))
	pick := key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "pick suggestion"))
	accept := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "accept"))
	submit := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search"))

	return keyMap{
		short: []key.Binding{normal, pick, accept, submit},
		full:  [][]key.Binding{{normal, pick}, {accept, submit}},
	}
}

func resultKeyMap() keyMap {
	back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("any key", "new search"))
	insert := key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "search again"))
	quit := key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))

	return keyMap{
		short: []key.Binding{back, insert, quit},
		full:  [][]key.Binding{{back, insert, quit}},
	}
}
