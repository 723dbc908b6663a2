package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines the dashboard's key bindings. Scrolling is left to the
// viewport's own key map.
type keyMap struct {
	Quit    key.Binding
	Refresh key.Binding
	Theme   key.Binding
	Help    key.Binding
	Close   key.Binding
}

var dashboardKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q / ctrl+c", "Quit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Refresh now"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "Toggle dark / light"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Toggle this help"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Close help"),
	),
}

// HandleKeyMsg processes keyboard input. Returns true if the key was
// handled; unhandled keys go to the viewport for scrolling.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Help toggle takes priority
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key.Matches(msg, m.keys.Close) {
		m.showHelp = false
		return true, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.stopUptimes()
		return true, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		return true, tea.Batch(m.fetchInfoCmd(), m.sampleCmd())

	case key.Matches(msg, m.keys.Theme):
		m.dark = !m.dark
		m.theme = ThemeFor(m.dark)
		m.refreshContent()
		return true, nil
	}

	return false, nil
}
