package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// HelpBinding is one row in the help overlay.
type HelpBinding struct {
	Key  string
	Desc string
}

// helpBindings lists every shortcut shown in the help overlay.
func (m Model) helpBindings() []HelpBinding {
	var rows []HelpBinding
	for _, b := range []key.Binding{m.keys.Quit, m.keys.Refresh, m.keys.Theme} {
		rows = append(rows, HelpBinding{Key: b.Help().Key, Desc: b.Help().Desc})
	}
	rows = append(rows,
		HelpBinding{Key: "↑↓ / j k", Desc: "Scroll"},
		HelpBinding{Key: "pgup / pgdn", Desc: "Scroll a page"},
		HelpBinding{Key: m.keys.Help.Help().Key, Desc: m.keys.Help.Help().Desc},
	)
	return rows
}

// renderHelpOverlay renders a centered box with the keyboard shortcuts.
func (m Model) renderHelpOverlay() string {
	t := m.theme
	keyStyle := lipgloss.NewStyle().Foreground(t.Text).Bold(true).Width(14)
	descStyle := lipgloss.NewStyle().Foreground(t.TextSecondary)

	lines := []string{t.Title().MarginBottom(1).Render("Keyboard Shortcuts"), ""}
	for _, b := range m.helpBindings() {
		lines = append(lines, keyStyle.Render(b.Key)+descStyle.Render(b.Desc))
	}
	lines = append(lines, "", t.Faint().Render("Press ? or esc to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))
}
