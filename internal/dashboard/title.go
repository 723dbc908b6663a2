package dashboard

import tea "github.com/charmbracelet/bubbletea"

// TitlePort owns the terminal window title. It only asks for a change when
// the title differs from what was last set, and never clears it.
type TitlePort struct {
	current string
}

// Observe returns the title to set and true when title is non-empty and new.
func (p *TitlePort) Observe(title string) (string, bool) {
	if title == "" || title == p.current {
		return "", false
	}
	p.current = title
	return title, true
}

// Cmd wraps Observe into a Bubble Tea command, or nil when nothing changes.
func (p *TitlePort) Cmd(title string) tea.Cmd {
	if t, ok := p.Observe(title); ok {
		return tea.SetWindowTitle(t)
	}
	return nil
}

// Current returns the last title set.
func (p *TitlePort) Current() string {
	return p.current
}
