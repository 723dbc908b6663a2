package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/dash/internal/config"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 120

// Canvas is what RenderBody needs besides the composition itself.
type Canvas struct {
	Width   int
	Theme   *Theme
	Config  *config.Config
	Uptimes map[Kind]*Extrapolator
	// Revealed reports whether an entry's entrance delay has passed.
	// Nil reveals everything.
	Revealed func(Entry) bool
}

// RenderBody draws a composition: nothing while not loaded, the lone error
// panel on error, otherwise the widgets wrapped into rows.
func RenderBody(comp Composition, c Canvas) string {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Theme == nil {
		c.Theme = DarkTheme
	}

	switch comp.Status {
	case StatusError:
		return RenderError(c.Theme, comp.ErrorText, c.Width)
	case StatusReady:
	default:
		return ""
	}

	gap := Gap(c.Width)
	mobile := c.Width < BreakpointMobile
	var rows []string
	for _, row := range Arrange(comp.Entries, c.Width, gap) {
		cells := make([]string, 0, len(row)*2)
		for i, p := range row {
			if i > 0 && gap > 0 {
				cells = append(cells, strings.Repeat(" ", gap))
			}
			revealed := c.Revealed == nil || c.Revealed(p.Entry)
			frame := Frame{
				Width:    p.Width,
				Theme:    c.Theme,
				Uptime:   c.Uptimes[p.Entry.Kind],
				Revealed: revealed,
				Mobile:   mobile,
			}
			cells = append(cells, p.Entry.Panel.Render(p.Entry.Data, p.Entry.Load, c.Config, frame))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n\n")
}

// RenderBadgeLine right-aligns the version badge on a line of width.
// It returns left unchanged when there is no badge.
func RenderBadgeLine(t *Theme, left, badge string, width int) string {
	if badge == "" {
		return left
	}
	right := t.Badge().Render(badge)
	if width <= 0 {
		width = DefaultWidth
	}
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return left + strings.Repeat(" ", space) + right
}
