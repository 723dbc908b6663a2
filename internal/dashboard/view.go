package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/dash/internal/errors"
)

// renderDashboard renders header, scrolling widgets and footer.
func (m Model) renderDashboard() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderBody())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the title bar with the host and freshness.
func (m Model) renderHeader() string {
	t := m.theme
	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("dash")

	var status string
	switch m.comp.Status {
	case StatusNotLoaded:
		status = " | loading"
	case StatusError:
		status = " | source error"
	default:
		host := "-"
		if m.info != nil && m.info.OS != nil && m.info.OS.Hostname != "" {
			host = m.info.OS.Hostname
		}
		status = fmt.Sprintf(" | %s | %d widgets | updated %s", host, len(m.comp.Entries), m.updatedText())
	}

	stats := lipgloss.NewStyle().Foreground(t.TextSecondary).Render(status)
	return t.Header().Render(title + stats)
}

func (m Model) updatedText() string {
	switch s := m.SecondsSinceUpdate(); s {
	case 0:
		return "just now"
	case 1:
		return "1s ago"
	default:
		return fmt.Sprintf("%ds ago", s)
	}
}

// renderFooter renders key hints, a config warning if any, and the
// version badge pinned to the right.
func (m Model) renderFooter() string {
	t := m.theme
	hints := []string{"q quit", "r refresh", "t theme", "? help"}
	left := t.Footer().Render(strings.Join(hints, " | "))
	if m.configErr != nil {
		left += lipgloss.NewStyle().Foreground(t.Warning).Render(" config: " + errors.Summarize(m.configErr))
	}
	return RenderBadgeLine(t, left, m.comp.VersionBadge, m.width)
}
