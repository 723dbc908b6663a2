package dashboard

import "github.com/charmbracelet/lipgloss"

// Thresholds for metric severity levels.
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Theme is a color palette plus the styles derived from it.
type Theme struct {
	Name string

	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	Healthy  lipgloss.Color
	Warning  lipgloss.Color
	Critical lipgloss.Color

	Text          lipgloss.Color
	TextSecondary lipgloss.Color
	Muted         lipgloss.Color

	Accent    lipgloss.Color
	AccentDim lipgloss.Color
	Graph     lipgloss.Color
}

// DarkTheme is the neon-on-void palette.
var DarkTheme = &Theme{
	Name:          "dark",
	Background:    lipgloss.Color("#0A0A0F"),
	Surface:       lipgloss.Color("#12121A"),
	Border:        lipgloss.Color("#2A2A4A"),
	Healthy:       lipgloss.Color("#39FF14"),
	Warning:       lipgloss.Color("#FFAA00"),
	Critical:      lipgloss.Color("#FF0055"),
	Text:          lipgloss.Color("#FFFFFF"),
	TextSecondary: lipgloss.Color("#B4B4D0"),
	Muted:         lipgloss.Color("#6B6B8D"),
	Accent:        lipgloss.Color("#FF2E97"),
	AccentDim:     lipgloss.Color("#BF40FF"),
	Graph:         lipgloss.Color("#00FFFF"),
}

// LightTheme is the daylight palette: same hues, readable on white.
var LightTheme = &Theme{
	Name:          "light",
	Background:    lipgloss.Color("#F7F7FB"),
	Surface:       lipgloss.Color("#FFFFFF"),
	Border:        lipgloss.Color("#C9C9DE"),
	Healthy:       lipgloss.Color("#1E9E3A"),
	Warning:       lipgloss.Color("#C77700"),
	Critical:      lipgloss.Color("#D0003C"),
	Text:          lipgloss.Color("#1A1A2E"),
	TextSecondary: lipgloss.Color("#4A4A68"),
	Muted:         lipgloss.Color("#8A8AA6"),
	Accent:        lipgloss.Color("#D81B7A"),
	AccentDim:     lipgloss.Color("#8A2BE2"),
	Graph:         lipgloss.Color("#007C91"),
}

// ThemeFor picks the dark or light theme.
func ThemeFor(dark bool) *Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}

// MetricColor returns the color for a percentage: healthy below 70%,
// warning up to 90%, critical above.
func (t *Theme) MetricColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return t.Critical
	case percent >= WarningThreshold:
		return t.Warning
	default:
		return t.Healthy
	}
}

// MetricStyle returns a foreground style for a percentage.
func (t *Theme) MetricStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.MetricColor(percent))
}

// Card is the rounded box every widget sits in. width is the outer width.
func (t *Theme) Card(width int) lipgloss.Style {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(inner)
}

// Title styles a widget heading.
func (t *Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

// Label styles the left column of a key/value line.
func (t *Theme) Label() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.TextSecondary)
}

// Value styles the right column of a key/value line.
func (t *Theme) Value() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

// Faint styles placeholders and hints.
func (t *Theme) Faint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// Header styles the top bar.
func (t *Theme) Header() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Bold(true).
		Padding(0, 1)
}

// Footer styles the bottom bar.
func (t *Theme) Footer() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1)
}

// Badge styles the version badge.
func (t *Theme) Badge() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.AccentDim).Padding(0, 1)
}
