package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// Placeholder texts.
const (
	NoDataText      = "no data yet"
	NoSamplesText   = "waiting for samples"
	UnknownText     = "unknown"
	graphHeight     = 2
	minContentWidth = 8
)

// contentWidth is the usable width inside a card of outer width w.
func contentWidth(w int) int {
	cw := w - 4
	if cw < minContentWidth {
		cw = minContentWidth
	}
	return cw
}

// renderCard boxes a title and body lines. Lines are cut to fit. A card that
// hasn't been revealed yet is drawn without color in the muted tone.
func renderCard(t *Theme, title string, lines []string, f Frame) string {
	cw := contentWidth(f.Width)

	body := make([]string, 0, len(lines)+1)
	body = append(body, t.Title().Render(ansi.Truncate(title, cw, "…")))
	for _, l := range lines {
		for _, sub := range strings.Split(l, "\n") {
			body = append(body, ansi.Truncate(sub, cw, "…"))
		}
	}

	style := t.Card(f.Width)
	if !f.Revealed {
		faint := t.Faint()
		for i, l := range body {
			body[i] = faint.Render(ansi.Strip(l))
		}
		style = style.BorderForeground(t.Muted)
	}
	return style.Render(strings.Join(body, "\n"))
}

// kvLine renders "label  value" with the label padded to labelWidth.
func kvLine(t *Theme, label, value string, labelWidth int) string {
	return t.Label().Render(padRight(label, labelWidth)) + t.Value().Render(value)
}

// padRight pads s with spaces to width cells, always leaving one space
// after it.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-w)
}

// placeholderLine renders a muted note.
func placeholderLine(t *Theme, text string) string {
	return t.Faint().Render(text)
}

// gaugeLine renders "label  NN% [bar]" sized to width.
func gaugeLine(t *Theme, label string, percent float64, width int) string {
	pct := fmt.Sprintf("%3.0f%%", clampPercent(percent))
	head := t.Label().Render(label) + " " + t.MetricStyle(percent).Render(pct) + " "
	barWidth := width - lipgloss.Width(head)
	if barWidth < 1 {
		return head
	}
	return head + Bar(t, barWidth, percent)
}

func formatBytes(n uint64) string {
	return humanize.IBytes(n)
}

func formatRate(bytesPerSec float64) string {
	if bytesPerSec < 0 {
		bytesPerSec = 0
	}
	return humanize.IBytes(uint64(bytesPerSec)) + "/s"
}

func formatMHz(mhz float64) string {
	if mhz <= 0 {
		return UnknownText
	}
	if mhz >= 1000 {
		return fmt.Sprintf("%.2f GHz", mhz/1000)
	}
	return fmt.Sprintf("%.0f MHz", mhz)
}

func percentOf(used, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return used / total * 100
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// orDash returns s, or "-" when s is blank.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
