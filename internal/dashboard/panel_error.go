package dashboard

import (
	"github.com/charmbracelet/lipgloss"
)

// ErrorMinWidth is the preferred width of the error panel.
const ErrorMinWidth = 50

// RenderError draws the single panel shown when the source fails, centered
// in width.
func RenderError(t *Theme, text string, width int) string {
	w := ErrorMinWidth
	if width > 0 && width < w {
		w = width
	}
	msg := lipgloss.NewStyle().
		Foreground(t.Critical).
		Width(contentWidth(w)).
		Render(text)
	card := t.Card(w).BorderForeground(t.Critical).Render(
		t.Title().Foreground(t.Critical).Render("✗ Something went wrong") + "\n\n" + msg)
	if width <= w {
		return card
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}
