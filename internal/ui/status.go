package ui

import "github.com/charmbracelet/lipgloss"

// Success renders "✓ msg" in green.
func Success(msg string) string {
	return line(SymbolSuccess, ColorSuccess, msg)
}

// Warning renders "⚠ msg" in yellow.
func Warning(msg string) string {
	return line(SymbolWarning, ColorWarning, msg)
}

// Failure renders "✗ msg" in red.
func Failure(msg string) string {
	return line(SymbolFail, ColorError, msg)
}

// Muted renders secondary text.
func Muted(msg string) string {
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(msg)
}

func line(symbol string, color lipgloss.Color, msg string) string {
	return lipgloss.NewStyle().Foreground(color).Render(symbol) + " " + msg
}
