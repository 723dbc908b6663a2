package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestStatusLines(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		want string
	}{
		{"success", Success, "✓ Created .dash.yaml"},
		{"warning", Warning, "⚠ Created .dash.yaml"},
		{"failure", Failure, "✗ Created .dash.yaml"},
		{"muted", Muted, "Created .dash.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn("Created .dash.yaml"))
		})
	}
}
