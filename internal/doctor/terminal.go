package doctor

import (
	"context"
	"fmt"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/dash/internal/dashboard"
)

// TerminalSizeCheck reports how the dashboard will lay out at the current
// width.
type TerminalSizeCheck struct {
	IsTTY  bool
	Width  int
	Height int
}

func (c *TerminalSizeCheck) Name() string     { return "terminal_size" }
func (c *TerminalSizeCheck) Category() string { return CategoryTerminal }

func (c *TerminalSizeCheck) Run(context.Context) CheckResult {
	if !c.IsTTY {
		return CheckResult{
			Status:     StatusWarn,
			Message:    "stdout is not a terminal",
			Suggestion: "Use 'dash snapshot' for non-interactive output",
		}
	}

	if c.Width < dashboard.BreakpointMobile {
		return CheckResult{
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Terminal is %dx%d, widgets will stack one per row", c.Width, c.Height),
			Suggestion: fmt.Sprintf("Widen the terminal to at least %d columns for side-by-side widgets", dashboard.BreakpointMobile),
		}
	}

	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("Terminal is %dx%d", c.Width, c.Height),
	}
}

// ColorCheck reports the detected color profile.
type ColorCheck struct {
	Profile termenv.Profile
}

func (c *ColorCheck) Name() string     { return "color" }
func (c *ColorCheck) Category() string { return CategoryTerminal }

func (c *ColorCheck) Run(context.Context) CheckResult {
	switch c.Profile {
	case termenv.TrueColor:
		return CheckResult{Status: StatusPass, Message: "Colors: true color"}
	case termenv.ANSI256:
		return CheckResult{Status: StatusPass, Message: "Colors: 256"}
	case termenv.ANSI:
		return CheckResult{Status: StatusPass, Message: "Colors: 16"}
	default:
		return CheckResult{
			Status:     StatusWarn,
			Message:    "No color support detected",
			Suggestion: "Graphs render in plain text. Unset NO_COLOR or check TERM",
		}
	}
}

// NewTerminalChecks returns the TERMINAL checks.
func NewTerminalChecks(isTTY bool, width, height int, profile termenv.Profile) []Check {
	return []Check{
		&TerminalSizeCheck{IsTTY: isTTY, Width: width, Height: height},
		&ColorCheck{Profile: profile},
	}
}
