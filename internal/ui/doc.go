// Package ui provides the styled one-line messages dash prints outside the
// dashboard: confirmations from init, config warnings and failures.
//
// Colors are ANSI codes for broad terminal compatibility and follow the
// active lipgloss color profile, so --no-color and NO_COLOR give plain text.
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings and skipped items
//	ColorMuted     (gray)   - Secondary text
package ui
