// Package dashboard implements the terminal dashboard: a set of widgets
// describing one server, composed from configuration and rendered with
// Bubble Tea and lipgloss.
//
// # Architecture
//
// Rendering is split into a pure composition step and a drawing step:
//
//   - PageState: NotLoaded, Error or Ready (server info, config, loads)
//   - Compose:   turns a PageState into a Composition, the ordered list of
//     widget entries plus the version badge and window title
//   - RenderBody: wraps entries into rows (Arrange) and draws each Panel
//
// Compose has no side effects. The Model reconciles everything that does:
// the window title (TitlePort), the entrance stagger and the live uptime
// extrapolators.
//
// # Key Components
//
//	Model        - The Bubble Tea model holding source data and view state
//	Registry     - Maps widget kinds to panels and their data selectors
//	Extrapolator - Keeps the OS uptime counting between server reports
//	TitlePort    - Sets the terminal title only when it actually changes
//
// # Message Flow
//
//  1. infoTickMsg and loadTickMsg fire at the configured intervals
//  2. fetchInfoCmd and sampleCmd call the Source off the Update loop
//  3. infoMsg and sampleMsg update the model and trigger a recompose
//  4. uptimeTickMsg advances the live uptime once per second; ticks from a
//     replaced anchor carry an old generation and are dropped
//  5. ConfigMsg swaps in a reloaded config and recomposes
//
// # Layout
//
// Widgets wrap like a flex row. Below 80 columns each widget fills its own
// row; from 160 columns the gaps widen.
package dashboard
