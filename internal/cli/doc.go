// Package cli implements the dash command-line interface.
//
// Commands are package-level cobra.Command values registered in init();
// each delegates to a plain function that takes its options explicitly so
// it can be tested without cobra.
//
// # Command Structure
//
//	dash                - Start the dashboard (same as dash view)
//	dash view           - Start the dashboard
//	dash snapshot       - Render one composition pass and exit
//	dash init           - Create .dash.yaml
//	dash config         - Print the effective config
//	dash doctor         - Check config, data sources and terminal
//	dash version        - Print version information
//	dash completion     - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color, --log-file) live on the
// root command. --verbose sets DASH_DEBUG for the process; --no-color, or
// NO_COLOR in the environment, switches lipgloss to the ASCII profile.
//
// # Output
//
// While the dashboard runs it owns the terminal, so the standard logger is
// sent to --log-file (or dash-debug.log when DASH_DEBUG is set) and
// discarded otherwise. --json output uses JSONEnvelope.
package cli
