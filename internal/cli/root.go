package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/logger"
	"github.com/rileyhilliard/dash/internal/ui"
	"github.com/rileyhilliard/dash/internal/util"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	verbose bool
	noColor bool
	logFile string
)

// rootCmd runs the dashboard when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "A terminal dashboard for this server",
	Long: `dash shows a live overview of the machine it runs on: OS and uptime,
CPU, storage, RAM, network and GPU, each in its own widget.

Which widgets appear, and in what order, comes from widget_list in
.dash.yaml (or ~/.config/dash/config.yaml, or DASH_* environment variables).

Examples:
  dash
  dash --config ./prod.yaml
  DASH_WIDGET_LIST=os,cpu,ram dash
  dash snapshot --json`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyGlobalFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		return viewCommand(viewOpts)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./"+config.ConfigFileName+" or ~/"+config.GlobalConfigDir+"/"+config.GlobalConfigFile+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file while the dashboard runs")

	addViewFlags(rootCmd, &viewOpts)
}

// applyGlobalFlags turns --verbose and --no-color into process settings.
func applyGlobalFlags(cmd *cobra.Command, args []string) error {
	if verbose {
		if err := os.Setenv(logger.DebugEnv, "1"); err != nil {
			return err
		}
	}
	if noColor || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if isUnknownCommandError(err) {
			name := extractUnknownCommand(err)
			fmt.Fprintln(os.Stderr, ui.Failure(fmt.Sprintf("Unknown command '%s'", name)))
			if hint := suggestCommand(name); hint != "" {
				fmt.Fprintf(os.Stderr, "  Did you mean 'dash %s'?\n", hint)
			}
			fmt.Fprintln(os.Stderr, "  Run 'dash --help' to see what's available.")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// suggestCommand returns the registered command closest to name, or "".
func suggestCommand(name string) string {
	if name == "" {
		return ""
	}
	var names []string
	for _, c := range rootCmd.Commands() {
		if !c.Hidden {
			names = append(names, c.Name())
		}
	}
	return util.SuggestSimilar(name, names, 2)
}

// isUnknownCommandError reports whether cobra rejected the command line
// itself rather than a command failing.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "dash"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
