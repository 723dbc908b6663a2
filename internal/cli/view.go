package cli

import (
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/dashboard"
	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/logger"
	"github.com/rileyhilliard/dash/internal/source"
	"github.com/spf13/cobra"
)

// defaultLogFile is used when DASH_DEBUG is set without --log-file.
const defaultLogFile = "dash-debug.log"

// ViewOptions holds the flags for the dashboard.
type ViewOptions struct {
	Interval string
	NoWatch  bool
}

var viewOpts ViewOptions

// viewCmd starts the TUI dashboard
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Start the live dashboard (default)",
	Long: `Start the interactive dashboard for this machine.

The config file is watched while the dashboard runs; saving it re-composes
the widgets without a restart.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Refresh now
  t           Toggle dark / light theme
  up/down     Scroll
  ?           Show help

Examples:
  dash view
  dash view --interval 2s
  dash view --no-watch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return viewCommand(viewOpts)
	},
}

func init() {
	addViewFlags(viewCmd, &viewOpts)
	rootCmd.AddCommand(viewCmd)
}

func addViewFlags(cmd *cobra.Command, opts *ViewOptions) {
	cmd.Flags().StringVar(&opts.Interval, "interval", "", "load sample interval, overrides load_interval (e.g. 500ms, 2s)")
	cmd.Flags().BoolVar(&opts.NoWatch, "no-watch", false, "don't reload when the config file changes")
}

// viewCommand loads config and runs the dashboard until the user quits.
func viewCommand(opts ViewOptions) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyInterval(cfg, opts.Interval); err != nil {
		return err
	}

	closer, err := setupLogging()
	if err != nil {
		return err
	}
	defer closer.Close()

	dlog := logger.NewEnvLogger("[dash]")
	for _, w := range config.Lint(cfg) {
		dlog.Warn("%s", w)
	}

	collector := source.NewCollector(
		source.WithVersion(GetVersion()),
		source.WithLogger(logger.NewEnvLogger("[source]")),
	)

	model := dashboard.NewModel(dashboard.Options{
		Config: cfg,
		Source: collector,
		Logger: dlog,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if path != "" && !opts.NoWatch {
		err := config.Watch(path, func(c *config.Config, err error) {
			if c != nil && opts.Interval != "" {
				// The flag keeps winning over the file.
				_ = applyInterval(c, opts.Interval)
			}
			p.Send(dashboard.ConfigMsg{Config: c, Err: err})
		})
		if err != nil {
			dlog.Warn("config watch disabled: %s", errors.Summarize(err))
		}
	}

	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTUI,
			"Dashboard stopped unexpectedly",
			"Check the terminal supports the alternate screen, or try 'dash snapshot'")
	}
	return nil
}

// applyInterval overrides the load interval from the --interval flag.
func applyInterval(cfg *config.Config, flag string) error {
	if flag == "" {
		return nil
	}
	d, err := time.ParseDuration(flag)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid interval: %s", flag),
			"Use a valid duration like 500ms, 1s or 5s")
	}
	if d < config.MinLoadInterval {
		return errors.New(errors.ErrConfig,
			"Interval too short",
			fmt.Sprintf("Minimum interval is %s", config.MinLoadInterval))
	}
	cfg.LoadInterval = d
	return nil
}

// setupLogging keeps log output off the screen the dashboard draws on: it
// goes to a file when asked for, and is discarded otherwise.
func setupLogging() (io.Closer, error) {
	path := logFile
	if path == "" && logger.DebugEnabled() {
		path = defaultLogFile
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	f, err := tea.LogToFile(path, "dash")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Can't open log file "+path,
			"Check the directory exists and is writable")
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
