package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string // Where to write; empty means ./.dash.yaml
	Global         bool   // Write ~/.config/dash/config.yaml instead
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use flags and defaults

	Widgets     string // Comma separated widget list
	PageTitle   string
	ShowVersion bool
	Light       bool

	Out io.Writer
}

var initOpts InitOptions

// initCmd creates a new config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .dash.yaml configuration",
	Long: `Create a config file with the widgets you want, in the order you want.

Runs an interactive form by default. In CI, without a terminal, or with
--non-interactive, the flags and defaults are written as is.

Examples:
  dash init
  dash init --global
  dash init --non-interactive --widgets os,cpu,ram --title prod-1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := initOpts
		opts.Out = cmd.OutOrStdout()
		if !opts.NonInteractive {
			opts.NonInteractive = nonInteractiveEnv()
		}
		return Init(opts)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initOpts.Overwrite, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initOpts.NonInteractive, "non-interactive", false, "don't prompt, use flags and defaults")
	initCmd.Flags().BoolVar(&initOpts.Global, "global", false, "write the per-user config instead of ./"+config.ConfigFileName)
	initCmd.Flags().StringVar(&initOpts.Widgets, "widgets", "", "comma separated widget list (e.g. os,cpu,ram)")
	initCmd.Flags().StringVar(&initOpts.PageTitle, "title", "", "terminal window title")
	initCmd.Flags().BoolVar(&initOpts.ShowVersion, "show-version", false, "show the dash version bottom right")
	initCmd.Flags().BoolVar(&initOpts.Light, "light", false, "start in the light theme")
	rootCmd.AddCommand(initCmd)
}

// nonInteractiveEnv reports whether prompting is impossible or unwanted.
func nonInteractiveEnv() bool {
	if os.Getenv("DASH_NON_INTERACTIVE") != "" || os.Getenv("CI") != "" {
		return true
	}
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// Init writes a new config file.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	path, err := initPath(opts)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cfg, err := initConfig(opts)
	if err != nil {
		return err
	}

	if !opts.NonInteractive {
		if err := runInitForm(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen, please report this bug")
	}

	header := `# dash configuration
# widget_list order is render order. Each widget needs <id>_widget_grow and
# <id>_widget_min_width; unknown ids are skipped.

`
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to create config directory",
			"Check directory permissions")
	}
	if err := os.WriteFile(path, []byte(header+string(data)), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", path),
			"Check directory permissions")
	}

	fmt.Fprintln(out, ui.Success("Created "+path))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  dash           "+ui.Muted("Start the dashboard"))
	fmt.Fprintln(out, "  dash snapshot  "+ui.Muted("Print it once"))
	fmt.Fprintln(out, "  dash config    "+ui.Muted("Show the effective config"))
	return nil
}

func initPath(opts InitOptions) (string, error) {
	if opts.Path != "" {
		return opts.Path, nil
	}
	if opts.Global {
		p := config.GlobalConfigPath()
		if p == "" {
			return "", errors.New(errors.ErrConfig,
				"Can't locate your home directory",
				"Pass --config or run 'dash init' without --global")
		}
		return p, nil
	}
	return filepath.Join(".", config.ConfigFileName), nil
}

// initConfig builds the starting config from defaults and flags.
func initConfig(opts InitOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if strings.TrimSpace(opts.Widgets) != "" {
		list, err := config.ParseWidgetList(opts.Widgets)
		if err != nil {
			return nil, err
		}
		for _, id := range list {
			if !config.IsKnownWidget(id) {
				return nil, errors.New(errors.ErrConfig,
					fmt.Sprintf("Unknown widget '%s'", id),
					fmt.Sprintf("Pick from: %s", strings.Join(config.KnownWidgets, ", ")))
			}
		}
		cfg.WidgetList = list
	}
	cfg.PageTitle = strings.TrimSpace(opts.PageTitle)
	if opts.ShowVersion {
		cfg.ShowDashVersion = config.VersionBottomRight
	}
	cfg.DarkMode = !opts.Light
	return cfg, nil
}

// runInitForm lets the user adjust cfg interactively.
func runInitForm(cfg *config.Config) error {
	widgets := append([]string(nil), cfg.WidgetList...)
	placement := string(cfg.ShowDashVersion)
	title := cfg.PageTitle
	dark := cfg.DarkMode

	options := make([]huh.Option[string], 0, len(config.KnownWidgets))
	for _, id := range config.KnownWidgets {
		options = append(options, huh.NewOption(id, id))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Widgets").
				Description("Shown in this order; edit widget_list later to reorder").
				Options(options...).
				Value(&widgets).
				Validate(func(s []string) error {
					if len(s) == 0 {
						return fmt.Errorf("pick at least one widget")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Window title (optional)").
				Description("Set as the terminal title while dash runs").
				Placeholder("prod-1").
				Value(&title),
			huh.NewSelect[string]().
				Title("Show the dash version").
				Options(
					huh.NewOption("Hidden", string(config.VersionOff)),
					huh.NewOption("Bottom right", string(config.VersionBottomRight)),
				).
				Value(&placement),
			huh.NewConfirm().
				Title("Dark theme?").
				Value(&dark),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive")
	}

	cfg.WidgetList = widgets
	cfg.PageTitle = strings.TrimSpace(title)
	cfg.ShowDashVersion = config.VersionPlacement(placement)
	cfg.DarkMode = dark
	return nil
}
