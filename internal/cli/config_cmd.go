package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/ui"
	"github.com/spf13/cobra"
)

var configPathOnly bool

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration dash would run with: the config file (if any)
layered over defaults and DASH_* environment variables.

Warnings about unknown or duplicate widgets go to stderr.

Examples:
  dash config
  dash config --path
  DASH_WIDGET_LIST=cpu,ram dash config`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configCommand(cmd.OutOrStdout(), cmd.ErrOrStderr(), configPathOnly)
	},
}

func init() {
	configCmd.Flags().BoolVar(&configPathOnly, "path", false, "print only the path of the config file in use")
	rootCmd.AddCommand(configCmd)
}

func configCommand(out, errOut io.Writer, pathOnly bool) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	if pathOnly {
		if path == "" {
			fmt.Fprintln(out, "(defaults, no config file found)")
			return nil
		}
		fmt.Fprintln(out, path)
		return nil
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(out, "# %s\n", path)
	}
	if _, err := out.Write(data); err != nil {
		return err
	}

	for _, w := range config.Lint(cfg) {
		fmt.Fprintln(errOut, ui.Warning(w))
	}
	return nil
}

// loadConfig finds, loads and validates the config for the current
// --config flag. path is empty when running on defaults.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, "", err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
