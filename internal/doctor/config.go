package doctor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/util"
)

// ConfigFileCheck reports which config file dash would read.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return CategoryConfig }

func (c *ConfigFileCheck) Run(context.Context) CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Status:     StatusFail,
			Message:    fmt.Sprintf("Error finding config: %v", err),
			Suggestion: "Check the --config path or run 'dash init' to create one",
		}
	}

	if path == "" {
		// Defaults are a working setup, just not a customized one.
		return CheckResult{
			Status:     StatusWarn,
			Message:    "No config file found, using defaults",
			Suggestion: "Run 'dash init' to create a " + config.ConfigFileName,
		}
	}

	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", filepath.Base(path)),
	}
}

// ConfigSchemaCheck loads the config and validates the global settings.
type ConfigSchemaCheck struct {
	ConfigPath string
}

func (c *ConfigSchemaCheck) Name() string     { return "config_schema" }
func (c *ConfigSchemaCheck) Category() string { return CategoryConfig }

func (c *ConfigSchemaCheck) Run(context.Context) CheckResult {
	cfg, _, err := config.LoadOrDefault(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Status:     StatusFail,
			Message:    fmt.Sprintf("Failed to load config: %v", err),
			Suggestion: "Check the YAML syntax in your config file",
		}
	}

	if err := config.Validate(cfg); err != nil {
		return CheckResult{
			Status:     StatusFail,
			Message:    fmt.Sprintf("Settings error: %v", err),
			Suggestion: "Fix the setting and run 'dash doctor' again",
		}
	}

	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("Settings valid (samples every %s)", cfg.LoadInterval),
	}
}

// WidgetListCheck lints widget_list and the per-widget layouts.
type WidgetListCheck struct {
	ConfigPath string
}

func (c *WidgetListCheck) Name() string     { return "widget_list" }
func (c *WidgetListCheck) Category() string { return CategoryConfig }

func (c *WidgetListCheck) Run(context.Context) CheckResult {
	cfg, _, err := config.LoadOrDefault(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Status:  StatusFail,
			Message: "Cannot check widgets: config did not load",
		}
	}

	if warnings := config.Lint(cfg); len(warnings) > 0 {
		return CheckResult{
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%d widget %s", len(warnings), util.Pluralize(len(warnings), "problem", "problems")),
			Suggestion: strings.Join(warnings, "\n"),
		}
	}

	if len(cfg.WidgetList) == 0 {
		return CheckResult{
			Status:     StatusWarn,
			Message:    "widget_list is empty, the dashboard will be blank",
			Suggestion: "Known widgets: " + util.JoinOrNone(config.KnownWidgets),
		}
	}

	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("Widgets: %s", util.JoinOrNone(cfg.WidgetList)),
	}
}

// NewConfigChecks returns the CONFIG checks for the given --config value.
func NewConfigChecks(configPath string) []Check {
	return []Check{
		&ConfigFileCheck{ConfigPath: configPath},
		&ConfigSchemaCheck{ConfigPath: configPath},
		&WidgetListCheck{ConfigPath: configPath},
	}
}
