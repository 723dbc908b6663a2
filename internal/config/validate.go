package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/util"
)

const (
	// MinLoadInterval is the fastest sampling rate the dashboard accepts.
	MinLoadInterval = 250 * time.Millisecond
	// MinInfoInterval bounds how often static server info is re-read.
	MinInfoInterval = time.Second
	// MaxHistorySize caps the samples kept per metric.
	MaxHistorySize = 3600
)

// Validate checks the global settings and returns a structured error for the
// first problem found. Widget ids and layouts are not checked here; bad
// entries are skipped individually when the dashboard composes (see Lint).
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	switch cfg.ShowDashVersion {
	case "", VersionOff, VersionBottomRight:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("show_dash_version '%s' isn't a placement dash knows", cfg.ShowDashVersion),
			"Use 'off' or 'bottom_right'.")
	}

	if cfg.LoadInterval < MinLoadInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("load_interval %s is too fast", cfg.LoadInterval),
			fmt.Sprintf("Use %s or slower.", MinLoadInterval))
	}

	if cfg.InfoInterval < MinInfoInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("info_interval %s is too fast", cfg.InfoInterval),
			fmt.Sprintf("Use %s or slower.", MinInfoInterval))
	}

	if cfg.HistorySize < 2 || cfg.HistorySize > MaxHistorySize {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("history_size %d is out of range", cfg.HistorySize),
			fmt.Sprintf("Pick something between 2 and %d.", MaxHistorySize))
	}

	return nil
}

// Lint returns human readable warnings about the widget list: unknown ids,
// repeats, and ids without a usable layout. None of these stop the dashboard.
func Lint(cfg *Config) []string {
	if cfg == nil {
		return nil
	}

	var warnings []string
	seen := make(map[string]bool, len(cfg.WidgetList))
	for _, id := range cfg.WidgetList {
		if seen[id] {
			warnings = append(warnings, fmt.Sprintf("widget '%s' is listed more than once; only the first is shown", id))
			continue
		}
		seen[id] = true

		if !IsKnownWidget(id) {
			msg := fmt.Sprintf("widget '%s' isn't a known widget and will be skipped", id)
			if hint := util.SuggestSimilar(id, KnownWidgets, 2); hint != "" {
				msg += fmt.Sprintf(" (did you mean '%s'?)", hint)
			}
			warnings = append(warnings, msg)
			continue
		}
		if _, ok := cfg.Layout(id); !ok {
			warnings = append(warnings, fmt.Sprintf("widget '%s' has no valid %s/%s and will be skipped",
				id, GrowKey(id), MinWidthKey(id)))
		}
	}
	return warnings
}

// IsKnownWidget reports whether id names one of the built-in widgets.
func IsKnownWidget(id string) bool {
	for _, known := range KnownWidgets {
		if known == id {
			return true
		}
	}
	return false
}
