package config

import (
	"time"
)

// VersionPlacement controls where the dash version badge is drawn.
type VersionPlacement string

const (
	// VersionOff hides the version badge.
	VersionOff VersionPlacement = "off"
	// VersionBottomRight pins the badge to the bottom right of the dashboard.
	VersionBottomRight VersionPlacement = "bottom_right"
)

// Widget identifiers understood by the dashboard, in their default order.
const (
	WidgetOS      = "os"
	WidgetCPU     = "cpu"
	WidgetStorage = "storage"
	WidgetRAM     = "ram"
	WidgetNetwork = "network"
	WidgetGPU     = "gpu"
)

// KnownWidgets lists every widget id that has default layout hints.
var KnownWidgets = []string{WidgetOS, WidgetCPU, WidgetStorage, WidgetRAM, WidgetNetwork, WidgetGPU}

// Config is the dashboard configuration. It is read-only to the dashboard;
// any change produces a new Config and a full re-composition.
type Config struct {
	// WidgetList is the ordered list of widgets to show.
	WidgetList []string `yaml:"widget_list"`

	// Layouts holds the grow/min-width hints per widget id. Ids without an
	// entry are a configuration error and get skipped at composition time.
	Layouts map[string]WidgetLayout `yaml:"-"`

	// PageTitle is set as the terminal window title when non-empty.
	PageTitle string `yaml:"page_title,omitempty"`

	// ShowDashVersion places the version badge, or hides it.
	ShowDashVersion VersionPlacement `yaml:"show_dash_version"`

	// DarkMode picks the initial theme. Toggled at runtime with 't'.
	DarkMode bool `yaml:"dark_mode"`

	// LoadInterval is the cadence for load samples (cpu/ram/storage/network/gpu).
	LoadInterval time.Duration `yaml:"load_interval"`

	// InfoInterval is the cadence for the full server info snapshot (incl. uptime).
	InfoInterval time.Duration `yaml:"info_interval"`

	// HistorySize is the number of load samples kept per metric.
	HistorySize int `yaml:"history_size"`
}

// WidgetLayout holds the flex hints for one widget.
type WidgetLayout struct {
	// Grow is the share of leftover row width the widget takes.
	Grow float64 `yaml:"grow"`
	// MinWidth is the widget's basis width in terminal cells.
	MinWidth int `yaml:"min_width"`
}

// Layout returns the layout hints for a widget id.
func (c *Config) Layout(id string) (WidgetLayout, bool) {
	if c == nil || c.Layouts == nil {
		return WidgetLayout{}, false
	}
	l, ok := c.Layouts[id]
	return l, ok
}

// Clone returns a deep copy so callers can tweak a config without touching
// the one the dashboard is rendering.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.WidgetList = append([]string(nil), c.WidgetList...)
	out.Layouts = make(map[string]WidgetLayout, len(c.Layouts))
	for k, v := range c.Layouts {
		out.Layouts[k] = v
	}
	return &out
}

// defaultLayouts mirrors the web dashboard's defaults; min widths are
// expressed in terminal cells.
var defaultLayouts = map[string]WidgetLayout{
	WidgetOS:      {Grow: 2.5, MinWidth: 36},
	WidgetCPU:     {Grow: 4, MinWidth: 44},
	WidgetStorage: {Grow: 3.5, MinWidth: 40},
	WidgetRAM:     {Grow: 4, MinWidth: 40},
	WidgetNetwork: {Grow: 2.5, MinWidth: 36},
	WidgetGPU:     {Grow: 4, MinWidth: 40},
}

// DefaultLayout returns the built-in layout for a known widget id.
func DefaultLayout(id string) (WidgetLayout, bool) {
	l, ok := defaultLayouts[id]
	return l, ok
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	layouts := make(map[string]WidgetLayout, len(defaultLayouts))
	for id, l := range defaultLayouts {
		layouts[id] = l
	}
	return &Config{
		WidgetList:      []string{WidgetOS, WidgetCPU, WidgetStorage, WidgetRAM, WidgetNetwork},
		Layouts:         layouts,
		ShowDashVersion: VersionOff,
		DarkMode:        true,
		LoadInterval:    time.Second,
		InfoInterval:    time.Minute,
		HistorySize:     60,
	}
}
