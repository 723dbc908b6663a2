package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the project-local config file name.
	ConfigFileName = ".dash.yaml"
	// GlobalConfigDir is the directory for the per-user config.
	GlobalConfigDir = ".config/dash"
	// GlobalConfigFile is the per-user config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes every environment override (DASH_WIDGET_LIST, ...).
	EnvPrefix = "DASH"
)

// Load reads config from the specified path, layered over defaults and
// environment overrides. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found",
					"Run 'dash init' to create one, or point --config at an existing file")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	return fromViper(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .dash.yaml in the current directory
// 3. ~/.config/dash/config.yaml
//
// Returns an empty path when nothing is found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if global := GlobalConfigPath(); global != "" {
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// GlobalConfigPath returns ~/.config/dash/config.yaml, or "" when the home
// directory is unknown.
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
}

// LoadOrDefault finds and loads the config. Without a config file it returns
// defaults plus environment overrides. The resolved path is returned so the
// caller can watch it.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("widget_list", strings.Join(d.WidgetList, ","))
	for id, l := range defaultLayouts {
		v.SetDefault(GrowKey(id), l.Grow)
		v.SetDefault(MinWidthKey(id), l.MinWidth)
	}
	v.SetDefault("page_title", "")
	v.SetDefault("show_dash_version", string(d.ShowDashVersion))
	v.SetDefault("dark_mode", d.DarkMode)
	v.SetDefault("load_interval", d.LoadInterval.String())
	v.SetDefault("info_interval", d.InfoInterval.String())
	v.SetDefault("history_size", d.HistorySize)
}

// GrowKey is the flat config key holding a widget's grow weight.
func GrowKey(id string) string {
	return id + "_widget_grow"
}

// MinWidthKey is the flat config key holding a widget's minimum width.
func MinWidthKey(id string) string {
	return id + "_widget_min_width"
}

// fromViper converts viper state into a Config. Per-widget layout problems
// are not fatal: the layout is left out and the widget gets skipped when the
// dashboard composes.
func fromViper(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()
	where := path
	if where == "" {
		where = "your environment"
	}

	list, err := ParseWidgetList(v.Get("widget_list"))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid widget_list",
			"Use a YAML list or a comma separated string, like: os,cpu,ram")
	}
	cfg.WidgetList = list

	cfg.Layouts = make(map[string]WidgetLayout)
	for _, id := range layoutCandidates(list) {
		if l, ok := readLayout(v, id); ok {
			cfg.Layouts[id] = l
		}
	}

	cfg.PageTitle = v.GetString("page_title")
	cfg.ShowDashVersion = VersionPlacement(strings.ToLower(strings.TrimSpace(v.GetString("show_dash_version"))))

	if cfg.DarkMode, err = cast.ToBoolE(v.Get("dark_mode")); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"dark_mode must be true or false",
			"Check dark_mode in "+where)
	}
	if cfg.LoadInterval, err = cast.ToDurationE(v.Get("load_interval")); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"load_interval isn't a valid duration",
			"Use something like 1s or 500ms in "+where)
	}
	if cfg.InfoInterval, err = cast.ToDurationE(v.Get("info_interval")); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"info_interval isn't a valid duration",
			"Use something like 1m or 30s in "+where)
	}
	if cfg.HistorySize, err = cast.ToIntE(v.Get("history_size")); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"history_size must be a whole number",
			"Check history_size in "+where)
	}

	return cfg, nil
}

// layoutCandidates returns the known widgets plus any extra ids from the list.
func layoutCandidates(list []string) []string {
	ids := append([]string(nil), KnownWidgets...)
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range list {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// readLayout reads both layout keys for an id. Missing or malformed keys
// mean no layout.
func readLayout(v *viper.Viper, id string) (WidgetLayout, bool) {
	if !v.IsSet(GrowKey(id)) || !v.IsSet(MinWidthKey(id)) {
		return WidgetLayout{}, false
	}
	grow, err := cast.ToFloat64E(v.Get(GrowKey(id)))
	if err != nil || grow < 0 {
		return WidgetLayout{}, false
	}
	minWidth, err := cast.ToIntE(v.Get(MinWidthKey(id)))
	if err != nil || minWidth < 0 {
		return WidgetLayout{}, false
	}
	return WidgetLayout{Grow: grow, MinWidth: minWidth}, true
}

// ParseWidgetList accepts a comma separated string or a list and returns the
// trimmed, lower-cased ids in order. Empty items are dropped; duplicates are
// kept so Lint can report them.
func ParseWidgetList(raw interface{}) ([]string, error) {
	var items []string
	switch val := raw.(type) {
	case nil:
		return nil, nil
	case string:
		items = strings.Split(val, ",")
	case []string:
		items = val
	case []interface{}:
		for _, item := range val {
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, fmt.Errorf("widget_list item %v: %w", item, err)
			}
			items = append(items, s)
		}
	default:
		return nil, fmt.Errorf("unsupported widget_list type %T", raw)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		id := strings.ToLower(strings.TrimSpace(item))
		if id != "" {
			out = append(out, id)
		}
	}
	return out, nil
}
