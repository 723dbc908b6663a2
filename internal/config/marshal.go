package config

import (
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Marshal renders cfg as YAML using the same flat keys Load reads, so the
// output can be saved straight back to .dash.yaml.
func Marshal(cfg *Config) ([]byte, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	root := &yaml.Node{Kind: yaml.MappingNode}

	list := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, id := range cfg.WidgetList {
		list.Content = append(list.Content, scalar(id))
	}
	addPair(root, "widget_list", list)

	for _, id := range layoutKeys(cfg) {
		l := cfg.Layouts[id]
		addPair(root, GrowKey(id), scalar(strconv.FormatFloat(l.Grow, 'f', -1, 64)))
		addPair(root, MinWidthKey(id), scalar(strconv.Itoa(l.MinWidth)))
	}

	if cfg.PageTitle != "" {
		addPair(root, "page_title", scalar(cfg.PageTitle))
	}
	placement := cfg.ShowDashVersion
	if placement == "" {
		placement = VersionOff
	}
	addPair(root, "show_dash_version", scalar(string(placement)))
	addPair(root, "dark_mode", scalar(strconv.FormatBool(cfg.DarkMode)))
	addPair(root, "load_interval", scalar(cfg.LoadInterval.String()))
	addPair(root, "info_interval", scalar(cfg.InfoInterval.String()))
	addPair(root, "history_size", scalar(strconv.Itoa(cfg.HistorySize)))

	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
	return yaml.Marshal(doc)
}

// layoutKeys orders layouts by widget list position, then the remaining
// known widgets, then anything else alphabetically.
func layoutKeys(cfg *Config) []string {
	var keys []string
	seen := make(map[string]bool)
	add := func(id string) {
		if _, ok := cfg.Layouts[id]; ok && !seen[id] {
			seen[id] = true
			keys = append(keys, id)
		}
	}
	for _, id := range cfg.WidgetList {
		add(id)
	}
	for _, id := range KnownWidgets {
		add(id)
	}
	var rest []string
	for id := range cfg.Layouts {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}

func addPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}
