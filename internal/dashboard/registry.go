package dashboard

import (
	"fmt"

	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/source"
)

// Frame carries what a panel needs from its surroundings to render.
type Frame struct {
	// Width is the outer width in cells the panel must fill.
	Width int
	Theme *Theme
	// Uptime is the live extrapolator for kinds that tick; nil otherwise.
	Uptime *Extrapolator
	// Revealed is false while the entrance stagger still holds the panel back.
	Revealed bool
	// Mobile is set for narrow terminals.
	Mobile bool
}

// Panel renders one widget. data is the kind's ServerInfo sub-record and
// load its Series; either may be nil and the panel then shows a placeholder.
type Panel interface {
	Render(data any, load *source.Series, cfg *config.Config, frame Frame) string
}

// registration binds a kind to its panel and data selectors.
type registration struct {
	panel Panel
	data  func(*source.ServerInfo) any
	load  func(source.Loads) *source.Series
}

// Registry maps widget kinds to panels.
type Registry struct {
	table map[Kind]registration
}

// NewRegistry returns the registry with every built-in widget.
func NewRegistry() *Registry {
	return &Registry{table: map[Kind]registration{
		KindOS: {
			panel: OSPanel{},
			data:  func(i *source.ServerInfo) any { return i.OS },
			load:  func(source.Loads) *source.Series { return nil },
		},
		KindCPU: {
			panel: CPUPanel{},
			data:  func(i *source.ServerInfo) any { return i.CPU },
			load:  func(l source.Loads) *source.Series { return l.CPU },
		},
		KindStorage: {
			panel: StoragePanel{},
			data:  func(i *source.ServerInfo) any { return i.Storage },
			load:  func(l source.Loads) *source.Series { return l.Storage },
		},
		KindRAM: {
			panel: RAMPanel{},
			data:  func(i *source.ServerInfo) any { return i.RAM },
			load:  func(l source.Loads) *source.Series { return l.RAM },
		},
		KindNetwork: {
			panel: NetworkPanel{},
			data:  func(i *source.ServerInfo) any { return i.Network },
			load:  func(l source.Loads) *source.Series { return l.Network },
		},
		KindGPU: {
			panel: GPUPanel{},
			data:  func(i *source.ServerInfo) any { return i.GPU },
			load:  func(l source.Loads) *source.Series { return l.GPU },
		},
	}}
}

// Panel returns the panel registered for k.
func (r *Registry) Panel(k Kind) (Panel, bool) {
	reg, ok := r.table[k]
	return reg.panel, ok
}

// Resolve turns a widget id into an Entry with its layout hints, panel, data
// and load bound. Unknown ids and ids without a layout are CONFIG errors.
func (r *Registry) Resolve(id string, info *source.ServerInfo, loads source.Loads, cfg *config.Config) (Entry, error) {
	kind, ok := ParseKind(id)
	if !ok {
		return Entry{}, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown widget '%s'", id),
			fmt.Sprintf("Pick from: %v", config.KnownWidgets))
	}

	reg, ok := r.table[kind]
	if !ok {
		return Entry{}, errors.New(errors.ErrConfig,
			fmt.Sprintf("Widget '%s' has no panel", id), "")
	}

	layout, ok := cfg.Layout(id)
	if !ok {
		return Entry{}, errors.New(errors.ErrConfig,
			fmt.Sprintf("Widget '%s' has no layout", id),
			fmt.Sprintf("Set %s and %s in your config", config.GrowKey(id), config.MinWidthKey(id)))
	}

	if info == nil {
		info = &source.ServerInfo{}
	}

	return Entry{
		Kind:     kind,
		ID:       id,
		Grow:     layout.Grow,
		MinWidth: layout.MinWidth,
		Panel:    reg.panel,
		Data:     reg.data(info),
		Load:     reg.load(loads),
	}, nil
}
