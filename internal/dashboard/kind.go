package dashboard

import "github.com/rileyhilliard/dash/internal/config"

// Kind is one of the closed set of widget kinds.
type Kind int

const (
	KindOS Kind = iota
	KindCPU
	KindStorage
	KindRAM
	KindNetwork
	KindGPU
)

// Kinds lists every widget kind in default order.
var Kinds = []Kind{KindOS, KindCPU, KindStorage, KindRAM, KindNetwork, KindGPU}

// String returns the widget id used in widget_list.
func (k Kind) String() string {
	switch k {
	case KindOS:
		return config.WidgetOS
	case KindCPU:
		return config.WidgetCPU
	case KindStorage:
		return config.WidgetStorage
	case KindRAM:
		return config.WidgetRAM
	case KindNetwork:
		return config.WidgetNetwork
	case KindGPU:
		return config.WidgetGPU
	default:
		return "unknown"
	}
}

// ParseKind maps a widget id to its Kind.
func ParseKind(id string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == id {
			return k, true
		}
	}
	return 0, false
}

// Live reports whether the kind keeps a value ticking between updates.
func (k Kind) Live() bool {
	return k == KindOS
}
