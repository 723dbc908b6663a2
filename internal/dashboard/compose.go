package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/logger"
	"github.com/rileyhilliard/dash/internal/source"
)

// StaggerStep is the entrance delay between consecutive widgets.
const StaggerStep = 60 * time.Millisecond

// Entry is one resolved widget, created fresh on every composition pass.
type Entry struct {
	Kind     Kind
	ID       string
	Index    int
	Grow     float64
	MinWidth int
	Panel    Panel
	Data     any
	Load     *source.Series
	// Delay is the entrance delay. It only affects presentation.
	Delay time.Duration
}

// Skip records a widget id left out of a composition and why.
type Skip struct {
	ID  string
	Err error
}

// Composition is the output of one pass: what to render, in order.
type Composition struct {
	Status Status
	// ErrorText is the single error panel's text when Status is StatusError.
	ErrorText string
	Entries   []Entry
	// VersionBadge is non-empty when the version should be drawn bottom right.
	VersionBadge string
	// Title is the requested window title; empty means leave it alone.
	Title   string
	Skipped []Skip
}

// Compose turns a page state into a composition. It has no side effects and
// returns equal results for equal inputs.
func Compose(state PageState, reg *Registry) Composition {
	switch state.Status() {
	case StatusError:
		return Composition{Status: StatusError, ErrorText: state.ErrorText()}
	case StatusReady:
	default:
		return Composition{Status: StatusNotLoaded}
	}

	cfg := state.Config()
	info := state.Info()
	comp := Composition{Status: StatusReady, Title: cfg.PageTitle}

	seen := make(map[string]bool, len(cfg.WidgetList))
	for _, id := range cfg.WidgetList {
		if seen[id] {
			comp.Skipped = append(comp.Skipped, Skip{ID: id, Err: errors.New(errors.ErrConfig,
				fmt.Sprintf("Widget '%s' is listed more than once", id),
				"Remove the duplicate from widget_list")})
			continue
		}
		seen[id] = true

		entry, err := reg.Resolve(id, info, state.Loads(), cfg)
		if err != nil {
			comp.Skipped = append(comp.Skipped, Skip{ID: id, Err: err})
			continue
		}
		entry.Index = len(comp.Entries)
		entry.Delay = time.Duration(entry.Index) * StaggerStep
		comp.Entries = append(comp.Entries, entry)
	}

	if cfg.ShowDashVersion == config.VersionBottomRight && info.OS != nil {
		comp.VersionBadge = info.OS.DashVersion
	}

	return comp
}

// IDs returns the widget ids in render order.
func (c Composition) IDs() []string {
	ids := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		ids[i] = e.ID
	}
	return ids
}

// Key identifies the rendered widget set. It changes only when widgets are
// added, removed, reordered, or the page switches state.
func (c Composition) Key() string {
	return c.Status.String() + ":" + strings.Join(c.IDs(), ",")
}

// Has reports whether a kind is part of the composition.
func (c Composition) Has(k Kind) bool {
	for _, e := range c.Entries {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// LogSkipped writes one warning per skipped widget.
func LogSkipped(log logger.Logger, c Composition) {
	for _, s := range c.Skipped {
		log.Warn("skipping widget %q: %s", s.ID, errors.Summarize(s.Err))
	}
}
