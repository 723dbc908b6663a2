package dashboard

import (
	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/source"
)

// Status tags a PageState.
type Status int

const (
	StatusNotLoaded Status = iota
	StatusError
	StatusReady
)

// String returns a human-readable status.
func (s Status) String() string {
	switch s {
	case StatusNotLoaded:
		return "not_loaded"
	case StatusError:
		return "error"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// PageState is what the dashboard currently knows: nothing yet, a source
// error, or server info plus config plus loads. Build one with NotLoaded,
// Failed or Ready.
type PageState struct {
	status  Status
	errText string
	info    *source.ServerInfo
	cfg     *config.Config
	loads   source.Loads
}

// NotLoaded is the state before the first server info arrives.
func NotLoaded() PageState {
	return PageState{status: StatusNotLoaded}
}

// Failed is the state after the source reported an error.
func Failed(text string) PageState {
	return PageState{status: StatusError, errText: text}
}

// Ready is the state with data to render. A nil config means the page
// isn't loaded yet.
func Ready(info *source.ServerInfo, cfg *config.Config, loads source.Loads) PageState {
	if cfg == nil {
		return NotLoaded()
	}
	if info == nil {
		info = &source.ServerInfo{}
	}
	return PageState{status: StatusReady, info: info, cfg: cfg, loads: loads}
}

// Status returns the state tag.
func (s PageState) Status() Status { return s.status }

// ErrorText is set when Status is StatusError.
func (s PageState) ErrorText() string { return s.errText }

// Info is set when Status is StatusReady.
func (s PageState) Info() *source.ServerInfo { return s.info }

// Config is set when Status is StatusReady.
func (s PageState) Config() *config.Config { return s.cfg }

// Loads is set when Status is StatusReady.
func (s PageState) Loads() source.Loads { return s.loads }
