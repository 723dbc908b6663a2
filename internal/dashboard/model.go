package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/logger"
	"github.com/rileyhilliard/dash/internal/source"
)

// collectTimeout bounds a single Info or Sample call.
const collectTimeout = 10 * time.Second

// Chrome heights around the scrolling widget area.
const (
	headerHeight = 2
	footerHeight = 1
)

// Options configures a Model.
type Options struct {
	Config   *config.Config
	Source   source.Source
	Logger   logger.Logger
	Registry *Registry
	// Clock overrides time.Now.
	Clock func() time.Time
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	cfg     *config.Config
	src     source.Source
	reg     *Registry
	log     logger.Logger
	now     func() time.Time
	history *source.History

	info       *source.ServerInfo
	sourceErr  error
	configErr  error
	lastUpdate time.Time

	comp    Composition
	uptimes map[Kind]*Extrapolator
	title   TitlePort

	staggerKey   string
	staggerStart time.Time

	dark     bool
	theme    *Theme
	keys     keyMap
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	showHelp bool
	quitting bool
}

// infoTickMsg schedules the next server info refresh.
type infoTickMsg time.Time

// loadTickMsg schedules the next load sample.
type loadTickMsg time.Time

// staggerTickMsg advances the entrance animation.
type staggerTickMsg time.Time

// infoMsg carries a server info result.
type infoMsg struct {
	info *source.ServerInfo
	err  error
	at   time.Time
}

// sampleMsg carries a load sample result.
type sampleMsg struct {
	sample *source.LoadSample
	err    error
}

// uptimeTickMsg advances a live widget. gen ties it to the anchor it was
// scheduled for.
type uptimeTickMsg struct {
	kind Kind
	gen  int
	at   time.Time
}

// ConfigMsg delivers a reloaded config, or the error that prevented it.
type ConfigMsg struct {
	Config *config.Config
	Err    error
}

// NewModel creates the dashboard model.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}
	reg := opts.Registry
	if reg == nil {
		reg = NewRegistry()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	m := Model{
		cfg:     cfg,
		src:     opts.Source,
		reg:     reg,
		log:     log,
		now:     now,
		history: source.NewHistory(cfg.HistorySize),
		uptimes: make(map[Kind]*Extrapolator),
		dark:    cfg.DarkMode,
		theme:   ThemeFor(cfg.DarkMode),
		keys:    dashboardKeys,
	}
	m.comp = Compose(m.pageState(), m.reg)
	m.staggerKey = m.comp.Key()
	return m
}

// Init fetches server info and a first sample, and starts both refresh loops.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchInfoCmd(),
		m.sampleCmd(),
		m.infoTickCmd(),
		m.loadTickCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vh := m.height - headerHeight - footerHeight
		if vh < 1 {
			vh = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vh)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vh
		}
		m.refreshContent()
		return m, nil

	case infoTickMsg:
		return m, tea.Batch(m.infoTickCmd(), m.fetchInfoCmd())

	case loadTickMsg:
		return m, tea.Batch(m.loadTickCmd(), m.sampleCmd())

	case infoMsg:
		m.lastUpdate = msg.at
		if msg.err != nil {
			m.log.Error("server info failed: %s", errors.Summarize(msg.err))
			m.sourceErr = msg.err
		} else {
			m.sourceErr = nil
			m.info = msg.info
		}
		return m, m.recompose()

	case sampleMsg:
		if msg.err != nil {
			m.log.Debug("load sample failed: %s", errors.Summarize(msg.err))
			return m, nil
		}
		m.history.Push(msg.sample)
		return m, m.recompose()

	case uptimeTickMsg:
		ext, ok := m.uptimes[msg.kind]
		if !ok || !ext.Tick(msg.gen, msg.at) {
			return m, nil
		}
		m.refreshContent()
		return m, uptimeTickCmd(msg.kind, msg.gen)

	case staggerTickMsg:
		m.refreshContent()
		if m.allRevealed() {
			return m, nil
		}
		return m, staggerTickCmd()

	case ConfigMsg:
		if msg.Err != nil {
			m.log.Warn("config reload failed: %s", errors.Summarize(msg.Err))
			m.configErr = msg.Err
			return m, nil
		}
		m.configErr = nil
		m.applyConfig(msg.Config)
		return m, m.recompose()
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// pageState derives the current PageState.
func (m Model) pageState() PageState {
	if m.sourceErr != nil {
		return Failed(errors.Summarize(m.sourceErr))
	}
	if m.info == nil {
		return NotLoaded()
	}
	return Ready(m.info, m.cfg, m.history.Loads())
}

// recompose runs a composition pass and reconciles everything hanging off
// it: the window title, the entrance stagger and the live extrapolators.
func (m *Model) recompose() tea.Cmd {
	m.comp = Compose(m.pageState(), m.reg)

	var cmds []tea.Cmd
	if cmd := m.title.Cmd(m.comp.Title); cmd != nil {
		cmds = append(cmds, cmd)
	}

	if key := m.comp.Key(); key != m.staggerKey {
		m.staggerKey = key
		m.staggerStart = m.now()
		LogSkipped(m.log, m.comp)
		if !m.allRevealed() {
			cmds = append(cmds, staggerTickCmd())
		}
	}

	cmds = append(cmds, m.syncUptimes()...)
	m.refreshContent()
	return tea.Batch(cmds...)
}

// syncUptimes stops extrapolators whose widget is gone and feeds the latest
// reported uptime to the rest. Returns tick commands for fresh anchors.
func (m *Model) syncUptimes() []tea.Cmd {
	for kind, ext := range m.uptimes {
		if !m.comp.Has(kind) {
			ext.Stop()
			delete(m.uptimes, kind)
		}
	}

	var cmds []tea.Cmd
	for _, e := range m.comp.Entries {
		if !e.Kind.Live() {
			continue
		}
		ext, ok := m.uptimes[e.Kind]
		if !ok {
			ext = &Extrapolator{}
			m.uptimes[e.Kind] = ext
		}
		reported := 0.0
		if os, _ := e.Data.(*source.OSInfo); os != nil {
			reported = os.Uptime
		}
		if gen, start := ext.Observe(reported, m.now()); start {
			cmds = append(cmds, uptimeTickCmd(e.Kind, gen))
		}
	}
	return cmds
}

func (m *Model) stopUptimes() {
	for kind, ext := range m.uptimes {
		ext.Stop()
		delete(m.uptimes, kind)
	}
}

// applyConfig swaps in a reloaded config. The theme follows dark_mode only
// when the setting itself changed, so a manual toggle survives unrelated edits.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if cfg.DarkMode != m.cfg.DarkMode {
		m.dark = cfg.DarkMode
		m.theme = ThemeFor(m.dark)
	}
	m.cfg = cfg
}

// revealed reports whether an entry's entrance delay has elapsed.
func (m Model) revealed(e Entry) bool {
	return m.now().Sub(m.staggerStart) >= e.Delay
}

func (m Model) allRevealed() bool {
	for _, e := range m.comp.Entries {
		if !m.revealed(e) {
			return false
		}
	}
	return true
}

// refreshContent re-renders the widget area into the viewport.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderBody())
}

func (m Model) renderBody() string {
	return RenderBody(m.comp, Canvas{
		Width:    m.width,
		Theme:    m.theme,
		Config:   m.cfg,
		Uptimes:  m.uptimes,
		Revealed: m.revealed,
	})
}

func (m Model) infoTickCmd() tea.Cmd {
	return tea.Tick(m.cfg.InfoInterval, func(t time.Time) tea.Msg {
		return infoTickMsg(t)
	})
}

func (m Model) loadTickCmd() tea.Cmd {
	return tea.Tick(m.cfg.LoadInterval, func(t time.Time) tea.Msg {
		return loadTickMsg(t)
	})
}

func staggerTickCmd() tea.Cmd {
	return tea.Tick(StaggerStep, func(t time.Time) tea.Msg {
		return staggerTickMsg(t)
	})
}

func uptimeTickCmd(kind Kind, gen int) tea.Cmd {
	return tea.Tick(UptimeTickInterval, func(t time.Time) tea.Msg {
		return uptimeTickMsg{kind: kind, gen: gen, at: t}
	})
}

// fetchInfoCmd reads server info off the Update loop.
func (m Model) fetchInfoCmd() tea.Cmd {
	src, now := m.src, m.now
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
		defer cancel()
		info, err := src.Info(ctx)
		return infoMsg{info: info, err: err, at: now()}
	}
}

// sampleCmd reads one load sample off the Update loop.
func (m Model) sampleCmd() tea.Cmd {
	src := m.src
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
		defer cancel()
		s, err := src.Sample(ctx)
		return sampleMsg{sample: s, err: err}
	}
}

// Composition returns the result of the latest composition pass.
func (m Model) Composition() Composition {
	return m.comp
}

// Uptime returns the live extrapolator for a kind, if mounted.
func (m Model) Uptime(k Kind) *Extrapolator {
	return m.uptimes[k]
}

// Config returns the config in use.
func (m Model) Config() *config.Config {
	return m.cfg
}

// Theme returns the active theme.
func (m Model) Theme() *Theme {
	return m.theme
}

// ShowingHelp reports whether the help overlay is open.
func (m Model) ShowingHelp() bool {
	return m.showHelp
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// server info arrived.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(m.now().Sub(m.lastUpdate).Seconds())
}
