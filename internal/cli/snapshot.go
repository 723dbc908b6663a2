package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/dashboard"
	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/logger"
	"github.com/rileyhilliard/dash/internal/source"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// snapshotTimeout bounds the whole collection.
const snapshotTimeout = 30 * time.Second

// SnapshotOptions holds the flags for the snapshot command.
type SnapshotOptions struct {
	JSON  bool
	Width int
	// Wait is the gap between the two load samples. Rates and CPU load need
	// two readings; zero takes a single sample.
	Wait time.Duration
	// Now overrides the clock used to anchor the uptime.
	Now func() time.Time
}

var snapshotOpts SnapshotOptions

// snapshotCmd renders the dashboard once
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the dashboard once and exit",
	Long: `Collect server info and one round of load, compose the widgets from your
config and print the result as static text.

With --json the composition is printed instead: widget order, layout hints,
the width each widget got, skipped widgets and the raw server info.

Examples:
  dash snapshot
  dash snapshot --width 100
  dash snapshot --json | jq '.data.widgets[].id'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(cmd.OutOrStdout(), snapshotOpts)
	},
}

func init() {
	snapshotCmd.Flags().BoolVar(&snapshotOpts.JSON, "json", false, "print the composition as JSON")
	snapshotCmd.Flags().IntVar(&snapshotOpts.Width, "width", 0, "render width in columns (default: terminal width)")
	snapshotCmd.Flags().DurationVar(&snapshotOpts.Wait, "wait", time.Second, "time between the two load samples")
	rootCmd.AddCommand(snapshotCmd)
}

func snapshotCommand(out io.Writer, opts SnapshotOptions) error {
	cfg, _, err := loadConfig()
	if err != nil {
		if opts.JSON {
			_ = WriteJSONFromError(out, err)
		}
		return err
	}

	collector := source.NewCollector(
		source.WithVersion(GetVersion()),
		source.WithLogger(logger.NewEnvLogger("[source]")),
	)

	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()
	return Snapshot(ctx, out, collector, cfg, opts)
}

// SnapshotWidget is one composed widget in --json output.
type SnapshotWidget struct {
	ID       string  `json:"id"`
	Index    int     `json:"index"`
	Row      int     `json:"row"`
	Width    int     `json:"width"`
	Grow     float64 `json:"grow"`
	MinWidth int     `json:"min_width"`
	DelayMS  int64   `json:"delay_ms"`
}

// SnapshotSkip is a widget left out of the composition.
type SnapshotSkip struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// SnapshotData is the --json payload.
type SnapshotData struct {
	Status       string             `json:"status"`
	Title        string             `json:"title,omitempty"`
	VersionBadge string             `json:"version_badge,omitempty"`
	Width        int                `json:"width"`
	Widgets      []SnapshotWidget   `json:"widgets"`
	Skipped      []SnapshotSkip     `json:"skipped,omitempty"`
	Info         *source.ServerInfo `json:"info,omitempty"`
}

// Snapshot runs one collection and composition pass against src and writes
// the rendered dashboard, or its JSON description, to out.
func Snapshot(ctx context.Context, out io.Writer, src source.Source, cfg *config.Config, opts SnapshotOptions) error {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	width := opts.Width
	if width <= 0 {
		width = terminalWidth()
	}

	info, infoErr := src.Info(ctx)

	var state dashboard.PageState
	if infoErr != nil {
		state = dashboard.Failed(errors.Summarize(infoErr))
	} else {
		history := source.NewHistory(cfg.HistorySize)
		if err := collectSamples(ctx, src, history, opts.Wait); err != nil {
			logger.Default().Debug("snapshot sample failed: %s", errors.Summarize(err))
		}
		state = dashboard.Ready(info, cfg, history.Loads())
	}

	comp := dashboard.Compose(state, dashboard.NewRegistry())

	if opts.JSON {
		if infoErr != nil {
			if err := WriteJSONFromError(out, infoErr); err != nil {
				return err
			}
			return infoErr
		}
		return WriteJSONSuccess(out, snapshotData(comp, info, width))
	}

	dashboard.LogSkipped(logger.Default(), comp)
	fmt.Fprintln(out, renderSnapshot(comp, info, cfg, width, now()))
	return infoErr
}

// collectSamples pushes one sample, or two separated by wait.
func collectSamples(ctx context.Context, src source.Source, history *source.History, wait time.Duration) error {
	first, err := src.Sample(ctx)
	if err != nil {
		return err
	}
	if wait <= 0 {
		history.Push(first)
		return nil
	}

	select {
	case <-ctx.Done():
		history.Push(first)
		return ctx.Err()
	case <-time.After(wait):
	}

	second, err := src.Sample(ctx)
	if err != nil {
		history.Push(first)
		return err
	}
	history.Push(first)
	history.Push(second)
	return nil
}

func snapshotData(comp dashboard.Composition, info *source.ServerInfo, width int) SnapshotData {
	data := SnapshotData{
		Status:       comp.Status.String(),
		Title:        comp.Title,
		VersionBadge: comp.VersionBadge,
		Width:        width,
		Widgets:      []SnapshotWidget{},
		Info:         info,
	}

	for r, row := range dashboard.Arrange(comp.Entries, width, dashboard.Gap(width)) {
		for _, p := range row {
			data.Widgets = append(data.Widgets, SnapshotWidget{
				ID:       p.Entry.ID,
				Index:    p.Entry.Index,
				Row:      r,
				Width:    p.Width,
				Grow:     p.Entry.Grow,
				MinWidth: p.Entry.MinWidth,
				DelayMS:  p.Entry.Delay.Milliseconds(),
			})
		}
	}

	for _, s := range comp.Skipped {
		data.Skipped = append(data.Skipped, SnapshotSkip{ID: s.ID, Reason: errors.Summarize(s.Err)})
	}
	return data
}

// renderSnapshot draws the composition as the dashboard would, without the
// interactive chrome. The uptime is anchored at now and shown as reported.
func renderSnapshot(comp dashboard.Composition, info *source.ServerInfo, cfg *config.Config, width int, now time.Time) string {
	theme := dashboard.ThemeFor(cfg.DarkMode)

	uptimes := make(map[dashboard.Kind]*dashboard.Extrapolator)
	if info != nil && info.OS != nil && comp.Has(dashboard.KindOS) {
		ext := &dashboard.Extrapolator{}
		ext.Observe(info.OS.Uptime, now)
		uptimes[dashboard.KindOS] = ext
	}

	var b strings.Builder
	if comp.Title != "" {
		b.WriteString(theme.Title().Render(comp.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(dashboard.RenderBody(comp, dashboard.Canvas{
		Width:   width,
		Theme:   theme,
		Config:  cfg,
		Uptimes: uptimes,
	}))
	if comp.VersionBadge != "" {
		b.WriteString("\n")
		b.WriteString(dashboard.RenderBadgeLine(theme, "", comp.VersionBadge, width))
	}
	return b.String()
}

// terminalWidth returns stdout's width, or the dashboard default when stdout
// isn't a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return dashboard.DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return dashboard.DefaultWidth
	}
	return w
}
