package dashboard

import (
	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/source"
)

// RAMPanel shows memory size and usage.
type RAMPanel struct{}

// Render implements Panel.
func (RAMPanel) Render(data any, load *source.Series, _ *config.Config, f Frame) string {
	t := f.Theme
	cw := contentWidth(f.Width)
	info, _ := data.(*source.RAMInfo)

	const lw = 9
	var lines []string
	var size float64
	if info == nil {
		lines = append(lines, placeholderLine(t, NoDataText))
	} else {
		size = float64(info.Size)
		lines = append(lines, kvLine(t, "Size", formatBytes(info.Size), lw))
	}

	latest, ok := load.Latest()
	if !ok || len(latest.Values) == 0 {
		lines = append(lines, placeholderLine(t, NoSamplesText))
		return renderCard(t, "RAM", lines, f)
	}

	used := latest.Values[0]
	lines = append(lines, kvLine(t, "Used", formatBytes(uint64(used)), lw))
	if size > 0 {
		lines = append(lines, "", gaugeLine(t, "Usage", percentOf(used, size), cw))
		if !f.Mobile {
			history := load.Column(0)
			for i, v := range history {
				history[i] = percentOf(v, size)
			}
			lines = append(lines, Sparkline(t, history, cw, graphHeight, t.Graph))
		}
	}
	return renderCard(t, "RAM", lines, f)
}
