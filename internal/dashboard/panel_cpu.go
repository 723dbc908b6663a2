package dashboard

import (
	"fmt"

	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/source"
)

// CPUPanel shows the processor and its load across all cores.
type CPUPanel struct{}

// Render implements Panel.
func (CPUPanel) Render(data any, load *source.Series, _ *config.Config, f Frame) string {
	t := f.Theme
	cw := contentWidth(f.Width)
	info, _ := data.(*source.CPUInfo)

	const lw = 9
	var lines []string
	if info == nil {
		lines = append(lines, placeholderLine(t, NoDataText))
	} else {
		lines = append(lines,
			kvLine(t, "Model", orDash(info.Model), lw),
			kvLine(t, "Brand", orDash(info.Brand), lw),
			kvLine(t, "Cores", fmt.Sprintf("%d (%d threads)", info.Cores, info.Threads), lw),
			kvLine(t, "Speed", formatMHz(info.FrequencyMHz), lw),
		)
	}

	latest, ok := load.Latest()
	if !ok {
		lines = append(lines, placeholderLine(t, NoSamplesText))
		return renderCard(t, "CPU", lines, f)
	}

	lines = append(lines, "", gaugeLine(t, "Load", mean(latest.Values), cw))
	if !f.Mobile {
		averages := make([]float64, 0, load.Len())
		for _, s := range load.Samples {
			averages = append(averages, mean(s.Values))
		}
		lines = append(lines, Sparkline(t, averages, cw, graphHeight, t.Graph))
	}
	return renderCard(t, "CPU", lines, f)
}
