package dashboard

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/source"
)

// GPUPanel shows each graphics card with load and memory.
type GPUPanel struct{}

// Render implements Panel.
func (GPUPanel) Render(data any, load *source.Series, _ *config.Config, f Frame) string {
	t := f.Theme
	cw := contentWidth(f.Width)
	info, _ := data.(*source.GPUInfo)

	if info == nil || len(info.Cards) == 0 {
		return renderCard(t, "GPU", []string{placeholderLine(t, NoDataText)}, f)
	}

	latest, hasLoad := load.Latest()

	var lines []string
	for i, card := range info.Cards {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Value().Render(strings.TrimSpace(card.Brand+" "+strings.TrimPrefix(card.Model, card.Brand+" "))))

		// Values hold [load, memory] per card.
		if !hasLoad || len(latest.Values) < 2*i+2 {
			lines = append(lines, placeholderLine(t, NoSamplesText))
			continue
		}
		util := latest.Values[2*i]
		memUsed := latest.Values[2*i+1]
		lines = append(lines, gaugeLine(t, "Load", util, cw))
		if card.MemoryTotal > 0 {
			lines = append(lines,
				gaugeLine(t, "VRAM", percentOf(memUsed, float64(card.MemoryTotal)), cw),
				t.Faint().Render(fmt.Sprintf("%s / %s", formatBytes(uint64(memUsed)), formatBytes(card.MemoryTotal))))
		}
	}
	return renderCard(t, "GPU", lines, f)
}
