package dashboard

import (
	"fmt"

	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/source"
)

// StoragePanel shows each disk with its fill level.
type StoragePanel struct{}

// Render implements Panel.
func (StoragePanel) Render(data any, load *source.Series, _ *config.Config, f Frame) string {
	t := f.Theme
	cw := contentWidth(f.Width)
	info, _ := data.(*source.StorageInfo)

	if info == nil || len(info.Disks) == 0 {
		return renderCard(t, "Storage", []string{placeholderLine(t, NoDataText)}, f)
	}

	latest, hasLoad := load.Latest()

	var lines []string
	for i, d := range info.Disks {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Value().Render(d.Mount)+" "+t.Faint().Render(d.FSType))

		if !hasLoad || i >= len(latest.Values) {
			lines = append(lines, t.Label().Render(formatBytes(d.Size))+" "+placeholderLine(t, NoSamplesText))
			continue
		}
		used := latest.Values[i]
		lines = append(lines,
			t.Label().Render(fmt.Sprintf("%s / %s", formatBytes(uint64(used)), formatBytes(d.Size))),
			gaugeLine(t, "", percentOf(used, float64(d.Size)), cw))
	}
	return renderCard(t, "Storage", lines, f)
}
