package dashboard

import (
	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/source"
)

// NetworkPanel shows interfaces and current throughput.
type NetworkPanel struct{}

// Render implements Panel.
func (NetworkPanel) Render(data any, load *source.Series, _ *config.Config, f Frame) string {
	t := f.Theme
	cw := contentWidth(f.Width)
	info, _ := data.(*source.NetworkInfo)

	const lw = 10
	var lines []string
	if info == nil {
		lines = append(lines, placeholderLine(t, NoDataText))
	} else if len(info.Interfaces) == 0 {
		lines = append(lines, placeholderLine(t, "no interfaces"))
	} else {
		for _, iface := range info.Interfaces {
			state := t.Faint().Render("down")
			if iface.Up {
				state = t.MetricStyle(0).Render("up")
			}
			addr := ""
			if len(iface.Addrs) > 0 {
				addr = " " + iface.Addrs[0]
			}
			lines = append(lines, t.Label().Render(padRight(iface.Name, lw))+state+t.Value().Render(addr))
		}
	}

	latest, ok := load.Latest()
	if !ok || len(latest.Values) < 2 {
		lines = append(lines, placeholderLine(t, NoSamplesText))
		return renderCard(t, "Network", lines, f)
	}

	lines = append(lines, "",
		kvLine(t, "↓ Down", formatRate(latest.Values[0]), lw),
		kvLine(t, "↑ Up", formatRate(latest.Values[1]), lw),
	)
	if !f.Mobile {
		lines = append(lines, Sparkline(t, load.Column(0), cw, graphHeight, t.Graph))
	}
	return renderCard(t, "Network", lines, f)
}
