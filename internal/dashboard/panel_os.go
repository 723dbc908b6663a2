package dashboard

import (
	"strings"

	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/source"
)

// OSPanel shows host identity and the live uptime.
type OSPanel struct{}

// Render implements Panel.
func (OSPanel) Render(data any, _ *source.Series, _ *config.Config, f Frame) string {
	t := f.Theme
	info, _ := data.(*source.OSInfo)
	if info == nil {
		return renderCard(t, "dash.", []string{placeholderLine(t, NoDataText)}, f)
	}

	const lw = 10
	lines := []string{
		kvLine(t, "OS", orDash(strings.TrimSpace(info.Distro+" "+info.Release)), lw),
		kvLine(t, "Arch", orDash(info.Arch), lw),
	}

	if f.Uptime.Known() {
		for _, row := range UptimeRows(f.Uptime.Displayed()) {
			lines = append(lines, kvLine(t, row.Label, row.Value, lw))
		}
	} else {
		lines = append(lines, kvLine(t, UptimeLabel, UnknownText, lw))
	}

	if info.Distro != "" && info.Platform != "" {
		icon := DetectOSIcon(info.Distro + info.Platform)
		lines = append(lines, "", t.Title().Render(icon.Glyph)+" "+t.Label().Render(icon.Name))
	}

	return renderCard(t, "dash."+orDash(info.Hostname), lines, f)
}

// OSIcon is the badge drawn for an operating system.
type OSIcon struct {
	Name  string
	Glyph string
}

// osIcons is checked in order; the first match wins.
var osIcons = []struct {
	needles []string
	icon    OSIcon
}{
	{[]string{"ubuntu"}, OSIcon{"ubuntu", "◎"}},
	{[]string{"suse"}, OSIcon{"suse", "◉"}},
	{[]string{"redhat"}, OSIcon{"redhat", "▲"}},
	{[]string{"fedora"}, OSIcon{"fedora", "ƒ"}},
	{[]string{"centos"}, OSIcon{"centos", "✱"}},
	{[]string{"linux"}, OSIcon{"linux", "△"}},
	{[]string{"mac", "osx", "darwin", "apple"}, OSIcon{"apple", "◆"}},
	{[]string{"win"}, OSIcon{"windows", "▦"}},
}

// ServerIcon is used when nothing more specific matches.
var ServerIcon = OSIcon{"server", "▣"}

// DetectOSIcon picks an icon from a distro/platform string.
func DetectOSIcon(os string) OSIcon {
	os = strings.ToLower(os)
	for _, candidate := range osIcons {
		for _, needle := range candidate.needles {
			if strings.Contains(os, needle) {
				return candidate.icon
			}
		}
	}
	return ServerIcon
}
