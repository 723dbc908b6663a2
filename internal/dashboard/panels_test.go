package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/dash/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(width int) Frame {
	return Frame{Width: width, Theme: DarkTheme, Revealed: true}
}

func series(metric string, rows ...[]float64) *source.Series {
	s := &source.Series{Metric: metric}
	for i, r := range rows {
		s.Samples = append(s.Samples, source.Sample{At: epoch.Add(time.Duration(i) * time.Second), Values: r})
	}
	return s
}

func TestOSPanel_LiveUptime(t *testing.T) {
	info := testInfo()
	var ext Extrapolator
	gen, _ := ext.Observe(info.OS.Uptime, epoch)
	ext.Tick(gen, epoch.Add(5*time.Second))

	f := frame(60)
	f.Uptime = &ext
	out := OSPanel{}.Render(info.OS, nil, nil, f)

	assert.Contains(t, out, "dash.atlas")
	assert.Contains(t, out, "ubuntu 24.04")
	assert.Contains(t, out, "Up since  1 days")
	assert.Contains(t, out, "1 hours")
	assert.Contains(t, out, "1 minutes")
	assert.Contains(t, out, "6 seconds")
	assert.Contains(t, out, "◎ ubuntu")
}

func TestOSPanel_UnknownUptime(t *testing.T) {
	info := testInfo()
	info.OS.Uptime = 0

	out := OSPanel{}.Render(info.OS, nil, nil, frame(60))
	assert.Contains(t, out, UptimeLabel)
	assert.Contains(t, out, UnknownText)
	assert.NotContains(t, out, "seconds")
}

func TestOSPanel_NilData(t *testing.T) {
	var os *source.OSInfo
	out := OSPanel{}.Render(os, nil, nil, frame(60))
	assert.Contains(t, out, NoDataText)
}

func TestDetectOSIcon(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ubuntulinux", "ubuntu"},
		{"opensuse-leaplinux", "suse"},
		{"fedoralinux", "fedora"},
		{"archlinux", "linux"},
		{"darwin", "apple"},
		{"Microsoft Windows 11windows", "windows"},
		{"freebsd", "server"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectOSIcon(tt.in).Name, tt.in)
	}
}

func TestGPUPanel_NilShowsPlaceholder(t *testing.T) {
	var gpu *source.GPUInfo
	out := GPUPanel{}.Render(gpu, nil, nil, frame(60))
	assert.Contains(t, out, "GPU")
	assert.Contains(t, out, NoDataText)

	out = GPUPanel{}.Render(&source.GPUInfo{}, nil, nil, frame(60))
	assert.Contains(t, out, NoDataText)
}

func TestGPUPanel_WithLoad(t *testing.T) {
	info := &source.GPUInfo{Cards: []source.GPU{
		{Brand: "NVIDIA", Model: "NVIDIA GeForce RTX 4090", MemoryTotal: 24 << 30},
	}}
	load := series(source.MetricGPU, []float64{75, float64(12 << 30)})

	out := GPUPanel{}.Render(info, load, nil, frame(60))
	assert.Contains(t, out, "NVIDIA GeForce RTX 4090")
	assert.Contains(t, out, "Load")
	assert.Contains(t, out, " 75%")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "12 GiB / 24 GiB")
}

func TestCPUPanel(t *testing.T) {
	info := testInfo().CPU

	out := CPUPanel{}.Render(info, nil, nil, frame(60))
	assert.Contains(t, out, "Ryzen 7 5800X")
	assert.Contains(t, out, "8 (16 threads)")
	assert.Contains(t, out, NoSamplesText)

	load := series(source.MetricCPU, []float64{10, 30}, []float64{40, 60})
	out = CPUPanel{}.Render(info, load, nil, frame(60))
	assert.Contains(t, out, " 50%")
	assert.NotContains(t, out, NoSamplesText)
}

func TestRAMPanel(t *testing.T) {
	info := testInfo().RAM
	load := series(source.MetricRAM, []float64{float64(8 << 30)})

	out := RAMPanel{}.Render(info, load, nil, frame(60))
	assert.Contains(t, out, "32 GiB")
	assert.Contains(t, out, "8.0 GiB")
	assert.Contains(t, out, " 25%")
}

func TestStoragePanel(t *testing.T) {
	info := testInfo().Storage

	out := StoragePanel{}.Render(info, nil, nil, frame(60))
	assert.Contains(t, out, "/")
	assert.Contains(t, out, NoSamplesText)

	load := series(source.MetricStorage, []float64{float64(128 << 30)})
	out = StoragePanel{}.Render(info, load, nil, frame(60))
	assert.Contains(t, out, "128 GiB / 512 GiB")
	assert.Contains(t, out, " 25%")
}

func TestNetworkPanel(t *testing.T) {
	info := testInfo().Network
	load := series(source.MetricNetwork, []float64{2048, 1024})

	out := NetworkPanel{}.Render(info, load, nil, frame(60))
	assert.Contains(t, out, "eth0")
	assert.Contains(t, out, "10.0.0.2/24")
	assert.Contains(t, out, "2.0 KiB/s")
	assert.Contains(t, out, "1.0 KiB/s")
}

func TestRenderCard_WidthAndTruncation(t *testing.T) {
	long := strings.Repeat("x", 200)
	out := renderCard(DarkTheme, "Title", []string{long}, frame(40))

	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
	assert.Contains(t, out, "…")
}

func TestRenderCard_Unrevealed(t *testing.T) {
	f := frame(40)
	f.Revealed = false
	out := renderCard(DarkTheme, "Title", []string{"body"}, f)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
}

func TestRenderError(t *testing.T) {
	out := RenderError(DarkTheme, "disk full", 120)
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "Something went wrong")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 120)
	}

	narrow := RenderError(DarkTheme, "disk full", 30)
	for _, line := range strings.Split(narrow, "\n") {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
}

func TestRenderBody_Ready(t *testing.T) {
	info := testInfo()
	comp := Compose(Ready(info, testConfig("os", "cpu", "gpu"), source.Loads{}), NewRegistry())

	out := RenderBody(comp, Canvas{Width: 120, Config: testConfig()})
	assert.Contains(t, out, "dash.atlas")
	assert.Contains(t, out, "CPU")
	assert.Contains(t, out, "GPU")

	osAt := strings.Index(out, "dash.atlas")
	cpuAt := strings.Index(out, "CPU")
	require.True(t, osAt >= 0 && cpuAt >= 0)
	assert.Less(t, osAt, cpuAt, "os renders before cpu")

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 120)
	}
}

func TestRenderBody_Mobile(t *testing.T) {
	comp := Compose(Ready(testInfo(), testConfig("os", "cpu"), source.Loads{}), NewRegistry())
	out := RenderBody(comp, Canvas{Width: 60})

	// One card per row, so two top borders at the start of lines.
	tops := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "╭") {
			tops++
		}
	}
	assert.Equal(t, 2, tops)
}

func TestRenderBadgeLine(t *testing.T) {
	assert.Equal(t, "left", RenderBadgeLine(DarkTheme, "left", "", 40))

	line := RenderBadgeLine(DarkTheme, "left", "5.8.3", 40)
	assert.Equal(t, 40, lipgloss.Width(line))
	assert.True(t, strings.HasPrefix(line, "left"))
	assert.Contains(t, line, "5.8.3")
}
