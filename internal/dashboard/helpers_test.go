package dashboard

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/source"
)

func init() {
	// Plain output keeps rendered strings comparable.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func testConfig(widgets ...string) *config.Config {
	cfg := config.DefaultConfig()
	if len(widgets) > 0 {
		cfg.WidgetList = widgets
	}
	return cfg
}

func testInfo() *source.ServerInfo {
	return &source.ServerInfo{
		OS: &source.OSInfo{
			Hostname:    "atlas",
			Distro:      "ubuntu",
			Release:     "24.04",
			Arch:        "x64",
			Platform:    "linux",
			Kernel:      "6.8.0",
			Uptime:      90061,
			DashVersion: "5.8.3",
		},
		CPU: &source.CPUInfo{Brand: "AMD", Model: "Ryzen 7 5800X", Cores: 8, Threads: 16, FrequencyMHz: 3800},
		RAM: &source.RAMInfo{Size: 32 << 30},
		Storage: &source.StorageInfo{Disks: []source.Disk{
			{Device: "/dev/nvme0n1p2", Mount: "/", FSType: "ext4", Size: 512 << 30},
		}},
		Network: &source.NetworkInfo{Interfaces: []source.Interface{
			{Name: "eth0", MAC: "aa:bb:cc:dd:ee:ff", Addrs: []string{"10.0.0.2/24"}, Up: true},
		}},
	}
}
