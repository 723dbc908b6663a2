package source

import (
	"context"
	"time"
)

// Source produces the data the dashboard renders. Info is the slow-changing
// server description; Sample is one point of live load. The two have
// independent cadences.
type Source interface {
	Info(ctx context.Context) (*ServerInfo, error)
	Sample(ctx context.Context) (*LoadSample, error)
}

// ServerInfo describes the host. Every sub-record is optional; nil means the
// collector couldn't produce it and the widget shows a placeholder.
type ServerInfo struct {
	OS      *OSInfo      `json:"os,omitempty"`
	CPU     *CPUInfo     `json:"cpu,omitempty"`
	RAM     *RAMInfo     `json:"ram,omitempty"`
	Storage *StorageInfo `json:"storage,omitempty"`
	Network *NetworkInfo `json:"network,omitempty"`
	GPU     *GPUInfo     `json:"gpu,omitempty"`
}

// OSInfo is the operating system record.
type OSInfo struct {
	Hostname string `json:"hostname"`
	Distro   string `json:"distro"`
	Release  string `json:"release"`
	Arch     string `json:"arch"`
	Platform string `json:"platform"`
	Kernel   string `json:"kernel"`

	// Uptime in seconds at collection time. Zero or less means unknown.
	Uptime float64 `json:"uptime"`

	DashVersion string `json:"dash_version"`
}

// CPUInfo is the processor record.
type CPUInfo struct {
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Cores        int     `json:"cores"`
	Threads      int     `json:"threads"`
	FrequencyMHz float64 `json:"frequency_mhz"`
}

// RAMInfo is the memory record.
type RAMInfo struct {
	Size uint64 `json:"size"`
}

// StorageInfo lists the mounted disks, in sample order.
type StorageInfo struct {
	Disks []Disk `json:"disks"`
}

// Disk is one mounted filesystem.
type Disk struct {
	Device string `json:"device"`
	Mount  string `json:"mount"`
	FSType string `json:"fs_type"`
	Size   uint64 `json:"size"`
}

// NetworkInfo lists the non-loopback interfaces.
type NetworkInfo struct {
	Interfaces []Interface `json:"interfaces"`
}

// Interface is one network interface.
type Interface struct {
	Name  string   `json:"name"`
	MAC   string   `json:"mac,omitempty"`
	Addrs []string `json:"addrs,omitempty"`
	Up    bool     `json:"up"`
}

// GPUInfo lists the detected graphics cards, in sample order.
type GPUInfo struct {
	Cards []GPU `json:"cards"`
}

// GPU is one graphics card.
type GPU struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	MemoryTotal uint64 `json:"memory_total"`
}

// LoadSample is one point of live load across all metrics. Nil or empty
// fields mean the metric wasn't available for this sample.
type LoadSample struct {
	At time.Time

	// CPU is the busy percent per logical core.
	CPU []float64
	// RAM is used memory in bytes.
	RAM *uint64
	// Storage is used bytes per disk, aligned with StorageInfo.Disks.
	Storage []uint64
	// Network is nil until two counter readings exist.
	Network *NetworkLoad
	// GPU is per card, aligned with GPUInfo.Cards.
	GPU []GPULoad
}

// NetworkLoad is throughput across all non-loopback interfaces.
type NetworkLoad struct {
	DownPerSec float64
	UpPerSec   float64
}

// GPULoad is the live load of one card.
type GPULoad struct {
	Utilization float64
	MemoryUsed  uint64
}

// Sample is one row of a Series.
type Sample struct {
	At     time.Time
	Values []float64
}

// Series is the recent history of one metric, oldest sample first.
// Labels name the columns of every Sample's Values.
type Series struct {
	Metric  string
	Labels  []string
	Samples []Sample
}

// Len returns the number of samples.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Samples)
}

// Latest returns the newest sample.
func (s *Series) Latest() (Sample, bool) {
	if s.Len() == 0 {
		return Sample{}, false
	}
	return s.Samples[len(s.Samples)-1], true
}

// Column returns column i across all samples, oldest first. Samples too
// short to have the column are skipped.
func (s *Series) Column(i int) []float64 {
	if s.Len() == 0 || i < 0 {
		return nil
	}
	out := make([]float64, 0, len(s.Samples))
	for _, sample := range s.Samples {
		if i < len(sample.Values) {
			out = append(out, sample.Values[i])
		}
	}
	return out
}

// Loads bundles the per-metric series handed to the widgets.
type Loads struct {
	CPU     *Series
	RAM     *Series
	Storage *Series
	Network *Series
	GPU     *Series
}
