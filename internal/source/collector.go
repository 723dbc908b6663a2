package source

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/logger"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// Collector reads metrics from the local machine with gopsutil.
type Collector struct {
	version string
	gpu     GPUQuery
	log     logger.Logger
	now     func() time.Time

	mu     sync.Mutex
	mounts []string // disk order from the last Info, reused by Sample
	net    rateTracker
}

// Option configures a Collector.
type Option func(*Collector)

// WithVersion sets the dash version reported in OSInfo.
func WithVersion(v string) Option {
	return func(c *Collector) { c.version = v }
}

// WithGPUQuery replaces the nvidia-smi call.
func WithGPUQuery(q GPUQuery) Option {
	return func(c *Collector) { c.gpu = q }
}

// WithLogger sets the logger for sub-collector failures.
func WithLogger(l logger.Logger) Option {
	return func(c *Collector) { c.log = l }
}

// WithClock overrides time.Now for sample timestamps and rates.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) { c.now = now }
}

// NewCollector creates a local collector.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		gpu: NvidiaSMI,
		log: logger.Default(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Info gathers the server description. Only a failing host lookup is an
// error; any other sub-collector that fails leaves its record nil.
func (c *Collector) Info(ctx context.Context) (*ServerInfo, error) {
	hi, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSource,
			"Couldn't read host information",
			"Check that /proc (or the platform equivalent) is readable")
	}

	info := &ServerInfo{OS: c.osInfo(hi)}

	var wg sync.WaitGroup
	wg.Add(5)
	go func() { defer wg.Done(); info.CPU = c.cpuInfo(ctx) }()
	go func() { defer wg.Done(); info.RAM = c.ramInfo(ctx) }()
	go func() { defer wg.Done(); info.Storage = c.storageInfo(ctx) }()
	go func() { defer wg.Done(); info.Network = c.networkInfo(ctx) }()
	go func() { defer wg.Done(); info.GPU = c.gpuInfo(ctx) }()
	wg.Wait()

	if info.Storage != nil {
		mounts := make([]string, len(info.Storage.Disks))
		for i, d := range info.Storage.Disks {
			mounts[i] = d.Mount
		}
		c.mu.Lock()
		c.mounts = mounts
		c.mu.Unlock()
	}

	return info, nil
}

func (c *Collector) osInfo(hi *host.InfoStat) *OSInfo {
	return &OSInfo{
		Hostname:    hi.Hostname,
		Distro:      hi.Platform,
		Release:     hi.PlatformVersion,
		Arch:        hi.KernelArch,
		Platform:    hi.OS,
		Kernel:      hi.KernelVersion,
		Uptime:      float64(hi.Uptime),
		DashVersion: c.version,
	}
}

func (c *Collector) cpuInfo(ctx context.Context) *CPUInfo {
	stats, err := cpu.InfoWithContext(ctx)
	if err != nil || len(stats) == 0 {
		c.log.Warn("cpu info unavailable: %v", err)
		return nil
	}
	out := &CPUInfo{
		Brand:        stats[0].VendorID,
		Model:        strings.TrimSpace(stats[0].ModelName),
		FrequencyMHz: stats[0].Mhz,
	}
	if n, err := cpu.CountsWithContext(ctx, false); err == nil {
		out.Cores = n
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		out.Threads = n
	}
	return out
}

func (c *Collector) ramInfo(ctx context.Context) *RAMInfo {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		c.log.Warn("memory info unavailable: %v", err)
		return nil
	}
	return &RAMInfo{Size: vm.Total}
}

func (c *Collector) storageInfo(ctx context.Context) *StorageInfo {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		c.log.Warn("disk partitions unavailable: %v", err)
		return nil
	}

	out := &StorageInfo{}
	for _, p := range filterPartitions(parts) {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || usage.Total == 0 {
			continue
		}
		out.Disks = append(out.Disks, Disk{
			Device: p.Device,
			Mount:  p.Mountpoint,
			FSType: p.Fstype,
			Size:   usage.Total,
		})
	}
	return out
}

// pseudoFS are filesystems that don't represent real storage.
var pseudoFS = map[string]bool{
	"tmpfs": true, "devtmpfs": true, "overlay": true, "squashfs": true,
	"proc": true, "sysfs": true, "cgroup": true, "cgroup2": true,
	"autofs": true, "devfs": true, "nullfs": true,
}

// filterPartitions drops pseudo filesystems and repeat mounts of a device.
func filterPartitions(parts []disk.PartitionStat) []disk.PartitionStat {
	seen := make(map[string]bool)
	var out []disk.PartitionStat
	for _, p := range parts {
		if pseudoFS[p.Fstype] || seen[p.Device] {
			continue
		}
		seen[p.Device] = true
		out = append(out, p)
	}
	return out
}

func (c *Collector) networkInfo(ctx context.Context) *NetworkInfo {
	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		c.log.Warn("network interfaces unavailable: %v", err)
		return nil
	}

	out := &NetworkInfo{}
	for _, iface := range ifaces {
		if isLoopback(iface.Name, iface.Flags) {
			continue
		}
		entry := Interface{Name: iface.Name, MAC: iface.HardwareAddr}
		for _, f := range iface.Flags {
			if f == "up" {
				entry.Up = true
			}
		}
		for _, a := range iface.Addrs {
			entry.Addrs = append(entry.Addrs, a.Addr)
		}
		out.Interfaces = append(out.Interfaces, entry)
	}
	return out
}

func isLoopback(name string, flags []string) bool {
	if name == "lo" || name == "lo0" {
		return true
	}
	for _, f := range flags {
		if f == "loopback" {
			return true
		}
	}
	return false
}

func (c *Collector) gpuInfo(ctx context.Context) *GPUInfo {
	readings := c.readGPU(ctx)
	if len(readings) == 0 {
		return nil
	}
	out := &GPUInfo{}
	for _, r := range readings {
		out.Cards = append(out.Cards, GPU{
			Brand:       gpuBrand(r.Name),
			Model:       r.Name,
			MemoryTotal: r.MemoryTotal,
		})
	}
	return out
}

func (c *Collector) readGPU(ctx context.Context) []GPUReading {
	if c.gpu == nil {
		return nil
	}
	raw, err := c.gpu(ctx)
	if err != nil {
		c.log.Warn("gpu query failed: %v", err)
		return nil
	}
	readings, err := ParseNvidiaSMI(raw)
	if err != nil {
		c.log.Warn("gpu output unreadable: %v", err)
		return nil
	}
	return readings
}

// Sample takes one load reading. Metrics that can't be read are left empty;
// Sample itself only fails when the context is done.
func (c *Collector) Sample(ctx context.Context) (*LoadSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSource, "Load sample cancelled", "")
	}

	s := &LoadSample{At: c.now()}

	if pct, err := cpu.PercentWithContext(ctx, 0, true); err == nil {
		s.CPU = pct
	} else {
		c.log.Debug("cpu load unavailable: %v", err)
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		used := vm.Used
		s.RAM = &used
	} else {
		c.log.Debug("memory load unavailable: %v", err)
	}

	c.mu.Lock()
	mounts := append([]string(nil), c.mounts...)
	c.mu.Unlock()
	for _, m := range mounts {
		var used uint64
		if usage, err := disk.UsageWithContext(ctx, m); err == nil {
			used = usage.Used
		}
		s.Storage = append(s.Storage, used)
	}

	if counters, err := psnet.IOCountersWithContext(ctx, true); err == nil {
		var rx, tx uint64
		for _, io := range counters {
			if isLoopback(io.Name, nil) {
				continue
			}
			rx += io.BytesRecv
			tx += io.BytesSent
		}
		c.mu.Lock()
		s.Network = c.net.observe(rx, tx, s.At)
		c.mu.Unlock()
	} else {
		c.log.Debug("network counters unavailable: %v", err)
	}

	for _, r := range c.readGPU(ctx) {
		s.GPU = append(s.GPU, GPULoad{Utilization: r.Utilization, MemoryUsed: r.MemoryUsed})
	}

	return s, nil
}

// rateTracker turns cumulative byte counters into per-second rates.
type rateTracker struct {
	seen   bool
	rx, tx uint64
	at     time.Time
}

// observe records a counter reading and returns the rate since the previous
// one, or nil for the first reading. Counter resets count as zero traffic.
func (r *rateTracker) observe(rx, tx uint64, at time.Time) *NetworkLoad {
	defer func() {
		r.seen, r.rx, r.tx, r.at = true, rx, tx, at
	}()

	if !r.seen {
		return nil
	}
	secs := at.Sub(r.at).Seconds()
	if secs <= 0 {
		return nil
	}
	load := &NetworkLoad{}
	if rx >= r.rx {
		load.DownPerSec = float64(rx-r.rx) / secs
	}
	if tx >= r.tx {
		load.UpPerSec = float64(tx-r.tx) / secs
	}
	return load
}
