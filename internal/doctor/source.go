package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/source"
	"github.com/rileyhilliard/dash/internal/util"
)

// DefaultSourceTimeout bounds each source probe.
const DefaultSourceTimeout = 10 * time.Second

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultSourceTimeout
	}
	return context.WithTimeout(ctx, d)
}

// HostInfoCheck reads server info the same way the dashboard does.
type HostInfoCheck struct {
	Source  source.Source
	Timeout time.Duration
}

func (c *HostInfoCheck) Name() string     { return "host_info" }
func (c *HostInfoCheck) Category() string { return CategorySource }

func (c *HostInfoCheck) Run(ctx context.Context) CheckResult {
	ctx, cancel := withTimeout(ctx, c.Timeout)
	defer cancel()

	info, err := c.Source.Info(ctx)
	if err != nil {
		return CheckResult{
			Status:     StatusFail,
			Message:    fmt.Sprintf("Server info unavailable: %v", err),
			Suggestion: "The dashboard will show an error panel until this works",
		}
	}

	if info == nil {
		return CheckResult{
			Status:  StatusFail,
			Message: "Server info came back empty",
		}
	}

	var missing []string
	for _, part := range []struct {
		name    string
		present bool
	}{
		{config.WidgetOS, info.OS != nil},
		{config.WidgetCPU, info.CPU != nil},
		{config.WidgetStorage, info.Storage != nil},
		{config.WidgetRAM, info.RAM != nil},
		{config.WidgetNetwork, info.Network != nil},
	} {
		if !part.present {
			missing = append(missing, part.name)
		}
	}

	if len(missing) > 0 {
		return CheckResult{
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Server info partial, missing: %s", util.JoinOrNone(missing)),
			Suggestion: "Those widgets will show placeholders. Run with -v for collector logs",
		}
	}

	host := "unknown host"
	if info.OS.Hostname != "" {
		host = info.OS.Hostname
	}
	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("Server info: %s (%s %s)", host, info.OS.Distro, info.OS.Release),
	}
}

// LoadSampleCheck takes one live load sample.
type LoadSampleCheck struct {
	Source  source.Source
	Timeout time.Duration
}

func (c *LoadSampleCheck) Name() string     { return "load_sample" }
func (c *LoadSampleCheck) Category() string { return CategorySource }

func (c *LoadSampleCheck) Run(ctx context.Context) CheckResult {
	ctx, cancel := withTimeout(ctx, c.Timeout)
	defer cancel()

	start := time.Now()
	if _, err := c.Source.Sample(ctx); err != nil {
		return CheckResult{
			Status:     StatusFail,
			Message:    fmt.Sprintf("Load sampling failed: %v", err),
			Suggestion: "Graphs will stay empty until sampling works",
		}
	}

	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("Load sample took %s", time.Since(start).Round(time.Millisecond)),
	}
}

// GPUCheck probes nvidia-smi. Wanted says whether the gpu widget is listed;
// a missing GPU only matters then.
type GPUCheck struct {
	Query   source.GPUQuery
	Wanted  bool
	Timeout time.Duration
}

func (c *GPUCheck) Name() string     { return "gpu" }
func (c *GPUCheck) Category() string { return CategorySource }

func (c *GPUCheck) Run(ctx context.Context) CheckResult {
	ctx, cancel := withTimeout(ctx, c.Timeout)
	defer cancel()

	out, err := c.Query(ctx)
	if err != nil {
		return CheckResult{
			Status:     StatusWarn,
			Message:    fmt.Sprintf("nvidia-smi failed: %v", err),
			Suggestion: "Check the NVIDIA driver is loaded",
		}
	}

	readings, err := source.ParseNvidiaSMI(out)
	if err != nil {
		return CheckResult{
			Status:     StatusWarn,
			Message:    fmt.Sprintf("nvidia-smi output not understood: %v", err),
			Suggestion: "The gpu widget will show a placeholder",
		}
	}

	if len(readings) == 0 {
		if c.Wanted {
			return CheckResult{
				Status:     StatusWarn,
				Message:    "gpu widget is listed but no NVIDIA GPU was found",
				Suggestion: "Remove gpu from widget_list or install nvidia-smi",
			}
		}
		return CheckResult{
			Status:  StatusPass,
			Message: "No GPU found (gpu widget not listed)",
		}
	}

	names := make([]string, len(readings))
	for i, r := range readings {
		names[i] = r.Name
	}
	return CheckResult{
		Status: StatusPass,
		Message: fmt.Sprintf("%d %s: %s", len(readings),
			util.Pluralize(len(readings), "GPU", "GPUs"), util.JoinOrNone(names)),
	}
}

// NewSourceChecks returns the SOURCE checks. gpuWanted reflects whether the
// gpu widget is in widget_list.
func NewSourceChecks(src source.Source, gpu source.GPUQuery, gpuWanted bool) []Check {
	return []Check{
		&HostInfoCheck{Source: src},
		&LoadSampleCheck{Source: src},
		&GPUCheck{Query: gpu, Wanted: gpuWanted},
	}
}
