package source

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// NvidiaSMIArgs queries one CSV line per card.
var NvidiaSMIArgs = []string{
	"--query-gpu=name,utilization.gpu,memory.used,memory.total,temperature.gpu,power.draw",
	"--format=csv,noheader,nounits",
}

// GPUReading is one card parsed from nvidia-smi.
type GPUReading struct {
	Name        string
	Utilization float64
	MemoryUsed  uint64
	MemoryTotal uint64
	Temperature int
	PowerWatts  int
}

// GPUQuery returns raw nvidia-smi output. Returning "" and no error means
// there is no GPU to report.
type GPUQuery func(ctx context.Context) (string, error)

// NvidiaSMI runs the real nvidia-smi binary. A missing binary is not an
// error; it just means no NVIDIA card.
func NvidiaSMI(ctx context.Context) (string, error) {
	path, err := exec.LookPath("nvidia-smi")
	if err != nil {
		return "", nil
	}
	out, err := exec.CommandContext(ctx, path, NvidiaSMIArgs...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Driver present but no usable device.
			return "", nil
		}
		return "", err
	}
	return string(out), nil
}

// NoGPU is a GPUQuery for hosts without a GPU.
func NoGPU(context.Context) (string, error) {
	return "", nil
}

// ParseNvidiaSMI parses nvidia-smi CSV output, one card per line.
// Returns nil, nil when no GPU is available (empty output or an error banner).
func ParseNvidiaSMI(output string) ([]GPUReading, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, nil
	}

	lower := strings.ToLower(output)
	if strings.Contains(lower, "no devices") ||
		strings.Contains(lower, "not found") ||
		strings.Contains(lower, "failed") ||
		strings.Contains(lower, "error") {
		return nil, nil
	}

	var readings []GPUReading
	for i, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r, err := parseNvidiaLine(line)
		if err != nil {
			return nil, fmt.Errorf("nvidia-smi line %d: %w", i+1, err)
		}
		readings = append(readings, r)
	}
	return readings, nil
}

// parseNvidiaLine parses: name, utilization.gpu, memory.used, memory.total, temperature.gpu, power.draw
// Example: "NVIDIA GeForce RTX 3080, 45, 2048, 10240, 65, 220"
func parseNvidiaLine(line string) (GPUReading, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 6 {
		return GPUReading{}, fmt.Errorf("insufficient fields: expected 6, got %d", len(fields))
	}

	r := GPUReading{Name: strings.TrimSpace(fields[0])}

	if s, ok := nvidiaField(fields[1]); ok {
		util, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return GPUReading{}, fmt.Errorf("failed to parse GPU utilization '%s': %w", s, err)
		}
		r.Utilization = util
	}

	// Memory is reported in MiB.
	if s, ok := nvidiaField(fields[2]); ok {
		used, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return GPUReading{}, fmt.Errorf("failed to parse GPU memory used '%s': %w", s, err)
		}
		r.MemoryUsed = used * 1024 * 1024
	}

	if s, ok := nvidiaField(fields[3]); ok {
		total, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return GPUReading{}, fmt.Errorf("failed to parse GPU memory total '%s': %w", s, err)
		}
		r.MemoryTotal = total * 1024 * 1024
	}

	if s, ok := nvidiaField(fields[4]); ok {
		temp, err := strconv.Atoi(s)
		if err != nil {
			return GPUReading{}, fmt.Errorf("failed to parse GPU temperature '%s': %w", s, err)
		}
		r.Temperature = temp
	}

	if s, ok := nvidiaField(fields[5]); ok {
		power, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return GPUReading{}, fmt.Errorf("failed to parse GPU power '%s': %w", s, err)
		}
		r.PowerWatts = int(power)
	}

	return r, nil
}

// nvidiaField trims a CSV field and reports whether it holds a value.
func nvidiaField(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "[N/A]" || s == "[Not Supported]" {
		return "", false
	}
	return s, true
}

// gpuBrand guesses the vendor from the card name.
func gpuBrand(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "nvidia"), strings.Contains(lower, "geforce"),
		strings.Contains(lower, "quadro"), strings.Contains(lower, "tesla"):
		return "NVIDIA"
	case strings.Contains(lower, "amd"), strings.Contains(lower, "radeon"):
		return "AMD"
	case strings.Contains(lower, "intel"):
		return "Intel"
	}
	return ""
}
