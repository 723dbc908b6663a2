package source

import (
	"fmt"
	"sync"
)

// DefaultHistorySize is the default number of samples retained per metric.
const DefaultHistorySize = 60

// Metric names used for Series.Metric.
const (
	MetricCPU     = "cpu"
	MetricRAM     = "ram"
	MetricStorage = "storage"
	MetricNetwork = "network"
	MetricGPU     = "gpu"
)

// History keeps recent load samples per metric in ring buffers.
// Every call to Loads returns new Series values, so a consumer holding an
// older Loads never sees it change underneath it.
type History struct {
	mu      sync.RWMutex
	size    int
	metrics map[string]*metricHistory
}

type metricHistory struct {
	labels []string
	buf    *ringBuffer
}

// ringBuffer is a fixed-size circular buffer of samples.
type ringBuffer struct {
	data  []Sample
	head  int
	count int
	size  int
}

// NewHistory creates a history with the given per-metric capacity.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:    size,
		metrics: make(map[string]*metricHistory),
	}
}

// Size returns the per-metric capacity.
func (h *History) Size() int {
	return h.size
}

// Push records a load sample. Metrics missing from the sample are left as is.
func (h *History) Push(s *LoadSample) {
	if s == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if len(s.CPU) > 0 {
		labels := make([]string, len(s.CPU))
		for i := range s.CPU {
			labels[i] = fmt.Sprintf("core %d", i)
		}
		h.push(MetricCPU, labels, Sample{At: s.At, Values: append([]float64(nil), s.CPU...)})
	}

	if s.RAM != nil {
		h.push(MetricRAM, []string{"used"}, Sample{At: s.At, Values: []float64{float64(*s.RAM)}})
	}

	if len(s.Storage) > 0 {
		labels := make([]string, len(s.Storage))
		values := make([]float64, len(s.Storage))
		for i, used := range s.Storage {
			labels[i] = fmt.Sprintf("disk %d", i)
			values[i] = float64(used)
		}
		h.push(MetricStorage, labels, Sample{At: s.At, Values: values})
	}

	if s.Network != nil {
		h.push(MetricNetwork, []string{"down", "up"},
			Sample{At: s.At, Values: []float64{s.Network.DownPerSec, s.Network.UpPerSec}})
	}

	if len(s.GPU) > 0 {
		labels := make([]string, 0, len(s.GPU)*2)
		values := make([]float64, 0, len(s.GPU)*2)
		for i, g := range s.GPU {
			labels = append(labels, fmt.Sprintf("gpu %d load", i), fmt.Sprintf("gpu %d memory", i))
			values = append(values, g.Utilization, float64(g.MemoryUsed))
		}
		h.push(MetricGPU, labels, Sample{At: s.At, Values: values})
	}
}

// push must be called with h.mu held.
func (h *History) push(metric string, labels []string, sample Sample) {
	m, ok := h.metrics[metric]
	if !ok {
		m = &metricHistory{buf: newRingBuffer(h.size)}
		h.metrics[metric] = m
	}
	m.labels = labels
	m.buf.push(sample)
}

// Loads returns a snapshot of every metric's history. Metrics never pushed
// are nil.
func (h *History) Loads() Loads {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return Loads{
		CPU:     h.series(MetricCPU),
		RAM:     h.series(MetricRAM),
		Storage: h.series(MetricStorage),
		Network: h.series(MetricNetwork),
		GPU:     h.series(MetricGPU),
	}
}

// series must be called with h.mu held (read or write).
func (h *History) series(metric string) *Series {
	m, ok := h.metrics[metric]
	if !ok || m.buf.count == 0 {
		return nil
	}
	return &Series{
		Metric:  metric,
		Labels:  append([]string(nil), m.labels...),
		Samples: m.buf.getAll(),
	}
}

// Count returns the number of samples stored for a metric.
func (h *History) Count(metric string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	m, ok := h.metrics[metric]
	if !ok {
		return 0
	}
	return m.buf.count
}

// Clear drops all history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.metrics = make(map[string]*metricHistory)
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]Sample, size),
		size: size,
	}
}

func (r *ringBuffer) push(s Sample) {
	r.data[r.head] = s
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count samples, oldest first. Values are copied.
func (r *ringBuffer) getLast(count int) []Sample {
	if count <= 0 || r.count == 0 {
		return nil
	}
	if count > r.count {
		count = r.count
	}

	result := make([]Sample, count)
	// head is the next write slot, so the newest sample sits at head-1.
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		s := r.data[(start+i)%r.size]
		result[i] = Sample{At: s.At, Values: append([]float64(nil), s.Values...)}
	}
	return result
}

func (r *ringBuffer) getAll() []Sample {
	return r.getLast(r.count)
}
