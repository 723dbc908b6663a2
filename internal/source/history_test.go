package source

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u64(v uint64) *uint64 { return &v }

func TestNewHistory(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"default size", 0, DefaultHistorySize},
		{"negative size", -1, DefaultHistorySize},
		{"custom size", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(tt.size)
			assert.Equal(t, tt.expected, h.Size())
		})
	}
}

func TestHistoryPush(t *testing.T) {
	h := NewHistory(10)
	at := time.Unix(1000, 0)

	h.Push(&LoadSample{
		At:      at,
		CPU:     []float64{10, 20},
		RAM:     u64(4 << 30),
		Storage: []uint64{100, 200},
		Network: &NetworkLoad{DownPerSec: 5, UpPerSec: 1},
		GPU:     []GPULoad{{Utilization: 50, MemoryUsed: 1024}},
	})
	h.Push(nil)

	loads := h.Loads()

	require.NotNil(t, loads.CPU)
	assert.Equal(t, MetricCPU, loads.CPU.Metric)
	assert.Equal(t, []string{"core 0", "core 1"}, loads.CPU.Labels)
	assert.Equal(t, []Sample{{At: at, Values: []float64{10, 20}}}, loads.CPU.Samples)

	require.NotNil(t, loads.RAM)
	assert.Equal(t, []float64{4 << 30}, loads.RAM.Column(0))

	require.NotNil(t, loads.Storage)
	assert.Equal(t, []string{"disk 0", "disk 1"}, loads.Storage.Labels)

	require.NotNil(t, loads.Network)
	assert.Equal(t, []string{"down", "up"}, loads.Network.Labels)

	require.NotNil(t, loads.GPU)
	assert.Equal(t, []string{"gpu 0 load", "gpu 0 memory"}, loads.GPU.Labels)
	latest, ok := loads.GPU.Latest()
	require.True(t, ok)
	assert.Equal(t, []float64{50, 1024}, latest.Values)
}

func TestHistoryMissingMetricsStayNil(t *testing.T) {
	h := NewHistory(10)
	h.Push(&LoadSample{CPU: []float64{1}})

	loads := h.Loads()
	assert.NotNil(t, loads.CPU)
	assert.Nil(t, loads.RAM)
	assert.Nil(t, loads.Storage)
	assert.Nil(t, loads.Network)
	assert.Nil(t, loads.GPU)
	assert.Equal(t, 0, h.Count(MetricGPU))
}

func TestHistoryRingBufferOverflow(t *testing.T) {
	h := NewHistory(5)
	for i := 0; i < 8; i++ {
		h.Push(&LoadSample{CPU: []float64{float64(i)}})
	}

	assert.Equal(t, 5, h.Count(MetricCPU))
	assert.Equal(t, []float64{3, 4, 5, 6, 7}, h.Loads().CPU.Column(0))
}

func TestHistoryLoadsAreSnapshots(t *testing.T) {
	h := NewHistory(5)
	h.Push(&LoadSample{CPU: []float64{1}})

	first := h.Loads()
	h.Push(&LoadSample{CPU: []float64{2}})
	second := h.Loads()

	assert.NotSame(t, first.CPU, second.CPU)
	assert.Equal(t, []float64{1}, first.CPU.Column(0))
	assert.Equal(t, []float64{1, 2}, second.CPU.Column(0))

	second.CPU.Samples[0].Values[0] = 99
	assert.Equal(t, []float64{1, 2}, h.Loads().CPU.Column(0))
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(5)
	h.Push(&LoadSample{CPU: []float64{1}})
	h.Clear()
	assert.Nil(t, h.Loads().CPU)
}

func TestHistoryConcurrentAccess(t *testing.T) {
	h := NewHistory(20)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			h.Push(&LoadSample{CPU: []float64{float64(i)}})
		}(i)
		go func() {
			defer wg.Done()
			_ = h.Loads()
		}()
	}
	wg.Wait()
	assert.Equal(t, 10, h.Count(MetricCPU))
}

func TestSeries(t *testing.T) {
	var nilSeries *Series
	assert.Equal(t, 0, nilSeries.Len())
	_, ok := nilSeries.Latest()
	assert.False(t, ok)
	assert.Nil(t, nilSeries.Column(0))

	s := &Series{Samples: []Sample{
		{Values: []float64{1, 2}},
		{Values: []float64{3}},
	}}
	assert.Equal(t, []float64{1, 3}, s.Column(0))
	assert.Equal(t, []float64{2}, s.Column(1))
	assert.Empty(t, s.Column(5))
	assert.Nil(t, s.Column(-1))
}
