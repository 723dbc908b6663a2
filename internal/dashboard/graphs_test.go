package dashboard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFindMinMax(t *testing.T) {
	tests := []struct {
		name          string
		data          []float64
		wantMin       float64
		wantMax       float64
		wantIsPercent bool
	}{
		{"empty is a percentage", nil, 0, 100, true},
		{"percentages use fixed range", []float64{10, 50, 90}, 0, 100, true},
		{"rates start at zero", []float64{200, 500, 1000}, 0, 1000, false},
		{"negative keeps its min", []float64{-10, 50, 150}, -10, 150, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minVal, maxVal, isPct := findMinMax(tt.data)
			assert.Equal(t, tt.wantMin, minVal)
			assert.Equal(t, tt.wantMax, maxVal)
			assert.Equal(t, tt.wantIsPercent, isPct)
		})
	}
}

func TestSparkline(t *testing.T) {
	assert.Empty(t, Sparkline(DarkTheme, nil, 10, 2, DarkTheme.Graph))
	assert.Empty(t, Sparkline(DarkTheme, []float64{1}, 0, 2, DarkTheme.Graph))

	out := Sparkline(DarkTheme, []float64{0, 25, 50, 75, 100}, 10, 2, DarkTheme.Graph)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, 10, lipgloss.Width(l))
	}

	// More points than dots still fits.
	data := make([]float64, 500)
	for i := range data {
		data[i] = float64(i % 100)
	}
	out = Sparkline(DarkTheme, data, 8, 1, DarkTheme.Graph)
	assert.Equal(t, 8, lipgloss.Width(out))
}

func TestBar(t *testing.T) {
	tests := []struct {
		percent    float64
		wantFilled int
	}{
		{0, 0},
		{50, 5},
		{100, 10},
		{150, 10},
		{-5, 0},
	}
	for _, tt := range tests {
		out := Bar(DarkTheme, 10, tt.percent)
		assert.Equal(t, 10, lipgloss.Width(out))
		assert.Equal(t, tt.wantFilled, strings.Count(out, "█"), "percent %v", tt.percent)
	}
}

func TestResampleData(t *testing.T) {
	assert.Nil(t, resampleData(nil, 4))
	assert.Equal(t, []float64{7, 7, 7}, resampleData([]float64{7}, 3))
	assert.Equal(t, []float64{5, 9}, resampleData([]float64{1, 5, 2, 9}, 2), "downsampling keeps peaks")
	assert.Len(t, resampleData([]float64{0, 10}, 5), 5)
	assert.Equal(t, []float64{3}, resampleData([]float64{1, 3, 2}, 1))
}

func TestThemeFor(t *testing.T) {
	assert.Same(t, DarkTheme, ThemeFor(true))
	assert.Same(t, LightTheme, ThemeFor(false))
	assert.Equal(t, DarkTheme.Healthy, DarkTheme.MetricColor(10))
	assert.Equal(t, DarkTheme.Warning, DarkTheme.MetricColor(75))
	assert.Equal(t, DarkTheme.Critical, DarkTheme.MetricColor(95))
}
