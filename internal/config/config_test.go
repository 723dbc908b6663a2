package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{"os", "cpu", "storage", "ram", "network"}, cfg.WidgetList)
	assert.Equal(t, VersionOff, cfg.ShowDashVersion)
	assert.True(t, cfg.DarkMode)
	assert.Equal(t, time.Second, cfg.LoadInterval)
	assert.Equal(t, time.Minute, cfg.InfoInterval)
	assert.Equal(t, 60, cfg.HistorySize)
	assert.Empty(t, cfg.PageTitle)

	for _, id := range KnownWidgets {
		l, ok := cfg.Layout(id)
		require.True(t, ok, id)
		assert.Greater(t, l.Grow, 0.0, id)
		assert.Greater(t, l.MinWidth, 0, id)
	}
	assert.NoError(t, Validate(cfg))
}

func TestConfigLayout_NilSafe(t *testing.T) {
	var cfg *Config
	_, ok := cfg.Layout("cpu")
	assert.False(t, ok)

	_, ok = (&Config{}).Layout("cpu")
	assert.False(t, ok)
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	clone.WidgetList[0] = "gpu"
	clone.Layouts["cpu"] = WidgetLayout{Grow: 1, MinWidth: 1}

	assert.Equal(t, "os", cfg.WidgetList[0])
	assert.Equal(t, 44, cfg.Layouts["cpu"].MinWidth)
	assert.Nil(t, (*Config)(nil).Clone())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
widget_list: [cpu, ram, gpu]
cpu_widget_grow: 6
cpu_widget_min_width: 50
page_title: My Server
show_dash_version: bottom_right
dark_mode: false
load_interval: 2s
info_interval: 30s
history_size: 120
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"cpu", "ram", "gpu"}, cfg.WidgetList)
	assert.Equal(t, WidgetLayout{Grow: 6, MinWidth: 50}, cfg.Layouts["cpu"])
	assert.Equal(t, WidgetLayout{Grow: 4, MinWidth: 40}, cfg.Layouts["ram"])
	assert.Equal(t, "My Server", cfg.PageTitle)
	assert.Equal(t, VersionBottomRight, cfg.ShowDashVersion)
	assert.False(t, cfg.DarkMode)
	assert.Equal(t, 2*time.Second, cfg.LoadInterval)
	assert.Equal(t, 30*time.Second, cfg.InfoInterval)
	assert.Equal(t, 120, cfg.HistorySize)
}

func TestLoad_CommaSeparatedWidgetList(t *testing.T) {
	path := writeConfig(t, "widget_list: \"os, CPU ,,network\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"os", "cpu", "network"}, cfg.WidgetList)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().WidgetList, cfg.WidgetList)
	assert.Equal(t, DefaultConfig().Layouts, cfg.Layouts)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DASH_WIDGET_LIST", "ram,cpu")
	t.Setenv("DASH_PAGE_TITLE", "from env")
	t.Setenv("DASH_RAM_WIDGET_MIN_WIDTH", "20")
	t.Setenv("DASH_SHOW_DASH_VERSION", "BOTTOM_RIGHT")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"ram", "cpu"}, cfg.WidgetList)
	assert.Equal(t, "from env", cfg.PageTitle)
	assert.Equal(t, 20, cfg.Layouts["ram"].MinWidth)
	assert.Equal(t, VersionBottomRight, cfg.ShowDashVersion)
}

func TestLoad_CustomWidgetLayout(t *testing.T) {
	path := writeConfig(t, `
widget_list: [cpu, extra, half]
extra_widget_grow: 1.5
extra_widget_min_width: 12
half_widget_grow: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, WidgetLayout{Grow: 1.5, MinWidth: 12}, cfg.Layouts["extra"])
	_, ok := cfg.Layout("half")
	assert.False(t, ok, "a widget needs both layout keys")
}

func TestLoad_MalformedLayoutIsDropped(t *testing.T) {
	path := writeConfig(t, `
cpu_widget_grow: lots
ram_widget_min_width: -3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	_, ok := cfg.Layout("cpu")
	assert.False(t, ok)
	_, ok = cfg.Layout("ram")
	assert.False(t, ok)
	_, ok = cfg.Layout("os")
	assert.True(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad load interval", "load_interval: soon\n"},
		{"bad info interval", "info_interval: [1]\n"},
		{"bad history size", "history_size: many\n"},
		{"bad dark mode", "dark_mode: maybe\n"},
		{"invalid yaml", "widget_list: [cpu\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := writeConfig(t, "page_title: x\n")
		found, err := Find(path)
		require.NoError(t, err)
		assert.Equal(t, path, found)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("local before global", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		require.NoError(t, os.MkdirAll(filepath.Dir(global), 0755))
		require.NoError(t, os.WriteFile(global, []byte("page_title: global\n"), 0644))

		work := t.TempDir()
		chdir(t, work)

		found, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, global, found)

		local := filepath.Join(work, ConfigFileName)
		require.NoError(t, os.WriteFile(local, []byte("page_title: local\n"), 0644))

		found, err = Find("")
		require.NoError(t, err)
		assert.Equal(t, local, found)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		chdir(t, t.TempDir())

		found, err := Find("")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig().WidgetList, cfg.WidgetList)

	explicit := writeConfig(t, "widget_list: gpu\n")
	cfg, path, err = LoadOrDefault(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, path)
	assert.Equal(t, []string{"gpu"}, cfg.WidgetList)
}

func TestParseWidgetList(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		want    []string
		wantErr bool
	}{
		{"nil", nil, nil, false},
		{"comma string", "os,cpu", []string{"os", "cpu"}, false},
		{"spaces and case", " OS , Ram ", []string{"os", "ram"}, false},
		{"empty items dropped", "os,,", []string{"os"}, false},
		{"empty string", "", []string{}, false},
		{"string slice", []string{"gpu", "cpu"}, []string{"gpu", "cpu"}, false},
		{"interface slice", []interface{}{"net", 5}, []string{"net", "5"}, false},
		{"duplicates kept", "cpu,cpu", []string{"cpu", "cpu"}, false},
		{"unsupported type", 42, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWidgetList(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWatch(t *testing.T) {
	path := writeConfig(t, "page_title: before\n")

	var mu sync.Mutex
	var got *Config
	require.NoError(t, Watch(path, func(cfg *Config, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err == nil {
			got = cfg
		}
	}))

	require.NoError(t, os.WriteFile(path, []byte("page_title: after\n"), 0644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return got != nil && got.PageTitle == "after"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatch_NoPath(t *testing.T) {
	assert.NoError(t, Watch("", func(*Config, error) {}))
}

func TestMarshal_LoadsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WidgetList = []string{"cpu", "gpu"}
	cfg.PageTitle = "box"
	cfg.ShowDashVersion = VersionBottomRight
	cfg.LoadInterval = 500 * time.Millisecond

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "widget_list: [cpu, gpu]")
	assert.Contains(t, string(data), "cpu_widget_grow: 4")

	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
