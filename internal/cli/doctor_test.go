package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/dash/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doctorSource has every record so the host info check passes.
func doctorSource() *source.Static {
	info := snapshotInfo()
	info.Storage = &source.StorageInfo{}
	info.Network = &source.NetworkInfo{}
	return source.NewStatic(info, nil)
}

func healthyTerminal() terminalEnv {
	return terminalEnv{IsTTY: true, Width: 120, Height: 40, Profile: termenv.TrueColor}
}

func TestDoctorCommand_TextReport(t *testing.T) {
	withConfigFile(t, "widget_list: [os, cpu, storage, ram, network]\n")

	var out bytes.Buffer
	err := doctorCommand(context.Background(), &out, doctorSource(), source.NoGPU, healthyTerminal(), false)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "dash diagnostic report")
	assert.Contains(t, text, "CONFIG")
	assert.Contains(t, text, "SOURCE")
	assert.Contains(t, text, "TERMINAL")
	assert.Contains(t, text, "Widgets: os, cpu, storage, ram, network")
	assert.Contains(t, text, "Terminal is 120x40")
	assert.Contains(t, text, "Everything looks good")
}

func TestDoctorCommand_ReportsProblems(t *testing.T) {
	withConfigFile(t, "widget_list: [os, gpu, netwrk]\n")

	narrow := terminalEnv{IsTTY: true, Width: 60, Height: 20, Profile: termenv.Ascii}

	var out bytes.Buffer
	require.NoError(t, doctorCommand(context.Background(), &out, doctorSource(), source.NoGPU, narrow, false))

	text := out.String()
	assert.Contains(t, text, "did you mean 'network'?")
	assert.Contains(t, text, "gpu widget is listed but no NVIDIA GPU was found")
	assert.Contains(t, text, "one per row")
	assert.Contains(t, text, "4 issues found")
}

func TestDoctorCommand_JSON(t *testing.T) {
	withConfigFile(t, "widget_list: [os, cpu]\n")

	var out bytes.Buffer
	require.NoError(t, doctorCommand(context.Background(), &out, doctorSource(), source.NoGPU, healthyTerminal(), true))

	var env struct {
		Success bool         `json:"success"`
		Data    DoctorOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &env))
	assert.True(t, env.Success)
	require.Len(t, env.Data.Categories, 3)
	assert.Equal(t, "CONFIG", env.Data.Categories[0].Name)
	assert.Equal(t, "SOURCE", env.Data.Categories[1].Name)
	assert.Equal(t, "TERMINAL", env.Data.Categories[2].Name)
	assert.True(t, env.Data.Summary.AllClear)
	assert.Equal(t, 0, env.Data.Summary.Fail)
	assert.Contains(t, out.String(), `"status": "pass"`)
}
