package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unknown command error", errors.New(`unknown command "foo" for "dash"`), true},
		{"unknown flag error", errors.New(`unknown flag: --foo`), true},
		{"other error", errors.New("collector failed"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownCommandError(tt.err))
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"standard cobra format", errors.New(`unknown command "foo" for "dash"`), "foo"},
		{"command with hyphen", errors.New(`unknown command "my-view" for "dash"`), "my-view"},
		{"no quotes returns empty", errors.New("unknown command foo"), ""},
		{"single quote returns empty", errors.New(`unknown command "foo`), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUnknownCommand(tt.err))
		})
	}
}

func TestRootCommandRegistration(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"view", "snapshot", "init", "config", "version", "completion", "doctor"} {
		assert.True(t, names[want], "missing %s", want)
	}

	for _, flag := range []string{"config", "verbose", "no-color", "log-file"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
	assert.NotNil(t, rootCmd.Flags().Lookup("interval"))
}

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"snapshto", "snapshot"},
		{"docter", "doctor"},
		{"confg", "config"},
		{"deploy", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suggestCommand(tt.name))
		})
	}
}
