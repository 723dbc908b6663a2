package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrSource,
		ErrTUI,
		ErrExec,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Unknown widget 'bogus' in widget_list",
			suggestion: "Valid widgets are os, cpu, storage, ram, network and gpu",
		},
		{
			name:       "source error",
			code:       ErrSource,
			message:    "Couldn't read host information",
			suggestion: "Run with DASH_DEBUG=1 for details",
		},
		{
			name:       "tui error",
			code:       ErrTUI,
			message:    "Dashboard exited unexpectedly",
			suggestion: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "basic error formatting",
			err:           New(ErrConfig, "Invalid configuration", "Check .dash.yaml syntax"),
			expectedParts: []string{"✗", "Invalid configuration", "Check .dash.yaml syntax"},
		},
		{
			name:          "error without suggestion",
			err:           New(ErrExec, "Command failed", ""),
			expectedParts: []string{"Command failed"},
			notExpected:   []string{"\n\n  \n"},
		},
		{
			name:          "error with cause",
			err:           WrapWithCode(errors.New("permission denied"), ErrSource, "Can't read /proc", ""),
			expectedParts: []string{"Can't read /proc", "permission denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("no such file"),
		ErrSource,
		"Couldn't read host information",
		"Run with DASH_DEBUG=1",
	)

	lines := strings.Split(err.Error(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "✗"))
	assert.Contains(t, lines[0], "Couldn't read host information")
}

func TestWrap(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	wrapped := Wrap(cause, "Collecting load samples timed out")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrSource, wrapped.Code, "Wrap should default to ErrSource code")
	assert.Equal(t, cause, wrapped.Cause)
}

func TestUnwrapAndIs(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := WrapWithCode(cause, ErrExec, "Execution failed", "")

	assert.Equal(t, cause, wrapped.Unwrap())
	assert.True(t, errors.Is(wrapped, cause))

	var dashErr *Error
	require.True(t, errors.As(wrapped, &dashErr))
	assert.Equal(t, ErrExec, dashErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrSource))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "disk full", New(ErrSource, "disk full", "free some space").Summary())
	assert.Equal(t, "Can't read host: boom",
		WrapWithCode(errors.New("boom"), ErrSource, "Can't read host", "").Summary())
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "", Summarize(nil))
	assert.Equal(t, "plain", Summarize(errors.New("plain")))
	assert.Equal(t, "Can't read host: boom",
		Summarize(WrapWithCode(errors.New("boom"), ErrSource, "Can't read host", "")))
}
