package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "bfvm.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, `
[run]
timeout = "1m30s"
trace = true
list = true
tape = 16
unfolded = true
input = "in.txt"
`))
		require.NoError(t, err)
		assert.Equal(t, RunConfig{
			Timeout:  Duration(90 * time.Second),
			Trace:    true,
			List:     true,
			Tape:     16,
			Unfolded: true,
			Input:    "in.txt",
		}, cfg.Run)
	})

	t.Run("empty", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, ""))
		require.NoError(t, err)
		assert.Equal(t, RunConfig{}, cfg.Run)
	})

	for _, tc := range []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown key", "[run]\ntrace = true\nfold = 3\n", "unknown keys in"},
		{"unknown table", "[walk]\nspeed = 1\n", "unknown keys in"},
		{"bad duration", "[run]\ntimeout = \"soon\"\n", "parse error in"},
		{"bad syntax", "[run\n", "parse error in"},
		{"negative tape", "[run]\ntape = -1\n", "invalid run.tape -1"},
		{"huge tape", "[run]\ntape = 30001\n", "invalid run.tape 30001"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tc.content))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist), "expected a not-exist error, got %v", err)
	})
}

func TestDuration_text(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("250ms")))
	assert.Equal(t, Duration(250*time.Millisecond), d)
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "250ms", string(text))
}

func TestRunConfig_buildOptions(t *testing.T) {
	_, err := Build("]", RunConfig{}.buildOptions("a.bf")...)
	assert.EqualError(t, err, "a.bf:1:1: unmatched ]")

	prog, err := Build("++", RunConfig{Unfolded: true}.buildOptions("a.bf")...)
	require.NoError(t, err)
	assert.Equal(t, Program{Add(1), Add(1)}, prog)
}
