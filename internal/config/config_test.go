package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nucleus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 100*time.Millisecond, cfg.Interval())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := write(t, "tickIntervalMs: 10\nlogLevel: DEBUG\ntrace: true\ntraceOutput: spans.json\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, cfg.Interval())
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.True(t, cfg.Trace)
	assert.Equal(t, "spans.json", cfg.TraceOutput)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(write(t, "logFile: run.log\n"))
	require.NoError(t, err)
	assert.Equal(t, "run.log", cfg.LogFile)
	assert.Equal(t, 100, cfg.TickIntervalMS)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	_, err := Load(write(t, "tickIntervalMs: [oops\n"))
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveInterval(t *testing.T) {
	_, err := Load(write(t, "tickIntervalMs: 0\n"))
	require.Error(t, err)
	_, err = Load(write(t, "tickIntervalMs: -5\n"))
	require.Error(t, err)
}
