package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidefari/projstats/internal/client"
	"github.com/guidefari/projstats/internal/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projstats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, core.DefaultSkipDirs, cfg.Scan.SkipDirs)
	assert.Empty(t, cfg.Scan.Exclude)
	assert.False(t, cfg.Scan.RespectGitignore)
	assert.Equal(t, string(core.UnknownExclude), cfg.Scan.UnknownExtensions)
	assert.Equal(t, core.DefaultWorkerCount, cfg.Scan.Workers)
	assert.Equal(t, core.DefaultScanTimeout, cfg.Scan.Timeout)
	assert.Equal(t, client.DefaultEndpoint, cfg.Client.Endpoint)
	assert.Equal(t, client.DefaultTimeout, cfg.Client.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: "127.0.0.1:9000"
scan:
  skip_dirs: [vendor, node_modules]
  exclude: ["*.min.js"]
  respect_gitignore: true
  unknown_extensions: text
  workers: 8
  timeout: 30s
client:
  endpoint: http://scanner:5000
  timeout: 1m
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"vendor", "node_modules"}, cfg.Scan.SkipDirs)
	assert.Equal(t, []string{"*.min.js"}, cfg.Scan.Exclude)
	assert.True(t, cfg.Scan.RespectGitignore)
	assert.Equal(t, "text", cfg.Scan.UnknownExtensions)
	assert.Equal(t, 8, cfg.Scan.Workers)
	assert.Equal(t, 30*time.Second, cfg.Scan.Timeout)
	assert.Equal(t, "http://scanner:5000", cfg.Client.Endpoint)
	assert.Equal(t, time.Minute, cfg.Client.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PROJSTATS_SERVER_ADDR", ":7000")
	t.Setenv("PROJSTATS_SCAN_WORKERS", "2")
	t.Setenv("PROJSTATS_LOG_LEVEL", "warn")
	path := writeConfig(t, "scan:\n  workers: 8\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, 2, cfg.Scan.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"unknown policy", func(c *Config) { c.Scan.UnknownExtensions = "guess" }, "scan.unknown_extensions"},
		{"negative workers", func(c *Config) { c.Scan.Workers = -1 }, "scan.workers"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestServiceOptions(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Scan.UnknownExtensions = "text"

	logger := slog.Default()
	opts := cfg.ServiceOptions(logger)

	assert.Equal(t, core.UnknownAsText, opts.UnknownExt)
	assert.Equal(t, core.DefaultSkipDirs, opts.SkipDirs)
	assert.Equal(t, core.DefaultScanTimeout, opts.Timeout)
	assert.Same(t, logger, opts.Logger)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
