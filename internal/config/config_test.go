package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/config"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/ytdlp"
	"github.com/lwmacct/251207-go-pkg-bulkdl/pkg/cfgm"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, "url.txt", cfg.Input.File)
	assert.Empty(t, cfg.Download.OutputDir)
	assert.Empty(t, cfg.Download.Options)
	assert.Equal(t, 1, cfg.Download.Parallelism)
	assert.Zero(t, cfg.Download.Retries)
	assert.Equal(t, 2*time.Second, cfg.Download.RetryDelay)
	assert.Zero(t, cfg.Download.Timeout)
	assert.Empty(t, cfg.Ytdlp.Path)
	assert.Equal(t, ytdlp.DefaultReleaseURL, cfg.Ytdlp.ReleaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestExampleYAMLLoadsBack(t *testing.T) {
	out, err := cfgm.ExampleYAML(config.DefaultConfig())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, out, 0o600))

	cfg, err := cfgm.Load(config.Config{}, cfgm.WithConfigFile(path))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), *cfg)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("BULKDL_DOWNLOAD_OPTIONS", `-f "bv*+ba/b" --no-playlist`)
	t.Setenv("BULKDL_DOWNLOAD_PARALLELISM", "4")
	t.Setenv("BULKDL_DOWNLOAD_RETRY_DELAY", "500ms")

	cfg, err := cfgm.Load(config.DefaultConfig(),
		cfgm.WithConfigPaths(filepath.Join(t.TempDir(), "none.yaml")),
		cfgm.WithEnvPrefix(config.EnvPrefix),
	)
	require.NoError(t, err)

	assert.Equal(t, `-f "bv*+ba/b" --no-playlist`, cfg.Download.Options)
	assert.Equal(t, 4, cfg.Download.Parallelism)
	assert.Equal(t, 500*time.Millisecond, cfg.Download.RetryDelay)
}
