package command_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
		check   func(t *testing.T, out string)
	}{
		{
			name:   "text info",
			level:  "info",
			format: "text",
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.Contains(t, out, "msg=hello")
				assert.NotContains(t, out, "hidden")
			},
		},
		{
			name:   "json debug",
			level:  "DEBUG",
			format: "json",
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.Contains(t, out, `"msg":"hello"`)
				assert.Contains(t, out, "hidden")
			},
		},
		{name: "bad level", level: "loud", format: "text", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := command.NewLogger(&buf, tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)

			logger.Debug("hidden")
			logger.Info("hello")
			tt.check(t, buf.String())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bulkdl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input:\n  file: list.txt\ndownload:\n  parallelism: 3\n"), 0o600))
	t.Setenv("BULKDL_DOWNLOAD_PARALLELISM", "5")

	var got *config.Config
	newCmd := func() *cli.Command {
		return &cli.Command{
			Name: "test",
			Flags: append([]cli.Flag{
				command.ConfigFlag(),
				&cli.StringFlag{Name: "input-file", Value: command.Defaults.Input.File},
			}, command.LogFlags()...),
			Action: func(_ context.Context, cmd *cli.Command) error {
				var err error
				got, err = command.LoadConfig(cmd)

				return err
			},
		}
	}

	require.NoError(t, newCmd().Run(context.Background(), []string{"test", "--config", path}))
	require.NotNil(t, got)
	assert.Equal(t, "list.txt", got.Input.File)
	assert.Equal(t, 5, got.Download.Parallelism)
	assert.Equal(t, "info", got.Log.Level)

	require.NoError(t, newCmd().Run(context.Background(), []string{"test", "--config", path, "--input-file", "other.txt", "--log-level", "debug"}))
	assert.Equal(t, "other.txt", got.Input.File)
	assert.Equal(t, "debug", got.Log.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cmd := &cli.Command{
		Name:  "test",
		Flags: []cli.Flag{command.ConfigFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := command.LoadConfig(cmd)

			return err
		},
	}

	err := cmd.Run(context.Background(), []string{"test", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
