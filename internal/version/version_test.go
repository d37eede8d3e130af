package version_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/version"
)

func TestGetVersion(t *testing.T) {
	old := version.Version
	t.Cleanup(func() { version.Version = old })

	version.Version = "v1.2.3"
	assert.Equal(t, "v1.2.3", version.GetVersion())

	version.Version = ""
	assert.NotEmpty(t, version.GetVersion())
}

func TestCommand(t *testing.T) {
	var buf bytes.Buffer
	app := &cli.Command{
		Name:     "app",
		Writer:   &buf,
		Commands: []*cli.Command{version.Command},
	}

	require.NoError(t, app.Run(context.Background(), []string{"app", "version"}))
	assert.Contains(t, buf.String(), version.AppRawName)
	assert.Contains(t, buf.String(), "go:")
}
