package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command/fetch"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/ytdlp"
)

func newReleaseServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("#!/bin/sh\necho fake\n"))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestInstall(t *testing.T) {
	t.Setenv("PATH", "")

	var hits atomic.Int32
	srv := newReleaseServer(t, &hits)
	dir := t.TempDir()

	path, fetched, err := fetch.Install(context.Background(), srv.Client(), srv.URL, dir, false)
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Equal(t, filepath.Join(dir, ytdlp.BinaryName()), path)
	assert.FileExists(t, path)

	path2, fetched, err := fetch.Install(context.Background(), srv.Client(), srv.URL, dir, false)
	require.NoError(t, err)
	assert.False(t, fetched, "existing binary is reused")
	assert.Equal(t, path, path2)
	assert.Equal(t, int32(1), hits.Load())

	_, fetched, err = fetch.Install(context.Background(), srv.Client(), srv.URL, dir, true)
	require.NoError(t, err)
	assert.True(t, fetched)
	assert.Equal(t, int32(2), hits.Load())
}

func TestInstall_ServerError(t *testing.T) {
	t.Setenv("PATH", "")

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)
	dir := t.TempDir()

	_, _, err := fetch.Install(context.Background(), srv.Client(), srv.URL, dir, false)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
