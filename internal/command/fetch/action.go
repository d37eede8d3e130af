package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/ytdlp"
)

const defaultTimeout = 5 * time.Minute

func action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := command.Setup(cmd)
	if err != nil {
		return err
	}

	dir := cmd.String("dir")
	if dir == "" {
		dir = ytdlp.LocalDir()
	}

	client := &http.Client{Timeout: cmd.Duration("timeout")}
	path, fetched, err := Install(ctx, client, cfg.Ytdlp.ReleaseURL, dir, cmd.Bool("force"))
	if err != nil {
		return err
	}

	if fetched {
		_, _ = fmt.Fprintf(cmd.Root().Writer, "installed %s\n", path)
	} else {
		_, _ = fmt.Fprintf(cmd.Root().Writer, "already available: %s\n", path)
	}

	return nil
}

// Install 在 dir 中安装 yt-dlp。
//
// force 为 false 且 yt-dlp 已可用（dir 或 PATH 中）时不下载，返回现有路径。
func Install(ctx context.Context, client *http.Client, releaseURL, dir string, force bool) (path string, fetched bool, err error) {
	if !force {
		path, err := ytdlp.Resolve("", dir)
		if err == nil {
			return path, false, nil
		}
		if !errors.Is(err, ytdlp.ErrNotFound) {
			return "", false, err
		}
	}

	slog.Info("Fetching yt-dlp", "url", releaseURL, "dir", dir)
	start := time.Now()

	path, err = ytdlp.Fetch(ctx, client, releaseURL, dir)
	if err != nil {
		return "", false, fmt.Errorf("fetch yt-dlp: %w", err)
	}

	slog.Info("Fetched yt-dlp", "path", path, "elapsed", time.Since(start).Round(time.Millisecond))

	return path, true, nil
}
