package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command/cfg"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command/expand"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command/fetch"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command/run"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/version"
)

func main() {
	app := &cli.Command{
		Name:    version.AppRawName,
		Usage:   "按 URL 列表批量调用 yt-dlp 下载",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			run.Command,
			expand.Command,
			fetch.Command,
			cfg.Command,
			version.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
