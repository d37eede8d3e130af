// Package run 提供批量下载命令。
package run

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command"
)

// Command 读取 URL 列表并逐个调用 yt-dlp 下载。
var Command = &cli.Command{
	Name:      "run",
	Usage:     "读取 URL 列表并批量下载",
	ArgsUsage: "[file]",
	Action:    action,
	Flags: append([]cli.Flag{
		command.ConfigFlag(),
		&cli.StringFlag{
			Name:    "input-file",
			Aliases: []string{"i"},
			Value:   command.Defaults.Input.File,
			Usage:   "URL 列表文件，每行一个 URL",
		},
		&cli.StringFlag{
			Name:    "download-output-dir",
			Aliases: []string{"o"},
			Value:   command.Defaults.Download.OutputDir,
			Usage:   "输出目录 (-P)",
		},
		&cli.StringFlag{
			Name:  "download-options",
			Value: command.Defaults.Download.Options,
			Usage: "传给 yt-dlp 的额外参数",
		},
		&cli.IntFlag{
			Name:    "download-parallelism",
			Aliases: []string{"p"},
			Value:   command.Defaults.Download.Parallelism,
			Usage:   "同时进行的下载数",
		},
		&cli.IntFlag{
			Name:  "download-retries",
			Value: command.Defaults.Download.Retries,
			Usage: "失败后的重试次数",
		},
		&cli.DurationFlag{
			Name:  "download-retry-delay",
			Value: command.Defaults.Download.RetryDelay,
			Usage: "重试间隔",
		},
		&cli.DurationFlag{
			Name:  "download-timeout",
			Value: command.Defaults.Download.Timeout,
			Usage: "单个 URL 的超时，0 表示不限制",
		},
		&cli.StringFlag{
			Name:  "ytdlp-path",
			Value: command.Defaults.Ytdlp.Path,
			Usage: "yt-dlp 路径，为空时自动查找",
		},
	}, command.LogFlags()...),
}
