// Package fetch 提供 yt-dlp 的安装命令。
package fetch

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command"
)

// Command 下载当前平台的 yt-dlp 到程序所在目录。
var Command = &cli.Command{
	Name:   "fetch",
	Usage:  "下载 yt-dlp 到程序所在目录",
	Action: action,
	Flags: append([]cli.Flag{
		command.ConfigFlag(),
		&cli.StringFlag{
			Name:  "dir",
			Usage: "安装目录，默认为程序所在目录",
		},
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "已存在时也重新下载",
		},
		&cli.StringFlag{
			Name:  "ytdlp-release-url",
			Value: command.Defaults.Ytdlp.ReleaseURL,
			Usage: "发布版下载地址",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Value: defaultTimeout,
			Usage: "下载超时",
		},
	}, command.LogFlags()...),
}
