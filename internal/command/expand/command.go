// Package expand 提供区间展开的预览命令。
package expand

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command"
)

// Command 打印展开后的 URL，不执行下载。
var Command = &cli.Command{
	Name:      "expand",
	Usage:     "预览 URL 区间展开结果 (不下载)",
	ArgsUsage: "[url...]",
	Action:    action,
	Flags: append([]cli.Flag{
		command.ConfigFlag(),
		&cli.StringFlag{
			Name:    "input-file",
			Aliases: []string{"i"},
			Value:   command.Defaults.Input.File,
			Usage:   "未指定 url 参数时读取的列表文件",
		},
	}, command.LogFlags()...),
}
