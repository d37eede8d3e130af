// Package cfg 提供配置查看命令。
package cfg

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command"
)

// Command 配置相关子命令。
var Command = &cli.Command{
	Name:  "config",
	Usage: "配置文件工具",
	Commands: []*cli.Command{
		{
			Name:   "example",
			Usage:  "输出带注释的 YAML 配置示例",
			Action: exampleAction,
		},
		{
			Name:   "show",
			Usage:  "以 JSON 输出合并后的生效配置",
			Action: showAction,
			Flags:  []cli.Flag{command.ConfigFlag()},
		},
	},
}
