package cfgm

import "github.com/urfave/cli/v3"

type options struct {
	appName     string
	cmd         *cli.Command
	configPaths []string
	configFile  string // 显式指定，必须存在
	envPrefix   string
	noExpansion bool
}

// Option 配置加载选项。
type Option func(*options)

// WithCommand 读取 cmd 上显式设置的 flags（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) { o.cmd = cmd }
}

// WithAppName 设置应用名，用于生成默认搜索路径（见 [DefaultPaths]）。
func WithAppName(name string) Option {
	return func(o *options) { o.appName = name }
}

// WithConfigPaths 覆盖配置文件搜索路径，命中首个存在的文件即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) { o.configPaths = paths }
}

// WithConfigFile 指定唯一的配置文件；文件不存在时 [Load] 返回错误。
//
// 空字符串表示未指定，继续使用搜索路径。
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// WithEnvPrefix 启用带前缀的环境变量覆盖。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) { o.envPrefix = prefix }
}

// WithoutTemplateExpansion 关闭配置文件中的 ${...} 展开。
func WithoutTemplateExpansion() Option {
	return func(o *options) { o.noExpansion = true }
}
