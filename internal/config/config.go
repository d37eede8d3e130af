// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - --config 指定，或按 cfgm.DefaultPaths("bulkdl") 搜索
//  3. 环境变量 - BULKDL_ 前缀
//  4. CLI flags - 仅显式设置的 flag 生效
package config

import (
	"time"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/ytdlp"
)

// EnvPrefix 环境变量前缀。
const EnvPrefix = "BULKDL_"

// Config 应用配置。
type Config struct {
	Input    InputConfig    `json:"input" desc:"输入配置"`
	Download DownloadConfig `json:"download" desc:"下载配置"`
	Ytdlp    YtdlpConfig    `json:"ytdlp" desc:"yt-dlp 配置"`
	Log      LogConfig      `json:"log" desc:"日志配置"`
}

// InputConfig 输入配置。
type InputConfig struct {
	File string `json:"file" desc:"URL 列表文件，每行一个 URL"`
}

// DownloadConfig 下载配置。
//
//nolint:tagliatelle
type DownloadConfig struct {
	OutputDir   string        `json:"output-dir" desc:"输出目录 (-P)，为空时使用当前目录"`
	Options     string        `json:"options" desc:"传给 yt-dlp 的额外参数，按 shell 规则拆分"`
	Parallelism int           `json:"parallelism" desc:"同时进行的下载数"`
	Retries     int           `json:"retries" desc:"失败后的重试次数"`
	RetryDelay  time.Duration `json:"retry-delay" desc:"重试间隔"`
	Timeout     time.Duration `json:"timeout" desc:"单个 URL 的超时，0 表示不限制"`
}

// YtdlpConfig yt-dlp 配置。
//
//nolint:tagliatelle
type YtdlpConfig struct {
	Path       string `json:"path" desc:"yt-dlp 路径，为空时自动查找"`
	ReleaseURL string `json:"release-url" desc:"fetch 使用的发布版下载地址"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level  string `json:"level" desc:"日志级别: debug, info, warn, error"`
	Format string `json:"format" desc:"日志格式: text, json"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{
			File: "url.txt",
		},
		Download: DownloadConfig{
			Parallelism: 1,
			RetryDelay:  2 * time.Second,
		},
		Ytdlp: YtdlpConfig{
			ReleaseURL: ytdlp.DefaultReleaseURL,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
