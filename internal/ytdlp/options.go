package ytdlp

import (
	"fmt"

	"github.com/mattn/go-shellwords"
)

// SplitOptions 将额外选项字符串按 shell 规则拆分为参数列表。
//
// 支持单双引号与反斜杠转义；不展开环境变量与反引号。引号不成对时返回错误。
func SplitOptions(options string) ([]string, error) {
	p := shellwords.NewParser()
	p.ParseEnv = false
	p.ParseBacktick = false

	args, err := p.Parse(options)
	if err != nil {
		return nil, fmt.Errorf("split options %q: %w", options, err)
	}

	return args, nil
}
