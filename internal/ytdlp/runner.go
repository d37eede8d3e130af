package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/model"
)

// DefaultEnv 追加到子进程环境中，保证 Python 输出不被缓冲且为 UTF-8。
var DefaultEnv = []string{"PYTHONUNBUFFERED=1", "PYTHONIOENCODING=UTF-8"}

// waitDelay 取消后等待输出管道关闭的上限（yt-dlp 可能派生 ffmpeg 子进程）。
const waitDelay = 5 * time.Second

// Stream 标识输出来源。
type Stream string

const (
	Stdout Stream = "stdout"
	Stderr Stream = "stderr"
)

// LineFunc 接收下载器输出的每一行，stdout 与 stderr 会并发回调。
type LineFunc func(stream Stream, line string)

// ExitError 下载器以非零状态码退出。
type ExitError struct {
	URL  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("yt-dlp exited with code %d for %s", e.Code, e.URL)
}

// Runner 以固定的可执行文件与选项调用下载器。
type Runner struct {
	Executable string   // yt-dlp 路径
	Options    []string // 额外参数，位于 URL 之前
	OutputDir  string   // 非空时作为 -P 传入
	Env        []string // 追加的环境变量
}

// NewRunner 创建 Runner，options 按 shell 规则拆分。
func NewRunner(executable, options, outputDir string) (*Runner, error) {
	if executable == "" {
		return nil, errors.New("ytdlp: executable is required")
	}

	opts, err := SplitOptions(options)
	if err != nil {
		return nil, err
	}

	return &Runner{
		Executable: executable,
		Options:    opts,
		OutputDir:  outputDir,
		Env:        DefaultEnv,
	}, nil
}

// Args 返回下载 url 时传给可执行文件的参数。
//
// 顺序：[-P 输出目录] 额外选项 --newline url
func (r *Runner) Args(url string) []string {
	args := make([]string, 0, len(r.Options)+4)
	if r.OutputDir != "" {
		args = append(args, "-P", r.OutputDir)
	}
	args = append(args, r.Options...)

	return append(args, "--newline", url)
}

// Download 运行下载器直到退出，并把进度与输出文件写回 task。
//
// onLine 可为 nil。ctx 取消时进程被终止并返回 ctx.Err()。
func (r *Runner) Download(ctx context.Context, task *model.Task, onLine LineFunc) error {
	url := task.URL()

	cmd := exec.CommandContext(ctx, r.Executable, r.Args(url)...) //nolint:gosec // argv exec, no shell
	cmd.Env = append(os.Environ(), r.Env...)
	cmd.WaitDelay = waitDelay

	stdout := newLineWriter(r.handler(Stdout, task, onLine))
	stderr := newLineWriter(r.handler(Stderr, task, onLine))
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", r.Executable, err)
	}

	err := cmd.Wait()
	stdout.Flush()
	stderr.Flush()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{URL: url, Code: exitErr.ExitCode()}
	}
	if err != nil {
		return fmt.Errorf("wait %s: %w", r.Executable, err)
	}

	return nil
}

func (r *Runner) handler(stream Stream, task *model.Task, onLine LineFunc) func(string) {
	return func(line string) {
		if onLine != nil {
			onLine(stream, line)
		}
		if p, ok := ParseProgress(line); ok {
			task.UpdateProgress(p)
		}
		if path, ok := ParseDestination(line); ok {
			task.SetOutputFile(path)
		}
	}
}
