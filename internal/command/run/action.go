package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/command"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/config"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/model"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/queue"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/urllist"
	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/ytdlp"
)

// ErrIncomplete 有下载失败或被中断。
var ErrIncomplete = errors.New("not all downloads completed")

func action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := command.Setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Args().Present() {
		cfg.Input.File = cmd.Args().First()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, cfg, cmd.Root().Writer)
}

// Run 按 cfg 下载列表中的全部 URL，并把进度与汇总写入 out。
func Run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	executable, err := ytdlp.Resolve(cfg.Ytdlp.Path, ytdlp.LocalDir())
	if err != nil {
		if errors.Is(err, ytdlp.ErrNotFound) {
			return fmt.Errorf("%w (run \"bulkdl fetch\" or set ytdlp.path)", err)
		}

		return err
	}

	runner, err := ytdlp.NewRunner(executable, cfg.Download.Options, cfg.Download.OutputDir)
	if err != nil {
		return fmt.Errorf("download.options: %w", err)
	}

	urls, err := loadURLs(cfg.Input.File)
	if err != nil {
		return err
	}

	slog.Info("Starting batch",
		"file", cfg.Input.File,
		"urls", len(urls),
		"executable", executable,
		"parallelism", max(1, cfg.Download.Parallelism),
	)

	tasks := model.NewTasks(urls)
	p := newPrinter(out, len(tasks), cfg.Download.Retries)
	q := &queue.Queue{
		Downloader:  downloader(runner),
		Parallelism: cfg.Download.Parallelism,
		Retries:     cfg.Download.Retries,
		RetryDelay:  cfg.Download.RetryDelay,
		Timeout:     cfg.Download.Timeout,
		OnUpdate:    p.update,
	}

	summary := q.Run(ctx, tasks)
	p.summary(summary)

	if !summary.OK() {
		return fmt.Errorf("%w: %d failed, %d stopped", ErrIncomplete, summary.Failed, summary.Stopped)
	}

	return nil
}

func loadURLs(path string) ([]string, error) {
	lines, err := urllist.Read(path)
	if err != nil {
		return nil, err
	}

	entries := urllist.Expand(lines)
	for _, e := range entries {
		if len(e.Expanded) == 0 {
			slog.Warn("Range expands to nothing, skipped", "line", e.Line)
		}
	}

	urls := urllist.Flatten(entries)
	if len(urls) == 0 {
		return nil, fmt.Errorf("%s: %w", path, urllist.ErrEmptyList)
	}

	return urls, nil
}

// downloader 把 yt-dlp 的输出逐行写入 debug 日志。
func downloader(r *ytdlp.Runner) queue.Downloader {
	return queue.DownloaderFunc(func(ctx context.Context, task *model.Task) error {
		logger := slog.With("task", task.ID())

		return r.Download(ctx, task, func(stream ytdlp.Stream, line string) {
			logger.Debug("yt-dlp output", "stream", stream, "line", line)
		})
	})
}

// printer 输出每个任务的结束状态与最终汇总，可被并发调用。
type printer struct {
	mu      sync.Mutex
	out     io.Writer
	total   int
	retries int
	done    int
}

func newPrinter(out io.Writer, total, retries int) *printer {
	if out == nil {
		out = io.Discard
	}

	return &printer{out: out, total: total, retries: max(0, retries)}
}

func (p *printer) update(info model.TaskInfo) {
	if !info.Status.IsFinished() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// 还有重试机会的失败不计入进度。
	if info.Status == model.StatusError && info.Attempts <= p.retries {
		_, _ = fmt.Fprintf(p.out, "%s %s (attempt %d): %s\n", statusColor(info.Status).Sprint("retry"), info.URL, info.Attempts, info.Error)

		return
	}

	p.done++
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s %s\n", p.done, p.total, statusColor(info.Status).Sprint(info.Status), info.URL)
}

func (p *printer) summary(s queue.Summary) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintln(p.out)
	_, _ = fmt.Fprintf(p.out, "Total: %d  %s  %s  %s\n",
		s.Total,
		color.GreenString("completed: %d", s.Completed),
		color.RedString("failed: %d", s.Failed),
		color.YellowString("stopped: %d", s.Stopped),
	)
	for _, info := range s.Failures {
		line := info.URL
		if info.Error != "" {
			line += ": " + info.Error
		}
		_, _ = fmt.Fprintf(p.out, "  %s %s\n", statusColor(info.Status).Sprint(info.Status), line)
	}
}

func statusColor(s model.TaskStatus) *color.Color {
	switch s {
	case model.StatusCompleted:
		return color.New(color.FgGreen)
	case model.StatusError:
		return color.New(color.FgRed)
	case model.StatusStopped:
		return color.New(color.FgYellow)
	default:
		return color.New(color.Reset)
	}
}
