// Package queue 以有限并发依次执行下载任务。
package queue

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lwmacct/251207-go-pkg-bulkdl/internal/model"
)

// Downloader 执行单个任务的一次下载尝试。
type Downloader interface {
	Download(ctx context.Context, task *model.Task) error
}

// DownloaderFunc 将普通函数适配为 [Downloader]。
type DownloaderFunc func(ctx context.Context, task *model.Task) error

func (f DownloaderFunc) Download(ctx context.Context, task *model.Task) error {
	return f(ctx, task)
}

// Queue 下载队列。
//
// 单个任务失败不会影响其他任务；ctx 取消后运行中的任务被终止，
// 尚未开始的任务直接标记为 stopped。
type Queue struct {
	Downloader  Downloader
	Parallelism int           // 最大并发数，小于 1 时按 1 处理
	Retries     int           // 失败后的额外尝试次数
	RetryDelay  time.Duration // 两次尝试之间的等待
	Timeout     time.Duration // 单次尝试超时，0 表示不限制
	Logger      *slog.Logger

	// OnUpdate 在任务状态变化时回调，可能被并发调用。
	OnUpdate func(info model.TaskInfo)
}

// Run 按列表顺序启动任务并等待全部结束。
func (q *Queue) Run(ctx context.Context, tasks []*model.Task) Summary {
	for _, task := range tasks {
		task.Reset()
	}

	var g errgroup.Group
	g.SetLimit(max(1, q.Parallelism))

	for _, task := range tasks {
		if ctx.Err() != nil {
			q.stop(task)
			continue
		}
		g.Go(func() error {
			q.runTask(ctx, task)
			return nil
		})
	}
	_ = g.Wait()

	return Summarize(tasks)
}

func (q *Queue) runTask(ctx context.Context, task *model.Task) {
	logger := q.logger().With("task", task.ID(), "url", task.URL())

	for attempt := 0; attempt <= max(0, q.Retries); attempt++ {
		if attempt > 0 {
			logger.Info("Retrying download", "attempt", attempt+1, "delay", q.RetryDelay)
			select {
			case <-time.After(q.RetryDelay):
			case <-ctx.Done():
			}
		}
		if ctx.Err() != nil {
			q.stop(task)
			logger.Warn("Download stopped")

			return
		}

		task.SetRunning()
		q.notify(task)
		logger.Info("Download started", "attempt", attempt+1)

		err := q.attempt(ctx, task)
		switch {
		case err == nil:
			task.SetCompleted()
			q.notify(task)
			info := task.Snapshot()
			logger.Info("Download completed", "output", info.OutputFile, "elapsed", info.Duration().Round(time.Millisecond))

			return
		case ctx.Err() != nil:
			q.stop(task)
			logger.Warn("Download stopped")

			return
		default:
			task.SetError(err.Error())
			q.notify(task)
			logger.Warn("Download failed", "attempt", attempt+1, "error", err)
		}
	}

	logger.Error("Download gave up", "attempts", task.Snapshot().Attempts)
}

func (q *Queue) attempt(ctx context.Context, task *model.Task) error {
	if q.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.Timeout)
		defer cancel()
	}

	return q.Downloader.Download(ctx, task)
}

func (q *Queue) stop(task *model.Task) {
	task.SetStopped()
	q.notify(task)
}

func (q *Queue) notify(task *model.Task) {
	if q.OnUpdate != nil {
		q.OnUpdate(task.Snapshot())
	}
}

func (q *Queue) logger() *slog.Logger {
	if q.Logger != nil {
		return q.Logger
	}

	return slog.Default()
}
