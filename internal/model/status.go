// Package model 定义下载任务及其状态。
package model

// TaskStatus 下载任务状态。
type TaskStatus string

const (
	// StatusWaiting 已排队，尚未启动
	StatusWaiting TaskStatus = "waiting"

	// StatusRunning 下载器进程运行中
	StatusRunning TaskStatus = "running"

	// StatusCompleted 下载器正常退出
	StatusCompleted TaskStatus = "completed"

	// StatusError 下载失败
	StatusError TaskStatus = "error"

	// StatusStopped 被取消（Ctrl+C 或超时前的中断）
	StatusStopped TaskStatus = "stopped"
)

func (s TaskStatus) String() string {
	return string(s)
}

// IsActive 任务是否正在执行。
func (s TaskStatus) IsActive() bool {
	return s == StatusRunning
}

// IsFinished 任务是否已结束（完成、失败或停止）。
func (s TaskStatus) IsFinished() bool {
	return s == StatusCompleted || s == StatusError || s == StatusStopped
}
