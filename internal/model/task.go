package model

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Task 单个 URL 的下载任务。
//
// 下载器在独立 goroutine 中回写进度，因此所有方法都是并发安全的；
// 需要读取多个字段时使用 [Task.Snapshot]。
type Task struct {
	mu sync.RWMutex

	id         string
	url        string
	status     TaskStatus
	percent    float64
	outputFile string
	errMsg     string
	attempts   int
	startedAt  time.Time
	finishedAt time.Time
}

// TaskInfo 是 [Task] 某一时刻的只读副本。
type TaskInfo struct {
	ID         string
	URL        string
	Status     TaskStatus
	Percent    float64
	OutputFile string
	Error      string
	Attempts   int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration 返回任务耗时；未结束时返回 0。
func (ti TaskInfo) Duration() time.Duration {
	if ti.StartedAt.IsZero() || ti.FinishedAt.IsZero() {
		return 0
	}

	return ti.FinishedAt.Sub(ti.StartedAt)
}

// NewTask 为 url 创建等待中的任务。
func NewTask(url string) *Task {
	return &Task{
		id:     uuid.NewString(),
		url:    url,
		status: StatusWaiting,
	}
}

// NewTasks 为每个 url 创建一个任务，保持顺序。
func NewTasks(urls []string) []*Task {
	tasks := make([]*Task, 0, len(urls))
	for _, u := range urls {
		tasks = append(tasks, NewTask(u))
	}

	return tasks
}

func (t *Task) ID() string { return t.id }

func (t *Task) URL() string { return t.url }

func (t *Task) Status() TaskStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.status
}

// Snapshot 返回当前状态的副本。
func (t *Task) Snapshot() TaskInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return TaskInfo{
		ID:         t.id,
		URL:        t.url,
		Status:     t.status,
		Percent:    t.percent,
		OutputFile: t.outputFile,
		Error:      t.errMsg,
		Attempts:   t.attempts,
		StartedAt:  t.startedAt,
		FinishedAt: t.finishedAt,
	}
}

// Reset 恢复为等待状态并清空上一次运行的结果。
func (t *Task) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status = StatusWaiting
	t.percent = 0
	t.outputFile = ""
	t.errMsg = ""
	t.attempts = 0
	t.startedAt = time.Time{}
	t.finishedAt = time.Time{}
}

// SetRunning 标记一次新的下载尝试开始。
func (t *Task) SetRunning() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status = StatusRunning
	t.errMsg = ""
	t.attempts++
	if t.startedAt.IsZero() {
		t.startedAt = time.Now()
	}
}

func (t *Task) SetCompleted() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status = StatusCompleted
	t.percent = 100
	t.finishedAt = time.Now()
}

func (t *Task) SetError(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status = StatusError
	t.errMsg = msg
	t.finishedAt = time.Now()
}

func (t *Task) SetStopped() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status = StatusStopped
	t.finishedAt = time.Now()
}

// UpdateProgress 更新进度百分比，超出 0..100 的值会被截断。
func (t *Task) UpdateProgress(percent float64) {
	percent = max(0, min(100, percent))

	t.mu.Lock()
	defer t.mu.Unlock()

	t.percent = percent
}

func (t *Task) SetOutputFile(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.outputFile = path
}
