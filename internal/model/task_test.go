package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task := NewTask("https://example.com/v/1")

	assert.Len(t, task.ID(), 36)
	assert.Equal(t, "https://example.com/v/1", task.URL())
	assert.Equal(t, StatusWaiting, task.Status())
	assert.NotEqual(t, task.ID(), NewTask("https://example.com/v/1").ID())
}

func TestNewTasks_KeepsOrder(t *testing.T) {
	tasks := NewTasks([]string{"a", "b", "c"})
	require.Len(t, tasks, 3)
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, tasks[i].URL())
	}
}

func TestTask_Lifecycle(t *testing.T) {
	task := NewTask("https://example.com/v/1")

	task.SetRunning()
	info := task.Snapshot()
	assert.Equal(t, StatusRunning, info.Status)
	assert.Equal(t, 1, info.Attempts)
	assert.False(t, info.StartedAt.IsZero())
	assert.Zero(t, info.Duration())

	task.UpdateProgress(42.5)
	task.SetOutputFile("/tmp/video.mp4")
	assert.InDelta(t, 42.5, task.Snapshot().Percent, 0.001)

	task.SetError("exit status 1")
	task.SetRunning()
	info = task.Snapshot()
	assert.Equal(t, 2, info.Attempts)
	assert.Empty(t, info.Error, "a new attempt clears the previous error")

	task.SetCompleted()
	info = task.Snapshot()
	assert.Equal(t, StatusCompleted, info.Status)
	assert.InDelta(t, 100, info.Percent, 0.001)
	assert.Equal(t, "/tmp/video.mp4", info.OutputFile)
	assert.GreaterOrEqual(t, info.Duration().Nanoseconds(), int64(0))

	task.Reset()
	assert.Equal(t, TaskInfo{ID: task.ID(), URL: task.URL(), Status: StatusWaiting}, task.Snapshot())
}

func TestTask_UpdateProgressClamps(t *testing.T) {
	task := NewTask("u")

	task.UpdateProgress(-3)
	assert.Zero(t, task.Snapshot().Percent)

	task.UpdateProgress(250)
	assert.InDelta(t, 100, task.Snapshot().Percent, 0.001)
}

func TestTask_ConcurrentAccess(t *testing.T) {
	task := NewTask("u")
	task.SetRunning()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			task.UpdateProgress(float64(i))
		}()
		go func() {
			defer wg.Done()
			_ = task.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, StatusRunning, task.Status())
}
