package queue

import "github.com/lwmacct/251207-go-pkg-bulkdl/internal/model"

// Summary 一次运行的结果统计。
type Summary struct {
	Total     int
	Completed int
	Failed    int
	Stopped   int

	// Failures 失败或未完成的任务，保持原顺序。
	Failures []model.TaskInfo
}

// OK 所有任务均已完成。
func (s Summary) OK() bool {
	return s.Completed == s.Total
}

// Summarize 统计 tasks 的最终状态；未结束的任务计为 stopped。
func Summarize(tasks []*model.Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, task := range tasks {
		info := task.Snapshot()
		switch info.Status {
		case model.StatusCompleted:
			s.Completed++

			continue
		case model.StatusError:
			s.Failed++
		default:
			s.Stopped++
		}
		s.Failures = append(s.Failures, info)
	}

	return s
}
