package model

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusSkipped    TaskStatus = "skipped"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusDone, TaskStatusSkipped:
		return true
	default:
		return false
	}
}

// TaskProgress pairs a scheduled task with its tracked status.
type TaskProgress struct {
	TaskID string     `json:"task_id"`
	Status TaskStatus `json:"status"`
}
