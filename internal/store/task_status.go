package store

import (
	"context"
	"errors"
	"fmt"

	"basegraph.app/growthplan/internal/model"
)

type taskStatusStore struct {
	kv KV
}

// NewTaskStatusStore keeps one key per task, "plan:<id>:task:<task_id>:status".
func NewTaskStatusStore(kv KV) TaskStatusStore {
	return &taskStatusStore{kv: kv}
}

func TaskStatusKey(planID int64, taskID string) string {
	return fmt.Sprintf("plan:%d:task:%s:status", planID, taskID)
}

func (s *taskStatusStore) Get(ctx context.Context, planID int64, taskID string) (model.TaskStatus, error) {
	v, err := s.kv.Get(ctx, TaskStatusKey(planID, taskID))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.TaskStatusPending, nil
		}
		return "", err
	}

	status := model.TaskStatus(v)
	if !status.IsValid() {
		return model.TaskStatusPending, nil
	}
	return status, nil
}

func (s *taskStatusStore) Set(ctx context.Context, planID int64, taskID string, status model.TaskStatus) error {
	return s.kv.Set(ctx, TaskStatusKey(planID, taskID), string(status))
}
