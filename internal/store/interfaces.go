package store

import (
	"context"
	"errors"

	"basegraph.app/growthplan/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// PlanStore persists the record projection of generated plans.
type PlanStore interface {
	Create(ctx context.Context, record *model.PlanRecord) error
	GetByID(ctx context.Context, id int64) (*model.PlanRecord, error)
	// ListByUser returns the newest records first.
	ListByUser(ctx context.Context, userID string, limit int32) ([]model.PlanRecord, error)
}

// KV is a string key/value store. Get returns ErrNotFound for missing keys.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// TaskStatusStore tracks progress of weekly tasks. Unset tasks read as pending.
type TaskStatusStore interface {
	Get(ctx context.Context, planID int64, taskID string) (model.TaskStatus, error)
	Set(ctx context.Context, planID int64, taskID string, status model.TaskStatus) error
}
