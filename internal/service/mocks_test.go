package service_test

import (
	"context"
	"sync"

	"basegraph.app/growthplan/internal/model"
	"basegraph.app/growthplan/internal/notify"
	"basegraph.app/growthplan/internal/store"
)

type mockPlanStore struct {
	createFn     func(ctx context.Context, record *model.PlanRecord) error
	getByIDFn    func(ctx context.Context, id int64) (*model.PlanRecord, error)
	listByUserFn func(ctx context.Context, userID string, limit int32) ([]model.PlanRecord, error)
}

var _ store.PlanStore = (*mockPlanStore)(nil)

func (m *mockPlanStore) Create(ctx context.Context, record *model.PlanRecord) error {
	if m.createFn != nil {
		return m.createFn(ctx, record)
	}
	return nil
}

func (m *mockPlanStore) GetByID(ctx context.Context, id int64) (*model.PlanRecord, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockPlanStore) ListByUser(ctx context.Context, userID string, limit int32) ([]model.PlanRecord, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID, limit)
	}
	return nil, nil
}

type mockTaskStatusStore struct {
	getFn func(ctx context.Context, planID int64, taskID string) (model.TaskStatus, error)
	setFn func(ctx context.Context, planID int64, taskID string, status model.TaskStatus) error
}

var _ store.TaskStatusStore = (*mockTaskStatusStore)(nil)

func (m *mockTaskStatusStore) Get(ctx context.Context, planID int64, taskID string) (model.TaskStatus, error) {
	if m.getFn != nil {
		return m.getFn(ctx, planID, taskID)
	}
	return model.TaskStatusPending, nil
}

func (m *mockTaskStatusStore) Set(ctx context.Context, planID int64, taskID string, status model.TaskStatus) error {
	if m.setFn != nil {
		return m.setFn(ctx, planID, taskID, status)
	}
	return nil
}

type sentNotification struct {
	notification model.Notification
	destination  string
	ctxErr       error
}

// mockDispatcher records every send. Sends arrive from a background goroutine.
type mockDispatcher struct {
	mu     sync.Mutex
	sent   []sentNotification
	result bool
}

var _ notify.Dispatcher = (*mockDispatcher)(nil)

func (m *mockDispatcher) Send(ctx context.Context, n model.Notification, destination string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentNotification{notification: n, destination: destination, ctxErr: ctx.Err()})
	return m.result
}

func (m *mockDispatcher) Sent() []sentNotification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentNotification(nil), m.sent...)
}
