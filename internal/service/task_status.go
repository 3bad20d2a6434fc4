package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"basegraph.app/growthplan/common/logger"
	"basegraph.app/growthplan/internal/model"
	"basegraph.app/growthplan/internal/planner"
	"basegraph.app/growthplan/internal/store"
)

var (
	ErrTaskNotFound      = errors.New("task not found in plan")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// TaskStatusService tracks progress on the weekly tasks of a stored plan. Task ids come
// from the plan regenerated from the record's inputs.
type TaskStatusService interface {
	Set(ctx context.Context, planID int64, taskID string, status model.TaskStatus) error
	List(ctx context.Context, planID int64) ([]model.TaskProgress, error)
}

type taskStatusService struct {
	planner  planner.Planner
	plans    store.PlanStore
	statuses store.TaskStatusStore
}

func NewTaskStatusService(p planner.Planner, plans store.PlanStore, statuses store.TaskStatusStore) TaskStatusService {
	return &taskStatusService{planner: p, plans: plans, statuses: statuses}
}

func (s *taskStatusService) Set(ctx context.Context, planID int64, taskID string, status model.TaskStatus) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		PlanID:    &planID,
		TaskID:    &taskID,
		Component: "growthplan.service.task_status",
	})

	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTaskStatus, status)
	}

	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return err
	}
	if !plan.HasTask(taskID) {
		return ErrTaskNotFound
	}

	if err := s.statuses.Set(ctx, planID, taskID, status); err != nil {
		slog.ErrorContext(ctx, "failed to set task status", "error", err, "status", status)
		return fmt.Errorf("setting task status: %w", err)
	}

	slog.InfoContext(ctx, "task status updated", "status", status)
	return nil
}

func (s *taskStatusService) List(ctx context.Context, planID int64) ([]model.TaskProgress, error) {
	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	ids := plan.TaskIDs()
	progress := make([]model.TaskProgress, 0, len(ids))
	for _, taskID := range ids {
		status, err := s.statuses.Get(ctx, planID, taskID)
		if err != nil {
			return nil, fmt.Errorf("getting status of task %s: %w", taskID, err)
		}
		progress = append(progress, model.TaskProgress{TaskID: taskID, Status: status})
	}
	return progress, nil
}

func (s *taskStatusService) loadPlan(ctx context.Context, planID int64) (*model.Plan, error) {
	record, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("getting plan: %w", err)
	}
	return s.planner.BuildFromConstraints(record.Inputs), nil
}
