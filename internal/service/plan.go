package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"basegraph.app/growthplan/common/id"
	"basegraph.app/growthplan/common/logger"
	"basegraph.app/growthplan/internal/model"
	"basegraph.app/growthplan/internal/notify"
	"basegraph.app/growthplan/internal/planner"
	"basegraph.app/growthplan/internal/store"
)

var ErrPlanNotFound = errors.New("plan not found")

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type GenerateParams struct {
	Raw     planner.RawConstraints
	UserID  *string
	Persist bool
	// NotifyAddress overrides the configured default destination.
	NotifyAddress *string
}

type GenerateResult struct {
	Plan   *model.Plan
	Record *model.PlanRecord // nil unless persisted
}

type PlanService interface {
	// Preview runs the engine only: no record is stored and nothing is sent.
	Preview(ctx context.Context, raw planner.RawConstraints) (*model.Plan, error)
	Generate(ctx context.Context, params GenerateParams) (*GenerateResult, error)
	// Get returns the stored record and the plan regenerated from its inputs.
	Get(ctx context.Context, planID int64) (*model.PlanRecord, *model.Plan, error)
	ListByUser(ctx context.Context, userID string, limit int32) ([]model.PlanRecord, error)
}

type PlanServiceConfig struct {
	SimulatedLatency time.Duration
	NotifyTimeout    time.Duration
	DefaultAddress   string
}

type planService struct {
	planner    planner.Planner
	plans      store.PlanStore
	dispatcher notify.Dispatcher
	cfg        PlanServiceConfig
	now        func() time.Time
	newID      func() int64
}

func NewPlanService(p planner.Planner, plans store.PlanStore, dispatcher notify.Dispatcher, cfg PlanServiceConfig) PlanService {
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = 5 * time.Second
	}
	return &planService{
		planner:    p,
		plans:      plans,
		dispatcher: dispatcher,
		cfg:        cfg,
		now:        time.Now,
		newID:      id.New,
	}
}

func (s *planService) Preview(ctx context.Context, raw planner.RawConstraints) (*model.Plan, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}
	return s.planner.Build(raw), nil
}

func (s *planService) Generate(ctx context.Context, params GenerateParams) (*GenerateResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    params.UserID,
		Component: "growthplan.service.plan",
	})
	sc := logger.StartSpan(ctx, "service.plan.generate")
	defer sc.End()
	ctx = sc.Context()

	if err := s.simulateLatency(ctx); err != nil {
		sc.RecordError(err)
		return nil, err
	}

	plan := s.planner.Build(params.Raw)
	sc.Span().SetAttributes(
		attribute.String("plan.category", string(plan.Category)),
		attribute.String("plan.goal", string(plan.Constraints.GrowthGoal)),
		attribute.Int("plan.workers", plan.Constraints.WorkerCount),
	)
	ctx = logger.WithLogFields(ctx, logger.LogFields{Goal: logger.Ptr(string(plan.Constraints.GrowthGoal))})
	result := &GenerateResult{Plan: plan}

	if params.Persist {
		record := plan.Record(s.newID(), params.UserID, s.now())
		ctx = logger.WithLogFields(ctx, logger.LogFields{PlanID: logger.Ptr(record.ID)})

		if err := s.plans.Create(ctx, &record); err != nil {
			slog.ErrorContext(ctx, "failed to persist plan", "error", err)
			sc.RecordError(err)
			return nil, fmt.Errorf("persisting plan: %w", err)
		}
		result.Record = &record
	}

	slog.InfoContext(ctx, "plan generated",
		"category", plan.Category,
		"methods", len(plan.Methods),
		"allocated", plan.Budget.Allocated,
		"persisted", result.Record != nil)

	s.notifyAsync(ctx, result, params.NotifyAddress)
	return result, nil
}

// notifyAsync sends the plan notification on its own goroutine. It outlives the request
// and its outcome is only logged.
func (s *planService) notifyAsync(ctx context.Context, result *GenerateResult, address *string) {
	if s.dispatcher == nil {
		return
	}

	var planID *int64
	if result.Record != nil {
		planID = &result.Record.ID
	}
	n := notify.ForPlan(result.Plan, planID, s.now())
	destination := s.cfg.DefaultAddress
	if address != nil && *address != "" {
		destination = *address
	}

	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.NotifyTimeout)
	go func() {
		defer cancel()
		sc := logger.StartSpan(bg, "notify.send")
		defer sc.End()

		if !s.dispatcher.Send(sc.Context(), n, destination) {
			slog.WarnContext(sc.Context(), "plan notification not delivered", "notification_id", n.ID)
			return
		}
		slog.DebugContext(sc.Context(), "plan notification sent", "notification_id", n.ID)
	}()
}

func (s *planService) simulateLatency(ctx context.Context) error {
	if s.cfg.SimulatedLatency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.cfg.SimulatedLatency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *planService) Get(ctx context.Context, planID int64) (*model.PlanRecord, *model.Plan, error) {
	record, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrPlanNotFound
		}
		return nil, nil, fmt.Errorf("getting plan: %w", err)
	}
	return record, s.planner.BuildFromConstraints(record.Inputs), nil
}

func (s *planService) ListByUser(ctx context.Context, userID string, limit int32) ([]model.PlanRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	records, err := s.plans.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	return records, nil
}
