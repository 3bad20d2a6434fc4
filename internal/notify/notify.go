// Package notify delivers fire-and-forget messages about generated plans.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"basegraph.app/growthplan/internal/model"
)

// Dispatcher sends n to destination. The result only reports success; callers never
// act on it beyond logging.
type Dispatcher interface {
	Send(ctx context.Context, n model.Notification, destination string) bool
}

// ForPlan builds the plan_generated notification. Tight plans (under an hour a day or no
// budget at all) are sent with high priority.
func ForPlan(plan *model.Plan, planID *int64, now time.Time) model.Notification {
	c := plan.Constraints
	priority := model.NotificationPriorityNormal
	if c.TimePerDayHours < 1 || c.MonthlyBudget == 0 {
		priority = model.NotificationPriorityHigh
	}

	text := fmt.Sprintf("New %s plan for %s: %d methods, %d line items, %d workers over %d days.",
		c.GrowthGoal, c.BusinessType, len(plan.Methods), len(plan.BudgetLineItems), c.WorkerCount, c.TargetSpanDays)
	if planID != nil {
		text = fmt.Sprintf("%s Plan id %d.", text, *planID)
	}

	return model.Notification{
		ID:          uuid.NewString(),
		Category:    model.NotificationCategoryPlanGenerated,
		MessageText: text,
		Priority:    priority,
		Timestamp:   now.UTC(),
	}
}

type logDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher writes notifications to the log and always succeeds.
func NewLogDispatcher(logger *slog.Logger) Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &logDispatcher{logger: logger}
}

func (d *logDispatcher) Send(ctx context.Context, n model.Notification, destination string) bool {
	d.logger.InfoContext(ctx, "notification",
		"notification_id", n.ID,
		"category", n.Category,
		"priority", n.Priority,
		"destination", destination,
		"message", n.MessageText)
	return true
}

type noopDispatcher struct{}

// NewNoopDispatcher drops every notification.
func NewNoopDispatcher() Dispatcher {
	return noopDispatcher{}
}

func (noopDispatcher) Send(context.Context, model.Notification, string) bool {
	return true
}
