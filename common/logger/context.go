package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are added to every log line written with a context that carries them.
type LogFields struct {
	PlanID    *int64  // growth plan id, once persisted
	UserID    *string // owner of the plan
	Goal      *string // visibility, sales or expansion
	TaskID    *string // weekly task id for status updates
	RequestID *string // echoed in the trace header of the HTTP response
	Component string  // e.g. "growthplan.service.plan"
}

// WithLogFields merges fields into ctx. Newer non-empty values win.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.PlanID != nil {
		result.PlanID = next.PlanID
	}
	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.Goal != nil {
		result.Goal = next.Goal
	}
	if next.TaskID != nil {
		result.TaskID = next.TaskID
	}
	if next.RequestID != nil {
		result.RequestID = next.RequestID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr returns a pointer to v, for inline LogFields literals.
func Ptr[T any](v T) *T {
	return &v
}
