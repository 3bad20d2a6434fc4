package model

import "time"

type NotificationCategory string

const (
	NotificationCategoryPlanGenerated NotificationCategory = "plan_generated"
)

type NotificationPriority string

const (
	NotificationPriorityNormal NotificationPriority = "normal"
	NotificationPriorityHigh   NotificationPriority = "high"
)

// Notification is the outbound message sent alongside plan generation.
type Notification struct {
	ID          string               `json:"id"`
	Category    NotificationCategory `json:"category"`
	MessageText string               `json:"message_text"`
	Priority    NotificationPriority `json:"priority"`
	Timestamp   time.Time            `json:"timestamp"`
}
