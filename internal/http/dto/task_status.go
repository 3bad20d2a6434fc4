package dto

import "basegraph.app/growthplan/internal/model"

type SetTaskStatusRequest struct {
	Status model.TaskStatus `json:"status" binding:"required,oneof=pending in_progress done skipped"`
}

type TaskStatusResponse struct {
	PlanID int64                `json:"plan_id,string"`
	Tasks  []model.TaskProgress `json:"tasks"`
}
