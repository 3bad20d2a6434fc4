package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/growthplan/internal/http/dto"
	"basegraph.app/growthplan/internal/service"
)

type TaskStatusHandler struct {
	taskStatusService service.TaskStatusService
}

func NewTaskStatusHandler(taskStatusService service.TaskStatusService) *TaskStatusHandler {
	return &TaskStatusHandler{taskStatusService: taskStatusService}
}

func (h *TaskStatusHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	planID, ok := dto.ParseID(c.Param("plan_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	tasks, err := h.taskStatusService.List(ctx, planID)
	if err != nil {
		writeTaskStatusError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskStatusResponse{PlanID: planID, Tasks: tasks})
}

func (h *TaskStatusHandler) Set(c *gin.Context) {
	ctx := c.Request.Context()

	planID, ok := dto.ParseID(c.Param("plan_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	var req dto.SetTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	taskID := c.Param("task_id")
	if err := h.taskStatusService.Set(ctx, planID, taskID, req.Status); err != nil {
		writeTaskStatusError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "status": req.Status})
}

func writeTaskStatusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
	case errors.Is(err, service.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	case errors.Is(err, service.ErrInvalidTaskStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "task status request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process task status"})
	}
}
