package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"basegraph.app/growthplan/internal/http/dto"
	"basegraph.app/growthplan/internal/service"
)

type PlanHandler struct {
	planService service.PlanService
}

func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := bindPlanRequest(c)
	if !ok {
		return
	}

	plan, err := h.planService.Preview(ctx, req.Raw())
	if err != nil {
		slog.ErrorContext(ctx, "failed to preview plan", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, ok := bindPlanRequest(c)
	if !ok {
		return
	}

	result, err := h.planService.Generate(ctx, service.GenerateParams{
		Raw:           req.Raw(),
		UserID:        req.UserID,
		Persist:       true,
		NotifyAddress: req.NotifyAddress,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create plan"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPlanResponse(result.Record, result.Plan))
}

func (h *PlanHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	planID, ok := dto.ParseID(c.Param("plan_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	record, plan, err := h.planService.Get(ctx, planID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get plan", "error", err, "plan_id", planID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get plan"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPlanResponse(record, plan))
}

func (h *PlanHandler) ListByUser(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("user_id")

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		var err error
		limit, err = strconv.ParseInt(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
	}

	records, err := h.planService.ListByUser(ctx, userID, int32(limit))
	if err != nil {
		slog.ErrorContext(ctx, "failed to list plans", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plans"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPlansResponse{Plans: records})
}

// bindPlanRequest treats an empty body as a request for an all-defaults plan.
func bindPlanRequest(c *gin.Context) (dto.PlanRequest, bool) {
	var req dto.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, false
	}
	return req, true
}
