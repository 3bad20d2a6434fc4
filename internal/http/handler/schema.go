package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/growthplan/internal/http/dto"
)

type SchemaHandler struct{}

func NewSchemaHandler() *SchemaHandler {
	return &SchemaHandler{}
}

func (h *SchemaHandler) Plan(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PlanSchema())
}

func (h *SchemaHandler) PlanRequest(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PlanRequestSchema())
}
