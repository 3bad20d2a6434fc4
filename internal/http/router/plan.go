package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/growthplan/internal/http/handler"
)

func PlanRouter(rg *gin.RouterGroup, h *handler.PlanHandler, tasks *handler.TaskStatusHandler) {
	rg.POST("/preview", h.Preview)
	rg.POST("", h.Create)
	rg.GET("/:plan_id", h.Get)
	rg.GET("/:plan_id/tasks/status", tasks.List)
	rg.PUT("/:plan_id/tasks/:task_id/status", tasks.Set)
}

func UserRouter(rg *gin.RouterGroup, h *handler.PlanHandler) {
	rg.GET("/:user_id/plans", h.ListByUser)
}

func SchemaRouter(rg *gin.RouterGroup, h *handler.SchemaHandler) {
	rg.GET("/plan", h.Plan)
	rg.GET("/plan-request", h.PlanRequest)
}
