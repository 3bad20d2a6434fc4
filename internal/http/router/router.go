package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/growthplan/internal/http/handler"
	"basegraph.app/growthplan/internal/service"
)

// ReadinessCheck reports whether a backing dependency can serve requests.
type ReadinessCheck func(ctx context.Context) error

type RouterConfig struct {
	// ReadinessChecks are keyed by dependency name, e.g. "postgres" or "redis".
	ReadinessChecks map[string]ReadinessCheck
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/ready", readiness(cfg.ReadinessChecks))

	v1 := router.Group("/api/v1")
	{
		planHandler := handler.NewPlanHandler(services.Plans())
		taskHandler := handler.NewTaskStatusHandler(services.TaskStatuses())
		PlanRouter(v1.Group("/plans"), planHandler, taskHandler)
		UserRouter(v1.Group("/users"), planHandler)

		SchemaRouter(v1.Group("/schema"), handler.NewSchemaHandler())
	}
}

func readiness(checks map[string]ReadinessCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		failed := map[string]string{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				slog.WarnContext(ctx, "readiness check failed", "dependency", name, "error", err)
				failed[name] = err.Error()
			}
		}

		if len(failed) > 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "failed": failed})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
