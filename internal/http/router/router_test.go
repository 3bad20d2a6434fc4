package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/growthplan/common/id"
	"basegraph.app/growthplan/internal/http/middleware"
	"basegraph.app/growthplan/internal/http/router"
	"basegraph.app/growthplan/internal/model"
	"basegraph.app/growthplan/internal/notify"
	"basegraph.app/growthplan/internal/service"
	"basegraph.app/growthplan/internal/store"
)

var _ = Describe("SetupRoutes", func() {
	var engine *gin.Engine

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())
		gin.SetMode(gin.TestMode)

		services := service.NewServices(
			store.NewMemoryPlanStore(),
			store.NewTaskStatusStore(store.NewMemoryKV()),
			notify.NewNoopDispatcher(),
			service.PlanServiceConfig{},
		)
		engine = gin.New()
		engine.Use(middleware.RequestID("X-Trace-Id"), middleware.Recovery(), middleware.Logger())
		router.SetupRoutes(engine, services, router.RouterConfig{
			ReadinessChecks: map[string]router.ReadinessCheck{
				"memory": func(context.Context) error { return nil },
			},
		})
	})

	It("serves health", func() {
		w := do(http.MethodGet, "/health", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("X-Trace-Id")).NotTo(BeEmpty())
	})

	It("reports ready when every check passes", func() {
		Expect(do(http.MethodGet, "/ready", "").Code).To(Equal(http.StatusOK))
	})

	It("reports unavailable when a check fails", func() {
		engine = gin.New()
		router.SetupRoutes(engine, service.NewServices(
			store.NewMemoryPlanStore(),
			store.NewTaskStatusStore(store.NewMemoryKV()),
			notify.NewNoopDispatcher(),
			service.PlanServiceConfig{},
		), router.RouterConfig{
			ReadinessChecks: map[string]router.ReadinessCheck{
				"postgres": func(context.Context) error { return errors.New("connection refused") },
			},
		})

		w := do(http.MethodGet, "/ready", "")
		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		Expect(w.Body.String()).To(ContainSubstring("postgres"))
	})

	It("echoes the caller's trace header", func() {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Trace-Id", "trace-123")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		Expect(w.Header().Get("X-Trace-Id")).To(Equal("trace-123"))
	})

	It("creates a plan and tracks its tasks end to end", func() {
		w := do(http.MethodPost, "/api/v1/plans", `{"business_type":"bakery","monthly_budget":"1000","time_per_day_hours":3,"worker_count":2,"growth_goal":"sales","user_id":"owner-1"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))

		var created struct {
			ID   string     `json:"id"`
			Plan model.Plan `json:"plan"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &created)).To(Succeed())
		Expect(created.ID).NotTo(BeEmpty())
		taskID := created.Plan.DayPlans[0].Tasks[0].ID

		fetched := do(http.MethodGet, "/api/v1/plans/"+created.ID, "")
		Expect(fetched.Code).To(Equal(http.StatusOK))
		var got struct {
			Plan model.Plan `json:"plan"`
		}
		Expect(json.Unmarshal(fetched.Body.Bytes(), &got)).To(Succeed())
		Expect(got.Plan).To(Equal(created.Plan))

		listed := do(http.MethodGet, "/api/v1/users/owner-1/plans", "")
		Expect(listed.Code).To(Equal(http.StatusOK))
		Expect(listed.Body.String()).To(ContainSubstring(created.ID))

		set := do(http.MethodPut, "/api/v1/plans/"+created.ID+"/tasks/"+taskID+"/status", `{"status":"done"}`)
		Expect(set.Code).To(Equal(http.StatusOK))

		status := do(http.MethodGet, "/api/v1/plans/"+created.ID+"/tasks/status", "")
		Expect(status.Code).To(Equal(http.StatusOK))
		var progress struct {
			Tasks []model.TaskProgress `json:"tasks"`
		}
		Expect(json.Unmarshal(status.Body.Bytes(), &progress)).To(Succeed())
		Expect(progress.Tasks[0]).To(Equal(model.TaskProgress{TaskID: taskID, Status: model.TaskStatusDone}))
		Expect(progress.Tasks[1].Status).To(Equal(model.TaskStatusPending))
	})

	It("returns 404 for a task outside the plan", func() {
		w := do(http.MethodPost, "/api/v1/plans", `{}`)
		var created struct {
			ID string `json:"id"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &created)).To(Succeed())

		set := do(http.MethodPut, "/api/v1/plans/"+created.ID+"/tasks/sat-9-nope/status", `{"status":"done"}`)
		Expect(set.Code).To(Equal(http.StatusNotFound))
	})

	It("publishes the plan schema", func() {
		w := do(http.MethodGet, "/api/v1/schema/plan", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var schema map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &schema)).To(Succeed())
		Expect(schema["type"]).To(Equal("object"))
		Expect(schema["properties"]).To(HaveKey("budget_line_items"))
		Expect(schema["properties"]).To(HaveKey("day_plans"))
	})

	It("describes flexible numeric inputs in the request schema", func() {
		w := do(http.MethodGet, "/api/v1/schema/plan-request", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"oneOf"`))
	})

	It("recovers from panics", func() {
		engine.GET("/boom", func(*gin.Context) { panic("boom") })
		Expect(do(http.MethodGet, "/boom", "").Code).To(Equal(http.StatusInternalServerError))
	})
})
