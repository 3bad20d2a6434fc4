package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/growthplan/internal/http/handler"
	"basegraph.app/growthplan/internal/model"
	"basegraph.app/growthplan/internal/service"
)

var _ = Describe("TaskStatusHandler", func() {
	var (
		router *gin.Engine
		svc    *mockTaskStatusService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockTaskStatusService{}
		h := handler.NewTaskStatusHandler(svc)
		router.GET("/plans/:plan_id/tasks/status", h.List)
		router.PUT("/plans/:plan_id/tasks/:task_id/status", h.Set)
	})

	put := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("lists task progress", func() {
		svc.listFn = func(_ context.Context, planID int64) ([]model.TaskProgress, error) {
			return []model.TaskProgress{{TaskID: "mon-1-x", Status: model.TaskStatusDone}}, nil
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plans/3/tasks/status", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["plan_id"]).To(Equal("3"))
		Expect(resp["tasks"]).To(HaveLen(1))
	})

	It("sets a task status", func() {
		var gotPlan int64
		var gotTask string
		var gotStatus model.TaskStatus
		svc.setFn = func(_ context.Context, planID int64, taskID string, status model.TaskStatus) error {
			gotPlan, gotTask, gotStatus = planID, taskID, status
			return nil
		}

		w := put("/plans/3/tasks/mon-1-x/status", `{"status":"in_progress"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotPlan).To(Equal(int64(3)))
		Expect(gotTask).To(Equal("mon-1-x"))
		Expect(gotStatus).To(Equal(model.TaskStatusInProgress))
	})

	It("rejects statuses outside the known set", func() {
		w := put("/plans/3/tasks/mon-1-x/status", `{"status":"finished"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	DescribeTable("maps service errors",
		func(err error, code int) {
			svc.setFn = func(context.Context, int64, string, model.TaskStatus) error {
				return err
			}
			Expect(put("/plans/3/tasks/mon-1-x/status", `{"status":"done"}`).Code).To(Equal(code))
		},
		Entry("unknown plan", service.ErrPlanNotFound, http.StatusNotFound),
		Entry("unknown task", service.ErrTaskNotFound, http.StatusNotFound),
		Entry("invalid status", fmt.Errorf("%w: %q", service.ErrInvalidTaskStatus, "x"), http.StatusBadRequest),
		Entry("anything else", errors.New("redis down"), http.StatusInternalServerError),
	)
})
