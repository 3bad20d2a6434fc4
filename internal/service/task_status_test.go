package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/growthplan/internal/model"
	"basegraph.app/growthplan/internal/planner"
	"basegraph.app/growthplan/internal/service"
	"basegraph.app/growthplan/internal/store"
)

var _ = Describe("TaskStatusService", func() {
	var (
		svc      service.TaskStatusService
		plans    *mockPlanStore
		statuses *mockTaskStatusStore
		ctx      context.Context
		plan     *model.Plan
	)

	BeforeEach(func() {
		ctx = context.Background()
		plan = planner.New().Build(bakeryInput)
		record := plan.Record(9, nil, time.Now())

		plans = &mockPlanStore{
			getByIDFn: func(_ context.Context, id int64) (*model.PlanRecord, error) {
				if id != 9 {
					return nil, store.ErrNotFound
				}
				return &record, nil
			},
		}
		statuses = &mockTaskStatusStore{}
		svc = service.NewTaskStatusService(planner.New(), plans, statuses)
	})

	Describe("Set", func() {
		It("should store the status of a scheduled task", func() {
			taskID := plan.TaskIDs()[0]
			var gotKey string
			var gotStatus model.TaskStatus
			statuses.setFn = func(_ context.Context, planID int64, id string, status model.TaskStatus) error {
				gotKey = store.TaskStatusKey(planID, id)
				gotStatus = status
				return nil
			}

			err := svc.Set(ctx, 9, taskID, model.TaskStatusDone)
			Expect(err).NotTo(HaveOccurred())
			Expect(gotKey).To(Equal("plan:9:task:" + taskID + ":status"))
			Expect(gotStatus).To(Equal(model.TaskStatusDone))
		})

		It("should reject unknown statuses", func() {
			err := svc.Set(ctx, 9, plan.TaskIDs()[0], model.TaskStatus("finished"))
			Expect(err).To(MatchError(service.ErrInvalidTaskStatus))
		})

		It("should reject tasks that are not in the plan", func() {
			err := svc.Set(ctx, 9, "sat-1-nothing", model.TaskStatusDone)
			Expect(err).To(MatchError(service.ErrTaskNotFound))
		})

		It("should return ErrPlanNotFound for unknown plans", func() {
			err := svc.Set(ctx, 10, plan.TaskIDs()[0], model.TaskStatusDone)
			Expect(err).To(MatchError(service.ErrPlanNotFound))
		})

		It("should wrap store failures", func() {
			statuses.setFn = func(context.Context, int64, string, model.TaskStatus) error {
				return errors.New("redis down")
			}

			err := svc.Set(ctx, 9, plan.TaskIDs()[0], model.TaskStatusSkipped)
			Expect(err).To(MatchError(ContainSubstring("setting task status")))
		})
	})

	Describe("List", func() {
		It("should report every scheduled task in day order", func() {
			first := plan.TaskIDs()[0]
			statuses.getFn = func(_ context.Context, _ int64, id string) (model.TaskStatus, error) {
				if id == first {
					return model.TaskStatusInProgress, nil
				}
				return model.TaskStatusPending, nil
			}

			progress, err := svc.List(ctx, 9)
			Expect(err).NotTo(HaveOccurred())
			Expect(progress).To(HaveLen(len(plan.TaskIDs())))
			Expect(progress[0]).To(Equal(model.TaskProgress{TaskID: first, Status: model.TaskStatusInProgress}))
			for i, p := range progress[1:] {
				Expect(p.TaskID).To(Equal(plan.TaskIDs()[i+1]))
				Expect(p.Status).To(Equal(model.TaskStatusPending))
			}
		})

		It("should work against the key-value backed store", func() {
			kvStatuses := store.NewTaskStatusStore(store.NewMemoryKV())
			svc = service.NewTaskStatusService(planner.New(), plans, kvStatuses)
			taskID := plan.TaskIDs()[1]

			Expect(svc.Set(ctx, 9, taskID, model.TaskStatusDone)).To(Succeed())

			progress, err := svc.List(ctx, 9)
			Expect(err).NotTo(HaveOccurred())
			Expect(progress[1].Status).To(Equal(model.TaskStatusDone))
			Expect(progress[0].Status).To(Equal(model.TaskStatusPending))
		})

		It("should return ErrPlanNotFound for unknown plans", func() {
			_, err := svc.List(ctx, 11)
			Expect(err).To(MatchError(service.ErrPlanNotFound))
		})
	})
})
