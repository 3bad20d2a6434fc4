package service

import (
	"basegraph.app/growthplan/internal/notify"
	"basegraph.app/growthplan/internal/planner"
	"basegraph.app/growthplan/internal/store"
)

type Services struct {
	planner    planner.Planner
	plans      store.PlanStore
	statuses   store.TaskStatusStore
	dispatcher notify.Dispatcher
	cfg        PlanServiceConfig
}

func NewServices(plans store.PlanStore, statuses store.TaskStatusStore, dispatcher notify.Dispatcher, cfg PlanServiceConfig) *Services {
	return &Services{
		planner:    planner.New(),
		plans:      plans,
		statuses:   statuses,
		dispatcher: dispatcher,
		cfg:        cfg,
	}
}

func (s *Services) Plans() PlanService {
	return NewPlanService(s.planner, s.plans, s.dispatcher, s.cfg)
}

func (s *Services) TaskStatuses() TaskStatusService {
	return NewTaskStatusService(s.planner, s.plans, s.statuses)
}
