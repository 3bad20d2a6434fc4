package planner

import (
	"fmt"

	"basegraph.app/growthplan/internal/model"
)

// assignWorkers gives each worker a role, its standing tasks and its share of hours and budget.
// A solo worker covers both lead and second roles; the third and later workers share the
// support role.
func assignWorkers(s *strategy, c model.Constraints, f model.Flags, budgetShares []float64) []model.WorkerAssignment {
	hours := SplitHours(c.TimePerDayHours, c.WorkerCount)
	assignments := make([]model.WorkerAssignment, 0, c.WorkerCount)

	for i := 0; i < c.WorkerCount; i++ {
		var role string
		var tasks []string
		switch {
		case c.WorkerCount == 1:
			role = fmt.Sprintf("%s and %s", s.roles[0].role, lowerFirst(s.roles[1].role))
			tasks = append(append(tasks, s.roles[0].tasks...), s.roles[1].tasks...)
		case i < 2:
			role = s.roles[i].role
			tasks = append(tasks, s.roles[i].tasks...)
		default:
			role = s.roles[2].role
			tasks = append(tasks, s.roles[2].tasks...)
		}

		assignments = append(assignments, model.WorkerAssignment{
			WorkerLabel:     workerLabel(i + 1),
			Role:            role,
			Tasks:           suppressSocial(tasks, f),
			TimePerDayHours: hours[i],
			BudgetShare:     budgetShares[i],
		})
	}
	return assignments
}

// buildMethods renders the branch's gated methods. A method tied to a line item costs what
// that item was allocated.
func buildMethods(s *strategy, c model.Constraints, f model.Flags, alloc allocation) []model.Action {
	methods := make([]model.Action, 0, len(s.methods))
	for _, m := range s.methods {
		if !m.gate(c, f) {
			continue
		}
		owner := m.owner
		if owner > c.WorkerCount {
			owner = c.WorkerCount
		}

		action := model.Action{
			Description: m.description,
			How:         m.how,
			Owner:       workerLabel(owner),
			Cost:        alloc.costOf(m.lineItem),
			Timing:      m.timing,
		}
		if m.location != "" {
			location := m.location
			action.Location = &location
		}
		methods = append(methods, action)
	}
	return methods
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
