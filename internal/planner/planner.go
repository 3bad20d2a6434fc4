// Package planner turns a shop's constraints into a complete growth plan. It is pure and
// deterministic: the same constraints always produce the same plan.
package planner

import "basegraph.app/growthplan/internal/model"

type Planner interface {
	// Build normalizes raw input and assembles a plan from it.
	Build(raw RawConstraints) *model.Plan
	// BuildFromConstraints assembles a plan from already normalized constraints, such as
	// the inputs of a stored record.
	BuildFromConstraints(c model.Constraints) *model.Plan
}

type planner struct{}

func New() Planner {
	return &planner{}
}

func (p *planner) Build(raw RawConstraints) *model.Plan {
	return p.BuildFromConstraints(Normalize(raw))
}

func (p *planner) BuildFromConstraints(c model.Constraints) *model.Plan {
	c.MonthlyBudget = clampBudget(c.MonthlyBudget)
	c.TimePerDayHours = clampHours(c.TimePerDayHours)
	if c.WorkerCount < 1 {
		c.WorkerCount = DefaultWorkerCount
	}
	if c.WorkerCount > maxWorkerCount {
		c.WorkerCount = maxWorkerCount
	}
	if c.TargetSpanDays < 1 {
		c.TargetSpanDays = DefaultTargetSpanDays
	}
	if !c.GrowthGoal.IsValid() {
		c.GrowthGoal = DefaultGrowthGoal
	}

	flags := DeriveFlags(c)
	category := Classify(c.BusinessType)
	s := selectStrategy(c.GrowthGoal)

	shares := SplitBudget(c.MonthlyBudget, c.WorkerCount)
	alloc := allocate(s.lineItems, c, flags)
	days := buildSchedule(s, c, flags, category)
	classification := s.taskClassification(c, flags)

	return &model.Plan{
		Constraints:     c,
		Category:        category,
		Flags:           flags,
		BusinessSummary: businessSummary(c, flags, category),
		SelectedGoal:    goalText(s, c),
		Methods:         buildMethods(s, c, flags, alloc),
		Budget: model.BudgetSummary{
			Total:        c.MonthlyBudget,
			Allocated:    alloc.allocated,
			Reserve:      alloc.reserve,
			WorkerShares: shares,
		},
		BudgetLineItems:       alloc.items,
		WorkerAssignments:     assignWorkers(s, c, flags, shares),
		DayPlans:              days,
		TimePhases:            buildPhases(s, c, flags),
		TaskClassification:    classification,
		CollaborationIdeas:    buildCollaborationIdeas(s, flags, category),
		AIContributionSummary: aiContributionSummary(days, classification),
		SafetyNote:            safetyNote(c, alloc),
	}
}
