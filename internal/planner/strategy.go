package planner

import "basegraph.app/growthplan/internal/model"

// gate decides whether an optional method, line item or task applies to a run.
type gate func(c model.Constraints, f model.Flags) bool

func always(model.Constraints, model.Flags) bool { return true }

func socialOnly(_ model.Constraints, f model.Flags) bool { return f.CanDoSocialMedia }

func paidOnly(_ model.Constraints, f model.Flags) bool { return !f.LowBudget }

func paidSocial(_ model.Constraints, f model.Flags) bool { return !f.LowBudget && f.CanDoSocialMedia }

func fullTimeOnly(_ model.Constraints, f model.Flags) bool { return !f.LimitedTime }

func paidFullTime(_ model.Constraints, f model.Flags) bool { return !f.LowBudget && !f.LimitedTime }

func budgetAtLeast(min float64) gate {
	return func(c model.Constraints, _ model.Flags) bool { return c.MonthlyBudget >= min }
}

// lineItemSpec declares a candidate spend. Allocation is min(fraction of remaining, ceiling).
type lineItemSpec struct {
	key      string
	item     string
	unitCost float64
	fraction float64
	ceiling  float64
	purpose  string
	gate     gate
}

// methodSpec declares a growth method. owner is a 1-based worker slot, clamped to the
// worker count. lineItem links the method to a line item key for its cost.
type methodSpec struct {
	description string
	how         string
	owner       int
	lineItem    string
	location    string
	timing      string
	gate        gate
}

// weeklyTemplate holds the Monday..Friday task texts. The three-or-more variant is the pair
// variant plus thirdRow on every day and the team sync on Friday.
type weeklyTemplate struct {
	solo     [5][]string
	pair     [5][]string
	thirdRow [5]string
}

type roleSpec struct {
	role  string
	tasks []string
}

type gatedText struct {
	text string
	gate gate
}

type classificationSpec struct {
	automated  []gatedText
	aiAssisted []gatedText
	humanOnly  []gatedText
}

type phaseSpec struct {
	name       string
	focus      string
	milestones func(c model.Constraints, f model.Flags) []string
}

type strategy struct {
	goal              model.GrowthGoal
	title             string
	aim               string
	methods           []methodSpec
	lineItems         []lineItemSpec
	weekly            weeklyTemplate
	roles             [3]roleSpec
	classification    classificationSpec
	phases            [4]phaseSpec
	collaborationIdea func(f model.Flags) string
}

const teamSyncTask = "All workers: 15-minute Friday sync to review what worked this week and pick next week's focus"

// selectStrategy returns the branch for goal. Branches never share content.
func selectStrategy(goal model.GrowthGoal) *strategy {
	switch goal {
	case model.GrowthGoalSales:
		return salesStrategy
	case model.GrowthGoalExpansion:
		return expansionStrategy
	default:
		return visibilityStrategy
	}
}

func filterGated(items []gatedText, c model.Constraints, f model.Flags) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.gate(c, f) {
			out = append(out, item.text)
		}
	}
	return out
}

func (s *strategy) taskClassification(c model.Constraints, f model.Flags) model.TaskClassification {
	return model.TaskClassification{
		Automated:  filterGated(s.classification.automated, c, f),
		AIAssisted: filterGated(s.classification.aiAssisted, c, f),
		HumanOnly:  filterGated(s.classification.humanOnly, c, f),
	}
}
