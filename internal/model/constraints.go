package model

// GrowthGoal is the top-level strategy a plan is built for.
type GrowthGoal string

const (
	GrowthGoalVisibility GrowthGoal = "visibility"
	GrowthGoalSales      GrowthGoal = "sales"
	GrowthGoalExpansion  GrowthGoal = "expansion"
)

func (g GrowthGoal) IsValid() bool {
	switch g {
	case GrowthGoalVisibility, GrowthGoalSales, GrowthGoalExpansion:
		return true
	default:
		return false
	}
}

// BusinessCategory is the canonical bucket a free-text business type resolves to.
type BusinessCategory string

const (
	BusinessCategoryBakery     BusinessCategory = "bakery"
	BusinessCategoryRepairShop BusinessCategory = "repair-shop"
	BusinessCategoryCoolDrinks BusinessCategory = "cool-drinks"
	BusinessCategoryOther      BusinessCategory = "other"
)

// Constraints are the normalized inputs of one planning run.
type Constraints struct {
	BusinessType    string     `json:"business_type" yaml:"business_type"`
	MonthlyBudget   float64    `json:"monthly_budget" yaml:"monthly_budget"`
	TimePerDayHours float64    `json:"time_per_day_hours" yaml:"time_per_day_hours"`
	WorkerCount     int        `json:"worker_count" yaml:"worker_count"`
	GrowthGoal      GrowthGoal `json:"growth_goal" yaml:"growth_goal"`
	TargetSpanDays  int        `json:"target_span_days" yaml:"target_span_days"`
}

// Flags are booleans derived from Constraints that gate optional plan content.
type Flags struct {
	LowBudget        bool `json:"low_budget" yaml:"low_budget"`
	LimitedTime      bool `json:"limited_time" yaml:"limited_time"`
	VeryLimitedTime  bool `json:"very_limited_time" yaml:"very_limited_time"`
	CanDoSocialMedia bool `json:"can_do_social_media" yaml:"can_do_social_media"`
}
