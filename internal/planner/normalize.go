package planner

import (
	"math"
	"strconv"
	"strings"

	"basegraph.app/growthplan/internal/model"
)

const (
	DefaultBudget         = 0
	DefaultTimePerDay     = 0
	DefaultWorkerCount    = 1
	DefaultTargetSpanDays = 30
	DefaultGrowthGoal     = model.GrowthGoalVisibility
	DefaultBusinessType   = "local business"

	maxHoursPerDay = 24
	maxWorkerCount = 100
	// maxMonthlyBudget keeps every amount representable as int64 cents.
	maxMonthlyBudget = 1_000_000_000_000

	lowBudgetThreshold       = 100
	limitedTimeThreshold     = 2
	veryLimitedTimeThreshold = 1
)

// RawConstraints is one user submission before any parsing. Numeric fields hold whatever
// text the caller received.
type RawConstraints struct {
	BusinessType    string `json:"business_type"`
	MonthlyBudget   string `json:"monthly_budget"`
	TimePerDayHours string `json:"time_per_day_hours"`
	WorkerCount     string `json:"worker_count"`
	GrowthGoal      string `json:"growth_goal"`
	TargetSpanDays  string `json:"target_span_days"`
}

// Normalize coerces raw input into typed constraints. It never fails: anything that
// does not parse falls back to its default.
func Normalize(raw RawConstraints) model.Constraints {
	businessType := strings.TrimSpace(raw.BusinessType)
	if businessType == "" {
		businessType = DefaultBusinessType
	}

	budget := clampBudget(parseNonNegative(raw.MonthlyBudget, DefaultBudget))
	hours := clampHours(parseNonNegative(raw.TimePerDayHours, DefaultTimePerDay))

	workers := parseAtLeastOne(raw.WorkerCount, DefaultWorkerCount)
	if workers > maxWorkerCount {
		workers = maxWorkerCount
	}

	return model.Constraints{
		BusinessType:    businessType,
		MonthlyBudget:   budget,
		TimePerDayHours: hours,
		WorkerCount:     workers,
		GrowthGoal:      parseGoal(raw.GrowthGoal),
		TargetSpanDays:  parseAtLeastOne(raw.TargetSpanDays, DefaultTargetSpanDays),
	}
}

// DeriveFlags computes the booleans that gate optional methods and tasks.
func DeriveFlags(c model.Constraints) model.Flags {
	veryLimited := c.TimePerDayHours < veryLimitedTimeThreshold
	return model.Flags{
		LowBudget:        c.MonthlyBudget < lowBudgetThreshold,
		LimitedTime:      c.TimePerDayHours < limitedTimeThreshold,
		VeryLimitedTime:  veryLimited,
		CanDoSocialMedia: c.TimePerDayHours >= veryLimitedTimeThreshold && c.WorkerCount >= 1 && !veryLimited,
	}
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// clampBudget rounds to cents within [0, maxMonthlyBudget].
func clampBudget(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > maxMonthlyBudget {
		v = maxMonthlyBudget
	}
	return math.Round(v*100) / 100
}

func clampHours(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, maxHoursPerDay)
}

func parseNonNegative(s string, fallback float64) float64 {
	v, ok := parseFloat(s)
	if !ok || v < 0 {
		return fallback
	}
	return v
}

func parseAtLeastOne(s string, fallback int) int {
	v, ok := parseFloat(s)
	if !ok {
		return fallback
	}
	v = math.Floor(v)
	if v < 1 || v > math.MaxInt32 {
		return fallback
	}
	return int(v)
}

func parseGoal(s string) model.GrowthGoal {
	goal := model.GrowthGoal(strings.ToLower(strings.TrimSpace(s)))
	if !goal.IsValid() {
		return DefaultGrowthGoal
	}
	return goal
}
