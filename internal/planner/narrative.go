package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"basegraph.app/growthplan/internal/model"
)

type reasoningRule struct {
	keywords []string
	render   func(c model.Constraints, day string) string
}

// Order matters: the first rule with a matching keyword wins.
var reasoningRules = []reasoningRule{
	{
		keywords: []string{"instagram", "facebook", "social media", "reel", "tiktok"},
		render: func(c model.Constraints, day string) string {
			return fmt.Sprintf("With %s a day across %s, a short post on %s keeps %s in front of nearby followers without touching the %s budget.",
				formatHours(c.TimePerDayHours), workerCount(c.WorkerCount), day, c.BusinessType, formatAmount(c.MonthlyBudget))
		},
	},
	{
		keywords: []string{"google", "directory", "listing", "maps"},
		render: func(c model.Constraints, day string) string {
			return fmt.Sprintf("Most customers search before they visit. A complete free listing keeps working for %s on days when only %s is available.",
				c.BusinessType, formatHours(c.TimePerDayHours))
		},
	},
	{
		keywords: []string{"customer", "whatsapp", "call", "flyer", "greet", "message"},
		render: func(c model.Constraints, day string) string {
			return fmt.Sprintf("Talking to people directly is the cheapest channel. On %s, %s can reach regulars in minutes and keep the %s budget for items that need it.",
				day, workerCount(c.WorkerCount), formatAmount(c.MonthlyBudget))
		},
	},
	{
		keywords: []string{"photo"},
		render: func(c model.Constraints, day string) string {
			return fmt.Sprintf("Clear photos make every listing and post work harder. Taking them once on %s saves time over the remaining %d days of the plan.",
				day, c.TargetSpanDays)
		},
	},
	{
		keywords: []string{"review"},
		render: func(c model.Constraints, day string) string {
			return fmt.Sprintf("Reviews earn trust from people who have never visited. Asking at the counter, %s can collect them at no cost against the %s budget.",
				workerCount(c.WorkerCount), formatAmount(c.MonthlyBudget))
		},
	},
	{
		keywords: []string{"offer", "discount", "deal", "combo", "loyalty", "price"},
		render: func(c model.Constraints, day string) string {
			return fmt.Sprintf("A simple offer gives people a reason to buy today. Keep the give-away inside the %s monthly budget and compare %s takings with last week.",
				formatAmount(c.MonthlyBudget), day)
		},
	},
	{
		keywords: []string{"partner", "neighbour", "business", "market", "event"},
		render: func(c model.Constraints, day string) string {
			return fmt.Sprintf("Nearby businesses already serve your customers. One conversation on %s can reach new people for %s with no spend from the %s budget.",
				day, c.BusinessType, formatAmount(c.MonthlyBudget))
		},
	},
	{
		keywords: []string{"research", "competitor", "analy", "compare", "track", "count", "check", "decide", "verify"},
		render: func(c model.Constraints, day string) string {
			return fmt.Sprintf("Looking at what works before spending protects the %s budget. %s on %s is enough for a quick look.",
				formatAmount(c.MonthlyBudget), capitalize(formatHours(math.Min(c.TimePerDayHours, 1))), day)
		},
	},
}

func genericReasoning(c model.Constraints, day string) string {
	return fmt.Sprintf("This keeps %s moving on %s within %s a day, %s and a %s monthly budget.",
		c.BusinessType, day, formatHours(c.TimePerDayHours), workerCount(c.WorkerCount), formatAmount(c.MonthlyBudget))
}

// taskReasoning composes the one-sentence rationale for a scheduled task.
func taskReasoning(text string, c model.Constraints, day string) string {
	lower := strings.ToLower(stripWorkerLabel(text))
	for _, rule := range reasoningRules {
		if containsAny(lower, rule.keywords) {
			return rule.render(c, day)
		}
	}
	return genericReasoning(c, day)
}

func businessSummary(c model.Constraints, f model.Flags, category model.BusinessCategory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) with a monthly budget of %s, %s a day and %s, planning over %d days. %s",
		c.BusinessType, categoryLabels[category], formatAmount(c.MonthlyBudget), formatHours(c.TimePerDayHours),
		workerCount(c.WorkerCount), c.TargetSpanDays, categoryInsights[category])

	if f.LowBudget {
		fmt.Fprintf(&b, " With under %d to spend, the plan leans on free channels first.", lowBudgetThreshold)
	}
	switch {
	case f.VeryLimitedTime:
		b.WriteString(" With less than an hour a day, each day has a single task.")
	case f.LimitedTime:
		b.WriteString(" With less than two hours a day, each day is capped at two tasks.")
	}
	if c.WorkerCount >= 3 {
		fmt.Fprintf(&b, " %d workers can split outreach and finish the week with a short team sync.", c.WorkerCount)
	}
	return b.String()
}

func goalText(s *strategy, c model.Constraints) string {
	return fmt.Sprintf("%s: %s.", s.title, fmt.Sprintf(s.aim, c.BusinessType))
}

func aiContributionSummary(days []model.DayPlan, tc model.TaskClassification) string {
	counts := map[model.WeeklyTaskCategory]int{}
	total := 0
	for _, day := range days {
		for _, task := range day.Tasks {
			counts[task.Category]++
			total++
		}
	}
	return fmt.Sprintf("Of %d scheduled tasks, %d can be prepared up front, %d need a quick human review and %d are done by hand. "+
		"Across the plan, %d tasks can run automatically, %d are AI-assisted drafts and %d stay with people.",
		total, counts[model.WeeklyTaskAIPrepared], counts[model.WeeklyTaskHumanReviewRequired], counts[model.WeeklyTaskManualAction],
		len(tc.Automated), len(tc.AIAssisted), len(tc.HumanOnly))
}

func safetyNote(c model.Constraints, a allocation) string {
	if c.MonthlyBudget == 0 {
		return "No money is committed: every task uses free channels. Prepared drafts are suggestions, so read and adjust them before anything goes public."
	}
	return fmt.Sprintf("Planned spend is %s of the %s budget, leaving %s in reserve. Prepared drafts are suggestions, so read and adjust them before anything goes public.",
		formatAmount(a.allocated), formatAmount(c.MonthlyBudget), formatAmount(a.reserve))
}

// formatAmount prints whole amounts without decimals and anything else to the cent.
func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatHours(h float64) string {
	v := strconv.FormatFloat(h, 'f', -1, 64)
	if h == 1 {
		return v + " hour"
	}
	return v + " hours"
}

func workerCount(n int) string {
	if n == 1 {
		return "1 worker"
	}
	return fmt.Sprintf("%d workers", n)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
