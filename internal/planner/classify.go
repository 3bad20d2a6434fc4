package planner

import (
	"strings"

	"basegraph.app/growthplan/internal/model"
)

type categoryRule struct {
	keywords []string
	category model.BusinessCategory
}

// Order matters: the first rule with a matching keyword wins.
var categoryRules = []categoryRule{
	{keywords: []string{"bak"}, category: model.BusinessCategoryBakery},
	{keywords: []string{"repair", "mobile", "laptop"}, category: model.BusinessCategoryRepairShop},
	{keywords: []string{"cool", "drink", "beverage"}, category: model.BusinessCategoryCoolDrinks},
}

// Classify maps a free-text business type onto a canonical category.
func Classify(businessType string) model.BusinessCategory {
	text := strings.ToLower(businessType)
	for _, rule := range categoryRules {
		if containsAny(text, rule.keywords) {
			return rule.category
		}
	}
	return model.BusinessCategoryOther
}

var (
	aiPreparedKeywords  = []string{"post", "create", "caption", "generate", "write", "draft"}
	humanReviewKeywords = []string{"review", "approve", "check", "update", "analyze", "optimize", "verify"}
)

// ClassifyWeeklyTask assigns the weekly planner category of a task from its text.
func ClassifyWeeklyTask(text string) model.WeeklyTaskCategory {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, aiPreparedKeywords):
		return model.WeeklyTaskAIPrepared
	case containsAny(lower, humanReviewKeywords):
		return model.WeeklyTaskHumanReviewRequired
	default:
		return model.WeeklyTaskManualAction
	}
}

var socialMediaKeywords = []string{"social media", "instagram", "facebook", "tiktok"}

// IsSocialMediaTask reports whether text mentions a social media channel.
func IsSocialMediaTask(text string) bool {
	return containsAny(strings.ToLower(text), socialMediaKeywords)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
