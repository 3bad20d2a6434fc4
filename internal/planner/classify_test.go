package planner_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/growthplan/internal/model"
	"basegraph.app/growthplan/internal/planner"
)

var _ = Describe("Classify", func() {
	DescribeTable("business type",
		func(input string, expected model.BusinessCategory) {
			Expect(planner.Classify(input)).To(Equal(expected))
		},
		Entry("bakery", "Bakery", model.BusinessCategoryBakery),
		Entry("bake house", "BAKE house", model.BusinessCategoryBakery),
		Entry("mobile repair", "Mobile repair", model.BusinessCategoryRepairShop),
		Entry("laptop service", "laptop service centre", model.BusinessCategoryRepairShop),
		Entry("cool drinks", "Cool Drinks Corner", model.BusinessCategoryCoolDrinks),
		Entry("beverages", "beverage stall", model.BusinessCategoryCoolDrinks),
		Entry("bakery checked before repair", "bakery and repair", model.BusinessCategoryBakery),
		Entry("repair checked before drinks", "repair of cool boxes", model.BusinessCategoryRepairShop),
		Entry("bakery checked before drinks", "drinks and bakes", model.BusinessCategoryBakery),
		Entry("no keyword", "Flower shop", model.BusinessCategoryOther),
		Entry("empty", "", model.BusinessCategoryOther),
	)
})

var _ = Describe("ClassifyWeeklyTask", func() {
	DescribeTable("task text",
		func(text string, expected model.WeeklyTaskCategory) {
			Expect(planner.ClassifyWeeklyTask(text)).To(Equal(expected))
		},
		Entry("post", "Worker 1: Post the weekend offer", model.WeeklyTaskAIPrepared),
		Entry("draft", "Draft a caption", model.WeeklyTaskAIPrepared),
		Entry("prepared wins over review", "Write a reply to each review", model.WeeklyTaskAIPrepared),
		Entry("review", "Reply to every Google review", model.WeeklyTaskHumanReviewRequired),
		Entry("update", "Update the price list", model.WeeklyTaskHumanReviewRequired),
		Entry("verify", "Verify costs and margin", model.WeeklyTaskHumanReviewRequired),
		Entry("manual", "Hand 20 flyers to neighbours", model.WeeklyTaskManualAction),
	)
})

var _ = Describe("IsSocialMediaTask", func() {
	It("matches channel names case-insensitively", func() {
		Expect(planner.IsSocialMediaTask("Share a story on FACEBOOK")).To(BeTrue())
		Expect(planner.IsSocialMediaTask("Create an Instagram reel")).To(BeTrue())
		Expect(planner.IsSocialMediaTask("Reply on Social Media")).To(BeTrue())
		Expect(planner.IsSocialMediaTask("Hand out flyers")).To(BeFalse())
	})
})
