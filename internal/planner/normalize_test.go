package planner_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/growthplan/internal/model"
	"basegraph.app/growthplan/internal/planner"
)

var _ = Describe("Normalize", func() {
	It("falls back to defaults for empty input", func() {
		c := planner.Normalize(planner.RawConstraints{})

		Expect(c).To(Equal(model.Constraints{
			BusinessType:    planner.DefaultBusinessType,
			MonthlyBudget:   0,
			TimePerDayHours: 0,
			WorkerCount:     1,
			GrowthGoal:      model.GrowthGoalVisibility,
			TargetSpanDays:  30,
		}))
	})

	DescribeTable("budget",
		func(raw string, expected float64) {
			c := planner.Normalize(planner.RawConstraints{MonthlyBudget: raw})
			Expect(c.MonthlyBudget).To(Equal(expected))
		},
		Entry("plain number", "1000", 1000.0),
		Entry("surrounding spaces", " 250 ", 250.0),
		Entry("rounded to cents", "99.999", 100.0),
		Entry("not a number", "lots", 0.0),
		Entry("negative", "-5", 0.0),
		Entry("NaN", "NaN", 0.0),
		Entry("infinity", "Inf", 0.0),
		Entry("capped", "1e17", 1e12),
		Entry("capped far beyond int64 cents", "1e20", 1e12),
	)

	DescribeTable("time per day",
		func(raw string, expected float64) {
			c := planner.Normalize(planner.RawConstraints{TimePerDayHours: raw})
			Expect(c.TimePerDayHours).To(Equal(expected))
		},
		Entry("fractional hours", "1.5", 1.5),
		Entry("clamped to a day", "30", 24.0),
		Entry("missing", "", 0.0),
		Entry("negative", "-2", 0.0),
	)

	DescribeTable("worker count",
		func(raw string, expected int) {
			c := planner.Normalize(planner.RawConstraints{WorkerCount: raw})
			Expect(c.WorkerCount).To(Equal(expected))
		},
		Entry("integer", "3", 3),
		Entry("floored", "2.7", 2),
		Entry("zero", "0", 1),
		Entry("below one after flooring", "0.9", 1),
		Entry("not a number", "two", 1),
		Entry("capped", "500", 100),
	)

	DescribeTable("target span",
		func(raw string, expected int) {
			c := planner.Normalize(planner.RawConstraints{TargetSpanDays: raw})
			Expect(c.TargetSpanDays).To(Equal(expected))
		},
		Entry("integer", "14", 14),
		Entry("zero", "0", 30),
		Entry("missing", "", 30),
	)

	DescribeTable("growth goal",
		func(raw string, expected model.GrowthGoal) {
			c := planner.Normalize(planner.RawConstraints{GrowthGoal: raw})
			Expect(c.GrowthGoal).To(Equal(expected))
		},
		Entry("sales", "sales", model.GrowthGoalSales),
		Entry("mixed case with spaces", " Expansion ", model.GrowthGoalExpansion),
		Entry("unknown", "growth", model.GrowthGoalVisibility),
		Entry("missing", "", model.GrowthGoalVisibility),
	)

	It("trims the business type", func() {
		c := planner.Normalize(planner.RawConstraints{BusinessType: "  Corner Bakery "})
		Expect(c.BusinessType).To(Equal("Corner Bakery"))

		c = planner.Normalize(planner.RawConstraints{BusinessType: "   "})
		Expect(c.BusinessType).To(Equal(planner.DefaultBusinessType))
	})
})

var _ = Describe("DeriveFlags", func() {
	DescribeTable("flags",
		func(budget, hours float64, expected model.Flags) {
			f := planner.DeriveFlags(model.Constraints{MonthlyBudget: budget, TimePerDayHours: hours, WorkerCount: 1})
			Expect(f).To(Equal(expected))
		},
		Entry("comfortable", 500.0, 3.0, model.Flags{CanDoSocialMedia: true}),
		Entry("low budget", 99.99, 3.0, model.Flags{LowBudget: true, CanDoSocialMedia: true}),
		Entry("exactly one hour", 100.0, 1.0, model.Flags{LimitedTime: true, CanDoSocialMedia: true}),
		Entry("under an hour", 100.0, 0.99, model.Flags{LimitedTime: true, VeryLimitedTime: true}),
		Entry("nothing", 0.0, 0.0, model.Flags{LowBudget: true, LimitedTime: true, VeryLimitedTime: true}),
	)
})
