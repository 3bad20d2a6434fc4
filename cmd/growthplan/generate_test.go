package main

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"basegraph.app/growthplan/internal/model"
	"basegraph.app/growthplan/internal/planner"
)

var _ = Describe("generate", func() {
	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		root := newRootCmd()
		root.SetOut(&out)
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(args)
		err := root.Execute()
		return out.String(), err
	}

	bakeryArgs := []string{"generate", "--business", "Bakery", "--budget", "1000", "--time", "3", "--workers", "2", "--goal", "sales"}

	It("prints the same plan as the engine as JSON", func() {
		out, err := run(append(bakeryArgs, "--format", "json")...)
		Expect(err).NotTo(HaveOccurred())

		var plan model.Plan
		Expect(json.Unmarshal([]byte(out), &plan)).To(Succeed())

		expected := planner.New().Build(planner.RawConstraints{
			BusinessType:    "Bakery",
			MonthlyBudget:   "1000",
			TimePerDayHours: "3",
			WorkerCount:     "2",
			GrowthGoal:      "sales",
		})
		Expect(plan.Budget).To(Equal(expected.Budget))
		Expect(plan.TaskIDs()).To(Equal(expected.TaskIDs()))
	})

	It("prints YAML", func() {
		out, err := run(append(bakeryArgs, "-o", "yaml")...)
		Expect(err).NotTo(HaveOccurred())

		var doc map[string]any
		Expect(yaml.Unmarshal([]byte(out), &doc)).To(Succeed())
		Expect(doc).To(HaveKeyWithValue("category", "bakery"))
		Expect(doc).To(HaveKey("budget_line_items"))
	})

	It("prints readable text by default", func() {
		out, err := run(bakeryArgs...)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Growth plan: Bakery"))
		Expect(out).To(ContainSubstring("Weekly plan"))
	})

	It("falls back to defaults for unparseable input", func() {
		out, err := run("generate", "--budget", "lots", "--workers", "none", "--goal", "fame", "-o", "json")
		Expect(err).NotTo(HaveOccurred())

		var plan model.Plan
		Expect(json.Unmarshal([]byte(out), &plan)).To(Succeed())
		Expect(plan.Constraints.MonthlyBudget).To(BeZero())
		Expect(plan.Constraints.WorkerCount).To(Equal(1))
		Expect(plan.Constraints.GrowthGoal).To(Equal(model.GrowthGoalVisibility))
	})

	It("rejects unknown formats", func() {
		_, err := run("generate", "--format", "xml")
		Expect(err).To(MatchError(ContainSubstring("unknown format")))
	})
})

var _ = Describe("schema", func() {
	It("prints the plan schema", func() {
		var out bytes.Buffer
		root := newRootCmd()
		root.SetOut(&out)
		root.SetArgs([]string{"schema"})
		Expect(root.Execute()).To(Succeed())

		var schema map[string]any
		Expect(json.Unmarshal(out.Bytes(), &schema)).To(Succeed())
		Expect(schema["properties"]).To(HaveKey("methods"))
	})

	It("prints the request schema with --request", func() {
		var out bytes.Buffer
		root := newRootCmd()
		root.SetOut(&out)
		root.SetArgs([]string{"schema", "--request"})
		Expect(root.Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("monthly_budget"))
	})
})
