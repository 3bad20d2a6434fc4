package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"basegraph.app/growthplan/internal/model"
	"basegraph.app/growthplan/internal/planner"
	"basegraph.app/growthplan/internal/render"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type generateOptions struct {
	raw    planner.RawConstraints
	format string
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a growth plan and print it",
		Long: `Build a growth plan from the given constraints. Values that do not parse fall back to
defaults, so generate never fails on input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan := planner.New().Build(opts.raw)
			slog.DebugContext(cmd.Context(), "plan built",
				"category", plan.Category,
				"goal", plan.Constraints.GrowthGoal,
				"tasks", len(plan.TaskIDs()))
			return writePlan(cmd.OutOrStdout(), plan, opts.format)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.raw.BusinessType, "business", "", "business type, e.g. \"bakery\" or \"phone repair\"")
	f.StringVar(&opts.raw.MonthlyBudget, "budget", "", "monthly budget")
	f.StringVar(&opts.raw.TimePerDayHours, "time", "", "hours available per day")
	f.StringVar(&opts.raw.WorkerCount, "workers", "", "number of people working on the plan")
	f.StringVar(&opts.raw.GrowthGoal, "goal", "", "visibility, sales or expansion")
	f.StringVar(&opts.raw.TargetSpanDays, "span", "", "days the plan covers")
	f.StringVarP(&opts.format, "format", "o", formatText, "output format: text, json or yaml")

	return cmd
}

func writePlan(w io.Writer, plan *model.Plan, format string) error {
	switch format {
	case formatText:
		return render.Text(w, plan)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
