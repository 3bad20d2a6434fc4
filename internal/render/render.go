// Package render prints a plan for people reading it in a terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"basegraph.app/growthplan/internal/model"
)

// Text writes plan to w as styled text. Colour is used only when w is a terminal.
func Text(w io.Writer, plan *model.Plan) error {
	r := lipgloss.NewRenderer(w)
	st := newStyles(r)

	var b strings.Builder
	b.WriteString(st.title.Render("Growth plan: "+plan.Constraints.BusinessType) + "\n")
	b.WriteString(st.box.Render(plan.BusinessSummary) + "\n")
	b.WriteString(st.label.Render("Goal: ") + plan.SelectedGoal + "\n")

	section(&b, st, "Methods")
	for i, m := range plan.Methods {
		fmt.Fprintf(&b, "%d. %s\n", i+1, st.label.Render(m.Description))
		fmt.Fprintf(&b, "   %s\n", m.How)
		details := []string{"Owner: " + m.Owner, "Cost: " + money(m.Cost), "When: " + m.Timing}
		if m.Location != nil {
			details = append(details, "Where: "+*m.Location)
		}
		b.WriteString("   " + st.subtle.Render(strings.Join(details, " | ")) + "\n")
	}

	section(&b, st, "Budget")
	b.WriteString(budgetTable(r, plan.BudgetLineItems) + "\n")
	fmt.Fprintf(&b, "Total %s, allocated %s, reserve %s\n",
		money(plan.Budget.Total), money(plan.Budget.Allocated), money(plan.Budget.Reserve))

	section(&b, st, "Team")
	for _, a := range plan.WorkerAssignments {
		fmt.Fprintf(&b, "%s (%s) %sh/day, %s\n", st.label.Render(a.WorkerLabel), a.Role,
			strconv.FormatFloat(a.TimePerDayHours, 'f', -1, 64), money(a.BudgetShare))
		for _, t := range a.Tasks {
			b.WriteString("  - " + t + "\n")
		}
	}

	section(&b, st, "Weekly plan")
	for _, day := range plan.DayPlans {
		b.WriteString(st.label.Render(day.Day) + "\n")
		for _, t := range day.Tasks {
			fmt.Fprintf(&b, "  [%s] %s %s\n", t.Category, t.Text, st.subtle.Render("("+t.ID+")"))
			if t.Content != nil {
				for _, c := range t.Content.Captions {
					b.WriteString("      caption: " + c + "\n")
				}
				for _, c := range t.Content.Checklist {
					b.WriteString("      [ ] " + c + "\n")
				}
			}
		}
	}

	section(&b, st, "Phases")
	for _, p := range plan.TimePhases {
		fmt.Fprintf(&b, "%s  days %d-%d: %s\n", st.label.Render(p.Name), p.StartDay, p.EndDay, p.Focus)
		for _, m := range p.Milestones {
			b.WriteString("  * " + m + "\n")
		}
	}

	section(&b, st, "Who does what")
	list(&b, "Automated", plan.TaskClassification.Automated)
	list(&b, "AI-assisted", plan.TaskClassification.AIAssisted)
	list(&b, "Human only", plan.TaskClassification.HumanOnly)

	section(&b, st, "Collaboration ideas")
	for _, idea := range plan.CollaborationIdeas {
		b.WriteString("- " + idea + "\n")
	}

	b.WriteString("\n" + st.subtle.Render(plan.AIContributionSummary) + "\n")
	b.WriteString(st.warning.Render(plan.SafetyNote) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func budgetTable(r *lipgloss.Renderer, items []model.BudgetLineItem) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Item,
			strconv.Itoa(item.Quantity),
			money(item.UnitCost),
			money(item.TotalCost),
			item.Purpose,
		})
	}

	header := r.NewStyle().Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(secondaryColor)).
		Headers("Item", "Qty", "Unit", "Total", "Purpose").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}

func section(b *strings.Builder, st styles, name string) {
	b.WriteString(st.heading.Render(name) + "\n")
}

func list(b *strings.Builder, name string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(name + ":\n")
	for _, item := range items {
		b.WriteString("  - " + item + "\n")
	}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
