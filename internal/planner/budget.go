package planner

import (
	"math"

	"basegraph.app/growthplan/internal/model"
)

// SplitBudget divides total across workers in whole currency units. Every worker gets
// floor(total/workers); the remainder (including any cents) goes to the first worker so
// the shares always sum to total. total must be a normalized budget, at most
// maxMonthlyBudget, so its cents fit in an int64.
func SplitBudget(total float64, workers int) []float64 {
	if workers < 1 {
		workers = 1
	}
	cents := toCents(total)
	base := int64(math.Floor(float64(cents) / 100 / float64(workers)))
	shares := make([]float64, workers)
	for i := 1; i < workers; i++ {
		shares[i] = float64(base)
	}
	shares[0] = fromCents(cents - base*100*int64(workers-1))
	return shares
}

// SplitHours divides the daily hours across workers in hundredths of an hour, with the
// remainder going to the first worker.
func SplitHours(total float64, workers int) []float64 {
	if workers < 1 {
		workers = 1
	}
	hundredths := toCents(total)
	base := hundredths / int64(workers)
	hours := make([]float64, workers)
	for i := 1; i < workers; i++ {
		hours[i] = fromCents(base)
	}
	hours[0] = fromCents(hundredths - base*int64(workers-1))
	return hours
}

// allocation is the outcome of costing one branch's line items.
type allocation struct {
	items     []model.BudgetLineItem
	allocated float64
	reserve   float64
}

// allocate costs the gated line items in declared order against a running remaining
// budget, then folds any leftover into the last line item. The fold stops at that item's
// ceiling, so a leftover larger than its headroom is only partly absorbed and the rest is
// reported as reserve rather than pushing the item past its ceiling.
func allocate(specs []lineItemSpec, c model.Constraints, f model.Flags) allocation {
	remaining := c.MonthlyBudget
	items := make([]model.BudgetLineItem, 0, len(specs))

	for _, spec := range specs {
		if !spec.gate(c, f) {
			continue
		}
		alloc := math.Floor(math.Min(spec.fraction*remaining, spec.ceiling))
		qty := int(math.Floor(alloc / spec.unitCost))
		total := float64(qty) * spec.unitCost
		remaining -= total

		items = append(items, model.BudgetLineItem{
			Key:       spec.key,
			Item:      spec.item,
			Quantity:  qty,
			UnitCost:  spec.unitCost,
			TotalCost: total,
			Ceiling:   spec.ceiling,
			Purpose:   spec.purpose,
		})
	}

	if len(items) > 0 && remaining > 0 {
		last := &items[len(items)-1]
		headroom := last.Ceiling - last.TotalCost
		extraUnits := int(math.Floor(math.Min(remaining, headroom) / last.UnitCost))
		if extraUnits > 0 {
			last.Quantity += extraUnits
			last.TotalCost = float64(last.Quantity) * last.UnitCost
			remaining -= float64(extraUnits) * last.UnitCost
		}
	}

	allocated := 0.0
	for _, item := range items {
		allocated += item.TotalCost
	}

	return allocation{
		items:     items,
		allocated: allocated,
		reserve:   fromCents(toCents(c.MonthlyBudget) - toCents(allocated)),
	}
}

// costOf returns the total of the line item with key, or 0 when the method is free or its
// item was gated out.
func (a allocation) costOf(key string) float64 {
	if key == "" {
		return 0
	}
	for _, item := range a.items {
		if item.Key == key {
			return item.TotalCost
		}
	}
	return 0
}

func toCents(v float64) int64 { return int64(math.Round(v * 100)) }

func fromCents(c int64) float64 { return float64(c) / 100 }
