package planner

import "basegraph.app/growthplan/internal/model"

// phaseIndexes maps a phase count onto the branch's four phase templates. Short plans keep
// the first phase and, when there is room, the closing review.
var phaseIndexes = map[int][]int{
	1: {0},
	2: {0, 3},
	3: {0, 1, 3},
	4: {0, 1, 2, 3},
}

func phaseCount(spanDays int) int {
	switch {
	case spanDays <= 7:
		return 1
	case spanDays <= 14:
		return 2
	case spanDays <= 45:
		return 3
	default:
		return 4
	}
}

// buildPhases splits the target span into contiguous 1-based day ranges.
func buildPhases(s *strategy, c model.Constraints, f model.Flags) []model.TimePhase {
	n := phaseCount(c.TargetSpanDays)
	phases := make([]model.TimePhase, 0, n)
	for k, idx := range phaseIndexes[n] {
		spec := s.phases[idx]
		phases = append(phases, model.TimePhase{
			Name:       spec.name,
			StartDay:   c.TargetSpanDays*k/n + 1,
			EndDay:     c.TargetSpanDays * (k + 1) / n,
			Focus:      spec.focus,
			Milestones: spec.milestones(c, f),
		})
	}
	return phases
}
