package model

import "time"

// PlanRecord is the persisted projection of a Plan. The full Plan is not stored: it is
// regenerated from Inputs, which is deterministic.
type PlanRecord struct {
	ID                 int64              `json:"id,string"`
	Inputs             Constraints        `json:"inputs"`
	WorkerAssignments  []WorkerAssignment `json:"worker_assignments"`
	CollaborationIdeas []string           `json:"collaboration_ideas"`
	BusinessType       BusinessCategory   `json:"business_type"`
	UserID             *string            `json:"user_id,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

// Record projects p into the persisted shape.
func (p *Plan) Record(id int64, userID *string, createdAt time.Time) PlanRecord {
	assignments := make([]WorkerAssignment, len(p.WorkerAssignments))
	for i, a := range p.WorkerAssignments {
		a.Tasks = append([]string(nil), a.Tasks...)
		assignments[i] = a
	}

	return PlanRecord{
		ID:                 id,
		Inputs:             p.Constraints,
		WorkerAssignments:  assignments,
		CollaborationIdeas: append([]string(nil), p.CollaborationIdeas...),
		BusinessType:       p.Category,
		UserID:             userID,
		CreatedAt:          createdAt,
	}
}
