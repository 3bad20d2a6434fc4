package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"basegraph.app/growthplan/internal/model"
)

type firestorePlanStore struct {
	client     *firestore.Client
	collection string
}

// NewFirestorePlanStore stores one document per plan, keyed by the decimal plan id.
func NewFirestorePlanStore(client *firestore.Client, collection string) PlanStore {
	return &firestorePlanStore{client: client, collection: collection}
}

type planDocument struct {
	ID                 int64                `firestore:"id"`
	UserID             *string              `firestore:"user_id"`
	BusinessType       string               `firestore:"business_type"`
	GrowthGoal         string               `firestore:"growth_goal"`
	Inputs             constraintsDocument  `firestore:"inputs"`
	WorkerAssignments  []assignmentDocument `firestore:"worker_assignments"`
	CollaborationIdeas []string             `firestore:"collaboration_ideas"`
	CreatedAt          time.Time            `firestore:"created_at"`
}

type constraintsDocument struct {
	BusinessType    string  `firestore:"business_type"`
	MonthlyBudget   float64 `firestore:"monthly_budget"`
	TimePerDayHours float64 `firestore:"time_per_day_hours"`
	WorkerCount     int     `firestore:"worker_count"`
	GrowthGoal      string  `firestore:"growth_goal"`
	TargetSpanDays  int     `firestore:"target_span_days"`
}

type assignmentDocument struct {
	WorkerLabel     string   `firestore:"worker_label"`
	Role            string   `firestore:"role"`
	Tasks           []string `firestore:"tasks"`
	TimePerDayHours float64  `firestore:"time_per_day_hours"`
	BudgetShare     float64  `firestore:"budget_share"`
}

func (s *firestorePlanStore) doc(id int64) *firestore.DocumentRef {
	return s.client.Collection(s.collection).Doc(strconv.FormatInt(id, 10))
}

func (s *firestorePlanStore) Create(ctx context.Context, record *model.PlanRecord) error {
	if _, err := s.doc(record.ID).Create(ctx, toPlanDocument(record)); err != nil {
		return fmt.Errorf("creating plan document: %w", err)
	}
	return nil
}

func (s *firestorePlanStore) GetByID(ctx context.Context, id int64) (*model.PlanRecord, error) {
	snap, err := s.doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading plan document: %w", err)
	}

	var d planDocument
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("decoding plan document %s: %w", snap.Ref.ID, err)
	}
	return fromPlanDocument(d), nil
}

func (s *firestorePlanStore) ListByUser(ctx context.Context, userID string, limit int32) ([]model.PlanRecord, error) {
	snaps, err := s.client.Collection(s.collection).
		Where("user_id", "==", userID).
		OrderBy("created_at", firestore.Desc).
		Limit(int(limit)).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("listing plan documents: %w", err)
	}

	records := make([]model.PlanRecord, 0, len(snaps))
	for _, snap := range snaps {
		var d planDocument
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("decoding plan document %s: %w", snap.Ref.ID, err)
		}
		records = append(records, *fromPlanDocument(d))
	}
	return records, nil
}

func toPlanDocument(r *model.PlanRecord) planDocument {
	assignments := make([]assignmentDocument, 0, len(r.WorkerAssignments))
	for _, a := range r.WorkerAssignments {
		assignments = append(assignments, assignmentDocument{
			WorkerLabel:     a.WorkerLabel,
			Role:            a.Role,
			Tasks:           nonNil(a.Tasks),
			TimePerDayHours: a.TimePerDayHours,
			BudgetShare:     a.BudgetShare,
		})
	}

	return planDocument{
		ID:           r.ID,
		UserID:       r.UserID,
		BusinessType: string(r.BusinessType),
		GrowthGoal:   string(r.Inputs.GrowthGoal),
		Inputs: constraintsDocument{
			BusinessType:    r.Inputs.BusinessType,
			MonthlyBudget:   r.Inputs.MonthlyBudget,
			TimePerDayHours: r.Inputs.TimePerDayHours,
			WorkerCount:     r.Inputs.WorkerCount,
			GrowthGoal:      string(r.Inputs.GrowthGoal),
			TargetSpanDays:  r.Inputs.TargetSpanDays,
		},
		WorkerAssignments:  assignments,
		CollaborationIdeas: nonNil(r.CollaborationIdeas),
		CreatedAt:          r.CreatedAt.UTC(),
	}
}

func fromPlanDocument(d planDocument) *model.PlanRecord {
	assignments := make([]model.WorkerAssignment, 0, len(d.WorkerAssignments))
	for _, a := range d.WorkerAssignments {
		assignments = append(assignments, model.WorkerAssignment{
			WorkerLabel:     a.WorkerLabel,
			Role:            a.Role,
			Tasks:           nonNil(a.Tasks),
			TimePerDayHours: a.TimePerDayHours,
			BudgetShare:     a.BudgetShare,
		})
	}

	return &model.PlanRecord{
		ID: d.ID,
		Inputs: model.Constraints{
			BusinessType:    d.Inputs.BusinessType,
			MonthlyBudget:   d.Inputs.MonthlyBudget,
			TimePerDayHours: d.Inputs.TimePerDayHours,
			WorkerCount:     d.Inputs.WorkerCount,
			GrowthGoal:      model.GrowthGoal(d.Inputs.GrowthGoal),
			TargetSpanDays:  d.Inputs.TargetSpanDays,
		},
		WorkerAssignments:  assignments,
		CollaborationIdeas: nonNil(d.CollaborationIdeas),
		BusinessType:       model.BusinessCategory(d.BusinessType),
		UserID:             d.UserID,
		CreatedAt:          d.CreatedAt,
	}
}
