package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"basegraph.app/growthplan/core/db/sqlc"
	"basegraph.app/growthplan/internal/model"
)

type planStore struct {
	queries *sqlc.Queries
}

func newPlanStore(queries *sqlc.Queries) PlanStore {
	return &planStore{queries: queries}
}

func (s *planStore) Create(ctx context.Context, record *model.PlanRecord) error {
	params, err := toCreateParams(record)
	if err != nil {
		return err
	}
	row, err := s.queries.CreateGrowthPlan(ctx, params)
	if err != nil {
		return fmt.Errorf("inserting growth plan: %w", err)
	}
	created, err := toPlanRecordModel(row)
	if err != nil {
		return err
	}
	*record = *created
	return nil
}

func (s *planStore) GetByID(ctx context.Context, id int64) (*model.PlanRecord, error) {
	row, err := s.queries.GetGrowthPlan(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPlanRecordModel(row)
}

func (s *planStore) ListByUser(ctx context.Context, userID string, limit int32) ([]model.PlanRecord, error) {
	rows, err := s.queries.ListGrowthPlansByUser(ctx, sqlc.ListGrowthPlansByUserParams{
		UserID: &userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	records := make([]model.PlanRecord, 0, len(rows))
	for _, row := range rows {
		record, err := toPlanRecordModel(row)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, nil
}

func toCreateParams(record *model.PlanRecord) (sqlc.CreateGrowthPlanParams, error) {
	inputs, err := json.Marshal(record.Inputs)
	if err != nil {
		return sqlc.CreateGrowthPlanParams{}, fmt.Errorf("encoding inputs: %w", err)
	}
	assignments, err := json.Marshal(nonNil(record.WorkerAssignments))
	if err != nil {
		return sqlc.CreateGrowthPlanParams{}, fmt.Errorf("encoding worker assignments: %w", err)
	}
	ideas, err := json.Marshal(nonNil(record.CollaborationIdeas))
	if err != nil {
		return sqlc.CreateGrowthPlanParams{}, fmt.Errorf("encoding collaboration ideas: %w", err)
	}

	return sqlc.CreateGrowthPlanParams{
		ID:                 record.ID,
		UserID:             record.UserID,
		BusinessType:       string(record.BusinessType),
		GrowthGoal:         string(record.Inputs.GrowthGoal),
		Inputs:             inputs,
		WorkerAssignments:  assignments,
		CollaborationIdeas: ideas,
		CreatedAt:          pgtype.Timestamptz{Time: record.CreatedAt, Valid: true},
	}, nil
}

func toPlanRecordModel(row sqlc.GrowthPlan) (*model.PlanRecord, error) {
	record := &model.PlanRecord{
		ID:           row.ID,
		UserID:       row.UserID,
		BusinessType: model.BusinessCategory(row.BusinessType),
		CreatedAt:    row.CreatedAt.Time,
	}
	if err := json.Unmarshal(row.Inputs, &record.Inputs); err != nil {
		return nil, fmt.Errorf("decoding inputs of plan %d: %w", row.ID, err)
	}
	if err := json.Unmarshal(row.WorkerAssignments, &record.WorkerAssignments); err != nil {
		return nil, fmt.Errorf("decoding worker assignments of plan %d: %w", row.ID, err)
	}
	if err := json.Unmarshal(row.CollaborationIdeas, &record.CollaborationIdeas); err != nil {
		return nil, fmt.Errorf("decoding collaboration ideas of plan %d: %w", row.ID, err)
	}
	return record, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
