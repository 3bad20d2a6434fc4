package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"basegraph.app/growthplan/internal/model"
)

type memoryPlanStore struct {
	mu      sync.RWMutex
	records map[int64]model.PlanRecord
}

// NewMemoryPlanStore keeps records in process memory. Used by the CLI and tests.
func NewMemoryPlanStore() PlanStore {
	return &memoryPlanStore{records: make(map[int64]model.PlanRecord)}
}

func (s *memoryPlanStore) Create(_ context.Context, record *model.PlanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[record.ID]; ok {
		return fmt.Errorf("plan %d already exists", record.ID)
	}
	s.records[record.ID] = copyRecord(*record)
	return nil
}

func (s *memoryPlanStore) GetByID(_ context.Context, id int64) (*model.PlanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := copyRecord(record)
	return &out, nil
}

func (s *memoryPlanStore) ListByUser(_ context.Context, userID string, limit int32) ([]model.PlanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]model.PlanRecord, 0)
	for _, r := range s.records {
		if r.UserID != nil && *r.UserID == userID {
			records = append(records, copyRecord(r))
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID > records[j].ID
	})
	if limit > 0 && len(records) > int(limit) {
		records = records[:limit]
	}
	return records, nil
}

func copyRecord(r model.PlanRecord) model.PlanRecord {
	assignments := make([]model.WorkerAssignment, len(r.WorkerAssignments))
	for i, a := range r.WorkerAssignments {
		a.Tasks = append([]string(nil), a.Tasks...)
		assignments[i] = a
	}
	r.WorkerAssignments = assignments
	r.CollaborationIdeas = append([]string(nil), r.CollaborationIdeas...)
	if r.UserID != nil {
		userID := *r.UserID
		r.UserID = &userID
	}
	return r
}

type memoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryKV() KV {
	return &memoryKV{values: make(map[string]string)}
}

func (kv *memoryKV) Get(_ context.Context, key string) (string, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	v, ok := kv.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (kv *memoryKV) Set(_ context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.values[key] = value
	return nil
}
