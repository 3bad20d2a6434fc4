package store

import (
	"basegraph.app/growthplan/core/db/sqlc"
)

// Stores hands out the Postgres-backed stores over one set of queries.
type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Plans() PlanStore {
	return newPlanStore(s.queries)
}
