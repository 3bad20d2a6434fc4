package dto

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/invopop/jsonschema"

	"basegraph.app/growthplan/internal/model"
	"basegraph.app/growthplan/internal/planner"
)

// FlexValue accepts a JSON number or string and keeps its text. Anything else decodes to an
// empty value so the planner falls back to its default.
type FlexValue string

func (v *FlexValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FlexValue(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		*v = FlexValue(data)
	default:
		*v = ""
	}
	return nil
}

func (FlexValue) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "number"},
			{Type: "string"},
		},
	}
}

type PlanRequest struct {
	BusinessType    string    `json:"business_type" jsonschema:"description=Free-text business type such as bakery or phone repair"`
	MonthlyBudget   FlexValue `json:"monthly_budget,omitempty" jsonschema:"description=Monthly budget. Defaults to 0"`
	TimePerDayHours FlexValue `json:"time_per_day_hours,omitempty" jsonschema:"description=Hours available per day. Defaults to 0"`
	WorkerCount     FlexValue `json:"worker_count,omitempty" jsonschema:"description=People available. Defaults to 1"`
	GrowthGoal      string    `json:"growth_goal,omitempty" jsonschema:"enum=visibility,enum=sales,enum=expansion"`
	TargetSpanDays  FlexValue `json:"target_span_days,omitempty" jsonschema:"description=Days the plan covers. Defaults to 30"`
	UserID          *string   `json:"user_id,omitempty" binding:"omitempty,max=255"`
	NotifyAddress   *string   `json:"notify_address,omitempty" binding:"omitempty,max=320"`
}

func (r PlanRequest) Raw() planner.RawConstraints {
	return planner.RawConstraints{
		BusinessType:    r.BusinessType,
		MonthlyBudget:   string(r.MonthlyBudget),
		TimePerDayHours: string(r.TimePerDayHours),
		WorkerCount:     string(r.WorkerCount),
		GrowthGoal:      r.GrowthGoal,
		TargetSpanDays:  string(r.TargetSpanDays),
	}
}

type PlanResponse struct {
	ID     int64             `json:"id,string"`
	Plan   *model.Plan       `json:"plan"`
	Record *model.PlanRecord `json:"record"`
}

func ToPlanResponse(record *model.PlanRecord, plan *model.Plan) *PlanResponse {
	return &PlanResponse{ID: record.ID, Plan: plan, Record: record}
}

type ListPlansResponse struct {
	Plans []model.PlanRecord `json:"plans"`
}

// ParseID reads a decimal plan id from a path parameter.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// PlanSchema describes the Plan document returned by the API and the CLI.
func PlanSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(&model.Plan{})
}

func PlanRequestSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(&PlanRequest{})
}
