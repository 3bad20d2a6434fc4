package model

// WeeklyTaskCategory classifies a scheduled task by how much of it can be prepared up front.
type WeeklyTaskCategory string

const (
	WeeklyTaskAIPrepared          WeeklyTaskCategory = "AI-Prepared"
	WeeklyTaskHumanReviewRequired WeeklyTaskCategory = "Human-Review-Required"
	WeeklyTaskManualAction        WeeklyTaskCategory = "Manual-Action"
)

// Plan is the complete output of one planning run. A new run always produces a new Plan.
type Plan struct {
	Constraints           Constraints        `json:"constraints" yaml:"constraints"`
	Category              BusinessCategory   `json:"category" yaml:"category"`
	Flags                 Flags              `json:"flags" yaml:"flags"`
	BusinessSummary       string             `json:"business_summary" yaml:"business_summary"`
	SelectedGoal          string             `json:"selected_goal" yaml:"selected_goal"`
	Methods               []Action           `json:"methods" yaml:"methods"`
	Budget                BudgetSummary      `json:"budget" yaml:"budget"`
	BudgetLineItems       []BudgetLineItem   `json:"budget_line_items" yaml:"budget_line_items"`
	WorkerAssignments     []WorkerAssignment `json:"worker_assignments" yaml:"worker_assignments"`
	DayPlans              []DayPlan          `json:"day_plans" yaml:"day_plans"`
	TimePhases            []TimePhase        `json:"time_phases" yaml:"time_phases"`
	TaskClassification    TaskClassification `json:"task_classification" yaml:"task_classification"`
	CollaborationIdeas    []string           `json:"collaboration_ideas" yaml:"collaboration_ideas"`
	AIContributionSummary string             `json:"ai_contribution_summary" yaml:"ai_contribution_summary"`
	SafetyNote            string             `json:"safety_note" yaml:"safety_note"`
}

// Action is one growth method with who does it, how, when and what it costs.
type Action struct {
	Description string  `json:"description" yaml:"description"`
	How         string  `json:"how" yaml:"how"`
	Owner       string  `json:"owner" yaml:"owner"`
	Cost        float64 `json:"cost" yaml:"cost"`
	Location    *string `json:"location,omitempty" yaml:"location,omitempty"`
	Timing      string  `json:"timing" yaml:"timing"`
}

// BudgetLineItem is one costed row. TotalCost is always Quantity * UnitCost.
type BudgetLineItem struct {
	Key       string  `json:"key" yaml:"key"`
	Item      string  `json:"item" yaml:"item"`
	Quantity  int     `json:"quantity" yaml:"quantity"`
	UnitCost  float64 `json:"unit_cost" yaml:"unit_cost"`
	TotalCost float64 `json:"total_cost" yaml:"total_cost"`
	Ceiling   float64 `json:"ceiling" yaml:"ceiling"`
	Purpose   string  `json:"purpose" yaml:"purpose"`
}

// BudgetSummary totals the allocation. Allocated + Reserve == Total.
type BudgetSummary struct {
	Total        float64   `json:"total" yaml:"total"`
	Allocated    float64   `json:"allocated" yaml:"allocated"`
	Reserve      float64   `json:"reserve" yaml:"reserve"`
	WorkerShares []float64 `json:"worker_shares" yaml:"worker_shares"`
}

type WorkerAssignment struct {
	WorkerLabel     string   `json:"worker_label" yaml:"worker_label"`
	Role            string   `json:"role" yaml:"role"`
	Tasks           []string `json:"tasks" yaml:"tasks"`
	TimePerDayHours float64  `json:"time_per_day_hours" yaml:"time_per_day_hours"`
	BudgetShare     float64  `json:"budget_share" yaml:"budget_share"`
}

type TaskItem struct {
	ID        string             `json:"id" yaml:"id"`
	Text      string             `json:"text" yaml:"text"`
	Category  WeeklyTaskCategory `json:"category" yaml:"category"`
	Reasoning string             `json:"reasoning" yaml:"reasoning"`
	Content   *TaskContent       `json:"content,omitempty" yaml:"content,omitempty"`
}

// TaskContent is optional ready-to-use material attached to a task.
type TaskContent struct {
	Captions  []string `json:"captions,omitempty" yaml:"captions,omitempty"`
	Checklist []string `json:"checklist,omitempty" yaml:"checklist,omitempty"`
}

// DayPlan holds the tasks for one weekday (Monday to Friday).
type DayPlan struct {
	Day   string     `json:"day" yaml:"day"`
	Tasks []TaskItem `json:"tasks" yaml:"tasks"`
}

// TimePhase is one milestone block across the target span, days are 1-based and inclusive.
type TimePhase struct {
	Name       string   `json:"name" yaml:"name"`
	StartDay   int      `json:"start_day" yaml:"start_day"`
	EndDay     int      `json:"end_day" yaml:"end_day"`
	Focus      string   `json:"focus" yaml:"focus"`
	Milestones []string `json:"milestones" yaml:"milestones"`
}

// TaskClassification groups the plan's recurring work by how automatable it is.
type TaskClassification struct {
	Automated  []string `json:"automated" yaml:"automated"`
	AIAssisted []string `json:"ai_assisted" yaml:"ai_assisted"`
	HumanOnly  []string `json:"human_only" yaml:"human_only"`
}

// TaskIDs returns every scheduled task id in day order.
func (p *Plan) TaskIDs() []string {
	ids := make([]string, 0)
	for _, day := range p.DayPlans {
		for _, task := range day.Tasks {
			ids = append(ids, task.ID)
		}
	}
	return ids
}

// HasTask reports whether taskID is scheduled in the weekly plan.
func (p *Plan) HasTask(taskID string) bool {
	for _, day := range p.DayPlans {
		for _, task := range day.Tasks {
			if task.ID == taskID {
				return true
			}
		}
	}
	return false
}
