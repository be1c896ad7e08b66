package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
)

// PlanDraft is the JSON shape the provider must return when drafting or
// adjusting a weekly plan.
type PlanDraft struct {
	Priorities        []string      `json:"priorities"`
	Excluded          []string      `json:"excluded"`
	TradeOffRationale string        `json:"trade_off_rationale"`
	Assumptions       []string      `json:"assumptions"`
	DailyActions      []ActionDraft `json:"daily_actions"`
}

// ActionDraft is one day's entry inside a PlanDraft.
type ActionDraft struct {
	Day                 string `json:"day"`
	Action              string `json:"action"`
	TimeEstimateMinutes int    `json:"time_estimate_minutes"`
	DetailedPlan        string `json:"detailed_plan,omitempty"`
}

// ReviewDraft is the JSON shape the provider must return when narrating
// a reality check. The numeric verdict is computed locally, never asked
// of the provider.
type ReviewDraft struct {
	DeviationSummary string  `json:"deviation_summary"`
	ConfidenceScore  float64 `json:"confidence_score"`
}

// maxPriorities caps the priorities list; anything past it is dropped.
const maxPriorities = 5

// minPriorities is the floor below which a draft is rejected as unusable.
const minPriorities = 3

func validatePlanDraft(d PlanDraft) error {
	if len(d.Priorities) < minPriorities {
		return fmt.Errorf("expected at least %d priorities, got %d", minPriorities, len(d.Priorities))
	}
	return validateActionDrafts(d.DailyActions)
}

// validateAdjustmentDraft is looser than validatePlanDraft: an adjustment
// may cover only the remaining days and may omit the priorities list, in
// which case the existing one is kept.
func validateAdjustmentDraft(d PlanDraft) error {
	if len(d.DailyActions) == 0 {
		return fmt.Errorf("daily_actions is empty")
	}
	return validateActionDrafts(d.DailyActions)
}

func validateActionDrafts(actions []ActionDraft) error {
	seen := make(map[string]bool, len(actions))
	for _, a := range actions {
		if !domain.ValidWeekdays[domain.Weekday(a.Day)] {
			return fmt.Errorf("unknown day label %q", a.Day)
		}
		if seen[a.Day] {
			return fmt.Errorf("duplicate day label %q", a.Day)
		}
		seen[a.Day] = true
		if strings.TrimSpace(a.Action) == "" {
			return fmt.Errorf("empty action for %s", a.Day)
		}
		if a.TimeEstimateMinutes < 0 {
			return fmt.Errorf("negative time estimate for %s", a.Day)
		}
	}
	return nil
}

func validateReviewDraft(d ReviewDraft) error {
	if strings.TrimSpace(d.DeviationSummary) == "" {
		return fmt.Errorf("deviation_summary is empty")
	}
	if d.ConfidenceScore < 0 || d.ConfidenceScore > 1 {
		return fmt.Errorf("confidence_score %v outside [0,1]", d.ConfidenceScore)
	}
	return nil
}

// draftActions converts provider drafts into domain actions. New actions
// always start not completed.
func draftActions(drafts []ActionDraft) []domain.DailyAction {
	actions := make([]domain.DailyAction, len(drafts))
	for i, d := range drafts {
		actions[i] = domain.DailyAction{
			Day:                 domain.Weekday(d.Day),
			Action:              d.Action,
			TimeEstimateMinutes: d.TimeEstimateMinutes,
			DetailedPlan:        d.DetailedPlan,
		}
	}
	return actions
}
