package domain

import (
	"fmt"
	"time"
)

type Weekday string

const (
	Mon Weekday = "Mon"
	Tue Weekday = "Tue"
	Wed Weekday = "Wed"
	Thu Weekday = "Thu"
	Fri Weekday = "Fri"
	Sat Weekday = "Sat"
	Sun Weekday = "Sun"
)

// WeekdayLabels is the canonical day ordering for a weekly plan.
var WeekdayLabels = []Weekday{Mon, Tue, Wed, Thu, Fri, Sat, Sun}

// ValidWeekdays is the set of accepted day label strings.
var ValidWeekdays = map[Weekday]bool{
	Mon: true, Tue: true, Wed: true, Thu: true,
	Fri: true, Sat: true, Sun: true,
}

// DailyAction is the single primary action planned for one day.
// The completed flag and actual notes are user-set via reality checks.
type DailyAction struct {
	Day                 Weekday `json:"day"`
	Action              string  `json:"action"`
	TimeEstimateMinutes int     `json:"time_estimate_minutes"`
	DetailedPlan        string  `json:"detailed_plan,omitempty"`
	Completed           bool    `json:"completed"`
	ActualNotes         string  `json:"actual_notes,omitempty"`
}

// WeeklyPlan is one week's execution plan. Identity is the week ID; an
// adjustment overwrites the stored plan for that week and bumps Version.
type WeeklyPlan struct {
	WeekID            string        `json:"week_id"`
	StartDate         string        `json:"start_date"` // YYYY-MM-DD
	Version           int           `json:"version"`
	Priorities        []string      `json:"priorities"`
	Excluded          []string      `json:"excluded"`
	TradeOffRationale string        `json:"trade_off_rationale"`
	Assumptions       []string      `json:"assumptions"`
	DailyActions      []DailyAction `json:"daily_actions"`
	CreatedAt         time.Time     `json:"created_at"`
}

// ActionFor returns the plan's action for the given day, or nil.
func (p *WeeklyPlan) ActionFor(day Weekday) *DailyAction {
	for i := range p.DailyActions {
		if p.DailyActions[i].Day == day {
			return &p.DailyActions[i]
		}
	}
	return nil
}

// CompletedDays returns the actions already marked completed, keyed by day.
func (p *WeeklyPlan) CompletedDays() map[Weekday]DailyAction {
	out := make(map[Weekday]DailyAction)
	for _, a := range p.DailyActions {
		if a.Completed {
			out[a.Day] = a
		}
	}
	return out
}

// CloneActions returns a copy of the plan's daily actions.
func (p *WeeklyPlan) CloneActions() []DailyAction {
	out := make([]DailyAction, len(p.DailyActions))
	copy(out, p.DailyActions)
	return out
}

// ValidateDailyCoverage checks that actions hold exactly one entry per
// weekday label, all seven labels present.
func ValidateDailyCoverage(actions []DailyAction) error {
	if len(actions) != len(WeekdayLabels) {
		return fmt.Errorf("expected %d daily actions, got %d", len(WeekdayLabels), len(actions))
	}
	seen := make(map[Weekday]bool, len(actions))
	for _, a := range actions {
		if !ValidWeekdays[a.Day] {
			return fmt.Errorf("unknown day label %q", a.Day)
		}
		if seen[a.Day] {
			return fmt.Errorf("duplicate day label %q", a.Day)
		}
		seen[a.Day] = true
	}
	for _, d := range WeekdayLabels {
		if !seen[d] {
			return fmt.Errorf("missing day label %q", d)
		}
	}
	return nil
}
