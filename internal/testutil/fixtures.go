package testutil

import (
	"time"

	"github.com/alexanderramin/praxis/internal/domain"
)

// Profile options
type ProfileOption func(*domain.Profile)

func WithObjective(desc string) ProfileOption {
	return func(p *domain.Profile) {
		p.Objective.Description = desc
	}
}

func WithDurationWeeks(w int) ProfileOption {
	return func(p *domain.Profile) {
		p.Objective.DurationWeeks = w
	}
}

func WithAvailableHours(h float64) ProfileOption {
	return func(p *domain.Profile) {
		p.HardConstraints.AvailableHoursPerWeek = h
	}
}

func WithObjectiveVersion(v int) ProfileOption {
	return func(p *domain.Profile) {
		p.Objective.Version = v
		p.Objective.ID = domain.ObjectiveID(v)
	}
}

func NewTestProfile(opts ...ProfileOption) *domain.Profile {
	now := time.Now().UTC()
	p := &domain.Profile{
		Objective: domain.Objective{
			ID:            domain.ObjectiveID(1),
			Description:   "Improve strength and conditioning while learning Go",
			DurationWeeks: 12,
			Version:       1,
			CreatedAt:     now,
		},
		HardConstraints: domain.HardConstraints{
			AvailableHoursPerWeek: 10,
			FixedCommitments:      []string{"Work meetings Mon/Wed 9-5"},
			PhysicalConstraints:   []string{"Lower back injury - no heavy deadlifts"},
		},
		NonNegotiables: domain.NonNegotiables{
			MinimumTrainingFrequency: 3,
			RestDays:                 []string{"Sunday"},
			OtherRules:               []string{"No training after 9 PM"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan options
type PlanOption func(*domain.WeeklyPlan)

func WithPlanVersion(v int) PlanOption {
	return func(p *domain.WeeklyPlan) {
		p.Version = v
	}
}

func WithPriorities(priorities ...string) PlanOption {
	return func(p *domain.WeeklyPlan) {
		p.Priorities = priorities
	}
}

func WithStartDate(s string) PlanOption {
	return func(p *domain.WeeklyPlan) {
		p.StartDate = s
	}
}

// WithCompletedDays marks the given days completed with a stock note.
func WithCompletedDays(days ...domain.Weekday) PlanOption {
	return func(p *domain.WeeklyPlan) {
		for _, d := range days {
			if a := p.ActionFor(d); a != nil {
				a.Completed = true
				a.ActualNotes = "done as planned"
			}
		}
	}
}

func NewTestPlan(weekID string, opts ...PlanOption) *domain.WeeklyPlan {
	actions := make([]domain.DailyAction, 0, len(domain.WeekdayLabels))
	for i, d := range domain.WeekdayLabels {
		actions = append(actions, domain.DailyAction{
			Day:                 d,
			Action:              "Session " + string(d),
			TimeEstimateMinutes: 30 + 5*i,
			DetailedPlan:        "Warm-up, main block, cool-down",
		})
	}
	p := &domain.WeeklyPlan{
		WeekID:            weekID,
		StartDate:         "2025-10-13",
		Version:           1,
		Priorities:        []string{"Strength sessions", "Mobility work", "Learning module"},
		Excluded:          []string{"Extra cardio"},
		TradeOffRationale: "Cut cardio to protect recovery",
		Assumptions:       []string{"No travel this week"},
		DailyActions:      actions,
		CreatedAt:         time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RealityCheck options
type CheckOption func(*domain.RealityCheck)

func WithEnergy(level domain.EnergyLevel) CheckOption {
	return func(rc *domain.RealityCheck) {
		rc.EnergyLevel = level
	}
}

func WithUnexpectedEvents(events ...string) CheckOption {
	return func(rc *domain.RealityCheck) {
		rc.UnexpectedEvents = events
	}
}

func WithCheckNotes(notes string) CheckOption {
	return func(rc *domain.RealityCheck) {
		rc.Notes = notes
	}
}

func NewTestCheck(weekID string, completed, planned int, opts ...CheckOption) *domain.RealityCheck {
	rc := &domain.RealityCheck{
		WeekID:            weekID,
		SessionsCompleted: completed,
		SessionsPlanned:   planned,
		EnergyLevel:       domain.EnergyModerate,
		UnexpectedEvents:  []string{},
		SubmittedAt:       time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}
