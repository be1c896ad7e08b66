package contract

import (
	"strings"
	"time"

	"github.com/alexanderramin/praxis/internal/domain"
)

// ProfileCreateRequest creates or replaces the singleton profile.
// Re-submitting bumps the objective version.
type ProfileCreateRequest struct {
	ObjectiveDescription     string   `json:"objective_description"`
	DurationWeeks            int      `json:"duration_weeks"`
	AvailableHoursPerWeek    float64  `json:"available_hours_per_week"`
	FixedCommitments         []string `json:"fixed_commitments"`
	PhysicalConstraints      []string `json:"physical_constraints"`
	MinimumTrainingFrequency int      `json:"minimum_training_frequency"`
	RestDays                 []string `json:"rest_days"`
	OtherRules               []string `json:"other_rules"`
}

func (r *ProfileCreateRequest) Validate() error {
	if strings.TrimSpace(r.ObjectiveDescription) == "" {
		return &ValidationError{Field: "objective_description", Message: "objective_description is required"}
	}
	if r.DurationWeeks < 1 {
		return &ValidationError{Field: "duration_weeks", Message: "duration_weeks must be at least 1"}
	}
	if r.AvailableHoursPerWeek <= 0 {
		return &ValidationError{Field: "available_hours_per_week", Message: "available_hours_per_week must be greater than zero"}
	}
	if r.MinimumTrainingFrequency < 0 {
		return &ValidationError{Field: "minimum_training_frequency", Message: "minimum_training_frequency must not be negative"}
	}
	return nil
}

// Profile converts the request into a domain profile at the given
// objective version. Both timestamps are set to now; the caller keeps
// the original creation time when updating an existing profile.
func (r *ProfileCreateRequest) Profile(version int, now time.Time) domain.Profile {
	return domain.Profile{
		Objective: domain.Objective{
			ID:            domain.ObjectiveID(version),
			Description:   strings.TrimSpace(r.ObjectiveDescription),
			DurationWeeks: r.DurationWeeks,
			Version:       version,
			CreatedAt:     now,
		},
		HardConstraints: domain.HardConstraints{
			AvailableHoursPerWeek: r.AvailableHoursPerWeek,
			FixedCommitments:      nonNil(r.FixedCommitments),
			PhysicalConstraints:   nonNil(r.PhysicalConstraints),
		},
		NonNegotiables: domain.NonNegotiables{
			MinimumTrainingFrequency: r.MinimumTrainingFrequency,
			RestDays:                 nonNil(r.RestDays),
			OtherRules:               nonNil(r.OtherRules),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PlanGenerateRequest asks for a new weekly plan. WeekStartDate is an
// optional YYYY-MM-DD date; when empty the current week is planned.
type PlanGenerateRequest struct {
	WeekStartDate string `json:"week_start_date,omitempty"`
}

// RealityCheckRequest submits actual execution numbers for one week.
type RealityCheckRequest struct {
	WeekID            string   `json:"week_id"`
	SessionsCompleted int      `json:"sessions_completed"`
	SessionsPlanned   int      `json:"sessions_planned"`
	EnergyLevel       string   `json:"energy_level"`
	UnexpectedEvents  []string `json:"unexpected_events"`
	Notes             string   `json:"notes,omitempty"`
}

func (r *RealityCheckRequest) Validate() error {
	if strings.TrimSpace(r.WeekID) == "" {
		return &ValidationError{Field: "week_id", Message: "week_id is required"}
	}
	if r.SessionsCompleted < 0 {
		return &ValidationError{Field: "sessions_completed", Message: "sessions_completed must not be negative"}
	}
	if r.SessionsPlanned < 0 {
		return &ValidationError{Field: "sessions_planned", Message: "sessions_planned must not be negative"}
	}
	if !domain.ValidEnergyLevels[domain.EnergyLevel(r.EnergyLevel)] {
		return &ValidationError{Field: "energy_level", Message: "energy_level must be one of very_low, low, moderate, high, very_high"}
	}
	return nil
}

// Check converts the request into a domain reality check stamped at now.
func (r *RealityCheckRequest) Check(now time.Time) domain.RealityCheck {
	return domain.RealityCheck{
		WeekID:            strings.TrimSpace(r.WeekID),
		SessionsCompleted: r.SessionsCompleted,
		SessionsPlanned:   r.SessionsPlanned,
		EnergyLevel:       domain.EnergyLevel(r.EnergyLevel),
		UnexpectedEvents:  nonNil(r.UnexpectedEvents),
		Notes:             strings.TrimSpace(r.Notes),
		SubmittedAt:       now,
	}
}

// AdjustmentRequest asks for a mid-week rework of an existing plan.
type AdjustmentRequest struct {
	WeekID           string   `json:"week_id"`
	Reason           string   `json:"reason"`
	RequestedChanges []string `json:"requested_changes,omitempty"`
}

func (r *AdjustmentRequest) Validate() error {
	if strings.TrimSpace(r.WeekID) == "" {
		return &ValidationError{Field: "week_id", Message: "week_id is required"}
	}
	if strings.TrimSpace(r.Reason) == "" {
		return &ValidationError{Field: "reason", Message: "reason is required"}
	}
	return nil
}

// nonNil keeps list fields as empty slices so they serialize as [] and
// never as null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
