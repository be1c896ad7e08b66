package domain

import (
	"fmt"
	"time"
)

// Objective is the primary goal for the coaching period.
type Objective struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	DurationWeeks int       `json:"duration_weeks"`
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
}

// HardConstraints are limits a plan must never violate.
type HardConstraints struct {
	AvailableHoursPerWeek float64  `json:"available_hours_per_week"`
	FixedCommitments      []string `json:"fixed_commitments"`
	PhysicalConstraints   []string `json:"physical_constraints"`
}

// NonNegotiables are immovable rules supplied by the user.
type NonNegotiables struct {
	MinimumTrainingFrequency int      `json:"minimum_training_frequency"`
	RestDays                 []string `json:"rest_days"`
	OtherRules               []string `json:"other_rules"`
}

// Profile is the singleton user profile. Re-submitting overwrites it and
// bumps the objective version.
type Profile struct {
	Objective       Objective       `json:"objective"`
	HardConstraints HardConstraints `json:"hard_constraints"`
	NonNegotiables  NonNegotiables  `json:"non_negotiables"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ObjectiveID formats the stable objective identifier for a given version.
func ObjectiveID(version int) string {
	return fmt.Sprintf("obj_%03d", version)
}
