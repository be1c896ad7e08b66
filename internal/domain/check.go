package domain

import "time"

type EnergyLevel string

const (
	EnergyVeryLow  EnergyLevel = "very_low"
	EnergyLow      EnergyLevel = "low"
	EnergyModerate EnergyLevel = "moderate"
	EnergyHigh     EnergyLevel = "high"
	EnergyVeryHigh EnergyLevel = "very_high"
)

// ValidEnergyLevels is the set of accepted energy level strings.
var ValidEnergyLevels = map[EnergyLevel]bool{
	EnergyVeryLow: true, EnergyLow: true, EnergyModerate: true,
	EnergyHigh: true, EnergyVeryHigh: true,
}

type RecommendedAction string

const (
	ActionAdjust   RecommendedAction = "adjust"
	ActionMaintain RecommendedAction = "maintain"
)

// DeviationThreshold is the completion rate below which a week counts as
// deviated and the recommended action becomes "adjust".
const DeviationThreshold = 0.70

// RealityCheck is a user-submitted record of actual vs planned execution
// for one week. It is never mutated after submission.
type RealityCheck struct {
	WeekID            string      `json:"week_id"`
	SessionsCompleted int         `json:"sessions_completed"`
	SessionsPlanned   int         `json:"sessions_planned"`
	EnergyLevel       EnergyLevel `json:"energy_level"`
	UnexpectedEvents  []string    `json:"unexpected_events"`
	Notes             string      `json:"notes,omitempty"`
	SubmittedAt       time.Time   `json:"submitted_at"`
}

// CompletionRate computes completed/planned clamped to [0,1].
// A zero planned count yields 0, never a division error.
func (rc *RealityCheck) CompletionRate() float64 {
	if rc.SessionsPlanned <= 0 {
		return 0
	}
	rate := float64(rc.SessionsCompleted) / float64(rc.SessionsPlanned)
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}

// DeviationReport is the derived analysis of a reality check against its
// plan. The numeric fields are always computed locally from raw counts;
// only the summary text and confidence score come from the AI provider.
type DeviationReport struct {
	WeekID            string            `json:"week_id"`
	DeviationDetected bool              `json:"deviation_detected"`
	CompletionRate    float64           `json:"completion_rate"`
	DeviationSummary  string            `json:"deviation_summary"`
	ConfidenceScore   float64           `json:"confidence_score"`
	RecommendedAction RecommendedAction `json:"recommended_action"`
	CreatedAt         time.Time         `json:"created_at"`
}
