package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/praxis/internal/domain"
)

func validProfileRequest() ProfileCreateRequest {
	return ProfileCreateRequest{
		ObjectiveDescription:     "Run a marathon under 4 hours",
		DurationWeeks:            12,
		AvailableHoursPerWeek:    8,
		FixedCommitments:         []string{"work 9-18"},
		PhysicalConstraints:      []string{"weak left knee"},
		MinimumTrainingFrequency: 3,
		RestDays:                 []string{"Sun"},
		OtherRules:               []string{"no training after 21:00"},
	}
}

func TestProfileCreateRequest_Valid(t *testing.T) {
	req := validProfileRequest()
	assert.NoError(t, req.Validate())
}

func TestProfileCreateRequest_MissingObjective(t *testing.T) {
	req := validProfileRequest()
	req.ObjectiveDescription = "   "

	err := req.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "objective_description", verr.Field)
}

func TestProfileCreateRequest_ZeroHours(t *testing.T) {
	req := validProfileRequest()
	req.AvailableHoursPerWeek = 0

	err := req.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "available_hours_per_week", verr.Field)
}

func TestProfileCreateRequest_ZeroDuration(t *testing.T) {
	req := validProfileRequest()
	req.DurationWeeks = 0

	err := req.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "duration_weeks", verr.Field)
}

func TestProfileCreateRequest_ProfileConversion(t *testing.T) {
	req := validProfileRequest()
	now := time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)

	profile := req.Profile(3, now)

	assert.Equal(t, "obj_003", profile.Objective.ID)
	assert.Equal(t, 3, profile.Objective.Version)
	assert.Equal(t, "Run a marathon under 4 hours", profile.Objective.Description)
	assert.Equal(t, 12, profile.Objective.DurationWeeks)
	assert.Equal(t, 8.0, profile.HardConstraints.AvailableHoursPerWeek)
	assert.Equal(t, []string{"Sun"}, profile.NonNegotiables.RestDays)
	assert.Equal(t, now, profile.CreatedAt)
	assert.Equal(t, now, profile.UpdatedAt)
}

func TestProfileCreateRequest_NilListsBecomeEmpty(t *testing.T) {
	req := ProfileCreateRequest{
		ObjectiveDescription:  "Learn conversational Spanish",
		DurationWeeks:         8,
		AvailableHoursPerWeek: 5,
	}
	require.NoError(t, req.Validate())

	profile := req.Profile(1, time.Now().UTC())

	assert.NotNil(t, profile.HardConstraints.FixedCommitments)
	assert.Empty(t, profile.HardConstraints.FixedCommitments)
	assert.NotNil(t, profile.NonNegotiables.RestDays)
	assert.NotNil(t, profile.NonNegotiables.OtherRules)
}

func TestRealityCheckRequest_Valid(t *testing.T) {
	req := RealityCheckRequest{
		WeekID:            "2025-W42",
		SessionsCompleted: 2,
		SessionsPlanned:   4,
		EnergyLevel:       "low",
	}
	assert.NoError(t, req.Validate())
}

func TestRealityCheckRequest_MissingWeekID(t *testing.T) {
	req := RealityCheckRequest{EnergyLevel: "moderate"}

	err := req.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "week_id", verr.Field)
}

func TestRealityCheckRequest_NegativeCounts(t *testing.T) {
	req := RealityCheckRequest{WeekID: "2025-W42", SessionsCompleted: -1, EnergyLevel: "moderate"}
	err := req.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "sessions_completed", verr.Field)

	req = RealityCheckRequest{WeekID: "2025-W42", SessionsPlanned: -1, EnergyLevel: "moderate"}
	err = req.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "sessions_planned", verr.Field)
}

func TestRealityCheckRequest_UnknownEnergyLevel(t *testing.T) {
	req := RealityCheckRequest{WeekID: "2025-W42", EnergyLevel: "exhausted"}

	err := req.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "energy_level", verr.Field)
}

func TestRealityCheckRequest_CheckConversion(t *testing.T) {
	now := time.Date(2025, 10, 19, 20, 0, 0, 0, time.UTC)
	req := RealityCheckRequest{
		WeekID:            " 2025-W42 ",
		SessionsCompleted: 2,
		SessionsPlanned:   4,
		EnergyLevel:       "low",
		Notes:             "  rough week  ",
	}

	check := req.Check(now)

	assert.Equal(t, "2025-W42", check.WeekID)
	assert.Equal(t, domain.EnergyLow, check.EnergyLevel)
	assert.Equal(t, "rough week", check.Notes)
	assert.Equal(t, now, check.SubmittedAt)
	assert.NotNil(t, check.UnexpectedEvents)
	assert.Empty(t, check.UnexpectedEvents)
}

func TestAdjustmentRequest_Valid(t *testing.T) {
	req := AdjustmentRequest{WeekID: "2025-W42", Reason: "injured knee on Tuesday"}
	assert.NoError(t, req.Validate())
}

func TestAdjustmentRequest_MissingReason(t *testing.T) {
	req := AdjustmentRequest{WeekID: "2025-W42"}

	err := req.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "reason", verr.Field)
}

func TestValidationError_ErrorString(t *testing.T) {
	err := &ValidationError{Field: "week_id", Message: "week_id is required"}
	assert.Equal(t, "week_id: week_id is required", err.Error())
}

func TestNotFoundError_ErrorString(t *testing.T) {
	err := &NotFoundError{Message: "No plans found"}
	assert.Equal(t, "No plans found", err.Error())
}
