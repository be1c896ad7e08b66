package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/llm"
	"github.com/alexanderramin/praxis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLLMClient struct {
	response string
	err      error
	lastReq  llm.GenerateRequest
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "llama3.2"}, nil
}

func (m *mockLLMClient) Available(_ context.Context) bool { return m.err == nil }

func validPlanDraft() PlanDraft {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	draft := PlanDraft{
		Priorities:        []string{"Strength base", "Mobility", "Sleep hygiene"},
		Excluded:          []string{"Extra cardio", "New program experiments"},
		TradeOffRationale: "Cut volume to protect recovery after a sub-80% week.",
		Assumptions:       []string{"No travel this week"},
	}
	for i, d := range days {
		draft.DailyActions = append(draft.DailyActions, ActionDraft{
			Day:                 d,
			Action:              "Session " + d,
			TimeEstimateMinutes: 30 + 5*i,
			DetailedPlan:        "Warm-up, main block, cool-down",
		})
	}
	return draft
}

func planJSON(t *testing.T, draft PlanDraft) string {
	t.Helper()
	data, err := json.Marshal(draft)
	require.NoError(t, err)
	return string(data)
}

func testPlanRequest() PlanRequest {
	start, _ := time.Parse("2006-01-02", "2025-10-13")
	return PlanRequest{
		Profile:   *testutil.NewTestProfile(),
		WeekID:    "2025-W42",
		StartDate: start,
	}
}

func TestPlanner_DraftPlan_Valid(t *testing.T) {
	client := &mockLLMClient{response: planJSON(t, validPlanDraft())}
	svc := NewPlanner(client, llm.NoopObserver{})

	plan, err := svc.DraftPlan(context.Background(), testPlanRequest())

	require.NoError(t, err)
	assert.Equal(t, "2025-W42", plan.WeekID)
	assert.Equal(t, "2025-10-13", plan.StartDate)
	assert.Equal(t, 1, plan.Version)
	assert.Len(t, plan.DailyActions, 7)
	assert.NoError(t, domain.ValidateDailyCoverage(plan.DailyActions))
	for _, a := range plan.DailyActions {
		assert.False(t, a.Completed, "a fresh plan has no completed days")
	}
	assert.Equal(t, llm.TaskPlan, client.lastReq.Task)
}

func TestPlanner_DraftPlan_FencedResponse(t *testing.T) {
	client := &mockLLMClient{response: "```json\n" + planJSON(t, validPlanDraft()) + "\n```"}
	svc := NewPlanner(client, llm.NoopObserver{})

	plan, err := svc.DraftPlan(context.Background(), testPlanRequest())
	require.NoError(t, err)
	assert.Len(t, plan.DailyActions, 7)
}

func TestPlanner_DraftPlan_TruncatesPriorities(t *testing.T) {
	draft := validPlanDraft()
	draft.Priorities = []string{"one", "two", "three", "four", "five", "six", "seven"}
	client := &mockLLMClient{response: planJSON(t, draft)}
	svc := NewPlanner(client, llm.NoopObserver{})

	plan, err := svc.DraftPlan(context.Background(), testPlanRequest())
	require.NoError(t, err)
	assert.Len(t, plan.Priorities, 5)
	assert.Equal(t, "five", plan.Priorities[4])
}

func TestPlanner_DraftPlan_TooFewPriorities(t *testing.T) {
	draft := validPlanDraft()
	draft.Priorities = []string{"only one"}
	client := &mockLLMClient{response: planJSON(t, draft)}
	svc := NewPlanner(client, llm.NoopObserver{})

	_, err := svc.DraftPlan(context.Background(), testPlanRequest())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, OpGeneratePlan, genErr.Op)
	assert.NotEmpty(t, genErr.Raw)
}

func TestPlanner_DraftPlan_MissingDay(t *testing.T) {
	draft := validPlanDraft()
	draft.DailyActions = draft.DailyActions[:6] // drop Sunday
	client := &mockLLMClient{response: planJSON(t, draft)}
	svc := NewPlanner(client, llm.NoopObserver{})

	_, err := svc.DraftPlan(context.Background(), testPlanRequest())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Err.Error(), "Sun")
}

func TestPlanner_DraftPlan_DuplicateDay(t *testing.T) {
	draft := validPlanDraft()
	draft.DailyActions[6].Day = "Mon"
	client := &mockLLMClient{response: planJSON(t, draft)}
	svc := NewPlanner(client, llm.NoopObserver{})

	_, err := svc.DraftPlan(context.Background(), testPlanRequest())
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestPlanner_DraftPlan_ProviderError(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrUnavailable}
	svc := NewPlanner(client, llm.NoopObserver{})

	_, err := svc.DraftPlan(context.Background(), testPlanRequest())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.True(t, errors.Is(err, llm.ErrUnavailable))
	assert.Empty(t, genErr.Raw, "no raw text when the call itself failed")
}

func TestPlanner_DraftPlan_NotJSON(t *testing.T) {
	client := &mockLLMClient{response: "Sorry, I cannot plan this week."}
	svc := NewPlanner(client, llm.NoopObserver{})

	_, err := svc.DraftPlan(context.Background(), testPlanRequest())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "Sorry, I cannot plan this week.", genErr.Raw)
}

func TestPlanner_PromptCarriesProfileAndHistory(t *testing.T) {
	rate := 0.55
	req := testPlanRequest()
	req.History = []domain.HistoryEntry{{
		WeekID:              "2025-W41",
		FinalCompletionRate: &rate,
		DeviationReport:     &domain.DeviationReport{DeviationSummary: "Dropped both weekend sessions"},
	}}

	client := &mockLLMClient{response: planJSON(t, validPlanDraft())}
	svc := NewPlanner(client, llm.NoopObserver{})

	_, err := svc.DraftPlan(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, client.lastReq.UserPrompt, req.Profile.Objective.Description)
	assert.Contains(t, client.lastReq.UserPrompt, "2025-W41: 55% completion")
	assert.Contains(t, client.lastReq.UserPrompt, "Dropped both weekend sessions")
}
