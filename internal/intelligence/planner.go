package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/llm"
	"github.com/alexanderramin/praxis/internal/week"
)

// PlanRequest carries everything the provider needs to draft a week.
type PlanRequest struct {
	Profile   domain.Profile
	History   []domain.HistoryEntry
	WeekID    string
	StartDate time.Time
}

// Planner drafts complete weekly plans from the user profile and recent
// execution history.
type Planner interface {
	// DraftPlan generates a version-1 plan for the requested week.
	// There is no fallback: a provider failure or an unparseable
	// completion surfaces as a *GenerationError.
	DraftPlan(ctx context.Context, req PlanRequest) (*domain.WeeklyPlan, error)
}

type planner struct {
	client   llm.LLMClient
	observer llm.Observer
}

// NewPlanner creates a Planner backed by an LLM client.
func NewPlanner(client llm.LLMClient, observer llm.Observer) Planner {
	return &planner{client: client, observer: observer}
}

func (p *planner) DraftPlan(ctx context.Context, req PlanRequest) (*domain.WeeklyPlan, error) {
	resp, err := p.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   buildPlanUserPrompt(req),
	})
	if err != nil {
		return nil, &GenerationError{Op: OpGeneratePlan, Err: err}
	}

	draft, err := llm.ExtractJSON[PlanDraft](resp.Text, validatePlanDraft)
	if err != nil {
		return nil, &GenerationError{Op: OpGeneratePlan, Raw: resp.Text, Err: err}
	}

	actions := draftActions(draft.DailyActions)
	if err := domain.ValidateDailyCoverage(actions); err != nil {
		return nil, &GenerationError{
			Op:  OpGeneratePlan,
			Raw: resp.Text,
			Err: fmt.Errorf("%w: %v", llm.ErrInvalidOutput, err),
		}
	}

	priorities := draft.Priorities
	if len(priorities) > maxPriorities {
		priorities = priorities[:maxPriorities]
	}

	return &domain.WeeklyPlan{
		WeekID:            req.WeekID,
		StartDate:         week.FormatDate(req.StartDate),
		Version:           1,
		Priorities:        priorities,
		Excluded:          draft.Excluded,
		TradeOffRationale: draft.TradeOffRationale,
		Assumptions:       draft.Assumptions,
		DailyActions:      actions,
		CreatedAt:         time.Now().UTC(),
	}, nil
}
