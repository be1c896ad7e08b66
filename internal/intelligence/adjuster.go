package intelligence

import (
	"context"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/llm"
)

// AdjustRequest carries the mid-week context for a plan rescue.
type AdjustRequest struct {
	Plan             domain.WeeklyPlan
	Profile          domain.Profile
	Reason           string
	RequestedChanges []string
	Report           *domain.DeviationReport // nil when no reality check was run
}

// Adjuster regenerates the remaining days of an in-flight plan.
//
// Days already marked completed are history: they are sent to the
// provider verbatim for context only, and the merged result keeps them
// exactly as submitted even if the provider tried to rewrite them.
type Adjuster interface {
	// AdjustPlan returns a new plan value with Version incremented by
	// one. Provider failures surface as a *GenerationError.
	AdjustPlan(ctx context.Context, req AdjustRequest) (*domain.WeeklyPlan, error)
}

type adjuster struct {
	client   llm.LLMClient
	observer llm.Observer
}

// NewAdjuster creates an Adjuster backed by an LLM client.
func NewAdjuster(client llm.LLMClient, observer llm.Observer) Adjuster {
	return &adjuster{client: client, observer: observer}
}

func (a *adjuster) AdjustPlan(ctx context.Context, req AdjustRequest) (*domain.WeeklyPlan, error) {
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAdjust,
		SystemPrompt: adjustSystemPrompt,
		UserPrompt:   buildAdjustUserPrompt(req),
	})
	if err != nil {
		return nil, &GenerationError{Op: OpAdjustPlan, Err: err}
	}

	draft, err := llm.ExtractJSON[PlanDraft](resp.Text, validateAdjustmentDraft)
	if err != nil {
		return nil, &GenerationError{Op: OpAdjustPlan, Raw: resp.Text, Err: err}
	}

	adjusted := req.Plan
	adjusted.Version = req.Plan.Version + 1

	if len(draft.Priorities) > 0 {
		priorities := draft.Priorities
		if len(priorities) > maxPriorities {
			priorities = priorities[:maxPriorities]
		}
		adjusted.Priorities = priorities
	}
	if len(draft.Excluded) > 0 {
		adjusted.Excluded = draft.Excluded
	}
	if draft.TradeOffRationale != "" {
		adjusted.TradeOffRationale = draft.TradeOffRationale
	}
	if len(draft.Assumptions) > 0 {
		adjusted.Assumptions = draft.Assumptions
	}

	// Replace only incomplete days named in the draft. Completed days
	// pass through untouched from the input plan.
	actions := req.Plan.CloneActions()
	byDay := make(map[domain.Weekday]domain.DailyAction, len(draft.DailyActions))
	for _, d := range draftActions(draft.DailyActions) {
		byDay[d.Day] = d
	}
	for i := range actions {
		if actions[i].Completed {
			continue
		}
		if repl, ok := byDay[actions[i].Day]; ok {
			actions[i] = repl
		}
	}
	adjusted.DailyActions = actions

	return &adjusted, nil
}
