package intelligence

import (
	"context"
	"time"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/llm"
)

// Reviewer turns a submitted reality check into a deviation report.
//
// The numeric verdict is always computed locally from the raw counts:
// completion rate, whether a deviation occurred, and the recommended
// action. The provider contributes only the narrative summary and the
// realism confidence score, so a provider failure degrades to a
// deterministic summary instead of failing the operation.
type Reviewer interface {
	Review(ctx context.Context, plan domain.WeeklyPlan, check domain.RealityCheck) (*domain.DeviationReport, error)
}

type reviewer struct {
	client   llm.LLMClient
	observer llm.Observer
}

// NewReviewer creates a Reviewer backed by an LLM client.
func NewReviewer(client llm.LLMClient, observer llm.Observer) Reviewer {
	return &reviewer{client: client, observer: observer}
}

func (r *reviewer) Review(ctx context.Context, plan domain.WeeklyPlan, check domain.RealityCheck) (*domain.DeviationReport, error) {
	rate := check.CompletionRate()

	action := domain.ActionMaintain
	if rate < domain.DeviationThreshold || len(check.UnexpectedEvents) > 0 {
		action = domain.ActionAdjust
	}

	draft := r.narrate(ctx, plan, check)

	report := &domain.DeviationReport{
		WeekID:            check.WeekID,
		DeviationDetected: action == domain.ActionAdjust,
		CompletionRate:    rate,
		DeviationSummary:  draft.DeviationSummary,
		ConfidenceScore:   draft.ConfidenceScore,
		RecommendedAction: action,
		CreatedAt:         time.Now().UTC(),
	}

	// A week with nothing planned supports no judgment about realism.
	if check.SessionsPlanned <= 0 {
		report.ConfidenceScore = 0
	}

	return report, nil
}

func (r *reviewer) narrate(ctx context.Context, plan domain.WeeklyPlan, check domain.RealityCheck) ReviewDraft {
	resp, err := r.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskReview,
		SystemPrompt: reviewSystemPrompt,
		UserPrompt:   buildReviewUserPrompt(plan, check),
	})
	if err != nil {
		return DeterministicReview(check)
	}

	draft, err := llm.ExtractJSON[ReviewDraft](resp.Text, validateReviewDraft)
	if err != nil {
		return DeterministicReview(check)
	}

	return draft
}
