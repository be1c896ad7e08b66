package intelligence

import (
	"fmt"

	"github.com/alexanderramin/praxis/internal/domain"
)

// DeterministicReview builds the local-only narration used when the
// provider is unreachable or returns something unparseable. It states
// only what the raw counts support.
func DeterministicReview(check domain.RealityCheck) ReviewDraft {
	rate := check.CompletionRate()
	return ReviewDraft{
		DeviationSummary: fmt.Sprintf("Completed %d of %d planned sessions (%.0f%% completion rate).",
			check.SessionsCompleted, check.SessionsPlanned, rate*100),
		ConfidenceScore: 0.5,
	}
}
