package intelligence

import "fmt"

// Operation names reported by GenerationError.
const (
	OpGeneratePlan = "generate_plan"
	OpReviewWeek   = "process_reality_check"
	OpAdjustPlan   = "adjust_plan"
)

// GenerationError reports a failed provider call or an unparseable
// completion. Raw carries the provider text that failed to parse so the
// caller can surface it for diagnostics instead of a silent empty result.
type GenerationError struct {
	Op  string
	Raw string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
