package domain

import "time"

// AdjustmentRecord notes one applied plan adjustment.
type AdjustmentRecord struct {
	ID        string    `json:"id"`
	Version   int       `json:"version"` // plan version the adjustment produced
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry is the append-only record of one week's execution: the plan,
// what actually happened, and any adjustments applied along the way.
type HistoryEntry struct {
	WeekID              string             `json:"week_id"`
	Plan                WeeklyPlan         `json:"plan"`
	RealityCheck        *RealityCheck      `json:"reality_check,omitempty"`
	DeviationReport     *DeviationReport   `json:"deviation_report,omitempty"`
	FinalCompletionRate *float64           `json:"final_completion_rate,omitempty"`
	Adjustments         []AdjustmentRecord `json:"adjustments"`
}
