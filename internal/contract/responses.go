package contract

import "github.com/alexanderramin/praxis/internal/domain"

// Statistics summarizes what the state file currently holds.
type Statistics struct {
	ProfileExists       bool `json:"profile_exists"`
	TotalPlans          int  `json:"total_plans"`
	TotalHistoryEntries int  `json:"total_history_entries"`
}

// StatusResponse is the GET /status payload.
type StatusResponse struct {
	ProfileExists bool               `json:"profile_exists"`
	CurrentWeekID string             `json:"current_week_id"`
	ActivePlan    *domain.WeeklyPlan `json:"active_plan"`
	Statistics    Statistics         `json:"statistics"`
}

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status        string `json:"status"`
	LLMProvider   string `json:"llm_provider"`
	LLMConfigured bool   `json:"llm_configured"`
	DataDirectory string `json:"data_directory"`
}

// APIError is the wire shape of every error response body.
type APIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Raw     string `json:"raw,omitempty"`
}

// ErrorResponse wraps an APIError under a stable top-level key.
type ErrorResponse struct {
	Error APIError `json:"error"`
}
