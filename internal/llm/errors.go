package llm

import "errors"

var (
	// ErrUnavailable indicates the configured provider is unreachable.
	ErrUnavailable = errors.New("llm provider unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrNotConfigured indicates the provider requires credentials that
	// have not been supplied.
	ErrNotConfigured = errors.New("llm provider not configured")
)
