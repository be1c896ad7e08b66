package contract

import "fmt"

// ValidationError rejects a request body whose field is malformed or
// missing. The field name travels with the error so clients can point
// at the offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a missing profile, plan, report, or history
// entry.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
