package studygen

import "fmt"

// Validator checks a generated study set. Validators may repair the content
// in place (backfilling ids or timers) instead of rejecting it.
type Validator interface {
	// Name returns a short identifier, e.g. "structural".
	Name() string

	// Validate returns nil when c is acceptable.
	Validate(c *Content, s Settings) *ValidationError
}

// ValidationError describes why a study set was rejected.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
