package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Reason returns a short explanation of a provider failure for the person
// waiting on a study set, or "" when err carries no provider error.
func Reason(err error) string {
	var r interface{ reason() string }
	if errors.As(err, &r) {
		return r.reason()
	}
	return ""
}

// ErrRateLimit: the provider answered 429. RetryAfter is zero when the
// provider gave no hint.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error  { return e.Err }
func (e *ErrRateLimit) reason() string { return "the AI service is busy, wait a minute" }

// ErrProviderUnavailable: transport failure or a 5xx answer.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "LLM provider unavailable"
	}
	return "LLM provider unavailable: " + e.Err.Error()
}

func (e *ErrProviderUnavailable) Unwrap() error  { return e.Err }
func (e *ErrProviderUnavailable) reason() string { return "the AI service could not be reached" }

// ErrInvalidResponse: the output was not JSON or broke the study-set
// schema. Content holds the raw output for the request log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error  { return e.Err }
func (e *ErrInvalidResponse) reason() string { return "the AI answer was not a usable study set" }

// ErrMaxTokensExceeded: the output hit MaxTokens before the JSON closed.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return fmt.Sprintf("LLM response truncated after %d bytes: max tokens exceeded", len(e.Content))
}

func (e *ErrMaxTokensExceeded) reason() string {
	return "the study set was too long, try fewer questions"
}
