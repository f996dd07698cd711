package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestReason(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"rate limit", &ErrRateLimit{Err: errors.New("429")}, "busy"},
		{"unavailable", &ErrProviderUnavailable{}, "could not be reached"},
		{"invalid", &ErrInvalidResponse{Err: errors.New("bad")}, "not a usable study set"},
		{"truncated", &ErrMaxTokensExceeded{Content: json.RawMessage(`{"mcqs":[`)}, "fewer questions"},
		{"wrapped", fmt.Errorf("generate: %w", &ErrRateLimit{Err: errors.New("429")}), "busy"},
		{"plain", errors.New("boom"), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reason(tc.err)
			if tc.want == "" {
				if got != "" {
					t.Errorf("Reason = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tc.want) {
				t.Errorf("Reason = %q, want it to mention %q", got, tc.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	rl := &ErrRateLimit{RetryAfter: 2 * time.Second, Err: errors.New("429")}
	if got := rl.Error(); got != "rate limited, retry after 2s: 429" {
		t.Errorf("rate limit = %q", got)
	}
	trunc := &ErrMaxTokensExceeded{Content: json.RawMessage(`{"a":`)}
	if got := trunc.Error(); !strings.Contains(got, "after 5 bytes") {
		t.Errorf("truncated = %q", got)
	}
}
