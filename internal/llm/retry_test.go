package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func invalidJSON() MockResponse {
	return MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}}
}

func ok() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"ok":true}`)}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt succeeds", []MockResponse{ok()}, false, 1},
		{"transient then success", []MockResponse{unavailable(), ok()}, false, 2},
		{"rate limited then success", []MockResponse{
			{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}, ok(),
		}, false, 2},
		{"all attempts fail", []MockResponse{unavailable(), unavailable(), unavailable(), ok()}, true, 3},
		{"max tokens not retried", []MockResponse{
			{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{`)}}, ok(),
		}, true, 1},
		{"invalid response retried once", []MockResponse{invalidJSON(), invalidJSON(), ok()}, true, 2},
		{"invalid response then success", []MockResponse{invalidJSON(), ok()}, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, retryConfig())

			resp, err := p.Generate(context.Background(), Request{})
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if string(resp.Content) != `{"ok":true}` {
					t.Fatalf("unexpected content: %s", resp.Content)
				}
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("expected %d calls, got %d", tt.wantCalls, mock.CallCount())
			}
		})
	}
}

func TestRetry_LastErrorSurfaces(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{`)}},
	)
	_, err := WithRetry(mock, retryConfig()).Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T", err)
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), ok())
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected to stop after first attempt, got %d calls", mock.CallCount())
	}
}

func TestRetry_ZeroAttemptsStillCallsOnce(t *testing.T) {
	mock := NewMockProvider(ok())
	p := WithRetry(mock, RetryConfig{})
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}

func TestTimeout_BoundsCall(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 5*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got: %v", err)
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }
