package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/testplus/internal/logger"
	"github.com/abhisek/testplus/internal/store"
)

type recordingEventRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"name":"Ada","age":36}`),
		Usage:   Usage{InputTokens: 120, OutputTokens: 80, TotalTokens: 200},
	})
	p := WithLogging(mock, ProviderMock, repo, nil)

	ctx := WithPurpose(context.Background(), "study-gen")
	req := Request{
		System:   "You write study material.",
		Messages: []Message{{Role: RoleUser, Content: "Topic: Photosynthesis"}},
		Schema:   testSchema(),
	}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != "study-gen" || ev.Provider != ProviderMock || ev.Model != "mock" {
		t.Fatalf("unexpected event labels: %+v", ev)
	}
	if !ev.Success || ev.InputTokens != 120 || ev.OutputTokens != 80 {
		t.Fatalf("unexpected event usage: %+v", ev)
	}
	for _, want := range []string{"[system]", "Topic: Photosynthesis", "[schema: test-object]"} {
		if !strings.Contains(ev.RequestBody, want) {
			t.Fatalf("request body missing %q:\n%s", want, ev.RequestBody)
		}
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	repo := &recordingEventRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("boom")}})
	p := WithLogging(mock, ProviderMock, repo, log)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 || repo.events[0].Success || !strings.Contains(repo.events[0].ErrorMessage, "boom") {
		t.Fatalf("unexpected failure event: %+v", repo.events)
	}
	if repo.events[0].Purpose != "unknown" {
		t.Fatalf("expected default purpose, got %q", repo.events[0].Purpose)
	}
	if logs.FilterMessage("llm request failed").Len() != 1 {
		t.Fatalf("expected a warning log entry, got %v", logs.All())
	}
}

func TestLogging_RepoErrorDoesNotFailRequest(t *testing.T) {
	repo := &recordingEventRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, ProviderMock, repo, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("event write failure leaked into request: %v", err)
	}
}

func TestLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, ProviderMock, nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
