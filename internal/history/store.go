package history

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/abhisek/testplus/internal/logger"
	"github.com/abhisek/testplus/internal/store"
)

// DocumentRepo is the persistence the history needs.
type DocumentRepo interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
}

// Store keeps session results newest first and persists the whole list
// under store.KeyHistory on every append.
type Store struct {
	mu      sync.Mutex
	repo    DocumentRepo
	log     *logger.Logger
	results []SessionResult
}

// NewStore creates an empty Store. Call Load to read persisted results.
func NewStore(repo DocumentRepo, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{repo: repo, log: log.With("component", "history")}
}

// Load reads the persisted history. A missing or malformed document loads
// as an empty history; only a failed read is an error.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = nil
	body, err := s.repo.Get(ctx, store.KeyHistory)
	if err != nil {
		return fmt.Errorf("history: load: %w", err)
	}
	if body == nil {
		return nil
	}

	var results []SessionResult
	if err := json.Unmarshal(body, &results); err != nil {
		s.log.Warn("malformed history document, starting empty", "error", err)
		return nil
	}
	s.results = results
	return nil
}

// Append prepends r and persists the list. On a failed write the result
// stays in memory and the error is returned.
func (s *Store) Append(ctx context.Context, r SessionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = slices.Insert(s.results, 0, r.clone())

	body, err := json.Marshal(s.results)
	if err != nil {
		return fmt.Errorf("history: encode: %w", err)
	}
	if err := s.repo.Put(ctx, store.KeyHistory, body); err != nil {
		return fmt.Errorf("history: persist: %w", err)
	}
	return nil
}

// Clear drops every result and persists the empty list.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = nil
	if err := s.repo.Put(ctx, store.KeyHistory, []byte("[]")); err != nil {
		return fmt.Errorf("history: persist: %w", err)
	}
	return nil
}

// List returns all results, newest first.
func (s *Store) List() []SessionResult {
	return s.Recent(0)
}

// Recent returns up to n results newest first. n <= 0 means all.
func (s *Store) Recent(n int) []SessionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.results
	if n > 0 && len(src) > n {
		src = src[:n]
	}
	out := make([]SessionResult, len(src))
	for i, r := range src {
		out[i] = r.clone()
	}
	return out
}

// Latest returns the most recent result.
func (s *Store) Latest() (SessionResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.results) == 0 {
		return SessionResult{}, false
	}
	return s.results[0].clone(), true
}

// Len returns the number of stored results.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// TrendPoint is one session on the accuracy chart.
type TrendPoint struct {
	Date     time.Time
	Topic    string
	Accuracy int
}

// AccuracyTrend returns the last n sessions oldest first.
func (s *Store) AccuracyTrend(n int) []TrendPoint {
	recent := s.Recent(n)
	out := make([]TrendPoint, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		r := recent[i]
		out = append(out, TrendPoint{Date: r.Date, Topic: r.Topic, Accuracy: r.Accuracy})
	}
	return out
}
