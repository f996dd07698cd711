package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/abhisek/testplus/internal/history"
	"github.com/abhisek/testplus/internal/logger"
	"github.com/abhisek/testplus/internal/rewards"
	"github.com/abhisek/testplus/internal/store"
	"github.com/abhisek/testplus/internal/studygen"
)

// DocumentRepo is the persistence the stats service needs.
type DocumentRepo interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
}

// Config configures a Service.
type Config struct {
	Now      func() time.Time
	Location *time.Location
	Streak   StreakPolicy
	Logger   *logger.Logger
}

// Service owns the UserStats document. Every mutation holds the lock
// across read, modify and the whole-document write.
type Service struct {
	mu    sync.Mutex
	repo  DocumentRepo
	now   func() time.Time
	loc   *time.Location
	rules StreakPolicy
	log   *logger.Logger

	stats UserStats
}

// NewService creates a Service holding default stats. Call Load to read
// the persisted document.
func NewService(repo DocumentRepo, cfg Config) *Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	return &Service{
		repo:  repo,
		now:   cfg.Now,
		loc:   cfg.Location,
		rules: cfg.Streak,
		log:   cfg.Logger.With("component", "stats"),
		stats: Default(),
	}
}

// Load reads the stats document. A missing or malformed document yields
// defaults; only a failed read is an error.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = Default()
	body, err := s.repo.Get(ctx, store.KeyStats)
	if err != nil {
		return fmt.Errorf("stats: load: %w", err)
	}
	if body == nil {
		return nil
	}

	loaded := Default()
	if err := json.Unmarshal(body, &loaded); err != nil {
		s.log.Warn("malformed stats document, using defaults", "error", err)
		return nil
	}
	loaded.normalize()
	s.stats = loaded
	return nil
}

// Stats returns a copy of the current profile.
func (s *Service) Stats() UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.clone()
}

// Outcome summarizes what RecordSession changed.
type Outcome struct {
	SessionXP       int
	LevelBefore     rewards.LevelInfo
	LevelAfter      rewards.LevelInfo
	NewAchievements []rewards.Achievement
}

// LeveledUp reports whether the session crossed a level threshold.
func (o Outcome) LeveledUp() bool {
	return o.LevelAfter.Level > o.LevelBefore.Level
}

// RecordSession folds a completed session into the profile and persists
// it. The returned Outcome is valid even when the write fails.
func (s *Service) RecordSession(ctx context.Context, r history.SessionResult) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	prev := s.stats
	isNewDay := prev.LastPracticeDate == nil || !sameDay(*prev.LastPracticeDate, now, s.loc)

	xp := SessionXP(r.Score, r.Accuracy)

	daily := prev.DailyGoalProgress
	if isNewDay {
		daily = 0
	}
	daily = min(100, max(0, daily+r.TotalQuestions*DailyGoalPerQuestion))

	next := prev.clone()
	next.TotalSessions = prev.TotalSessions + 1
	next.TotalQuestionsAnswered = prev.TotalQuestionsAnswered + r.TotalQuestions
	next.AverageAccuracy = int(math.Round(float64(prev.AverageAccuracy*prev.TotalSessions+r.Accuracy) / float64(prev.TotalSessions+1)))
	next.CurrentStreak = s.rules.nextStreak(prev.CurrentStreak, prev.LastPracticeDate, now, s.loc)
	next.LastPracticeDate = &now
	next.XP = prev.XP + xp
	next.Coins = max(0, prev.Coins+r.CoinsEarned)
	next.DailyGoalProgress = daily
	next.UnlockedAchievements = rewards.Evaluate(prev.UnlockedAchievements, rewards.Progress{
		TotalSessions:          next.TotalSessions,
		TotalQuestionsAnswered: next.TotalQuestionsAnswered,
		Coins:                  next.Coins,
		CurrentStreak:          next.CurrentStreak,
		SessionAccuracy:        r.Accuracy,
	})

	out := Outcome{
		SessionXP:   xp,
		LevelBefore: prev.Level(),
		LevelAfter:  next.Level(),
	}
	for _, id := range rewards.Newly(prev.UnlockedAchievements, next.UnlockedAchievements) {
		if a, ok := rewards.Lookup(id); ok {
			out.NewAchievements = append(out.NewAchievements, a)
		}
	}

	s.stats = next
	s.log.Info("session recorded", "topic", r.Topic, "score", r.Score, "total", r.TotalQuestions,
		"xp", xp, "streak", next.CurrentStreak, "new_achievements", len(out.NewAchievements))
	return out, s.persist(ctx)
}

// AdjustCoins adds delta to the balance, flooring at zero. It never
// rejects; use CanAfford first when spending.
func (s *Service) AdjustCoins(ctx context.Context, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.Coins = max(0, s.stats.Coins+delta)
	return s.persist(ctx)
}

// CanAfford reports whether the balance covers cost.
func (s *Service) CanAfford(cost int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Coins >= cost
}

// Coins returns the current balance.
func (s *Service) Coins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Coins
}

// ToggleBookmark removes the bookmark for q if present, otherwise saves a
// new one at the front. It returns whether q is bookmarked afterwards.
func (s *Service) ToggleBookmark(ctx context.Context, q studygen.MCQ, topic string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.bookmarkIndex(q.ID); i >= 0 {
		s.stats.Bookmarks = slices.Delete(s.stats.Bookmarks, i, i+1)
		return false, s.persist(ctx)
	}

	q.Options = slices.Clone(q.Options)
	q.Tags = slices.Clone(q.Tags)
	s.stats.Bookmarks = slices.Insert(s.stats.Bookmarks, 0, Bookmark{
		ID:       q.ID,
		Question: q,
		Topic:    topic,
		SavedAt:  s.now(),
	})
	return true, s.persist(ctx)
}

// IsBookmarked reports whether question id is bookmarked.
func (s *Service) IsBookmarked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookmarkIndex(id) >= 0
}

// Bookmarks returns the bookmarks, most recent first.
func (s *Service) Bookmarks() []Bookmark {
	return s.Stats().Bookmarks
}

// Reset restores the default profile and persists it.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = Default()
	return s.persist(ctx)
}

func (s *Service) bookmarkIndex(id string) int {
	return slices.IndexFunc(s.stats.Bookmarks, func(b Bookmark) bool { return b.ID == id })
}

// persist writes the whole document. Callers hold s.mu. The in-memory
// state is kept when the write fails.
func (s *Service) persist(ctx context.Context) error {
	body, err := json.Marshal(s.stats)
	if err != nil {
		return fmt.Errorf("stats: encode: %w", err)
	}
	if err := s.repo.Put(ctx, store.KeyStats, body); err != nil {
		return fmt.Errorf("stats: persist: %w", err)
	}
	return nil
}
