package stats

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/testplus/internal/history"
	"github.com/abhisek/testplus/internal/rewards"
	"github.com/abhisek/testplus/internal/store"
	"github.com/abhisek/testplus/internal/studygen"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func openTestRepo(t *testing.T) store.DocumentRepo {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.OpenMemory(name)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.DocumentRepo()
}

func newTestService(t *testing.T, repo DocumentRepo, c *clock, policy StreakPolicy) *Service {
	t.Helper()
	svc := NewService(repo, Config{Now: c.Now, Location: time.UTC, Streak: policy})
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func session(score, total int) history.SessionResult {
	return history.SessionResult{
		ID:             history.NewResultID(),
		Topic:          "Photosynthesis",
		Score:          score,
		TotalQuestions: total,
		Accuracy:       history.Accuracy(score, total),
		CoinsEarned:    score * 10,
	}
}

func TestLoad_Defaults(t *testing.T) {
	svc := newTestService(t, openTestRepo(t), &clock{t: time.Now()}, StreakKeepOnGap)

	s := svc.Stats()
	assert.Equal(t, WelcomeBonus, s.Coins)
	assert.Nil(t, s.LastPracticeDate)
	assert.Empty(t, s.UnlockedAchievements)
	assert.NotNil(t, s.Bookmarks)
	assert.Equal(t, 1, s.Level().Level)
}

func TestLoad_MalformedAndPartialDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed", func(t *testing.T) {
		repo := openTestRepo(t)
		require.NoError(t, repo.Put(ctx, store.KeyStats, []byte(`{"xp": "lots"`)))
		svc := newTestService(t, repo, &clock{t: time.Now()}, StreakKeepOnGap)
		assert.Equal(t, Default(), svc.Stats())
	})

	t.Run("partial keeps defaults for missing fields", func(t *testing.T) {
		repo := openTestRepo(t)
		require.NoError(t, repo.Put(ctx, store.KeyStats, []byte(`{"xp": 750, "bookmarks": null}`)))
		svc := newTestService(t, repo, &clock{t: time.Now()}, StreakKeepOnGap)
		s := svc.Stats()
		assert.Equal(t, 750, s.XP)
		assert.Equal(t, WelcomeBonus, s.Coins)
		assert.NotNil(t, s.Bookmarks)
		assert.Equal(t, 3, s.Level().Level)
	})
}

func TestRecordSession_FirstSession(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	repo := openTestRepo(t)
	svc := newTestService(t, repo, c, StreakKeepOnGap)

	out, err := svc.RecordSession(ctx, session(3, 5))
	require.NoError(t, err)

	s := svc.Stats()
	assert.Equal(t, 1, s.TotalSessions)
	assert.Equal(t, 5, s.TotalQuestionsAnswered)
	assert.Equal(t, 60, s.AverageAccuracy)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 50, s.XP, "3*10 + 20")
	assert.Equal(t, 130, s.Coins)
	assert.Equal(t, 25, s.DailyGoalProgress)
	require.NotNil(t, s.LastPracticeDate)
	assert.True(t, s.LastPracticeDate.Equal(c.t))
	assert.Equal(t, []string{rewards.FirstSteps}, s.UnlockedAchievements)

	assert.Equal(t, 50, out.SessionXP)
	require.Len(t, out.NewAchievements, 1)
	assert.Equal(t, "First Steps", out.NewAchievements[0].Name)
	assert.False(t, out.LeveledUp())

	reloaded := newTestService(t, repo, c, StreakKeepOnGap)
	assert.Equal(t, s.XP, reloaded.Stats().XP)
	assert.Equal(t, s.UnlockedAchievements, reloaded.Stats().UnlockedAchievements)
}

func TestRecordSession_PerfectSession(t *testing.T) {
	svc := newTestService(t, openTestRepo(t), &clock{t: time.Now()}, StreakKeepOnGap)

	out, err := svc.RecordSession(context.Background(), session(5, 5))
	require.NoError(t, err)
	assert.Equal(t, 100, out.SessionXP, "5*10 + 50")
	assert.True(t, svc.Stats().HasAchievement(rewards.Sniper))
}

func TestRecordSession_SameDay(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := newTestService(t, openTestRepo(t), c, StreakKeepOnGap)

	_, err := svc.RecordSession(ctx, session(5, 10))
	require.NoError(t, err)
	c.Advance(3 * time.Hour)
	_, err = svc.RecordSession(ctx, session(10, 10))
	require.NoError(t, err)

	s := svc.Stats()
	assert.Equal(t, 1, s.CurrentStreak, "second session on the same day keeps the streak")
	assert.Equal(t, 100, s.DailyGoalProgress, "50 + 50, clamped")
	assert.Equal(t, 75, s.AverageAccuracy, "round((50*1 + 100)/2)")
	assert.Equal(t, 2, s.TotalSessions)
}

func TestRecordSession_DailyGoalResetsOnNewDay(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)}
	svc := newTestService(t, openTestRepo(t), c, StreakKeepOnGap)

	_, err := svc.RecordSession(ctx, session(10, 20))
	require.NoError(t, err)
	assert.Equal(t, 100, svc.Stats().DailyGoalProgress)

	c.Advance(2 * time.Hour)
	_, err = svc.RecordSession(ctx, session(2, 5))
	require.NoError(t, err)
	assert.Equal(t, 25, svc.Stats().DailyGoalProgress)
	assert.Equal(t, 2, svc.Stats().CurrentStreak)
}

func TestRecordSession_StreakPolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy StreakPolicy
		gaps   []time.Duration
		want   int
	}{
		{"keep: consecutive days", StreakKeepOnGap, []time.Duration{24 * time.Hour, 24 * time.Hour}, 3},
		{"keep: gap still increments", StreakKeepOnGap, []time.Duration{72 * time.Hour}, 2},
		{"reset: consecutive days", StreakResetOnGap, []time.Duration{24 * time.Hour, 24 * time.Hour}, 3},
		{"reset: gap restarts", StreakResetOnGap, []time.Duration{24 * time.Hour, 72 * time.Hour}, 1},
		{"reset: same day unchanged", StreakResetOnGap, []time.Duration{time.Hour}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			c := &clock{t: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)}
			svc := newTestService(t, openTestRepo(t), c, tt.policy)

			_, err := svc.RecordSession(ctx, session(1, 5))
			require.NoError(t, err)
			for _, gap := range tt.gaps {
				c.Advance(gap)
				_, err := svc.RecordSession(ctx, session(1, 5))
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, svc.Stats().CurrentStreak)
		})
	}
}

func TestRecordSession_StreakAchievements(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	svc := newTestService(t, openTestRepo(t), c, StreakKeepOnGap)

	for range 7 {
		_, err := svc.RecordSession(ctx, session(1, 5))
		require.NoError(t, err)
		c.Advance(24 * time.Hour)
	}
	s := svc.Stats()
	assert.Equal(t, 7, s.CurrentStreak)
	assert.True(t, s.HasAchievement(rewards.Streak3))
	assert.True(t, s.HasAchievement(rewards.Streak7))
}

func TestRecordSession_LevelUp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, openTestRepo(t), &clock{t: time.Now()}, StreakKeepOnGap)

	var out Outcome
	var err error
	for range 2 {
		out, err = svc.RecordSession(ctx, session(20, 20))
		require.NoError(t, err)
	}
	// 2 * (200 + 50) = 500 XP
	assert.Equal(t, 500, svc.Stats().XP)
	assert.True(t, out.LeveledUp())
	assert.Equal(t, 3, out.LevelAfter.Level)
}

func TestAdjustCoins(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	svc := newTestService(t, repo, &clock{t: time.Now()}, StreakKeepOnGap)

	require.NoError(t, svc.AdjustCoins(ctx, -20))
	assert.Equal(t, 80, svc.Coins())
	assert.True(t, svc.CanAfford(80))
	assert.False(t, svc.CanAfford(81))

	require.NoError(t, svc.AdjustCoins(ctx, -500))
	assert.Equal(t, 0, svc.Coins(), "balance floors at zero")

	require.NoError(t, svc.AdjustCoins(ctx, 500))
	reloaded := newTestService(t, repo, &clock{t: time.Now()}, StreakKeepOnGap)
	assert.Equal(t, 500, reloaded.Coins())
}

func TestToggleBookmark(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	c := &clock{t: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := newTestService(t, repo, c, StreakKeepOnGap)

	q1 := studygen.MCQ{ID: "q1", Question: "First?", Options: []string{"a", "b", "c", "d"}}
	q2 := studygen.MCQ{ID: "q2", Question: "Second?", Options: []string{"a", "b", "c", "d"}}

	on, err := svc.ToggleBookmark(ctx, q1, "Optics")
	require.NoError(t, err)
	assert.True(t, on)
	c.Advance(time.Minute)
	_, err = svc.ToggleBookmark(ctx, q2, "Optics")
	require.NoError(t, err)

	bms := svc.Bookmarks()
	require.Len(t, bms, 2)
	assert.Equal(t, "q2", bms[0].ID, "most recent first")
	assert.Equal(t, "Optics", bms[1].Topic)
	assert.Equal(t, "First?", bms[1].Question.Question)
	assert.True(t, svc.IsBookmarked("q1"))

	reloaded := newTestService(t, repo, c, StreakKeepOnGap)
	assert.Len(t, reloaded.Bookmarks(), 2)

	on, err = svc.ToggleBookmark(ctx, q1, "Optics")
	require.NoError(t, err)
	assert.False(t, on)
	assert.False(t, svc.IsBookmarked("q1"))
	assert.Len(t, svc.Bookmarks(), 1)
}

func TestToggleBookmark_TwiceRestoresList(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	c := &clock{t: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := newTestService(t, repo, c, StreakKeepOnGap)

	for _, id := range []string{"q1", "q2"} {
		_, err := svc.ToggleBookmark(ctx, studygen.MCQ{ID: id, Options: []string{"a", "b", "c", "d"}}, "Optics")
		require.NoError(t, err)
		c.Advance(time.Minute)
	}
	before := svc.Bookmarks()

	q3 := studygen.MCQ{ID: "q3", Options: []string{"a", "b", "c", "d"}}
	on, err := svc.ToggleBookmark(ctx, q3, "Optics")
	require.NoError(t, err)
	assert.True(t, on)
	on, err = svc.ToggleBookmark(ctx, q3, "Optics")
	require.NoError(t, err)
	assert.False(t, on)

	assert.Equal(t, before, svc.Bookmarks())
	assert.Equal(t, "q2", svc.Bookmarks()[0].ID)
	assert.Equal(t, "q1", svc.Bookmarks()[1].ID)

	reloaded := newTestService(t, repo, c, StreakKeepOnGap)
	assert.Equal(t, []string{"q2", "q1"}, []string{reloaded.Bookmarks()[0].ID, reloaded.Bookmarks()[1].ID})
}

func TestStats_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, openTestRepo(t), &clock{t: time.Now()}, StreakKeepOnGap)
	_, err := svc.ToggleBookmark(ctx, studygen.MCQ{ID: "q1", Options: []string{"a", "b", "c", "d"}}, "T")
	require.NoError(t, err)

	s := svc.Stats()
	s.Coins = 9999
	s.Bookmarks[0].Question.Options[0] = "mutated"

	assert.Equal(t, WelcomeBonus, svc.Coins())
	assert.Equal(t, "a", svc.Bookmarks()[0].Question.Options[0])
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)
	svc := newTestService(t, repo, &clock{t: time.Now()}, StreakKeepOnGap)
	_, err := svc.RecordSession(ctx, session(5, 5))
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx))
	assert.Equal(t, Default(), svc.Stats())

	reloaded := newTestService(t, repo, &clock{t: time.Now()}, StreakKeepOnGap)
	assert.Equal(t, 0, reloaded.Stats().XP)
}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) ([]byte, error) { return nil, nil }
func (failingRepo) Put(context.Context, string, []byte) error   { return errors.New("disk full") }

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, failingRepo{}, &clock{t: time.Now()}, StreakKeepOnGap)

	out, err := svc.RecordSession(ctx, session(4, 5))
	assert.ErrorContains(t, err, "stats: persist")
	assert.Equal(t, 60, out.SessionXP)
	assert.Equal(t, 1, svc.Stats().TotalSessions)

	assert.Error(t, svc.AdjustCoins(ctx, 5))
	assert.Equal(t, 145, svc.Coins())
}

func TestSessionXP(t *testing.T) {
	assert.Equal(t, 20, SessionXP(0, 0))
	assert.Equal(t, 70, SessionXP(5, 80))
	assert.Equal(t, 100, SessionXP(5, 100))
}

func TestParseStreakPolicy(t *testing.T) {
	assert.Equal(t, StreakResetOnGap, ParseStreakPolicy("1"))
	assert.Equal(t, StreakResetOnGap, ParseStreakPolicy("true"))
	assert.Equal(t, StreakKeepOnGap, ParseStreakPolicy(""))
	assert.Equal(t, StreakKeepOnGap, ParseStreakPolicy("0"))
	assert.Equal(t, "reset-on-gap", StreakResetOnGap.String())
}
