package stats

import (
	"slices"
	"time"

	"github.com/abhisek/testplus/internal/rewards"
	"github.com/abhisek/testplus/internal/studygen"
)

// WelcomeBonus is the coin balance of a fresh profile.
const WelcomeBonus = 100

// UserStats is the persisted gamification profile.
type UserStats struct {
	TotalSessions          int        `json:"totalSessions"`
	TotalQuestionsAnswered int        `json:"totalQuestionsAnswered"`
	AverageAccuracy        int        `json:"averageAccuracy"`
	CurrentStreak          int        `json:"currentStreak"`
	LastPracticeDate       *time.Time `json:"lastPracticeDate"`
	XP                     int        `json:"xp"`
	Coins                  int        `json:"coins"`
	UnlockedAchievements   []string   `json:"unlockedAchievements"`
	Bookmarks              []Bookmark `json:"bookmarks"`
	DailyGoalProgress      int        `json:"dailyGoalProgress"`
}

// Bookmark is a saved question snapshot. ID is the question id.
type Bookmark struct {
	ID       string       `json:"id"`
	Question studygen.MCQ `json:"question"`
	Topic    string       `json:"topic"`
	SavedAt  time.Time    `json:"savedAt"`
}

// Default returns the profile of a first-time user.
func Default() UserStats {
	return UserStats{
		Coins:                WelcomeBonus,
		UnlockedAchievements: []string{},
		Bookmarks:            []Bookmark{},
	}
}

// Level returns the level info for the current XP.
func (s UserStats) Level() rewards.LevelInfo {
	return rewards.LevelInfoFor(s.XP)
}

// HasAchievement reports whether id is unlocked.
func (s UserStats) HasAchievement(id string) bool {
	return slices.Contains(s.UnlockedAchievements, id)
}

func (s UserStats) clone() UserStats {
	if s.LastPracticeDate != nil {
		t := *s.LastPracticeDate
		s.LastPracticeDate = &t
	}
	s.UnlockedAchievements = slices.Clone(s.UnlockedAchievements)
	s.Bookmarks = slices.Clone(s.Bookmarks)
	for i := range s.Bookmarks {
		q := &s.Bookmarks[i].Question
		q.Options = slices.Clone(q.Options)
		q.Tags = slices.Clone(q.Tags)
	}
	return s
}

// normalize replaces nulls read from older documents with empty values.
func (s *UserStats) normalize() {
	if s.UnlockedAchievements == nil {
		s.UnlockedAchievements = []string{}
	}
	if s.Bookmarks == nil {
		s.Bookmarks = []Bookmark{}
	}
	s.Coins = max(0, s.Coins)
	s.DailyGoalProgress = min(100, max(0, s.DailyGoalProgress))
}

// SessionXP is the XP a session earns: 10 per correct answer plus a bonus
// of 50 for a perfect session or 20 otherwise.
func SessionXP(score, accuracy int) int {
	bonus := 20
	if accuracy == 100 {
		bonus = 50
	}
	return score*10 + bonus
}

// DailyGoalPerQuestion is the daily goal percentage one answered question
// is worth; 20 questions fill the goal.
const DailyGoalPerQuestion = 5
