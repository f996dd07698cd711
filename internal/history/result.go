package history

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
)

// SessionResult is the immutable record of one completed quiz session.
type SessionResult struct {
	ID               string    `json:"id"`
	Topic            string    `json:"topic"`
	Date             time.Time `json:"date"`
	Score            int       `json:"score"`
	TotalQuestions   int       `json:"totalQuestions"`
	Accuracy         int       `json:"accuracy"`
	TimeSpentSeconds int       `json:"timeSpentSeconds"`
	WeakTags         []string  `json:"weakTags"`
	CorrectIDs       []string  `json:"correctIds"`
	IncorrectIDs     []string  `json:"incorrectIds"`
	CoinsEarned      int       `json:"coinsEarned"`
}

// NewResultID returns a time-ordered unique id.
func NewResultID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Accuracy returns round(100*score/total), or 0 for an empty session.
func Accuracy(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

// WeakTags collects the tags of incorrectly answered questions in order,
// dropping duplicates.
func WeakTags(tagsPerMiss ...[]string) []string {
	out := []string{}
	for _, tags := range tagsPerMiss {
		for _, t := range tags {
			if !slices.Contains(out, t) {
				out = append(out, t)
			}
		}
	}
	return out
}

// Perfect reports whether every question was answered correctly.
func (r SessionResult) Perfect() bool {
	return r.Accuracy == 100
}

func (r SessionResult) clone() SessionResult {
	r.WeakTags = slices.Clone(r.WeakTags)
	r.CorrectIDs = slices.Clone(r.CorrectIDs)
	r.IncorrectIDs = slices.Clone(r.IncorrectIDs)
	return r
}
