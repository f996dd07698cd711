package studygen

import (
	"fmt"
	"slices"
)

// QuestionCounts are the selectable session lengths.
var QuestionCounts = []int{5, 10, 15, 20}

// TimerMode sets the per-question countdown.
type TimerMode string

const (
	TimerFast     TimerMode = "fast"
	TimerStandard TimerMode = "standard"
	TimerRelaxed  TimerMode = "relaxed"
)

// TimerModes lists the modes in display order.
var TimerModes = []TimerMode{TimerFast, TimerStandard, TimerRelaxed}

// Seconds returns the countdown for the mode. Unknown modes get the
// standard 60 seconds.
func (m TimerMode) Seconds() int {
	switch m {
	case TimerFast:
		return 30
	case TimerRelaxed:
		return 120
	default:
		return 60
	}
}

// Difficulties lists the selectable settings difficulties in display order.
var Difficulties = []Difficulty{DifficultyMixed, DifficultyEasy, DifficultyMedium, DifficultyHard}

// Settings are the user's choices for one generation request.
type Settings struct {
	QuestionCount int
	Difficulty    Difficulty
	TimerMode     TimerMode
}

// DefaultSettings returns 10 mixed questions on the standard timer.
func DefaultSettings() Settings {
	return Settings{
		QuestionCount: 10,
		Difficulty:    DifficultyMixed,
		TimerMode:     TimerStandard,
	}
}

// Validate checks that every field holds one of the selectable values.
func (s Settings) Validate() error {
	if !slices.Contains(QuestionCounts, s.QuestionCount) {
		return fmt.Errorf("question count must be one of %v, got %d", QuestionCounts, s.QuestionCount)
	}
	if !slices.Contains(Difficulties, s.Difficulty) {
		return fmt.Errorf("unknown difficulty %q", s.Difficulty)
	}
	if !slices.Contains(TimerModes, s.TimerMode) {
		return fmt.Errorf("unknown timer mode %q", s.TimerMode)
	}
	return nil
}
