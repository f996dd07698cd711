package studygen

import "time"

// Content is one generated study set. It lives for a single session and is
// never persisted.
type Content struct {
	Topic       string      `json:"topic"`
	GeneratedAt time.Time   `json:"generated_at"`
	Source      string      `json:"source,omitempty"`
	Confidence  Confidence  `json:"confidence,omitempty"`
	MCQs        []MCQ       `json:"mcqs"`
	Flashcards  []Flashcard `json:"punchcards"`
	StudyPlan   []string    `json:"study_plan"`
}

// OptionCount is the number of options on every question.
const OptionCount = 4

// MCQ is a single multiple-choice question. Option order is significant:
// AnswerIndex points into Options.
type MCQ struct {
	ID           string     `json:"id"`
	Question     string     `json:"question"`
	Options      []string   `json:"options"`
	AnswerIndex  int        `json:"answer_index"`
	Difficulty   Difficulty `json:"difficulty"`
	Tags         []string   `json:"tags"`
	TimerSeconds int        `json:"timer_seconds"`
	Hint         string     `json:"hint"`
	Explanation  string     `json:"explanation"`
	Source       string     `json:"source,omitempty"`
	Confidence   Confidence `json:"confidence,omitempty"`
}

// IsCorrect reports whether option i is the right answer.
func (q MCQ) IsCorrect(i int) bool {
	return i == q.AnswerIndex
}

// CorrectOption returns the text of the right answer.
func (q MCQ) CorrectOption() string {
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.AnswerIndex]
}

// Flashcard is a front/back review card.
type Flashcard struct {
	ID       string `json:"id"`
	Front    string `json:"front"`
	Back     string `json:"back"`
	Mnemonic string `json:"mnemonic,omitempty"`
}

// Difficulty is a per-question difficulty label.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"

	// DifficultyMixed is only meaningful in Settings.
	DifficultyMixed Difficulty = "mixed"
)

// Valid reports whether d is a per-question difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Confidence is the model's self-assessed confidence in the content.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)
