package studygen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a study coach creating exam practice material.

Rules:
- Every multiple choice question has exactly 4 options and exactly one correct option.
- answer_index is the 0-based position of the correct option.
- Questions should be conceptual and applied, not just memorization.
- Distractors should reflect common misconceptions, not random values.
- Give every question a helpful hint that does not reveal the answer, and a detailed explanation.
- Tag every question with 1-3 short subtopic tags.
- Flashcards should be punchy and concise. Leave mnemonic empty when none fits.
- The study plan has 3-5 actionable steps.
- Leave source empty rather than inventing a citation.`

// buildUserMessage renders the request for topic and settings.
func buildUserMessage(topic string, s Settings, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %q\n", topic)
	fmt.Fprintf(&b, "Multiple choice questions: %d\n", s.QuestionCount)
	fmt.Fprintf(&b, "Flashcards: %d\n", cfg.FlashcardCount)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficultyInstruction(s.Difficulty))
	fmt.Fprintf(&b, "Timer: %s\n", timerInstruction(s.TimerMode))

	return b.String()
}

func difficultyInstruction(d Difficulty) string {
	if d == DifficultyMixed || d == "" {
		return "a mix of easy, medium and hard questions"
	}
	return fmt.Sprintf("all questions %s", d)
}

func timerInstruction(m TimerMode) string {
	switch m {
	case TimerFast:
		return "set timer_seconds to 30; questions should be quick to answer"
	case TimerRelaxed:
		return "set timer_seconds to 120; questions can be more thoughtful"
	default:
		return "set timer_seconds to 60"
	}
}
