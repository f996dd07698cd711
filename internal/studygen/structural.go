package studygen

import (
	"fmt"
	"strings"
)

// StructuralValidator checks the invariants the quiz relies on: at least
// one question, exactly four options each, an answer index in range and a
// known difficulty.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(c *Content, _ Settings) *ValidationError {
	if len(c.MCQs) == 0 {
		return v.fail("no questions generated")
	}
	for i, q := range c.MCQs {
		if strings.TrimSpace(q.Question) == "" {
			return v.fail(fmt.Sprintf("question %d has no text", i+1))
		}
		if len(q.Options) != OptionCount {
			return v.fail(fmt.Sprintf("question %d has %d options, want %d", i+1, len(q.Options), OptionCount))
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= OptionCount {
			return v.fail(fmt.Sprintf("question %d answer_index %d out of range", i+1, q.AnswerIndex))
		}
		if !q.Difficulty.Valid() {
			return v.fail(fmt.Sprintf("question %d has unknown difficulty %q", i+1, q.Difficulty))
		}
	}
	for i, f := range c.Flashcards {
		if f.Front == "" || f.Back == "" {
			return v.fail(fmt.Sprintf("flashcard %d is missing a side", i+1))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
