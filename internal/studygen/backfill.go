package studygen

import "fmt"

// TimerValidator replaces non-positive timer_seconds with the timer mode's
// default. It never rejects.
type TimerValidator struct{}

func (v *TimerValidator) Name() string { return "timer" }

func (v *TimerValidator) Validate(c *Content, s Settings) *ValidationError {
	for i := range c.MCQs {
		if c.MCQs[i].TimerSeconds <= 0 {
			c.MCQs[i].TimerSeconds = s.TimerMode.Seconds()
		}
	}
	return nil
}

// IDValidator fills in missing ids as "mcq-<index>" and "flash-<index>".
// It never rejects.
type IDValidator struct{}

func (v *IDValidator) Name() string { return "ids" }

func (v *IDValidator) Validate(c *Content, _ Settings) *ValidationError {
	for i := range c.MCQs {
		if c.MCQs[i].ID == "" {
			c.MCQs[i].ID = fmt.Sprintf("mcq-%d", i)
		}
	}
	for i := range c.Flashcards {
		if c.Flashcards[i].ID == "" {
			c.Flashcards[i].ID = fmt.Sprintf("flash-%d", i)
		}
	}
	return nil
}
