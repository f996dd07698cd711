package quiz

import "errors"

var (
	// ErrNoContent is returned by New when there is nothing to quiz on.
	ErrNoContent = errors.New("quiz: no questions to practice")

	// ErrInsufficientCoins refuses a lifeline the balance cannot cover.
	ErrInsufficientCoins = errors.New("not enough coins")

	// ErrLifelineUsed refuses a lifeline already used on this question.
	ErrLifelineUsed = errors.New("lifeline already used on this question")

	// ErrNotAwaiting refuses an action outside the answering phase.
	ErrNotAwaiting = errors.New("question already answered")
)
