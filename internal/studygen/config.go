package studygen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated set; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// FlashcardCount is the number of flashcards requested.
	FlashcardCount int
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&TimerValidator{},
			&IDValidator{},
		},
		MaxTokens:      8192,
		Temperature:    0.7,
		FlashcardCount: 8,
	}
}
