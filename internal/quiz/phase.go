package quiz

// Phase is the engine state.
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota
	PhaseRevealed
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting"
	case PhaseRevealed:
		return "revealed"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Status is the outcome of one question, used for the question map.
type Status int

const (
	StatusPending Status = iota
	StatusCorrect
	StatusIncorrect
)

// Answer records how one question was answered.
type Answer struct {
	QuestionID string
	Selected   int
	Correct    bool
}
