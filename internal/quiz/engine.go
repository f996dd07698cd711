package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync/atomic"
	"time"

	"github.com/abhisek/testplus/internal/history"
	"github.com/abhisek/testplus/internal/logger"
	"github.com/abhisek/testplus/internal/stats"
	"github.com/abhisek/testplus/internal/studygen"
)

const (
	// HintCost is the price of revealing the hint.
	HintCost = 20

	// FiftyFiftyCost is the price of eliminating two wrong options.
	FiftyFiftyCost = 50

	// CorrectReward is credited to the session for each correct answer.
	CorrectReward = 10

	// UrgentSeconds is the countdown below which the timer is urgent.
	UrgentSeconds = 10
)

// StatsStore is the slice of the stats service the engine uses.
type StatsStore interface {
	CanAfford(cost int) bool
	AdjustCoins(ctx context.Context, delta int) error
	RecordSession(ctx context.Context, r history.SessionResult) (stats.Outcome, error)
	ToggleBookmark(ctx context.Context, q studygen.MCQ, topic string) (bool, error)
	IsBookmarked(id string) bool
}

// HistoryStore receives finished sessions.
type HistoryStore interface {
	Append(ctx context.Context, r history.SessionResult) error
}

// Config holds the engine's injected dependencies. Zero values get real
// clocks and randomness.
type Config struct {
	Rand   *rand.Rand
	Now    func() time.Time
	Logger *logger.Logger
}

// Engine runs one quiz session over a study set. It is driven from a
// single goroutine (the UI update loop) and is not safe for concurrent
// use.
type Engine struct {
	content *studygen.Content
	stats   StatsStore
	history HistoryStore
	rng     *rand.Rand
	now     func() time.Time
	log     *logger.Logger

	phase      Phase
	index      int
	timeLeft   int
	token      uint64
	selected   int
	eliminated []int
	hintShown  bool

	score       int
	coinsEarned int
	answers     []Answer
	startedAt   time.Time

	result  *history.SessionResult
	outcome stats.Outcome
}

// New starts a session on the first question.
func New(content *studygen.Content, st StatsStore, hist HistoryStore, cfg Config) (*Engine, error) {
	if content == nil || len(content.MCQs) == 0 {
		return nil, ErrNoContent
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	e := &Engine{
		content:   content,
		stats:     st,
		history:   hist,
		rng:       cfg.Rand,
		now:       cfg.Now,
		log:       cfg.Logger.With("component", "quiz", "topic", content.Topic),
		startedAt: cfg.Now(),
	}
	e.enterQuestion(0)
	return e, nil
}

func (e *Engine) enterQuestion(i int) {
	e.phase = PhaseAwaitingAnswer
	e.index = i
	e.timeLeft = e.content.MCQs[i].TimerSeconds
	e.selected = -1
	e.eliminated = nil
	e.hintShown = false
	e.token = timerTokens.Add(1)
}

// timerTokens is shared by all engines so a tick scheduled by one engine
// never matches a timer of another.
var timerTokens atomic.Uint64

// Tick advances the countdown by one second if token is the live timer
// token. It returns whether the caller should schedule another tick.
// Reaching zero does not answer or advance.
func (e *Engine) Tick(token uint64) bool {
	if token != e.token || e.phase != PhaseAwaitingAnswer {
		return false
	}
	if e.timeLeft > 0 {
		e.timeLeft--
	}
	return e.timeLeft > 0
}

// SelectOption answers the current question with option i. It is ignored
// when not awaiting an answer, when i is out of range or eliminated.
func (e *Engine) SelectOption(i int) {
	if e.phase != PhaseAwaitingAnswer || i < 0 || i >= len(e.Question().Options) || slices.Contains(e.eliminated, i) {
		return
	}

	q := e.Question()
	correct := q.IsCorrect(i)
	e.selected = i
	e.phase = PhaseRevealed
	if correct {
		e.score++
		e.coinsEarned += CorrectReward
	}
	e.answers = append(e.answers, Answer{QuestionID: q.ID, Selected: i, Correct: correct})
}

// BuyHint spends HintCost coins to show the current hint.
func (e *Engine) BuyHint(ctx context.Context) error {
	if e.phase != PhaseAwaitingAnswer {
		return ErrNotAwaiting
	}
	if e.hintShown {
		return ErrLifelineUsed
	}
	if !e.stats.CanAfford(HintCost) {
		return ErrInsufficientCoins
	}

	e.hintShown = true
	if err := e.stats.AdjustCoins(ctx, -HintCost); err != nil {
		e.log.Warn("failed to persist hint purchase", "error", err)
	}
	return nil
}

// BuyFiftyFifty spends FiftyFiftyCost coins to eliminate two of the three
// wrong options, chosen uniformly.
func (e *Engine) BuyFiftyFifty(ctx context.Context) error {
	if e.phase != PhaseAwaitingAnswer {
		return ErrNotAwaiting
	}
	if len(e.eliminated) > 0 {
		return ErrLifelineUsed
	}
	if !e.stats.CanAfford(FiftyFiftyCost) {
		return ErrInsufficientCoins
	}

	q := e.Question()
	var wrong []int
	for i := range q.Options {
		if !q.IsCorrect(i) {
			wrong = append(wrong, i)
		}
	}
	e.rng.Shuffle(len(wrong), func(i, j int) { wrong[i], wrong[j] = wrong[j], wrong[i] })
	e.eliminated = wrong[:min(2, len(wrong))]
	slices.Sort(e.eliminated)

	if err := e.stats.AdjustCoins(ctx, -FiftyFiftyCost); err != nil {
		e.log.Warn("failed to persist fifty-fifty purchase", "error", err)
	}
	return nil
}

// Next moves past a revealed question, finishing the session after the
// last one. It does nothing in other phases. The returned error reports
// persistence failures at finish; the session is finished regardless.
func (e *Engine) Next(ctx context.Context) error {
	if e.phase != PhaseRevealed {
		return nil
	}
	if e.index < len(e.content.MCQs)-1 {
		e.enterQuestion(e.index + 1)
		return nil
	}
	return e.finish(ctx)
}

// finish records the session: stats first, then the session coins, then
// history. Coins reach the balance through both RecordSession and
// AdjustCoins.
func (e *Engine) finish(ctx context.Context) error {
	r := e.buildResult()
	e.result = &r
	e.phase = PhaseFinished

	var errs []error
	outcome, err := e.stats.RecordSession(ctx, r)
	e.outcome = outcome
	if err != nil {
		errs = append(errs, err)
	}
	if err := e.stats.AdjustCoins(ctx, r.CoinsEarned); err != nil {
		errs = append(errs, err)
	}
	if err := e.history.Append(ctx, r); err != nil {
		errs = append(errs, err)
	}

	e.log.Info("session finished", "score", r.Score, "total", r.TotalQuestions,
		"accuracy", r.Accuracy, "coins", r.CoinsEarned, "seconds", r.TimeSpentSeconds)
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("quiz: finish: %w", err)
	}
	return nil
}

func (e *Engine) buildResult() history.SessionResult {
	correct := []string{}
	incorrect := []string{}
	for _, a := range e.answers {
		if a.Correct {
			correct = append(correct, a.QuestionID)
		} else {
			incorrect = append(incorrect, a.QuestionID)
		}
	}

	var missedTags [][]string
	for _, q := range e.content.MCQs {
		if slices.Contains(incorrect, q.ID) {
			missedTags = append(missedTags, q.Tags)
		}
	}

	total := len(e.content.MCQs)
	now := e.now()
	return history.SessionResult{
		ID:               history.NewResultID(),
		Topic:            e.content.Topic,
		Date:             now,
		Score:            e.score,
		TotalQuestions:   total,
		Accuracy:         history.Accuracy(e.score, total),
		TimeSpentSeconds: int(now.Sub(e.startedAt) / time.Second),
		WeakTags:         history.WeakTags(missedTags...),
		CorrectIDs:       correct,
		IncorrectIDs:     incorrect,
		CoinsEarned:      e.coinsEarned,
	}
}

// PressKey maps keyboard input: "1"-"4" answer while awaiting, "enter"
// advances once revealed.
func (e *Engine) PressKey(ctx context.Context, key string) error {
	switch e.phase {
	case PhaseAwaitingAnswer:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '4' {
			e.SelectOption(int(key[0] - '1'))
		}
	case PhaseRevealed:
		if key == "enter" {
			return e.Next(ctx)
		}
	}
	return nil
}

// ToggleBookmark bookmarks or un-bookmarks the current question.
func (e *Engine) ToggleBookmark(ctx context.Context) (bool, error) {
	if e.phase == PhaseFinished {
		return false, ErrNotAwaiting
	}
	return e.stats.ToggleBookmark(ctx, e.Question(), e.content.Topic)
}

// Phase returns the current state.
func (e *Engine) Phase() Phase { return e.phase }

// Index returns the zero-based current question index.
func (e *Engine) Index() int { return e.index }

// Total returns the number of questions.
func (e *Engine) Total() int { return len(e.content.MCQs) }

// Topic returns the study set topic.
func (e *Engine) Topic() string { return e.content.Topic }

// Content returns the study set being practiced.
func (e *Engine) Content() *studygen.Content { return e.content }

// Question returns the current question.
func (e *Engine) Question() studygen.MCQ { return e.content.MCQs[e.index] }

// TimeLeft returns the remaining seconds on the current question.
func (e *Engine) TimeLeft() int { return e.timeLeft }

// Urgent reports whether less than UrgentSeconds remain.
func (e *Engine) Urgent() bool { return e.timeLeft < UrgentSeconds }

// Token returns the live timer token.
func (e *Engine) Token() uint64 { return e.token }

// Selected returns the chosen option, or -1.
func (e *Engine) Selected() int { return e.selected }

// IsEliminated reports whether option i was removed by fifty-fifty.
func (e *Engine) IsEliminated(i int) bool { return slices.Contains(e.eliminated, i) }

// Eliminated returns the removed options in ascending order.
func (e *Engine) Eliminated() []int { return slices.Clone(e.eliminated) }

// HintShown reports whether the hint was bought for this question.
func (e *Engine) HintShown() bool { return e.hintShown }

// IsBookmarked reports whether the current question is bookmarked.
func (e *Engine) IsBookmarked() bool { return e.stats.IsBookmarked(e.Question().ID) }

// Score returns the number of correct answers so far.
func (e *Engine) Score() int { return e.score }

// CoinsEarned returns the coins credited to this session so far.
func (e *Engine) CoinsEarned() int { return e.coinsEarned }

// Answers returns the answer log in order.
func (e *Engine) Answers() []Answer { return slices.Clone(e.answers) }

// Result returns the finished session, or nil before finish.
func (e *Engine) Result() *history.SessionResult { return e.result }

// Outcome returns what the stats store reported at finish.
func (e *Engine) Outcome() stats.Outcome { return e.outcome }

// Status returns the outcome of question i for the question map.
func (e *Engine) Status(i int) Status {
	if i < 0 || i >= len(e.answers) {
		return StatusPending
	}
	if e.answers[i].Correct {
		return StatusCorrect
	}
	return StatusIncorrect
}
