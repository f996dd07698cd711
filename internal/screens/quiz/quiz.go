package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	engine "github.com/abhisek/testplus/internal/quiz"
	"github.com/abhisek/testplus/internal/router"
	"github.com/abhisek/testplus/internal/screen"
	"github.com/abhisek/testplus/internal/screens/results"
	"github.com/abhisek/testplus/internal/studygen"
	"github.com/abhisek/testplus/internal/ui/components"
	"github.com/abhisek/testplus/internal/ui/layout"
)

// tickMsg is one countdown second for the timer identified by token.
type tickMsg struct {
	token uint64
}

// QuizScreen drives a quiz engine from the keyboard.
type QuizScreen struct {
	svc     screen.Services
	content *studygen.Content
	eng     *engine.Engine
	choice  components.MultiChoice
	notice  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New starts a quiz over content.
func New(svc screen.Services, content *studygen.Content) (*QuizScreen, error) {
	eng, err := engine.New(content, svc.Stats, svc.History, engine.Config{Logger: svc.Logger})
	if err != nil {
		return nil, err
	}
	q := &QuizScreen{svc: svc, content: content, eng: eng}
	q.resetChoice()
	return q, nil
}

func (q *QuizScreen) Init() tea.Cmd {
	return tick(q.eng.Token())
}

func (q *QuizScreen) Title() string {
	return q.eng.Topic()
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.eng.Phase() == engine.PhaseRevealed {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "B", Description: "Bookmark"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "H", Description: fmt.Sprintf("Hint (%d)", engine.HintCost)},
		{Key: "F", Description: fmt.Sprintf("50:50 (%d)", engine.FiftyFiftyCost)},
		{Key: "B", Description: "Bookmark"},
		{Key: "Esc", Description: "Quit"},
	}
}

// Engine exposes the running engine.
func (q *QuizScreen) Engine() *engine.Engine {
	return q.eng
}

func tick(token uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{token: token}
	})
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if q.eng.Tick(msg.token) {
			return q, tick(msg.token)
		}
		return q, nil
	case tea.KeyMsg:
		return q, q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := context.Background()
	key := msg.String()

	if key == "b" {
		q.toggleBookmark(ctx)
		return nil
	}

	switch q.eng.Phase() {
	case engine.PhaseAwaitingAnswer:
		q.notice = ""
		switch key {
		case "1", "2", "3", "4":
			_ = q.eng.PressKey(ctx, key)
		case "h":
			q.lifeline(q.eng.BuyHint(ctx), "Hint")
		case "f":
			if q.lifeline(q.eng.BuyFiftyFifty(ctx), "50:50") {
				q.choice.Eliminate(q.eng.Eliminated())
			}
		default:
			var chosen int
			q.choice, chosen = q.choice.Update(msg)
			if chosen >= 0 {
				q.eng.SelectOption(chosen)
			}
		}
		if q.eng.Phase() == engine.PhaseRevealed {
			q.choice.Reveal(q.eng.Selected(), q.eng.Question().AnswerIndex)
		}

	case engine.PhaseRevealed:
		if key == "enter" || key == "n" || key == "right" {
			return q.next(ctx)
		}
	}
	return nil
}

// lifeline turns a lifeline refusal into a notice. It reports whether
// the purchase went through.
func (q *QuizScreen) lifeline(err error, name string) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, engine.ErrInsufficientCoins):
		q.notice = fmt.Sprintf("Not enough coins for %s.", name)
	case errors.Is(err, engine.ErrLifelineUsed):
		q.notice = fmt.Sprintf("%s already used on this question.", name)
	default:
		q.notice = err.Error()
	}
	return false
}

func (q *QuizScreen) toggleBookmark(ctx context.Context) {
	saved, err := q.eng.ToggleBookmark(ctx)
	switch {
	case err != nil:
		q.svc.Logger.Warn("bookmark toggle failed", "error", err)
		q.notice = "Could not save bookmark."
	case saved:
		q.notice = "Bookmarked."
	default:
		q.notice = "Bookmark removed."
	}
}

func (q *QuizScreen) next(ctx context.Context) tea.Cmd {
	q.notice = ""
	if err := q.eng.Next(ctx); err != nil {
		q.svc.Logger.Error("failed to record session", "error", err)
	}

	if q.eng.Phase() == engine.PhaseFinished {
		content := q.content
		svc := q.svc
		retry := func() (screen.Screen, error) { return New(svc, content) }
		return router.Replace(results.New(svc, content, *q.eng.Result(), q.eng.Outcome(), retry))
	}

	q.resetChoice()
	return tick(q.eng.Token())
}

func (q *QuizScreen) resetChoice() {
	q.choice = components.NewMultiChoice(q.eng.Question().Options)
}
