package generating

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/testplus/internal/router"
	"github.com/abhisek/testplus/internal/screen"
	quizscreen "github.com/abhisek/testplus/internal/screens/quiz"
	"github.com/abhisek/testplus/internal/studygen"
	"github.com/abhisek/testplus/internal/ui/layout"
	"github.com/abhisek/testplus/internal/ui/theme"
)

// FailedMsg is handed to the screen below when generation fails.
type FailedMsg struct {
	Topic string
	Err   error
}

// generatedMsg carries the generator's answer back into the update loop.
// RequestID names the screen that asked; a screen left with Esc may still
// get its answer delivered to a newer screen.
type generatedMsg struct {
	RequestID string
	Content *studygen.Content
	Err     error
	Elapsed time.Duration
}

// GeneratingScreen waits on one study-set generation, then hands the
// content to a quiz.
type GeneratingScreen struct {
	svc       screen.Services
	requestID string
	topic     string
	settings  studygen.Settings
	spinner   spinner.Model
}

var _ screen.Screen = (*GeneratingScreen)(nil)
var _ screen.KeyHintProvider = (*GeneratingScreen)(nil)

// New creates a GeneratingScreen for topic.
func New(svc screen.Services, topic string, settings studygen.Settings) *GeneratingScreen {
	return &GeneratingScreen{
		svc:       svc,
		requestID: uuid.NewString(),
		topic:     topic,
		settings:  settings,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
	}
}

func (g *GeneratingScreen) Init() tea.Cmd {
	return tea.Batch(g.spinner.Tick, g.generate())
}

func (g *GeneratingScreen) Title() string {
	return "Generating"
}

func (g *GeneratingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (g *GeneratingScreen) generate() tea.Cmd {
	gen := g.svc.Generator
	id, topic, settings := g.requestID, g.topic, g.settings
	return func() tea.Msg {
		start := time.Now()
		content, err := gen.Generate(context.Background(), topic, settings)
		return generatedMsg{RequestID: id, Content: content, Err: err, Elapsed: time.Since(start)}
	}
}

func (g *GeneratingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		return g, g.handleGenerated(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		g.spinner, cmd = g.spinner.Update(msg)
		return g, cmd
	}
	return g, nil
}

func (g *GeneratingScreen) handleGenerated(msg generatedMsg) tea.Cmd {
	log := g.svc.Logger.With("topic", g.topic)
	if msg.RequestID != g.requestID {
		log.Debug("dropping stale study set", "request_id", msg.RequestID)
		return nil
	}
	if msg.Err != nil {
		log.Warn("study set generation failed", "error", msg.Err, "elapsed", msg.Elapsed)
		return router.PopWith(FailedMsg{Topic: g.topic, Err: msg.Err})
	}

	q, err := quizscreen.New(g.svc, msg.Content)
	if err != nil {
		log.Error("generated study set is unusable", "error", err)
		return router.PopWith(FailedMsg{Topic: g.topic, Err: err})
	}
	log.Info("study set generated",
		"questions", len(msg.Content.MCQs),
		"flashcards", len(msg.Content.Flashcards),
		"elapsed", msg.Elapsed)
	return router.Replace(q)
}

func (g *GeneratingScreen) View(width, height int) string {
	title := layout.Center(width, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		g.spinner.View()+" Generating "+questionsLabel(g.settings.QuestionCount)+" on "+fmt.Sprintf("%q", g.topic))
	detail := layout.Center(width, theme.Hint,
		fmt.Sprintf("%s difficulty · %s pace (%ds per question)",
			g.settings.Difficulty, g.settings.TimerMode, g.settings.TimerMode.Seconds()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, title, "", detail))
}

func questionsLabel(n int) string {
	if n == 1 {
		return "1 question"
	}
	return fmt.Sprintf("%d questions", n)
}
