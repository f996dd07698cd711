// Package screentest builds screen dependencies over an in-memory store.
package screentest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/testplus/internal/history"
	"github.com/abhisek/testplus/internal/logger"
	"github.com/abhisek/testplus/internal/screen"
	"github.com/abhisek/testplus/internal/stats"
	"github.com/abhisek/testplus/internal/store"
	"github.com/abhisek/testplus/internal/studygen"
)

// Generator is a studygen.Generator that returns a canned result.
type Generator struct {
	Content *studygen.Content
	Err     error

	Calls []Call
}

// Call records one Generate invocation.
type Call struct {
	Topic    string
	Settings studygen.Settings
}

func (g *Generator) Generate(_ context.Context, topic string, settings studygen.Settings) (*studygen.Content, error) {
	g.Calls = append(g.Calls, Call{Topic: topic, Settings: settings})
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Content, nil
}

// Services returns screen services backed by a fresh in-memory database.
func Services(t *testing.T, gen studygen.Generator) screen.Services {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.OpenMemory(name)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	log := logger.Nop()
	st := stats.NewService(s.DocumentRepo(), stats.Config{Logger: log})
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("load stats: %v", err)
	}
	hist := history.NewStore(s.DocumentRepo(), log)
	if err := hist.Load(context.Background()); err != nil {
		t.Fatalf("load history: %v", err)
	}

	return screen.Services{
		Generator: gen,
		Stats:     st,
		History:   hist,
		Logger:    log,
	}
}

// Content returns a study set of n questions whose correct answer is
// always option index 1.
func Content(topic string, n int) *studygen.Content {
	c := &studygen.Content{Topic: topic}
	for i := range n {
		c.MCQs = append(c.MCQs, studygen.MCQ{
			ID:           fmt.Sprintf("q%d", i+1),
			Question:     fmt.Sprintf("Question %d?", i+1),
			Options:      []string{"alpha", "beta", "gamma", "delta"},
			AnswerIndex:  1,
			Difficulty:   studygen.DifficultyEasy,
			Tags:         []string{fmt.Sprintf("tag%d", i+1)},
			TimerSeconds: 30,
			Hint:         "Think of the second letter.",
			Explanation:  "Beta is second.",
		})
	}
	c.Flashcards = []studygen.Flashcard{
		{ID: "f1", Front: "Front one", Back: "Back one", Mnemonic: "One"},
		{ID: "f2", Front: "Front two", Back: "Back two"},
		{ID: "f3", Front: "Front three", Back: "Back three"},
	}
	c.StudyPlan = []string{"Read", "Practice", "Review"}
	return c
}

// Key builds a key press for names like "enter", "esc", "left" or a
// single printable character.
func Key(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(name)[0]
	return tea.KeyPressMsg{Code: r, Text: name}
}

// Drain runs cmd and any batched or sequenced commands it yields,
// returning every resulting message. Commands that sleep, such as ticks,
// must not be passed in.
func Drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch m := msg.(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range m {
			out = append(out, Drain(c)...)
		}
		return out
	case nil:
		return nil
	}
	return []tea.Msg{msg}
}
