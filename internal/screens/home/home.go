package home

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/testplus/internal/llm"
	"github.com/abhisek/testplus/internal/router"
	"github.com/abhisek/testplus/internal/screen"
	"github.com/abhisek/testplus/internal/screens/achievements"
	"github.com/abhisek/testplus/internal/screens/bookmarks"
	"github.com/abhisek/testplus/internal/screens/generating"
	"github.com/abhisek/testplus/internal/screens/history"
	statsscreen "github.com/abhisek/testplus/internal/screens/stats"
	"github.com/abhisek/testplus/internal/stats"
	"github.com/abhisek/testplus/internal/studygen"
	"github.com/abhisek/testplus/internal/ui/components"
	"github.com/abhisek/testplus/internal/ui/layout"
	"github.com/abhisek/testplus/internal/ui/theme"
)

// QuickTopics are offered as one-key starting points.
var QuickTopics = []string{"React Hooks", "World War II", "Biology", "Calculus"}

// maxTopicLength caps the topic input.
const maxTopicLength = 120

type focus int

const (
	focusTopic focus = iota
	focusQuick
	focusQuestions
	focusDifficulty
	focusTimer
	focusMenu
	numFocus
)

// HomeScreen takes a topic and generation settings and links to the
// profile views.
type HomeScreen struct {
	svc      screen.Services
	input    components.TextInput
	focus    focus
	quick    int
	settings studygen.Settings
	menu     components.Menu
	errMsg   string
	now      func() time.Time
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc screen.Services) *HomeScreen {
	h := &HomeScreen{
		svc:      svc,
		input:    components.NewTextInput("What do you want to learn today?", maxTopicLength),
		settings: studygen.DefaultSettings(),
		now:      time.Now,
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "History", Action: func() tea.Cmd {
			return router.Push(history.New(svc.History))
		}},
		{Label: "Stats", Action: func() tea.Cmd {
			return router.Push(statsscreen.New(svc))
		}},
		{Label: "Achievements", Action: func() tea.Cmd {
			return router.Push(achievements.New(svc.Stats))
		}},
		{Label: "Bookmarks", Action: func() tea.Cmd {
			return router.Push(bookmarks.New(svc))
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.focus == focusTopic {
		return h.input.Focus()
	}
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Next field"}}
	switch h.focus {
	case focusTopic:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Start"})
	case focusMenu:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Navigate"}, layout.KeyHint{Key: "Enter", Description: "Open"})
	default:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Choose"}, layout.KeyHint{Key: "Enter", Description: "Start"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Settings returns the generation settings currently selected.
func (h *HomeScreen) Settings() studygen.Settings {
	return h.settings
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generating.FailedMsg:
		h.input.SetValue(msg.Topic)
		h.errMsg = failureText(msg.Err)
		return h, h.setFocus(focusTopic)
	case tea.KeyMsg:
		return h, h.handleKey(msg)
	}

	if h.focus == focusTopic {
		var cmd tea.Cmd
		h.input, cmd = h.input.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "tab":
		return h.setFocus((h.focus + 1) % numFocus)
	case "shift+tab":
		return h.setFocus((h.focus + numFocus - 1) % numFocus)
	}

	switch h.focus {
	case focusTopic:
		if key == "enter" {
			return h.start()
		}
		if key == "down" {
			return h.setFocus(focusQuick)
		}
		var cmd tea.Cmd
		h.input, cmd = h.input.Update(msg)
		return cmd

	case focusMenu:
		switch key {
		case "left", "h":
			msg = tea.KeyPressMsg{Code: tea.KeyUp}
		case "right", "l":
			msg = tea.KeyPressMsg{Code: tea.KeyDown}
		case "up", "k":
			return h.setFocus(focusTimer)
		}
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return cmd
	}

	switch key {
	case "left", "h":
		h.cycle(-1)
	case "right", "l":
		h.cycle(1)
	case "up", "k":
		return h.setFocus(h.focus - 1)
	case "down", "j":
		return h.setFocus(h.focus + 1)
	case "enter":
		if h.focus == focusQuick {
			h.input.SetValue(QuickTopics[h.quick])
		}
		return h.start()
	}
	return nil
}

func (h *HomeScreen) setFocus(f focus) tea.Cmd {
	h.focus = f
	if f == focusTopic {
		return h.input.Focus()
	}
	h.input.Blur()
	return nil
}

// cycle moves the focused selector by delta with wrap-around.
func (h *HomeScreen) cycle(delta int) {
	switch h.focus {
	case focusQuick:
		h.quick = wrap(h.quick+delta, len(QuickTopics))
	case focusQuestions:
		i := indexOf(studygen.QuestionCounts, h.settings.QuestionCount)
		h.settings.QuestionCount = studygen.QuestionCounts[wrap(i+delta, len(studygen.QuestionCounts))]
	case focusDifficulty:
		i := indexOf(studygen.Difficulties, h.settings.Difficulty)
		h.settings.Difficulty = studygen.Difficulties[wrap(i+delta, len(studygen.Difficulties))]
	case focusTimer:
		i := indexOf(studygen.TimerModes, h.settings.TimerMode)
		h.settings.TimerMode = studygen.TimerModes[wrap(i+delta, len(studygen.TimerModes))]
	}
}

// start validates the topic and hands off to generation.
func (h *HomeScreen) start() tea.Cmd {
	topic := h.input.Value()
	if topic == "" {
		h.input.Reject("Enter a topic to study.")
		return h.setFocus(focusTopic)
	}
	h.errMsg = ""
	h.svc.Logger.Info("starting generation", "topic", topic,
		"questions", h.settings.QuestionCount,
		"difficulty", string(h.settings.Difficulty),
		"timer", string(h.settings.TimerMode))
	return router.Push(generating.New(h.svc, topic, h.settings))
}

// mascot picks the mascot mood from today's activity.
func (h *HomeScreen) mascot(p stats.UserStats) MascotVariant {
	return moodFor(p, h.now())
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)
	profile := h.svc.Stats.Stats()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		mood := h.mascot(profile)
		mascot := RenderMascot(mood) + "\n" + theme.Hint.Render(mascotCaption(mood, profile))
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center, mascot))
	}
	sections = append(sections,
		renderStatsBar(profile, cw),
		h.renderTopic(cw),
		h.renderSettings(),
	)
	if h.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Foreground(theme.Error).
			Render(fmt.Sprintf("✗ %s", h.errMsg)))
	}
	sections = append(sections, h.renderMenu(cw))

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, sep))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

func indexOf[T comparable](xs []T, v T) int {
	return max(slices.Index(xs, v), 0)
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// failureText keeps the generic generation message and appends the
// provider's reason when there is one.
func failureText(err error) string {
	if !errors.Is(err, studygen.ErrGeneration) {
		return err.Error()
	}
	text := studygen.ErrGeneration.Error()
	if reason := llm.Reason(err); reason != "" {
		text += " (" + reason + ")"
	}
	return text
}
