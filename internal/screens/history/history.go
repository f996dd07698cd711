package history

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	hist "github.com/abhisek/testplus/internal/history"
	"github.com/abhisek/testplus/internal/screen"
	"github.com/abhisek/testplus/internal/ui/layout"
	"github.com/abhisek/testplus/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []hist.SessionResult
}

// HistoryScreen lists past sessions, newest first.
type HistoryScreen struct {
	store    *hist.Store
	sessions []hist.SessionResult
	selected int
	expanded map[int]bool
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(store *hist.Store) *HistoryScreen {
	return &HistoryScreen{
		store:    store,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return historyLoadedMsg{Sessions: s.store.List()}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.sessions = msg.Sessions
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Pick a topic and start a quiz!")
	}

	var lines []string
	selectedLine := 0
	for i, r := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
			selectedLine = len(lines)
		}

		line := fmt.Sprintf("%s%s  %-24s  %2d/%-2d  %3d%%  %d:%02d  +%d coins",
			prefix, r.Date.Local().Format("Jan 02, 2006 15:04"), truncate(r.Topic, 24),
			r.Score, r.TotalQuestions, r.Accuracy,
			r.TimeSpentSeconds/60, r.TimeSpentSeconds%60, r.CoinsEarned)

		style := lipgloss.NewStyle().Foreground(accuracyColor(r.Accuracy))
		if i == s.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))

		if s.expanded[i] {
			for _, d := range details(r) {
				lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(d)))
			}
		}
	}

	return "\n" + strings.Join(window(lines, selectedLine, height-1), "\n")
}

func details(r hist.SessionResult) []string {
	out := []string{fmt.Sprintf("    %d correct, %d incorrect", len(r.CorrectIDs), len(r.IncorrectIDs))}
	if len(r.WeakTags) > 0 {
		out = append(out, "    Weak areas: "+strings.Join(r.WeakTags, ", "))
	} else {
		out = append(out, "    No weak areas")
	}
	return out
}

// window returns at most n lines of lines, scrolled so focus is visible.
func window(lines []string, focus, n int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	start := 0
	if focus >= n {
		start = focus - n + 1
	}
	return lines[start:min(start+n, len(lines))]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func accuracyColor(acc int) color.Color {
	switch {
	case acc >= 80:
		return theme.Success
	case acc >= 50:
		return theme.Text
	default:
		return theme.Accent
	}
}
