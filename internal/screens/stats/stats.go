package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	hist "github.com/abhisek/testplus/internal/history"
	st "github.com/abhisek/testplus/internal/stats"
	"github.com/abhisek/testplus/internal/screen"
	"github.com/abhisek/testplus/internal/ui/components"
	"github.com/abhisek/testplus/internal/ui/theme"
)

// TrendLength is how many recent sessions the accuracy trend shows.
const TrendLength = 10

// StatsScreen shows the profile and recent accuracy.
type StatsScreen struct {
	svc screen.Services
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(svc screen.Services) *StatsScreen {
	return &StatsScreen{svc: svc}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	profile := s.svc.Stats.Stats()

	sections := []string{
		components.Card(renderLevel(profile, cw-6), cw),
		components.Card(renderTotals(profile), cw),
		components.Card(renderTrend(s.svc.History.AccuracyTrend(TrendLength), cw-6), cw),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderLevel(p st.UserStats, barWidth int) string {
	lvl := p.Level()
	head := theme.Body.Bold(true).Render(fmt.Sprintf("Level %d", lvl.Level)) + "   " +
		lipgloss.NewStyle().Foreground(theme.Coin).Render(fmt.Sprintf("%d XP", p.XP))
	bar := components.NewProgressBar("", lvl.Progress/100, true, barWidth).View()
	next := theme.Hint.Render(fmt.Sprintf("%d XP to level %d", lvl.XPToNext(p.XP), lvl.Level+1))

	goal := components.NewProgressBar("Daily goal", float64(p.DailyGoalProgress)/100, true, barWidth).View()
	return lipgloss.JoinVertical(lipgloss.Left, head, bar, next, "", goal)
}

func renderTotals(p st.UserStats) string {
	row := func(label string, value any) string {
		return fmt.Sprintf("%-20s %s", theme.Hint.Render(label), theme.Body.Bold(true).Render(fmt.Sprint(value)))
	}
	return strings.Join([]string{
		row("Sessions", p.TotalSessions),
		row("Questions answered", p.TotalQuestionsAnswered),
		row("Average accuracy", fmt.Sprintf("%d%%", p.AverageAccuracy)),
		row("Current streak", fmt.Sprintf("%d days", p.CurrentStreak)),
		row("Coins", p.Coins),
		row("Achievements", len(p.UnlockedAchievements)),
		row("Bookmarks", len(p.Bookmarks)),
	}, "\n")
}

// renderTrend draws one bar per session, oldest at the top.
func renderTrend(points []hist.TrendPoint, width int) string {
	head := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Accuracy trend")
	if len(points) == 0 {
		return head + "\n" + theme.Hint.Render("Complete a quiz to see your trend.")
	}

	barWidth := max(width-32, 10)
	lines := []string{head}
	for _, p := range points {
		filled := min(max(p.Accuracy, 0), 100) * barWidth / 100
		bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))
		lines = append(lines, fmt.Sprintf("%s  %s %3d%%  %s",
			p.Date.Local().Format("Jan 02"), bar, p.Accuracy, theme.Hint.Render(truncate(p.Topic, 14))))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
