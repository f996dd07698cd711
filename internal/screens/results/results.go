package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/testplus/internal/history"
	"github.com/abhisek/testplus/internal/router"
	"github.com/abhisek/testplus/internal/screen"
	"github.com/abhisek/testplus/internal/screens/flashcards"
	"github.com/abhisek/testplus/internal/stats"
	"github.com/abhisek/testplus/internal/studygen"
	"github.com/abhisek/testplus/internal/ui/components"
	"github.com/abhisek/testplus/internal/ui/layout"
	"github.com/abhisek/testplus/internal/ui/theme"
)

// RetryFunc builds a fresh quiz over the same content.
type RetryFunc func() (screen.Screen, error)

// ResultsScreen is the post-session report.
type ResultsScreen struct {
	svc     screen.Services
	content *studygen.Content
	result  history.SessionResult
	outcome stats.Outcome
	menu    components.Menu
	errMsg  string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the report for result. retry may be nil when the content
// cannot be replayed.
func New(svc screen.Services, content *studygen.Content, result history.SessionResult, outcome stats.Outcome, retry RetryFunc) *ResultsScreen {
	r := &ResultsScreen{
		svc:     svc,
		content: content,
		result:  result,
		outcome: outcome,
	}

	noCards := content == nil || len(content.Flashcards) == 0
	items := []components.MenuItem{
		{Label: "Retry quiz", Disabled: retry == nil, Action: func() tea.Cmd {
			s, err := retry()
			if err != nil {
				r.errMsg = err.Error()
				return nil
			}
			return router.Replace(s)
		}},
		{Label: "Review flashcards", Disabled: noCards, Action: func() tea.Cmd {
			return router.Push(flashcards.New(content.Topic, content.Flashcards))
		}},
		{Label: "Home", Action: router.Home},
	}
	if noCards {
		items[1].Hint = "no flashcards in this set"
	}
	r.menu = components.NewMenu(items)
	return r
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	res := r.result

	var b strings.Builder

	headline := "Session complete!"
	if res.Perfect() {
		headline = "Perfect score!"
	}
	b.WriteString(layout.Center(cw, theme.Title, headline))
	b.WriteString("\n")
	b.WriteString(layout.Center(cw, theme.Subtitle, res.Topic))
	b.WriteString("\n\n")

	b.WriteString(layout.Center(cw, theme.Body, fmt.Sprintf(
		"Score %d/%d    Accuracy %d%%    Time %d:%02d    Coins +%d",
		res.Score, res.TotalQuestions, res.Accuracy,
		res.TimeSpentSeconds/60, res.TimeSpentSeconds%60, res.CoinsEarned)))
	b.WriteString("\n\n")

	b.WriteString(components.Card(r.renderLevel(cw-6), cw))
	b.WriteString("\n")
	b.WriteString(components.Card(r.renderWeakTags(), cw))
	b.WriteString("\n")

	if len(r.outcome.NewAchievements) > 0 {
		b.WriteString(components.Card(r.renderAchievements(), cw))
		b.WriteString("\n")
	}

	if r.content != nil && len(r.content.StudyPlan) > 0 {
		b.WriteString(components.Card(r.renderStudyPlan(), cw))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.menu.View())

	if r.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(r.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (r *ResultsScreen) renderLevel(barWidth int) string {
	after := r.outcome.LevelAfter
	xp := r.svc.Stats.Stats().XP

	title := lipgloss.NewStyle().Foreground(theme.Coin).Bold(true).
		Render(fmt.Sprintf("+%d XP", r.outcome.SessionXP))
	level := theme.Body.Bold(true).Render(fmt.Sprintf("Level %d", after.Level))
	if r.outcome.LeveledUp() {
		level += "  " + theme.Correct.Render("Level up!")
	}

	bar := components.NewProgressBar("", after.Progress/100, true, barWidth).View()
	next := theme.Hint.Render(fmt.Sprintf("%d XP to level %d", after.XPToNext(xp), after.Level+1))

	return lipgloss.JoinVertical(lipgloss.Left, title+"   "+level, bar, next)
}

func (r *ResultsScreen) renderWeakTags() string {
	head := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Areas to review")
	if len(r.result.WeakTags) == 0 {
		return head + "\n" + theme.Correct.Render("Perfect! No weak areas detected.")
	}
	return head + "\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Join(r.result.WeakTags, " · "))
}

func (r *ResultsScreen) renderAchievements() string {
	lines := []string{lipgloss.NewStyle().Foreground(theme.Coin).Bold(true).Render("Achievements unlocked")}
	for _, a := range r.outcome.NewAchievements {
		lines = append(lines, fmt.Sprintf("%s  %s  %s", a.Icon.Glyph(),
			theme.Body.Bold(true).Render(a.Name), theme.Hint.Render(a.Description)))
	}
	return strings.Join(lines, "\n")
}

func (r *ResultsScreen) renderStudyPlan() string {
	lines := []string{lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Study plan")}
	for i, step := range r.content.StudyPlan {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
	}
	return strings.Join(lines, "\n")
}
