package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/testplus/internal/quiz"
	"github.com/abhisek/testplus/internal/ui/components"
	"github.com/abhisek/testplus/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	question := q.eng.Question()

	var b strings.Builder
	b.WriteString(q.renderInfoLine(cw))
	b.WriteString("\n")
	b.WriteString(q.renderQuestionMap())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw).Render(question.Question))
	b.WriteString("\n\n")
	b.WriteString(q.choice.View(cw))

	if q.eng.HintShown() && question.Hint != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Width(cw).Render("Hint: " + question.Hint))
		b.WriteString("\n")
	}

	if q.eng.Phase() == engine.PhaseRevealed {
		b.WriteString("\n")
		b.WriteString(q.renderFeedback(cw))
	}

	if q.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(q.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 0).Render(b.String()))
}

func (q *QuizScreen) renderInfoLine(cw int) string {
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("Question %d/%d", q.eng.Index()+1, q.eng.Total()))

	timer := fmt.Sprintf("⏱ %d:%02d", q.eng.TimeLeft()/60, q.eng.TimeLeft()%60)
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if q.eng.Urgent() && q.eng.Phase() == engine.PhaseAwaitingAnswer {
		timerStyle = theme.Urgent
	}

	bookmark := ""
	if q.eng.IsBookmarked() {
		bookmark = lipgloss.NewStyle().Foreground(theme.Coin).Render("★") + "   "
	}

	right := bookmark +
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✓ %d", q.eng.Score())) + "   " +
		lipgloss.NewStyle().Foreground(theme.Coin).Render(fmt.Sprintf("+%d", q.eng.CoinsEarned())) + "   " +
		timerStyle.Render(timer)

	gap := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderQuestionMap draws one cell per question coloured by its outcome.
func (q *QuizScreen) renderQuestionMap() string {
	cells := make([]string, 0, q.eng.Total())
	for i := range q.eng.Total() {
		label := fmt.Sprintf("%d", i+1)
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case q.eng.Status(i) == engine.StatusCorrect:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case q.eng.Status(i) == engine.StatusIncorrect:
			style = lipgloss.NewStyle().Foreground(theme.Error)
		case i == q.eng.Index():
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
		}
		cells = append(cells, style.Render(label))
	}
	return strings.Join(cells, " ")
}

func (q *QuizScreen) renderFeedback(cw int) string {
	question := q.eng.Question()
	var head string
	if question.IsCorrect(q.eng.Selected()) {
		head = theme.Correct.Render(fmt.Sprintf("Correct! +%d coins", engine.CorrectReward))
	} else {
		head = theme.Incorrect.Render("Not quite. The answer is " + question.CorrectOption() + ".")
	}
	if question.Explanation == "" {
		return head
	}
	return head + "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Render(question.Explanation)
}
