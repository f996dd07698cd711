package components

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/testplus/internal/ui/theme"
)

// MultiChoice renders a question's options with a movable cursor. It does
// not own the answer: the caller decides what a choice means and feeds the
// outcome back through Reveal.
type MultiChoice struct {
	Options    []string
	Cursor     int
	Eliminated []int

	revealed bool
	chosen   int
	correct  int
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options, chosen: -1, correct: -1}
}

// Eliminate greys out the given options and moves the cursor off them.
func (m *MultiChoice) Eliminate(indices []int) {
	m.Eliminated = slices.Clone(indices)
	if m.isEliminated(m.Cursor) {
		m.Cursor = m.nextOpen(m.Cursor, 1)
	}
}

// Reveal fixes the chosen and correct options for display.
func (m *MultiChoice) Reveal(chosen, correct int) {
	m.revealed = true
	m.chosen = chosen
	m.correct = correct
}

// Revealed reports whether the options are showing the outcome.
func (m MultiChoice) Revealed() bool {
	return m.revealed
}

// Update moves the cursor. On enter it returns the option under the
// cursor; otherwise it returns -1.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, int) {
	if m.revealed {
		return m, -1
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, -1
	}

	switch kmsg.String() {
	case "up", "k":
		m.Cursor = m.nextOpen(m.Cursor, -1)
	case "down", "j":
		m.Cursor = m.nextOpen(m.Cursor, 1)
	case "enter":
		if m.Cursor >= 0 && m.Cursor < len(m.Options) && !m.isEliminated(m.Cursor) {
			return m, m.Cursor
		}
	}
	return m, -1
}

// View renders the options numbered from 1.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.revealed && i == m.correct:
			style = theme.Correct
			line += "  ✓"
		case m.revealed && i == m.chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.isEliminated(i):
			style = theme.Eliminated
		case m.revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Width(width).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m MultiChoice) isEliminated(i int) bool {
	return slices.Contains(m.Eliminated, i)
}

// nextOpen walks from i in direction dir to the next option that is not
// eliminated, staying put when there is none.
func (m MultiChoice) nextOpen(i, dir int) int {
	for j := i + dir; j >= 0 && j < len(m.Options); j += dir {
		if !m.isEliminated(j) {
			return j
		}
	}
	if m.isEliminated(i) {
		for j := range m.Options {
			if !m.isEliminated(j) {
				return j
			}
		}
	}
	return i
}
