package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/testplus/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for cards so they
// visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(1, 2).
		Render(content)
}

// Chip renders a compact option label. Selected chips are filled.
func Chip(label string, selected bool) string {
	if selected {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Coin).
			Padding(0, 1).
			Render(label)
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(0, 1).
		Render(label)
}

// ChipRow renders labels as chips on one line, highlighting selected.
func ChipRow(labels []string, selected int) string {
	parts := make([]string, 0, len(labels))
	for i, l := range labels {
		parts = append(parts, Chip(l, i == selected))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
