package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/testplus/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Hint is shown dimmed after the label,
// typically to explain why the item is disabled.
type MenuItem struct {
	Label    string
	Hint     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions. Disabled items are skipped by the
// cursor.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// Current returns the highlighted item label.
func (m Menu) Current() string {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return ""
	}
	return m.Items[m.Selected].Label
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update moves the cursor on up/down (or k/j) and runs the highlighted
// action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			return m, nil
		}
		if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}
	return m, nil
}

// move steps the cursor to the next enabled item in direction step. The
// cursor stays put at either end.
func (m *Menu) move(step int) {
	for i := m.Selected + step; i >= 0 && i < len(m.Items); i += step {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// View renders the menu, one item per line.
func (m Menu) View() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString(dim.Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		if item.Hint != "" {
			b.WriteString(dim.Render("  " + item.Hint))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
