package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMultiChoice_CursorSkipsEliminated(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c", "d"})
	m.Eliminate([]int{1, 2})

	m, _ = m.Update(key("down"))
	if m.Cursor != 3 {
		t.Fatalf("cursor = %d, want 3", m.Cursor)
	}
	m, _ = m.Update(key("up"))
	if m.Cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.Cursor)
	}
}

func TestMultiChoice_EliminateMovesCursor(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c", "d"})
	m.Eliminate([]int{0, 1})
	if m.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.Cursor)
	}
}

func TestMultiChoice_EnterChooses(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c", "d"})
	m, _ = m.Update(key("down"))
	_, chosen := m.Update(key("enter"))
	if chosen != 1 {
		t.Fatalf("chosen = %d, want 1", chosen)
	}
}

func TestMultiChoice_RevealedIgnoresInput(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c", "d"})
	m.Reveal(2, 1)
	m, chosen := m.Update(key("enter"))
	if chosen != -1 {
		t.Fatalf("chosen = %d, want -1 after reveal", chosen)
	}
	view := m.View(40)
	if !strings.Contains(view, "✓") || !strings.Contains(view, "✗") {
		t.Errorf("revealed view should mark correct and chosen options:\n%s", view)
	}
}

func TestProgressBar_ClampsPercent(t *testing.T) {
	over := NewProgressBar("", 1.7, true, 20).View()
	if !strings.Contains(over, "100%") {
		t.Errorf("expected 100%% for overflow, got %q", over)
	}
	under := NewProgressBar("", -0.2, true, 20).View()
	if !strings.Contains(under, "0%") {
		t.Errorf("expected 0%% for underflow, got %q", under)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "On", Action: func() tea.Cmd { called = true; return nil }},
	})
	if m.Current() != "On" {
		t.Fatalf("current = %q, want On", m.Current())
	}
	m.Update(key("enter"))
	if !called {
		t.Error("expected action to run")
	}
}

func TestMenu_CursorStopsAtEnds(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "First"},
		{Label: "Middle", Disabled: true, Hint: "locked"},
		{Label: "Last"},
	})
	m, _ = m.Update(key("up"))
	if m.Current() != "First" {
		t.Fatalf("current = %q, want First", m.Current())
	}
	m, _ = m.Update(key("down"))
	if m.Current() != "Last" {
		t.Fatalf("current = %q, want Last", m.Current())
	}
	m, _ = m.Update(key("down"))
	if m.Current() != "Last" {
		t.Fatalf("current = %q, want Last", m.Current())
	}
	if !strings.Contains(m.View(), "locked") {
		t.Error("expected the disabled item's hint in the view")
	}
}
