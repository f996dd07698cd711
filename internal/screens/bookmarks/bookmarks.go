package bookmarks

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/testplus/internal/logger"
	"github.com/abhisek/testplus/internal/screen"
	"github.com/abhisek/testplus/internal/stats"
	"github.com/abhisek/testplus/internal/ui/layout"
	"github.com/abhisek/testplus/internal/ui/theme"
)

// BookmarksScreen lists saved questions, newest first.
type BookmarksScreen struct {
	stats    *stats.Service
	log      *logger.Logger
	items    []stats.Bookmark
	selected int
	open     bool
	errMsg   string
}

var _ screen.Screen = (*BookmarksScreen)(nil)
var _ screen.KeyHintProvider = (*BookmarksScreen)(nil)

// New creates a new BookmarksScreen.
func New(svc screen.Services) *BookmarksScreen {
	return &BookmarksScreen{stats: svc.Stats, log: svc.Logger}
}

func (b *BookmarksScreen) Init() tea.Cmd {
	b.items = b.stats.Bookmarks()
	b.selected = min(b.selected, max(len(b.items)-1, 0))
	return nil
}

func (b *BookmarksScreen) Title() string {
	return "Bookmarks"
}

func (b *BookmarksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Show answer"},
		{Key: "D", Description: "Remove"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BookmarksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(b.items) == 0 {
		return b, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if b.selected > 0 {
			b.selected--
			b.open = false
		}
	case "down", "j":
		if b.selected < len(b.items)-1 {
			b.selected++
			b.open = false
		}
	case "enter":
		b.open = !b.open
	case "d", "x", "delete":
		b.remove()
	}
	return b, nil
}

func (b *BookmarksScreen) remove() {
	bm := b.items[b.selected]
	if _, err := b.stats.ToggleBookmark(context.Background(), bm.Question, bm.Topic); err != nil {
		b.log.Warn("failed to remove bookmark", "id", bm.ID, "error", err)
		b.errMsg = "Could not remove bookmark."
	}
	b.open = false
	b.Init()
}

func (b *BookmarksScreen) View(width, height int) string {
	if len(b.items) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No bookmarks yet. Press B during a quiz to save a question.")
	}

	var s strings.Builder
	s.WriteString("\n")
	for i, bm := range b.items {
		prefix := "  "
		style := theme.Unselected
		if i == b.selected {
			prefix = "> "
			style = theme.Selected
		}
		s.WriteString(style.Render(fmt.Sprintf("%s%s", prefix, bm.Question.Question)))
		s.WriteString(theme.Hint.Render(fmt.Sprintf("   %s · %s", bm.Topic, bm.SavedAt.Local().Format("Jan 02"))))
		s.WriteString("\n")

		if i == b.selected && b.open {
			s.WriteString(renderAnswer(bm))
		}
	}

	if b.errMsg != "" {
		s.WriteString("\n")
		s.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(b.errMsg))
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(s.String())
}

func renderAnswer(bm stats.Bookmark) string {
	q := bm.Question
	var s strings.Builder
	for i, opt := range q.Options {
		line := fmt.Sprintf("      %d) %s", i+1, opt)
		if q.IsCorrect(i) {
			s.WriteString(theme.Correct.Render(line + "  ✓"))
		} else {
			s.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		s.WriteString("\n")
	}
	if q.Explanation != "" {
		s.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("      " + q.Explanation))
		s.WriteString("\n")
	}
	return s.String()
}
