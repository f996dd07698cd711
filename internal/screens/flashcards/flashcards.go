package flashcards

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/testplus/internal/screen"
	"github.com/abhisek/testplus/internal/studygen"
	"github.com/abhisek/testplus/internal/ui/components"
	"github.com/abhisek/testplus/internal/ui/layout"
	"github.com/abhisek/testplus/internal/ui/theme"
)

// FlashcardsScreen steps through a deck, one card at a time.
type FlashcardsScreen struct {
	topic   string
	cards   []studygen.Flashcard
	index   int
	flipped bool
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)

// New creates a review over cards.
func New(topic string, cards []studygen.Flashcard) *FlashcardsScreen {
	return &FlashcardsScreen{topic: topic, cards: cards}
}

func (f *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (f *FlashcardsScreen) Title() string {
	return "Flashcards"
}

func (f *FlashcardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "Esc", Description: "Back"},
	}
}

// Index returns the position of the card on show.
func (f *FlashcardsScreen) Index() int {
	return f.index
}

// Flipped reports whether the back of the card is showing.
func (f *FlashcardsScreen) Flipped() bool {
	return f.flipped
}

func (f *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(f.cards) == 0 {
		return f, nil
	}

	switch kmsg.String() {
	case "space", " ", "enter", "f":
		f.flipped = !f.flipped
	case "right", "l", "n":
		f.move(1)
	case "left", "h", "p":
		f.move(-1)
	}
	return f, nil
}

// move steps through the deck with wrap-around and shows the front.
func (f *FlashcardsScreen) move(delta int) {
	n := len(f.cards)
	f.index = ((f.index+delta)%n + n) % n
	f.flipped = false
}

func (f *FlashcardsScreen) View(width, height int) string {
	if len(f.cards) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No flashcards in this study set."))
	}

	cw := components.ContentWidth(width)
	card := f.cards[f.index]

	side := "FRONT"
	body := theme.Body.Bold(true).Render(card.Front)
	if f.flipped {
		side = "BACK"
		body = theme.Body.Render(card.Back)
		if card.Mnemonic != "" {
			body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Warning).Italic(true).Render("Mnemonic: "+card.Mnemonic)
		}
	}

	counter := theme.Subtitle.Render(fmt.Sprintf("%s · card %d of %d · %s", f.topic, f.index+1, len(f.cards), side))
	face := theme.Flashcard.Width(cw).Render(body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, counter, "", face))
}
