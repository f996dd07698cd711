package home

import (
	"fmt"
	"image/color"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/testplus/internal/stats"
	"github.com/abhisek/testplus/internal/ui/theme"
)

// MascotVariant is the mascot's mood on the home screen.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // no practice today, no streak to lose
	MascotCelebrating                      // daily goal met today
	MascotAlert                            // streak alive but no practice today
)

type mascotArt struct {
	color color.Color
	art   string
}

var mascots = map[MascotVariant]mascotArt{
	MascotIdle: {theme.Primary, `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ?!✓ │
└─────┘`},
	MascotCelebrating: {theme.Coin, `┌─────┐
│ ★ ★ │
│  ▿  │
│ ?!✓ │
└─╥═╥─┘
  ╚═╝`},
	MascotAlert: {theme.Accent, `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ ?!✓ │
└─────┘`},
}

// moodFor picks the mascot mood from the profile as of now.
func moodFor(p stats.UserStats, now time.Time) MascotVariant {
	today := p.LastPracticeDate != nil && sameDay(*p.LastPracticeDate, now)
	switch {
	case today && p.DailyGoalProgress >= 100:
		return MascotCelebrating
	case !today && p.CurrentStreak > 0:
		return MascotAlert
	}
	return MascotIdle
}

// mascotCaption is the line printed under the mascot.
func mascotCaption(v MascotVariant, p stats.UserStats) string {
	switch v {
	case MascotCelebrating:
		return "Daily goal reached. Nice work!"
	case MascotAlert:
		return fmt.Sprintf("Practice today to keep your %d-day streak.", p.CurrentStreak)
	}
	return "What do you want to learn today?"
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(variant MascotVariant) string {
	m, ok := mascots[variant]
	if !ok {
		m = mascots[MascotIdle]
	}
	return lipgloss.NewStyle().Foreground(m.color).Render(m.art)
}
