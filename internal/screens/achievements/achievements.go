package achievements

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/testplus/internal/rewards"
	"github.com/abhisek/testplus/internal/screen"
	"github.com/abhisek/testplus/internal/stats"
	"github.com/abhisek/testplus/internal/ui/components"
	"github.com/abhisek/testplus/internal/ui/layout"
	"github.com/abhisek/testplus/internal/ui/theme"
)

// AchievementsScreen is the gallery of the achievement catalog.
type AchievementsScreen struct {
	stats *stats.Service
}

var _ screen.Screen = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(st *stats.Service) *AchievementsScreen {
	return &AchievementsScreen{stats: st}
}

func (a *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (a *AchievementsScreen) Title() string {
	return "Achievements"
}

func (a *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AchievementsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	profile := a.stats.Stats()
	catalog := rewards.Catalog()

	unlocked := 0
	rows := make([]string, 0, len(catalog))
	for _, ach := range catalog {
		if profile.HasAchievement(ach.ID) {
			unlocked++
			rows = append(rows, fmt.Sprintf("%s  %s\n    %s",
				ach.Icon.Glyph(),
				lipgloss.NewStyle().Foreground(theme.Coin).Bold(true).Render(ach.Name),
				theme.Body.Render(ach.Description)))
			continue
		}
		rows = append(rows, fmt.Sprintf("🔒  %s\n    %s",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(ach.Name),
			theme.Hint.Render(ach.Description)))
	}

	head := layout.Center(cw, theme.Subtitle, fmt.Sprintf("%d of %d unlocked", unlocked, len(catalog)))
	body := components.Card(strings.Join(rows, "\n\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Center, "", head, "", body))
}
