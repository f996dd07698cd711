package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/testplus/internal/stats"
	"github.com/abhisek/testplus/internal/studygen"
	"github.com/abhisek/testplus/internal/ui/components"
	"github.com/abhisek/testplus/internal/ui/theme"
)

const titleFull = `████████╗███████╗███████╗████████╗██████╗ ██╗     ██╗   ██╗███████╗
╚══██╔══╝██╔════╝██╔════╝╚══██╔══╝██╔══██╗██║     ██║   ██║██╔════╝
   ██║   █████╗  ███████╗   ██║   ██████╔╝██║     ██║   ██║███████╗
   ██║   ██╔══╝  ╚════██║   ██║   ██╔═══╝ ██║     ██║   ██║╚════██║
   ██║   ███████╗███████║   ██║   ██║     ███████╗╚██████╔╝███████║
   ╚═╝   ╚══════╝╚══════╝   ╚═╝   ╚═╝     ╚══════╝ ╚═════╝ ╚══════╝`

const titleCompact = "T · E · S · T · P · L · U · S"

const tagline = "Your intelligent companion for mastering any subject."

// titleWidth is the widest row of titleFull.
const titleWidth = 67

// renderTitle returns the block title, or the compact fallback when the
// content width cannot hold it.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Coin).Bold(true)
	art := titleFull
	if compact || cw < titleWidth {
		art = titleCompact
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(style.Render(art)),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.TextDim).Render(tagline))
}

// renderStatsBar renders the profile summary in a double-bordered box.
func renderStatsBar(p stats.UserStats, cw int) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Coin).Bold(true)
	coinStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	goalStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	line := fmt.Sprintf("%s   %s   %s",
		levelStyle.Render(fmt.Sprintf("★ LEVEL %d", p.Level().Level)),
		coinStyle.Render(fmt.Sprintf("◆ %d COINS", p.Coins)),
		goalStyle.Render(fmt.Sprintf("⚑ GOAL %d%%", p.DailyGoalProgress)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// renderTopic renders the topic input with its quick-topic chips.
func (h *HomeScreen) renderTopic(cw int) string {
	label := fieldLabel("Topic", h.focus == focusTopic)
	quick := fieldLabel("Quick", h.focus == focusQuick)

	selected := -1
	if h.focus == focusQuick {
		selected = h.quick
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		label+" "+h.input.View(),
		quick+" "+components.ChipRow(QuickTopics, selected),
	)
}

// renderSettings renders one chip row per generation setting.
func (h *HomeScreen) renderSettings() string {
	counts := make([]string, len(studygen.QuestionCounts))
	for i, n := range studygen.QuestionCounts {
		counts[i] = fmt.Sprint(n)
	}
	difficulties := make([]string, len(studygen.Difficulties))
	for i, d := range studygen.Difficulties {
		difficulties[i] = string(d)
	}
	timers := make([]string, len(studygen.TimerModes))
	for i, m := range studygen.TimerModes {
		timers[i] = fmt.Sprintf("%s %ds", m, m.Seconds())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		fieldLabel("Questions", h.focus == focusQuestions)+" "+components.ChipRow(counts, indexOf(studygen.QuestionCounts, h.settings.QuestionCount)),
		fieldLabel("Difficulty", h.focus == focusDifficulty)+" "+components.ChipRow(difficulties, indexOf(studygen.Difficulties, h.settings.Difficulty)),
		fieldLabel("Pace", h.focus == focusTimer)+" "+components.ChipRow(timers, indexOf(studygen.TimerModes, h.settings.TimerMode)),
	)
}

// renderMenu renders the navigation menu, dimmed while it is not focused.
func (h *HomeScreen) renderMenu(cw int) string {
	var buttons []string
	for i, item := range h.menu.Items {
		switch {
		case h.focus == focusMenu && i == h.menu.Selected:
			buttons = append(buttons, components.Chip("▸ "+item.Label, true))
		default:
			buttons = append(buttons, components.Chip(item.Label, false))
		}
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(strings.Join(buttons, " "))
}

func fieldLabel(name string, focused bool) string {
	style := lipgloss.NewStyle().Width(11).Foreground(theme.TextDim)
	if focused {
		style = style.Foreground(theme.Primary).Bold(true)
		return style.Render("▸ " + name)
	}
	return style.Render("  " + name)
}
