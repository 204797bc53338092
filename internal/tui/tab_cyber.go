package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifeos/internal/tui/components"
	"github.com/theirongolddev/lifeos/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a *App) cyberKey(key string) tea.Cmd {
	missions := a.lo.Missions.State().Missions
	selected := a.cursor[tabCyber]

	switch key {
	case " ", "enter":
		if selected < len(missions) {
			if err := a.lo.Missions.ToggleMission(missions[selected].ID); err != nil {
				a.setError(err)
			}
		}
	case "d", "delete":
		if selected < len(missions) {
			if err := a.lo.Missions.RemoveMission(missions[selected].ID); err != nil {
				a.setError(err)
			}
		}
	case "a":
		return a.startInput(inputMission, "New mission", "")
	case "e":
		return a.startInput(inputGoal, "Main goal", a.lo.Missions.State().Goal)
	case "R":
		if err := a.lo.Missions.ResetDay(); err != nil {
			a.setError(err)
		} else {
			a.setStatus("Missions cleared for a new day")
		}
	}
	return nil
}

func (a App) renderCyber(cw int) string {
	t := theme.Active
	s := a.lo.Missions.State()
	inner := components.CardInnerWidth(cw)

	goalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var head strings.Builder
	head.WriteString(goalStyle.Render(truncStr(s.Goal, inner)))
	head.WriteString("\n")
	head.WriteString(streakStyle.Render(fmt.Sprintf("🔥 %d day streak", s.Streak)))
	if s.LastCompletionDate != nil {
		head.WriteString(dimStyle.Render("  last full day " + s.LastCompletionDate.String()))
	}
	head.WriteString("\n")
	head.WriteString(components.ProgressBar(s.Progress/100, inner-5))

	var list strings.Builder
	if len(s.Missions) == 0 {
		list.WriteString(dimStyle.Render("No missions. Press a to add one."))
	}
	for i, m := range s.Missions {
		if i > 0 {
			list.WriteString("\n")
		}
		list.WriteString(checkRow(i == a.cursor[tabCyber], m.Completed, truncStr(m.Text, inner-6)))
	}

	title := fmt.Sprintf("Daily missions  %d/%d", s.CompletedCount(), len(s.Missions))
	return "\n" + components.ContentCard("Goal", head.String(), cw, false) + "\n" +
		components.ContentCard(title, list.String(), cw, true)
}

// checkRow renders one checklist line with a cursor marker.
func checkRow(selected, done bool, text string) string {
	t := theme.Active

	marker := "  "
	if selected {
		marker = lipgloss.NewStyle().Foreground(t.Accent).Render("› ")
	}
	box := lipgloss.NewStyle().Foreground(t.TextMuted).Render("[ ] ")
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	if done {
		box = lipgloss.NewStyle().Foreground(t.Green).Render("[x] ")
		textStyle = lipgloss.NewStyle().Foreground(t.TextDim).Strikethrough(true)
	}
	return marker + box + textStyle.Render(text)
}
