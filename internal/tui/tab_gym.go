package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifeos/internal/gym"
	"github.com/theirongolddev/lifeos/internal/tui/components"
	"github.com/theirongolddev/lifeos/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) selectedDay() string {
	return gym.Days()[a.gymDay]
}

// editDay applies fn to an edit buffer of the selected day and commits it.
func (a *App) editDay(fn func(*gym.Edit) error) error {
	e, err := a.lo.Schedule.Edit(a.selectedDay())
	if err != nil {
		return err
	}
	if err := fn(e); err != nil {
		return err
	}
	return e.Commit()
}

func (a *App) gymKey(key string) tea.Cmd {
	days := len(gym.Days())
	switch key {
	case "left", "[":
		a.gymDay = (a.gymDay + days - 1) % days
		a.cursor[tabGym] = 0
	case "right", "]":
		a.gymDay = (a.gymDay + 1) % days
		a.cursor[tabGym] = 0
	case "a":
		return a.startInput(inputExercise, "Exercise, e.g. Squat 4x10", "")
	case "e":
		return a.startInput(inputFocus, "Focus", a.lo.Schedule.Day(a.selectedDay()).Focus)
	case "d", "delete":
		idx := a.cursor[tabGym]
		if err := a.editDay(func(e *gym.Edit) error { e.RemoveExercise(idx); return nil }); err != nil {
			a.setError(err)
		}
	}
	return nil
}

func (a App) renderGym(cw int) string {
	t := theme.Active
	today := gym.WeekdayName(a.today().Weekday())
	day := a.selectedDay()
	ds := a.lo.Schedule.Day(day)
	inner := components.CardInnerWidth(cw)

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	todayStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var strip []string
	for _, d := range gym.Days() {
		switch {
		case d == day:
			strip = append(strip, activeStyle.Render(d))
		case d == today:
			strip = append(strip, todayStyle.Render(d))
		default:
			strip = append(strip, dimStyle.Render(d))
		}
	}

	var list strings.Builder
	if len(ds.Exercises) == 0 {
		list.WriteString(dimStyle.Render("No exercises. Press a to add one."))
	}
	for i, ex := range ds.Exercises {
		if i > 0 {
			list.WriteString("\n")
		}
		marker := "  "
		if i == a.cursor[tabGym] {
			marker = lipgloss.NewStyle().Foreground(t.Accent).Render("› ")
		}
		list.WriteString(marker + fmt.Sprintf("%d. ", i+1) + truncStr(ex, inner-6))
	}

	title := fmt.Sprintf("%s · %s", day, ds.Focus)
	if day == today {
		title += "  (today)"
	}
	return "\n " + strings.Join(strip, "  ") + "\n\n" +
		components.ContentCard(title, list.String(), cw, true)
}
