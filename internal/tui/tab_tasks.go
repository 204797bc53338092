package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifeos/internal/cli"
	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/tasks"
	"github.com/theirongolddev/lifeos/internal/tui/components"
	"github.com/theirongolddev/lifeos/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// parseTaskEntry reads a one-line task: the title, optionally followed by
// "!priority" and "@deadline" words in any order.
func parseTaskEntry(line string) (tasks.Fields, error) {
	var f tasks.Fields
	var title []string
	for _, word := range strings.Fields(line) {
		switch {
		case len(word) > 1 && word[0] == '!':
			f.Priority = strings.ToLower(word[1:])
		case len(word) > 1 && word[0] == '@':
			d, err := model.ParseDate(word[1:])
			if err != nil {
				return tasks.Fields{}, model.Invalid("deadline", err.Error())
			}
			f.Deadline = d
		default:
			title = append(title, word)
		}
	}
	f.Title = strings.Join(title, " ")
	return f, nil
}

func (a *App) addTask(line string) error {
	f, err := parseTaskEntry(line)
	if err != nil {
		return err
	}
	_, err = a.lo.Tasks.Add(f)
	if err == nil {
		a.cursor[tabTasks] = 0
	}
	return err
}

func (a *App) tasksKey(key string) tea.Cmd {
	list := a.lo.Tasks.List()
	selected := a.cursor[tabTasks]

	switch key {
	case " ", "enter":
		if selected < len(list) {
			if err := a.lo.Tasks.ToggleComplete(list[selected].ID); err != nil {
				a.setError(err)
			}
		}
	case "d", "delete":
		if selected < len(list) {
			if err := a.lo.Tasks.Remove(list[selected].ID); err != nil {
				a.setError(err)
			}
		}
	case "a":
		return a.startInput(inputTask, "Title !high @2026-12-31", "")
	}
	return nil
}

func (a App) renderTasks(cw int) string {
	t := theme.Active
	list := a.lo.Tasks.List()
	today := model.DateOf(a.today())
	inner := components.CardInnerWidth(cw)

	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	if len(list) == 0 {
		b.WriteString(dimStyle.Render("No tasks. Press a to add one."))
	}
	for i, task := range list {
		if i > 0 {
			b.WriteString("\n")
		}

		var meta []string
		if task.Priority != model.PriorityNormal && task.Priority != "" {
			meta = append(meta, lipgloss.NewStyle().Foreground(priorityColor(task.Priority)).Render("!"+string(task.Priority)))
		}
		if !task.Deadline.IsZero() {
			due := "due " + cli.FormatDate(task.Deadline)
			if tasks.IsOverdue(task, today) {
				meta = append(meta, lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render(due+" overdue"))
			} else {
				meta = append(meta, dimStyle.Render(due))
			}
		}
		suffix := strings.Join(meta, " ")
		room := inner - 6 - lipgloss.Width(suffix) - 2
		b.WriteString(checkRow(i == a.cursor[tabTasks], task.Completed, truncStr(task.Title, room)))
		if suffix != "" {
			b.WriteString("  " + suffix)
		}
		if task.Description != "" && i == a.cursor[tabTasks] {
			b.WriteString("\n      " + dimStyle.Render(truncStr(task.Description, inner-6)))
		}
	}

	title := fmt.Sprintf("Tasks  %d pending", a.lo.Tasks.Pending())
	return "\n" + components.ContentCard(title, b.String(), cw, true)
}

func priorityColor(p model.Priority) lipgloss.Color {
	if p == model.PriorityHigh {
		return theme.Active.Orange
	}
	return theme.Active.TextDim
}
