package components

import (
	"strings"

	"github.com/theirongolddev/lifeos/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs. Each shortcut is the first letter.
var Tabs = []Tab{
	{Name: "Home", Key: 'h'},
	{Name: "Cyber", Key: 'c'},
	{Name: "Gym", Key: 'g'},
	{Name: "Tasks", Key: 't'},
	{Name: "Finance", Key: 'f'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}
	bar := " " + strings.Join(parts, " ")
	return lipgloss.NewStyle().MaxWidth(width).Render(bar)
}

func renderTab(tab Tab, active bool) string {
	t := theme.Active
	if active {
		return lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true).
			Padding(0, 1).
			Render(tab.Name)
	}

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	return " " + keyStyle.Render(tab.Name[:1]) + nameStyle.Render(tab.Name[1:]) + " "
}

// TabVisualWidth is the rendered width of a tab, without the separator.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
