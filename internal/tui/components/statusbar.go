package components

import (
	"strings"

	"github.com/theirongolddev/lifeos/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// a message on the right. Errors are shown in red.
func RenderStatusBar(width int, hints, message string, isErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	msgColor := t.TextPrimary
	if isErr {
		msgColor = t.Red
	}
	msgStyle := style.Foreground(msgColor)

	left := " " + hints
	right := ""
	if message != "" {
		right = message + " "
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return style.Render(left+strings.Repeat(" ", padding)) + msgStyle.Render(right)
}
