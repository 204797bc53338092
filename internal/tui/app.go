// Package tui provides the interactive Bubble Tea dashboard for lifeos.
package tui

import (
	"strings"
	"time"

	"github.com/theirongolddev/lifeos/internal/app"
	"github.com/theirongolddev/lifeos/internal/config"
	"github.com/theirongolddev/lifeos/internal/gym"
	"github.com/theirongolddev/lifeos/internal/tui/components"
	"github.com/theirongolddev/lifeos/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ReloadMsg is sent when the database changed underneath the app.
type ReloadMsg struct{}

const (
	tabHome = iota
	tabCyber
	tabGym
	tabTasks
	tabFinance
	tabCount
)

// inputKind says what the text input is collecting.
type inputKind int

const (
	inputNone inputKind = iota
	inputMission
	inputGoal
	inputExercise
	inputFocus
	inputTask
	inputTransaction
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
)

// App is the root Bubble Tea model.
type App struct {
	lo     *app.App
	events <-chan tea.Msg
	save   func(config.Config) error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	cursor    [tabCount]int
	gymDay    int // index into gym.Days()

	input    textinput.Model
	inputFor inputKind

	status    string
	statusErr bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool
}

// NewApp builds the TUI over a loaded lifeos instance. events delivers
// ReloadMsg values from a storage watcher and may be nil. When firstRun is
// set the setup form is shown before the dashboard.
func NewApp(lo *app.App, events <-chan tea.Msg, firstRun bool) App {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 50

	a := App{
		lo:        lo,
		events:    events,
		save:      config.Save,
		input:     ti,
		needSetup: firstRun,
	}
	today := gym.WeekdayName(lo.Now().Weekday())
	for i, d := range gym.Days() {
		if d == today {
			a.gymDay = i
		}
	}
	if firstRun {
		a.setupVals = NewSetupValues(lo.Config)
		a.setupForm = NewSetupForm(a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	var cmds []tea.Cmd
	if a.events != nil {
		cmds = append(cmds, waitForEvent(a.events))
	}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case ReloadMsg:
		if err := a.lo.Reload(); err != nil {
			a.setError(err)
		}
		a.clampCursor()
		return a, waitForEvent(a.events)

	case tea.MouseMsg:
		if a.needSetup || a.inputFor != inputNone {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.inputFor != inputNone {
			return a.updateInput(msg)
		}
		return a.updateKey(msg)
	}

	// Forward unhandled messages (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.inputFor != inputNone {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "tab":
		a.activeTab = (a.activeTab + 1) % tabCount
		return a, nil
	case "shift+tab":
		a.activeTab = (a.activeTab + tabCount - 1) % tabCount
		return a, nil
	case "1", "2", "3", "4", "5":
		a.activeTab = int(key[0] - '1')
		return a, nil
	case "r":
		if err := a.lo.Reload(); err != nil {
			a.setError(err)
		} else {
			a.setStatus("Reloaded")
		}
		a.clampCursor()
		return a, nil
	case "j", "down":
		if a.cursor[a.activeTab] < a.listLen()-1 {
			a.cursor[a.activeTab]++
		}
		return a, nil
	case "k", "up":
		if a.cursor[a.activeTab] > 0 {
			a.cursor[a.activeTab]--
		}
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if tab := components.TabIdxByKey(msg.Runes[0]); tab >= 0 {
			a.activeTab = tab
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.activeTab {
	case tabCyber:
		cmd = a.cyberKey(key)
	case tabGym:
		cmd = a.gymKey(key)
	case tabTasks:
		cmd = a.tasksKey(key)
	case tabFinance:
		cmd = a.financeKey(key)
	}
	a.clampCursor()
	return a, cmd
}

// startInput opens the text prompt for kind, prefilled with value.
func (a *App) startInput(kind inputKind, placeholder, value string) tea.Cmd {
	a.inputFor = kind
	a.input.Placeholder = placeholder
	a.input.SetValue(value)
	a.input.CursorEnd()
	return a.input.Focus()
}

func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.inputFor = inputNone
		a.input.Blur()
		return a, nil
	case "enter":
		kind := a.inputFor
		value := a.input.Value()
		a.inputFor = inputNone
		a.input.Blur()
		a.submit(kind, value)
		a.clampCursor()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) submit(kind inputKind, value string) {
	var err error
	switch kind {
	case inputMission:
		_, err = a.lo.Missions.AddMission(value)
	case inputGoal:
		err = a.lo.Missions.SetGoal(value)
	case inputExercise:
		err = a.editDay(func(e *gym.Edit) error { return e.AddExercise(value) })
	case inputFocus:
		err = a.editDay(func(e *gym.Edit) error { return e.SetFocus(value) })
	case inputTask:
		err = a.addTask(value)
	case inputTransaction:
		err = a.addTransaction(value)
	}
	if err != nil {
		a.setError(err)
		return
	}
	a.setStatus("Saved")
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := a.setupVals.Apply(a.lo, a.save); err != nil {
			a.setError(err)
		} else {
			a.setStatus("Settings saved to " + config.Path())
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = err.Error()
	a.statusErr = true
}

// listLen is the number of selectable rows on the active tab.
func (a App) listLen() int {
	switch a.activeTab {
	case tabCyber:
		return len(a.lo.Missions.State().Missions)
	case tabGym:
		return len(a.lo.Schedule.Day(a.selectedDay()).Exercises)
	case tabTasks:
		return len(a.lo.Tasks.List())
	case tabFinance:
		return len(a.lo.Ledger.List())
	}
	return 0
}

func (a *App) clampCursor() {
	n := a.listLen()
	c := &a.cursor[a.activeTab]
	if *c >= n {
		*c = n - 1
	}
	if *c < 0 {
		*c = 0
	}
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.width < minTerminalWidth {
		return lipgloss.NewStyle().Foreground(theme.Active.TextMuted).
			Render("Terminal too narrow, widen to at least 60 columns.")
	}
	if a.showHelp {
		return a.viewHelp()
	}

	cw := a.contentWidth()
	var body string
	switch a.activeTab {
	case tabHome:
		body = a.renderHome(cw)
	case tabCyber:
		body = a.renderCyber(cw)
	case tabGym:
		body = a.renderGym(cw)
	case tabTasks:
		body = a.renderTasks(cw)
	case tabFinance:
		body = a.renderFinance(cw)
	}

	if a.inputFor != inputNone {
		prompt := lipgloss.NewStyle().Foreground(theme.Active.Accent).Render(" > ")
		body += "\n" + prompt + a.input.View()
	}

	header := components.RenderTabBar(a.activeTab, cw)
	footer := components.RenderStatusBar(cw, a.hints(), a.status, a.statusErr)

	bodyHeight := max(a.height-2, 1)
	body = padHeight(truncateHeight(body, bodyHeight), bodyHeight)
	return header + "\n" + body + "\n" + footer
}

func (a App) hints() string {
	if a.inputFor != inputNone {
		return "[enter]save  [esc]cancel"
	}
	switch a.activeTab {
	case tabCyber:
		return "[space]toggle  [a]dd  [d]elete  [e]goal  [R]eset day  [?]help"
	case tabGym:
		return "[←/→]day  [a]dd  [d]elete  [e]focus  [?]help"
	case tabTasks:
		return "[space]toggle  [a]dd  [d]elete  [?]help"
	case tabFinance:
		return "[a]dd  [d]elete  [?]help"
	}
	return "[tab]next  [r]eload  [?]help  [q]uit"
}

func (a App) viewHelp() string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Width(12)
	descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	rows := [][2]string{
		{"h c g t f", "switch tab (or 1-5, tab)"},
		{"j / k", "move cursor"},
		{"space", "toggle mission or task"},
		{"a", "add mission, exercise, task or transaction"},
		{"d", "delete selected row"},
		{"e", "edit goal (Cyber) or focus (Gym)"},
		{"← / →", "previous or next day (Gym)"},
		{"R", "start a new day of missions"},
		{"r", "reload from disk"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString("  " + keyStyle.Render(r[0]) + descStyle.Render(r[1]) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Render(
		"  Tasks: \"Pay rent !high @2026-10-20\"   Finance: \"+50000 Salary\" or \"25000 Lunch\""))
	return b.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the widths RenderTabBar uses.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		w := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1
	}
	return -1
}

func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		return <-events
	}
}

func (a App) today() time.Time { return a.lo.Now() }

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
