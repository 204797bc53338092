// Package notify delivers fire-and-forget user notifications.
package notify

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Kind names a notification.
type Kind string

const (
	StreakMilestone      Kind = "streak_milestone"
	NotificationsEnabled Kind = "notifications_enabled"
)

// Event is one notification request.
type Event struct {
	Kind   Kind
	Title  string
	Body   string
	Streak int
}

// StreakEvent is sent when the cyber streak goes up.
func StreakEvent(streak int) Event {
	return Event{
		Kind:   StreakMilestone,
		Title:  "Cyber streak up! 🚀",
		Body:   fmt.Sprintf("Day %d. Consistency is key, keep going!", streak),
		Streak: streak,
	}
}

// EnabledEvent is sent once when the user grants notification permission.
func EnabledEvent() Event {
	return Event{
		Kind:  NotificationsEnabled,
		Title: "LifeOS ready!",
		Body:  "Notifications enabled.",
	}
}

// Notifier delivers events. Delivery failures are not reported back.
type Notifier interface {
	Notify(Event)
}

// Func adapts a function to Notifier.
type Func func(Event)

// Notify calls f.
func (f Func) Notify(e Event) { f(e) }

// Nop drops every event.
type Nop struct{}

// Notify does nothing.
func (Nop) Notify(Event) {}

// Gate forwards events only while Allowed reports permission.
type Gate struct {
	Allowed func() bool
	Next    Notifier
}

// Notify forwards e when permitted.
func (g Gate) Notify(e Event) {
	if g.Next == nil || g.Allowed == nil || !g.Allowed() {
		return
	}
	g.Next.Notify(e)
}

type multi []Notifier

func (m multi) Notify(e Event) {
	for _, n := range m {
		n.Notify(e)
	}
}

// Multi fans an event out to every notifier.
func Multi(ns ...Notifier) Notifier {
	return multi(ns)
}

// Logger records events on l at info level.
func Logger(l *zap.Logger) Notifier {
	return Func(func(e Event) {
		l.Info("notification",
			zap.String("kind", string(e.Kind)),
			zap.String("title", e.Title),
			zap.String("body", e.Body))
	})
}

// Bell rings the terminal bell and prints the event to W.
type Bell struct {
	W io.Writer
}

// Notify writes e to the terminal.
func (b Bell) Notify(e Event) {
	_, _ = fmt.Fprintf(b.W, "\a  %s  %s\n", e.Title, e.Body)
}
