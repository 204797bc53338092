// Package pipeline derives the dashboard view from the domain stores.
package pipeline

import (
	"time"

	"github.com/theirongolddev/lifeos/internal/gym"
	"github.com/theirongolddev/lifeos/internal/model"

	"github.com/shopspring/decimal"
)

// AllDoneMessage is shown as today's mission when nothing is left to do.
const AllDoneMessage = "All missions complete! 🎉"

// MissionSource is the read side of the mission store.
type MissionSource interface {
	Streak() int
	TodayMission() (string, bool)
}

// ScheduleSource is the read side of the schedule store.
type ScheduleSource interface {
	Day(day string) model.DaySchedule
}

// TaskSource is the read side of the task store.
type TaskSource interface {
	Pending() int
	Overdue(today model.Date) []model.Task
}

// LedgerSource is the read side of the ledger store.
type LedgerSource interface {
	Balance() decimal.Decimal
	MonthlyTotals(month time.Month, year int) model.MonthlyTotals
}

// Sources bundles the four stores the dashboard reads.
type Sources struct {
	Missions MissionSource
	Schedule ScheduleSource
	Tasks    TaskSource
	Ledger   LedgerSource
}

// Snapshot computes the dashboard at now. It only reads from the sources.
func Snapshot(src Sources, now time.Time) model.Dashboard {
	today := model.DateOf(now)
	weekday := gym.WeekdayName(now.Weekday())

	d := model.Dashboard{
		Greeting:     Greeting(now),
		Balance:      src.Ledger.Balance(),
		Streak:       src.Missions.Streak(),
		Weekday:      weekday,
		TodayWorkout: src.Schedule.Day(weekday).Focus,
		Month:        src.Ledger.MonthlyTotals(now.Month(), now.Year()),
		PendingTasks: src.Tasks.Pending(),
		OverdueTasks: len(src.Tasks.Overdue(today)),
	}

	if text, ok := src.Missions.TodayMission(); ok {
		d.TodayMission = text
		d.HasMission = true
	} else {
		d.TodayMission = AllDoneMessage
	}

	return d
}

// Greeting returns a time-of-day greeting for the local hour of now.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 11:
		return "Good morning"
	case h < 15:
		return "Good afternoon"
	case h < 19:
		return "Good evening"
	default:
		return "Good night"
	}
}
