package gym

import (
	"strings"
	"time"
)

// weekdayNames is the fixed weekday table, indexed by time.Weekday. The
// names are the persisted keys, so they must never depend on the locale.
var weekdayNames = [7]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

// WeekdayName returns the schedule key for wd.
func WeekdayName(wd time.Weekday) string {
	return weekdayNames[wd%7]
}

// Days returns the seven schedule keys, Monday first.
func Days() []string {
	days := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		days = append(days, weekdayNames[i%7])
	}
	return days
}

// ParseDay resolves a schedule key from its name or the English weekday
// name, ignoring case. ok is false for anything else.
func ParseDay(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for wd, name := range weekdayNames {
		english := time.Weekday(wd).String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, english) || strings.EqualFold(s, english[:3]) {
			return name, true
		}
	}
	return "", false
}

func isDay(name string) bool {
	for _, n := range weekdayNames {
		if n == name {
			return true
		}
	}
	return false
}
