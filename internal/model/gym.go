package model

// DaySchedule is the workout plan for one weekday.
type DaySchedule struct {
	Focus     string   `json:"focus"`
	Exercises []string `json:"exercises"`
}

// Clone returns a copy of d that shares no backing array.
func (d DaySchedule) Clone() DaySchedule {
	ex := make([]string, len(d.Exercises))
	copy(ex, d.Exercises)
	return DaySchedule{Focus: d.Focus, Exercises: ex}
}

// GymState maps each of the seven weekday names to its schedule.
type GymState map[string]DaySchedule
