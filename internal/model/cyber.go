// Package model defines domain types for the lifeos stores.
package model

// Mission is one daily item on the cyber learning checklist.
type Mission struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// CyberState is the persisted state of the cyber learning domain.
// Progress is derived from Missions and recomputed on every mutation.
type CyberState struct {
	Goal               string    `json:"goal"`
	Streak             int       `json:"streak"`
	LastCompletionDate *Date     `json:"lastStudyDate"`
	Progress           float64   `json:"progress"`
	Missions           []Mission `json:"dailyTasks"`
}

// Clone returns a deep copy of s.
func (s CyberState) Clone() CyberState {
	c := s
	if s.LastCompletionDate != nil {
		d := *s.LastCompletionDate
		c.LastCompletionDate = &d
	}
	c.Missions = make([]Mission, len(s.Missions))
	copy(c.Missions, s.Missions)
	return c
}

// CompletedCount returns the number of completed missions.
func (s CyberState) CompletedCount() int {
	n := 0
	for _, m := range s.Missions {
		if m.Completed {
			n++
		}
	}
	return n
}

// AllCompleted reports whether there is at least one mission and all are done.
func (s CyberState) AllCompleted() bool {
	return len(s.Missions) > 0 && s.CompletedCount() == len(s.Missions)
}

// MissionProgress returns 100 * completed / total, or 0 for an empty list.
func MissionProgress(missions []Mission) float64 {
	if len(missions) == 0 {
		return 0
	}
	done := 0
	for _, m := range missions {
		if m.Completed {
			done++
		}
	}
	return float64(done) / float64(len(missions)) * 100
}
