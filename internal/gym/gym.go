// Package gym implements the weekly workout schedule store.
package gym

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/lifeos/internal/logging"
	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/store"

	"go.uber.org/zap"
)

// RestFocus is the focus of a day without a schedule.
const RestFocus = "Rest"

func defaultSchedule() model.GymState {
	return model.GymState{
		"Senin":  {Focus: "Push (Dada/Tricep)", Exercises: []string{"Bench Press 4x10", "Tricep Dip 3x12"}},
		"Selasa": {Focus: "Pull (Punggung/Bicep)", Exercises: []string{"Pull Up 4xMax", "Bicep Curl 3x12"}},
		"Rabu":   {Focus: "Rest / Cardio", Exercises: []string{"Lari 30 Menit"}},
		"Kamis":  {Focus: "Legs (Kaki)", Exercises: []string{"Squat 4x8", "Leg Press 3x12"}},
		"Jumat":  {Focus: "Upper Body", Exercises: []string{"Overhead Press 4x10", "Lateral Raise 4x15"}},
		"Sabtu":  {Focus: "Active Recovery", Exercises: []string{"Yoga"}},
		"Minggu": {Focus: "Rest", Exercises: []string{}},
	}
}

func restDay() model.DaySchedule {
	return model.DaySchedule{Focus: RestFocus, Exercises: []string{}}
}

// Store owns the persisted GymState. Call Initialize before use.
type Store struct {
	gw  store.Gateway
	log *zap.Logger

	state model.GymState
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = logging.OrNop(l) }
}

// New returns a store persisting through gw.
func New(gw store.Gateway, opts ...Option) *Store {
	s := &Store{gw: gw, log: zap.NewNop(), state: model.GymState{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the schedule, seeding the default week when it is absent
// or corrupt. Weekdays missing from a stored schedule become rest days and
// unknown keys are dropped, so all seven keys always exist.
func (s *Store) Initialize() error {
	var loaded model.GymState
	found, err := store.LoadJSON(s.gw, store.KeyGym, &loaded)
	var fe *model.FormatError
	switch {
	case errors.As(err, &fe):
		s.log.Warn("gym schedule unreadable, seeding defaults", zap.Error(err))
		found = false
	case err != nil:
		return err
	}
	if !found {
		s.state = defaultSchedule()
		return nil
	}

	state := make(model.GymState, 7)
	for _, day := range Days() {
		ds, ok := loaded[day]
		if !ok {
			s.log.Debug("gym schedule missing day", zap.String("day", day))
			ds = restDay()
		}
		if ds.Exercises == nil {
			ds.Exercises = []string{}
		}
		state[day] = ds
	}
	s.state = state
	return nil
}

// Day returns a copy of the schedule for day, or a rest day if it is missing.
func (s *Store) Day(day string) model.DaySchedule {
	ds, ok := s.state[day]
	if !ok {
		return restDay()
	}
	return ds.Clone()
}

// Week returns a copy of the whole schedule.
func (s *Store) Week() model.GymState {
	out := make(model.GymState, len(s.state))
	for k, v := range s.state {
		out[k] = v.Clone()
	}
	return out
}

// SetDay replaces the schedule of day wholesale.
func (s *Store) SetDay(day string, ds model.DaySchedule) error {
	if !isDay(day) {
		return model.Invalid("day", fmt.Sprintf("%q is not a weekday", day))
	}
	ds = ds.Clone()
	ds.Focus = strings.TrimSpace(ds.Focus)
	if ds.Focus == "" {
		return model.Invalid("focus", "must not be empty")
	}

	next := s.Week()
	next[day] = ds
	if err := store.SaveJSON(s.gw, store.KeyGym, next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// Edit starts an edit session on a scratch copy of day. Nothing is
// persisted until Commit.
func (s *Store) Edit(day string) (*Edit, error) {
	if !isDay(day) {
		return nil, model.Invalid("day", fmt.Sprintf("%q is not a weekday", day))
	}
	return &Edit{store: s, day: day, buf: s.Day(day)}, nil
}

// Edit is an in-progress change to one weekday.
type Edit struct {
	store *Store
	day   string
	buf   model.DaySchedule
}

// Day returns the weekday being edited.
func (e *Edit) Day() string { return e.day }

// Draft returns a copy of the edit buffer.
func (e *Edit) Draft() model.DaySchedule { return e.buf.Clone() }

// SetFocus changes the focus label in the buffer. A rest day is spelled
// out as RestFocus, never left blank.
func (e *Edit) SetFocus(focus string) error {
	focus = strings.TrimSpace(focus)
	if focus == "" {
		return model.Invalid("focus", "must not be empty")
	}
	e.buf.Focus = focus
	return nil
}

// AddExercise appends an exercise to the buffer.
func (e *Edit) AddExercise(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Invalid("exercise", "must not be empty")
	}
	e.buf.Exercises = append(e.buf.Exercises, text)
	return nil
}

// RemoveExercise drops the exercise at index from the buffer. Out of range
// indexes are ignored.
func (e *Edit) RemoveExercise(index int) {
	if index < 0 || index >= len(e.buf.Exercises) {
		return
	}
	e.buf.Exercises = append(e.buf.Exercises[:index], e.buf.Exercises[index+1:]...)
}

// Commit replaces the committed schedule of the day with the buffer.
func (e *Edit) Commit() error {
	return e.store.SetDay(e.day, e.buf)
}
