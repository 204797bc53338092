// Package cyber implements the mission store of the cyber learning domain:
// a daily checklist, its completion progress and the day streak.
package cyber

import (
	"errors"
	"strings"
	"time"

	"github.com/theirongolddev/lifeos/internal/logging"
	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/notify"
	"github.com/theirongolddev/lifeos/internal/store"

	"go.uber.org/zap"
)

// DefaultGoal is the goal seeded on first run.
const DefaultGoal = "Certified Ethical Hacker (CEH)"

func defaultState() model.CyberState {
	return model.CyberState{
		Goal: DefaultGoal,
		Missions: []model.Mission{
			{ID: 1, Text: "Baca berita CyberSec terbaru"},
			{ID: 2, Text: "Latihan 1 Box di HackTheBox"},
			{ID: 3, Text: "Review Networking Basics"},
		},
	}
}

// Store owns the persisted CyberState. Call Initialize before use.
type Store struct {
	gw       store.Gateway
	log      *zap.Logger
	now      func() time.Time
	notifier notify.Notifier

	state model.CyberState
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = logging.OrNop(l) }
}

// WithClock overrides time.Now, which decides "today" for the streak.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithNotifier receives streak milestone events.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// New returns a store persisting through gw.
func New(gw store.Gateway, opts ...Option) *Store {
	s := &Store{
		gw:       gw,
		log:      zap.NewNop(),
		now:      time.Now,
		notifier: notify.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the persisted state, seeding defaults when it is absent
// or corrupt. Corruption is logged, never returned.
func (s *Store) Initialize() error {
	var loaded model.CyberState
	found, err := store.LoadJSON(s.gw, store.KeyCyber, &loaded)
	var fe *model.FormatError
	switch {
	case errors.As(err, &fe):
		s.log.Warn("cyber state unreadable, seeding defaults", zap.Error(err))
		found = false
	case err != nil:
		return err
	}

	if !found {
		loaded = defaultState()
	}
	if loaded.Missions == nil {
		loaded.Missions = []model.Mission{}
	}
	if loaded.Streak < 0 {
		loaded.Streak = 0
	}
	if d := loaded.LastCompletionDate; d != nil && d.IsZero() {
		if raw := d.Unrecognized(); raw != "" {
			s.log.Debug("last study date unreadable, clearing", zap.String("lastStudyDate", raw))
		}
		loaded.LastCompletionDate = nil
	}
	loaded.Progress = model.MissionProgress(loaded.Missions)
	s.state = loaded
	return nil
}

// State returns a copy of the current state.
func (s *Store) State() model.CyberState {
	return s.state.Clone()
}

// Streak returns the current day streak.
func (s *Store) Streak() int {
	return s.state.Streak
}

// TodayMission returns the text of the first incomplete mission.
func (s *Store) TodayMission() (string, bool) {
	for _, m := range s.state.Missions {
		if !m.Completed {
			return m.Text, true
		}
	}
	return "", false
}

// ToggleMission flips the completion of mission id. Unknown ids are
// ignored. The first time on a calendar day that checking a mission
// completes the list, the streak goes up by one and a milestone
// notification is sent.
func (s *Store) ToggleMission(id int64) error {
	next := s.state.Clone()
	checked, found := false, false
	for i := range next.Missions {
		if next.Missions[i].ID == id {
			next.Missions[i].Completed = !next.Missions[i].Completed
			checked = next.Missions[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	today := model.DateOf(s.now())
	milestone := false
	if checked && next.AllCompleted() && (next.LastCompletionDate == nil || *next.LastCompletionDate != today) {
		next.Streak++
		next.LastCompletionDate = &today
		milestone = true
	}

	if err := s.commit(next); err != nil {
		return err
	}
	if milestone {
		s.log.Info("streak increased", zap.Int("streak", next.Streak), zap.Stringer("date", today))
		s.notifier.Notify(notify.StreakEvent(next.Streak))
	}
	return nil
}

// SetGoal replaces the learning goal.
func (s *Store) SetGoal(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Invalid("goal", "must not be empty")
	}
	next := s.state.Clone()
	next.Goal = text
	return s.commit(next)
}

// AddMission appends a new incomplete mission.
func (s *Store) AddMission(text string) (model.Mission, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Mission{}, model.Invalid("mission", "text must not be empty")
	}
	next := s.state.Clone()
	m := model.Mission{ID: model.NextID(s.now(), s.ids()), Text: text}
	next.Missions = append(next.Missions, m)
	if err := s.commit(next); err != nil {
		return model.Mission{}, err
	}
	return m, nil
}

// RemoveMission deletes mission id. Unknown ids are ignored.
func (s *Store) RemoveMission(id int64) error {
	next := s.state.Clone()
	kept := next.Missions[:0]
	for _, m := range next.Missions {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	next.Missions = kept
	return s.commit(next)
}

// ResetDay unchecks every mission for a fresh day. The streak and its date
// are left alone.
func (s *Store) ResetDay() error {
	next := s.state.Clone()
	for i := range next.Missions {
		next.Missions[i].Completed = false
	}
	return s.commit(next)
}

// commit recomputes progress, persists next and only then adopts it.
func (s *Store) commit(next model.CyberState) error {
	next.Progress = model.MissionProgress(next.Missions)
	if err := store.SaveJSON(s.gw, store.KeyCyber, next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *Store) ids() []int64 {
	ids := make([]int64, len(s.state.Missions))
	for i, m := range s.state.Missions {
		ids[i] = m.ID
	}
	return ids
}
