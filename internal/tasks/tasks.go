// Package tasks implements the todo list store.
package tasks

import (
	"errors"
	"strings"
	"time"

	"github.com/theirongolddev/lifeos/internal/logging"
	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/store"

	"go.uber.org/zap"
)

// Fields are the user-supplied parts of a new task.
type Fields struct {
	Title       string
	Description string
	Deadline    model.Date
	Priority    string
}

// Store owns the persisted task list, newest first. Call Initialize before use.
type Store struct {
	gw  store.Gateway
	log *zap.Logger
	now func() time.Time

	tasks []model.Task
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = logging.OrNop(l) }
}

// WithClock overrides time.Now, which stamps new ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a store persisting through gw.
func New(gw store.Gateway, opts ...Option) *Store {
	s := &Store{gw: gw, log: zap.NewNop(), now: time.Now, tasks: []model.Task{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the task list. A missing or corrupt list starts empty.
func (s *Store) Initialize() error {
	var loaded []model.Task
	found, err := store.LoadJSON(s.gw, store.KeyTasks, &loaded)
	var fe *model.FormatError
	switch {
	case errors.As(err, &fe):
		s.log.Warn("task list unreadable, starting empty", zap.Error(err))
		found = false
	case err != nil:
		return err
	}
	if !found || loaded == nil {
		loaded = []model.Task{}
	}
	for _, t := range loaded {
		if raw := t.Deadline.Unrecognized(); raw != "" {
			s.log.Debug("task deadline unreadable, treating as none",
				zap.Int64("id", t.ID), zap.String("deadline", raw))
		}
	}
	s.tasks = loaded
	return nil
}

// List returns the tasks, newest first.
func (s *Store) List() []model.Task {
	return append([]model.Task{}, s.tasks...)
}

// Get returns task id.
func (s *Store) Get(id int64) (model.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Add validates f and prepends a new open task.
func (s *Store) Add(f Fields) (model.Task, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return model.Task{}, model.Invalid("title", "must not be empty")
	}
	prio, err := model.ParsePriority(strings.ToLower(strings.TrimSpace(f.Priority)))
	if err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		ID:          model.NextID(s.now(), s.ids()),
		Title:       title,
		Description: strings.TrimSpace(f.Description),
		Deadline:    f.Deadline,
		Priority:    prio,
	}
	next := append([]model.Task{t}, s.tasks...)
	if err := s.commit(next); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// ToggleComplete flips the completion of task id.
func (s *Store) ToggleComplete(id int64) error {
	next := s.List()
	for i := range next {
		if next[i].ID == id {
			next[i].Completed = !next[i].Completed
		}
	}
	return s.commit(next)
}

// Remove deletes task id. Unknown ids are ignored.
func (s *Store) Remove(id int64) error {
	next := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	return s.commit(next)
}

// IsOverdue reports whether task is open with a deadline before today.
// It depends on today and must be evaluated on every read.
func IsOverdue(task model.Task, today model.Date) bool {
	return task.IsOverdue(today)
}

// Overdue returns the open tasks whose deadline has passed.
func (s *Store) Overdue(today model.Date) []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if IsOverdue(t, today) {
			out = append(out, t)
		}
	}
	return out
}

// Pending returns the number of open tasks.
func (s *Store) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

func (s *Store) commit(next []model.Task) error {
	if err := store.SaveJSON(s.gw, store.KeyTasks, next); err != nil {
		return err
	}
	s.tasks = next
	return nil
}

func (s *Store) ids() []int64 {
	ids := make([]int64, len(s.tasks))
	for i, t := range s.tasks {
		ids[i] = t.ID
	}
	return ids
}
