// Package app owns the habit list and the reset marker. Every mutation is
// applied in memory and then written to persistence in one call, so UIs and
// the CLI can share the same logic.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/habitflow/pkg/habit"
	"tableflip.dev/habitflow/pkg/store"
	"tableflip.dev/habitflow/pkg/view"
)

// ErrNotFound is returned when no habit matches the requested id. The list
// is left unchanged.
var ErrNotFound = errors.New("app: habit not found")

// Store is the single source of truth for habits.
type Store struct {
	mu sync.Mutex

	persistence store.Persistence
	logger      *zap.Logger
	now         func() time.Time
	ids         *habit.IDGenerator
	onPersist   func(error)

	habits     habit.List
	lastReset  habit.Day
	persistErr error
}

// Option customises a Store.
type Option func(*Store)

// WithLogger sets the logger used to surface storage failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides time.Now for ids and the reset marker.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPersistErrorHook is called after a failed write, outside the Store's
// lock. In-memory state is kept either way.
func WithPersistErrorHook(fn func(error)) Option {
	return func(s *Store) {
		s.onPersist = fn
	}
}

// Open loads the habit list and reset marker from p. Unreadable values are
// logged and treated as absent.
func Open(ctx context.Context, p store.Persistence, opts ...Option) (*Store, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	s := &Store{
		persistence: p,
		logger:      zap.NewNop(),
		now:         time.Now,
		habits:      habit.List{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ids = habit.NewIDGenerator(s.now, 0)
	if err := s.Reload(ctx); err != nil {
		s.logger.Warn("loading stored habits", zap.Error(err))
	}
	return s, nil
}

// Reload replaces in-memory state with what persistence holds. Values that
// fail to load leave the current in-memory value in place.
func (s *Store) Reload(ctx context.Context) error {
	habits, herr := s.persistence.LoadHabits(ctx)
	marker, merr := s.persistence.LoadResetMarker(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if herr == nil {
		s.habits = habits.Clone()
		s.ids.Observe(habits.MaxID())
	}
	if merr == nil {
		s.lastReset = marker
	}
	return errors.Join(herr, merr)
}

// Habits returns a copy of the current list.
func (s *Store) Habits() habit.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.habits.Clone()
}

// LastReset returns the day completion flags were last cleared.
func (s *Store) LastReset() habit.Day {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReset
}

// Snapshot projects the current list for rendering.
func (s *Store) Snapshot() view.Snapshot {
	return view.Project(s.Habits())
}

// PersistErr returns the last write failure, or nil once a later write
// succeeded.
func (s *Store) PersistErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistErr
}

// Add appends a new pending habit. It reports false and changes nothing when
// name is blank.
func (s *Store) Add(name string) (habit.Habit, bool) {
	name, ok := habit.CleanName(name)
	if !ok {
		return habit.Habit{}, false
	}

	s.mu.Lock()
	h := habit.New(s.ids.Next(), name)
	next := append(s.habits.Clone(), h)
	err := s.commitLocked(next)
	s.mu.Unlock()

	s.report(err)
	s.logger.Debug("habit added", zap.Int64("id", int64(h.ID)), zap.String("name", h.Name))
	return h, true
}

// Toggle flips the completion flag of id.
func (s *Store) Toggle(id habit.ID) (habit.Habit, error) {
	s.mu.Lock()
	i := s.habits.Index(id)
	if i < 0 {
		s.mu.Unlock()
		return habit.Habit{}, ErrNotFound
	}
	next := s.habits.Clone()
	next[i].Completed = !next[i].Completed
	h := next[i]
	err := s.commitLocked(next)
	s.mu.Unlock()

	s.report(err)
	return h, nil
}

// Rename sets the name of id. A blank name abandons the rename and returns
// the habit unchanged.
func (s *Store) Rename(id habit.ID, name string) (habit.Habit, error) {
	s.mu.Lock()
	i := s.habits.Index(id)
	if i < 0 {
		s.mu.Unlock()
		return habit.Habit{}, ErrNotFound
	}
	name, ok := habit.CleanName(name)
	if !ok {
		h := s.habits[i]
		s.mu.Unlock()
		return h, nil
	}
	next := s.habits.Clone()
	next[i].Name = name
	h := next[i]
	err := s.commitLocked(next)
	s.mu.Unlock()

	s.report(err)
	return h, nil
}

// Delete removes id from the list.
func (s *Store) Delete(id habit.ID) error {
	s.mu.Lock()
	if s.habits.Index(id) < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	err := s.commitLocked(s.habits.Without(id))
	s.mu.Unlock()

	s.report(err)
	return nil
}

// ResetAll clears every completion flag and records today as the reset day.
func (s *Store) ResetAll() {
	s.mu.Lock()
	next := s.habits.Clone()
	for i := range next {
		next[i].Completed = false
	}
	today := habit.Today(s.now())
	err := s.commitLocked(next)
	s.lastReset = today
	if merr := s.persistence.SaveResetMarker(today); merr != nil {
		err = errors.Join(err, merr)
		s.persistErr = err
	}
	s.mu.Unlock()

	s.report(err)
	s.logger.Debug("habits reset", zap.Stringer("day", today))
}

// commitLocked swaps in the new list and writes it. The in-memory list is
// updated even when the write fails.
func (s *Store) commitLocked(next habit.List) error {
	s.habits = next
	err := s.persistence.SaveHabits(next)
	s.persistErr = err
	return err
}

func (s *Store) report(err error) {
	if err == nil {
		return
	}
	s.logger.Warn("persisting habits failed; continuing in memory", zap.Error(err))
	if s.onPersist != nil {
		s.onPersist(err)
	}
}
