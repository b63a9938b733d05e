// Package schedule clears habit completion once per calendar day: at startup
// when the stored reset day is stale, at the next local midnight, and every
// period after that.
package schedule

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/habitflow/pkg/habit"
	"tableflip.dev/habitflow/pkg/timeutil"
)

// DefaultPeriod is the interval between recurring resets.
const DefaultPeriod = 24 * time.Hour

// Resetter is the store operation the scheduler drives.
type Resetter interface {
	ResetAll()
	LastReset() habit.Day
}

// Timer is a pending callback that can be stopped.
type Timer interface {
	Stop() bool
}

// Clock abstracts wall time so tests can control it.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock is the wall clock.
var SystemClock Clock = realClock{}

// Trigger names what caused a reset.
type Trigger string

const (
	TriggerStartup  Trigger = "startup"
	TriggerMidnight Trigger = "midnight"
	TriggerInterval Trigger = "interval"
)

// Scheduler owns the armed reset task. The zero value is not usable; set
// Store at least.
type Scheduler struct {
	Store  Resetter
	Clock  Clock
	Period time.Duration
	Logger *zap.Logger

	// Post runs timer callbacks. Event-loop owners use it to queue the reset
	// onto their loop; nil runs the callback on the timer goroutine.
	Post func(func())

	// OnReset, when set, is called after every reset the scheduler performs.
	OnReset func(Trigger)

	mu   sync.Mutex
	task *Task
}

// New returns a scheduler using the wall clock and a 24h period.
func New(store Resetter, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		Store:  store,
		Clock:  SystemClock,
		Period: DefaultPeriod,
		Logger: logger,
	}
}

func (s *Scheduler) clock() Clock {
	if s.Clock == nil {
		return SystemClock
	}
	return s.Clock
}

func (s *Scheduler) period() time.Duration {
	if s.Period <= 0 {
		return DefaultPeriod
	}
	return s.Period
}

func (s *Scheduler) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// CheckOnStartup resets synchronously when the stored reset day is missing or
// is not today. It reports whether a reset happened. A second call on the
// same day is a no-op.
func (s *Scheduler) CheckOnStartup() bool {
	today := habit.Today(s.clock().Now())
	last := s.Store.LastReset()
	if !last.IsZero() && last.Equal(today) {
		return false
	}
	s.logger().Info("new day since last reset",
		zap.Stringer("last", last),
		zap.Stringer("today", today))
	s.reset(TriggerStartup)
	return true
}

// Arm cancels any armed task and schedules a reset at the next local
// midnight, repeating every period afterwards.
func (s *Scheduler) Arm() *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.task != nil {
		s.task.Cancel()
	}
	task := &Task{}
	s.task = task

	wait := timeutil.UntilNextMidnight(s.clock().Now())
	task.schedule(s.clock(), wait, func() {
		s.post(func() { s.fire(task, TriggerMidnight) })
	})
	s.logger().Debug("reset armed", zap.Duration("wait", wait), zap.Duration("period", s.period()))
	return task
}

// Stop cancels the armed task, if any.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.task != nil {
		s.task.Cancel()
		s.task = nil
	}
}

// Run performs the startup check, arms the timer and blocks until ctx is
// done.
func (s *Scheduler) Run(ctx context.Context) error {
	s.CheckOnStartup()
	s.Arm()
	defer s.Stop()
	<-ctx.Done()
	return ctx.Err()
}

func (s *Scheduler) fire(task *Task, trigger Trigger) {
	if task.Cancelled() {
		return
	}
	s.reset(trigger)
	task.schedule(s.clock(), s.period(), func() {
		s.post(func() { s.fire(task, TriggerInterval) })
	})
}

func (s *Scheduler) post(f func()) {
	if s.Post != nil {
		s.Post(f)
		return
	}
	f()
}

func (s *Scheduler) reset(trigger Trigger) {
	s.Store.ResetAll()
	s.logger().Info("habits reset", zap.String("trigger", string(trigger)))
	if s.OnReset != nil {
		s.OnReset(trigger)
	}
}

// Task is the handle for an armed reset. Cancelling it stops the pending
// timer and prevents any further rescheduling.
type Task struct {
	mu        sync.Mutex
	timer     Timer
	cancelled bool

	// seq numbers scheduled timers; held is the number of the one in timer.
	seq  uint64
	held uint64
}

// Cancel stops the task. It is safe to call more than once.
func (t *Task) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Cancelled reports whether Cancel has been called.
func (t *Task) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

// schedule starts a timer for f and makes it the one Cancel stops. A timer
// that fires before AfterFunc returns may schedule its successor first; the
// newer timer is kept.
func (t *Task) schedule(c Clock, d time.Duration, f func()) {
	t.mu.Lock()
	t.seq++
	seq := t.seq
	t.mu.Unlock()

	timer := c.AfterFunc(d, f)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancelled {
		timer.Stop()
		return
	}
	if seq < t.held {
		return
	}
	t.timer = timer
	t.held = seq
}
