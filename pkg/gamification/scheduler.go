package gamification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type (
	// Timer is a scheduled callback that can be stopped before it fires.
	Timer interface {
		Stop() bool
	}

	// Scheduler runs f once after d. The production scheduler is backed by
	// time.AfterFunc; tests drive a manual clock.
	Scheduler interface {
		AfterFunc(d time.Duration, f func()) Timer
	}

	realScheduler struct{}
)

func NewScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Deferred holds at most one pending action. Scheduling a new action stops
// the previous one first.
//
// A callback whose timer could not be stopped in time may still run; it
// must call Claim with its token and do nothing when Claim returns false.
type Deferred struct {
	mu        sync.Mutex
	scheduler Scheduler
	token     uuid.UUID
	timer     Timer
}

func NewDeferred(scheduler Scheduler) *Deferred {
	return &Deferred{scheduler: scheduler}
}

// Schedule replaces any pending action with fn, run after delay. fn
// receives the token identifying this schedule.
func (d *Deferred) Schedule(delay time.Duration, fn func(token uuid.UUID)) uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	token := uuid.New()
	d.token = token
	d.timer = d.scheduler.AfterFunc(delay, func() { fn(token) })
	return token
}

// Claim reports whether token is the pending action and, if so, clears it.
func (d *Deferred) Claim(token uuid.UUID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil || d.token != token {
		return false
	}
	d.token = uuid.Nil
	d.timer = nil
	return true
}

// Cancel drops the pending action. It reports whether one was pending.
func (d *Deferred) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

func (d *Deferred) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Deferred) cancelLocked() bool {
	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.token = uuid.Nil
	return true
}
