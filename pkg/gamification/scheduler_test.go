package gamification

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// manualClock is a Scheduler whose time only moves on Advance.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
	fired  int
}

type manualTimer struct {
	clock   *manualClock
	at      time.Duration
	f       func()
	done    bool
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward, running due callbacks in deadline order.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	for {
		var next *manualTimer
		for _, t := range c.timers {
			if t.done || t.stopped || t.at > target {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			break
		}
		c.now = next.at
		next.done = true
		c.fired++
		c.mu.Unlock()
		next.f()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

func (c *manualClock) Fired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fired
}

func TestDeferredRunsOnce(t *testing.T) {
	clock := &manualClock{}
	d := NewDeferred(clock)

	var got []uuid.UUID
	token := d.Schedule(time.Second, func(tok uuid.UUID) {
		if d.Claim(tok) {
			got = append(got, tok)
		}
	})
	assert.True(t, d.Pending())

	clock.Advance(999 * time.Millisecond)
	assert.Empty(t, got)

	clock.Advance(time.Millisecond)
	assert.Equal(t, []uuid.UUID{token}, got)
	assert.False(t, d.Pending())
}

func TestDeferredScheduleReplacesPending(t *testing.T) {
	clock := &manualClock{}
	d := NewDeferred(clock)

	var ran []string
	d.Schedule(15*time.Second, func(tok uuid.UUID) {
		if d.Claim(tok) {
			ran = append(ran, "first")
		}
	})
	clock.Advance(5 * time.Second)
	d.Schedule(10*time.Second, func(tok uuid.UUID) {
		if d.Claim(tok) {
			ran = append(ran, "second")
		}
	})

	clock.Advance(30 * time.Second)
	assert.Equal(t, []string{"second"}, ran)
	assert.Equal(t, 1, clock.Fired())
}

func TestDeferredStaleTokenIsRejected(t *testing.T) {
	clock := &manualClock{}
	d := NewDeferred(clock)

	stale := d.Schedule(time.Second, func(uuid.UUID) {})
	current := d.Schedule(time.Second, func(uuid.UUID) {})

	assert.False(t, d.Claim(stale))
	assert.True(t, d.Claim(current))
	assert.False(t, d.Claim(current))
}

func TestDeferredCancel(t *testing.T) {
	clock := &manualClock{}
	d := NewDeferred(clock)

	assert.False(t, d.Cancel())

	ran := false
	d.Schedule(time.Second, func(tok uuid.UUID) { ran = d.Claim(tok) })
	assert.True(t, d.Cancel())

	clock.Advance(time.Minute)
	assert.False(t, ran)
	assert.Equal(t, 0, clock.Fired())
}
