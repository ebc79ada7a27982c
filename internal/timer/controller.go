// Package timer holds the countdown state machine that drives the pomodoro
// screen. It has no clock of its own: callers deliver ticks and the
// deferred phase-end step.
package timer

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// Controller owns the TimerState and applies every transition to it.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Controller struct {
	state           models.TimerState
	phaseEndPending bool
	observers       []subscription
	nextSubID       int
	now             func() time.Time
}

type subscription struct {
	id int
	fn Observer
}

// Option customises a Controller.
type Option func(*Controller)

// WithClock overrides the timestamp source used for events.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// NewController returns a controller in the initial idle focus state.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		state: models.NewTimerState(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() models.TimerState {
	return c.state
}

// PhaseEndPending reports whether a drained phase is waiting for PhaseEnd.
func (c *Controller) PhaseEndPending() bool {
	return c.phaseEndPending
}

// Subscribe registers fn for every subsequent event. The returned func
// removes the subscription.
func (c *Controller) Subscribe(fn Observer) func() {
	if fn == nil {
		return func() {}
	}
	c.nextSubID++
	id := c.nextSubID
	c.observers = append(c.observers, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range c.observers {
			if sub.id == id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// Start moves an idle timer with time left into the running state.
func (c *Controller) Start() bool {
	if c.state.Running || c.state.Remaining <= 0 {
		return false
	}
	c.state.Running = true
	c.emit(EventStarted, c.state.Mode, c.state.Mode, c.state.Elapsed())
	return true
}

// Pause stops a running timer and keeps the remaining time.
func (c *Controller) Pause() bool {
	if !c.state.Running {
		return false
	}
	c.state.Running = false
	c.emit(EventPaused, c.state.Mode, c.state.Mode, c.state.Elapsed())
	return true
}

// Toggle starts an idle timer or pauses a running one.
func (c *Controller) Toggle() bool {
	if c.state.Running {
		return c.Pause()
	}
	return c.Start()
}

// Tick consumes one second. It returns true when the tick drained the
// countdown; the caller must then deliver PhaseEnd as a separate step.
func (c *Controller) Tick() bool {
	if !c.state.Running || c.state.Remaining <= 0 {
		return false
	}
	c.state.Remaining--
	if c.state.Remaining > 0 {
		c.emit(EventTicked, c.state.Mode, c.state.Mode, c.state.Elapsed())
		return false
	}
	c.state.Running = false
	c.phaseEndPending = true
	c.emit(EventDrained, c.state.Mode, c.state.Mode, c.state.Elapsed())
	return true
}

// PhaseEnd advances a drained phase to its successor mode, left idle.
// It is a no-op unless a drained tick is pending.
func (c *Controller) PhaseEnd() (models.Mode, bool) {
	if !c.phaseEndPending {
		return c.state.Mode, false
	}
	c.phaseEndPending = false
	from := c.state.Mode
	elapsed := c.state.Elapsed()
	next := models.ModeFocus
	if from == models.ModeFocus {
		c.state.CompletedFocusCycles++
		next = NextBreak(c.state.CompletedFocusCycles)
	}
	c.state.Mode = next
	c.state.Remaining = next.Duration()
	c.state.Running = false
	c.emit(EventPhaseEnded, from, next, elapsed)
	return next, true
}

// SelectMode switches to m from any state, stopped and with a full
// countdown. Progress in the current phase is dropped.
func (c *Controller) SelectMode(m models.Mode) {
	from := c.state.Mode
	elapsed := c.state.Elapsed()
	c.phaseEndPending = false
	c.state.Mode = m
	c.state.Remaining = m.Duration()
	c.state.Running = false
	c.emit(EventModeSelected, from, m, elapsed)
}

// Reset refills the current mode and stops the timer.
func (c *Controller) Reset() {
	elapsed := c.state.Elapsed()
	c.phaseEndPending = false
	c.state.Remaining = c.state.Mode.Duration()
	c.state.Running = false
	c.emit(EventReset, c.state.Mode, c.state.Mode, elapsed)
}

// NextBreak picks the break that follows the given count of completed
// focus cycles. Every LongBreakEvery-th cycle earns a long break.
func NextBreak(completed int) models.Mode {
	if completed > 0 && completed%config.LongBreakEvery == 0 {
		return models.ModeLong
	}
	return models.ModeShort
}

func (c *Controller) emit(kind EventKind, from, to models.Mode, elapsed int) {
	if len(c.observers) == 0 {
		return
	}
	ev := Event{
		Kind:    kind,
		From:    from,
		To:      to,
		State:   c.state,
		Elapsed: elapsed,
		At:      c.now(),
	}
	subs := append([]subscription(nil), c.observers...)
	for _, sub := range subs {
		sub.fn(ev)
	}
}
