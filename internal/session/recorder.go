// Package session turns controller events into session log rows.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
)

// Store is the write side of the session log.
//
//go:generate mockgen -source=recorder.go -destination=mock_store_test.go -package=session
type Store interface {
	RecordPhase(ctx context.Context, rec models.PhaseRecord) (int64, error)
}

// Recorder observes a Controller and records every phase that completes or
// is discarded with time on the clock.
type Recorder struct {
	ctx       context.Context
	store     Store
	startedAt time.Time
	lastErr   error
}

func NewRecorder(ctx context.Context, store Store) *Recorder {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Recorder{ctx: ctx, store: store}
}

// Attach subscribes the recorder to c and returns the unsubscribe func.
func (r *Recorder) Attach(c *timer.Controller) func() {
	return c.Subscribe(r.Observe)
}

// Err returns the store error raised by the most recent event, if any.
func (r *Recorder) Err() error {
	return r.lastErr
}

// Observe handles one controller event.
func (r *Recorder) Observe(ev timer.Event) {
	r.lastErr = nil
	switch ev.Kind {
	case timer.EventStarted:
		if r.startedAt.IsZero() {
			r.startedAt = ev.At
		}
		slog.Debug("timer started", "mode", ev.State.Mode, "remaining", ev.State.Remaining)
	case timer.EventPaused:
		slog.Debug("timer paused", "mode", ev.State.Mode, "remaining", ev.State.Remaining)
	case timer.EventDrained:
		slog.Debug("phase drained", "mode", ev.From)
	case timer.EventPhaseEnded:
		slog.Debug("phase ended", "from", ev.From, "to", ev.To, "cycles", ev.State.CompletedFocusCycles)
		r.record(ev, models.OutcomeCompleted)
	case timer.EventModeSelected, timer.EventReset:
		slog.Debug("phase abandoned", "kind", ev.Kind, "from", ev.From, "to", ev.To, "elapsed", ev.Elapsed)
		if ev.Elapsed > 0 {
			r.record(ev, models.OutcomeDiscarded)
		}
		r.startedAt = time.Time{}
	}
}

func (r *Recorder) record(ev timer.Event, outcome models.PhaseOutcome) {
	started := r.startedAt
	if started.IsZero() || started.After(ev.At) {
		started = ev.At.Add(-time.Duration(ev.Elapsed) * time.Second)
	}
	r.startedAt = time.Time{}
	rec := models.PhaseRecord{
		Mode:      ev.From,
		Outcome:   outcome,
		Seconds:   ev.Elapsed,
		Cycle:     ev.State.CompletedFocusCycles,
		StartedAt: started,
		EndedAt:   ev.At,
	}
	if _, err := r.store.RecordPhase(r.ctx, rec); err != nil {
		r.lastErr = err
		util.LogError("record phase", err)
	}
}
