package timer

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

// EventKind identifies which transition produced an Event.
type EventKind string

const (
	EventStarted      EventKind = "started"
	EventPaused       EventKind = "paused"
	EventTicked       EventKind = "ticked"
	EventDrained      EventKind = "drained"
	EventPhaseEnded   EventKind = "phase_ended"
	EventModeSelected EventKind = "mode_selected"
	EventReset        EventKind = "reset"
)

// Event is delivered to subscribers after a transition has been applied.
type Event struct {
	Kind EventKind
	From models.Mode
	To   models.Mode
	// State is the snapshot after the transition.
	State models.TimerState
	// Elapsed is the countdown time consumed in From before the transition.
	Elapsed int
	At      time.Time
}

// Observer receives controller events.
type Observer func(Event)
