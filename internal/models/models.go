package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownMode is returned when a mode name is not one of focus, short or long.
var ErrUnknownMode = errors.New("unknown mode")

// Mode enumerates the three countdown kinds.
type Mode string

const (
	ModeFocus Mode = "focus"
	ModeShort Mode = "short"
	ModeLong  Mode = "long"
)

// Modes lists every mode in tab order.
var Modes = []Mode{ModeFocus, ModeShort, ModeLong}

// Duration returns the fixed length of the mode in seconds.
func (m Mode) Duration() int {
	switch m {
	case ModeShort:
		return 5 * 60
	case ModeLong:
		return 15 * 60
	default:
		return 25 * 60
	}
}

// Index returns the tab position of the mode.
func (m Mode) Index() int {
	for i, mode := range Modes {
		if mode == m {
			return i
		}
	}
	return 0
}

// Offset returns the mode delta tabs away, wrapping in both directions.
func (m Mode) Offset(delta int) Mode {
	n := len(Modes)
	return Modes[((m.Index()+delta)%n+n)%n]
}

// Valid reports whether m is one of the canonical modes.
func (m Mode) Valid() bool {
	for _, mode := range Modes {
		if mode == m {
			return true
		}
	}
	return false
}

// ParseMode accepts the canonical names and a few aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "focus", "pomodoro", "work":
		return ModeFocus, nil
	case "short", "short_break", "short-break":
		return ModeShort, nil
	case "long", "long_break", "long-break":
		return ModeLong, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// TimerState is the full observable state of the countdown.
type TimerState struct {
	Mode                 Mode
	Remaining            int
	Running              bool
	CompletedFocusCycles int
}

// NewTimerState returns the state at process start.
func NewTimerState() TimerState {
	return TimerState{
		Mode:      ModeFocus,
		Remaining: ModeFocus.Duration(),
	}
}

// Elapsed returns the seconds already consumed in the current mode.
func (s TimerState) Elapsed() int {
	return s.Mode.Duration() - s.Remaining
}

// Progress returns the elapsed fraction in [0, 1].
func (s TimerState) Progress() float64 {
	total := s.Mode.Duration()
	if total <= 0 {
		return 0
	}
	return float64(s.Elapsed()) / float64(total)
}

// PhaseOutcome records how a phase ended.
type PhaseOutcome string

const (
	OutcomeCompleted PhaseOutcome = "completed"
	OutcomeDiscarded PhaseOutcome = "discarded"
)

// PhaseRecord is one row of the session log.
type PhaseRecord struct {
	ID        int64
	Mode      Mode
	Outcome   PhaseOutcome
	Seconds   int // time actually counted down
	Cycle     int // completed focus cycles after this phase
	StartedAt time.Time
	EndedAt   time.Time
}

// SessionSummary aggregates the session log.
type SessionSummary struct {
	Phases         int
	CompletedFocus int
	CompletedShort int
	CompletedLong  int
	Discarded      int
	FocusSeconds   int
	BreakSeconds   int
	FirstStartedAt *time.Time
	LastEndedAt    *time.Time
}
