package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/golang/mock/gomock"
)

// fakeClock advances one second per call so event timestamps are ordered.
func fakeClock() func() time.Time {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func runDown(c *timer.Controller) {
	c.Start()
	for !c.Tick() {
	}
	c.PhaseEnd()
}

func TestRecorderRecordsCompletedPhase(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	var got models.PhaseRecord
	store.EXPECT().
		RecordPhase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.PhaseRecord) (int64, error) {
			got = rec
			return 1, nil
		}).
		Times(1)

	c := timer.NewController(timer.WithClock(fakeClock()))
	r := NewRecorder(context.Background(), store)
	r.Attach(c)
	runDown(c)

	if got.Mode != models.ModeFocus || got.Outcome != models.OutcomeCompleted {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.Seconds != 1500 || got.Cycle != 1 {
		t.Fatalf("unexpected seconds/cycle: %+v", got)
	}
	if !got.StartedAt.Before(got.EndedAt) {
		t.Fatalf("expected start before end: %+v", got)
	}
	if r.Err() != nil {
		t.Fatalf("unexpected recorder error: %v", r.Err())
	}
}

func TestRecorderRecordsDiscardedProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	var outcomes []models.PhaseOutcome
	var seconds []int
	store.EXPECT().
		RecordPhase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.PhaseRecord) (int64, error) {
			outcomes = append(outcomes, rec.Outcome)
			seconds = append(seconds, rec.Seconds)
			return int64(len(outcomes)), nil
		}).
		Times(2)

	c := timer.NewController(timer.WithClock(fakeClock()))
	r := NewRecorder(context.Background(), store)
	r.Attach(c)

	c.Start()
	c.Tick()
	c.Tick()
	c.SelectMode(models.ModeShort)

	c.Start()
	c.Tick()
	c.Reset()

	if len(outcomes) != 2 || outcomes[0] != models.OutcomeDiscarded || outcomes[1] != models.OutcomeDiscarded {
		t.Fatalf("unexpected outcomes: %v", outcomes)
	}
	if seconds[0] != 2 || seconds[1] != 1 {
		t.Fatalf("unexpected seconds: %v", seconds)
	}
}

func TestRecorderSkipsUntouchedPhases(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	store.EXPECT().RecordPhase(gomock.Any(), gomock.Any()).Times(0)

	c := timer.NewController()
	r := NewRecorder(context.Background(), store)
	r.Attach(c)

	c.SelectMode(models.ModeLong)
	c.Reset()
	c.Start()
	c.Pause()
	c.SelectMode(models.ModeFocus)
}

func TestRecorderKeepsStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	boom := errors.New("disk on fire")
	store.EXPECT().RecordPhase(gomock.Any(), gomock.Any()).Return(int64(0), boom)

	c := timer.NewController()
	r := NewRecorder(context.Background(), store)
	r.Attach(c)
	c.Start()
	c.Tick()
	c.Reset()

	if !errors.Is(r.Err(), boom) {
		t.Fatalf("expected store error, got %v", r.Err())
	}

	c.Start()
	c.Pause()
	if r.Err() != nil {
		t.Fatalf("expected error cleared by the next event, got %v", r.Err())
	}
}

func TestRecorderDetach(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	store.EXPECT().RecordPhase(gomock.Any(), gomock.Any()).Times(0)

	c := timer.NewController()
	r := NewRecorder(context.Background(), store)
	detach := r.Attach(c)
	detach()
	c.Start()
	c.Tick()
	c.Reset()
}

func TestRecorderWithSQLiteStore(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})

	c := timer.NewController(timer.WithClock(fakeClock()))
	r := NewRecorder(ctx, db)
	r.Attach(c)
	runDown(c) // focus -> short
	runDown(c) // short -> focus

	phases, err := db.ListPhases(ctx)
	if err != nil {
		t.Fatalf("ListPhases failed: %v", err)
	}
	if len(phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(phases))
	}
	if phases[0].Mode != models.ModeFocus || phases[1].Mode != models.ModeShort {
		t.Fatalf("unexpected modes: %s, %s", phases[0].Mode, phases[1].Mode)
	}
	if r.Err() != nil {
		t.Fatalf("unexpected recorder error: %v", r.Err())
	}
}
