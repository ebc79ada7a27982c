package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

func TestRecordAndListPhases(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	recs := []models.PhaseRecord{
		phase(models.ModeFocus, models.OutcomeCompleted, 1500, 1, 0),
		phase(models.ModeShort, models.OutcomeCompleted, 300, 1, 25*time.Minute),
		phase(models.ModeFocus, models.OutcomeDiscarded, 120, 1, 30*time.Minute),
	}
	for _, rec := range recs {
		id, err := db.RecordPhase(ctx, rec)
		if err != nil {
			t.Fatalf("RecordPhase failed: %v", err)
		}
		if id == 0 {
			t.Fatalf("expected non-zero id")
		}
	}

	got, err := db.ListPhases(ctx)
	if err != nil {
		t.Fatalf("ListPhases failed: %v", err)
	}
	if len(got) != len(recs) {
		t.Fatalf("expected %d phases, got %d", len(recs), len(got))
	}
	for i, rec := range recs {
		if got[i].Mode != rec.Mode || got[i].Outcome != rec.Outcome || got[i].Seconds != rec.Seconds {
			t.Fatalf("phase %d mismatch: %+v", i, got[i])
		}
		if !got[i].StartedAt.Equal(rec.StartedAt) || !got[i].EndedAt.Equal(rec.EndedAt) {
			t.Fatalf("phase %d timestamps mismatch: %+v", i, got[i])
		}
	}
}

func TestRecentPhasesNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	for i := 0; i < 5; i++ {
		rec := phase(models.ModeShort, models.OutcomeCompleted, 300, i, time.Duration(i)*time.Hour)
		if _, err := db.RecordPhase(ctx, rec); err != nil {
			t.Fatalf("RecordPhase failed: %v", err)
		}
	}
	got, err := db.RecentPhases(ctx, 2)
	if err != nil {
		t.Fatalf("RecentPhases failed: %v", err)
	}
	if len(got) != 2 || got[0].Cycle != 4 || got[1].Cycle != 3 {
		t.Fatalf("unexpected recent phases: %+v", got)
	}
	none, err := db.RecentPhases(ctx, 0)
	if err != nil || none != nil {
		t.Fatalf("expected nil for zero limit, got %v %v", none, err)
	}
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	empty, err := db.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if empty.Phases != 0 || empty.FirstStartedAt != nil {
		t.Fatalf("expected empty summary, got %+v", empty)
	}

	recs := []models.PhaseRecord{
		phase(models.ModeFocus, models.OutcomeCompleted, 1500, 1, 0),
		phase(models.ModeShort, models.OutcomeCompleted, 300, 1, 25*time.Minute),
		phase(models.ModeFocus, models.OutcomeDiscarded, 60, 1, 30*time.Minute),
		phase(models.ModeLong, models.OutcomeCompleted, 900, 4, 2*time.Hour),
	}
	for _, rec := range recs {
		if _, err := db.RecordPhase(ctx, rec); err != nil {
			t.Fatalf("RecordPhase failed: %v", err)
		}
	}
	s, err := db.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if s.Phases != 4 || s.CompletedFocus != 1 || s.CompletedShort != 1 || s.CompletedLong != 1 || s.Discarded != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.FocusSeconds != 1560 || s.BreakSeconds != 1200 {
		t.Fatalf("unexpected seconds: focus=%d break=%d", s.FocusSeconds, s.BreakSeconds)
	}
	if s.FirstStartedAt == nil || !s.FirstStartedAt.Equal(baseTime) {
		t.Fatalf("unexpected first start: %v", s.FirstStartedAt)
	}
	wantLast := recs[3].EndedAt
	if s.LastEndedAt == nil || !s.LastEndedAt.Equal(wantLast) {
		t.Fatalf("unexpected last end: %v", s.LastEndedAt)
	}
}

func TestRecordPhaseValidation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	bad := []models.PhaseRecord{
		phase(models.Mode("nap"), models.OutcomeCompleted, 10, 0, 0),
		phase(models.ModeFocus, models.PhaseOutcome("skipped"), 10, 0, 0),
		phase(models.ModeShort, models.OutcomeCompleted, 301, 0, 0),
		{Mode: models.ModeFocus, Outcome: models.OutcomeCompleted},
		{Mode: models.ModeFocus, Outcome: models.OutcomeCompleted, StartedAt: baseTime, EndedAt: baseTime.Add(-time.Second)},
	}
	for i, rec := range bad {
		_, err := db.RecordPhase(ctx, rec)
		if !errors.Is(err, ErrInvalidPhase) {
			t.Fatalf("case %d: expected invalid phase error, got %v", i, err)
		}
		var opErr *OpError
		if !errors.As(err, &opErr) || opErr.Op != "record" {
			t.Fatalf("case %d: expected OpError, got %T", i, err)
		}
	}
}
