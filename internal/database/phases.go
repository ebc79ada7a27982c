package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
)

const phaseColumns = "id, mode, outcome, seconds, cycle, started_at, ended_at"

// RecordPhase appends a finished or discarded phase to the session log.
func (d *Database) RecordPhase(ctx context.Context, rec models.PhaseRecord) (int64, error) {
	if err := validatePhase(rec); err != nil {
		return 0, wrapPhaseErr("record", 0, err)
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO phases (mode, outcome, seconds, cycle, started_at, ended_at) VALUES (?, ?, ?, ?, ?, ?)",
		string(rec.Mode), string(rec.Outcome), rec.Seconds, rec.Cycle, rec.StartedAt.UTC(), rec.EndedAt.UTC())
	if err != nil {
		return 0, wrapPhaseErr("record", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapPhaseErr("record", 0, err)
	}
	return id, nil
}

// ListPhases returns the whole session log in the order phases ended.
func (d *Database) ListPhases(ctx context.Context) ([]models.PhaseRecord, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, "SELECT "+phaseColumns+" FROM phases ORDER BY ended_at ASC, id ASC")
	if err != nil {
		return nil, wrapPhaseErr("list", 0, err)
	}
	defer rows.Close()
	phases, err := scanPhases(rows)
	if err != nil {
		return nil, wrapPhaseErr("list", 0, err)
	}
	return phases, nil
}

// RecentPhases returns up to limit of the latest phases, newest first.
func (d *Database) RecentPhases(ctx context.Context, limit int) ([]models.PhaseRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, "SELECT "+phaseColumns+" FROM phases ORDER BY ended_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, wrapPhaseErr("recent", 0, err)
	}
	defer rows.Close()
	phases, err := scanPhases(rows)
	if err != nil {
		return nil, wrapPhaseErr("recent", 0, err)
	}
	return phases, nil
}

// Summary aggregates the session log.
func (d *Database) Summary(ctx context.Context) (models.SessionSummary, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var s models.SessionSummary
	err := d.DB.QueryRowContext(ctx, `
		SELECT
			COUNT(1),
			COALESCE(SUM(CASE WHEN outcome = 'completed' AND mode = 'focus' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'completed' AND mode = 'short' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'completed' AND mode = 'long' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'discarded' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN mode = 'focus' THEN seconds ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN mode != 'focus' THEN seconds ELSE 0 END), 0)
		FROM phases`).Scan(
		&s.Phases,
		&s.CompletedFocus,
		&s.CompletedShort,
		&s.CompletedLong,
		&s.Discarded,
		&s.FocusSeconds,
		&s.BreakSeconds,
	)
	if err != nil {
		return s, wrapPhaseErr("summary", 0, err)
	}
	if s.Phases == 0 {
		return s, nil
	}

	var first, last time.Time
	if err := d.DB.QueryRowContext(ctx, "SELECT started_at FROM phases ORDER BY started_at ASC LIMIT 1").Scan(&first); err != nil {
		return s, wrapPhaseErr("summary", 0, err)
	}
	if err := d.DB.QueryRowContext(ctx, "SELECT ended_at FROM phases ORDER BY ended_at DESC LIMIT 1").Scan(&last); err != nil {
		return s, wrapPhaseErr("summary", 0, err)
	}
	s.FirstStartedAt = util.Ptr(first)
	s.LastEndedAt = util.Ptr(last)
	return s, nil
}

func scanPhases(rows *sql.Rows) ([]models.PhaseRecord, error) {
	var phases []models.PhaseRecord
	for rows.Next() {
		var rec models.PhaseRecord
		var mode, outcome string
		if err := rows.Scan(&rec.ID, &mode, &outcome, &rec.Seconds, &rec.Cycle, &rec.StartedAt, &rec.EndedAt); err != nil {
			return nil, err
		}
		rec.Mode = models.Mode(mode)
		rec.Outcome = models.PhaseOutcome(outcome)
		phases = append(phases, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return phases, nil
}

func validatePhase(rec models.PhaseRecord) error {
	if !rec.Mode.Valid() {
		return fmt.Errorf("%w: mode %q", ErrInvalidPhase, rec.Mode)
	}
	if rec.Outcome != models.OutcomeCompleted && rec.Outcome != models.OutcomeDiscarded {
		return fmt.Errorf("%w: outcome %q", ErrInvalidPhase, rec.Outcome)
	}
	if rec.Seconds < 0 || rec.Seconds > rec.Mode.Duration() {
		return fmt.Errorf("%w: %d seconds for %s", ErrInvalidPhase, rec.Seconds, rec.Mode)
	}
	if rec.StartedAt.IsZero() || rec.EndedAt.IsZero() {
		return fmt.Errorf("%w: missing timestamps", ErrInvalidPhase)
	}
	if rec.EndedAt.Before(rec.StartedAt) {
		return fmt.Errorf("%w: ends before it starts", ErrInvalidPhase)
	}
	return nil
}
