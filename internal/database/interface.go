package database

import (
	"context"

	"github.com/akyairhashvil/pomo/internal/models"
)

// PhaseRepository defines session log operations.
type PhaseRepository interface {
	RecordPhase(ctx context.Context, rec models.PhaseRecord) (int64, error)
	ListPhases(ctx context.Context) ([]models.PhaseRecord, error)
	RecentPhases(ctx context.Context, limit int) ([]models.PhaseRecord, error)
	Summary(ctx context.Context) (models.SessionSummary, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	PhaseRepository
}

var _ Repository = (*Database)(nil)
