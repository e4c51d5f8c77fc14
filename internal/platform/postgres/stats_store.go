package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/store"
)

// PostgresStatsStore implements the store.StatsStore interface using a
// PostgreSQL database as the storage backend.
type PostgresStatsStore struct {
	db *sql.DB
}

// NewStatsStore creates a PostgreSQL implementation of the StatsStore interface.
func NewStatsStore(db *sql.DB) *PostgresStatsStore {
	return &PostgresStatsStore{db: db}
}

// Ensure PostgresStatsStore implements store.StatsStore interface
var _ store.StatsStore = (*PostgresStatsStore)(nil)

// StudySummary implements store.StatsStore.StudySummary. A collection with
// no session records yields a zero summary, not an error.
func (s *PostgresStatsStore) StudySummary(
	ctx context.Context,
	collectionID uuid.UUID,
) (*domain.StudySummary, error) {
	var summary domain.StudySummary
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN correct THEN 1 ELSE 0 END), 0),
		       COALESCE(AVG(quality), 0)
		FROM session_records WHERE collection_id = $1`,
		collectionID).
		Scan(&summary.TotalReviews, &summary.CorrectReviews, &summary.AverageQuality)
	if err != nil {
		return nil, store.NewStoreError("session_record", "summary", "failed to query study summary", err)
	}

	return &summary, nil
}
