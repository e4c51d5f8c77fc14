package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/store"
)

// SQLiteStatsStore implements the store.StatsStore interface using a SQLite
// database as the storage backend.
type SQLiteStatsStore struct {
	db *sql.DB
}

// NewStatsStore creates a SQLite implementation of the StatsStore interface.
func NewStatsStore(db *sql.DB) *SQLiteStatsStore {
	return &SQLiteStatsStore{db: db}
}

// Ensure SQLiteStatsStore implements store.StatsStore interface
var _ store.StatsStore = (*SQLiteStatsStore)(nil)

// StudySummary implements store.StatsStore.StudySummary. A collection with
// no session records yields a zero summary, not an error.
func (s *SQLiteStatsStore) StudySummary(
	ctx context.Context,
	collectionID uuid.UUID,
) (*domain.StudySummary, error) {
	var summary domain.StudySummary
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(correct), 0),
		       COALESCE(AVG(quality), 0)
		FROM session_records WHERE collection_id = ?`,
		collectionID).
		Scan(&summary.TotalReviews, &summary.CorrectReviews, &summary.AverageQuality)
	if err != nil {
		return nil, store.NewStoreError("session_record", "summary", "failed to query study summary", err)
	}

	return &summary, nil
}
