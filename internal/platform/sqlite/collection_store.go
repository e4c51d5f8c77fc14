package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/store"
)

// SQLiteCollectionStore implements the store.CollectionStore interface using
// a SQLite database as the storage backend.
type SQLiteCollectionStore struct {
	db *sql.DB
}

// NewCollectionStore creates a SQLite implementation of the CollectionStore
// interface. It accepts a database connection that should be initialized and
// managed by the caller.
func NewCollectionStore(db *sql.DB) *SQLiteCollectionStore {
	return &SQLiteCollectionStore{db: db}
}

// Ensure SQLiteCollectionStore implements store.CollectionStore interface
var _ store.CollectionStore = (*SQLiteCollectionStore)(nil)

// Create implements store.CollectionStore.Create
func (s *SQLiteCollectionStore) Create(ctx context.Context, collection *domain.Collection) error {
	if err := collection.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections (id, name, created_at) VALUES (?, ?, ?)`,
		collection.ID, collection.Name, collection.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrCollectionNameExists
		}
		return store.NewStoreError("collection", "create", "failed to insert collection", err)
	}

	return nil
}

// GetByID implements store.CollectionStore.GetByID
func (s *SQLiteCollectionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	var c domain.Collection
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM collections WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCollectionNotFound
		}
		return nil, store.NewStoreError("collection", "get", "failed to query collection", err)
	}

	return &c, nil
}

// List implements store.CollectionStore.List. Collections are ordered by
// their earliest upcoming review; collections with no scheduled reviews come
// last, alphabetically.
func (s *SQLiteCollectionStore) List(ctx context.Context) ([]domain.CollectionSummary, error) {
	// The due cutoff is bound as a parameter so both sides of the comparison
	// use the driver's time encoding.
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.created_at,
		       COALESCE(SUM(CASE WHEN s.repetitions = 0 AND s.interval_days = 0 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN s.repetitions > 0 OR s.interval_days > 0 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN s.next_review_at <= ? THEN 1 ELSE 0 END), 0),
		       MIN(s.next_review_at)
		FROM collections c
		LEFT JOIN schedules s ON s.collection_id = c.id
		GROUP BY c.id, c.name, c.created_at
		ORDER BY MIN(s.next_review_at) IS NULL, MIN(s.next_review_at), c.name`,
		time.Now().UTC())
	if err != nil {
		return nil, store.NewStoreError("collection", "list", "failed to query collections", err)
	}
	defer rows.Close()

	var summaries []domain.CollectionSummary
	for rows.Next() {
		var summary domain.CollectionSummary
		var nextReview sql.NullTime
		if err := rows.Scan(
			&summary.ID, &summary.Name, &summary.CreatedAt,
			&summary.NewCount, &summary.LearningCount, &summary.DueCount,
			&nextReview,
		); err != nil {
			return nil, store.NewStoreError("collection", "list", "failed to scan collection row", err)
		}
		if nextReview.Valid {
			t := nextReview.Time
			summary.NextReviewAt = &t
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("collection", "list", "failed to iterate collections", err)
	}

	return summaries, nil
}

// Delete implements store.CollectionStore.Delete. Words, schedules, examples
// and relations go with the collection via cascading deletes; session records
// are an audit log and stay.
func (s *SQLiteCollectionStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id)
	if err != nil {
		return store.NewStoreError("collection", "delete", "failed to delete collection", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("collection", "delete", "failed to check deleted rows", err)
	}
	if affected == 0 {
		return store.ErrCollectionNotFound
	}

	return nil
}
