package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/store"
)

// PostgresWordStore implements the store.WordStore interface using a
// PostgreSQL database as the storage backend.
type PostgresWordStore struct {
	db *sql.DB
}

// NewWordStore creates a PostgreSQL implementation of the WordStore interface.
func NewWordStore(db *sql.DB) *PostgresWordStore {
	return &PostgresWordStore{db: db}
}

// Ensure PostgresWordStore implements store.WordStore interface
var _ store.WordStore = (*PostgresWordStore)(nil)

// Create implements store.WordStore.Create. The word and its initial
// schedule are inserted in one transaction so a word can never exist without
// a schedule.
func (s *PostgresWordStore) Create(ctx context.Context, word *domain.Word) error {
	if err := word.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return store.NewStoreError("word", "create", "failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO words (id, collection_id, term, definition, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		word.ID, word.CollectionID, word.Term, word.Definition, word.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrCollectionNotFound
		}
		return store.NewStoreError("word", "create", "failed to insert word", err)
	}

	schedule := domain.NewScheduleState(word.ID, word.CollectionID)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO schedules (word_id, collection_id, ease_factor, repetitions, interval_days, next_review_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schedule.WordID, schedule.CollectionID, schedule.EaseFactor,
		schedule.Repetitions, schedule.IntervalDays, schedule.NextReviewAt, schedule.UpdatedAt)
	if err != nil {
		return store.NewStoreError("word", "create", "failed to insert initial schedule", err)
	}

	if err := tx.Commit(); err != nil {
		return store.NewStoreError("word", "create", "failed to commit transaction", err)
	}

	return nil
}

// GetByID implements store.WordStore.GetByID
func (s *PostgresWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	var w domain.Word
	err := s.db.QueryRowContext(ctx,
		`SELECT id, collection_id, term, definition, created_at FROM words WHERE id = $1`, id).
		Scan(&w.ID, &w.CollectionID, &w.Term, &w.Definition, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWordNotFound
		}
		return nil, store.NewStoreError("word", "get", "failed to query word", err)
	}

	return &w, nil
}

// ListByCollection implements store.WordStore.ListByCollection
func (s *PostgresWordStore) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.Word, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, collection_id, term, definition, created_at
		 FROM words WHERE collection_id = $1 ORDER BY created_at, id`, collectionID)
	if err != nil {
		return nil, store.NewStoreError("word", "list", "failed to query words", err)
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.CollectionID, &w.Term, &w.Definition, &w.CreatedAt); err != nil {
			return nil, store.NewStoreError("word", "list", "failed to scan word row", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("word", "list", "failed to iterate words", err)
	}

	return words, nil
}

// Delete implements store.WordStore.Delete. The schedule, examples and
// relations cascade with the word.
func (s *PostgresWordStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM words WHERE id = $1`, id)
	if err != nil {
		return store.NewStoreError("word", "delete", "failed to delete word", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("word", "delete", "failed to check deleted rows", err)
	}
	if affected == 0 {
		return store.ErrWordNotFound
	}

	return nil
}

// AddExample implements store.WordStore.AddExample
func (s *PostgresWordStore) AddExample(ctx context.Context, example *domain.WordExample) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO word_examples (id, word_id, example_text, context_notes)
		 VALUES ($1, $2, $3, $4)`,
		example.ID, example.WordID, example.ExampleText, example.ContextNotes)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrWordNotFound
		}
		return store.NewStoreError("word", "add_example", "failed to insert example", err)
	}

	return nil
}

// AddRelation implements store.WordStore.AddRelation
func (s *PostgresWordStore) AddRelation(ctx context.Context, relation *domain.WordRelation) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO word_relations (id, word_id, relation_type, related_term)
		 VALUES ($1, $2, $3, $4)`,
		relation.ID, relation.WordID, relation.RelationType, relation.RelatedTerm)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrWordNotFound
		}
		return store.NewStoreError("word", "add_relation", "failed to insert relation", err)
	}

	return nil
}
