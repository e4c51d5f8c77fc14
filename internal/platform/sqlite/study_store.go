package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/store"
)

// SQLiteStudyStore implements the store.StudyStore interface using a SQLite
// database as the storage backend.
type SQLiteStudyStore struct {
	db *sql.DB
}

// NewStudyStore creates a SQLite implementation of the StudyStore interface.
func NewStudyStore(db *sql.DB) *SQLiteStudyStore {
	return &SQLiteStudyStore{db: db}
}

// Ensure SQLiteStudyStore implements store.StudyStore interface
var _ store.StudyStore = (*SQLiteStudyStore)(nil)

const cardColumns = `
	w.id, w.collection_id, w.term, w.definition,
	s.ease_factor, s.repetitions, s.interval_days, s.next_review_at, s.updated_at`

// DueCards implements store.StudyStore.DueCards
func (s *SQLiteStudyStore) DueCards(
	ctx context.Context,
	collectionID uuid.UUID,
	now time.Time,
) ([]domain.Card, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+cardColumns+`
		FROM words w
		JOIN schedules s ON s.word_id = w.id AND s.collection_id = w.collection_id
		WHERE w.collection_id = ? AND s.next_review_at <= ?
		ORDER BY s.next_review_at, w.created_at, w.id`,
		collectionID, now)
	if err != nil {
		return nil, store.NewStoreError("schedule", "due_cards", "failed to query due cards", err)
	}
	defer rows.Close()

	return scanCards(rows, "due_cards")
}

// AllCards implements store.StudyStore.AllCards
func (s *SQLiteStudyStore) AllCards(ctx context.Context, collectionID uuid.UUID) ([]domain.Card, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+cardColumns+`
		FROM words w
		JOIN schedules s ON s.word_id = w.id AND s.collection_id = w.collection_id
		WHERE w.collection_id = ?
		ORDER BY w.created_at, w.id`,
		collectionID)
	if err != nil {
		return nil, store.NewStoreError("schedule", "all_cards", "failed to query cards", err)
	}
	defer rows.Close()

	return scanCards(rows, "all_cards")
}

func scanCards(rows *sql.Rows, operation string) ([]domain.Card, error) {
	var cards []domain.Card
	for rows.Next() {
		var c domain.Card
		if err := rows.Scan(
			&c.WordID, &c.CollectionID, &c.Term, &c.Definition,
			&c.Schedule.EaseFactor, &c.Schedule.Repetitions, &c.Schedule.IntervalDays,
			&c.Schedule.NextReviewAt, &c.Schedule.UpdatedAt,
		); err != nil {
			return nil, store.NewStoreError("schedule", operation, "failed to scan card row", err)
		}
		c.Schedule.WordID = c.WordID
		c.Schedule.CollectionID = c.CollectionID
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("schedule", operation, "failed to iterate cards", err)
	}

	return cards, nil
}

// SampleDistractors implements store.StudyStore.SampleDistractors
func (s *SQLiteStudyStore) SampleDistractors(
	ctx context.Context,
	collectionID, excludeWordID uuid.UUID,
	n int,
) ([]store.Distractor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, definition FROM words
		WHERE collection_id = ? AND id != ?
		ORDER BY RANDOM() LIMIT ?`,
		collectionID, excludeWordID, n)
	if err != nil {
		return nil, store.NewStoreError("word", "sample_distractors", "failed to query distractors", err)
	}
	defer rows.Close()

	var distractors []store.Distractor
	for rows.Next() {
		var d store.Distractor
		if err := rows.Scan(&d.WordID, &d.Text); err != nil {
			return nil, store.NewStoreError("word", "sample_distractors", "failed to scan distractor row", err)
		}
		distractors = append(distractors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("word", "sample_distractors", "failed to iterate distractors", err)
	}

	return distractors, nil
}

// GetSchedule implements store.StudyStore.GetSchedule
func (s *SQLiteStudyStore) GetSchedule(
	ctx context.Context,
	wordID, collectionID uuid.UUID,
) (*domain.ScheduleState, error) {
	var state domain.ScheduleState
	err := s.db.QueryRowContext(ctx, `
		SELECT word_id, collection_id, ease_factor, repetitions, interval_days, next_review_at, updated_at
		FROM schedules WHERE word_id = ? AND collection_id = ?`,
		wordID, collectionID).
		Scan(&state.WordID, &state.CollectionID, &state.EaseFactor,
			&state.Repetitions, &state.IntervalDays, &state.NextReviewAt, &state.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrScheduleNotFound
		}
		return nil, store.NewStoreError("schedule", "get", "failed to query schedule", err)
	}

	return &state, nil
}

// WriteSchedule implements store.StudyStore.WriteSchedule. The upsert is
// last-write-wins: no concurrent-modification check.
func (s *SQLiteStudyStore) WriteSchedule(ctx context.Context, state *domain.ScheduleState) error {
	if err := state.Validate(); err != nil {
		return store.NewStoreError("schedule", "write", "invalid schedule state", err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO schedules (word_id, collection_id, ease_factor, repetitions, interval_days, next_review_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(word_id, collection_id) DO UPDATE SET
			ease_factor = excluded.ease_factor,
			repetitions = excluded.repetitions,
			interval_days = excluded.interval_days,
			next_review_at = excluded.next_review_at,
			updated_at = excluded.updated_at`,
		state.WordID, state.CollectionID, state.EaseFactor,
		state.Repetitions, state.IntervalDays, state.NextReviewAt, state.UpdatedAt)
	if err != nil {
		return store.NewStoreError("schedule", "write", "failed to upsert schedule", err)
	}

	return nil
}

// AppendSessionRecord implements store.StudyStore.AppendSessionRecord
func (s *SQLiteStudyStore) AppendSessionRecord(ctx context.Context, record *domain.SessionRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_records (id, word_id, collection_id, correct, quality, mode, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.WordID, record.CollectionID,
		record.Correct, record.Quality, string(record.Mode), record.CreatedAt)
	if err != nil {
		return store.NewStoreError("session_record", "append", "failed to insert session record", err)
	}

	return nil
}

// WordMetadata implements store.StudyStore.WordMetadata
func (s *SQLiteStudyStore) WordMetadata(ctx context.Context, wordID uuid.UUID) (*domain.WordMetadata, error) {
	meta := &domain.WordMetadata{}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, word_id, example_text, context_notes
		 FROM word_examples WHERE word_id = ? ORDER BY rowid`, wordID)
	if err != nil {
		return nil, store.NewStoreError("word", "metadata", "failed to query examples", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ex domain.WordExample
		if err := rows.Scan(&ex.ID, &ex.WordID, &ex.ExampleText, &ex.ContextNotes); err != nil {
			return nil, store.NewStoreError("word", "metadata", "failed to scan example row", err)
		}
		meta.Examples = append(meta.Examples, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("word", "metadata", "failed to iterate examples", err)
	}

	relRows, err := s.db.QueryContext(ctx,
		`SELECT id, word_id, relation_type, related_term
		 FROM word_relations WHERE word_id = ? ORDER BY rowid`, wordID)
	if err != nil {
		return nil, store.NewStoreError("word", "metadata", "failed to query relations", err)
	}
	defer relRows.Close()

	for relRows.Next() {
		var rel domain.WordRelation
		if err := relRows.Scan(&rel.ID, &rel.WordID, &rel.RelationType, &rel.RelatedTerm); err != nil {
			return nil, store.NewStoreError("word", "metadata", "failed to scan relation row", err)
		}
		meta.Relations = append(meta.Relations, rel)
	}
	if err := relRows.Err(); err != nil {
		return nil, store.NewStoreError("word", "metadata", "failed to iterate relations", err)
	}

	return meta, nil
}
