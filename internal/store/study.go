package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
)

// Distractor is a wrong-answer candidate for multiple-choice study mode.
type Distractor struct {
	WordID uuid.UUID
	Text   string
}

// StudyStore is the contract the study engine consumes. It covers queue
// building, distractor sampling, schedule persistence and session auditing;
// nothing here exposes how or where the data is stored.
type StudyStore interface {
	// DueCards returns the cards in a collection whose next review time is at
	// or before now, ordered ascending by next review time (insertion order
	// breaks ties). Each card carries a snapshot of its current schedule.
	DueCards(ctx context.Context, collectionID uuid.UUID, now time.Time) ([]domain.Card, error)

	// AllCards returns every word in the collection as a card with its
	// persisted schedule snapshot, in creation order. Used to sample
	// random-practice queues.
	AllCards(ctx context.Context, collectionID uuid.UUID) ([]domain.Card, error)

	// SampleDistractors returns up to n definitions of other words in the
	// same collection, excluding the given word, in random store order.
	// Fewer than n (including zero) is not an error.
	SampleDistractors(
		ctx context.Context,
		collectionID, excludeWordID uuid.UUID,
		n int,
	) ([]Distractor, error)

	// GetSchedule retrieves the persisted schedule for a word in a collection.
	// Returns ErrScheduleNotFound if none exists.
	GetSchedule(ctx context.Context, wordID, collectionID uuid.UUID) (*domain.ScheduleState, error)

	// WriteSchedule persists a schedule computed by the scheduler. The write
	// is last-write-wins; no concurrent-modification check is performed.
	WriteSchedule(ctx context.Context, state *domain.ScheduleState) error

	// AppendSessionRecord adds one review event to the append-only session log.
	AppendSessionRecord(ctx context.Context, record *domain.SessionRecord) error

	// WordMetadata returns the examples and relations of a word, used for
	// typed-mode hints and the additional-info payload. A word without
	// metadata yields empty slices, not an error.
	WordMetadata(ctx context.Context, wordID uuid.UUID) (*domain.WordMetadata, error)
}

// StatsStore reports aggregate study statistics.
type StatsStore interface {
	// StudySummary returns count and average aggregates over a collection's
	// session records. A collection with no records yields a zero summary.
	StudySummary(ctx context.Context, collectionID uuid.UUID) (*domain.StudySummary, error)
}
