package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultEaseFactor is the ease assigned to a word when it is first added to
// a collection. New words are due immediately with a zero interval.
const DefaultEaseFactor = 2.5

// ScheduleState tracks the spaced-repetition schedule of one word in one
// collection. It is created when the word is added, mutated only by the
// scheduler (via the study engine), and removed only together with its word.
type ScheduleState struct {
	WordID       uuid.UUID `json:"word_id"`
	CollectionID uuid.UUID `json:"collection_id"`
	EaseFactor   float64   `json:"ease_factor"`   // bounded [1.3, 2.5] by the scheduler
	Repetitions  int       `json:"repetitions"`   // consecutive successful reviews
	IntervalDays int       `json:"interval_days"` // current interval in days
	NextReviewAt time.Time `json:"next_review_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewScheduleState creates the initial schedule for a freshly added word:
// default ease, no repetitions, due immediately.
func NewScheduleState(wordID, collectionID uuid.UUID) *ScheduleState {
	now := time.Now().UTC()
	return &ScheduleState{
		WordID:       wordID,
		CollectionID: collectionID,
		EaseFactor:   DefaultEaseFactor,
		Repetitions:  0,
		IntervalDays: 0,
		NextReviewAt: now,
		UpdatedAt:    now,
	}
}

// Validate checks if the ScheduleState has valid data.
func (s *ScheduleState) Validate() error {
	if s.WordID == uuid.Nil {
		return ErrEmptyWordID
	}

	if s.CollectionID == uuid.Nil {
		return ErrEmptyCollectionID
	}

	if s.IntervalDays < 0 {
		return ErrInvalidInterval
	}

	if s.Repetitions < 0 {
		return ErrInvalidRepetitions
	}

	if s.EaseFactor <= 1.0 {
		return ErrInvalidEaseFactor
	}

	return nil
}

// IsDue reports whether the word should be reviewed at the given time.
func (s *ScheduleState) IsDue(now time.Time) bool {
	return !s.NextReviewAt.After(now)
}
