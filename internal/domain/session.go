package domain

import (
	"time"

	"github.com/google/uuid"
)

// StudyMode selects how a card is presented during a session.
type StudyMode string

// Supported study modes.
const (
	// StudyModeFlashcard shows the term, reveals the definition on request,
	// and takes the rating verbatim from the user.
	StudyModeFlashcard StudyMode = "flashcard"

	// StudyModeMultipleChoice presents the correct definition among
	// distractors; the rating is derived from the chosen option.
	StudyModeMultipleChoice StudyMode = "multiple_choice"

	// StudyModeTyping asks the user to type the definition; the rating is
	// derived from the match, with one hinted retry after a mismatch.
	StudyModeTyping StudyMode = "typing"
)

// Validate checks that the mode is one of the supported values.
func (m StudyMode) Validate() error {
	switch m {
	case StudyModeFlashcard, StudyModeMultipleChoice, StudyModeTyping:
		return nil
	default:
		return ErrInvalidStudyMode
	}
}

// Quality ratings generated by the study engine. The scheduler accepts the
// full 0-5 range; 1 and 2 are reachable only through future presentation
// layers.
const (
	RatingAgain = 0 // failed, show again soon
	RatingHard  = 3 // recalled with difficulty
	RatingGood  = 4 // recalled correctly
	RatingEasy  = 5 // recalled effortlessly
)

// ClampQuality bounds a quality rating to the valid 0-5 range. Out-of-range
// input is a caller mistake but never an error: the scheduler's contract is
// clamp-and-continue.
func ClampQuality(quality int) int {
	if quality < 0 {
		return 0
	}
	if quality > 5 {
		return 5
	}
	return quality
}

// SessionRecord is an append-only audit entry for a single review event.
// Records are written for every rated card, including random-practice cards
// whose schedule is not updated, and are never mutated or deleted.
type SessionRecord struct {
	ID           uuid.UUID `json:"id"`
	WordID       uuid.UUID `json:"word_id"`
	CollectionID uuid.UUID `json:"collection_id"`
	Correct      bool      `json:"correct"`
	Quality      int       `json:"quality"` // stored clamped to 1-5
	Mode         StudyMode `json:"mode"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewSessionRecord builds the audit entry for one review. Correctness is
// judged on the raw rating (quality >= 3); the stored quality value is
// clamped into 1-5 so a failing "again" review records as 1.
func NewSessionRecord(
	wordID, collectionID uuid.UUID,
	quality int,
	mode StudyMode,
	now time.Time,
) *SessionRecord {
	quality = ClampQuality(quality)

	stored := quality
	if stored < 1 {
		stored = 1
	}

	return &SessionRecord{
		ID:           uuid.New(),
		WordID:       wordID,
		CollectionID: collectionID,
		Correct:      quality >= 3,
		Quality:      stored,
		Mode:         mode,
		CreatedAt:    now,
	}
}

// StudySummary aggregates a collection's session records: totals and an
// average, nothing more.
type StudySummary struct {
	TotalReviews   int     `json:"total_reviews"`
	CorrectReviews int     `json:"correct_reviews"`
	AverageQuality float64 `json:"average_quality"`
}
