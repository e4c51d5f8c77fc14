package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Collection is a named list of words studied together. All scheduling is
// scoped to a collection: a word's review schedule belongs to the collection
// it was added to.
type Collection struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCollection creates a collection with a generated ID.
// Returns ErrEmptyCollectionName if the name is blank.
func NewCollection(name string) (*Collection, error) {
	c := &Collection{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks if the Collection has valid data.
func (c *Collection) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCollectionID
	}

	if c.Name == "" {
		return ErrEmptyCollectionName
	}

	return nil
}

// CollectionSummary is the deck-list view of a collection: card counts broken
// down by learning stage plus the earliest upcoming review. NextReviewAt is
// nil when the collection has no scheduled reviews, and such collections sort
// after all others in store listings.
type CollectionSummary struct {
	Collection
	NewCount      int        `json:"new_count"`      // never reviewed (repetitions and interval both 0)
	LearningCount int        `json:"learning_count"` // reviewed at least once
	DueCount      int        `json:"due_count"`      // next review time has passed
	NextReviewAt  *time.Time `json:"next_review_at,omitempty"`
}
