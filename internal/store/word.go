package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
)

// WordStore defines the interface for word persistence.
type WordStore interface {
	// Create saves a new word together with its initial review schedule
	// (default ease, due immediately). The two inserts are atomic: a word is
	// never left without a schedule.
	// Returns ErrCollectionNotFound if the owning collection does not exist.
	// Returns ErrInvalidEntity (wrapping the domain error) for invalid data.
	Create(ctx context.Context, word *domain.Word) error

	// GetByID retrieves a word by its ID.
	// Returns ErrWordNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// ListByCollection returns all words in a collection, ordered by creation time.
	ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]domain.Word, error)

	// Delete removes a word and its schedule, examples and relations.
	// Returns ErrWordNotFound if the word does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddExample attaches a usage example to a word.
	// Returns ErrWordNotFound if the word does not exist.
	AddExample(ctx context.Context, example *domain.WordExample) error

	// AddRelation attaches a related term to a word.
	// Returns ErrWordNotFound if the word does not exist.
	AddRelation(ctx context.Context, relation *domain.WordRelation) error
}
