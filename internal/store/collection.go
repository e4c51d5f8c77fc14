package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
)

// CollectionStore defines the interface for collection persistence.
type CollectionStore interface {
	// Create saves a new collection.
	// Returns ErrCollectionNameExists if the name is already taken.
	// Returns ErrInvalidEntity (wrapping the domain error) for invalid data.
	Create(ctx context.Context, collection *domain.Collection) error

	// GetByID retrieves a collection by its ID.
	// Returns ErrCollectionNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error)

	// List returns all collections with their card-count summaries, ordered
	// by earliest next review first; collections with no scheduled reviews
	// come last, alphabetically.
	List(ctx context.Context) ([]domain.CollectionSummary, error)

	// Delete removes a collection and, through cascading deletes, its words,
	// schedules and related material. Session records are kept: they are an
	// append-only audit log.
	// Returns ErrCollectionNotFound if the collection does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
