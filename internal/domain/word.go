package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Word is a single vocabulary entry in a collection: the prompt (term) and
// the expected answer (definition).
type Word struct {
	ID           uuid.UUID `json:"id"`
	CollectionID uuid.UUID `json:"collection_id"`
	Term         string    `json:"term"`
	Definition   string    `json:"definition"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewWord creates a word with a generated ID.
// Term and definition are trimmed; both must be non-empty.
func NewWord(collectionID uuid.UUID, term, definition string) (*Word, error) {
	w := &Word{
		ID:           uuid.New(),
		CollectionID: collectionID,
		Term:         strings.TrimSpace(term),
		Definition:   strings.TrimSpace(definition),
		CreatedAt:    time.Now().UTC(),
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate checks if the Word has valid data.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return ErrEmptyWordID
	}

	if w.CollectionID == uuid.Nil {
		return ErrEmptyCollectionID
	}

	if w.Term == "" {
		return ErrEmptyTerm
	}

	if w.Definition == "" {
		return ErrEmptyDefinition
	}

	return nil
}

// WordExample is a usage example attached to a word. Examples are shown as
// hints in typed-answer study mode and in the card's additional-info payload.
type WordExample struct {
	ID           uuid.UUID `json:"id"`
	WordID       uuid.UUID `json:"word_id"`
	ExampleText  string    `json:"example_text"`
	ContextNotes string    `json:"context_notes,omitempty"`
}

// WordRelation links a word to a related term (synonym, antonym, etc.).
type WordRelation struct {
	ID           uuid.UUID `json:"id"`
	WordID       uuid.UUID `json:"word_id"`
	RelationType string    `json:"relation_type"`
	RelatedTerm  string    `json:"related_term"`
}

// WordMetadata bundles the supporting material for a word. A word with no
// examples or relations has empty slices; the study engine treats missing
// metadata as "no hint available" rather than an error.
type WordMetadata struct {
	Examples  []WordExample  `json:"examples"`
	Relations []WordRelation `json:"relations"`
}

// FirstExample returns the text of the first non-empty example, or "" when
// the word has none. Used for typed-mode hints.
func (m *WordMetadata) FirstExample() string {
	if m == nil {
		return ""
	}
	for _, ex := range m.Examples {
		if ex.ExampleText != "" {
			return ex.ExampleText
		}
	}
	return ""
}
