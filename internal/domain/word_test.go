package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewWord(t *testing.T) {
	t.Parallel()
	collectionID := uuid.New()

	word, err := NewWord(collectionID, "  ephemeral  ", " lasting a very short time ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if word.Term != "ephemeral" {
		t.Errorf("Expected trimmed term, got %q", word.Term)
	}
	if word.Definition != "lasting a very short time" {
		t.Errorf("Expected trimmed definition, got %q", word.Definition)
	}
	if word.CollectionID != collectionID {
		t.Error("Expected collection ID to be set")
	}
}

func TestNewWordValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewWord(uuid.Nil, "term", "definition"); err != ErrEmptyCollectionID {
		t.Errorf("Expected ErrEmptyCollectionID, got %v", err)
	}
	if _, err := NewWord(uuid.New(), "   ", "definition"); err != ErrEmptyTerm {
		t.Errorf("Expected ErrEmptyTerm, got %v", err)
	}
	if _, err := NewWord(uuid.New(), "term", ""); err != ErrEmptyDefinition {
		t.Errorf("Expected ErrEmptyDefinition, got %v", err)
	}
}

func TestNewCollection(t *testing.T) {
	t.Parallel()

	c, err := NewCollection(" Spanish Verbs ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Spanish Verbs" {
		t.Errorf("Expected trimmed name, got %q", c.Name)
	}

	if _, err := NewCollection("   "); err != ErrEmptyCollectionName {
		t.Errorf("Expected ErrEmptyCollectionName, got %v", err)
	}
}
