package domain

import "errors"

// Common validation errors returned by domain constructors and Validate methods.
var (
	ErrEmptyCollectionName = errors.New("collection name cannot be empty")
	ErrEmptyCollectionID   = errors.New("collection ID cannot be empty")
	ErrEmptyWordID         = errors.New("word ID cannot be empty")
	ErrEmptyTerm           = errors.New("word term cannot be empty")
	ErrEmptyDefinition     = errors.New("word definition cannot be empty")
	ErrInvalidInterval     = errors.New("interval must be greater than or equal to 0")
	ErrInvalidRepetitions  = errors.New("repetition count must be greater than or equal to 0")
	ErrInvalidEaseFactor   = errors.New("ease factor must be greater than 1.0")
	ErrInvalidStudyMode    = errors.New("invalid study mode")
)
