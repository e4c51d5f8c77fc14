package api

import (
	"errors"
	"net/http"

	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/service/study"
	"github.com/wordvault/wordvault-api/internal/store"
)

// ErrSessionNotFound indicates that no active study session has the given ID.
var ErrSessionNotFound = errors.New("study session not found")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case store.IsNotFoundError(err),
		errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound

	// Conflict errors: duplicates and session state violations
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, study.ErrSessionCompleted),
		errors.Is(err, study.ErrWrongMode),
		errors.Is(err, study.ErrNotRevealed),
		errors.Is(err, study.ErrNoCurrentCard),
		errors.Is(err, study.ErrNotAwaitingRefill),
		errors.Is(err, study.ErrNoDueCards),
		errors.Is(err, study.ErrCollectionEmpty):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidStudyMode),
		errors.Is(err, study.ErrInvalidOption):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrCollectionNotFound):
		return "Collection not found"

	case errors.Is(err, store.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, ErrSessionNotFound):
		return "Study session not found"

	case store.IsNotFoundError(err):
		return "Not found"

	case errors.Is(err, store.ErrCollectionNameExists):
		return "A collection with this name already exists"

	case errors.Is(err, study.ErrNoDueCards):
		return "No cards are due for review; start a random practice session instead"

	case errors.Is(err, study.ErrCollectionEmpty):
		return "The collection has no words to study"

	case errors.Is(err, study.ErrSessionCompleted):
		return "The study session is already completed"

	case errors.Is(err, study.ErrWrongMode):
		return "This action is not available in the session's study mode"

	case errors.Is(err, study.ErrNotRevealed):
		return "Reveal the card before rating it"

	case errors.Is(err, study.ErrNoCurrentCard):
		return "No card is currently presented"

	case errors.Is(err, study.ErrNotAwaitingRefill):
		return "The session is not waiting for a refill"

	case errors.Is(err, study.ErrInvalidOption):
		return "The selected option is out of range"

	case errors.Is(err, domain.ErrInvalidStudyMode):
		return "Unknown study mode"

	case errors.Is(err, store.ErrInvalidEntity):
		// Domain validation messages are safe to show.
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}
