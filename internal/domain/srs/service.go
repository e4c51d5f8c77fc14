package srs

import (
	"errors"
	"time"

	"github.com/wordvault/wordvault-api/internal/domain"
)

// ErrNilState is returned when a nil schedule state is passed to the service.
var ErrNilState = errors.New("schedule state cannot be nil")

// Service defines the interface for spaced-repetition schedule calculations.
// Implementations are pure: identical inputs always yield identical outputs,
// and the prior state is never mutated.
type Service interface {
	// CalculateNextReview computes the new schedule state for a word given a
	// quality rating (0-5, clamped) and the review time. It never fails for
	// numeric input; the only error condition is a nil prior state.
	CalculateNextReview(
		state *domain.ScheduleState,
		quality int,
		now time.Time,
	) (*domain.ScheduleState, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a scheduler service with default SM-2 parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a scheduler service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

// CalculateNextReview implements the Service interface.
func (s *defaultService) CalculateNextReview(
	state *domain.ScheduleState,
	quality int,
	now time.Time,
) (*domain.ScheduleState, error) {
	if state == nil {
		return nil, ErrNilState
	}

	return calculateNextState(state, quality, now, s.params), nil
}
