// Package study implements the study-session engine: it builds queues of due
// (or randomly sampled) cards, drives the per-card interaction for each study
// mode, converts user responses into quality ratings, runs the spaced
// repetition scheduler and persists the results.
package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/domain/srs"
	"github.com/wordvault/wordvault-api/internal/events"
	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/store"
)

// Common error types for the study service.
var (
	// ErrNoDueCards indicates the collection has words but none are due.
	// Callers may offer random practice as the alternative.
	ErrNoDueCards = errors.New("no cards due for review")

	// ErrCollectionEmpty indicates the collection has no words at all.
	ErrCollectionEmpty = errors.New("collection has no words")

	// ErrSessionCompleted is returned for any action on a finished session.
	ErrSessionCompleted = errors.New("session already completed")

	// ErrNoCurrentCard is returned for card actions while the session is
	// waiting for a refill decision.
	ErrNoCurrentCard = errors.New("no card is currently presented")

	// ErrWrongMode is returned when an action does not belong to the
	// session's study mode (e.g. submitting a typed answer in choice mode).
	ErrWrongMode = errors.New("action not available in this study mode")

	// ErrNotRevealed is returned when a flashcard is rated before being revealed.
	ErrNotRevealed = errors.New("card has not been revealed yet")

	// ErrInvalidOption is returned when a chosen option index is out of range.
	ErrInvalidOption = errors.New("invalid option index")

	// ErrNotAwaitingRefill is returned when Refill is called but the practice
	// queue is not exhausted.
	ErrNotAwaitingRefill = errors.New("session is not awaiting a refill decision")
)

// ServiceError wraps store failures from the study service with the
// operation that failed, so callers can differentiate with errors.As.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Config tunes the engine. Zero values fall back to the defaults used by the
// original desktop trainer.
type Config struct {
	SessionCap      int // max cards per random-practice round
	RecencyWindow   int // recently shown words remembered across refills
	DistractorCount int // wrong options per multiple-choice card
}

func (c Config) withDefaults() Config {
	if c.SessionCap <= 0 {
		c.SessionCap = 20
	}
	if c.RecencyWindow <= 0 {
		c.RecencyWindow = 5
	}
	if c.DistractorCount <= 0 {
		c.DistractorCount = 3
	}
	return c
}

// Service creates study sessions. It owns the collaborators every session
// shares: the card store, the scheduler, the event emitter, the clock and
// the randomness source (both injectable for tests).
type Service struct {
	store   store.StudyStore
	srs     srs.Service
	emitter events.Emitter
	logger  *slog.Logger
	cfg     Config
	now     func() time.Time
	rng     *rand.Rand
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces the time source. Tests use this to pin "now".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand replaces the randomness source used for shuffling and sampling.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// NewService creates a study service.
// The store and scheduler are required; emitter may be nil (events are then
// dropped) and a nil logger falls back to slog.Default.
func NewService(
	studyStore store.StudyStore,
	srsService srs.Service,
	emitter events.Emitter,
	log *slog.Logger,
	cfg Config,
	opts ...Option,
) *Service {
	if studyStore == nil {
		panic("studyStore cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	s := &Service{
		store:   studyStore,
		srs:     srsService,
		emitter: emitter,
		logger:  log.With(slog.String("component", "study_service")),
		cfg:     cfg.withDefaults(),
		now:     func() time.Time { return time.Now().UTC() },
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// StartSession builds a due-card session for a collection.
//
// Returns ErrNoDueCards when the collection has words but none are due; the
// caller decides whether to fall back to StartRandomPractice. Returns
// ErrCollectionEmpty when there is nothing to study at all. Store read
// failures abort the build.
func (s *Service) StartSession(
	ctx context.Context,
	collectionID uuid.UUID,
	mode domain.StudyMode,
) (*Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := mode.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	due, err := s.store.DueCards(ctx, collectionID, now)
	if err != nil {
		log.Error("failed to load due cards",
			slog.String("error", err.Error()),
			slog.String("collection_id", collectionID.String()))
		return nil, &ServiceError{Operation: "start_session", Message: "failed to load due cards", Err: err}
	}

	if len(due) == 0 {
		// Distinguish "nothing due" from "nothing at all".
		all, err := s.store.AllCards(ctx, collectionID)
		if err != nil {
			return nil, &ServiceError{Operation: "start_session", Message: "failed to load collection", Err: err}
		}
		if len(all) == 0 {
			return nil, ErrCollectionEmpty
		}
		return nil, ErrNoDueCards
	}

	sess := s.newSession(collectionID, mode, due, false)

	log.Debug("study session started",
		slog.String("session_id", sess.ID.String()),
		slog.String("collection_id", collectionID.String()),
		slog.String("mode", string(mode)),
		slog.Int("queue_size", len(due)))

	if err := sess.presentCurrent(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}

// StartRandomPractice builds a practice session from a random sample of the
// whole collection, capped at the configured session size. Practice never
// touches persisted schedules; only session records are written.
func (s *Service) StartRandomPractice(
	ctx context.Context,
	collectionID uuid.UUID,
	mode domain.StudyMode,
) (*Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := mode.Validate(); err != nil {
		return nil, err
	}

	all, err := s.store.AllCards(ctx, collectionID)
	if err != nil {
		log.Error("failed to load collection for practice",
			slog.String("error", err.Error()),
			slog.String("collection_id", collectionID.String()))
		return nil, &ServiceError{Operation: "start_practice", Message: "failed to load collection", Err: err}
	}
	if len(all) == 0 {
		return nil, ErrCollectionEmpty
	}

	sess := s.newSession(collectionID, mode, nil, true)
	sess.queue.refill(samplePractice(all, s.cfg.SessionCap, sess.recent, s.rng))

	log.Debug("random practice started",
		slog.String("session_id", sess.ID.String()),
		slog.String("collection_id", collectionID.String()),
		slog.String("mode", string(mode)),
		slog.Int("queue_size", len(sess.queue.cards)))

	if err := sess.presentCurrent(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) newSession(
	collectionID uuid.UUID,
	mode domain.StudyMode,
	cards []domain.Card,
	practice bool,
) *Session {
	return &Session{
		ID:             uuid.New(),
		CollectionID:   collectionID,
		Mode:           mode,
		RandomPractice: practice,
		svc:            s,
		state:          StatePresenting,
		queue:          sessionQueue{cards: cards},
		recent:         newRecencyRing(s.cfg.RecencyWindow),
	}
}

func (s *Service) emit(ctx context.Context, event *events.SessionEvent) {
	if s.emitter == nil {
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to emit session event",
			slog.String("error", err.Error()),
			slog.String("event_type", string(event.Type)))
	}
}
