package study

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/events"
	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/store"
)

// State is the session's position in its lifecycle.
type State string

// Session states. A session is created directly into StatePresenting; the
// spec's Idle and Loading phases exist only inside the Start* calls.
const (
	// StatePresenting means a card is shown and the engine is waiting for
	// the user's response (reveal, rating, choice or typed answer).
	StatePresenting State = "presenting"

	// StateAwaitingRefill means a random-practice queue is exhausted and the
	// caller must choose between Refill (another round) and Finish.
	StateAwaitingRefill State = "awaiting_refill"

	// StateCompleted is terminal: the presentation layer returns to a
	// neutral view.
	StateCompleted State = "completed"
)

// typedMaxAttempts is the number of answers accepted per card in typing
// mode: the original attempt plus one hinted retry.
const typedMaxAttempts = 2

// Session drives one user through one queue of cards. It is owned by a
// single caller: methods must not be invoked concurrently. All storage
// access is synchronous and happens inside the method that needs it.
type Session struct {
	ID             uuid.UUID
	CollectionID   uuid.UUID
	Mode           domain.StudyMode
	RandomPractice bool

	svc    *Service
	state  State
	queue  sessionQueue
	recent *recencyRing

	// Per-card interaction state, reset on every advance.
	revealed      bool
	typedAttempts int
	hint          string
	options       []string
	correctIndex  int
	metadata      *domain.WordMetadata
}

// Prompt is the presentation payload for the session's current state. The
// engine owns all session state; the presentation layer renders a Prompt and
// never keeps state of its own.
type Prompt struct {
	SessionID      uuid.UUID            `json:"session_id"`
	State          State                `json:"state"`
	Mode           domain.StudyMode     `json:"mode"`
	RandomPractice bool                 `json:"random_practice"`
	Position       int                  `json:"position"`
	Total          int                  `json:"total"`
	WordID         uuid.UUID            `json:"word_id,omitempty"`
	Term           string               `json:"term,omitempty"`
	Revealed       bool                 `json:"revealed,omitempty"`
	Definition     string               `json:"definition,omitempty"`    // only once revealed or answered
	Options        []string             `json:"options,omitempty"`       // multiple-choice mode
	AttemptsLeft   int                  `json:"attempts_left,omitempty"` // typing mode
	Hint           string               `json:"hint,omitempty"`          // typing mode, after first miss
	Info           *domain.WordMetadata `json:"info,omitempty"`
}

// Outcome reports what happened when a response was applied: the derived
// quality, the revealed answer where the mode calls for it, and the next
// prompt. PersistErr carries a schedule or record write failure; the session
// has already advanced past the card when it is set, so callers surface the
// error without retrying.
type Outcome struct {
	Quality       int     `json:"quality"`
	Correct       bool    `json:"correct"`
	CorrectAnswer string  `json:"correct_answer,omitempty"`
	CorrectOption int     `json:"correct_option,omitempty"` // index in Options, choice mode
	Retry         bool    `json:"retry,omitempty"`          // typing mode: a second attempt is open
	Hint          string  `json:"hint,omitempty"`           // typing mode: shown with the retry
	Next          *Prompt `json:"next,omitempty"`
	PersistErr    error   `json:"-"`
}

// State returns the session's lifecycle state.
func (sess *Session) State() State {
	return sess.state
}

// Current returns the prompt for the session's current state.
func (sess *Session) Current() *Prompt {
	return sess.prompt()
}

// Reveal exposes the flashcard's definition and enables rating. Only valid
// in flashcard mode while a card is presented.
func (sess *Session) Reveal(ctx context.Context) (*Prompt, error) {
	if err := sess.requireCard(); err != nil {
		return nil, err
	}
	if sess.Mode != domain.StudyModeFlashcard {
		return nil, ErrWrongMode
	}

	sess.revealed = true
	sess.loadMetadata(ctx)

	return sess.prompt(), nil
}

// Rate applies a verbatim quality rating to the revealed flashcard, persists
// the result and advances the queue. Quality is clamped to 0-5.
func (sess *Session) Rate(ctx context.Context, quality int) (*Outcome, error) {
	if err := sess.requireCard(); err != nil {
		return nil, err
	}
	if sess.Mode != domain.StudyModeFlashcard {
		return nil, ErrWrongMode
	}
	if !sess.revealed {
		return nil, ErrNotRevealed
	}

	card, _ := sess.queue.current()
	quality = domain.ClampQuality(quality)

	outcome := &Outcome{
		Quality:       quality,
		Correct:       quality >= 3,
		CorrectAnswer: card.Definition,
	}
	outcome.PersistErr = sess.applyRating(ctx, card, quality)
	outcome.Next = sess.advance(ctx)

	return outcome, nil
}

// Choose applies the user's option selection in multiple-choice mode. The
// correct option yields quality 5, any other yields 0; either way the answer
// is revealed, the result persisted and the queue advanced.
func (sess *Session) Choose(ctx context.Context, option int) (*Outcome, error) {
	if err := sess.requireCard(); err != nil {
		return nil, err
	}
	if sess.Mode != domain.StudyModeMultipleChoice {
		return nil, ErrWrongMode
	}
	if option < 0 || option >= len(sess.options) {
		return nil, ErrInvalidOption
	}

	card, _ := sess.queue.current()

	quality := domain.RatingAgain
	if option == sess.correctIndex {
		quality = domain.RatingEasy
	}

	outcome := &Outcome{
		Quality:       quality,
		Correct:       quality >= 3,
		CorrectAnswer: card.Definition,
		CorrectOption: sess.correctIndex,
	}
	outcome.PersistErr = sess.applyRating(ctx, card, quality)
	outcome.Next = sess.advance(ctx)

	return outcome, nil
}

// SubmitTyped checks a typed answer against the card's definition, trimmed
// and case-folded. A match scores quality 4. The first mismatch opens one
// retry with an example hint when the word has one; the second mismatch
// reveals the answer and scores quality 0. Exactly two attempts per card.
func (sess *Session) SubmitTyped(ctx context.Context, answer string) (*Outcome, error) {
	if err := sess.requireCard(); err != nil {
		return nil, err
	}
	if sess.Mode != domain.StudyModeTyping {
		return nil, ErrWrongMode
	}

	card, _ := sess.queue.current()

	if answersMatch(answer, card.Definition) {
		outcome := &Outcome{
			Quality:       domain.RatingGood,
			Correct:       true,
			CorrectAnswer: card.Definition,
		}
		outcome.PersistErr = sess.applyRating(ctx, card, domain.RatingGood)
		outcome.Next = sess.advance(ctx)
		return outcome, nil
	}

	sess.typedAttempts++

	if sess.typedAttempts < typedMaxAttempts {
		sess.loadMetadata(ctx)
		sess.hint = sess.metadata.FirstExample()
		return &Outcome{
			Quality: domain.RatingAgain,
			Retry:   true,
			Hint:    sess.hint,
			Next:    sess.prompt(),
		}, nil
	}

	outcome := &Outcome{
		Quality:       domain.RatingAgain,
		CorrectAnswer: card.Definition,
	}
	outcome.PersistErr = sess.applyRating(ctx, card, domain.RatingAgain)
	outcome.Next = sess.advance(ctx)

	return outcome, nil
}

// Refill starts another random-practice round after the previous one was
// exhausted. Only valid in StateAwaitingRefill.
func (sess *Session) Refill(ctx context.Context) (*Prompt, error) {
	if sess.state == StateCompleted {
		return nil, ErrSessionCompleted
	}
	if sess.state != StateAwaitingRefill {
		return nil, ErrNotAwaitingRefill
	}

	log := logger.FromContextOrDefault(ctx, sess.svc.logger)

	all, err := sess.svc.store.AllCards(ctx, sess.CollectionID)
	if err != nil {
		log.Error("failed to refill practice queue",
			slog.String("error", err.Error()),
			slog.String("session_id", sess.ID.String()))
		return nil, &ServiceError{Operation: "refill", Message: "failed to load collection", Err: err}
	}
	if len(all) == 0 {
		sess.complete(ctx)
		return sess.prompt(), nil
	}

	sess.queue.refill(samplePractice(all, sess.svc.cfg.SessionCap, sess.recent, sess.svc.rng))
	sess.state = StatePresenting

	if err := sess.presentCurrent(ctx); err != nil {
		return nil, err
	}
	return sess.prompt(), nil
}

// Finish terminates the session. Safe to call from any state; an already
// completed session stays completed.
func (sess *Session) Finish(ctx context.Context) *Prompt {
	if sess.state != StateCompleted {
		sess.complete(ctx)
	}
	return sess.prompt()
}

// requireCard checks that a card is currently presented.
func (sess *Session) requireCard() error {
	switch sess.state {
	case StateCompleted:
		return ErrSessionCompleted
	case StateAwaitingRefill:
		return ErrNoCurrentCard
	}
	if _, ok := sess.queue.current(); !ok {
		return ErrNoCurrentCard
	}
	return nil
}

// presentCurrent prepares per-card state for the card under the cursor and
// emits the presentation event. Called after session start, every advance
// and every refill.
func (sess *Session) presentCurrent(ctx context.Context) error {
	card, ok := sess.queue.current()
	if !ok {
		sess.finishQueue(ctx)
		return nil
	}

	sess.revealed = false
	sess.typedAttempts = 0
	sess.hint = ""
	sess.options = nil
	sess.correctIndex = -1
	sess.metadata = nil

	sess.recent.add(card.WordID)

	if sess.Mode == domain.StudyModeMultipleChoice {
		sess.buildChoices(ctx, card)
		sess.loadMetadata(ctx)
	}

	event := events.NewSessionEvent(sess.ID, events.EventCardPresented)
	event.WordID = card.WordID
	event.Mode = sess.Mode
	sess.svc.emit(ctx, event)

	return nil
}

// advance moves past the current card and returns the next prompt.
func (sess *Session) advance(ctx context.Context) *Prompt {
	sess.queue.advance()
	_ = sess.presentCurrent(ctx)
	return sess.prompt()
}

// finishQueue handles cursor-past-end: practice sessions offer a refill,
// due-card sessions complete.
func (sess *Session) finishQueue(ctx context.Context) {
	if sess.RandomPractice {
		sess.state = StateAwaitingRefill
		return
	}
	sess.complete(ctx)
}

func (sess *Session) complete(ctx context.Context) {
	sess.state = StateCompleted
	sess.svc.emit(ctx, events.NewSessionEvent(sess.ID, events.EventSessionCompleted))
}

// applyRating persists the consequences of one rated card: the scheduler
// result (skipped entirely in random practice) and the session record. Any
// store failure is returned for the caller to surface, but never blocks the
// session from advancing; a card is rated exactly once.
func (sess *Session) applyRating(ctx context.Context, card *domain.Card, quality int) error {
	log := logger.FromContextOrDefault(ctx, sess.svc.logger)
	now := sess.svc.now()

	var persistErr error

	if !sess.RandomPractice {
		prior, err := sess.svc.store.GetSchedule(ctx, card.WordID, card.CollectionID)
		if err != nil {
			if errors.Is(err, store.ErrScheduleNotFound) {
				// The queue snapshot is the best remaining source of truth.
				snapshot := card.Schedule
				prior = &snapshot
			} else {
				log.Error("failed to read schedule",
					slog.String("error", err.Error()),
					slog.String("word_id", card.WordID.String()))
				persistErr = &ServiceError{Operation: "apply_rating", Message: "failed to read schedule", Err: err}
			}
		}

		if persistErr == nil {
			newState, err := sess.svc.srs.CalculateNextReview(prior, quality, now)
			if err != nil {
				persistErr = &ServiceError{Operation: "apply_rating", Message: "scheduler failed", Err: err}
			} else if err := sess.svc.store.WriteSchedule(ctx, newState); err != nil {
				log.Error("failed to write schedule",
					slog.String("error", err.Error()),
					slog.String("word_id", card.WordID.String()))
				persistErr = &ServiceError{Operation: "apply_rating", Message: "failed to write schedule", Err: err}
			}
		}
	}

	record := domain.NewSessionRecord(card.WordID, card.CollectionID, quality, sess.Mode, now)
	if err := sess.svc.store.AppendSessionRecord(ctx, record); err != nil {
		log.Error("failed to append session record",
			slog.String("error", err.Error()),
			slog.String("word_id", card.WordID.String()))
		if persistErr == nil {
			persistErr = &ServiceError{Operation: "apply_rating", Message: "failed to append session record", Err: err}
		}
	}

	event := events.NewSessionEvent(sess.ID, events.EventRatingApplied)
	event.WordID = card.WordID
	event.Quality = quality
	event.Mode = sess.Mode
	sess.svc.emit(ctx, event)

	return persistErr
}

// buildChoices assembles the option list for a multiple-choice card: the
// correct definition plus up to DistractorCount wrong ones from the same
// collection, padded with blank placeholders to a fixed size and shuffled.
// Distractor sampling failures degrade to placeholders, as the original
// trainer did.
func (sess *Session) buildChoices(ctx context.Context, card *domain.Card) {
	log := logger.FromContextOrDefault(ctx, sess.svc.logger)

	total := sess.svc.cfg.DistractorCount + 1
	options := make([]string, 0, total)
	options = append(options, card.Definition)

	distractors, err := sess.svc.store.SampleDistractors(
		ctx, card.CollectionID, card.WordID, sess.svc.cfg.DistractorCount)
	if err != nil {
		log.Warn("failed to sample distractors, padding with placeholders",
			slog.String("error", err.Error()),
			slog.String("word_id", card.WordID.String()))
	}
	for _, d := range distractors {
		if len(options) == total {
			break
		}
		options = append(options, d.Text)
	}

	for len(options) < total {
		options = append(options, "")
	}

	sess.svc.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	sess.options = options
	for i, opt := range options {
		if opt == card.Definition {
			sess.correctIndex = i
			break
		}
	}
}

// loadMetadata fetches the current card's examples and relations, degrading
// to empty metadata on any failure.
func (sess *Session) loadMetadata(ctx context.Context) {
	if sess.metadata != nil {
		return
	}
	card, ok := sess.queue.current()
	if !ok {
		return
	}

	meta, err := sess.svc.store.WordMetadata(ctx, card.WordID)
	if err != nil || meta == nil {
		meta = &domain.WordMetadata{}
	}
	sess.metadata = meta
}

// prompt builds the presentation payload for the current state.
func (sess *Session) prompt() *Prompt {
	p := &Prompt{
		SessionID:      sess.ID,
		State:          sess.state,
		Mode:           sess.Mode,
		RandomPractice: sess.RandomPractice,
	}

	card, ok := sess.queue.current()
	if sess.state != StatePresenting || !ok {
		p.Position, p.Total = sess.queue.position()
		return p
	}

	p.Position, p.Total = sess.queue.position()
	p.WordID = card.WordID
	p.Term = card.Term

	switch sess.Mode {
	case domain.StudyModeFlashcard:
		p.Revealed = sess.revealed
		if sess.revealed {
			p.Definition = card.Definition
			p.Info = sess.metadata
		}
	case domain.StudyModeMultipleChoice:
		p.Options = sess.options
		p.Info = sess.metadata
	case domain.StudyModeTyping:
		p.AttemptsLeft = typedMaxAttempts - sess.typedAttempts
		p.Hint = sess.hint
		if sess.hint != "" {
			p.Info = sess.metadata
		}
	}

	return p
}

// answersMatch compares a typed answer to the stored definition, ignoring
// leading/trailing whitespace and letter case.
func answersMatch(typed, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(typed), strings.TrimSpace(correct))
}
