package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/api/shared"
	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/service/study"
)

// StartSessionRequest is the request body for starting a study session.
type StartSessionRequest struct {
	CollectionID   string `json:"collection_id" validate:"required,uuid"`
	Mode           string `json:"mode"           validate:"required"`
	RandomPractice bool   `json:"random_practice"`
}

// RateRequest is the request body for rating a revealed flashcard.
type RateRequest struct {
	Quality int `json:"quality" validate:"min=0,max=5"`
}

// ChooseRequest is the request body for answering a multiple-choice card.
type ChooseRequest struct {
	Option int `json:"option" validate:"min=0"`
}

// TypedRequest is the request body for submitting a typed answer. An empty
// answer is a valid (wrong) attempt.
type TypedRequest struct {
	Answer string `json:"answer"`
}

// OutcomeResponse wraps the engine's outcome payload. PersistWarning is set
// when the rating was applied to the session but could not be fully saved;
// the session has already moved on, so the client surfaces the warning
// instead of retrying.
type OutcomeResponse struct {
	*study.Outcome
	PersistWarning string `json:"persist_warning,omitempty"`
}

// StudyHandler handles study-session HTTP requests. Sessions live in memory
// and are driven through the registry, one engine call at a time.
type StudyHandler struct {
	service  *study.Service
	sessions *sessionRegistry
	logger   *slog.Logger
}

// NewStudyHandler creates a new StudyHandler
func NewStudyHandler(service *study.Service, logger *slog.Logger) *StudyHandler {
	if service == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("study service cannot be nil for StudyHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StudyHandler")
	}

	return &StudyHandler{
		service:  service,
		sessions: newSessionRegistry(),
		logger:   logger.With(slog.String("component", "study_handler")),
	}
}

// StartSession handles POST /study/sessions requests. A due-card session is
// started unless random_practice is set; when nothing is due the response is
// a conflict so the client can offer random practice instead.
func (h *StudyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req StartSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Collection ID and study mode are required")
		return
	}

	collectionID, err := uuid.Parse(req.CollectionID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid collection ID format")
		return
	}
	mode := domain.StudyMode(req.Mode)

	var sess *study.Session
	if req.RandomPractice {
		sess, err = h.service.StartRandomPractice(r.Context(), collectionID, mode)
	} else {
		sess, err = h.service.StartSession(r.Context(), collectionID, mode)
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.sessions.put(sess)

	log.Debug("study session started",
		slog.String("session_id", sess.ID.String()),
		slog.String("mode", string(mode)),
		slog.Bool("random_practice", sess.RandomPractice))

	shared.RespondWithJSON(w, r, http.StatusCreated, sess.Current())
}

// GetSession handles GET /study/sessions/{id} requests
func (h *StudyHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(ctx context.Context, sess *study.Session) (any, error) {
		return sess.Current(), nil
	})
}

// Reveal handles POST /study/sessions/{id}/reveal requests
func (h *StudyHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(ctx context.Context, sess *study.Session) (any, error) {
		return sess.Reveal(ctx)
	})
}

// Rate handles POST /study/sessions/{id}/rate requests
func (h *StudyHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var req RateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Quality must be between 0 and 5")
		return
	}

	h.withSession(w, r, func(ctx context.Context, sess *study.Session) (any, error) {
		outcome, err := sess.Rate(ctx, req.Quality)
		return wrapOutcome(outcome), err
	})
}

// Choose handles POST /study/sessions/{id}/choose requests
func (h *StudyHandler) Choose(w http.ResponseWriter, r *http.Request) {
	var req ChooseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.withSession(w, r, func(ctx context.Context, sess *study.Session) (any, error) {
		outcome, err := sess.Choose(ctx, req.Option)
		return wrapOutcome(outcome), err
	})
}

// SubmitTyped handles POST /study/sessions/{id}/typed requests
func (h *StudyHandler) SubmitTyped(w http.ResponseWriter, r *http.Request) {
	var req TypedRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.withSession(w, r, func(ctx context.Context, sess *study.Session) (any, error) {
		outcome, err := sess.SubmitTyped(ctx, req.Answer)
		return wrapOutcome(outcome), err
	})
}

// Refill handles POST /study/sessions/{id}/refill requests
func (h *StudyHandler) Refill(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, func(ctx context.Context, sess *study.Session) (any, error) {
		return sess.Refill(ctx)
	})
}

// FinishSession handles DELETE /study/sessions/{id} requests. The session is
// terminated and dropped from the registry; the final prompt is returned.
func (h *StudyHandler) FinishSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	entry, found := h.sessions.get(id)
	if !found {
		shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(ErrSessionNotFound))
		return
	}

	entry.mu.Lock()
	final := entry.sess.Finish(r.Context())
	entry.mu.Unlock()

	h.sessions.remove(id)

	log.Debug("study session finished", slog.String("session_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, final)
}

// withSession looks up the session in the URL, serializes access to it and
// runs fn against it, translating errors to HTTP responses.
func (h *StudyHandler) withSession(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, sess *study.Session) (any, error),
) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	entry, found := h.sessions.get(id)
	if !found {
		shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(ErrSessionNotFound))
		return
	}

	entry.mu.Lock()
	result, err := fn(r.Context(), entry.sess)
	entry.mu.Unlock()

	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

func wrapOutcome(outcome *study.Outcome) *OutcomeResponse {
	if outcome == nil {
		return nil
	}
	response := &OutcomeResponse{Outcome: outcome}
	if outcome.PersistErr != nil {
		response.PersistWarning = "The result could not be fully saved; it will not be retried"
	}
	return response
}
