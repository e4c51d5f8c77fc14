package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/api/shared"
	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/store"
)

// WordResponse represents the response data for a word
type WordResponse struct {
	ID           string    `json:"id"`
	CollectionID string    `json:"collection_id"`
	Term         string    `json:"term"`
	Definition   string    `json:"definition"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateWordRequest is the request body for adding a word to a collection.
type CreateWordRequest struct {
	Term       string `json:"term" validate:"required,max=500"`
	Definition string `json:"definition" validate:"required,max=2000"`
}

// AddExampleRequest is the request body for attaching a usage example.
type AddExampleRequest struct {
	ExampleText  string `json:"example_text" validate:"required,max=2000"`
	ContextNotes string `json:"context_notes" validate:"max=2000"`
}

// AddRelationRequest is the request body for attaching a related term.
type AddRelationRequest struct {
	RelationType string `json:"relation_type" validate:"required,max=100"`
	RelatedTerm  string `json:"related_term" validate:"required,max=500"`
}

// WordHandler handles word-related HTTP requests
type WordHandler struct {
	words  store.WordStore
	study  store.StudyStore
	logger *slog.Logger
}

// NewWordHandler creates a new WordHandler
func NewWordHandler(words store.WordStore, study store.StudyStore, logger *slog.Logger) *WordHandler {
	if words == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("word store cannot be nil for WordHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for WordHandler")
	}

	return &WordHandler{
		words:  words,
		study:  study,
		logger: logger.With(slog.String("component", "word_handler")),
	}
}

// CreateWord handles POST /collections/{id}/words requests. The word is
// created together with its initial review schedule, due immediately.
func (h *WordHandler) CreateWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	collectionID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req CreateWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Term and definition are required")
		return
	}

	word, err := domain.NewWord(collectionID, req.Term, req.Definition)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.words.Create(r.Context(), word); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("word created",
		slog.String("word_id", word.ID.String()),
		slog.String("collection_id", collectionID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, wordToResponse(word))
}

// ListWords handles GET /collections/{id}/words requests
func (h *WordHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	collectionID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	words, err := h.words.ListByCollection(r.Context(), collectionID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to list words", err)
		return
	}

	response := make([]WordResponse, 0, len(words))
	for i := range words {
		response = append(response, wordToResponse(&words[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetWord handles GET /words/{id} requests, returning the word together
// with its examples and relations.
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	word, err := h.words.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := struct {
		WordResponse
		Info *domain.WordMetadata `json:"info,omitempty"`
	}{WordResponse: wordToResponse(word)}

	if h.study != nil {
		if meta, err := h.study.WordMetadata(r.Context(), id); err == nil {
			response.Info = meta
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// DeleteWord handles DELETE /words/{id} requests
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.words.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("word deleted", slog.String("word_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// AddExample handles POST /words/{id}/examples requests
func (h *WordHandler) AddExample(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req AddExampleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Example text is required")
		return
	}

	example := &domain.WordExample{
		ID:           uuid.New(),
		WordID:       id,
		ExampleText:  req.ExampleText,
		ContextNotes: req.ContextNotes,
	}
	if err := h.words.AddExample(r.Context(), example); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, example)
}

// AddRelation handles POST /words/{id}/relations requests
func (h *WordHandler) AddRelation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req AddRelationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Relation type and related term are required")
		return
	}

	relation := &domain.WordRelation{
		ID:           uuid.New(),
		WordID:       id,
		RelationType: req.RelationType,
		RelatedTerm:  req.RelatedTerm,
	}
	if err := h.words.AddRelation(r.Context(), relation); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, relation)
}

func wordToResponse(word *domain.Word) WordResponse {
	return WordResponse{
		ID:           word.ID.String(),
		CollectionID: word.CollectionID.String(),
		Term:         word.Term,
		Definition:   word.Definition,
		CreatedAt:    word.CreatedAt,
	}
}
