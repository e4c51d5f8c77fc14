// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/api/shared"
	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/store"
)

// CollectionResponse represents the response data for a collection
type CollectionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CollectionSummaryResponse is the deck-list view of a collection.
type CollectionSummaryResponse struct {
	CollectionResponse
	NewCount      int        `json:"new_count"`
	LearningCount int        `json:"learning_count"`
	DueCount      int        `json:"due_count"`
	NextReviewAt  *time.Time `json:"next_review_at,omitempty"`
}

// CreateCollectionRequest is the request body for creating a collection.
type CreateCollectionRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// CollectionHandler handles collection-related HTTP requests
type CollectionHandler struct {
	collections store.CollectionStore
	stats       store.StatsStore
	logger      *slog.Logger
}

// NewCollectionHandler creates a new CollectionHandler
func NewCollectionHandler(
	collections store.CollectionStore,
	stats store.StatsStore,
	logger *slog.Logger,
) *CollectionHandler {
	if collections == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("collection store cannot be nil for CollectionHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CollectionHandler")
	}

	return &CollectionHandler{
		collections: collections,
		stats:       stats,
		logger:      logger.With(slog.String("component", "collection_handler")),
	}
}

// CreateCollection handles POST /collections requests
func (h *CollectionHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCollectionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Collection name is required")
		return
	}

	collection, err := domain.NewCollection(req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.collections.Create(r.Context(), collection); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("collection created",
		slog.String("collection_id", collection.ID.String()),
		slog.String("name", collection.Name))

	shared.RespondWithJSON(w, r, http.StatusCreated, collectionToResponse(collection))
}

// ListCollections handles GET /collections requests. Collections are
// returned with their card counts, ordered by earliest upcoming review.
func (h *CollectionHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.collections.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to list collections", err)
		return
	}

	response := make([]CollectionSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, CollectionSummaryResponse{
			CollectionResponse: collectionToResponse(&s.Collection),
			NewCount:           s.NewCount,
			LearningCount:      s.LearningCount,
			DueCount:           s.DueCount,
			NextReviewAt:       s.NextReviewAt,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetCollection handles GET /collections/{id} requests
func (h *CollectionHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	collection, err := h.collections.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, collectionToResponse(collection))
}

// DeleteCollection handles DELETE /collections/{id} requests
func (h *CollectionHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.collections.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("collection deleted", slog.String("collection_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// GetCollectionStats handles GET /collections/{id}/stats requests
func (h *CollectionHandler) GetCollectionStats(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	// Confirm the collection exists so stats for unknown IDs are a 404
	// rather than an empty summary.
	if _, err := h.collections.GetByID(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	summary, err := h.stats.StudySummary(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to load study statistics", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}

func collectionToResponse(c *domain.Collection) CollectionResponse {
	return CollectionResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

// parseIDParam extracts and parses a UUID URL parameter, writing a 400
// response on failure.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}
