package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/wordvault/wordvault-api/internal/api"
	apiMiddleware "github.com/wordvault/wordvault-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	collectionHandler := api.NewCollectionHandler(app.collectionStore, app.statsStore, app.logger)
	wordHandler := api.NewWordHandler(app.wordStore, app.studyStore, app.logger)
	studyHandler := api.NewStudyHandler(app.studyService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Collection endpoints
		r.Post("/collections", collectionHandler.CreateCollection)
		r.Get("/collections", collectionHandler.ListCollections)
		r.Get("/collections/{id}", collectionHandler.GetCollection)
		r.Delete("/collections/{id}", collectionHandler.DeleteCollection)
		r.Get("/collections/{id}/stats", collectionHandler.GetCollectionStats)

		// Word endpoints
		r.Post("/collections/{id}/words", wordHandler.CreateWord)
		r.Get("/collections/{id}/words", wordHandler.ListWords)
		r.Get("/words/{id}", wordHandler.GetWord)
		r.Delete("/words/{id}", wordHandler.DeleteWord)
		r.Post("/words/{id}/examples", wordHandler.AddExample)
		r.Post("/words/{id}/relations", wordHandler.AddRelation)

		// Study session endpoints
		r.Post("/study/sessions", studyHandler.StartSession)
		r.Get("/study/sessions/{id}", studyHandler.GetSession)
		r.Delete("/study/sessions/{id}", studyHandler.FinishSession)
		r.Post("/study/sessions/{id}/reveal", studyHandler.Reveal)
		r.Post("/study/sessions/{id}/rate", studyHandler.Rate)
		r.Post("/study/sessions/{id}/choose", studyHandler.Choose)
		r.Post("/study/sessions/{id}/typed", studyHandler.SubmitTyped)
		r.Post("/study/sessions/{id}/refill", studyHandler.Refill)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
