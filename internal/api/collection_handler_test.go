package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordvault/wordvault-api/internal/domain"
)

func newCollectionTestServer(collections *mockCollectionStore, stats *mockStatsStore) http.Handler {
	if stats == nil {
		stats = &mockStatsStore{}
	}
	handler := NewCollectionHandler(collections, stats, testLogger())
	return testRouter(handler, nil, nil)
}

func TestCreateCollection(t *testing.T) {
	m := newMockCollectionStore()
	router := newCollectionTestServer(m, nil)

	rec := postJSON(t, router, "/api/collections", CreateCollectionRequest{Name: "Spanish Verbs"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CollectionResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Spanish Verbs", resp.Name)
	assert.NotEmpty(t, resp.ID)
	require.Len(t, m.collections, 1)
}

func TestCreateCollectionRejectsBlankName(t *testing.T) {
	router := newCollectionTestServer(newMockCollectionStore(), nil)

	rec := postJSON(t, router, "/api/collections", CreateCollectionRequest{Name: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, router, "/api/collections", CreateCollectionRequest{Name: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "whitespace-only names trim to empty")
}

func TestCreateCollectionDuplicateNameConflict(t *testing.T) {
	m := newMockCollectionStore()
	router := newCollectionTestServer(m, nil)

	rec := postJSON(t, router, "/api/collections", CreateCollectionRequest{Name: "Idioms"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, router, "/api/collections", CreateCollectionRequest{Name: "Idioms"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetCollectionNotFound(t *testing.T) {
	router := newCollectionTestServer(newMockCollectionStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/collections/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/collections/not-a-uuid", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCollectionsIncludesCounts(t *testing.T) {
	m := newMockCollectionStore()
	next := time.Now().UTC().Add(time.Hour)
	m.summaries = []domain.CollectionSummary{
		{
			Collection:    domain.Collection{ID: uuid.New(), Name: "Soon", CreatedAt: time.Now().UTC()},
			NewCount:      2,
			LearningCount: 3,
			DueCount:      1,
			NextReviewAt:  &next,
		},
		{
			Collection: domain.Collection{ID: uuid.New(), Name: "Empty", CreatedAt: time.Now().UTC()},
		},
	}
	router := newCollectionTestServer(m, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/collections", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []CollectionSummaryResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "Soon", resp[0].Name)
	assert.Equal(t, 1, resp[0].DueCount)
	assert.NotNil(t, resp[0].NextReviewAt)
	assert.Nil(t, resp[1].NextReviewAt)
}

func TestDeleteCollection(t *testing.T) {
	m := newMockCollectionStore()
	collection, err := domain.NewCollection("Doomed")
	require.NoError(t, err)
	m.collections[collection.ID] = collection
	router := newCollectionTestServer(m, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/collections/"+collection.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, m.collections)

	// A second delete is a 404.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCollectionStats(t *testing.T) {
	m := newMockCollectionStore()
	collection, err := domain.NewCollection("Tracked")
	require.NoError(t, err)
	m.collections[collection.ID] = collection
	stats := &mockStatsStore{summary: domain.StudySummary{
		TotalReviews:   10,
		CorrectReviews: 7,
		AverageQuality: 3.9,
	}}
	router := newCollectionTestServer(m, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/collections/"+collection.ID.String()+"/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary domain.StudySummary
	decodeBody(t, rec, &summary)
	assert.Equal(t, 10, summary.TotalReviews)
	assert.Equal(t, 7, summary.CorrectReviews)
	assert.InDelta(t, 3.9, summary.AverageQuality, 1e-9)

	// Stats for a missing collection 404 rather than returning zeros.
	req = httptest.NewRequest(http.MethodGet, "/api/collections/"+uuid.New().String()+"/stats", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateWordAndList(t *testing.T) {
	words := newMockWordStore()
	handler := NewWordHandler(words, newMockStudyStore(), testLogger())
	router := testRouter(nil, handler, nil)
	collectionID := uuid.New()

	rec := postJSON(t, router, "/api/collections/"+collectionID.String()+"/words", CreateWordRequest{
		Term:       "  correr  ",
		Definition: "to run",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp WordResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "correr", resp.Term, "term is trimmed")
	assert.Equal(t, "to run", resp.Definition)

	req := httptest.NewRequest(http.MethodGet, "/api/collections/"+collectionID.String()+"/words", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, req)
	require.Equal(t, http.StatusOK, listRec.Code)
	assert.True(t, strings.Contains(listRec.Body.String(), "correr"))

	// Missing fields are rejected before touching the store.
	rec = postJSON(t, router, "/api/collections/"+collectionID.String()+"/words", CreateWordRequest{Term: "solo"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, words.words, 1)
}
