package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/store"
)

// mockCollectionStore is an in-memory store.CollectionStore for handler tests.
type mockCollectionStore struct {
	collections map[uuid.UUID]*domain.Collection
	summaries   []domain.CollectionSummary
	createErr   error
	listErr     error
}

func newMockCollectionStore() *mockCollectionStore {
	return &mockCollectionStore{collections: make(map[uuid.UUID]*domain.Collection)}
}

var _ store.CollectionStore = (*mockCollectionStore)(nil)

func (m *mockCollectionStore) Create(_ context.Context, collection *domain.Collection) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.collections {
		if existing.Name == collection.Name {
			return store.ErrCollectionNameExists
		}
	}
	m.collections[collection.ID] = collection
	return nil
}

func (m *mockCollectionStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Collection, error) {
	collection, ok := m.collections[id]
	if !ok {
		return nil, store.ErrCollectionNotFound
	}
	return collection, nil
}

func (m *mockCollectionStore) List(_ context.Context) ([]domain.CollectionSummary, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.summaries, nil
}

func (m *mockCollectionStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.collections[id]; !ok {
		return store.ErrCollectionNotFound
	}
	delete(m.collections, id)
	return nil
}

// mockWordStore is an in-memory store.WordStore for handler tests.
type mockWordStore struct {
	words map[uuid.UUID]*domain.Word
}

func newMockWordStore() *mockWordStore {
	return &mockWordStore{words: make(map[uuid.UUID]*domain.Word)}
}

var _ store.WordStore = (*mockWordStore)(nil)

func (m *mockWordStore) Create(_ context.Context, word *domain.Word) error {
	m.words[word.ID] = word
	return nil
}

func (m *mockWordStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Word, error) {
	word, ok := m.words[id]
	if !ok {
		return nil, store.ErrWordNotFound
	}
	return word, nil
}

func (m *mockWordStore) ListByCollection(_ context.Context, collectionID uuid.UUID) ([]domain.Word, error) {
	var words []domain.Word
	for _, w := range m.words {
		if w.CollectionID == collectionID {
			words = append(words, *w)
		}
	}
	return words, nil
}

func (m *mockWordStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.words[id]; !ok {
		return store.ErrWordNotFound
	}
	delete(m.words, id)
	return nil
}

func (m *mockWordStore) AddExample(_ context.Context, example *domain.WordExample) error {
	if _, ok := m.words[example.WordID]; !ok {
		return store.ErrWordNotFound
	}
	return nil
}

func (m *mockWordStore) AddRelation(_ context.Context, relation *domain.WordRelation) error {
	if _, ok := m.words[relation.WordID]; !ok {
		return store.ErrWordNotFound
	}
	return nil
}

// mockStatsStore returns a fixed summary.
type mockStatsStore struct {
	summary domain.StudySummary
}

var _ store.StatsStore = (*mockStatsStore)(nil)

func (m *mockStatsStore) StudySummary(_ context.Context, _ uuid.UUID) (*domain.StudySummary, error) {
	summary := m.summary
	return &summary, nil
}

// mockStudyStore backs the study service in handler tests.
type mockStudyStore struct {
	due         []domain.Card
	all         []domain.Card
	distractors []store.Distractor
	schedules   map[uuid.UUID]*domain.ScheduleState
	writes      []*domain.ScheduleState
	records     []*domain.SessionRecord
}

func newMockStudyStore() *mockStudyStore {
	return &mockStudyStore{schedules: make(map[uuid.UUID]*domain.ScheduleState)}
}

var _ store.StudyStore = (*mockStudyStore)(nil)

func (m *mockStudyStore) DueCards(_ context.Context, _ uuid.UUID, _ time.Time) ([]domain.Card, error) {
	return m.due, nil
}

func (m *mockStudyStore) AllCards(_ context.Context, _ uuid.UUID) ([]domain.Card, error) {
	return m.all, nil
}

func (m *mockStudyStore) SampleDistractors(
	_ context.Context, _, excludeWordID uuid.UUID, n int,
) ([]store.Distractor, error) {
	var out []store.Distractor
	for _, d := range m.distractors {
		if d.WordID == excludeWordID || len(out) == n {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *mockStudyStore) GetSchedule(
	_ context.Context, wordID, _ uuid.UUID,
) (*domain.ScheduleState, error) {
	state, ok := m.schedules[wordID]
	if !ok {
		return nil, store.ErrScheduleNotFound
	}
	copied := *state
	return &copied, nil
}

func (m *mockStudyStore) WriteSchedule(_ context.Context, state *domain.ScheduleState) error {
	copied := *state
	m.schedules[state.WordID] = &copied
	m.writes = append(m.writes, &copied)
	return nil
}

func (m *mockStudyStore) AppendSessionRecord(_ context.Context, record *domain.SessionRecord) error {
	m.records = append(m.records, record)
	return nil
}

func (m *mockStudyStore) WordMetadata(_ context.Context, _ uuid.UUID) (*domain.WordMetadata, error) {
	return &domain.WordMetadata{}, nil
}

// seedCards registers n due cards in one collection.
func (m *mockStudyStore) seedCards(collectionID uuid.UUID, n int) {
	for i := 0; i < n; i++ {
		wordID := uuid.New()
		state := domain.NewScheduleState(wordID, collectionID)
		m.schedules[wordID] = state
		card := domain.Card{
			WordID:       wordID,
			CollectionID: collectionID,
			Term:         "term",
			Definition:   "definition",
			Schedule:     *state,
		}
		m.due = append(m.due, card)
		m.all = append(m.all, card)
	}
}

func testLogger() *slog.Logger {
	return slog.Default()
}

// testRouter mounts the handlers under the same paths the server uses.
func testRouter(
	collectionHandler *CollectionHandler,
	wordHandler *WordHandler,
	studyHandler *StudyHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		if collectionHandler != nil {
			r.Post("/collections", collectionHandler.CreateCollection)
			r.Get("/collections", collectionHandler.ListCollections)
			r.Get("/collections/{id}", collectionHandler.GetCollection)
			r.Delete("/collections/{id}", collectionHandler.DeleteCollection)
			r.Get("/collections/{id}/stats", collectionHandler.GetCollectionStats)
		}
		if wordHandler != nil {
			r.Post("/collections/{id}/words", wordHandler.CreateWord)
			r.Get("/collections/{id}/words", wordHandler.ListWords)
			r.Get("/words/{id}", wordHandler.GetWord)
			r.Delete("/words/{id}", wordHandler.DeleteWord)
		}
		if studyHandler != nil {
			r.Post("/study/sessions", studyHandler.StartSession)
			r.Get("/study/sessions/{id}", studyHandler.GetSession)
			r.Delete("/study/sessions/{id}", studyHandler.FinishSession)
			r.Post("/study/sessions/{id}/reveal", studyHandler.Reveal)
			r.Post("/study/sessions/{id}/rate", studyHandler.Rate)
			r.Post("/study/sessions/{id}/choose", studyHandler.Choose)
			r.Post("/study/sessions/{id}/typed", studyHandler.SubmitTyped)
			r.Post("/study/sessions/{id}/refill", studyHandler.Refill)
		}
	})
	return r
}
