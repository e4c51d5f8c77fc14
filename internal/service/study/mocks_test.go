package study

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
	"github.com/wordvault/wordvault-api/internal/events"
	"github.com/wordvault/wordvault-api/internal/store"
)

// mockStudyStore is a hand-rolled in-memory implementation of
// store.StudyStore with injectable failures.
type mockStudyStore struct {
	due         []domain.Card
	all         []domain.Card
	distractors []store.Distractor
	schedules   map[uuid.UUID]*domain.ScheduleState
	metadata    map[uuid.UUID]*domain.WordMetadata

	dueErr        error
	allErr        error
	distractorErr error
	getErr        error
	writeErr      error
	recordErr     error

	writes  []*domain.ScheduleState
	records []*domain.SessionRecord
}

func newMockStudyStore() *mockStudyStore {
	return &mockStudyStore{
		schedules: make(map[uuid.UUID]*domain.ScheduleState),
		metadata:  make(map[uuid.UUID]*domain.WordMetadata),
	}
}

var _ store.StudyStore = (*mockStudyStore)(nil)

func (m *mockStudyStore) DueCards(
	_ context.Context, _ uuid.UUID, _ time.Time,
) ([]domain.Card, error) {
	if m.dueErr != nil {
		return nil, m.dueErr
	}
	return m.due, nil
}

func (m *mockStudyStore) AllCards(_ context.Context, _ uuid.UUID) ([]domain.Card, error) {
	if m.allErr != nil {
		return nil, m.allErr
	}
	return m.all, nil
}

func (m *mockStudyStore) SampleDistractors(
	_ context.Context, _, excludeWordID uuid.UUID, n int,
) ([]store.Distractor, error) {
	if m.distractorErr != nil {
		return nil, m.distractorErr
	}
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
	if m.getErr != nil {
		return nil, m.getErr
	}
	state, ok := m.schedules[wordID]
	if !ok {
		return nil, store.ErrScheduleNotFound
	}
	copied := *state
	return &copied, nil
}

func (m *mockStudyStore) WriteSchedule(_ context.Context, state *domain.ScheduleState) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	copied := *state
	m.schedules[state.WordID] = &copied
	m.writes = append(m.writes, &copied)
	return nil
}

func (m *mockStudyStore) AppendSessionRecord(_ context.Context, record *domain.SessionRecord) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockStudyStore) WordMetadata(
	_ context.Context, wordID uuid.UUID,
) (*domain.WordMetadata, error) {
	if meta, ok := m.metadata[wordID]; ok {
		return meta, nil
	}
	return &domain.WordMetadata{}, nil
}

// captureEmitter records emitted session events.
type captureEmitter struct {
	mu     sync.Mutex
	events []*events.SessionEvent
}

func (c *captureEmitter) EmitEvent(_ context.Context, event *events.SessionEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func (c *captureEmitter) ofType(t events.EventType) []*events.SessionEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*events.SessionEvent
	for _, e := range c.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
