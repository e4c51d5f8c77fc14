package events

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	events []*SessionEvent
	err    error
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *SessionEvent) error {
	h.events = append(h.events, event)
	return h.err
}

func TestEmitEventDeliversToAllHandlers(t *testing.T) {
	t.Parallel()
	emitter := NewInMemoryEmitter(nil)

	first := &recordingHandler{}
	second := &recordingHandler{}
	emitter.RegisterHandler(first)
	emitter.RegisterHandler(second)

	event := NewSessionEvent(uuid.New(), EventCardPresented)
	err := emitter.EmitEvent(context.Background(), event)

	require.NoError(t, err)
	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
	assert.Equal(t, EventCardPresented, first.events[0].Type)
}

func TestEmitEventContinuesPastFailingHandler(t *testing.T) {
	t.Parallel()
	emitter := NewInMemoryEmitter(nil)

	failing := &recordingHandler{err: errors.New("boom")}
	healthy := &recordingHandler{}
	emitter.RegisterHandler(failing)
	emitter.RegisterHandler(healthy)

	err := emitter.EmitEvent(context.Background(), NewSessionEvent(uuid.New(), EventRatingApplied))

	assert.Error(t, err)
	assert.Len(t, healthy.events, 1, "healthy handler should still receive the event")
}

func TestEmitEventWithNoHandlers(t *testing.T) {
	t.Parallel()
	emitter := NewInMemoryEmitter(nil)

	err := emitter.EmitEvent(context.Background(), NewSessionEvent(uuid.New(), EventSessionCompleted))
	assert.NoError(t, err)
}
