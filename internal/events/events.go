// Package events decouples the study engine from whatever renders a session.
// The engine publishes what happened (a card was presented, a rating was
// applied, the session finished); presentation layers subscribe and render.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
)

// EventType identifies what happened during a study session.
type EventType string

// Session event types.
const (
	EventCardPresented    EventType = "card_presented"
	EventRatingApplied    EventType = "rating_applied"
	EventSessionCompleted EventType = "session_completed"
)

// SessionEvent describes one step of a study session.
type SessionEvent struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	Type      EventType `json:"type"`

	// WordID identifies the card involved; nil-valued for session-level
	// events such as completion.
	WordID uuid.UUID `json:"word_id,omitempty"`

	// Quality is set on rating_applied events.
	Quality int `json:"quality,omitempty"`

	Mode      domain.StudyMode `json:"mode,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewSessionEvent creates an event for the given session.
func NewSessionEvent(sessionID uuid.UUID, eventType EventType) *SessionEvent {
	return &SessionEvent{
		ID:        uuid.New(),
		SessionID: sessionID,
		Type:      eventType,
		CreatedAt: time.Now().UTC(),
	}
}

// Handler is implemented by components that react to session events.
type Handler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *SessionEvent) error
}

// Emitter is implemented by components that publish session events. Services
// emit without knowing who listens.
type Emitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *SessionEvent) error
}
