package events

import (
	"context"
	"log/slog"
)

// LoggingHandler is an event handler that writes every session event to the
// structured log. It is the default sink wired into the server.
type LoggingHandler struct {
	logger *slog.Logger
}

// NewLoggingHandler creates a LoggingHandler. A nil logger falls back to
// slog.Default.
func NewLoggingHandler(logger *slog.Logger) *LoggingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingHandler{logger: logger.With(slog.String("component", "session_events"))}
}

// HandleEvent implements the Handler interface.
func (h *LoggingHandler) HandleEvent(_ context.Context, event *SessionEvent) error {
	h.logger.Debug("session event",
		slog.String("event_id", event.ID.String()),
		slog.String("session_id", event.SessionID.String()),
		slog.String("type", string(event.Type)),
		slog.String("word_id", event.WordID.String()),
		slog.Int("quality", event.Quality),
		slog.String("mode", string(event.Mode)))
	return nil
}

// Ensure LoggingHandler implements the Handler interface.
var _ Handler = (*LoggingHandler)(nil)
