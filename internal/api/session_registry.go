package api

import (
	"sync"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/service/study"
)

// sessionEntry pairs a session with the mutex that serializes access to it.
// Session methods are not safe for concurrent use; the registry hands out
// entries and callers hold the lock for the duration of one engine call.
type sessionEntry struct {
	mu   sync.Mutex
	sess *study.Session
}

// sessionRegistry keeps the server's active study sessions in memory.
// Sessions are ephemeral: they do not survive a restart, and they are
// removed when the client finishes them.
type sessionRegistry struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*sessionEntry
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{entries: make(map[uuid.UUID]*sessionEntry)}
}

func (r *sessionRegistry) put(sess *study.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[sess.ID] = &sessionEntry{sess: sess}
}

func (r *sessionRegistry) get(id uuid.UUID) (*sessionEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	return entry, ok
}

func (r *sessionRegistry) remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}
