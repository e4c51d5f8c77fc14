package domain

import "github.com/google/uuid"

// Card is one entry in a study queue: the word's display text plus a snapshot
// of its schedule taken when the queue was built. Cards are transient: they
// are constructed at queue build time, presented once, and discarded after a
// rating is applied. Only the persisted ScheduleState survives the session.
type Card struct {
	WordID       uuid.UUID     `json:"word_id"`
	CollectionID uuid.UUID     `json:"collection_id"`
	Term         string        `json:"term"`
	Definition   string        `json:"definition"`
	Schedule     ScheduleState `json:"schedule"`
}

// PracticeCard wraps a word as a card with a fresh default schedule snapshot.
// Random-practice sessions display words regardless of their real schedule,
// which stays untouched in the store.
func PracticeCard(w *Word) Card {
	return Card{
		WordID:       w.ID,
		CollectionID: w.CollectionID,
		Term:         w.Term,
		Definition:   w.Definition,
		Schedule:     *NewScheduleState(w.ID, w.CollectionID),
	}
}
