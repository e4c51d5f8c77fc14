package study

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/wordvault/wordvault-api/internal/domain"
)

// sessionQueue is the ordered sequence of cards a session works through,
// plus a cursor. Due-card queues keep store order (ascending next review
// time); practice queues are shuffled at build time.
type sessionQueue struct {
	cards  []domain.Card
	cursor int
}

// current returns the card under the cursor, or false when the queue is
// exhausted.
func (q *sessionQueue) current() (*domain.Card, bool) {
	if q.cursor >= len(q.cards) {
		return nil, false
	}
	return &q.cards[q.cursor], true
}

// advance moves the cursor past the current card.
func (q *sessionQueue) advance() {
	if q.cursor < len(q.cards) {
		q.cursor++
	}
}

// position returns the 1-based position of the cursor and the queue length.
func (q *sessionQueue) position() (int, int) {
	pos := q.cursor + 1
	if pos > len(q.cards) {
		pos = len(q.cards)
	}
	return pos, len(q.cards)
}

// refill replaces the queue contents and rewinds the cursor.
func (q *sessionQueue) refill(cards []domain.Card) {
	q.cards = cards
	q.cursor = 0
}

// recencyRing remembers the last N words shown so practice-queue refills can
// avoid repeating what the user just saw. It is advisory: when a collection
// is smaller than the sample size, recent words are used anyway rather than
// shrinking the queue.
type recencyRing struct {
	ids []uuid.UUID
	cap int
}

func newRecencyRing(capacity int) *recencyRing {
	return &recencyRing{cap: capacity}
}

// add records a word as recently seen, evicting the oldest entry when full.
func (r *recencyRing) add(id uuid.UUID) {
	if r.cap == 0 {
		return
	}
	r.ids = append(r.ids, id)
	if len(r.ids) > r.cap {
		r.ids = r.ids[1:]
	}
}

// contains reports whether the word was recently seen.
func (r *recencyRing) contains(id uuid.UUID) bool {
	for _, seen := range r.ids {
		if seen == id {
			return true
		}
	}
	return false
}

// samplePractice picks up to limit cards for a practice round: a shuffle of
// the collection with not-recently-seen words preferred, each wrapped with a
// fresh default schedule snapshot for display.
func samplePractice(
	all []domain.Card,
	limit int,
	ring *recencyRing,
	rng *rand.Rand,
) []domain.Card {
	shuffled := make([]domain.Card, len(all))
	copy(shuffled, all)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	// Stable partition: fresh words first, recently seen ones as filler.
	picked := make([]domain.Card, 0, limit)
	var recent []domain.Card
	for _, c := range shuffled {
		if len(picked) == limit {
			break
		}
		if ring.contains(c.WordID) {
			recent = append(recent, c)
			continue
		}
		picked = append(picked, c)
	}
	for _, c := range recent {
		if len(picked) == limit {
			break
		}
		picked = append(picked, c)
	}

	for i := range picked {
		picked[i].Schedule = *domain.NewScheduleState(picked[i].WordID, picked[i].CollectionID)
	}

	return picked
}
