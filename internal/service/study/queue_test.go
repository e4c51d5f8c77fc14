package study

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wordvault/wordvault-api/internal/domain"
)

func makeCards(n int) []domain.Card {
	collectionID := uuid.New()
	cards := make([]domain.Card, n)
	for i := range cards {
		wordID := uuid.New()
		cards[i] = domain.Card{
			WordID:       wordID,
			CollectionID: collectionID,
			Term:         "term",
			Definition:   "definition",
			Schedule:     *domain.NewScheduleState(wordID, collectionID),
		}
	}
	return cards
}

func TestSessionQueueCursor(t *testing.T) {
	t.Parallel()
	q := sessionQueue{cards: makeCards(2)}

	card, ok := q.current()
	assert.True(t, ok)
	assert.Equal(t, q.cards[0].WordID, card.WordID)

	pos, total := q.position()
	assert.Equal(t, 1, pos)
	assert.Equal(t, 2, total)

	q.advance()
	card, ok = q.current()
	assert.True(t, ok)
	assert.Equal(t, q.cards[1].WordID, card.WordID)

	q.advance()
	_, ok = q.current()
	assert.False(t, ok)

	// advancing past the end stays put
	q.advance()
	pos, total = q.position()
	assert.Equal(t, 2, pos)
	assert.Equal(t, 2, total)
}

func TestRecencyRingEvictsOldest(t *testing.T) {
	t.Parallel()
	ring := newRecencyRing(2)

	first, second, third := uuid.New(), uuid.New(), uuid.New()
	ring.add(first)
	ring.add(second)
	ring.add(third)

	assert.False(t, ring.contains(first), "oldest entry should be evicted")
	assert.True(t, ring.contains(second))
	assert.True(t, ring.contains(third))
}

func TestSamplePracticeCapsAndResetsSchedule(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	all := makeCards(30)
	for i := range all {
		all[i].Schedule.EaseFactor = 1.7
		all[i].Schedule.Repetitions = 3
	}

	picked := samplePractice(all, 20, newRecencyRing(5), rng)

	assert.Len(t, picked, 20)
	for _, c := range picked {
		assert.Equal(t, domain.DefaultEaseFactor, c.Schedule.EaseFactor,
			"practice cards carry a fresh display snapshot")
		assert.Equal(t, 0, c.Schedule.Repetitions)
	}
}

func TestSamplePracticePrefersUnseenWords(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	all := makeCards(10)

	ring := newRecencyRing(5)
	for _, c := range all[:5] {
		ring.add(c.WordID)
	}

	picked := samplePractice(all, 5, ring, rng)

	assert.Len(t, picked, 5)
	for _, c := range picked {
		assert.False(t, ring.contains(c.WordID),
			"with enough unseen words, none of the sample should be recent")
	}
}

func TestSamplePracticeFallsBackToRecentWords(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))
	all := makeCards(3)

	// Everything was just seen; the ring is advisory, so the sample still fills.
	ring := newRecencyRing(5)
	for _, c := range all {
		ring.add(c.WordID)
	}

	picked := samplePractice(all, 20, ring, rng)
	assert.Len(t, picked, 3)
}
