package srs

import (
	"time"

	"github.com/wordvault/wordvault-api/internal/domain"
)

// calculateNewEaseFactor applies the SM-2 ease adjustment for the given
// quality rating and clamps the result to the configured bounds.
//
// The adjustment is quality-driven: a perfect recall (5) raises the ease by
// 0.1, while each step below 5 costs progressively more, down to -0.8 for a
// complete blackout (0). This is the single clamp point in the codebase;
// stores persist the ease factor exactly as computed here.
func calculateNewEaseFactor(currentEF float64, quality int, params *Params) float64 {
	miss := float64(5 - quality)
	newEF := currentEF + (0.1 - miss*(0.08+miss*0.02))

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}
	if newEF > params.MaxEaseFactor {
		newEF = params.MaxEaseFactor
	}

	return newEF
}

// calculateNextState computes the full post-review schedule for a word.
//
// The prior state is never modified; a new ScheduleState is returned. Quality
// is clamped to 0-5 before use, so out-of-range ratings are handled rather
// than propagated.
//
// Algorithm behavior:
//   - quality < 3: the repetition streak resets to 0 and the word is
//     rescheduled for FailureInterval days out (next day by default).
//   - quality >= 3: the streak grows; the interval is FirstInterval after the
//     first success, SecondInterval after the second, and interval * ease
//     (truncated) from the third on. Since the interval is at least 1 once a
//     streak exists, the multiplication never operates on 0.
//   - The next review time is now plus whole days, preserving the time of
//     day, so reviews do not drift toward midnight.
func calculateNextState(
	state *domain.ScheduleState,
	quality int,
	now time.Time,
	params *Params,
) *domain.ScheduleState {
	quality = domain.ClampQuality(quality)

	newState := &domain.ScheduleState{
		WordID:       state.WordID,
		CollectionID: state.CollectionID,
		EaseFactor:   calculateNewEaseFactor(state.EaseFactor, quality, params),
		Repetitions:  state.Repetitions,
		IntervalDays: state.IntervalDays,
		NextReviewAt: state.NextReviewAt,
		UpdatedAt:    now,
	}

	if quality < 3 {
		newState.Repetitions = 0
		newState.IntervalDays = params.FailureInterval
	} else {
		newState.Repetitions = state.Repetitions + 1

		switch newState.Repetitions {
		case 1:
			newState.IntervalDays = params.FirstInterval
		case 2:
			newState.IntervalDays = params.SecondInterval
		default:
			newState.IntervalDays = int(float64(state.IntervalDays) * newState.EaseFactor)
		}
	}

	newState.NextReviewAt = now.Add(time.Duration(newState.IntervalDays) * 24 * time.Hour)

	return newState
}
