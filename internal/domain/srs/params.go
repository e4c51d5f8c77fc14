package srs

// Params defines the configurable bounds and base intervals of the SM-2
// scheduler. The ease-factor adjustment itself is fixed by the algorithm
// (it depends only on the quality rating), but the clamp bounds and the
// intervals for the first repetitions can be tuned.
type Params struct {
	MinEaseFactor float64
	MaxEaseFactor float64

	// FirstInterval is the interval (days) after the first successful review,
	// SecondInterval after the second. Later intervals grow by the ease factor.
	FirstInterval  int
	SecondInterval int

	// FailureInterval is the interval scheduled after a failing review
	// (quality < 3). Progress resets but the word still comes back tomorrow.
	FailureInterval int
}

// NewDefaultParams returns the standard SM-2 parameters.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:   1.3,
		MaxEaseFactor:   2.5,
		FirstInterval:   1,
		SecondInterval:  6,
		FailureInterval: 1,
	}
}
