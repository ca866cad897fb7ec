package games

import (
	"math/rand"
	"time"
)

// NewRNG creates a rand.Rand seeded from the wall clock. Resolvers take
// the RNG as an argument so tests can supply a deterministic source.
func NewRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// MaxBet is the sanity ceiling on a single stake. Stakes above it are
// rejected outright, never clamped.
const MaxBet = 1_000_000

// ValidBet reports whether amount is a playable stake
func ValidBet(amount int64) bool {
	return amount > 0 && amount <= MaxBet
}

// SampleUntil draws an outcome, picks a desired verdict with probability
// p, and redraws while the drawn verdict does not match, giving up after
// maxAttempts retries. The final draw is kept even on a mismatch, so the
// observed win rate approaches p without reaching it exactly; the bounded
// retry count leaves a residual pull toward the unbiased rate. That
// approximation is accepted behavior, not a defect.
func SampleUntil[T any](rng *rand.Rand, draw func() T, won func(T) bool, p float64, maxAttempts int) (T, bool) {
	p = clamp01(p)
	out := draw()
	win := won(out)
	for i := 0; i < maxAttempts; i++ {
		wantWin := rng.Float64() < p
		if win == wantWin {
			break
		}
		out = draw()
		win = won(out)
	}
	return out, win
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
