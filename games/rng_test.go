package games

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidBet(t *testing.T) {
	assert.True(t, ValidBet(1))
	assert.True(t, ValidBet(500))
	assert.True(t, ValidBet(MaxBet))

	assert.False(t, ValidBet(0))
	assert.False(t, ValidBet(-50))
	assert.False(t, ValidBet(MaxBet+1))
}

func TestSampleUntil_SteersTowardTarget(t *testing.T) {
	// A fair coin draw steered toward several targets. The bounded retry
	// count means convergence is approximate, not exact.
	targets := []float64{0.1, 0.3, 0.7, 0.9}

	for _, p := range targets {
		rng := rand.New(rand.NewSource(42))
		const n = 20000
		wins := 0
		for i := 0; i < n; i++ {
			_, win := SampleUntil(rng,
				func() bool { return rng.Float64() < 0.5 },
				func(b bool) bool { return b },
				p,
				6,
			)
			if win {
				wins++
			}
		}
		rate := float64(wins) / n
		assert.InDeltaf(t, p, rate, 0.05, "target %.2f observed %.4f", p, rate)
	}
}

func TestSampleUntil_MoreAttemptsConvergeCloser(t *testing.T) {
	target := 0.85

	rateFor := func(attempts int) float64 {
		rng := rand.New(rand.NewSource(7))
		const n = 20000
		wins := 0
		for i := 0; i < n; i++ {
			_, win := SampleUntil(rng,
				func() bool { return rng.Float64() < 0.5 },
				func(b bool) bool { return b },
				target,
				attempts,
			)
			if win {
				wins++
			}
		}
		return float64(wins) / n
	}

	loose := rateFor(1)
	tight := rateFor(8)
	assert.Less(t, math.Abs(tight-target), math.Abs(loose-target))
}

func TestSampleUntil_ClampsProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// An out-of-range p must behave like its clamped value, never panic.
	for i := 0; i < 1000; i++ {
		_, win := SampleUntil(rng,
			func() bool { return rng.Float64() < 0.5 },
			func(b bool) bool { return b },
			-3.5,
			6,
		)
		// With p clamped to 0 the loop rerolls toward losing outcomes.
		_ = win
	}
}

func TestSampleUntil_ZeroAttemptsKeepsFirstDraw(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	out, win := SampleUntil(rng,
		func() int { return 4 },
		func(r int) bool { return r == 4 },
		0,
		0,
	)
	assert.Equal(t, 4, out)
	assert.True(t, win)
}
