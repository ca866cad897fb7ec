package games

import (
	"math/rand"
	"strconv"
)

// High-low guesses
const (
	GuessHigher = "higher"
	GuessLower  = "lower"
)

// Card ranks run 2..14 with Ace high
const (
	minHighLowRank = 2
	maxHighLowRank = 14
)

// Flat chance of an exact tie, which settles as a push regardless of the
// steered verdict.
const highLowTieChance = 0.08

// HighLowOutcome is the raw result of a high-low round
type HighLowOutcome struct {
	Base int
	Next int
	Win  bool
	Push bool
}

// PlayHighLow draws a base rank, then draws the next rank from the pool
// strictly above or below it according to a verdict sampled at
// playerWinChance. When the desired pool is empty (base at an extreme)
// the opposite pool is used and the verdict flips. A flat tie chance
// overrides everything with a push.
func PlayHighLow(rng *rand.Rand, guess string, playerWinChance float64) HighLowOutcome {
	p := clamp01(playerWinChance)
	base := rng.Intn(maxHighLowRank-minHighLowRank+1) + minHighLowRank

	var higherPool, lowerPool []int
	for r := minHighLowRank; r <= maxHighLowRank; r++ {
		if r > base {
			higherPool = append(higherPool, r)
		}
		if r < base {
			lowerPool = append(lowerPool, r)
		}
	}

	targetWin := rng.Float64() < p
	next := base

	if rng.Float64() < highLowTieChance {
		next = base
	} else if guess == GuessHigher {
		if len(higherPool) == 0 {
			targetWin = false
		}
		if targetWin && len(higherPool) > 0 {
			next = higherPool[rng.Intn(len(higherPool))]
		} else if len(lowerPool) > 0 {
			next = lowerPool[rng.Intn(len(lowerPool))]
		}
	} else {
		if len(lowerPool) == 0 {
			targetWin = false
		}
		if targetWin && len(lowerPool) > 0 {
			next = lowerPool[rng.Intn(len(lowerPool))]
		} else if len(higherPool) > 0 {
			next = higherPool[rng.Intn(len(higherPool))]
		}
	}

	win := false
	if next != base {
		if guess == GuessHigher {
			win = next > base
		} else {
			win = next < base
		}
	}

	return HighLowOutcome{Base: base, Next: next, Win: win, Push: next == base}
}

// HighLowRankName renders a 2..14 rank the way card faces are shown
func HighLowRankName(rank int) string {
	switch rank {
	case 14:
		return "A"
	case 13:
		return "K"
	case 12:
		return "Q"
	case 11:
		return "J"
	default:
		return strconv.Itoa(rank)
	}
}
