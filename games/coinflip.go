package games

import (
	"math/rand"
)

// Coin sides
const (
	SideHeads = "heads"
	SideTails = "tails"
)

// FlipOutcome is the raw result of a coinflip draw
type FlipOutcome struct {
	Side string
	Win  bool
}

// Coinflip flips a coin that lands heads with probability headsProb.
// The bias lives entirely in the draw; the win verdict is a plain
// comparison against the player's choice.
func Coinflip(rng *rand.Rand, choice string, headsProb float64) FlipOutcome {
	p := clamp01(headsProb)
	side := SideTails
	if rng.Float64() < p {
		side = SideHeads
	}
	return FlipOutcome{Side: side, Win: side == choice}
}
