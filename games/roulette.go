package games

import (
	"math/rand"
)

// Roulette bet types
const (
	RouletteBetRed    = "red"
	RouletteBetBlack  = "black"
	RouletteBetEven   = "even"
	RouletteBetOdd    = "odd"
	RouletteBetNumber = "number"
)

// Pocket colors
const (
	ColorGreen = "green"
	ColorRed   = "red"
	ColorBlack = "black"
)

// rouletteRerolls bounds the retarget loop for a single spin
const rouletteRerolls = 6

var redPockets = map[int]struct{}{
	1: {}, 3: {}, 5: {}, 7: {}, 9: {}, 12: {}, 14: {}, 16: {}, 18: {},
	19: {}, 21: {}, 23: {}, 25: {}, 27: {}, 30: {}, 32: {}, 34: {}, 36: {},
}

// RouletteBet is a single-position roulette wager. Number is only
// meaningful when Type is RouletteBetNumber.
type RouletteBet struct {
	Type   string
	Number int
}

// ValidRouletteBet reports whether the bet names a known position
func ValidRouletteBet(bet RouletteBet) bool {
	switch bet.Type {
	case RouletteBetRed, RouletteBetBlack, RouletteBetEven, RouletteBetOdd:
		return true
	case RouletteBetNumber:
		return bet.Number >= 0 && bet.Number <= 36
	}
	return false
}

// Pocket is one of the 37 wheel pockets. Parity is empty for the zero
// pocket, which is green and belongs to neither parity.
type Pocket struct {
	Number int
	Color  string
	Parity string
}

// WheelOutcome is the raw result of a roulette spin
type WheelOutcome struct {
	Pocket
	Win bool
}

func spinWheel(rng *rand.Rand) Pocket {
	n := rng.Intn(37)
	if n == 0 {
		return Pocket{Number: 0, Color: ColorGreen}
	}
	color := ColorBlack
	if _, red := redPockets[n]; red {
		color = ColorRed
	}
	parity := "odd"
	if n%2 == 0 {
		parity = "even"
	}
	return Pocket{Number: n, Color: color, Parity: parity}
}

func (b RouletteBet) wins(p Pocket) bool {
	switch b.Type {
	case RouletteBetRed, RouletteBetBlack:
		return p.Color == b.Type
	case RouletteBetEven, RouletteBetOdd:
		return p.Parity == b.Type
	case RouletteBetNumber:
		return p.Number == b.Number
	}
	return false
}

// RoulettePayoutMultiplier returns the payout multiplier for a bet type:
// 36x for a straight number, 2x for the even-money positions.
func RoulettePayoutMultiplier(betType string) int64 {
	switch betType {
	case RouletteBetNumber:
		return 36
	case RouletteBetRed, RouletteBetBlack, RouletteBetEven, RouletteBetOdd:
		return 2
	}
	return 0
}

// SpinRoulette spins a fair 37-pocket wheel, then rerolls a bounded
// number of times to steer the verdict toward playerWinChance. The
// pocket shown to the player is always a genuine wheel pocket.
func SpinRoulette(rng *rand.Rand, bet RouletteBet, playerWinChance float64) WheelOutcome {
	pocket, win := SampleUntil(rng,
		func() Pocket { return spinWheel(rng) },
		bet.wins,
		playerWinChance,
		rouletteRerolls,
	)
	return WheelOutcome{Pocket: pocket, Win: win}
}
