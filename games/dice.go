package games

import (
	"math/rand"
)

// DicePayoutMultiplier is paid on an exact guess
const DicePayoutMultiplier = 6

// diceRerolls bounds the retarget loop for a single roll
const diceRerolls = 5

// DiceOutcome is the raw result of a dice roll
type DiceOutcome struct {
	Roll int
	Win  bool
}

// RollDice rolls a die biased toward matching the guess with probability
// playerWinChance. The probability edges are exact: p=1 always hits and
// p=0 always shows a genuine miss. In between the verdict is steered by
// the bounded reroll loop.
func RollDice(rng *rand.Rand, guess int, playerWinChance float64) DiceOutcome {
	p := clamp01(playerWinChance)
	if p == 1 {
		return DiceOutcome{Roll: guess, Win: true}
	}
	if p == 0 {
		miss := 1
		if guess == 1 {
			miss = 2
		}
		return DiceOutcome{Roll: miss, Win: false}
	}

	roll, win := SampleUntil(rng,
		func() int { return rng.Intn(6) + 1 },
		func(r int) bool { return r == guess },
		p,
		diceRerolls,
	)
	return DiceOutcome{Roll: roll, Win: win}
}
