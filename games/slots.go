package games

import (
	"math/rand"
)

// SlotSymbol is one reel symbol with its draw weight and the multiplier
// paid for a triple of it
type SlotSymbol struct {
	Symbol           string
	Weight           int
	TripleMultiplier float64
}

// SlotSymbols is the fixed reel table. Rarer symbols pay more on a triple.
var SlotSymbols = []SlotSymbol{
	{Symbol: "🍒", Weight: 40, TripleMultiplier: 3},
	{Symbol: "🍋", Weight: 30, TripleMultiplier: 4},
	{Symbol: "🍇", Weight: 18, TripleMultiplier: 6},
	{Symbol: "🔔", Weight: 9, TripleMultiplier: 12},
	{Symbol: "💎", Weight: 3, TripleMultiplier: 30},
}

// PairMultiplier is paid when exactly two of the three reels match.
// The ledger is integer chips and payouts floor the product, so small
// pair wins lose the fraction: a 1-chip pair pays back exactly the
// stake and a 3-chip pair pays 3.
const PairMultiplier = 1.3

// Within forced wins, this share comes up as triples rather than pairs.
const forcedTripleChance = 0.25

// SpinOutcome is the raw result of a slots spin
type SpinOutcome struct {
	Line       [3]string
	Multiplier float64
}

// Win reports whether the spin pays anything
func (o SpinOutcome) Win() bool {
	return o.Multiplier > 0
}

func weightedSymbol(rng *rand.Rand) SlotSymbol {
	total := 0
	for _, s := range SlotSymbols {
		total += s.Weight
	}
	r := rng.Float64() * float64(total)
	for _, s := range SlotSymbols {
		r -= float64(s.Weight)
		if r <= 0 {
			return s
		}
	}
	return SlotSymbols[0]
}

// SpinSlots spins three reels with constructive bias: with probability
// winChance the line is assembled as a matching pair or triple instead of
// drawn freely. The multiplier is always computed from the final line, so
// a free spin that happens to match still pays.
func SpinSlots(rng *rand.Rand, winChance float64) SpinOutcome {
	p := clamp01(winChance)

	var line [3]string
	if rng.Float64() < p {
		sym := weightedSymbol(rng).Symbol
		if rng.Float64() < forcedTripleChance {
			line = [3]string{sym, sym, sym}
		} else {
			other := weightedSymbol(rng).Symbol
			patterns := [][3]string{
				{sym, sym, other},
				{sym, other, sym},
				{other, sym, sym},
			}
			line = patterns[rng.Intn(len(patterns))]
		}
	} else {
		line = [3]string{
			weightedSymbol(rng).Symbol,
			weightedSymbol(rng).Symbol,
			weightedSymbol(rng).Symbol,
		}
	}

	return SpinOutcome{Line: line, Multiplier: lineMultiplier(line)}
}

func lineMultiplier(line [3]string) float64 {
	a, b, c := line[0], line[1], line[2]
	if a == b && b == c {
		for _, s := range SlotSymbols {
			if s.Symbol == a {
				return s.TripleMultiplier
			}
		}
		return 0
	}
	if a == b || b == c || a == c {
		return PairMultiplier
	}
	return 0
}
