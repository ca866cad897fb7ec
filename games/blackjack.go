package games

import (
	"math/rand"
)

// Seat identifies which side of the table a biased draw is for
type Seat string

const (
	SeatPlayer Seat = "player"
	SeatDealer Seat = "dealer"
)

// DealerStandsAt is the value the dealer draws up to
const DealerStandsAt = 17

func drawHigh(d *Deck) Card {
	return d.DrawMatching(Card.IsHigh)
}

func drawLow(d *Deck) Card {
	return d.DrawMatching(Card.IsLow)
}

// DealHands deals the opening two cards to each side with constructive
// bias: with probability playerWinChance the player is dealt
// preferentially high cards and the dealer preferentially low ones,
// otherwise the roles invert. When the preferred pool runs dry the draw
// falls back to the top of the deck, so both hands always complete.
func DealHands(rng *rand.Rand, deck *Deck, playerWinChance float64) (player, dealer []Card) {
	p := clamp01(playerWinChance)
	lucky := rng.Float64() < p

	if lucky {
		player = append(player, drawHigh(deck), drawHigh(deck))
		dealer = append(dealer, drawLow(deck), drawLow(deck))
	} else {
		player = append(player, drawLow(deck), drawLow(deck))
		dealer = append(dealer, drawHigh(deck), drawHigh(deck))
	}
	return player, dealer
}

// DrawFor draws one card for a seat with a mild per-draw bias gated on a
// playerWinChance coin flip. For the player, help means a low card that
// reduces bust risk. For the dealer, help for the player means a 50/50
// shot at a high card that pushes the dealer toward a bust. The bias is
// deliberately mild and carries no exact win-rate guarantee.
func DrawFor(rng *rand.Rand, deck *Deck, playerWinChance float64, seat Seat) Card {
	p := clamp01(playerWinChance)
	help := rng.Float64() < p

	if seat == SeatPlayer {
		if help {
			return drawLow(deck)
		}
		return deck.Draw()
	}

	if help {
		if rng.Float64() < 0.5 {
			return drawHigh(deck)
		}
		return deck.Draw()
	}
	return deck.Draw()
}

// PlayDealer draws for the dealer until the hand reaches DealerStandsAt,
// applying the per-draw bias to every hit
func PlayDealer(rng *rand.Rand, deck *Deck, dealer []Card, playerWinChance float64) []Card {
	for HandValue(dealer) < DealerStandsAt {
		dealer = append(dealer, DrawFor(rng, deck, playerWinChance, SeatDealer))
	}
	return dealer
}
