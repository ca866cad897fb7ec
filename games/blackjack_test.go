package games

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealHands_LuckyDealFavorsPlayer(t *testing.T) {
	rng := rand.New(rand.NewSource(61))

	for i := 0; i < 200; i++ {
		deck := NewDeck(rng)
		player, dealer := DealHands(rng, deck, 1.0)

		require.Len(t, player, 2)
		require.Len(t, dealer, 2)
		assert.Equal(t, 48, deck.Remaining())

		// A fresh deck always has high and low cards available, so the
		// preferred pools never run dry on the opening deal.
		for _, c := range player {
			assert.True(t, c.IsHigh(), "player dealt %s at full bias", c)
		}
		for _, c := range dealer {
			assert.True(t, c.IsLow(), "dealer dealt %s at full bias", c)
		}
	}
}

func TestDealHands_UnluckyDealInverts(t *testing.T) {
	rng := rand.New(rand.NewSource(62))
	deck := NewDeck(rng)
	player, dealer := DealHands(rng, deck, 0.0)

	for _, c := range player {
		assert.True(t, c.IsLow())
	}
	for _, c := range dealer {
		assert.True(t, c.IsHigh())
	}
}

func TestDrawFor_PlayerHelpPrefersLowCards(t *testing.T) {
	rng := rand.New(rand.NewSource(63))
	deck := NewDeck(rng)

	// Full help on a fresh deck always finds a low card for the player.
	c := DrawFor(rng, deck, 1.0, SeatPlayer)
	assert.True(t, c.IsLow())
}

func TestDrawFor_NoHelpDrawsTopOfDeck(t *testing.T) {
	rng := rand.New(rand.NewSource(64))
	deck := NewDeck(rng)
	before := deck.Remaining()

	c := DrawFor(rng, deck, 0.0, SeatPlayer)
	assert.NotEmpty(t, c.Rank)
	assert.Equal(t, before-1, deck.Remaining())
}

func TestPlayDealer_DrawsToSeventeen(t *testing.T) {
	rng := rand.New(rand.NewSource(65))

	for i := 0; i < 500; i++ {
		deck := NewDeck(rng)
		_, dealer := DealHands(rng, deck, 0.45)
		dealer = PlayDealer(rng, deck, dealer, 0.45)
		assert.GreaterOrEqual(t, HandValue(dealer), DealerStandsAt)
	}
}

func TestPlayDealer_StandsPat(t *testing.T) {
	rng := rand.New(rand.NewSource(66))
	deck := NewDeck(rng)
	dealer := []Card{{Rank: "K", Suit: "♠"}, {Rank: "9", Suit: "♥"}}

	out := PlayDealer(rng, deck, dealer, 0.45)
	assert.Len(t, out, 2)
	assert.Equal(t, 19, HandValue(out))
}
