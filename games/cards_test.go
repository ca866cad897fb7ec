package games

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck_FiftyTwoUniqueCards(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(51)))
	require.Equal(t, 52, deck.Remaining())

	seen := make(map[Card]bool)
	for deck.Remaining() > 0 {
		c := deck.Draw()
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestDeck_DrawMatching(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(52)))

	c := deck.DrawMatching(Card.IsHigh)
	assert.True(t, c.IsHigh())
	assert.Equal(t, 51, deck.Remaining())

	// Drain every low card, then the predicate has to fall back to a
	// plain draw.
	for i := 0; i < 20; i++ {
		deck.DrawMatching(Card.IsLow)
	}
	c = deck.DrawMatching(Card.IsLow)
	assert.False(t, c.IsLow())
}

func TestHandValue(t *testing.T) {
	card := func(rank string) Card { return Card{Rank: rank, Suit: "♠"} }

	tests := []struct {
		name  string
		hand  []Card
		value int
	}{
		{"ace king is blackjack", []Card{card("A"), card("K")}, 21},
		{"two aces and a nine", []Card{card("A"), card("A"), card("9")}, 21},
		{"soft seventeen", []Card{card("A"), card("6")}, 17},
		{"hard seventeen", []Card{card("A"), card("6"), card("10")}, 17},
		{"face cards count ten", []Card{card("J"), card("Q")}, 20},
		{"bust", []Card{card("K"), card("Q"), card("5")}, 25},
		{"many aces reduce one at a time", []Card{card("A"), card("A"), card("A")}, 13},
		{"pips", []Card{card("2"), card("7")}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.value, HandValue(tt.hand))
		})
	}
}

func TestCardPredicates(t *testing.T) {
	assert.True(t, Card{Rank: "A", Suit: "♥"}.IsHigh())
	assert.True(t, Card{Rank: "10", Suit: "♥"}.IsHigh())
	assert.False(t, Card{Rank: "9", Suit: "♥"}.IsHigh())

	assert.True(t, Card{Rank: "2", Suit: "♦"}.IsLow())
	assert.True(t, Card{Rank: "6", Suit: "♦"}.IsLow())
	assert.False(t, Card{Rank: "7", Suit: "♦"}.IsLow())
	assert.False(t, Card{Rank: "A", Suit: "♦"}.IsLow())
}

func TestCardStrings(t *testing.T) {
	hand := []Card{{Rank: "A", Suit: "♠"}, {Rank: "10", Suit: "♥"}}
	assert.Equal(t, []string{"A♠", "10♥"}, CardStrings(hand))
}
