package games

import (
	"math/rand"
)

// Card is a single playing card
type Card struct {
	Rank string
	Suit string
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

// IsHigh reports whether the card counts 10 or 11 in blackjack
func (c Card) IsHigh() bool {
	switch c.Rank {
	case "A", "K", "Q", "J", "10":
		return true
	}
	return false
}

// IsLow reports whether the card is a 2 through 6
func (c Card) IsLow() bool {
	switch c.Rank {
	case "2", "3", "4", "5", "6":
		return true
	}
	return false
}

var (
	cardSuits = []string{"♠", "♥", "♦", "♣"}
	cardRanks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// Deck is a standard 52-card deck. Cards are drawn from the top (the end
// of the slice); biased draws may remove a card from anywhere.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds and Fisher-Yates shuffles a fresh 52-card deck
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for _, suit := range cardSuits {
		for _, rank := range cardRanks {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Draw removes and returns the top card. A blackjack hand can never
// exhaust 52 cards, but an empty deck reshuffles a fresh one rather than
// panic.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		*d = *NewDeck(d.rng)
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card
}

// DrawMatching removes the first card satisfying pred, falling back to a
// plain top-of-deck draw when none remains
func (d *Deck) DrawMatching(pred func(Card) bool) Card {
	for i, c := range d.cards {
		if pred(c) {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return c
		}
	}
	return d.Draw()
}

// Remaining returns how many cards are left
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// HandValue scores a blackjack hand. Aces start at 11 and are reduced to
// 1 one at a time only while the total exceeds 21; face cards count 10.
func HandValue(cards []Card) int {
	total := 0
	aces := 0
	for _, c := range cards {
		switch c.Rank {
		case "A":
			aces++
			total += 11
		case "K", "Q", "J", "10":
			total += 10
		default:
			total += int(c.Rank[0] - '0')
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// CardStrings renders a hand for display
func CardStrings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
