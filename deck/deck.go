package deck

import (
	"math/rand"
)

const cardsPerDeck = 54

// Deck represents a deck of cards
type Deck []Card

// New creates a deck of cards with the given back colour
func New(back BackColor) Deck {
	cards := make(Deck, 0, cardsPerDeck)
	for suit := range suitNames {
		for rank := range rankNames {
			c := Card{Suit: Suit(suit), Rank: Rank(rank), Back: back}
			if c.IsValidCombo() {
				cards = append(cards, c)
			}
		}
	}
	return cards
}

// NewStack concatenates one deck per back colour, in order.
func NewStack(backs ...BackColor) Deck {
	cards := make(Deck, 0, cardsPerDeck*len(backs))
	for _, b := range backs {
		cards = append(cards, New(b)...)
	}
	return cards
}

// Shuffler reorders cards in place.
type Shuffler interface {
	Shuffle(cards []Card)
}

// ShufflerFunc adapts a function to a Shuffler
type ShufflerFunc func(cards []Card)

func (f ShufflerFunc) Shuffle(cards []Card) {
	f(cards)
}

// RandShuffler is a Fisher-Yates shuffle driven by an injected source,
// so the same seed always produces the same order.
type RandShuffler struct {
	rng *rand.Rand
}

func NewRandShuffler(rng *rand.Rand) *RandShuffler {
	return &RandShuffler{rng: rng}
}

func (s *RandShuffler) Shuffle(cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Shuffle shuffles the deck of cards
func (d Deck) Shuffle(s Shuffler) {
	s.Shuffle(d)
}
