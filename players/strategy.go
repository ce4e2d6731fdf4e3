package players

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/minaorangina/mau/deck"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy makes a player's decisions. Implementations only see copies
// of the cards and must answer with one of the options they were given.
type Strategy interface {
	// Play picks one of legalMoves, or returns false to play nothing.
	Play(hand []deck.Card, top deck.Card, legalMoves []deck.Card) (deck.Card, bool)
	// ChooseSuit picks the suit to wish for after a Jack. Never Joker.
	ChooseSuit(hand []deck.Card, top deck.Card) deck.Suit
}

// RandomStrategy plays a random legal card
type RandomStrategy struct {
	rng *rand.Rand
}

func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	return &RandomStrategy{rng: rng}
}

func (s *RandomStrategy) Play(hand []deck.Card, top deck.Card, legalMoves []deck.Card) (deck.Card, bool) {
	if len(legalMoves) == 0 {
		return deck.Card{}, false
	}
	return legalMoves[s.rng.Intn(len(legalMoves))], true
}

func (s *RandomStrategy) ChooseSuit(hand []deck.Card, top deck.Card) deck.Suit {
	return deck.Suits[s.rng.Intn(len(deck.Suits))]
}

// ScaredyStrategy gets rid of its most expensive cards first.
type ScaredyStrategy struct{}

func (ScaredyStrategy) Play(hand []deck.Card, top deck.Card, legalMoves []deck.Card) (deck.Card, bool) {
	if len(legalMoves) == 0 {
		return deck.Card{}, false
	}
	best := legalMoves[0]
	for _, c := range legalMoves[1:] {
		if c.Value() > best.Value() {
			best = c
		}
	}
	return best, true
}

// ChooseSuit wishes for the suit holding the most points in hand.
func (ScaredyStrategy) ChooseSuit(hand []deck.Card, top deck.Card) deck.Suit {
	values := map[deck.Suit]int{}
	for _, c := range hand {
		values[c.Suit] += c.Value()
	}
	best := deck.Suits[0]
	for _, s := range deck.Suits[1:] {
		if values[s] > values[best] {
			best = s
		}
	}
	return best
}

// StrategyByName builds one of the bundled strategies.
func StrategyByName(name string, rng *rand.Rand) (Strategy, error) {
	switch name {
	case "random", "":
		return NewRandomStrategy(rng), nil
	case "scaredy":
		return ScaredyStrategy{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
