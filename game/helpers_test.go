package game

import (
	"fmt"
	"testing"

	"github.com/minaorangina/mau/deck"
	"github.com/minaorangina/mau/players"
	"github.com/minaorangina/mau/protocol"
	"github.com/stretchr/testify/require"
)

func card(s deck.Suit, r deck.Rank) deck.Card {
	return deck.Card{Suit: s, Rank: r}
}

var (
	blackJoker = card(deck.Joker, deck.BlackJoker)
	redJoker   = card(deck.Joker, deck.RedJoker)
	noShuffle  = deck.ShufflerFunc(func([]deck.Card) {})
)

// scripted answers with fixed rules and records what it was offered.
type scripted struct {
	play    func(legalMoves []deck.Card) (deck.Card, bool)
	suit    deck.Suit
	offered [][]deck.Card
}

func (s *scripted) Play(hand []deck.Card, top deck.Card, legalMoves []deck.Card) (deck.Card, bool) {
	s.offered = append(s.offered, legalMoves)
	if s.play == nil {
		return firstLegal(legalMoves)
	}
	return s.play(legalMoves)
}

func (s *scripted) ChooseSuit(hand []deck.Card, top deck.Card) deck.Suit {
	return s.suit
}

func firstLegal(legalMoves []deck.Card) (deck.Card, bool) {
	if len(legalMoves) == 0 {
		return deck.Card{}, false
	}
	return legalMoves[0], true
}

func neverPlay([]deck.Card) (deck.Card, bool) {
	return deck.Card{}, false
}

func always(c deck.Card) func([]deck.Card) (deck.Card, bool) {
	return func([]deck.Card) (deck.Card, bool) { return c, true }
}

// tableOpts describes a table mid-round
type tableOpts struct {
	hands     [][]deck.Card
	drawPile  []deck.Card
	discard   []deck.Card
	current   int
	direction int
}

// newTestGame seats one scripted player per hand, named p1, p2, ...
func newTestGame(t *testing.T, opts tableOpts) (*Game, []*scripted, *[]protocol.Event) {
	t.Helper()

	ps := players.Players{}
	strategies := []*scripted{}
	for i, hand := range opts.hands {
		s := &scripted{suit: deck.Hearts}
		p := players.NewPlayer(fmt.Sprintf("p%d", i+1), fmt.Sprintf("p%d", i+1), s)
		p.SetHand(hand)
		ps = append(ps, p)
		strategies = append(strategies, s)
	}

	events := []protocol.Event{}
	g, err := New(ps, WithShuffler(noShuffle), WithListener(func(e protocol.Event) {
		events = append(events, e)
	}))
	require.NoError(t, err)

	g.round = 1
	g.draw = deck.NewDrawPile(opts.drawPile)
	g.discard = deck.NewDiscardPile(opts.discard...)
	g.currentIdx = opts.current
	if opts.direction != 0 {
		g.direction = opts.direction
	}

	return g, strategies, &events
}

// filler returns n plain cards that no test hand cares about
func filler(n int) []deck.Card {
	cards := []deck.Card{}
	for i := 0; i < n; i++ {
		cards = append(cards, card(deck.Diamonds, deck.Rank(int(deck.Two)+i%7)))
	}
	return cards
}

// step executes one state and fails the test on error
func step(t *testing.T, g *Game, s state) state {
	t.Helper()
	next, err := g.execute(s)
	require.NoError(t, err)
	return next
}
