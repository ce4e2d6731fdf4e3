package game

import (
	"testing"

	"github.com/minaorangina/mau/deck"
	"github.com/stretchr/testify/assert"
)

func TestIsLegalPlay(t *testing.T) {
	hearts := deck.Hearts
	previous := card(deck.Spades, deck.Nine)

	cases := []struct {
		name  string
		card  deck.Card
		wish  *deck.Suit
		legal bool
	}{
		{"same suit", card(deck.Spades, deck.Two), nil, true},
		{"same rank", card(deck.Clubs, deck.Nine), nil, true},
		{"no match", card(deck.Clubs, deck.Two), nil, false},
		{"jack on anything", card(deck.Diamonds, deck.Jack), nil, true},
		{"joker on anything", redJoker, nil, true},
		{"wished suit", card(deck.Hearts, deck.Two), &hearts, true},
		{"suit match outside the wish", card(deck.Spades, deck.Two), &hearts, false},
		{"rank match outside the wish", card(deck.Clubs, deck.Nine), &hearts, false},
		{"jack during a wish", card(deck.Clubs, deck.Jack), &hearts, true},
		{"joker during a wish", blackJoker, &hearts, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.legal, isLegalPlay(c.card, previous, c.wish))
		})
	}

	t.Run("jacks and jokers beat every previous card", func(t *testing.T) {
		for _, prev := range deck.NewStack(deck.Blue) {
			assert.True(t, isLegalPlay(card(deck.Hearts, deck.Jack), prev, nil), prev.String())
			assert.True(t, isLegalPlay(redJoker, prev, nil), prev.String())
		}
	})

	t.Run("only jokers and jacks follow a joker", func(t *testing.T) {
		for _, c := range deck.New(deck.Red) {
			want := c.IsJoker() || c.Rank == deck.Jack
			assert.Equal(t, want, isLegalPlay(c, blackJoker, nil), c.String())
		}
	})
}

func TestLegalMoves(t *testing.T) {
	g, _, _ := newTestGame(t, tableOpts{
		hands: [][]deck.Card{
			{card(deck.Hearts, deck.Two), card(deck.Clubs, deck.Five), card(deck.Spades, deck.Jack), card(deck.Diamonds, deck.King)},
			{},
		},
		discard: []deck.Card{card(deck.Clubs, deck.King)},
	})
	p := g.players[0]

	assert.Equal(t, []deck.Card{
		card(deck.Clubs, deck.Five), card(deck.Spades, deck.Jack), card(deck.Diamonds, deck.King),
	}, g.legalMoves(p))

	hearts := deck.Hearts
	g.wish = &hearts
	assert.Equal(t, []deck.Card{card(deck.Hearts, deck.Two), card(deck.Spades, deck.Jack)}, g.legalMoves(p))
}
