package game

import (
	"github.com/minaorangina/mau/deck"
	"github.com/minaorangina/mau/players"
)

// isLegalPlay reports whether card may go on top of previous.
// Jacks and Jokers always may. While a wish is active the wished suit
// stands in for the previous card's suit and nothing else matches.
func isLegalPlay(card, previous deck.Card, wish *deck.Suit) bool {
	if card.IsJoker() || card.Rank == deck.Jack {
		return true
	}
	if wish != nil {
		return card.Suit == *wish
	}
	return card.Suit == previous.Suit || card.Rank == previous.Rank
}

func (g *Game) isLegal(card deck.Card) bool {
	top, ok := g.discard.Top()
	if !ok {
		return true
	}
	return isLegalPlay(card, top, g.wish)
}

// legalMoves lists the cards in the player's hand that may be played now
func (g *Game) legalMoves(p *players.Player) []deck.Card {
	moves := []deck.Card{}
	for _, c := range p.Hand() {
		if g.isLegal(c) {
			moves = append(moves, c)
		}
	}
	return moves
}

func containsCard(cards []deck.Card, target deck.Card) bool {
	for _, c := range cards {
		if c == target {
			return true
		}
	}
	return false
}

// chainPenalty is how many cards a Seven or Joker adds to a chain
func chainPenalty(c deck.Card) int {
	if c.IsJoker() {
		return 10
	}
	return 3
}
