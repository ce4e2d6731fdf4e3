package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/mau/deck"
	"github.com/minaorangina/mau/players"
	"github.com/minaorangina/mau/protocol"
	"go.uber.org/zap"
)

func (g *Game) currentPlayer() *players.Player {
	return g.players[g.currentIdx]
}

func (g *Game) previousCard() deck.Card {
	top, _ := g.discard.Top()
	return top
}

// seatAhead is the seat k places after the current one in the direction of play.
func (g *Game) seatAhead(k int) int {
	n := len(g.players)
	return ((g.currentIdx+k*g.direction)%n + n) % n
}

func (g *Game) advance() {
	g.currentIdx = g.seatAhead(1)
}

func (g *Game) reverse() {
	g.direction *= -1
	g.emit(protocol.Event{Command: protocol.Reverse, Direction: g.direction})
	g.logger.Debug("direction reversed", zap.Int("direction", g.direction))
}

func (g *Game) setWish(p *players.Player, suit deck.Suit) error {
	if suit < deck.Diamonds || suit >= deck.Joker {
		return fmt.Errorf("%w: %s wished for %s", ErrIllegalMove, p.Name, suit)
	}
	g.wish = &suit

	e := g.playerEvent(protocol.Wish, p)
	e.Suit = suit.String()
	g.emit(e)
	g.logger.Debug("wishes for suit", zap.String("player", p.Name), zap.Stringer("suit", suit))

	return nil
}

// opponentsInSeatOrder starts with the seat after the current player.
func (g *Game) opponentsInSeatOrder() players.Players {
	n := len(g.players)
	opponents := players.Players{}
	for i := 1; i < n; i++ {
		opponents = append(opponents, g.players[(g.currentIdx+i)%n])
	}
	return opponents
}

// applyPlay moves card from the player's hand to the discard pile.
// Playing the wished suit fulfils the wish.
func (g *Game) applyPlay(p *players.Player, card deck.Card) error {
	if !p.RemoveCard(card) {
		return fmt.Errorf("%w: %s does not hold %s", ErrIllegalMove, p.Name, card)
	}
	g.discard.Push(card)
	if g.wish != nil && card.Suit == *g.wish {
		g.wish = nil
	}

	e := g.playerEvent(protocol.PlayCard, p)
	e.Card = card.String()
	g.emit(e)
	g.logger.Debug("plays card",
		zap.String("player", p.Name),
		zap.Stringer("card", card),
		zap.Int("cards_left", p.HandSize()))

	return nil
}

// drawOneFor gives the player the front card of the draw pile. An empty
// pile is refilled from the discard pile, keeping its top card. When that
// leaves nothing to draw the round is a stalemate and ok is false.
func (g *Game) drawOneFor(p *players.Player) (card deck.Card, ok bool) {
	c, err := g.draw.Draw()
	if errors.Is(err, deck.ErrEmptyPile) {
		g.reclaim()
		c, err = g.draw.Draw()
	}
	if err != nil {
		g.stalemate = true
		g.logger.Debug("nothing left to draw", zap.String("player", p.Name))
		return deck.Card{}, false
	}
	p.AddCard(c)

	g.emit(g.playerEvent(protocol.DrawCard, p))
	g.logger.Debug("draws card", zap.String("player", p.Name), zap.Int("draw_pile", g.draw.Len()))

	return c, true
}

func (g *Game) reclaim() {
	reclaimed := g.discard.Reclaim()
	if len(reclaimed) == 0 {
		return
	}
	g.draw.Refill(reclaimed, g.shuffler)

	g.emit(protocol.Event{Command: protocol.Reclaim, Count: len(reclaimed)})
	g.logger.Debug("discard pile shuffled into draw pile", zap.Int("cards", len(reclaimed)))
}

// cardCount is the number of cards in play across piles and hands
func (g *Game) cardCount() int {
	return g.draw.Len() + g.discard.Len() + g.players.CardCount()
}
