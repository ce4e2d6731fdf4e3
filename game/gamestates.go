package game

import (
	"fmt"

	"github.com/minaorangina/mau/deck"
	"github.com/minaorangina/mau/players"
	"github.com/minaorangina/mau/protocol"
	"go.uber.org/zap"
)

type stateKind int

const (
	playing stateKind = iota
	drawing
	postDraw
	optionalChaining
	effect
	chainingEffect
	end
)

var stateNames = []string{
	"Playing", "Drawing", "PostDraw", "OptionalChaining", "Effect", "ChainingEffect", "End",
}

func (k stateKind) String() string {
	return stateNames[k]
}

// chain tracks a run of Sevens or Jokers passed around the table.
type chain struct {
	rank      deck.Rank
	drawCount int
	depth     int
}

func (c chain) matches(card deck.Card) bool {
	if c.rank == deck.BlackJoker || c.rank == deck.RedJoker {
		return card.IsJoker()
	}
	return card.Rank == c.rank
}

// state is one step of a turn. allowPass marks the card playing states in
// which the player may decline to play.
type state struct {
	kind      stateKind
	allowPass bool
	card      deck.Card
	chain     chain
}

func (s state) String() string {
	return s.kind.String()
}

func playingState() state {
	return state{kind: playing}
}

func drawingState() state {
	return state{kind: drawing}
}

func postDrawState() state {
	return state{kind: postDraw, allowPass: true}
}

func optionalChainingState() state {
	return state{kind: optionalChaining, allowPass: true}
}

func effectState(card deck.Card) state {
	return state{kind: effect, card: card}
}

func chainingState(c chain) state {
	return state{kind: chainingEffect, chain: c}
}

func endState() state {
	return state{kind: end}
}

// execute runs one state to completion and returns the next one.
func (g *Game) execute(s state) (state, error) {
	switch s.kind {
	case playing, postDraw, optionalChaining:
		return g.playCard(s)
	case drawing:
		return g.drawCard()
	case effect:
		return g.resolveEffect(s.card)
	case chainingEffect:
		return g.resolveChain(s.chain)
	case end:
		return s, nil
	}
	return s, fmt.Errorf("%w: %d", ErrInvalidGameState, s.kind)
}

func (g *Game) playCard(s state) (state, error) {
	p := g.currentPlayer()

	if s.kind == playing && p.ConsumeSkip() {
		g.emit(g.playerEvent(protocol.SkipTurn, p))
		g.logger.Debug("skips turn", zap.String("player", p.Name), zap.Int("skips_left", p.SkipCount()))
		g.advance()
		return playingState(), nil
	}

	legalMoves := g.legalMoves(p)
	card, ok, err := g.choose(p, legalMoves)
	if err != nil {
		return s, err
	}

	if !ok {
		if !s.allowPass {
			return drawingState(), nil
		}
		g.advance()
		return playingState(), nil
	}

	if err := g.applyPlay(p, card); err != nil {
		return s, err
	}
	if p.HandSize() == 0 {
		g.winner = p
		return endState(), nil
	}
	if card.IsSpecial() {
		return effectState(card), nil
	}

	g.advance()
	return playingState(), nil
}

// choose asks the player's strategy for one of options. Nothing is asked
// when there are no options.
func (g *Game) choose(p *players.Player, options []deck.Card) (deck.Card, bool, error) {
	if len(options) == 0 {
		return deck.Card{}, false, nil
	}

	offered := make([]deck.Card, len(options))
	copy(offered, options)

	card, ok := p.Strategy.Play(p.Hand(), g.previousCard(), offered)
	if !ok {
		return deck.Card{}, false, nil
	}
	if !containsCard(options, card) {
		return deck.Card{}, false, fmt.Errorf("%w: %s chose %s, legal moves were %v", ErrIllegalMove, p.Name, card, options)
	}
	return card, true, nil
}

func (g *Game) drawCard() (state, error) {
	p := g.currentPlayer()

	card, ok := g.drawOneFor(p)
	if !ok {
		return endState(), nil
	}
	if g.isLegal(card) {
		return postDrawState(), nil
	}

	if g.draw.Len() == 0 {
		// drew the last card and could not use it
		p.AddSkip()
	}

	g.advance()
	return playingState(), nil
}

func (g *Game) resolveEffect(card deck.Card) (state, error) {
	p := g.currentPlayer()

	switch {
	case card.Rank == deck.Ace:
		for _, opponent := range g.opponentsInSeatOrder() {
			if _, ok := g.drawOneFor(opponent); !ok {
				return endState(), nil
			}
		}
		// same player goes again
		return playingState(), nil

	case card.Rank == deck.Ten:
		g.reverse()
		return optionalChainingState(), nil

	case card.Rank == deck.Seven, card.IsJoker():
		return chainingState(chain{rank: card.Rank, drawCount: chainPenalty(card)}), nil

	case card.Rank == deck.Jack:
		suit := p.Strategy.ChooseSuit(p.Hand(), g.previousCard())
		if err := g.setWish(p, suit); err != nil {
			return effectState(card), err
		}
		g.advance()
		return playingState(), nil
	}

	return effectState(card), fmt.Errorf("%w: %s has no effect", ErrInvalidGameState, card)
}

// resolveChain offers the next seat in the chain the chance to answer.
// Whoever cannot answer draws the whole penalty, and play resumes after them.
func (g *Game) resolveChain(c chain) (state, error) {
	targetIdx := g.seatAhead(c.depth + 1)
	target := g.players[targetIdx]

	matching := []deck.Card{}
	for _, card := range target.Hand() {
		if c.matches(card) {
			matching = append(matching, card)
		}
	}

	card, ok, err := g.choose(target, matching)
	if err != nil {
		return chainingState(c), err
	}

	if ok {
		if err := g.applyPlay(target, card); err != nil {
			return chainingState(c), err
		}
		e := g.playerEvent(protocol.ChainPlay, target)
		e.Card = card.String()
		g.emit(e)

		if target.HandSize() == 0 {
			g.winner = target
			return endState(), nil
		}

		c.drawCount += chainPenalty(card)
		c.depth++
		return chainingState(c), nil
	}

	e := g.playerEvent(protocol.Penalty, target)
	e.Count = c.drawCount
	g.emit(e)
	g.logger.Debug("draws chain penalty",
		zap.String("player", target.Name),
		zap.Int("cards", c.drawCount),
		zap.Int("chain_depth", c.depth))

	for i := 0; i < c.drawCount; i++ {
		if _, ok := g.drawOneFor(target); !ok {
			return endState(), nil
		}
	}

	g.currentIdx = targetIdx
	g.advance()
	return playingState(), nil
}
