package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/minaorangina/mau/deck"
	"github.com/minaorangina/mau/players"
	"github.com/minaorangina/mau/protocol"
	"go.uber.org/zap"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrTooFewPlayers        = fmt.Errorf("%w: minimum of %d players required", ErrInvalidConfiguration, minPlayers)
	ErrTooManyPlayers       = fmt.Errorf("%w: maximum of %d players allowed", ErrInvalidConfiguration, maxPlayers)
	ErrIllegalMove          = errors.New("illegal move")
	ErrRoundNotSetUp        = errors.New("round has not been set up")
	ErrInvalidGameState     = errors.New("invalid game state")
)

const (
	minPlayers    = 2
	maxPlayers    = 7
	handSize      = 7
	defaultRounds = 4
)

// RoundResult is the outcome of a round. Stalemate rounds have no winner
// but are still scored.
type RoundResult struct {
	Round     int
	Winner    *players.Player
	Stalemate bool
	Deltas    map[string]int
}

// Summary converts the result for observers
func (r RoundResult) Summary() protocol.RoundSummary {
	s := protocol.RoundSummary{Round: r.Round, Stalemate: r.Stalemate, Deltas: r.Deltas}
	if r.Winner != nil {
		s.WinnerID = r.Winner.ID
	}
	return s
}

// Game is the round engine. It owns the piles, the seating and the active
// wish, and is the only thing that moves cards between them.
type Game struct {
	players  players.Players
	draw     *deck.DrawPile
	discard  *deck.DiscardPile
	shuffler deck.Shuffler

	currentIdx int
	direction  int
	wish       *deck.Suit
	winner     *players.Player
	stalemate  bool
	round      int

	logger   *zap.Logger
	listener func(protocol.Event)
}

type Option func(*Game)

func WithShuffler(s deck.Shuffler) Option {
	return func(g *Game) { g.shuffler = s }
}

// WithSeed makes shuffling reproducible
func WithSeed(seed int64) Option {
	return func(g *Game) { g.shuffler = deck.NewRandShuffler(rand.New(rand.NewSource(seed))) }
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithListener registers a callback for every table event
func WithListener(fn func(protocol.Event)) Option {
	return func(g *Game) { g.listener = fn }
}

// New constructs a game for the given players, seated in order
func New(ps players.Players, opts ...Option) (*Game, error) {
	if len(ps) < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(ps) > maxPlayers {
		return nil, ErrTooManyPlayers
	}
	for _, p := range ps {
		if p == nil || p.Strategy == nil {
			return nil, fmt.Errorf("%w: every player needs a strategy", ErrInvalidConfiguration)
		}
	}

	g := &Game{
		players:   ps,
		direction: 1,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.shuffler == nil {
		g.shuffler = deck.NewRandShuffler(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	return g, nil
}

func (g *Game) Players() players.Players {
	return g.players
}

func (g *Game) Round() int {
	return g.round
}

// SetupRound shuffles a blue and a red deck together, turns the first card
// face up and deals each player a fresh hand.
func (g *Game) SetupRound() error {
	g.round++
	g.currentIdx = 0
	g.direction = 1
	g.wish = nil
	g.winner = nil
	g.stalemate = false

	stack := deck.NewStack(deck.Blue, deck.Red)
	stack.Shuffle(g.shuffler)
	g.draw = deck.NewDrawPile(stack)

	first, err := g.draw.Draw()
	if err != nil {
		return err
	}
	g.discard = deck.NewDiscardPile(first)

	for _, p := range g.players {
		p.ResetRound()
		for i := 0; i < handSize; i++ {
			c, err := g.draw.Draw()
			if err != nil {
				return err
			}
			p.AddCard(c)
		}
	}

	g.emit(protocol.Event{Command: protocol.RoundStarted, Card: first.String()})
	g.logger.Debug("round set up",
		zap.Int("round", g.round),
		zap.Int("players", len(g.players)),
		zap.Stringer("first_card", first))

	return nil
}

// PlayRound sets up and plays one round to completion, returning each
// player's score delta.
func (g *Game) PlayRound() (RoundResult, error) {
	if err := g.SetupRound(); err != nil {
		return RoundResult{}, err
	}
	return g.run(playingState())
}

// PlayGame plays n rounds, accumulating scores on the players.
func (g *Game) PlayGame(n int) ([]RoundResult, error) {
	if n <= 0 {
		n = defaultRounds
	}
	results := []RoundResult{}
	for i := 0; i < n; i++ {
		res, err := g.PlayRound()
		if err != nil {
			return results, fmt.Errorf("round %d: %w", g.round, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (g *Game) run(s state) (RoundResult, error) {
	if g.draw == nil || g.discard == nil {
		return RoundResult{}, ErrRoundNotSetUp
	}

	var err error
	for s.kind != end {
		s, err = g.execute(s)
		if err != nil {
			g.logger.Error("round aborted", zap.Int("round", g.round), zap.Error(err))
			return RoundResult{}, err
		}
	}
	return g.endRound(), nil
}

// endRound adds every remaining hand to its owner's score.
func (g *Game) endRound() RoundResult {
	res := RoundResult{
		Round:     g.round,
		Winner:    g.winner,
		Stalemate: g.stalemate,
		Deltas:    map[string]int{},
	}
	for _, p := range g.players {
		res.Deltas[p.ID] = p.Tally()
	}

	if g.winner != nil {
		g.emit(protocol.Event{Command: protocol.RoundOver, PlayerID: g.winner.ID, Name: g.winner.Name})
		g.logger.Info("round won", zap.Int("round", g.round), zap.String("winner", g.winner.Name))
	} else {
		g.emit(protocol.Event{Command: protocol.Stalemate})
		g.logger.Info("round ended in stalemate", zap.Int("round", g.round))
	}
	for _, p := range g.players {
		g.logger.Debug("score",
			zap.String("player", p.Name),
			zap.Int("delta", res.Deltas[p.ID]),
			zap.Int("score", p.Score()))
	}

	return res
}

func (g *Game) emit(e protocol.Event) {
	if g.listener == nil {
		return
	}
	e.Round = g.round
	g.listener(e)
}

func (g *Game) playerEvent(cmd protocol.Cmd, p *players.Player) protocol.Event {
	return protocol.Event{Command: cmd, PlayerID: p.ID, Name: p.Name, HandSize: p.HandSize()}
}
