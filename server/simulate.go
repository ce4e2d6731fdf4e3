package server

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/minaorangina/mau/game"
	"github.com/minaorangina/mau/players"
	"github.com/minaorangina/mau/protocol"
	"github.com/minaorangina/mau/store"
	"go.uber.org/zap"
)

const maxRounds = 100

type PlayerReq struct {
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
}

type NewGameReq struct {
	Players []PlayerReq `json:"players"`
	Rounds  int         `json:"rounds"`
	Seed    int64       `json:"seed"`
}

// simulate plays a whole bot-only game and records what happened.
func simulate(req NewGameReq, logger *zap.Logger) (store.Simulation, error) {
	if req.Rounds < 0 || req.Rounds > maxRounds {
		return store.Simulation{}, fmt.Errorf("%w: rounds must be between 1 and %d", game.ErrInvalidConfiguration, maxRounds)
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ps := players.Players{}
	for i, pr := range req.Players {
		s, err := players.StrategyByName(pr.Strategy, rng)
		if err != nil {
			return store.Simulation{}, fmt.Errorf("%w: %v", game.ErrInvalidConfiguration, err)
		}
		name := pr.Name
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		ps = append(ps, players.NewPlayer("", name, s))
	}

	gameID := store.NewGameID()
	sim := store.Simulation{GameID: gameID, CreatedAt: time.Now()}

	g, err := game.New(ps,
		game.WithSeed(seed),
		game.WithLogger(logger.With(zap.String("game_id", gameID))),
		game.WithListener(func(e protocol.Event) {
			sim.Events = append(sim.Events, e)
		}))
	if err != nil {
		return store.Simulation{}, err
	}

	results, err := g.PlayGame(req.Rounds)
	if err != nil {
		return store.Simulation{}, err
	}

	for _, res := range results {
		sim.Rounds = append(sim.Rounds, res.Summary())
	}
	for _, p := range g.Players() {
		sim.Players = append(sim.Players, protocol.PlayerInfo{PlayerID: p.ID, Name: p.Name, Score: p.Score()})
	}

	logger.Info("simulation finished",
		zap.String("game_id", gameID),
		zap.Int64("seed", seed),
		zap.Int("rounds", len(results)),
		zap.Int("events", len(sim.Events)))

	return sim, nil
}
