package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/minaorangina/mau/config"
	"github.com/minaorangina/mau/game"
	"github.com/minaorangina/mau/players"
	"github.com/minaorangina/mau/protocol"
	"go.uber.org/zap"
)

func main() {
	verbose := flag.Bool("v", false, "print every table event")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err.Error())
	}
	defer logger.Sync()

	seed := cfg.SeedOrNow()
	rng := rand.New(rand.NewSource(seed))

	ps := players.Players{}
	for i := 0; i < cfg.Players; i++ {
		s, err := players.StrategyByName(cfg.Strategy, rng)
		if err != nil {
			logger.Fatal("could not build strategy", zap.Error(err))
		}
		ps = append(ps, players.NewPlayer("", fmt.Sprintf("Player %d", i+1), s))
	}

	opts := []game.Option{game.WithSeed(seed), game.WithLogger(logger)}
	if *verbose {
		opts = append(opts, game.WithListener(func(e protocol.Event) {
			printEvent(e)
			if e.Command == protocol.RoundOver || e.Command == protocol.Stalemate {
				for _, p := range ps {
					players.SendText(os.Stdout, "%s", players.HandText(p))
				}
			}
		}))
	}

	g, err := game.New(ps, opts...)
	if err != nil {
		logger.Fatal("could not initialise a new game", zap.Error(err))
	}

	logger.Info("starting game",
		zap.Int("players", cfg.Players),
		zap.Int("rounds", cfg.Rounds),
		zap.Int64("seed", seed),
		zap.String("strategy", cfg.Strategy))

	results, err := g.PlayGame(cfg.Rounds)
	if err != nil {
		logger.Fatal("game aborted", zap.Error(err))
	}

	for _, res := range results {
		outcome := "stalemate"
		if res.Winner != nil {
			outcome = res.Winner.Name + " wins"
		}
		players.SendText(os.Stdout, "Round %d: %s\n", res.Round, outcome)
		for _, p := range g.Players() {
			players.SendText(os.Stdout, "  %-10s +%d\n", p.Name, res.Deltas[p.ID])
		}
	}

	players.SendText(os.Stdout, "%s\n", strings.Repeat("-", 20))
	for _, p := range g.Players() {
		players.SendText(os.Stdout, "%-10s %d\n", p.Name, p.Score())
	}
}

func printEvent(e protocol.Event) {
	parts := []string{fmt.Sprintf("[round %d] %s", e.Round, e.Command)}
	if e.Name != "" {
		parts = append(parts, e.Name)
	}
	if e.Card != "" {
		parts = append(parts, e.Card)
	}
	if e.Suit != "" {
		parts = append(parts, "wishes "+e.Suit)
	}
	if e.Count != 0 {
		parts = append(parts, fmt.Sprintf("x%d", e.Count))
	}
	players.SendText(os.Stdout, "%s\n", strings.Join(parts, " "))
}
