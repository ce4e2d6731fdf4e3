package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/minaorangina/mau/protocol"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrUnknownGameID   = errors.New("unknown game ID")
	ErrDuplicateGameID = errors.New("game ID already exists")
)

// Simulation is a finished bot-only game and everything it emitted.
type Simulation struct {
	GameID    string                  `json:"game_id"`
	CreatedAt time.Time               `json:"created_at"`
	Players   []protocol.PlayerInfo   `json:"players"`
	Rounds    []protocol.RoundSummary `json:"rounds"`
	Events    []protocol.Event        `json:"-"`
}

type GameStore interface {
	FindGame(gameID string) (Simulation, error)
	AddGame(sim Simulation) error
	GameIDs() []string
}

func NewGameID() string {
	return uuid.NewV4().String()
}

// InMemoryGameStore maps game id to simulation
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]Simulation
	order []string
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]Simulation{},
	}
}

// NewTestGameStore is a store prefilled with sims
func NewTestGameStore(sims ...Simulation) *InMemoryGameStore {
	s := NewInMemoryGameStore()
	for _, sim := range sims {
		s.games[sim.GameID] = sim
		s.order = append(s.order, sim.GameID)
	}
	return s
}

func (s *InMemoryGameStore) FindGame(gameID string) (Simulation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sim, ok := s.games[gameID]
	if !ok {
		return Simulation{}, fmt.Errorf("%w: %q", ErrUnknownGameID, gameID)
	}
	return sim, nil
}

// AddGame stores sim under its game ID, which must be new.
func (s *InMemoryGameStore) AddGame(sim Simulation) error {
	if sim.GameID == "" {
		return fmt.Errorf("%w: %q", ErrUnknownGameID, sim.GameID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[sim.GameID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateGameID, sim.GameID)
	}
	s.games[sim.GameID] = sim
	s.order = append(s.order, sim.GameID)
	return nil
}

// GameIDs lists stored games, oldest first.
func (s *InMemoryGameStore) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}
