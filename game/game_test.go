package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/minaorangina/mau/deck"
	utils "github.com/minaorangina/mau/internal"
	"github.com/minaorangina/mau/players"
	"github.com/minaorangina/mau/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullStack = 108

func seededGame(t *testing.T, n int, seed int64, opts ...Option) *Game {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := New(players.SomePlayers(n, rng), append([]Option{WithSeed(seed)}, opts...)...)
	require.NoError(t, err)
	return g
}

func TestNew(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("too few players", func(t *testing.T) {
		_, err := New(players.SomePlayers(1, rng))
		assert.ErrorIs(t, err, ErrTooFewPlayers)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("too many players", func(t *testing.T) {
		_, err := New(players.SomePlayers(maxPlayers+1, rng))
		assert.ErrorIs(t, err, ErrTooManyPlayers)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("players need a strategy", func(t *testing.T) {
		ps := players.SomePlayers(2, rng)
		ps[1].Strategy = nil
		_, err := New(ps)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("valid", func(t *testing.T) {
		for n := minPlayers; n <= maxPlayers; n++ {
			g, err := New(players.SomePlayers(n, rng))
			utils.AssertNoError(t, err)
			utils.AssertEqual(t, len(g.Players()), n)
			utils.AssertEqual(t, g.direction, 1)
		}
	})
}

func TestSetupRound(t *testing.T) {
	t.Log("Given a new game for four players")
	events := []protocol.Event{}
	g := seededGame(t, 4, 3, WithListener(func(e protocol.Event) { events = append(events, e) }))

	t.Log("When a round is set up")
	err := g.SetupRound()
	utils.AssertNoError(t, err)

	t.Log("Then every player holds seven cards and one card is face up")
	for _, p := range g.Players() {
		assert.Equal(t, handSize, p.HandSize())
	}
	assert.Equal(t, 1, g.discard.Len())
	assert.Equal(t, fullStack-1-4*handSize, g.draw.Len())
	assert.Equal(t, fullStack, g.cardCount())
	assert.Equal(t, 1, g.Round())
	assert.Nil(t, g.wish)

	require.Len(t, events, 1)
	assert.Equal(t, protocol.RoundStarted, events[0].Command)
	assert.Equal(t, 1, events[0].Round)

	t.Run("both backs are in play", func(t *testing.T) {
		backs := map[deck.BackColor]int{}
		cards := append(g.draw.Cards(), g.discard.Cards()...)
		for _, p := range g.Players() {
			cards = append(cards, p.Hand()...)
		}
		for _, c := range cards {
			backs[c.Back]++
		}
		assert.Equal(t, map[deck.BackColor]int{deck.Blue: 54, deck.Red: 54}, backs)
	})
}

func TestRunBeforeSetup(t *testing.T) {
	g := seededGame(t, 2, 1)
	_, err := g.run(playingState())
	assert.True(t, errors.Is(err, ErrRoundNotSetUp))
}

// playOut steps through a round, checking f after every step
func playOut(t *testing.T, g *Game, f func(prev, next state)) {
	t.Helper()

	s := playingState()
	for i := 0; s.kind != end; i++ {
		require.Less(t, i, 100000, "round did not finish")
		next := step(t, g, s)
		f(s, next)
		s = next
	}
}

func TestRoundInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := seededGame(t, int(seed%6)+2, seed)
		require.NoError(t, g.SetupRound())

		playOut(t, g, func(prev, next state) {
			require.Equal(t, fullStack, g.cardCount(), "cards are never created or lost")
			require.Contains(t, []int{1, -1}, g.direction)
			require.True(t, g.currentIdx >= 0 && g.currentIdx < len(g.players))

			if g.wish != nil {
				require.NotEqual(t, deck.Joker, *g.wish)
			}

			if next.kind == postDraw {
				p := g.currentPlayer()
				hand := p.Hand()
				drawn := hand[len(hand)-1]
				require.Equal(t, []deck.Card{drawn}, g.legalMoves(p), "only the drawn card is playable after a draw")
			}

			if next.kind == end && !g.stalemate {
				require.NotNil(t, g.winner)
				require.Equal(t, 0, g.winner.HandSize())
			}
		})
	}
}

func TestPlayRound(t *testing.T) {
	g := seededGame(t, 3, 42)

	var (
		res RoundResult
		err error
	)
	utils.Within(t, 5*time.Second, func() {
		res, err = g.PlayRound()
	})
	utils.AssertNoError(t, err)

	assert.Equal(t, 1, res.Round)
	require.Len(t, res.Deltas, 3)
	for _, p := range g.Players() {
		assert.Equal(t, p.HandValue(), res.Deltas[p.ID])
		assert.Equal(t, p.HandValue(), p.Score())
	}
	if res.Stalemate {
		assert.Nil(t, res.Winner)
	} else {
		require.NotNil(t, res.Winner)
		assert.Equal(t, 0, res.Deltas[res.Winner.ID])
	}

	summary := res.Summary()
	assert.Equal(t, res.Deltas, summary.Deltas)
	if res.Winner != nil {
		assert.Equal(t, res.Winner.ID, summary.WinnerID)
	}
}

func TestPlayGame(t *testing.T) {
	t.Run("scores accumulate across rounds", func(t *testing.T) {
		g := seededGame(t, 4, 7)

		results, err := g.PlayGame(3)
		utils.AssertNoError(t, err)
		require.Len(t, results, 3)

		totals := map[string]int{}
		for i, res := range results {
			assert.Equal(t, i+1, res.Round)
			for id, d := range res.Deltas {
				totals[id] += d
			}
		}
		for _, p := range g.Players() {
			assert.Equal(t, totals[p.ID], p.Score())
		}
	})

	t.Run("defaults to four rounds", func(t *testing.T) {
		g := seededGame(t, 2, 8)
		results, err := g.PlayGame(0)
		utils.AssertNoError(t, err)
		assert.Len(t, results, defaultRounds)
	})

	t.Run("same seed, same game", func(t *testing.T) {
		a, err := seededGame(t, 4, 99).PlayGame(2)
		require.NoError(t, err)
		b, err := seededGame(t, 4, 99).PlayGame(2)
		require.NoError(t, err)

		for i := range a {
			assert.Equal(t, a[i].Deltas, b[i].Deltas)
			assert.Equal(t, a[i].Stalemate, b[i].Stalemate)
		}
	})

	t.Run("illegal moves abort the game", func(t *testing.T) {
		cheat := &scripted{play: always(card(deck.Spades, deck.Ace))}
		ps := players.Players{
			players.NewPlayer("p1", "p1", cheat),
			players.NewPlayer("p2", "p2", cheat),
		}
		g, err := New(ps, WithSeed(1))
		require.NoError(t, err)

		_, err = g.PlayGame(1)
		assert.ErrorIs(t, err, ErrIllegalMove)
	})
}
