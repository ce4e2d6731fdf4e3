package players

import (
	"fmt"
	"math/rand"
)

// SomePlayers builds n players who all play randomly from rng.
func SomePlayers(n int, rng *rand.Rand) Players {
	ps := Players{}
	for i := 0; i < n; i++ {
		ps = append(ps, NewPlayer(fmt.Sprintf("player-%d", i+1), fmt.Sprintf("Player %d", i+1), NewRandomStrategy(rng)))
	}
	return ps
}
