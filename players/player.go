package players

import (
	"github.com/minaorangina/mau/deck"
	uuid "github.com/satori/go.uuid"
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player holds one participant's cards and bookkeeping for a game.
// Hand changes go through the round engine.
type Player struct {
	ID       string
	Name     string
	Strategy Strategy

	hand      []deck.Card
	score     int
	skipCount int
}

// NewPlayer constructs a new player
func NewPlayer(id, name string, s Strategy) *Player {
	if id == "" {
		id = NewID()
	}
	return &Player{ID: id, Name: name, Strategy: s, hand: []deck.Card{}}
}

func (p *Player) String() string {
	return p.Name
}

// Hand returns a copy of the player's cards
func (p *Player) Hand() []deck.Card {
	h := make([]deck.Card, len(p.hand))
	copy(h, p.hand)
	return h
}

func (p *Player) HandSize() int {
	return len(p.hand)
}

func (p *Player) HasCard(c deck.Card) bool {
	for _, h := range p.hand {
		if h == c {
			return true
		}
	}
	return false
}

func (p *Player) AddCard(c deck.Card) {
	p.hand = append(p.hand, c)
}

// RemoveCard removes one copy of c from the hand.
func (p *Player) RemoveCard(c deck.Card) bool {
	for i, h := range p.hand {
		if h == c {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			return true
		}
	}
	return false
}

// SetHand replaces the hand. Used when dealing.
func (p *Player) SetHand(cards []deck.Card) {
	p.hand = make([]deck.Card, len(cards))
	copy(p.hand, cards)
}

// HandValue sums the penalty value of every card in hand
func (p *Player) HandValue() int {
	total := 0
	for _, c := range p.hand {
		total += c.Value()
	}
	return total
}

func (p *Player) Score() int {
	return p.score
}

// Tally adds the hand value to the score and returns the amount added.
func (p *Player) Tally() int {
	v := p.HandValue()
	p.score += v
	return v
}

func (p *Player) SkipCount() int {
	return p.skipCount
}

func (p *Player) AddSkip() {
	p.skipCount++
}

// ConsumeSkip uses up one skipped turn, reporting whether there was one.
func (p *Player) ConsumeSkip() bool {
	if p.skipCount == 0 {
		return false
	}
	p.skipCount--
	return true
}

// ResetRound clears per-round state, keeping the score.
func (p *Player) ResetRound() {
	p.hand = []deck.Card{}
	p.skipCount = 0
}

// Players represents all players in the game, in seating order
type Players []*Player

// NewPlayers returns a set of Players
func NewPlayers(p ...*Player) Players {
	return Players(p)
}

// Find finds a player by id
func (ps Players) Find(id string) (*Player, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// CardCount is the number of cards held across all hands
func (ps Players) CardCount() int {
	n := 0
	for _, p := range ps {
		n += len(p.hand)
	}
	return n
}
