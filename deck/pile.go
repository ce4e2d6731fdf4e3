package deck

import "errors"

var ErrEmptyPile = errors.New("no cards left to draw")

// DrawPile is the face-down stock. Cards are drawn from the front.
type DrawPile struct {
	cards []Card
}

func NewDrawPile(cards []Card) *DrawPile {
	c := make([]Card, len(cards))
	copy(c, cards)
	return &DrawPile{cards: c}
}

func (p *DrawPile) Len() int {
	return len(p.cards)
}

// Draw removes and returns the front card
func (p *DrawPile) Draw() (Card, error) {
	if len(p.cards) == 0 {
		return Card{}, ErrEmptyPile
	}
	c := p.cards[0]
	p.cards = p.cards[1:]
	return c, nil
}

// Refill appends cards to the back of the pile and reshuffles the whole pile.
func (p *DrawPile) Refill(cards []Card, s Shuffler) {
	p.cards = append(p.cards, cards...)
	s.Shuffle(p.cards)
}

func (p *DrawPile) Shuffle(s Shuffler) {
	s.Shuffle(p.cards)
}

// Cards returns a copy of the pile, front first
func (p *DrawPile) Cards() []Card {
	c := make([]Card, len(p.cards))
	copy(c, p.cards)
	return c
}

// DiscardPile is the face-up stack. Its last card is the previous card.
type DiscardPile struct {
	cards []Card
}

func NewDiscardPile(cards ...Card) *DiscardPile {
	c := make([]Card, len(cards))
	copy(c, cards)
	return &DiscardPile{cards: c}
}

func (p *DiscardPile) Len() int {
	return len(p.cards)
}

func (p *DiscardPile) Push(c Card) {
	p.cards = append(p.cards, c)
}

// Top returns the previous card, if any
func (p *DiscardPile) Top() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// Reclaim removes every card except the top one and returns them.
func (p *DiscardPile) Reclaim() []Card {
	if len(p.cards) < 2 {
		return nil
	}
	n := len(p.cards) - 1
	reclaimed := make([]Card, n)
	copy(reclaimed, p.cards[:n])
	p.cards = []Card{p.cards[n]}
	return reclaimed
}

func (p *DiscardPile) Cards() []Card {
	c := make([]Card, len(p.cards))
	copy(c, p.cards)
	return c
}
