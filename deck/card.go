package deck

import (
	"errors"
	"fmt"
)

var ErrInvalidCard = errors.New("invalid suit and rank combination")

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Diamonds", "Clubs", "Hearts", "Spades", "Joker"}

const (
	Diamonds Suit = iota
	Clubs
	Hearts
	Spades
	Joker
)

// Suits lists every suit that can be wished for with a Jack.
var Suits = []Suit{Diamonds, Clubs, Hearts, Spades}

func (s Suit) String() string {
	if s < Diamonds || s > Joker {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{
	"Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10",
	"J", "Q", "K", "Black Joker", "Red Joker",
}

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	BlackJoker
	RedJoker
)

func (r Rank) String() string {
	if r < Ace || r > RedJoker {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

func (r Rank) isJoker() bool {
	return r == BlackJoker || r == RedJoker
}

// BackColor is the colour on the back of a card. Two decks with
// different backs are combined for a round.
type BackColor int

var backColorNames = []string{"", "blue", "red"}

const (
	NoBack BackColor = iota
	Blue
	Red
)

func (b BackColor) String() string {
	if b < NoBack || b > Red {
		return fmt.Sprintf("BackColor(%d)", int(b))
	}
	return backColorNames[b]
}

// Card is an immutable playing card
type Card struct {
	Suit Suit
	Rank Rank
	Back BackColor
}

// NewCard constructs a card, rejecting pairings such as a Joker suit with a rank of Three.
func NewCard(suit Suit, rank Rank, back BackColor) (Card, error) {
	c := Card{Suit: suit, Rank: rank, Back: back}
	if suit < Diamonds || suit > Joker || rank < Ace || rank > RedJoker || !c.IsValidCombo() {
		return Card{}, fmt.Errorf("%w: %s/%s", ErrInvalidCard, suit, rank)
	}
	return c, nil
}

func (c Card) String() string {
	var s string
	if c.Suit == Joker {
		s = c.Rank.String()
	} else {
		s = fmt.Sprintf("%s of %s", c.Rank, c.Suit)
	}
	if c.Back != NoBack {
		s += fmt.Sprintf(" with %s back", c.Back)
	}
	return s
}

// Value is the number of penalty points the card is worth at the end of a round.
func (c Card) Value() int {
	switch c.Rank {
	case Ace, Queen, King:
		return 10
	case Jack:
		return 25
	case BlackJoker, RedJoker:
		return 100
	default:
		return int(c.Rank) + 1
	}
}

func (c Card) IsJoker() bool {
	return c.Suit == Joker && c.Rank.isJoker()
}

// IsValidCombo reports whether suit and rank form a real card:
// the Joker suit only pairs with Joker ranks and vice versa.
func (c Card) IsValidCombo() bool {
	return (c.Suit != Joker && !c.Rank.isJoker()) || c.IsJoker()
}

// IsSpecial reports whether playing the card triggers an effect.
func (c Card) IsSpecial() bool {
	switch c.Rank {
	case Seven, Ten, Jack, Ace:
		return true
	}
	return c.Suit == Joker
}

// IsSignificant is used to weight the initial deal.
func (c Card) IsSignificant() bool {
	return c.IsSpecial() || c.Suit == Clubs
}
