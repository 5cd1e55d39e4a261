package domain

import "fmt"

// Suit identifies a card suit. Jokers carry SuitNone.
type Suit string

const (
	SuitSpades   Suit = "S"
	SuitHearts   Suit = "H"
	SuitDiamonds Suit = "D"
	SuitClubs    Suit = "C"
	SuitNone     Suit = ""
)

// Suits lists the four real suits in deck order.
var Suits = []Suit{SuitSpades, SuitHearts, SuitDiamonds, SuitClubs}

// Rank identifies a card rank. Numeric ranks use their face value.
type Rank int

const (
	RankTwo   Rank = 2
	RankThree Rank = 3
	RankFour  Rank = 4
	RankFive  Rank = 5
	RankSix   Rank = 6
	RankSeven Rank = 7
	RankEight Rank = 8
	RankNine  Rank = 9
	RankTen   Rank = 10
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
	RankAce   Rank = 14
	RankJoker Rank = 15
)

// Card represents a playing card in domain terms.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// IsFeeder reports whether the rank forces the next player to draw (2, 3, Joker).
func (c Card) IsFeeder() bool {
	return c.Rank == RankTwo || c.Rank == RankThree || c.Rank == RankJoker
}

// FeedAmount returns the number of cards a feeder adds to the pending draw stack.
func (c Card) FeedAmount() int {
	switch c.Rank {
	case RankTwo:
		return 2
	case RankThree:
		return 3
	case RankJoker:
		return 5
	default:
		return 0
	}
}

// CanCounterFeed reports whether the card may be played while a forced draw is
// outstanding: feeders extend the stack, a King reflects it, an Ace cancels it.
func (c Card) CanCounterFeed() bool {
	return c.IsFeeder() || c.Rank == RankKing || c.Rank == RankAce
}

func (r Rank) String() string {
	switch {
	case r >= RankTwo && r <= RankTen:
		return fmt.Sprintf("%d", int(r))
	case r == RankJack:
		return "J"
	case r == RankQueen:
		return "Q"
	case r == RankKing:
		return "K"
	case r == RankAce:
		return "A"
	case r == RankJoker:
		return "JOKER"
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

func (c Card) String() string {
	if c.Rank == RankJoker {
		return "JOKER"
	}
	return c.Rank.String() + string(c.Suit)
}
