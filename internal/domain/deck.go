package domain

import (
	"errors"
	"math/rand"
)

// JokersPerDeck is the number of jokers shuffled into a fresh deck.
const JokersPerDeck = 2

// ErrDeckExhausted is returned when a draw cannot be satisfied and the pile
// holds too few cards to rebuild the deck.
var ErrDeckExhausted = errors.New("deck exhausted and discard pile cannot be reshuffled")

// NewDeck returns an ordered 54-card deck (52 suited cards plus two jokers).
func NewDeck() []Card {
	deck := make([]Card, 0, 54)
	for _, s := range Suits {
		for r := RankTwo; r <= RankAce; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	for i := 0; i < JokersPerDeck; i++ {
		deck = append(deck, Card{Suit: SuitNone, Rank: RankJoker})
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(rng *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// DrawFromDeck removes up to n cards from the draw deck. When the deck runs
// out mid-draw, all but the top pile card are reshuffled into a fresh deck and
// the draw continues. Fails with ErrDeckExhausted when the pile holds fewer
// than two cards and the deck is empty; cards drawn before the failure stay
// drawn so the caller decides whether the shortfall ends the match.
func (g *Game) DrawFromDeck(rng *rand.Rand, n int) ([]Card, error) {
	drawn := make([]Card, 0, n)
	for len(drawn) < n {
		if len(g.Deck) == 0 {
			if len(g.Pile) < 2 {
				return drawn, ErrDeckExhausted
			}
			g.reshuffleFromPile(rng)
		}
		drawn = append(drawn, g.Deck[0])
		g.Deck = g.Deck[1:]
	}
	return drawn, nil
}

// reshuffleFromPile rebuilds the draw deck from every pile card except the top.
func (g *Game) reshuffleFromPile(rng *rand.Rand) {
	top := g.Pile[len(g.Pile)-1]
	g.Deck = ShuffleDeck(rng, g.Pile[:len(g.Pile)-1])
	g.Pile = []Card{top}
}

// ReturnToDeck shuffles the given cards back into the draw deck. Used when an
// eliminated player's hand re-enters play.
func (g *Game) ReturnToDeck(rng *rand.Rand, cards []Card) {
	g.Deck = ShuffleDeck(rng, append(g.Deck, cards...))
}
