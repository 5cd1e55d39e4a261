package internal

import (
	"sort"

	"kadi/internal/domain"
)

// ValidMove represents a possible legal play: one or more cards of a single
// rank whose first card is playable on the current table.
type ValidMove struct {
	Cards []domain.Card
}

// GetValidMoves returns every legal play for the hand against the current
// table state. For each playable card the single is offered, plus one grouped
// move laying every copy of that rank at once.
func GetValidMoves(g *domain.Game, hand []domain.Card) []ValidMove {
	top, hasTop := g.TopCard()

	var moves []ValidMove
	groupedRanks := make(map[domain.Rank]bool)
	for _, c := range hand {
		if !domain.IsPlayable(c, top, hasTop, g.RequestedSuit, g.ForcedDraw) {
			continue
		}
		moves = append(moves, ValidMove{Cards: []domain.Card{c}})

		if groupedRanks[c.Rank] {
			continue
		}
		group := []domain.Card{c}
		for _, other := range hand {
			if other.Rank == c.Rank && other != c {
				group = append(group, other)
			}
		}
		if len(group) > 1 {
			groupedRanks[c.Rank] = true
			moves = append(moves, ValidMove{Cards: group})
		}
	}
	return moves
}

// SuitCounts tallies how many cards of each suit the hand holds. Jokers carry
// no suit and are not counted.
func SuitCounts(hand []domain.Card) map[domain.Suit]int {
	counts := make(map[domain.Suit]int)
	for _, c := range hand {
		if c.Suit != domain.SuitNone {
			counts[c.Suit]++
		}
	}
	return counts
}

// BestRequestSuit picks the suit an Ace should request: the one the hand is
// longest in, so the requester keeps the most follow-ups. Ties break in a
// fixed suit order to stay deterministic.
func BestRequestSuit(hand []domain.Card) domain.Suit {
	counts := SuitCounts(hand)
	suits := make([]domain.Suit, 0, len(counts))
	for s := range counts {
		suits = append(suits, s)
	}
	sort.Slice(suits, func(i, j int) bool {
		if counts[suits[i]] != counts[suits[j]] {
			return counts[suits[i]] > counts[suits[j]]
		}
		return suits[i] < suits[j]
	})
	if len(suits) == 0 {
		return domain.SuitSpades
	}
	return suits[0]
}
