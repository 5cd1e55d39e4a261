package internal

import (
	"testing"

	"kadi/internal/domain"
)

func card(rank domain.Rank, suit domain.Suit) domain.Card {
	return domain.Card{Rank: rank, Suit: suit}
}

func tableGame(top domain.Card) *domain.Game {
	return &domain.Game{
		Phase:     domain.PhasePlaying,
		Direction: 1,
		Pile:      []domain.Card{top},
	}
}

func TestGetValidMovesSinglesAndGroups(t *testing.T) {
	g := tableGame(card(domain.RankFive, domain.SuitHearts))
	hand := []domain.Card{
		card(domain.RankFive, domain.SuitClubs),    // playable by rank
		card(domain.RankFive, domain.SuitDiamonds), // playable by rank
		card(domain.RankNine, domain.SuitHearts),   // playable by suit
		card(domain.RankTen, domain.SuitSpades),    // dead
	}

	moves := GetValidMoves(g, hand)

	var singles, groups int
	for _, m := range moves {
		switch len(m.Cards) {
		case 1:
			singles++
		default:
			groups++
			if m.Cards[0].Rank != domain.RankFive || len(m.Cards) != 2 {
				t.Fatalf("unexpected group %v", m.Cards)
			}
		}
	}
	if singles != 3 {
		t.Fatalf("singles = %d, want 3", singles)
	}
	if groups != 1 {
		t.Fatalf("groups = %d, want exactly one five-pair", groups)
	}
}

func TestGetValidMovesUnderForcedDraw(t *testing.T) {
	g := tableGame(card(domain.RankTwo, domain.SuitHearts))
	g.ForcedDraw = 2
	hand := []domain.Card{
		card(domain.RankTwo, domain.SuitClubs),
		card(domain.RankKing, domain.SuitSpades),
		card(domain.RankNine, domain.SuitHearts), // not a counter
	}

	moves := GetValidMoves(g, hand)
	for _, m := range moves {
		if !m.Cards[0].CanCounterFeed() {
			t.Fatalf("non-counter %v offered under a forced draw", m.Cards)
		}
	}
	if len(moves) != 2 {
		t.Fatalf("moves = %d, want 2 counters", len(moves))
	}
}

func TestGetValidMovesEmptyWhenNothingFits(t *testing.T) {
	g := tableGame(card(domain.RankFive, domain.SuitHearts))
	hand := []domain.Card{card(domain.RankTen, domain.SuitSpades)}
	if moves := GetValidMoves(g, hand); len(moves) != 0 {
		t.Fatalf("moves = %v, want none", moves)
	}
}

func TestBestRequestSuit(t *testing.T) {
	hand := []domain.Card{
		card(domain.RankFour, domain.SuitDiamonds),
		card(domain.RankSix, domain.SuitDiamonds),
		card(domain.RankNine, domain.SuitDiamonds),
		card(domain.RankTen, domain.SuitSpades),
		card(domain.RankJoker, domain.SuitNone),
	}
	if got := BestRequestSuit(hand); got != domain.SuitDiamonds {
		t.Fatalf("request suit = %q, want D", got)
	}
	if got := BestRequestSuit(nil); got != domain.SuitSpades {
		t.Fatalf("empty-hand request suit = %q, want fallback S", got)
	}
}
