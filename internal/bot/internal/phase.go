package internal

import (
	"kadi/internal/domain"
)

// GamePhase is a coarse read of how far along the game is, from the acting
// player's point of view.
type GamePhase int

const (
	PhaseOpening GamePhase = iota
	PhaseMid
	PhaseEnd
)

// DetectPhase classifies the game by the acting player's hand size. Big hands
// mean shedding freely; small hands mean setting up the finish.
func DetectPhase(hand []domain.Card) GamePhase {
	switch {
	case len(hand) <= 2:
		return PhaseEnd
	case len(hand) <= 4:
		return PhaseMid
	default:
		return PhaseOpening
	}
}

// DetectThreat reports whether any opponent's hand is at or below the
// threshold, meaning they could go out soon.
func DetectThreat(g *domain.Game, self *domain.Player, threshold int) bool {
	if threshold <= 0 {
		return false
	}
	for _, p := range g.Players {
		if p == self {
			continue
		}
		if len(p.Hand) > 0 && len(p.Hand) <= threshold {
			return true
		}
	}
	return false
}
