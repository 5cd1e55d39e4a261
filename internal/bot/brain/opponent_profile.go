package brain

import (
	"kadi/internal/domain"
)

// OpponentProfile tracks the behavioral history of a specific player.
type OpponentProfile struct {
	UserID string
	// CardsHeld approximates the opponent's hand size from observed plays
	// and draws.
	CardsHeld int
	// SuitDroughts counts how often the player drew while a given suit was
	// requested; repeated droughts are evidence the suit is missing.
	SuitDroughts map[domain.Suit]int
}

// NewOpponentProfile initializes a profile for a specific user.
func NewOpponentProfile(userID string) *OpponentProfile {
	return &OpponentProfile{
		UserID:       userID,
		SuitDroughts: make(map[domain.Suit]int),
	}
}

// RecordPlay logs cards played by this opponent.
func (p *OpponentProfile) RecordPlay(cards []domain.Card) {
	p.CardsHeld -= len(cards)
	if p.CardsHeld < 0 {
		p.CardsHeld = 0
	}
}

// RecordDraw notes that this opponent picked up cards, and whether a suit
// request was active at the time.
func (p *OpponentProfile) RecordDraw(count int, requested domain.Suit) {
	p.CardsHeld += count
	if requested != domain.SuitNone {
		p.SuitDroughts[requested]++
	}
}

// LikelyLacks reports whether the opponent has shown they cannot follow the
// suit. A draw may also be tactical, so one observation is not proof.
func (p *OpponentProfile) LikelyLacks(s domain.Suit) bool {
	return p.SuitDroughts[s] > 0
}
