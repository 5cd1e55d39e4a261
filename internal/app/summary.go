package app

import "kadi/internal/domain"

// PlayerSummary is what everyone at the table may know about a player: the
// size of the hand but never its contents.
type PlayerSummary struct {
	UserID         string `json:"user_id"`
	Seat           int    `json:"seat"`
	CardsRemaining int    `json:"cards_remaining"`
	Declared       bool   `json:"declared"`
}

// Summary is the public snapshot of a game, safe to broadcast to every
// presence in the match.
type Summary struct {
	Phase         domain.Phase    `json:"phase"`
	Players       []PlayerSummary `json:"players"`
	TurnOf        string          `json:"turn_of,omitempty"`
	Direction     int             `json:"direction"`
	TopCard       *domain.Card    `json:"top_card,omitempty"`
	RequestedSuit domain.Suit     `json:"requested_suit,omitempty"`
	ForcedDraw    int             `json:"forced_draw,omitempty"`
	DeckCount     int             `json:"deck_count"`
	PileCount     int             `json:"pile_count"`
	WinnerUserID  string          `json:"winner_user_id,omitempty"`
	Stalemate     bool            `json:"stalemate,omitempty"`
	Eliminated    []string        `json:"eliminated,omitempty"`
}

// Summarize projects the authoritative game state down to its public view.
func Summarize(g *domain.Game) Summary {
	sum := Summary{
		Phase:         g.Phase,
		Direction:     g.Direction,
		RequestedSuit: g.RequestedSuit,
		ForcedDraw:    g.ForcedDraw,
		DeckCount:     len(g.Deck),
		PileCount:     len(g.Pile),
		WinnerUserID:  g.WinnerUserID,
		Stalemate:     g.Stalemate,
		Eliminated:    g.Eliminated,
	}
	for _, p := range g.Players {
		sum.Players = append(sum.Players, PlayerSummary{
			UserID:         p.UserID,
			Seat:           p.Seat,
			CardsRemaining: len(p.Hand),
			Declared:       p.Declared,
		})
	}
	if cur := g.CurrentPlayer(); cur != nil {
		sum.TurnOf = cur.UserID
	}
	if top, ok := g.TopCard(); ok {
		sum.TopCard = &top
	}
	return sum
}
