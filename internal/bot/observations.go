package bot

import "kadi/internal/domain"

// Observations are the events the match loop feeds to agents via OnGameEvent.
// Strategies that keep no state ignore them.

// PlaySeen reports cards another player laid on the pile.
type PlaySeen struct {
	UserID string
	Cards  []domain.Card
}

// DrawSeen reports that a player picked up cards, and which suit request was
// active at the time.
type DrawSeen struct {
	UserID        string
	Count         int
	RequestedSuit domain.Suit
}

// GameReset tells stateful strategies a new game started.
type GameReset struct{}
