package bot

import (
	"kadi/internal/domain"
)

// Move represents the decision made by the AI.
type Move struct {
	Draw        bool
	Declare     bool
	Cards       []domain.Card
	RequestSuit domain.Suit
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(game *domain.Game, player *domain.Player) (Move, error)
	OnEvent(event interface{})
}
