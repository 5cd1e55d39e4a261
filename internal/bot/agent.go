package bot

import (
	"kadi/internal/domain"
)

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Play asks the agent to calculate its move based on the current game state.
// When the agent is not seated in the game it drains the turn with a draw.
func (a *Agent) Play(game *domain.Game) (Move, error) {
	player := game.PlayerByID(a.ID)
	if player == nil {
		return Move{Draw: true}, nil
	}

	move, err := a.Strategy.CalculateMove(game, player)
	if err != nil {
		return Move{Draw: true}, err
	}
	return move, nil
}

// OnGameEvent notifies the agent of a game event.
func (a *Agent) OnGameEvent(event interface{}) {
	a.Strategy.OnEvent(event)
}
