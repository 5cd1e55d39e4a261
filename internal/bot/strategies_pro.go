package bot

import (
	"sort"

	"kadi/internal/bot/brain"
	"kadi/internal/bot/internal"
	"kadi/internal/domain"
)

// ProBot layers table memory on top of the smart scoring: it counts the cards
// that have shown on the pile and uses suit depletion to pick Ace requests
// that starve opponents into drawing.
type ProBot struct {
	memory *brain.GameMemory
}

func NewProBot() *ProBot {
	return &ProBot{memory: brain.NewMemory()}
}

func (b *ProBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{Draw: true}, nil
	}

	moves := internal.GetValidMoves(game, player.Hand)
	if len(moves) == 0 {
		return Move{Draw: true}, nil
	}

	phase := internal.DetectPhase(player.Hand)
	weights := DefaultTuning.ForPhase(phase)
	threat := internal.DetectThreat(game, player, DefaultTuning.ThreatThreshold)
	scored := internal.BuildScoredMoves(moves, weights, threat)

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Move.Cards[0].Rank < scored[j].Move.Cards[0].Rank
	})

	move := finishMove(game, player, scored[0].Move.Cards)
	if move.RequestSuit != domain.SuitNone {
		// Override the naive longest-suit request with the memory-backed pick.
		remaining := domain.RemoveCards(player.Hand, move.Cards)
		move.RequestSuit = b.memory.BestRequestSuit(remaining)
	}
	return move, nil
}

func (b *ProBot) OnEvent(event interface{}) {
	switch ev := event.(type) {
	case PlaySeen:
		b.memory.RecordPlay(ev.UserID, ev.Cards)
	case DrawSeen:
		b.memory.RecordDraw(ev.UserID, ev.Count, ev.RequestedSuit)
	case GameReset:
		b.memory.Reset()
	}
}
