package bot

import (
	"sort"

	"kadi/internal/bot/internal"
	"kadi/internal/domain"
)

// SmartBot sheds with phase-aware scoring: it dumps freely early, hoards
// feeders and defense cards until an opponent runs low, then spends them.
type SmartBot struct{}

func (b *SmartBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
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
		// Save higher cards when scores are equal.
		return scored[i].Move.Cards[0].Rank < scored[j].Move.Cards[0].Rank
	})

	return finishMove(game, player, scored[0].Move.Cards), nil
}

func (b *SmartBot) OnEvent(event interface{}) {}
