package bot

import (
	"sort"

	"kadi/internal/bot/internal"
	"kadi/internal/domain"
)

// BasicBot plays the lowest legal single and never holds cards back. It is
// the easy opponent and the bot-sim baseline.
type BasicBot struct{}

func (b *BasicBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{Draw: true}, nil
	}

	moves := internal.GetValidMoves(game, player.Hand)
	if len(moves) == 0 {
		return Move{Draw: true}, nil
	}

	// Singles only, lowest rank first.
	var singles []internal.ValidMove
	for _, m := range moves {
		if len(m.Cards) == 1 {
			singles = append(singles, m)
		}
	}
	if len(singles) == 0 {
		singles = moves
	}
	sort.Slice(singles, func(i, j int) bool {
		if singles[i].Cards[0].Rank != singles[j].Cards[0].Rank {
			return singles[i].Cards[0].Rank < singles[j].Cards[0].Rank
		}
		return singles[i].Cards[0].Suit < singles[j].Cards[0].Suit
	})

	return finishMove(game, player, singles[0].Cards), nil
}

func (b *BasicBot) OnEvent(event interface{}) {}

// finishMove fills in the declare flag and any Ace suit request for a chosen
// set of cards. Declaring rides along with the play that empties the hand so
// the call lands strictly before the finishing move.
func finishMove(game *domain.Game, player *domain.Player, cards []domain.Card) Move {
	move := Move{Cards: cards}
	if len(cards) >= len(player.Hand) {
		move.Declare = true
	}
	if game.ForcedDraw == 0 && containsRank(cards, domain.RankAce) {
		remaining := domain.RemoveCards(player.Hand, cards)
		move.RequestSuit = internal.BestRequestSuit(remaining)
	}
	return move
}

func containsRank(cards []domain.Card, rank domain.Rank) bool {
	for _, c := range cards {
		if c.Rank == rank {
			return true
		}
	}
	return false
}
