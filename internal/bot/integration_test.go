package bot

import (
	"math/rand"
	"testing"

	"kadi/internal/app"
	"kadi/internal/domain"
)

// TestBotsPlayFullGames seats one bot of each level at a table and lets them
// play to the end. Whatever the shuffle deals, the bots may never produce a
// move the rules reject and the card count must stay closed.
func TestBotsPlayFullGames(t *testing.T) {
	levels := []BotLevel{BotLevelBasic, BotLevelSmart, BotLevelPro}

	for seed := int64(1); seed <= 10; seed++ {
		svc := app.NewService(rand.New(rand.NewSource(seed)))

		agents := make(map[string]*Agent, len(levels))
		var ids []string
		for i, level := range levels {
			brain, err := NewBrain(level)
			if err != nil {
				t.Fatalf("NewBrain(%d): %v", level, err)
			}
			id := GetBotIdentity(i).UserID
			agents[id] = &Agent{ID: id, Strategy: brain}
			ids = append(ids, id)
		}

		g, _, err := svc.StartMatch(ids, domain.Settings{HandSize: 5, EliminationLimit: 20})
		if err != nil {
			t.Fatalf("seed %d: start: %v", seed, err)
		}

		for turn := 0; turn < 3000 && g.Phase == domain.PhasePlaying; turn++ {
			current := g.CurrentPlayer()
			agent := agents[current.UserID]
			move, err := agent.Play(g)
			if err != nil {
				t.Fatalf("seed %d: agent %s: %v", seed, current.UserID, err)
			}

			if move.Declare {
				if _, err := svc.Declare(g, current.UserID); err != nil {
					t.Fatalf("seed %d: declare: %v", seed, err)
				}
			}
			if move.Draw {
				if _, err := svc.Draw(g, current.UserID); err != nil {
					t.Fatalf("seed %d: draw: %v", seed, err)
				}
			} else if len(move.Cards) > 0 {
				if _, err := svc.PlayCards(g, current.UserID, move.Cards, move.RequestSuit); err != nil {
					t.Fatalf("seed %d: play %v: %v", seed, move.Cards, err)
				}
				for _, a := range agents {
					a.OnGameEvent(PlaySeen{UserID: current.UserID, Cards: move.Cards})
				}
			}

			if g.CountCards() != g.TotalCards {
				t.Fatalf("seed %d turn %d: card count %d, want %d", seed, turn, g.CountCards(), g.TotalCards)
			}
		}

		if g.Phase == domain.PhaseEnded && g.WinnerUserID != "" {
			winner := g.PlayerByID(g.WinnerUserID)
			if winner != nil && len(winner.Hand) != 0 {
				t.Fatalf("seed %d: winner %s still holds cards", seed, g.WinnerUserID)
			}
		}
	}
}
