package internal

import (
	"kadi/internal/domain"
)

// PhaseWeights tunes how a strategy values a candidate move in one phase.
type PhaseWeights struct {
	// ShedWeight rewards each card the move removes from the hand.
	ShedWeight float64
	// FeederKeepPenalty discourages spending feeders while no threat exists;
	// they are ammunition for later.
	FeederKeepPenalty float64
	// DefenseKeepPenalty discourages spending Kings and Aces, the only
	// answers to an incoming stack.
	DefenseKeepPenalty float64
	// SkipBonus rewards Jacks when an opponent is close to going out.
	SkipBonus float64
	// ThreatFeederBonus flips feeder spending into a reward under threat:
	// loading the next player slows the race.
	ThreatFeederBonus float64
}

// BotTuning carries the per-phase weights plus strategy-wide knobs.
type BotTuning struct {
	Opening PhaseWeights
	Mid     PhaseWeights
	End     PhaseWeights

	// ThreatThreshold is the opponent hand size that counts as dangerous.
	ThreatThreshold int
}

func (t BotTuning) ForPhase(phase GamePhase) PhaseWeights {
	switch phase {
	case PhaseEnd:
		return t.End
	case PhaseMid:
		return t.Mid
	default:
		return t.Opening
	}
}

// ScoredMove pairs a candidate with its evaluation.
type ScoredMove struct {
	Move  ValidMove
	Score float64
}

// ScoreMove evaluates one candidate play under the given weights.
func ScoreMove(move ValidMove, w PhaseWeights, threat bool) float64 {
	score := float64(len(move.Cards)) * w.ShedWeight
	for _, c := range move.Cards {
		switch {
		case c.IsFeeder():
			if threat {
				score += w.ThreatFeederBonus * float64(c.FeedAmount())
			} else {
				score -= w.FeederKeepPenalty
			}
		case c.Rank == domain.RankKing, c.Rank == domain.RankAce:
			score -= w.DefenseKeepPenalty
		case c.Rank == domain.RankJack:
			if threat {
				score += w.SkipBonus
			}
		}
	}
	return score
}

// BuildScoredMoves evaluates every candidate under the given weights.
func BuildScoredMoves(moves []ValidMove, w PhaseWeights, threat bool) []ScoredMove {
	scored := make([]ScoredMove, 0, len(moves))
	for _, m := range moves {
		scored = append(scored, ScoredMove{Move: m, Score: ScoreMove(m, w, threat)})
	}
	return scored
}
