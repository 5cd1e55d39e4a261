package bot

import botinternal "kadi/internal/bot/internal"

// DefaultTuning balances shedding speed against keeping feeders and defense
// cards for when they matter.
var DefaultTuning = botinternal.BotTuning{
	Opening: botinternal.PhaseWeights{
		ShedWeight:         1.0,
		FeederKeepPenalty:  1.5,
		DefenseKeepPenalty: 2.0,
		SkipBonus:          0.5,
		ThreatFeederBonus:  1.0,
	},
	Mid: botinternal.PhaseWeights{
		ShedWeight:         1.2,
		FeederKeepPenalty:  1.0,
		DefenseKeepPenalty: 1.5,
		SkipBonus:          1.0,
		ThreatFeederBonus:  1.5,
	},
	End: botinternal.PhaseWeights{
		ShedWeight:         2.0,
		FeederKeepPenalty:  0.2,
		DefenseKeepPenalty: 0.5,
		SkipBonus:          1.5,
		ThreatFeederBonus:  2.0,
	},
	ThreatThreshold: 2,
}
