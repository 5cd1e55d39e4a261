package app

const (
	MinPlayersToStartGame = 2
	MaxPlayersPerMatch    = 6

	DefaultHandSize         = 5
	DefaultEliminationLimit = 20
)
