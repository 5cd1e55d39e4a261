package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create an open public table.
	RpcQuickMatch = "quick_match"
	// RpcCreatePrivateMatch creates an unlisted table and returns an invite token.
	RpcCreatePrivateMatch = "create_private_match"
	// RpcJoinPrivateMatch resolves an invite token back to its match id.
	RpcJoinPrivateMatch = "join_private_match"

	// MatchNameKadi is the authoritative match handler name registered with Nakama.
	MatchNameKadi = "kadi_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame int64 = 1
	OpPlayCards int64 = 2
	OpDrawCard  int64 = 3
	OpDeclare   int64 = 4

	// Server -> Client events
	OpMatchSnapshot    int64 = 101
	OpGameStarted      int64 = 102
	OpHandDealt        int64 = 103 // send privately
	OpCardPlayed       int64 = 104
	OpSuitRequested    int64 = 105
	OpForcedDraw       int64 = 106
	OpCardsDrawn       int64 = 107 // send privately
	OpDeclared         int64 = 108
	OpTurnAdvanced     int64 = 109
	OpPlayerEliminated int64 = 110
	OpGameEnded        int64 = 111
	OpGameError        int64 = 112
)
