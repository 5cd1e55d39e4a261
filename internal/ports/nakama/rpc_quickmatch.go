package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchResponse tells the client which match to join and whether it was
// freshly created.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// RpcQuickMatchFn finds an open public table in the lobby phase, or creates
// one when none exists.
func RpcQuickMatchFn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	query := "+label.open:>=1 +label.game:kadi +label.phase:lobby"
	limit := 10
	authoritative := true

	matches, err := nk.MatchList(ctx, limit, authoritative, "", nil, nil, query)
	if err != nil {
		logger.Error("QuickMatch: Failed to list matches: %v", err)
		return "", runtime.NewError("failed to list matches", 13) // INTERNAL
	}

	response := QuickMatchResponse{}
	if len(matches) > 0 {
		response.MatchID = matches[0].MatchId
	} else {
		matchID, err := nk.MatchCreate(ctx, MatchNameKadi, map[string]interface{}{"private": false})
		if err != nil {
			logger.Error("QuickMatch: Failed to create match: %v", err)
			return "", runtime.NewError("failed to create match", 13) // INTERNAL
		}
		response.MatchID = matchID
		response.IsNew = true
	}

	out, err := json.Marshal(response)
	if err != nil {
		return "", runtime.NewError("failed to marshal response", 13) // INTERNAL
	}
	return string(out), nil
}
