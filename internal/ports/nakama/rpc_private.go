package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"kadi/internal/app"
	"kadi/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

const inviteIssuer = "kadi"

// CreatePrivateMatchResponse returns the new table and an invite token the
// creator can share out of band.
type CreatePrivateMatchResponse struct {
	MatchID     string `json:"match_id"`
	InviteToken string `json:"invite_token"`
}

// JoinPrivateMatchRequest carries the invite token presented by a guest.
type JoinPrivateMatchRequest struct {
	InviteToken string `json:"invite_token"`
}

// JoinPrivateMatchResponse resolves the token back to its match.
type JoinPrivateMatchResponse struct {
	MatchID string `json:"match_id"`
}

func newInviteServiceFromConfig() (*app.InviteService, error) {
	cfg := config.GetGameConfig()
	if cfg == nil || cfg.InviteSecret == "" {
		return nil, runtime.NewError("private matches are not configured", 9) // FAILED_PRECONDITION
	}
	ttl := time.Duration(cfg.InviteTTLSeconds) * time.Second
	return app.NewInviteService(cfg.InviteSecret, inviteIssuer, ttl), nil
}

// RpcCreatePrivateMatchFn creates an unlisted table and signs an invite token
// bound to it.
func RpcCreatePrivateMatchFn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userID == "" {
		return "", runtime.NewError("user id not found in context", 16) // UNAUTHENTICATED
	}

	invites, err := newInviteServiceFromConfig()
	if err != nil {
		return "", err
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameKadi, map[string]interface{}{"private": true})
	if err != nil {
		logger.Error("CreatePrivateMatch: Failed to create match: %v", err)
		return "", runtime.NewError("failed to create match", 13) // INTERNAL
	}

	token, err := invites.GenerateToken(matchID, userID)
	if err != nil {
		logger.Error("CreatePrivateMatch: Failed to sign invite token: %v", err)
		return "", runtime.NewError("failed to sign invite token", 13) // INTERNAL
	}

	out, err := json.Marshal(CreatePrivateMatchResponse{MatchID: matchID, InviteToken: token})
	if err != nil {
		return "", runtime.NewError("failed to marshal response", 13) // INTERNAL
	}
	return string(out), nil
}

// RpcJoinPrivateMatchFn verifies an invite token and returns the match it
// names. The actual join still goes through the normal match join flow.
func RpcJoinPrivateMatchFn(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	request := JoinPrivateMatchRequest{}
	if err := json.Unmarshal([]byte(payload), &request); err != nil {
		return "", runtime.NewError("malformed request", 3) // INVALID_ARGUMENT
	}
	if request.InviteToken == "" {
		return "", runtime.NewError("invite token is required", 3) // INVALID_ARGUMENT
	}

	invites, err := newInviteServiceFromConfig()
	if err != nil {
		return "", err
	}

	matchID, err := invites.VerifyToken(request.InviteToken)
	if err != nil {
		logger.Warn("JoinPrivateMatch: Token rejected: %v", err)
		return "", runtime.NewError("invalid or expired invite token", 7) // PERMISSION_DENIED
	}

	out, err := json.Marshal(JoinPrivateMatchResponse{MatchID: matchID})
	if err != nil {
		return "", runtime.NewError("failed to marshal response", 13) // INTERNAL
	}
	return string(out), nil
}
