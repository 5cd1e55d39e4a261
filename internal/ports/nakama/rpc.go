package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RegisterRPCs wires every RPC endpoint into the Nakama runtime.
func RegisterRPCs(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickMatch, RpcQuickMatchFn); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcCreatePrivateMatch, RpcCreatePrivateMatchFn); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcJoinPrivateMatch, RpcJoinPrivateMatchFn); err != nil {
		return err
	}
	return nil
}
