package nakama

import (
	"context"
	"database/sql"

	"kadi/internal/bot"
	"kadi/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule registers the match handler, RPCs, and account hooks.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("InitModule: Could not load game config: %v", err)
	}

	if err := initializer.RegisterMatch(MatchNameKadi, NewMatch); err != nil {
		logger.Error("InitModule: Failed to register match: %v", err)
		return err
	}

	if err := RegisterRPCs(ctx, logger, db, nk, initializer); err != nil {
		logger.Error("InitModule: Failed to register RPCs: %v", err)
		return err
	}

	if err := RegisterHooks(ctx, logger, db, nk, initializer); err != nil {
		logger.Error("InitModule: Failed to register hooks: %v", err)
		return err
	}

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("InitModule: Could not load bot identities: %v", err)
	} else if err := bot.ProvisionBots(ctx, nk, logger); err != nil {
		logger.Warn("InitModule: Could not provision bots: %v", err)
	}

	logger.Info("Kadi module initialized.")
	return nil
}
