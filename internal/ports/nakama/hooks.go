package nakama

import (
	"context"
	"database/sql"

	"kadi/internal/app/onboarding"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// RegisterHooks wires account lifecycle hooks into the Nakama runtime.
func RegisterHooks(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := initializer.RegisterAfterAuthenticateDevice(AfterAuthenticateDevice); err != nil {
		return err
	}
	return nil
}

// AfterAuthenticateDevice onboards first-time device logins: friendly display
// name plus the one-time welcome bonus.
func AfterAuthenticateDevice(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in *api.AuthenticateDeviceRequest) error {
	if out == nil || !out.Created {
		return nil
	}

	userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userID == "" {
		logger.Warn("AfterAuthenticateDevice: user id not found in context")
		return nil
	}

	svc := onboarding.NewService(
		NewNakamaAccountAdapter(nk),
		NewNakamaWelcomeBonusAdapter(nk),
		nil,
	)

	result, err := svc.OnboardNewUser(ctx, userID)
	if err != nil {
		// Onboarding failures must never block authentication.
		logger.Error("AfterAuthenticateDevice: onboarding failed for %s: %v", userID, err)
		return nil
	}
	if result.ProfileUpdateErr != nil {
		logger.Warn("AfterAuthenticateDevice: profile update failed for %s: %v", userID, result.ProfileUpdateErr)
	}
	if result.WelcomeBonusGranted {
		logger.Info("AfterAuthenticateDevice: welcome bonus granted to %s", userID)
	}

	return nil
}
