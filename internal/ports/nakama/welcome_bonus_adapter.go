package nakama

import (
	"context"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	welcomeBonusCollection = "player_flags"
	welcomeBonusKey        = "welcome_bonus"
)

// NakamaWelcomeBonusAdapter implements ports.WelcomeBonusPort. A storage flag
// written with a version precondition makes the grant idempotent even under
// concurrent authentication hooks.
type NakamaWelcomeBonusAdapter struct {
	nk runtime.NakamaModule
}

func NewNakamaWelcomeBonusAdapter(nk runtime.NakamaModule) *NakamaWelcomeBonusAdapter {
	return &NakamaWelcomeBonusAdapter{nk: nk}
}

func (a *NakamaWelcomeBonusAdapter) GrantWelcomeBonusOnce(ctx context.Context, userID string, amount int64, metadata map[string]interface{}) (bool, error) {
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{{
		Collection: welcomeBonusCollection,
		Key:        welcomeBonusKey,
		UserID:     userID,
	}})
	if err != nil {
		return false, fmt.Errorf("failed to read welcome bonus flag for %s: %w", userID, err)
	}
	if len(objects) > 0 {
		return false, nil
	}

	// Version "*" means write-if-absent; a concurrent grant loses the race
	// here instead of paying twice.
	if _, err := a.nk.StorageWrite(ctx, []*runtime.StorageWrite{{
		Collection:      welcomeBonusCollection,
		Key:             welcomeBonusKey,
		UserID:          userID,
		Value:           `{"granted":true}`,
		Version:         "*",
		PermissionRead:  1,
		PermissionWrite: 0,
	}}); err != nil {
		return false, fmt.Errorf("failed to write welcome bonus flag for %s: %w", userID, err)
	}

	changeset := map[string]int64{currencyKeyChips: amount}
	if _, _, err := a.nk.WalletUpdate(ctx, userID, changeset, metadata, true); err != nil {
		return false, fmt.Errorf("failed to grant welcome bonus to %s: %w", userID, err)
	}

	return true, nil
}
