package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"kadi/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const currencyKeyChips = "chips"

// NakamaEconomyAdapter implements ports.EconomyPort on top of Nakama wallets.
type NakamaEconomyAdapter struct {
	nk runtime.NakamaModule
}

func NewNakamaEconomyAdapter(nk runtime.NakamaModule) *NakamaEconomyAdapter {
	return &NakamaEconomyAdapter{nk: nk}
}

func (a *NakamaEconomyAdapter) GetBalance(ctx context.Context, userID string) (int64, error) {
	account, err := a.nk.AccountGetId(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get account %s: %w", userID, err)
	}

	wallet := make(map[string]int64)
	if account.Wallet != "" {
		if err := json.Unmarshal([]byte(account.Wallet), &wallet); err != nil {
			return 0, fmt.Errorf("failed to parse wallet for %s: %w", userID, err)
		}
	}

	return wallet[currencyKeyChips], nil
}

func (a *NakamaEconomyAdapter) UpdateBalances(ctx context.Context, updates []ports.WalletUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	walletUpdates := make([]*runtime.WalletUpdate, 0, len(updates))
	for _, u := range updates {
		walletUpdates = append(walletUpdates, &runtime.WalletUpdate{
			UserID:    u.UserID,
			Changeset: map[string]int64{currencyKeyChips: u.Amount},
			Metadata:  u.Metadata,
		})
	}

	// updateLedger=true so settlements show up in the wallet ledger.
	if _, err := a.nk.WalletsUpdate(ctx, walletUpdates, true); err != nil {
		return fmt.Errorf("failed to update wallets: %w", err)
	}
	return nil
}
