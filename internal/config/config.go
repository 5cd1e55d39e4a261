package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type BetTier struct {
	ID      string `json:"id"`
	BaseBet int64  `json:"base_bet"`
}

type GameConfig struct {
	DefaultTier string    `json:"default_tier"`
	Tiers       []BetTier `json:"tiers"`

	// HandSize is the number of cards dealt to each player.
	HandSize int `json:"hand_size"`
	// EliminationLimit removes a player whose hand grows past this size; 0 disables.
	EliminationLimit int `json:"elimination_limit"`
	// BigAceSuit enables the house variant where this suit's Ace both cancels
	// a draw stack and requests a suit. Empty leaves the variant off.
	BigAceSuit string `json:"big_ace_suit"`

	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before adding a bot to a solo human lobby.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`

	// InviteSecret signs private-table invite tokens.
	InviteSecret string `json:"invite_secret"`
	// InviteTTLSeconds bounds how long an invite token stays valid.
	InviteTTLSeconds int `json:"invite_ttl_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetHandSize returns the configured deal size, or the rule default.
func GetHandSize() int {
	if cfg == nil || cfg.HandSize <= 0 {
		return 5
	}
	return cfg.HandSize
}

// GetEliminationLimit returns the configured hand-size limit; 0 disables elimination.
func GetEliminationLimit() int {
	if cfg == nil || cfg.EliminationLimit < 0 {
		return 0
	}
	return cfg.EliminationLimit
}

// GetBaseBet returns the base bet for a given tier ID, or the default if not found.
func GetBaseBet(tierID string) int64 {
	if cfg == nil {
		return 100 // Safe default
	}

	target := tierID
	if target == "" {
		target = cfg.DefaultTier
	}

	for _, tier := range cfg.Tiers {
		if tier.ID == target {
			return tier.BaseBet
		}
	}

	// Fallback to default tier if specific ID not found
	for _, tier := range cfg.Tiers {
		if tier.ID == cfg.DefaultTier {
			return tier.BaseBet
		}
	}

	return 100
}
