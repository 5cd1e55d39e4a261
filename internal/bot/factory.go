package bot

import (
	"fmt"
)

// BotLevel selects how hard a bot plays.
type BotLevel int

const (
	BotLevelBasic BotLevel = iota
	BotLevelSmart
	BotLevelPro
)

// LevelFromDifficulty maps the identity-pool difficulty strings to a level.
func LevelFromDifficulty(difficulty string) BotLevel {
	switch difficulty {
	case "hard":
		return BotLevelPro
	case "medium":
		return BotLevelSmart
	default:
		return BotLevelBasic
	}
}

// NewAgent builds an agent for a bot user ID, picking the brain from the
// identity pool's difficulty setting.
func NewAgent(userID string) (*Agent, error) {
	level := BotLevelBasic
	name := userID
	if identity, ok := GetBotConfig(userID); ok {
		level = LevelFromDifficulty(identity.Difficulty)
		if identity.DisplayName != "" {
			name = identity.DisplayName
		}
	}
	brain, err := NewBrain(level)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: userID, Name: name, Strategy: brain}, nil
}

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelBasic:
		return &BasicBot{}, nil
	case BotLevelSmart:
		return &SmartBot{}, nil
	case BotLevelPro:
		return NewProBot(), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
