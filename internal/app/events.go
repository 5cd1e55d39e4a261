package app

import "kadi/internal/domain"

// EventKind identifies a game event emitted by the service. The transport
// layer maps kinds to opcodes and routes each event to its recipients.
type EventKind string

const (
	EventGameStarted      EventKind = "game_started"
	EventHandDealt        EventKind = "hand_dealt"
	EventCardPlayed       EventKind = "card_played"
	EventSuitRequested    EventKind = "suit_requested"
	EventForcedDraw       EventKind = "forced_draw"
	EventCardsDrawn       EventKind = "cards_drawn"
	EventDeclared         EventKind = "declared"
	EventTurnAdvanced     EventKind = "turn_advanced"
	EventPlayerEliminated EventKind = "player_eliminated"
	EventGameEnded        EventKind = "game_ended"
)

// Event is a single observable outcome of a move. Recipients is nil for
// broadcast events; private events (dealt hands, drawn cards) list the
// user ids allowed to see the payload.
type Event struct {
	Kind       EventKind
	Recipients []string
	Payload    any
}

type GameStartedPayload struct {
	PlayerIDs []string    `json:"player_ids"`
	TurnOf    string      `json:"turn_of"`
	TopCard   domain.Card `json:"top_card"`
	HandSize  int         `json:"hand_size"`
}

type HandDealtPayload struct {
	UserID string        `json:"user_id"`
	Hand   []domain.Card `json:"hand"`
}

type CardPlayedPayload struct {
	UserID      string        `json:"user_id"`
	Cards       []domain.Card `json:"cards"`
	MustDeclare bool          `json:"must_declare"`
}

type SuitRequestedPayload struct {
	UserID string      `json:"user_id"`
	Suit   domain.Suit `json:"suit"`
}

// ForcedDrawPayload reports a publicly visible draw: a feeder stack landing
// on a player, a King reflecting it back, or the one-card penalty for
// finishing without a declaration.
type ForcedDrawPayload struct {
	UserID  string `json:"user_id"`
	Count   int    `json:"count"`
	Penalty bool   `json:"penalty,omitempty"`
}

type CardsDrawnPayload struct {
	UserID string        `json:"user_id"`
	Cards  []domain.Card `json:"cards"`
}

type DeclaredPayload struct {
	UserID string `json:"user_id"`
}

type TurnAdvancedPayload struct {
	TurnOf  string `json:"turn_of"`
	Skipped bool   `json:"skipped"`
}

type PlayerEliminatedPayload struct {
	UserID    string `json:"user_id"`
	HandCount int    `json:"hand_count"`
}

type GameEndedPayload struct {
	WinnerUserID   string           `json:"winner_user_id,omitempty"`
	Stalemate      bool             `json:"stalemate,omitempty"`
	BalanceChanges map[string]int64 `json:"balance_changes,omitempty"`
}

func broadcast(kind EventKind, payload any) Event {
	return Event{Kind: kind, Payload: payload}
}

func private(kind EventKind, userID string, payload any) Event {
	return Event{Kind: kind, Recipients: []string{userID}, Payload: payload}
}
