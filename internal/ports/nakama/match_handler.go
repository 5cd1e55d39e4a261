package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"kadi/internal/app"
	"kadi/internal/bot"
	"kadi/internal/config"
	"kadi/internal/domain"
	"kadi/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	// MatchLabelKeyOpenSeats is the label key quick-match queries filter on.
	MatchLabelKeyOpenSeats = "open"

	maxSeats = app.MaxPlayersPerMatch
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats        [maxSeats]string            `json:"seats"`          // user IDs, empty string means seat is empty
	OwnerSeat    int                         `json:"owner_seat"`     // seat index of the match owner
	LastWinnerID string                      `json:"last_winner_id"` // winner of the last game at this table
	Tick         int64                       `json:"tick"`
	Private      bool                        `json:"private"` // unlisted table, joinable by invite token only
	Presences    map[string]runtime.Presence `json:"-"`
	App          *app.Service                `json:"-"`
	Game         *domain.Game                `json:"-"` // nil while in lobby

	BotsEnabled          bool                  `json:"bots_enabled"`
	BotMinDelay          int                   `json:"bot_min_delay"`
	BotMaxDelay          int                   `json:"bot_max_delay"`
	BotAutoFillDelay     int                   `json:"bot_auto_fill_delay"`
	BotWaitUntil         int64                 `json:"bot_wait_until"`
	LastSinglePlayerTick int64                 `json:"last_single_player_tick"`
	Bots                 map[string]*bot.Agent `json:"-"`

	Economy ports.EconomyPort `json:"-"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return maxSeats - ms.GetOpenSeatsCount()
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat == userID {
			return i
		}
	}
	return -1
}

func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// matchLabel is the queryable label document for a table.
type matchLabel struct {
	Open    int    `json:"open"`
	Game    string `json:"game"`
	Phase   string `json:"phase"`
	Private bool   `json:"private"`
}

func (mh *matchHandler) labelFor(state *MatchState) matchLabel {
	phase := "lobby"
	if state.Game != nil {
		phase = "playing"
	}
	open := state.GetOpenSeatsCount()
	if state.Private {
		// Private tables never advertise open seats; quick match must not find them.
		open = 0
	}
	return matchLabel{Open: open, Game: "kadi", Phase: phase, Private: state.Private}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	state := &MatchState{
		Tick:      time.Now().Unix(),
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(nil),
		OwnerSeat: -1,
		Bots:      make(map[string]*bot.Agent),
		Economy:   NewNakamaEconomyAdapter(nk),
	}
	if v, ok := params["private"].(bool); ok {
		state.Private = v
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["kadi_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["kadi_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["kadi_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if state.BotMinDelay == 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay == 0 {
		state.BotMaxDelay = 3
	}
	if cfg := config.GetGameConfig(); cfg != nil && cfg.BotAutoFillDelaySeconds > 0 {
		state.BotAutoFillDelay = cfg.BotAutoFillDelaySeconds
	}
	if state.BotAutoFillDelay == 0 {
		state.BotAutoFillDelay = 5
	}

	labelBytes, err := marshalStruct(mh.labelFor(state))
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace (if game hasn't started)
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Game == nil {
			for _, seat := range matchState.Seats {
				if isBotUserId(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		// Assign seat: empty seats first, then bots (while still in lobby).
		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}
		if !assigned && matchState.Game == nil {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					delete(matchState.Bots, seatUserId)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
		}
	}

	// The owner seat must always belong to a human.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		if i := matchState.seatOf(p.GetUserId()); i >= 0 {
			matchState.Seats[i] = ""
			logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
		}
	}

	matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case OpPlayCards:
			mh.handlePlayCards(ctx, matchState, dispatcher, logger, msg)
		case OpDrawCard:
			mh.handleDrawCard(ctx, matchState, dispatcher, logger, msg)
		case OpDeclare:
			mh.handleDeclare(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// 1. Auto-fill the lobby with bots when a single human has waited long enough.
	if state.Game == nil {
		humanCount := state.GetHumanPlayerCount()
		if humanCount == 1 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				added := false
				nextIdentity := 0
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					identity := bot.GetBotIdentity(nextIdentity)
					nextIdentity++
					// A pool smaller than the table would hand out the same
					// bot twice; skip identities already seated.
					for state.seatOf(identity.UserID) >= 0 && nextIdentity < maxSeats {
						identity = bot.GetBotIdentity(nextIdentity)
						nextIdentity++
					}
					if state.seatOf(identity.UserID) >= 0 {
						break
					}
					agent, err := bot.NewAgent(identity.UserID)
					if err != nil {
						logger.Error("processBots: Failed to create bot agent for %s: %v", identity.UserID, err)
						continue
					}
					state.Seats[i] = identity.UserID
					state.Bots[identity.UserID] = agent
					logger.Info("processBots: Added bot %s to seat %d", identity.UserID, i)
					added = true
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastSnapshot(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	// 2. Play bot turns with a human-ish delay.
	if state.Game.Phase != domain.PhasePlaying {
		return
	}
	current := state.Game.CurrentPlayer()
	if current == nil || !isBotUserId(current.UserID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[current.UserID]
	if !exists {
		var err error
		agent, err = bot.NewAgent(current.UserID)
		if err != nil {
			logger.Error("processBots: Failed to create fallback agent: %v", err)
			return
		}
		state.Bots[current.UserID] = agent
	}

	move, err := agent.Play(state.Game)
	if err != nil {
		logger.Error("processBots: Bot %s failed to calculate move: %v", current.UserID, err)
		return
	}

	if move.Declare {
		if events, err := state.App.Declare(state.Game, current.UserID); err == nil {
			mh.broadcastEvents(ctx, state, dispatcher, logger, events)
		}
	}
	if move.Draw {
		requested := state.Game.RequestedSuit
		events, err := state.App.Draw(state.Game, current.UserID)
		if err != nil {
			logger.Error("processBots: Bot %s draw rejected: %v", current.UserID, err)
			return
		}
		mh.notifyBotsOfDraw(state, events, requested)
		mh.broadcastEvents(ctx, state, dispatcher, logger, events)
	} else if len(move.Cards) > 0 {
		events, err := state.App.PlayCards(state.Game, current.UserID, move.Cards, move.RequestSuit)
		if err != nil {
			logger.Error("processBots: Bot %s play rejected: %v", current.UserID, err)
			return
		}
		mh.notifyBotsOfPlay(state, current.UserID, move.Cards)
		mh.broadcastEvents(ctx, state, dispatcher, logger, events)
	}
}

func (mh *matchHandler) notifyBotsOfPlay(state *MatchState, userID string, cards []domain.Card) {
	for _, agent := range state.Bots {
		agent.OnGameEvent(bot.PlaySeen{UserID: userID, Cards: cards})
	}
}

func (mh *matchHandler) notifyBotsOfDraw(state *MatchState, events []app.Event, requested domain.Suit) {
	for _, ev := range events {
		if ev.Kind != app.EventForcedDraw {
			continue
		}
		p, ok := ev.Payload.(app.ForcedDrawPayload)
		if !ok {
			continue
		}
		for _, agent := range state.Bots {
			agent.OnGameEvent(bot.DrawSeen{UserID: p.UserID, Count: p.Count, RequestedSuit: requested})
		}
	}
}

// StartGameRequest is the client payload for OpStartGame.
type StartGameRequest struct {
	Tier string `json:"tier"`
}

// PlayCardsRequest is the client payload for OpPlayCards.
type PlayCardsRequest struct {
	Cards       []WireCard `json:"cards"`
	RequestSuit string     `json:"request_suit"`
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Game != nil {
		logger.Warn("StartGame: Game already in progress.")
		return
	}
	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}

	request := &StartGameRequest{}
	if len(msg.GetData()) > 0 {
		if err := json.Unmarshal(msg.GetData(), request); err != nil {
			logger.Warn("StartGame: Invalid StartGameRequest from %s: %v", senderID, err)
			return
		}
	}

	var playerIDs []string
	for _, seat := range state.Seats {
		if seat != "" {
			playerIDs = append(playerIDs, seat)
		}
	}
	if len(playerIDs) < app.MinPlayersToStartGame {
		logger.Warn("StartGame: Cannot start with %d players. Need at least %d.", len(playerIDs), app.MinPlayersToStartGame)
		return
	}

	settings := domain.Settings{
		HandSize:         config.GetHandSize(),
		EliminationLimit: config.GetEliminationLimit(),
		BaseBet:          config.GetBaseBet(request.Tier),
	}
	if cfg := config.GetGameConfig(); cfg != nil {
		settings.BigAceSuit = domain.Suit(cfg.BigAceSuit)
	}

	game, events, err := state.App.StartMatch(playerIDs, settings)
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}
	state.Game = game

	for _, agent := range state.Bots {
		agent.OnGameEvent(bot.GameReset{})
	}

	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastEvents(ctx, state, dispatcher, logger, events)
	logger.Info("StartGame: Game started with %d players.", len(playerIDs))
}

func (mh *matchHandler) handlePlayCards(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Game == nil {
		logger.Warn("handlePlayCards: Game not started.")
		return
	}

	request := &PlayCardsRequest{}
	if err := json.Unmarshal(msg.GetData(), request); err != nil {
		logger.Error("handlePlayCards: Failed to unmarshal PlayCardsRequest: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed play request")
		return
	}
	cards, err := cardsFromWire(request.Cards)
	if err != nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	events, err := state.App.PlayCards(state.Game, senderID, cards, domain.Suit(request.RequestSuit))
	if err != nil {
		logger.Warn("handlePlayCards: User %s failed to play cards: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.notifyBotsOfPlay(state, senderID, cards)
	mh.broadcastEvents(ctx, state, dispatcher, logger, events)
}

func (mh *matchHandler) handleDrawCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Game == nil {
		logger.Warn("handleDrawCard: Game not started.")
		return
	}

	requested := state.Game.RequestedSuit
	events, err := state.App.Draw(state.Game, senderID)
	if err != nil {
		logger.Warn("handleDrawCard: User %s failed to draw: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.notifyBotsOfDraw(state, events, requested)
	mh.broadcastEvents(ctx, state, dispatcher, logger, events)
}

func (mh *matchHandler) handleDeclare(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.Game == nil {
		logger.Warn("handleDeclare: Game not started.")
		return
	}

	events, err := state.App.Declare(state.Game, senderID)
	if err != nil {
		logger.Warn("handleDeclare: User %s failed to declare: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.broadcastEvents(ctx, state, dispatcher, logger, events)
}

// snapshotPayload is the OpMatchSnapshot document: seating plus the public
// game view.
type snapshotPayload struct {
	Seats     []string     `json:"seats"`
	OwnerSeat int          `json:"owner_seat"`
	Tick      int64        `json:"tick"`
	Game      *app.Summary `json:"game,omitempty"`
}

func (mh *matchHandler) broadcastSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snap := snapshotPayload{
		Seats:     state.Seats[:],
		OwnerSeat: state.OwnerSeat,
		Tick:      state.Tick,
	}
	if state.Game != nil {
		sum := app.Summarize(state.Game)
		snap.Game = &sum
	}

	bytes, err := marshalStruct(snap)
	if err != nil {
		logger.Error("broadcastSnapshot: Failed to marshal: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchSnapshot, bytes, nil, nil, true)
}

func (mh *matchHandler) broadcastEvents(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
	mh.broadcastSnapshot(state, dispatcher, logger)
}

// broadcastEvent converts one app event to its opcode and dispatches it.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	switch ev.Kind {
	case app.EventGameStarted:
		opCode = OpGameStarted
	case app.EventHandDealt:
		opCode = OpHandDealt
	case app.EventCardPlayed:
		opCode = OpCardPlayed
	case app.EventSuitRequested:
		opCode = OpSuitRequested
	case app.EventForcedDraw:
		opCode = OpForcedDraw
	case app.EventCardsDrawn:
		opCode = OpCardsDrawn
	case app.EventDeclared:
		opCode = OpDeclared
	case app.EventTurnAdvanced:
		opCode = OpTurnAdvanced
	case app.EventPlayerEliminated:
		opCode = OpPlayerEliminated
	case app.EventGameEnded:
		opCode = OpGameEnded
		mh.onGameEnded(ctx, state, dispatcher, logger, ev)
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Private events go only to their connected recipients; if none are
	// connected (bots), nothing may leak to the rest of the table.
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// onGameEnded settles wallets and returns the table to the lobby.
func (mh *matchHandler) onGameEnded(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	payload, ok := ev.Payload.(app.GameEndedPayload)
	if !ok {
		return
	}

	if state.Economy != nil && len(payload.BalanceChanges) > 0 {
		updates := make([]ports.WalletUpdate, 0, len(payload.BalanceChanges))
		for userID, amount := range payload.BalanceChanges {
			if isBotUserId(userID) {
				continue
			}
			updates = append(updates, ports.WalletUpdate{
				UserID: userID,
				Amount: amount,
				Metadata: map[string]interface{}{
					"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
					"reason":   "game_settlement",
				},
			})
		}
		if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
			logger.Error("Failed to update balances: %v", err)
		}
	}

	if payload.WinnerUserID != "" {
		state.LastWinnerID = payload.WinnerUserID
	}
	state.Game = nil
	mh.updateLabel(state, dispatcher, logger)
}

// sendError sends a private error message to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	payload, err := json.Marshal(map[string]interface{}{
		"code":    code,
		"message": message,
	})
	if err != nil {
		logger.Error("Failed to marshal error payload: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpGameError, payload, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	labelBytes, err := marshalStruct(mh.labelFor(state))
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
