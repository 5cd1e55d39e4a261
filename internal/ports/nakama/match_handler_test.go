package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"kadi/internal/app"
	"kadi/internal/bot"
	"kadi/internal/domain"
	"kadi/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	broadcastCount int
	labelUpdates   int
	lastLabel      string
	opCodes        []int64
	lastData       []byte
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.broadcastCount++
	md.opCodes = append(md.opCodes, opCode)
	md.lastData = append([]byte(nil), data...)
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	md.lastLabel = label
	return nil
}

func (md *mockDispatcher) sawOpCode(opCode int64) bool {
	for _, op := range md.opCodes {
		if op == opCode {
			return true
		}
	}
	return false
}

type mockEconomy struct {
	balances map[string]int64
	updates  []ports.WalletUpdate
}

func (me *mockEconomy) GetBalance(ctx context.Context, userID string) (int64, error) {
	if balance, ok := me.balances[userID]; ok {
		return balance, nil
	}
	return 0, errors.New("balance not found")
}

func (me *mockEconomy) UpdateBalances(ctx context.Context, updates []ports.WalletUpdate) error {
	me.updates = append(me.updates, updates...)
	return nil
}

// mockPresence satisfies runtime.Presence for seat bookkeeping.
type mockPresence struct {
	userID string
}

func (mp mockPresence) GetUserId() string                  { return mp.userID }
func (mp mockPresence) GetSessionId() string               { return "session-" + mp.userID }
func (mp mockPresence) GetNodeId() string                  { return "node" }
func (mp mockPresence) GetHidden() bool                    { return false }
func (mp mockPresence) GetPersistence() bool               { return true }
func (mp mockPresence) GetUsername() string                { return mp.userID }
func (mp mockPresence) GetStatus() string                  { return "" }
func (mp mockPresence) GetReason() runtime.PresenceReason  { return runtime.PresenceReasonJoin }

// mockMatchData wraps a client message for opcode handler tests.
type mockMatchData struct {
	mockPresence
	opCode int64
	data   []byte
}

func (mm mockMatchData) GetOpCode() int64     { return mm.opCode }
func (mm mockMatchData) GetData() []byte      { return mm.data }
func (mm mockMatchData) GetReliable() bool    { return true }
func (mm mockMatchData) GetReceiveTime() int64 { return 0 }

func init() {
	if err := bot.LoadIdentities("test_bot_identities.json"); err != nil {
		panic("Failed to load bot identities for tests: " + err.Error())
	}
}

func newTestState(seats ...string) *MatchState {
	state := &MatchState{
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(nil),
		OwnerSeat: -1,
		Bots:      make(map[string]*bot.Agent),
	}
	for i, userID := range seats {
		if i >= maxSeats {
			break
		}
		state.Seats[i] = userID
		if userID != "" && !isBotUserId(userID) {
			state.Presences[userID] = mockPresence{userID: userID}
		}
	}
	state.OwnerSeat = findFirstHumanSeat(state.Seats[:])
	return state
}

func TestFindFirstHumanSeat(t *testing.T) {
	bot1 := bot.GetBotIdentity(0).UserID
	bot2 := bot.GetBotIdentity(1).UserID

	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{
			name:  "FirstHumanAfterBot",
			seats: []string{bot1, "user-1", "", ""},
			want:  1,
		},
		{
			name:  "AllBots",
			seats: []string{bot1, bot2, "", ""},
			want:  -1,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  -1,
		},
		{
			name:  "FirstHumanIsSeatZero",
			seats: []string{"user-1", bot1, "user-2", ""},
			want:  0,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := findFirstHumanSeat(test.seats); got != test.want {
				t.Fatalf("findFirstHumanSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestShouldTerminateNoHumans(t *testing.T) {
	bot1 := bot.GetBotIdentity(0).UserID
	bot2 := bot.GetBotIdentity(1).UserID

	tests := []struct {
		name  string
		seats []string
		want  bool
	}{
		{
			name:  "BotsOnly",
			seats: []string{bot1, bot2, "", ""},
			want:  true,
		},
		{
			name:  "HumansPresent",
			seats: []string{bot1, "user-1", "", ""},
			want:  false,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := shouldTerminateNoHumans(test.seats); got != test.want {
				t.Fatalf("shouldTerminateNoHumans() = %t, want %t", got, test.want)
			}
		})
	}
}

func TestLabelFor(t *testing.T) {
	handler := &matchHandler{}

	t.Run("PublicLobbyAdvertisesOpenSeats", func(t *testing.T) {
		state := newTestState("user-1")
		label := handler.labelFor(state)
		if label.Open != maxSeats-1 {
			t.Fatalf("Open = %d, want %d", label.Open, maxSeats-1)
		}
		if label.Phase != "lobby" {
			t.Fatalf("Phase = %q, want lobby", label.Phase)
		}
		if label.Game != "kadi" {
			t.Fatalf("Game = %q, want kadi", label.Game)
		}
	})

	t.Run("PrivateTableHidesOpenSeats", func(t *testing.T) {
		state := newTestState("user-1")
		state.Private = true
		label := handler.labelFor(state)
		if label.Open != 0 {
			t.Fatalf("Open = %d, want 0 for private tables", label.Open)
		}
		if !label.Private {
			t.Fatalf("Private flag not set")
		}
	})

	t.Run("PlayingPhase", func(t *testing.T) {
		state := newTestState("user-1", "user-2")
		state.Game = &domain.Game{Phase: domain.PhasePlaying}
		label := handler.labelFor(state)
		if label.Phase != "playing" {
			t.Fatalf("Phase = %q, want playing", label.Phase)
		}
	})
}

func TestProcessBots_AutoFillsSoloHumanLobby(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState("user-1")
	state.BotsEnabled = true
	state.BotAutoFillDelay = 2
	state.LastSinglePlayerTick = 8
	state.Tick = 10

	handler.processBots(context.Background(), state, dispatcher, noopLogger{})

	botCount := 0
	for _, seat := range state.Seats {
		if isBotUserId(seat) {
			botCount++
		}
	}

	// The test pool holds 4 identities, so one seat stays open at a 6-seat table.
	if botCount != 4 {
		t.Fatalf("Expected 4 bots from the identity pool, got %d", botCount)
	}
	if state.GetOpenSeatsCount() != maxSeats-1-botCount {
		t.Fatalf("Expected %d open seats after auto-fill, got %d", maxSeats-1-botCount, state.GetOpenSeatsCount())
	}
	if state.LastSinglePlayerTick != 0 {
		t.Fatalf("Expected auto-fill timer reset, got %d", state.LastSinglePlayerTick)
	}
	if len(state.Bots) != botCount {
		t.Fatalf("Expected %d agents tracked, got %d", botCount, len(state.Bots))
	}
	if dispatcher.broadcastCount == 0 || dispatcher.labelUpdates == 0 {
		t.Fatalf("Expected snapshot broadcast and label update after auto-fill")
	}
}

func TestProcessBots_WaitsOutAutoFillDelay(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState("user-1")
	state.BotsEnabled = true
	state.BotAutoFillDelay = 5
	state.Tick = 10

	handler.processBots(context.Background(), state, dispatcher, noopLogger{})

	if state.LastSinglePlayerTick != 10 {
		t.Fatalf("Expected wait timer to start at tick 10, got %d", state.LastSinglePlayerTick)
	}
	for _, seat := range state.Seats {
		if isBotUserId(seat) {
			t.Fatalf("No bot should be seated before the delay elapses")
		}
	}
}

func TestHandleStartGame(t *testing.T) {
	t.Run("NonOwnerCannotStart", func(t *testing.T) {
		handler := &matchHandler{}
		dispatcher := &mockDispatcher{}
		state := newTestState("user-1", "user-2")

		msg := mockMatchData{mockPresence: mockPresence{userID: "user-2"}, opCode: OpStartGame}
		handler.handleStartGame(context.Background(), state, dispatcher, noopLogger{}, msg)

		if state.Game != nil {
			t.Fatalf("Non-owner should not be able to start the game")
		}
	})

	t.Run("OwnerStartsWithEnoughPlayers", func(t *testing.T) {
		handler := &matchHandler{}
		dispatcher := &mockDispatcher{}
		state := newTestState("user-1", "user-2", "user-3")

		msg := mockMatchData{mockPresence: mockPresence{userID: "user-1"}, opCode: OpStartGame}
		handler.handleStartGame(context.Background(), state, dispatcher, noopLogger{}, msg)

		if state.Game == nil {
			t.Fatalf("Owner with %d players should start the game", 3)
		}
		if state.Game.Phase != domain.PhasePlaying {
			t.Fatalf("Game phase = %v, want playing", state.Game.Phase)
		}
		if len(state.Game.Players) != 3 {
			t.Fatalf("Expected 3 players in game, got %d", len(state.Game.Players))
		}
		if !dispatcher.sawOpCode(OpGameStarted) {
			t.Fatalf("Expected OpGameStarted broadcast")
		}
		if dispatcher.labelUpdates == 0 {
			t.Fatalf("Expected label update to playing phase")
		}
	})

	t.Run("RejectsSoloStart", func(t *testing.T) {
		handler := &matchHandler{}
		dispatcher := &mockDispatcher{}
		state := newTestState("user-1")

		msg := mockMatchData{mockPresence: mockPresence{userID: "user-1"}, opCode: OpStartGame}
		handler.handleStartGame(context.Background(), state, dispatcher, noopLogger{}, msg)

		if state.Game != nil {
			t.Fatalf("Game must not start with a single player")
		}
	})
}

func TestHandlePlayCards_RejectsMalformedPayload(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState("user-1", "user-2")

	startMsg := mockMatchData{mockPresence: mockPresence{userID: "user-1"}, opCode: OpStartGame}
	handler.handleStartGame(context.Background(), state, dispatcher, noopLogger{}, startMsg)
	if state.Game == nil {
		t.Fatalf("Setup: game did not start")
	}

	playMsg := mockMatchData{
		mockPresence: mockPresence{userID: "user-1"},
		opCode:       OpPlayCards,
		data:         []byte("not json"),
	}
	handler.handlePlayCards(context.Background(), state, dispatcher, noopLogger{}, playMsg)

	if !dispatcher.sawOpCode(OpGameError) {
		t.Fatalf("Expected private OpGameError for malformed payload")
	}
}

func TestBroadcastEvent_PrivateEventSkippedForBots(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	botID := bot.GetBotIdentity(0).UserID
	state := newTestState("user-1", botID)

	ev := app.Event{
		Kind:       app.EventHandDealt,
		Recipients: []string{botID},
		Payload:    app.HandDealtPayload{UserID: botID},
	}
	handler.broadcastEvent(context.Background(), state, dispatcher, noopLogger{}, ev)

	if dispatcher.broadcastCount != 0 {
		t.Fatalf("Private event to a bot must not be broadcast to anyone")
	}
}

func TestGameEndedSettlesWallets(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	botID := bot.GetBotIdentity(0).UserID
	economy := &mockEconomy{}
	state := newTestState("user-1", "user-2", botID)
	state.Economy = economy
	state.Game = &domain.Game{Phase: domain.PhaseEnded}

	ev := app.Event{
		Kind: app.EventGameEnded,
		Payload: app.GameEndedPayload{
			WinnerUserID: "user-1",
			BalanceChanges: map[string]int64{
				"user-1": 200,
				"user-2": -100,
				botID:    -100,
			},
		},
	}
	handler.broadcastEvent(context.Background(), state, dispatcher, noopLogger{}, ev)

	if len(economy.updates) != 2 {
		t.Fatalf("Expected 2 wallet updates (bots excluded), got %d", len(economy.updates))
	}
	byUser := make(map[string]int64)
	for _, u := range economy.updates {
		byUser[u.UserID] = u.Amount
	}
	if byUser["user-1"] != 200 {
		t.Fatalf("Winner payout = %d, want 200", byUser["user-1"])
	}
	if byUser["user-2"] != -100 {
		t.Fatalf("Loser charge = %d, want -100", byUser["user-2"])
	}
	if _, ok := byUser[botID]; ok {
		t.Fatalf("Bot wallets must not be settled")
	}
	if state.Game != nil {
		t.Fatalf("Game should be cleared after settlement")
	}
	if state.LastWinnerID != "user-1" {
		t.Fatalf("LastWinnerID = %q, want user-1", state.LastWinnerID)
	}
	if dispatcher.labelUpdates == 0 {
		t.Fatalf("Expected label update back to lobby")
	}
}

func TestBroadcastSnapshot(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState("user-1", "user-2")
	state.Tick = 42

	handler.broadcastSnapshot(state, dispatcher, noopLogger{})

	if !dispatcher.sawOpCode(OpMatchSnapshot) {
		t.Fatalf("Expected OpMatchSnapshot, got %v", dispatcher.opCodes)
	}
	var snap map[string]interface{}
	if err := json.Unmarshal(dispatcher.lastData, &snap); err != nil {
		t.Fatalf("Snapshot payload is not valid JSON: %v", err)
	}
	if _, ok := snap["seats"]; !ok {
		t.Fatalf("Snapshot payload missing seats: %v", snap)
	}
	if _, ok := snap["owner_seat"]; !ok {
		t.Fatalf("Snapshot payload missing owner_seat: %v", snap)
	}
}
