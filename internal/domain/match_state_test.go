package domain

import "testing"

func TestAdvance(t *testing.T) {
	tests := []struct {
		name      string
		players   int
		turn      int
		direction int
		skip      bool
		want      int
	}{
		{name: "clockwise step", players: 4, turn: 0, direction: 1, want: 1},
		{name: "clockwise wrap", players: 4, turn: 3, direction: 1, want: 0},
		{name: "counter-clockwise step", players: 4, turn: 2, direction: -1, want: 1},
		{name: "counter-clockwise wrap", players: 4, turn: 0, direction: -1, want: 3},
		{name: "skip jumps two", players: 4, turn: 0, direction: 1, skip: true, want: 2},
		{name: "skip wraps", players: 3, turn: 2, direction: 1, skip: true, want: 1},
		{name: "skip in two-player returns to mover", players: 2, turn: 0, direction: 1, skip: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(tt.players)
			g.TurnIndex = tt.turn
			g.Direction = tt.direction
			g.PendingSkip = tt.skip

			g.Advance()
			if g.TurnIndex != tt.want {
				t.Fatalf("turn index = %d, want %d", g.TurnIndex, tt.want)
			}
			if g.PendingSkip {
				t.Fatal("pending skip not consumed")
			}
		})
	}
}

func TestRemovePlayerClampsTurn(t *testing.T) {
	tests := []struct {
		name      string
		players   int
		turn      int
		direction int
		remove    int
		wantTurn  int
	}{
		{name: "before current shifts index", players: 4, turn: 2, direction: 1, remove: 0, wantTurn: 1},
		{name: "after current keeps index", players: 4, turn: 1, direction: 1, remove: 3, wantTurn: 1},
		{name: "current passes forward", players: 4, turn: 1, direction: 1, remove: 1, wantTurn: 1},
		{name: "current passes backward", players: 4, turn: 1, direction: -1, remove: 1, wantTurn: 0},
		{name: "current at end wraps", players: 3, turn: 2, direction: 1, remove: 2, wantTurn: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(tt.players)
			g.TurnIndex = tt.turn
			g.Direction = tt.direction

			removed := g.RemovePlayer(tt.remove)
			if removed == nil {
				t.Fatal("no player removed")
			}
			if len(g.Players) != tt.players-1 {
				t.Fatalf("players = %d, want %d", len(g.Players), tt.players-1)
			}
			if g.TurnIndex != tt.wantTurn {
				t.Fatalf("turn index = %d, want %d", g.TurnIndex, tt.wantTurn)
			}
			if g.Eliminated[len(g.Eliminated)-1] != removed.UserID {
				t.Fatalf("eliminated record missing %s", removed.UserID)
			}
		})
	}
}

func TestHandContains(t *testing.T) {
	hand := []Card{
		{Suit: SuitSpades, Rank: RankTwo},
		{Suit: SuitNone, Rank: RankJoker},
	}

	if !HandContains(hand, []Card{{Suit: SuitNone, Rank: RankJoker}}) {
		t.Fatal("single joker should be found")
	}
	if HandContains(hand, []Card{{Suit: SuitNone, Rank: RankJoker}, {Suit: SuitNone, Rank: RankJoker}}) {
		t.Fatal("duplicate joker must not match a single copy")
	}
	if HandContains(hand, []Card{{Suit: SuitHearts, Rank: RankTwo}}) {
		t.Fatal("wrong suit should not match")
	}
}

func TestRemoveCards(t *testing.T) {
	hand := []Card{
		{Suit: SuitSpades, Rank: RankTwo},
		{Suit: SuitSpades, Rank: RankTwo},
		{Suit: SuitHearts, Rank: RankNine},
	}

	updated := RemoveCards(hand, []Card{{Suit: SuitSpades, Rank: RankTwo}})
	if len(updated) != 2 {
		t.Fatalf("hand size = %d, want 2", len(updated))
	}
	// Only one of the duplicate twos may go.
	if !HandContains(updated, []Card{{Suit: SuitSpades, Rank: RankTwo}}) {
		t.Fatal("one copy of 2S should remain")
	}
}

func TestMustDeclare(t *testing.T) {
	p := &Player{Hand: []Card{{Suit: SuitSpades, Rank: RankTwo}}}
	if !p.MustDeclare() {
		t.Fatal("one undeclared card should require a declaration")
	}
	p.Declared = true
	if p.MustDeclare() {
		t.Fatal("declared player owes nothing")
	}
}
