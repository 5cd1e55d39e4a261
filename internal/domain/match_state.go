package domain

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	// PhaseLobby indicates the match is waiting for players.
	PhaseLobby Phase = "lobby"
	// PhasePlaying indicates the match is actively in progress.
	PhasePlaying Phase = "playing"
	// PhaseEnded indicates the match has finished.
	PhaseEnded Phase = "ended"
)

// Player holds the domain state for a player in a match.
type Player struct {
	UserID   string
	Seat     int // 1-based seat number assigned at deal time
	Hand     []Card
	Declared bool // "Niko Kadi" called before going out
}

// MustDeclare reports whether the player is one card from finishing without
// having declared; further plays are rejected until they declare or draw.
func (p *Player) MustDeclare() bool {
	return len(p.Hand) == 1 && !p.Declared
}

// Game captures the authoritative domain state for a single match instance.
// Players holds the active rotation in seating order; eliminated players are
// removed from it and recorded in Eliminated.
// Settings are the table rules a game is dealt under. They are fixed at
// deal time and travel with the game state.
type Settings struct {
	HandSize         int   // cards dealt to each player
	EliminationLimit int   // hand size beyond which a player is out; 0 disables
	BaseBet          int64 // per-player stake, paid to the winner
	BigAceSuit       Suit  // if set, the Ace of this suit both cancels a stack and requests a suit
}

type Game struct {
	Phase    Phase
	Settings Settings
	Players  []*Player

	TurnIndex     int
	Direction     int // +1 clockwise, -1 counter-clockwise
	ForcedDraw    int // pending cards the next non-countering player must draw
	RequestedSuit Suit
	PendingSkip   bool

	Deck []Card
	Pile []Card // last element is the top card

	WinnerUserID string
	Stalemate    bool
	Eliminated   []string

	// TotalCards is fixed at deal time; deck + pile + hands must always sum to it.
	TotalCards int
}

// TopCard returns the card subsequent plays must match. ok is false only
// before the opening card has been dealt.
func (g *Game) TopCard() (Card, bool) {
	if len(g.Pile) == 0 {
		return Card{}, false
	}
	return g.Pile[len(g.Pile)-1], true
}

// CurrentPlayer returns the player whose turn it is, or nil outside PhasePlaying.
func (g *Game) CurrentPlayer() *Player {
	if g.Phase != PhasePlaying || len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.TurnIndex]
}

// PlayerByID finds an active player by user id.
func (g *Game) PlayerByID(userID string) *Player {
	for _, p := range g.Players {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// Advance moves the turn pointer one step in the current direction, two when a
// skip is pending. The skip flag is consumed.
func (g *Game) Advance() {
	n := len(g.Players)
	if n == 0 {
		return
	}
	step := 1
	if g.PendingSkip {
		step = 2
		g.PendingSkip = false
	}
	g.TurnIndex = ((g.TurnIndex+g.Direction*step)%n + n) % n
}

// NextIndex returns the index the turn would reach from the given index,
// without consuming any pending skip.
func (g *Game) NextIndex(from int) int {
	n := len(g.Players)
	return ((from+g.Direction)%n + n) % n
}

// RemovePlayer drops the player at the given index from the rotation and
// clamps the turn pointer into the shortened range. When the removed player
// held the turn, it passes to whoever would have acted next.
func (g *Game) RemovePlayer(idx int) *Player {
	removed := g.Players[idx]
	next := g.NextIndex(idx)
	g.Players = append(g.Players[:idx], g.Players[idx+1:]...)
	g.Eliminated = append(g.Eliminated, removed.UserID)

	if len(g.Players) == 0 {
		g.TurnIndex = 0
		return removed
	}
	switch {
	case g.TurnIndex == idx:
		if next > idx {
			next--
		}
		g.TurnIndex = next % len(g.Players)
	case g.TurnIndex > idx:
		g.TurnIndex--
	}
	return removed
}

// CountCards returns the live card total across deck, pile and hands.
func (g *Game) CountCards() int {
	n := len(g.Deck) + len(g.Pile)
	for _, p := range g.Players {
		n += len(p.Hand)
	}
	return n
}

// HandContains reports whether the hand holds every requested card, counting
// duplicates (two jokers must really be two jokers).
func HandContains(hand []Card, cards []Card) bool {
	counts := make(map[Card]int, len(hand))
	for _, c := range hand {
		counts[c]++
	}
	for _, c := range cards {
		if counts[c] == 0 {
			return false
		}
		counts[c]--
	}
	return true
}

// RemoveCards removes the specified cards from a hand and returns the updated
// hand. Each requested card removes at most one matching copy.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return hand
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, card := range toRemove {
		removeCounts[card]++
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if count, ok := removeCounts[card]; ok && count > 0 {
			removeCounts[card] = count - 1
			continue
		}
		updated = append(updated, card)
	}

	return updated
}
