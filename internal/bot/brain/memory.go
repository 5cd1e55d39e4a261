package brain

import (
	"kadi/internal/domain"
)

// suitSize is how many cards of one suit a single deck holds.
const suitSize = 13

// GameMemory stores the bot's private view of which cards have been seen on
// the table. Seen cards cycle back in via pile reshuffles, so the counts are
// an upper bound on what opponents cannot hold, not an exact ledger; they are
// still a strong signal for choosing suit requests.
type GameMemory struct {
	seenBySuit map[domain.Suit]int
	seenByRank map[domain.Rank]int
	// Opponents tracks behavioral profiles by user id.
	Opponents map[string]*OpponentProfile
}

// NewMemory initializes a fresh memory state.
func NewMemory() *GameMemory {
	m := &GameMemory{}
	m.Reset()
	return m
}

// Reset clears the memory for a new game.
func (m *GameMemory) Reset() {
	m.seenBySuit = make(map[domain.Suit]int)
	m.seenByRank = make(map[domain.Rank]int)
	m.Opponents = make(map[string]*OpponentProfile)
}

// MarkSeen records cards that landed face-up on the pile.
func (m *GameMemory) MarkSeen(cards []domain.Card) {
	for _, c := range cards {
		if c.Suit != domain.SuitNone {
			m.seenBySuit[c.Suit]++
		}
		m.seenByRank[c.Rank]++
	}
}

// SeenSuit returns how many cards of the suit have shown on the table.
func (m *GameMemory) SeenSuit(s domain.Suit) int {
	return m.seenBySuit[s]
}

// UnseenSuit estimates how many cards of the suit are still hidden from the
// bot: not seen on the table and not in its own hand.
func (m *GameMemory) UnseenSuit(s domain.Suit, ownHand []domain.Card) int {
	mine := 0
	for _, c := range ownHand {
		if c.Suit == s {
			mine++
		}
	}
	unseen := suitSize - m.seenBySuit[s] - mine
	if unseen < 0 {
		return 0
	}
	return unseen
}

// BestRequestSuit picks the suit to request with an Ace: the one where the
// bot's own holding is deepest relative to what opponents can still have.
// Requesting a depleted suit starves the table into drawing.
func (m *GameMemory) BestRequestSuit(ownHand []domain.Card) domain.Suit {
	best := domain.SuitSpades
	bestScore := -1 << 30
	for _, s := range domain.Suits {
		mine := 0
		for _, c := range ownHand {
			if c.Suit == s {
				mine++
			}
		}
		score := mine*suitSize - m.UnseenSuit(s, ownHand)
		if score > bestScore {
			bestScore = score
			best = s
		}
	}
	return best
}

// RecordPlay logs that a user played a set of cards.
func (m *GameMemory) RecordPlay(userID string, cards []domain.Card) {
	m.MarkSeen(cards)
	p := m.profile(userID)
	p.RecordPlay(cards)
}

// RecordDraw logs that a user had to draw, and under which suit request.
func (m *GameMemory) RecordDraw(userID string, count int, requested domain.Suit) {
	p := m.profile(userID)
	p.RecordDraw(count, requested)
}

func (m *GameMemory) profile(userID string) *OpponentProfile {
	p, ok := m.Opponents[userID]
	if !ok {
		p = NewOpponentProfile(userID)
		m.Opponents[userID] = p
	}
	return p
}
