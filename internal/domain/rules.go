package domain

// IsPlayable decides whether a card may be laid on the current table state.
//
// Precedence, highest first:
//  1. No top card yet: anything goes (opening move).
//  2. An outstanding forced draw restricts play to counters — another feeder
//     to extend the stack, a King to reflect it, an Ace to cancel it.
//  3. A requested suit from a prior Ace must be matched (an Ace itself may
//     always renew the request).
//  4. Otherwise the card must match the top card by rank or suit; a joker has
//     no suit and only lands on feeder-rank tops.
func IsPlayable(card Card, top Card, hasTop bool, requestedSuit Suit, forcedDraw int) bool {
	if !hasTop {
		return true
	}
	if forcedDraw > 0 {
		return card.CanCounterFeed()
	}
	if requestedSuit != SuitNone {
		return card.Suit == requestedSuit || card.Rank == RankAce
	}
	if card.Rank == RankJoker {
		return top.IsFeeder()
	}
	return card.Rank == top.Rank || card.Suit == top.Suit
}

// Effect describes what a played card did to the table state. The evaluator
// mutates direction, stack, skip and suit-request fields itself; draws implied
// by a reflection are left to the turn controller, which owns the deck.
type Effect struct {
	FeedAdded      int
	Reversed       bool
	Reflected      bool
	ReflectIndex   int // index of the player who draws the reflected stack
	ReflectAmount  int
	SkipSet        bool
	StackCancelled bool
	SuitRequested  Suit
}

// ApplyEffect applies a confirmed-legal card's effect to the game. nominated
// is the suit the mover requests when the card is an Ace with no stack to
// cancel; bigAce enables the variant where the nominated "big" Ace both
// cancels the stack and requests a suit in one play.
//
// The rank switch is exhaustive over the closed rank enum: plain number cards
// and face cards without an effect fall through to the default arm, which
// clears any satisfied suit request.
func (g *Game) ApplyEffect(card Card, nominated Suit, bigAce bool) Effect {
	switch card.Rank {
	case RankTwo, RankThree, RankJoker:
		g.ForcedDraw += card.FeedAmount()
		g.RequestedSuit = SuitNone
		return Effect{FeedAdded: card.FeedAmount()}

	case RankKing:
		g.Direction = -g.Direction
		eff := Effect{Reversed: true}
		if g.ForcedDraw > 0 {
			// Reflect: the chain lands on the player the turn now reaches
			// next, which is whoever fed the mover under the old direction.
			eff.Reflected = true
			eff.ReflectIndex = g.NextIndex(g.TurnIndex)
			eff.ReflectAmount = g.ForcedDraw
			g.ForcedDraw = 0
		}
		g.RequestedSuit = SuitNone
		return eff

	case RankJack:
		g.PendingSkip = true
		g.RequestedSuit = SuitNone
		return Effect{SkipSet: true}

	case RankAce:
		if g.ForcedDraw > 0 {
			g.ForcedDraw = 0
			g.RequestedSuit = SuitNone
			eff := Effect{StackCancelled: true}
			if bigAce && nominated != SuitNone {
				g.RequestedSuit = nominated
				eff.SuitRequested = nominated
			}
			return eff
		}
		g.RequestedSuit = nominated
		return Effect{SuitRequested: nominated}

	default:
		g.RequestedSuit = SuitNone
		return Effect{}
	}
}

// HasLegalPlay reports whether any card in the hand is playable right now.
func (g *Game) HasLegalPlay(hand []Card) bool {
	top, hasTop := g.TopCard()
	for _, c := range hand {
		if IsPlayable(c, top, hasTop, g.RequestedSuit, g.ForcedDraw) {
			return true
		}
	}
	return false
}

// PlayableCards returns the subset of the hand that is legal to lay right now.
func (g *Game) PlayableCards(hand []Card) []Card {
	top, hasTop := g.TopCard()
	var out []Card
	for _, c := range hand {
		if IsPlayable(c, top, hasTop, g.RequestedSuit, g.ForcedDraw) {
			out = append(out, c)
		}
	}
	return out
}
