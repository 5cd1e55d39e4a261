package app

import (
	"errors"
	"math/rand"
	"time"

	"kadi/internal/domain"
)

var (
	ErrMatchNotInProgress = errors.New("match is not in progress")
	ErrTooFewPlayers      = errors.New("not enough players to start a game")
	ErrTooManyPlayers     = errors.New("too many players for one table")
	ErrUnknownPlayer      = errors.New("player is not seated in this match")
	ErrNotYourTurn        = errors.New("not this player's turn")
	ErrNoCardsPlayed      = errors.New("no cards in the play")
	ErrCardNotInHand      = errors.New("card is not in the player's hand")
	ErrIllegalMove        = errors.New("cards cannot be laid on the current table")
	ErrUndeclaredFinish   = errors.New("cannot play the last card without declaring")
	ErrHasLegalPlay       = errors.New("a playable card is in hand")
)

// Service drives a game from deal to finish. It owns the randomness used for
// shuffling and drawing; all other state lives on the domain.Game it is handed,
// so one Service can serve many concurrent matches.
type Service struct {
	rng *rand.Rand
}

func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// StartMatch deals a fresh game for the given seats. The opening card is
// flipped from the deck; action cards are not allowed to open, so any flipped
// ones go back into the deck until a plain card shows.
func (s *Service) StartMatch(playerIDs []string, settings domain.Settings) (*domain.Game, []Event, error) {
	if len(playerIDs) < MinPlayersToStartGame {
		return nil, nil, ErrTooFewPlayers
	}
	if len(playerIDs) > MaxPlayersPerMatch {
		return nil, nil, ErrTooManyPlayers
	}
	if settings.HandSize <= 0 {
		settings.HandSize = DefaultHandSize
	}

	deck := domain.ShuffleDeck(s.rng, domain.NewDeck())
	g := &domain.Game{
		Phase:      domain.PhasePlaying,
		Settings:   settings,
		Direction:  1,
		Deck:       deck,
		TotalCards: len(deck),
	}
	for i, id := range playerIDs {
		g.Players = append(g.Players, &domain.Player{UserID: id, Seat: i + 1})
	}

	events := make([]Event, 0, len(playerIDs)+1)
	for _, p := range g.Players {
		hand, err := g.DrawFromDeck(s.rng, settings.HandSize)
		if err != nil {
			return nil, nil, err
		}
		p.Hand = hand
		events = append(events, private(EventHandDealt, p.UserID, HandDealtPayload{
			UserID: p.UserID,
			Hand:   p.Hand,
		}))
	}

	top, err := s.flipOpeningCard(g)
	if err != nil {
		return nil, nil, err
	}
	g.Pile = append(g.Pile, top)
	g.TurnIndex = s.rng.Intn(len(g.Players))

	events = append(events, broadcast(EventGameStarted, GameStartedPayload{
		PlayerIDs: playerIDs,
		TurnOf:    g.CurrentPlayer().UserID,
		TopCard:   top,
		HandSize:  settings.HandSize,
	}))
	return g, events, nil
}

// flipOpeningCard draws until a plain card shows. Feeders, skips, reverses,
// aces and jokers would give the opening an effect nobody played, so they are
// returned to the deck instead.
func (s *Service) flipOpeningCard(g *domain.Game) (domain.Card, error) {
	var rejected []domain.Card
	for {
		drawn, err := g.DrawFromDeck(s.rng, 1)
		if err != nil || len(drawn) == 0 {
			return domain.Card{}, domain.ErrDeckExhausted
		}
		c := drawn[0]
		switch c.Rank {
		case domain.RankTwo, domain.RankThree, domain.RankJoker,
			domain.RankJack, domain.RankKing, domain.RankAce:
			rejected = append(rejected, c)
		default:
			g.ReturnToDeck(s.rng, rejected)
			return c, nil
		}
	}
}

// PlayCards lays one or more same-rank cards for the player, applies their
// effects in order and advances the turn. requestSuit only matters when the
// play contains an Ace that ends up requesting a suit.
func (s *Service) PlayCards(g *domain.Game, userID string, cards []domain.Card, requestSuit domain.Suit) ([]Event, error) {
	pl, err := s.playerToMove(g, userID)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, ErrNoCardsPlayed
	}
	for _, c := range cards[1:] {
		if c.Rank != cards[0].Rank {
			return nil, ErrIllegalMove
		}
	}
	if !domain.HandContains(pl.Hand, cards) {
		return nil, ErrCardNotInHand
	}
	if pl.MustDeclare() {
		return nil, ErrUndeclaredFinish
	}
	top, hasTop := g.TopCard()
	if !domain.IsPlayable(cards[0], top, hasTop, g.RequestedSuit, g.ForcedDraw) {
		return nil, ErrIllegalMove
	}

	pl.Hand = domain.RemoveCards(pl.Hand, cards)
	g.Pile = append(g.Pile, cards...)

	events := []Event{broadcast(EventCardPlayed, CardPlayedPayload{
		UserID:      userID,
		Cards:       cards,
		MustDeclare: pl.MustDeclare(),
	})}

	for _, c := range cards {
		bigAce := c.Rank == domain.RankAce &&
			g.Settings.BigAceSuit != domain.SuitNone &&
			c.Suit == g.Settings.BigAceSuit
		eff := g.ApplyEffect(c, requestSuit, bigAce)
		if eff.SuitRequested != domain.SuitNone {
			events = append(events, broadcast(EventSuitRequested, SuitRequestedPayload{
				UserID: userID,
				Suit:   eff.SuitRequested,
			}))
		}
		if eff.Reflected {
			events = append(events, s.reflectDraw(g, eff.ReflectIndex, eff.ReflectAmount)...)
			if g.Phase == domain.PhaseEnded {
				return events, nil
			}
		}
	}

	if len(pl.Hand) == 0 {
		if pl.Declared {
			return append(events, s.endWithWinner(g, pl.UserID)...), nil
		}
		// Finished without calling Niko Kadi: the win does not count and the
		// player picks up a penalty card instead.
		drawn, derr := g.DrawFromDeck(s.rng, 1)
		if derr != nil && len(drawn) == 0 {
			return append(events, s.endInStalemate(g)...), nil
		}
		pl.Hand = append(pl.Hand, drawn...)
		events = append(events,
			broadcast(EventForcedDraw, ForcedDrawPayload{UserID: userID, Count: len(drawn), Penalty: true}),
			private(EventCardsDrawn, userID, CardsDrawnPayload{UserID: userID, Cards: drawn}),
		)
	}

	return append(events, s.advance(g)...), nil
}

// Declare records the player's Niko Kadi call. Declaring twice is a no-op.
func (s *Service) Declare(g *domain.Game, userID string) ([]Event, error) {
	if g.Phase != domain.PhasePlaying {
		return nil, ErrMatchNotInProgress
	}
	pl := g.PlayerByID(userID)
	if pl == nil {
		return nil, ErrUnknownPlayer
	}
	if pl.Declared {
		return nil, nil
	}
	pl.Declared = true
	return []Event{broadcast(EventDeclared, DeclaredPayload{UserID: userID})}, nil
}

// Draw takes the outstanding forced-draw stack, or a single card when there is
// none. Drawing is only legal when the player has no playable card, except that
// a player sitting on an undeclared last card may always draw their way out.
func (s *Service) Draw(g *domain.Game, userID string) ([]Event, error) {
	pl, err := s.playerToMove(g, userID)
	if err != nil {
		return nil, err
	}
	if !pl.MustDeclare() && g.HasLegalPlay(pl.Hand) {
		return nil, ErrHasLegalPlay
	}

	consumed := g.ForcedDraw > 0
	n := g.ForcedDraw
	if n < 1 {
		n = 1
	}
	drawn, derr := g.DrawFromDeck(s.rng, n)
	pl.Hand = append(pl.Hand, drawn...)
	g.ForcedDraw = 0
	if derr != nil {
		// Neither deck nor pile can supply the draw: nobody can move the game
		// forward any more.
		return s.endInStalemate(g), nil
	}

	events := []Event{
		broadcast(EventForcedDraw, ForcedDrawPayload{UserID: userID, Count: len(drawn)}),
		private(EventCardsDrawn, userID, CardsDrawnPayload{UserID: userID, Cards: drawn}),
	}
	if consumed {
		if ev, ended := s.eliminateIfOverLimit(g, pl); ev != nil {
			events = append(events, ev...)
			if ended {
				return events, nil
			}
			// The eliminated player's turn already passed on removal.
			return append(events, s.turnEvent(g, false)), nil
		}
	}
	return append(events, s.advance(g)...), nil
}

// MoveKind discriminates the moves a seated player (or bot) can submit.
type MoveKind string

const (
	MovePlay    MoveKind = "play"
	MoveDraw    MoveKind = "draw"
	MoveDeclare MoveKind = "declare"
)

type Move struct {
	Kind        MoveKind
	UserID      string
	Cards       []domain.Card
	RequestSuit domain.Suit
}

// Apply dispatches a move to the matching service operation.
func (s *Service) Apply(g *domain.Game, m Move) ([]Event, error) {
	switch m.Kind {
	case MovePlay:
		return s.PlayCards(g, m.UserID, m.Cards, m.RequestSuit)
	case MoveDraw:
		return s.Draw(g, m.UserID)
	case MoveDeclare:
		return s.Declare(g, m.UserID)
	default:
		return nil, ErrIllegalMove
	}
}

func (s *Service) playerToMove(g *domain.Game, userID string) (*domain.Player, error) {
	if g == nil || g.Phase != domain.PhasePlaying {
		return nil, ErrMatchNotInProgress
	}
	pl := g.PlayerByID(userID)
	if pl == nil {
		return nil, ErrUnknownPlayer
	}
	if g.CurrentPlayer() != pl {
		return nil, ErrNotYourTurn
	}
	return pl, nil
}

// reflectDraw lands a King-reflected stack on the player at idx. The deck may
// run short mid-draw; whatever was drawn stays with the target.
func (s *Service) reflectDraw(g *domain.Game, idx, amount int) []Event {
	target := g.Players[idx]
	drawn, _ := g.DrawFromDeck(s.rng, amount)
	target.Hand = append(target.Hand, drawn...)

	events := []Event{
		broadcast(EventForcedDraw, ForcedDrawPayload{UserID: target.UserID, Count: len(drawn)}),
		private(EventCardsDrawn, target.UserID, CardsDrawnPayload{UserID: target.UserID, Cards: drawn}),
	}
	if ev, _ := s.eliminateIfOverLimit(g, target); ev != nil {
		events = append(events, ev...)
	}
	return events
}

// eliminateIfOverLimit removes the player when a forced draw pushed their hand
// past the table limit. Their cards go back into the deck so the card count
// stays closed. ended is true when the removal left a single player standing.
func (s *Service) eliminateIfOverLimit(g *domain.Game, pl *domain.Player) (events []Event, ended bool) {
	limit := g.Settings.EliminationLimit
	if limit <= 0 || len(pl.Hand) <= limit {
		return nil, false
	}
	idx := -1
	for i, p := range g.Players {
		if p == pl {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	events = append(events, broadcast(EventPlayerEliminated, PlayerEliminatedPayload{
		UserID:    pl.UserID,
		HandCount: len(pl.Hand),
	}))
	g.RemovePlayer(idx)
	g.ReturnToDeck(s.rng, pl.Hand)
	pl.Hand = nil

	if len(g.Players) == 1 {
		return append(events, s.endWithWinner(g, g.Players[0].UserID)...), true
	}
	return events, false
}

func (s *Service) advance(g *domain.Game) []Event {
	skipped := g.PendingSkip
	g.Advance()
	return []Event{s.turnEvent(g, skipped)}
}

func (s *Service) turnEvent(g *domain.Game, skipped bool) Event {
	return broadcast(EventTurnAdvanced, TurnAdvancedPayload{
		TurnOf:  g.CurrentPlayer().UserID,
		Skipped: skipped,
	})
}

func (s *Service) endWithWinner(g *domain.Game, winnerID string) []Event {
	g.Phase = domain.PhaseEnded
	g.WinnerUserID = winnerID
	return []Event{broadcast(EventGameEnded, GameEndedPayload{
		WinnerUserID:   winnerID,
		BalanceChanges: settle(g, winnerID),
	})}
}

func (s *Service) endInStalemate(g *domain.Game) []Event {
	g.Phase = domain.PhaseEnded
	g.Stalemate = true
	return []Event{broadcast(EventGameEnded, GameEndedPayload{Stalemate: true})}
}

// settle computes the winner-takes-pot payout: every other participant,
// eliminated players included, pays the base bet to the winner. A zero bet
// means a friendly table and no transfers.
func settle(g *domain.Game, winnerID string) map[string]int64 {
	bet := g.Settings.BaseBet
	if bet <= 0 {
		return nil
	}
	changes := make(map[string]int64)
	for _, p := range g.Players {
		if p.UserID != winnerID {
			changes[p.UserID] = -bet
		}
	}
	for _, id := range g.Eliminated {
		changes[id] = -bet
	}
	changes[winnerID] = bet * int64(len(changes))
	return changes
}
