package nakama

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"kadi/internal/domain"
)

// WireCard is the shape cards travel in on the client protocol. Rank uses the
// numeric domain values (11 jack .. 15 joker); suit is the one-letter code,
// empty for jokers.
type WireCard struct {
	Rank int    `json:"rank"`
	Suit string `json:"suit"`
}

func cardsToWire(cards []domain.Card) []WireCard {
	out := make([]WireCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, WireCard{Rank: int(c.Rank), Suit: string(c.Suit)})
	}
	return out
}

func cardsFromWire(cards []WireCard) ([]domain.Card, error) {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if c.Rank < int(domain.RankTwo) || c.Rank > int(domain.RankJoker) {
			return nil, fmt.Errorf("invalid card rank %d", c.Rank)
		}
		suit := domain.Suit(c.Suit)
		switch suit {
		case domain.SuitSpades, domain.SuitHearts, domain.SuitDiamonds, domain.SuitClubs, domain.SuitNone:
		default:
			return nil, fmt.Errorf("invalid card suit %q", c.Suit)
		}
		out = append(out, domain.Card{Rank: domain.Rank(c.Rank), Suit: suit})
	}
	return out, nil
}

// marshalStruct converts any JSON-taggable value into a protobuf Struct and
// renders it with protojson. Labels and snapshots go out this way so the
// same bytes satisfy both Nakama's label queries and proto-typed clients.
func marshalStruct(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}
