package internal

import (
	"testing"

	"kadi/internal/domain"
)

func TestDetectPhase(t *testing.T) {
	tests := []struct {
		name string
		size int
		want GamePhase
	}{
		{"big hand opens", 7, PhaseOpening},
		{"boundary opening", 5, PhaseOpening},
		{"mid hand", 3, PhaseMid},
		{"two cards is endgame", 2, PhaseEnd},
		{"last card", 1, PhaseEnd},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hand := make([]domain.Card, tc.size)
			if got := DetectPhase(hand); got != tc.want {
				t.Fatalf("phase = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDetectThreat(t *testing.T) {
	self := &domain.Player{UserID: "me", Hand: make([]domain.Card, 1)}
	opp := &domain.Player{UserID: "them", Hand: make([]domain.Card, 5)}
	g := &domain.Game{Players: []*domain.Player{self, opp}}

	if DetectThreat(g, self, 2) {
		t.Fatal("threat with a five-card opponent")
	}
	opp.Hand = opp.Hand[:2]
	if !DetectThreat(g, self, 2) {
		t.Fatal("no threat with a two-card opponent")
	}
	// Own small hand never counts as a threat.
	opp.Hand = make([]domain.Card, 5)
	if DetectThreat(g, self, 2) {
		t.Fatal("own hand counted as a threat")
	}
}
