package strategy

import (
	"testing"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/game"
)

func TestHiLoRunningCount(t *testing.T) {
	s := NewHiLo(1, 8)

	s.ObserveCard(deck.NewCard(deck.Spades, deck.Two))   // +1
	s.ObserveCard(deck.NewCard(deck.Hearts, deck.Six))   // +1
	s.ObserveCard(deck.NewCard(deck.Clubs, deck.Seven))  // 0
	s.ObserveCard(deck.NewCard(deck.Spades, deck.Nine))  // 0
	s.ObserveCard(deck.NewCard(deck.Diamonds, deck.Ten)) // -1
	s.ObserveCard(deck.NewCard(deck.Spades, deck.King))  // -1
	s.ObserveCard(deck.NewCard(deck.Hearts, deck.Ace))   // -1

	if got := s.RunningCount(); got != -1 {
		t.Errorf("RunningCount() = %d, want -1", got)
	}

	s.ShoeShuffled()
	if got := s.RunningCount(); got != 0 {
		t.Errorf("RunningCount() after shuffle = %d, want 0", got)
	}
}

func TestHiLoBetSpread(t *testing.T) {
	lowCard := deck.NewCard(deck.Spades, deck.Three)

	tests := []struct {
		name     string
		lowCards int
		ctx      game.Context
		expected float64
	}{
		{
			name:     "neutral count bets base",
			lowCards: 0,
			ctx:      game.Context{NumDecks: 1, Penetration: 0},
			expected: 10,
		},
		{
			name:     "negative count still bets base",
			lowCards: 0,
			ctx:      game.Context{NumDecks: 6, Penetration: 0.5},
			expected: 10,
		},
		{
			// running +4 over one full deck is a true count of 4,
			// three units above the ramp start
			name:     "positive count raises the bet",
			lowCards: 4,
			ctx:      game.Context{NumDecks: 1, Penetration: 0},
			expected: 30,
		},
		{
			// running +6 with half a deck left is a true count of 12,
			// capped at the spread
			name:     "spread cap",
			lowCards: 6,
			ctx:      game.Context{NumDecks: 1, Penetration: 0.5},
			expected: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewHiLo(10, 8)
			for i := 0; i < tt.lowCards; i++ {
				s.ObserveCard(lowCard)
			}
			if got := s.AdviseBet(tt.ctx); got != tt.expected {
				t.Errorf("AdviseBet() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"mimic", "basic", "hilo"} {
		s, err := New(name, 1)
		if err != nil {
			t.Errorf("New(%q) error = %v", name, err)
		}
		if s == nil {
			t.Errorf("New(%q) returned nil strategy", name)
		}
	}

	if _, err := New("martingale", 1); err == nil {
		t.Error("New() with unknown name expected error, got nil")
	}
}

func TestRegistryReturnsFreshInstances(t *testing.T) {
	first, err := New("hilo", 1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := New("hilo", 1)
	if err != nil {
		t.Fatal(err)
	}

	first.(*HiLo).ObserveCard(deck.NewCard(deck.Spades, deck.Two))
	if second.(*HiLo).RunningCount() != 0 {
		t.Error("count state leaked between registry instances")
	}
}
