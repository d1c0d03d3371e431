package game

import (
	"reflect"
	"testing"

	"github.com/lox/blackjacksim/internal/deck"
)

func handOf(ranks ...deck.Rank) *Hand {
	h := NewHand()
	for _, r := range ranks {
		h.AddCard(deck.NewCard(deck.Spades, r))
	}
	return h
}

func TestHandPossibleTotals(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []deck.Rank
		expected []int
	}{
		{"no aces is simple sum", []deck.Rank{deck.Ten, deck.Seven}, []int{17}},
		{"one ace gives two totals", []deck.Rank{deck.Ace, deck.Six}, []int{7, 17}},
		{"two aces give three totals", []deck.Rank{deck.Ace, deck.Ace}, []int{2, 12, 22}},
		{"three aces give four totals", []deck.Rank{deck.Ace, deck.Ace, deck.Ace}, []int{3, 13, 23, 33}},
		{"face cards count ten", []deck.Rank{deck.King, deck.Queen, deck.Jack}, []int{30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := handOf(tt.ranks...).PossibleTotals()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("PossibleTotals() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHandBestTotal(t *testing.T) {
	tests := []struct {
		name  string
		ranks []deck.Rank
		total int
		bust  bool
	}{
		{"hard seventeen", []deck.Rank{deck.Ten, deck.Seven}, 17, false},
		{"ace counts high when safe", []deck.Rank{deck.Ace, deck.Six}, 17, false},
		{"ace drops low to avoid bust", []deck.Rank{deck.Ace, deck.Six, deck.Nine}, 16, false},
		{"two aces best is twelve", []deck.Rank{deck.Ace, deck.Ace}, 12, false},
		{"blackjack total", []deck.Rank{deck.Ace, deck.King}, 21, false},
		{"bust with all aces low", []deck.Rank{deck.Ten, deck.Nine, deck.Five}, 0, true},
		{"ace cannot save busted hand", []deck.Rank{deck.Ten, deck.Ace, deck.King, deck.Five}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handOf(tt.ranks...)
			total, ok := h.BestTotal()
			if tt.bust {
				if ok {
					t.Errorf("BestTotal() = %d, expected bust", total)
				}
				if !h.IsBust() {
					t.Error("IsBust() = false, want true")
				}
				return
			}
			if !ok {
				t.Fatal("BestTotal() reported bust, expected total")
			}
			if total != tt.total {
				t.Errorf("BestTotal() = %d, want %d", total, tt.total)
			}
			if h.IsBust() {
				t.Error("IsBust() = true, want false")
			}
		})
	}
}

func TestHandIsBlackjack(t *testing.T) {
	if !handOf(deck.Ace, deck.King).IsBlackjack() {
		t.Error("ace-king should be a blackjack")
	}
	if !handOf(deck.Ten, deck.Ace).IsBlackjack() {
		t.Error("ten-ace should be a blackjack")
	}

	// 21 in three cards is never a natural
	if handOf(deck.Five, deck.Six, deck.Ten).IsBlackjack() {
		t.Error("5+6+10 totals 21 but is not a blackjack")
	}
	if handOf(deck.Ten, deck.Nine).IsBlackjack() {
		t.Error("nineteen is not a blackjack")
	}
	if handOf(deck.Ace, deck.Five).IsBlackjack() {
		t.Error("soft sixteen is not a blackjack")
	}
}

func TestHandIsSoft(t *testing.T) {
	tests := []struct {
		name  string
		ranks []deck.Rank
		soft  bool
	}{
		{"ace six is soft", []deck.Rank{deck.Ace, deck.Six}, true},
		{"hard seventeen", []deck.Rank{deck.Ten, deck.Seven}, false},
		{"ace forced low is hard", []deck.Rank{deck.Ace, deck.Six, deck.Nine}, false},
		{"two aces soft twelve", []deck.Rank{deck.Ace, deck.Ace}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handOf(tt.ranks...).IsSoft(); got != tt.soft {
				t.Errorf("IsSoft() = %v, want %v", got, tt.soft)
			}
		})
	}
}

func TestHandReset(t *testing.T) {
	h := handOf(deck.Ten, deck.Seven)
	h.Reset()
	if h.NumCards() != 0 {
		t.Errorf("NumCards() after Reset = %d, want 0", h.NumCards())
	}
	if got := h.PossibleTotals(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("PossibleTotals() of empty hand = %v, want [0]", got)
	}
}
