package game

import (
	"strings"

	"github.com/lox/blackjacksim/internal/deck"
)

// Hand is the ordered sequence of cards held by one participant during a
// round. Scores are computed on demand; the hand is reset at every round
// boundary rather than reallocated.
type Hand struct {
	cards []deck.Card
}

// NewHand creates an empty hand.
func NewHand() *Hand {
	return &Hand{cards: make([]deck.Card, 0, 8)}
}

// AddCard appends a card to the hand.
func (h *Hand) AddCard(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Reset empties the hand for the next round, keeping capacity.
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
}

// Cards returns the cards in deal order. Callers must not mutate the slice.
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// NumCards returns the number of cards in the hand.
func (h *Hand) NumCards() int {
	return len(h.cards)
}

// PossibleTotals returns every total reachable by counting each ace as
// either 1 or 11, in ascending order. With k aces there are k+1 totals,
// each 10 apart, so no deduplication is needed.
func (h *Hand) PossibleTotals() []int {
	base := 0
	aces := 0
	for _, c := range h.cards {
		values := c.Values()
		base += values[0]
		if c.IsAce() {
			aces++
		}
	}

	totals := make([]int, aces+1)
	for i := range totals {
		totals[i] = base + 10*i
	}
	return totals
}

// MinTotal returns the lowest possible total (every ace counted as 1).
func (h *Hand) MinTotal() int {
	return h.PossibleTotals()[0]
}

// BestTotal returns the highest possible total that does not exceed 21.
// ok is false if the hand is bust, which happens exactly when even the
// all-aces-as-1 total exceeds 21.
func (h *Hand) BestTotal() (total int, ok bool) {
	best := 0
	for _, t := range h.PossibleTotals() {
		if t <= 21 && t > best {
			best = t
		}
	}
	if best == 0 {
		return 0, false
	}
	return best, true
}

// IsBust reports whether no achievable total is 21 or less.
func (h *Hand) IsBust() bool {
	return h.MinTotal() > 21
}

// IsSoft reports whether the best total counts an ace as 11.
func (h *Hand) IsSoft() bool {
	best, ok := h.BestTotal()
	return ok && best != h.MinTotal()
}

// IsBlackjack reports whether the hand is a natural: exactly two cards
// totaling 21. A 21 reached after hitting is scored as 21 but is not a
// blackjack, which matters because payout tables treat naturals
// differently.
func (h *Hand) IsBlackjack() bool {
	if len(h.cards) != 2 {
		return false
	}
	best, ok := h.BestTotal()
	return ok && best == 21
}

// String returns the cards joined by spaces (e.g., "A♠ K♥")
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
