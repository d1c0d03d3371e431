// Package rules provides built-in RuleSet implementations.
package rules

import (
	"github.com/lox/blackjacksim/internal/game"
)

// Standard implements the common blackjack table rules: the dealer stands
// on 17, a natural pays 3:2 and pushes against a dealer natural, and
// players may hit until their minimum total reaches 21.
type Standard struct {
	// HitSoft17 makes the dealer hit a soft 17 instead of standing.
	HitSoft17 bool

	// BlackjackPayout is the multiple of the bet paid for an unmatched
	// natural. 1.5 is the standard 3:2 table.
	BlackjackPayout float64
}

// NewStandard returns the default rules: stand on soft 17, 3:2 naturals.
func NewStandard() *Standard {
	return &Standard{BlackjackPayout: 1.5}
}

// Name identifies the ruleset in round records.
func (r *Standard) Name() string {
	if r.HitSoft17 {
		return "standard-h17"
	}
	return "standard"
}

// PlayerOptions returns the legal actions for a player hand. Standing is
// always legal; hitting is legal while even the all-aces-low total is
// under 21.
func (r *Standard) PlayerOptions(hand *game.Hand) []game.Action {
	if hand.MinTotal() < 21 {
		return []game.Action{game.Hit, game.Stand}
	}
	return []game.Action{game.Stand}
}

// DealerPlay hits below 17 and stands at 17 or better, except that a soft
// 17 is hit when the variant is enabled.
func (r *Standard) DealerPlay(hand *game.Hand) game.Action {
	best, ok := hand.BestTotal()
	if !ok {
		return game.Stand
	}
	if best < 17 {
		return game.Hit
	}
	if best == 17 && hand.IsSoft() && r.HitSoft17 {
		return game.Hit
	}
	return game.Stand
}

// Payout settles one player hand against the dealer hand: +bet on a win,
// +BlackjackPayout×bet on an unmatched natural, 0 on a push, -bet on a
// loss or bust. A player bust loses regardless of the dealer's final
// total; dealer naturals push player naturals and beat everything else.
func (r *Standard) Payout(player, dealer *game.Hand, bet float64) float64 {
	if player.IsBlackjack() {
		if dealer.IsBlackjack() {
			return 0
		}
		return bet * r.BlackjackPayout
	}
	if player.IsBust() {
		return -bet
	}
	if dealer.IsBlackjack() {
		return -bet
	}
	if dealer.IsBust() {
		return bet
	}

	playerTotal, _ := player.BestTotal()
	dealerTotal, _ := dealer.BestTotal()
	switch {
	case playerTotal > dealerTotal:
		return bet
	case playerTotal < dealerTotal:
		return -bet
	default:
		return 0
	}
}
