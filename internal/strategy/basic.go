package strategy

import (
	"github.com/lox/blackjacksim/internal/game"
)

// Basic plays the hit/stand portion of basic strategy against the
// dealer's upcard:
//
//	hard 11 or less   always hit
//	hard 12           stand vs 4-6, otherwise hit
//	hard 13-16        stand vs 2-6, otherwise hit
//	hard 17 or more   always stand
//	soft 17 or less   always hit
//	soft 18           stand vs 2-8, hit vs 9, 10 or ace
//	soft 19 or more   always stand
//
// Flat bet.
type Basic struct {
	Bet float64
}

// NewBasic creates a basic-strategy player with a flat unit bet.
func NewBasic(bet float64) *Basic {
	return &Basic{Bet: bet}
}

// AdviseBet returns the flat bet.
func (s *Basic) AdviseBet(game.Context) float64 {
	return s.Bet
}

// AdvisePlay applies the chart. Falls back to standing when the chart
// says hit but hitting is not legal.
func (s *Basic) AdvisePlay(ctx game.Context, legal []game.Action) game.Action {
	if basicWantsHit(ctx) && hasAction(legal, game.Hit) {
		return game.Hit
	}
	return game.Stand
}

// basicWantsHit decides hit/stand from the hand total, softness and the
// dealer upcard value (ace counted as 11).
func basicWantsHit(ctx game.Context) bool {
	best, ok := ctx.Hand.BestTotal()
	if !ok {
		return false
	}
	upcard := ctx.UpcardValue()

	if ctx.Hand.IsSoft() {
		switch {
		case best <= 17:
			return true
		case best == 18:
			return upcard >= 9
		default:
			return false
		}
	}

	switch {
	case best <= 11:
		return true
	case best == 12:
		return upcard < 4 || upcard > 6
	case best <= 16:
		return upcard > 6
	default:
		return false
	}
}
