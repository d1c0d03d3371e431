// Package strategy provides built-in player strategies.
package strategy

import (
	"github.com/lox/blackjacksim/internal/game"
)

// Mimic plays the dealer's own rule: hit while the best total is 16 or
// less, stand otherwise. Flat bet. Useful as a baseline since its edge is
// well known.
type Mimic struct {
	Bet float64
}

// NewMimic creates a dealer-mimic strategy with a flat unit bet.
func NewMimic(bet float64) *Mimic {
	return &Mimic{Bet: bet}
}

// AdviseBet returns the flat bet.
func (s *Mimic) AdviseBet(game.Context) float64 {
	return s.Bet
}

// AdvisePlay hits under 17 when hitting is legal.
func (s *Mimic) AdvisePlay(ctx game.Context, legal []game.Action) game.Action {
	best, ok := ctx.Hand.BestTotal()
	if ok && best <= 16 && hasAction(legal, game.Hit) {
		return game.Hit
	}
	return game.Stand
}

func hasAction(legal []game.Action, action game.Action) bool {
	for _, a := range legal {
		if a == action {
			return true
		}
	}
	return false
}
