package strategy

import (
	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/game"
)

// HiLo keeps a running hi-lo count of every visible card and sizes its
// bet from the true count, playing its hands with the basic chart. The
// engine feeds it cards through the CardObserver interface and resets the
// count at each reshuffle.
type HiLo struct {
	BaseBet   float64
	MaxSpread float64 // cap on bet as a multiple of BaseBet

	running int
}

// NewHiLo creates a hi-lo counter betting baseBet units at neutral counts
// with bets capped at maxSpread times the base.
func NewHiLo(baseBet, maxSpread float64) *HiLo {
	return &HiLo{BaseBet: baseBet, MaxSpread: maxSpread}
}

// RunningCount returns the current running count.
func (s *HiLo) RunningCount() int {
	return s.running
}

// ObserveCard updates the running count: 2-6 count +1, tens and aces -1.
func (s *HiLo) ObserveCard(card deck.Card) {
	switch {
	case card.Rank >= deck.Two && card.Rank <= deck.Six:
		s.running++
	case card.Rank >= deck.Ten:
		s.running--
	}
}

// ShoeShuffled resets the count.
func (s *HiLo) ShoeShuffled() {
	s.running = 0
}

// AdviseBet scales the bet with the true count: base bet up to a true
// count of one, then one extra unit per point, capped at MaxSpread.
func (s *HiLo) AdviseBet(ctx game.Context) float64 {
	decksLeft := float64(ctx.NumDecks) * (1 - ctx.Penetration)
	if decksLeft < 0.5 {
		decksLeft = 0.5
	}
	trueCount := float64(s.running) / decksLeft

	units := trueCount - 1
	if units < 1 {
		units = 1
	}
	if units > s.MaxSpread {
		units = s.MaxSpread
	}
	return s.BaseBet * units
}

// AdvisePlay uses the basic chart.
func (s *HiLo) AdvisePlay(ctx game.Context, legal []game.Action) game.Action {
	if basicWantsHit(ctx) && hasAction(legal, game.Hit) {
		return game.Hit
	}
	return game.Stand
}
