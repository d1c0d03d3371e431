package strategy

import (
	"fmt"

	"github.com/lox/blackjacksim/internal/game"
)

// constructors maps strategy names to their factories. The bet is the
// flat wager, or the base bet for counting strategies.
var constructors = map[string]func(bet float64) game.Strategy{
	"mimic": func(bet float64) game.Strategy { return NewMimic(bet) },
	"basic": func(bet float64) game.Strategy { return NewBasic(bet) },
	"hilo":  func(bet float64) game.Strategy { return NewHiLo(bet, 8) },
}

// New resolves a strategy by name. Each call returns a fresh instance so
// per-game state like counts is never shared between games.
func New(name string, bet float64) (game.Strategy, error) {
	fn, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s (available: %s)", name, Names())
	}
	return fn(bet), nil
}

// Names returns the available strategy names.
func Names() string {
	return "mimic, basic, hilo"
}
