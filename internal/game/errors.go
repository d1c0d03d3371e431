package game

import (
	"errors"
	"fmt"
)

// ErrDuplicateSeat is returned by AddPlayer when the seat is already taken.
var ErrDuplicateSeat = errors.New("seat already registered")

// ErrNoPlayers is returned by Play when no players have been registered.
var ErrNoPlayers = errors.New("no players registered")

// InvalidBetError reports a strategy returning a non-positive wager.
// The round does not proceed.
type InvalidBetError struct {
	Seat int
	Bet  float64
}

func (e *InvalidBetError) Error() string {
	return fmt.Sprintf("seat %d: bet must be positive, got %g", e.Seat, e.Bet)
}

// InvalidActionError reports a strategy choosing an action outside the
// legal option set. The action is rejected rather than coerced to a
// substitute, and the game aborts.
type InvalidActionError struct {
	Seat   int
	Action Action
	Legal  []Action
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("seat %d: action %s not in legal options %v", e.Seat, e.Action, e.Legal)
}
