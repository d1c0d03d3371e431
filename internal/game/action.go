package game

// Action is a play decision available to a player or the dealer.
type Action int

const (
	Hit Action = iota
	Stand
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "?"
	}
}

// containsAction reports whether action is one of the legal options.
func containsAction(legal []Action, action Action) bool {
	for _, a := range legal {
		if a == action {
			return true
		}
	}
	return false
}
