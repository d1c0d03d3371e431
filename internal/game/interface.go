package game

import (
	"github.com/lox/blackjacksim/internal/deck"
)

// Context is the read-only view a Strategy receives when deciding. The
// dealer upcard is only meaningful during play decisions; at bet time the
// cards have not been dealt and UpcardKnown is false.
type Context struct {
	Hand        *Hand
	Upcard      deck.Card
	UpcardKnown bool
	Penetration float64
	NumDecks    int
	Round       int
}

// UpcardValue returns the blackjack value of the dealer's visible card,
// with the ace counted as 11. Returns 0 when no upcard is visible.
func (c Context) UpcardValue() int {
	if !c.UpcardKnown {
		return 0
	}
	values := c.Upcard.Values()
	return values[len(values)-1]
}

// Strategy decides bets and play actions for one player. Implementations
// may keep their own state (e.g. a running count) but the engine treats
// every call as a plain synchronous query.
type Strategy interface {
	// AdviseBet returns the wager for the coming round. Must be positive.
	AdviseBet(ctx Context) float64

	// AdvisePlay returns one action drawn from legal. Returning anything
	// else is a usage error and aborts the game.
	AdvisePlay(ctx Context, legal []Action) Action
}

// CardObserver is implemented by strategies that track dealt cards, such
// as counting systems. The engine reports every card as it becomes
// visible; the dealer hole card is reported at reveal, not at deal.
type CardObserver interface {
	ObserveCard(card deck.Card)

	// ShoeShuffled signals that the shoe was rebuilt and any count state
	// should reset.
	ShoeShuffled()
}

// RuleSet supplies the house rules: which options a player hand has, how
// the dealer plays, and how a finished round settles. Implementations are
// never mutated by the engine.
type RuleSet interface {
	// Name identifies the ruleset in round records.
	Name() string

	// PlayerOptions returns the legal actions for a player hand. An empty
	// set ends the player's turn.
	PlayerOptions(hand *Hand) []Action

	// DealerPlay returns Hit or Stand for the dealer's current hand.
	DealerPlay(hand *Hand) Action

	// Payout returns the signed net amount for the player given both final
	// hands and the wager.
	Payout(player, dealer *Hand, bet float64) float64
}

// RoundRecord is the structured result of one round, emitted to the
// caller-supplied sink. Seat-indexed slices share the same order. The
// cumulative columns are derivable from the per-round nets; they are kept
// explicit so downstream consumers can sanity-check their own sums.
type RoundRecord struct {
	Round           int
	RuleSet         string
	NumDecks        int
	Threshold       float64
	Penetration     float64 // fraction already dealt when the round started
	Seats           []int
	RoundNet        []float64
	GameNet         []float64
	ProfitPerDollar []float64
}

// RecordSink consumes round records. The engine hands over structured
// data only; serialization is the sink's concern.
type RecordSink interface {
	WriteRecord(rec RoundRecord) error
}
