package game

import (
	"github.com/lox/blackjacksim/internal/deck"
)

// Dealer holds the house hand. One card (the upcard) is visible to
// strategies during player turns; the hole card stays hidden until the
// dealer's turn.
type Dealer struct {
	Hand *Hand
}

// NewDealer creates a dealer with an empty hand.
func NewDealer() *Dealer {
	return &Dealer{Hand: NewHand()}
}

// Upcard returns the dealer's visible card. Only valid once the initial
// deal is complete.
func (d *Dealer) Upcard() deck.Card {
	return d.Hand.Cards()[0]
}

// Play runs the dealer hand to completion: hit while the ruleset says
// hit, stop on stand or bust. Each drawn card is passed to onCard so
// observers see it as it lands.
func (d *Dealer) Play(rules RuleSet, draw func() (deck.Card, error), onCard func(deck.Card)) error {
	for !d.Hand.IsBust() && rules.DealerPlay(d.Hand) == Hit {
		card, err := draw()
		if err != nil {
			return err
		}
		d.Hand.AddCard(card)
		if onCard != nil {
			onCard(card)
		}
	}
	return nil
}
