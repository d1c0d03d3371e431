package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a single standard deck.
const DeckSize = 52

// ErrEmptyShoe is returned when a card is requested from an exhausted shoe.
// Under the round-boundary reshuffle policy this should never happen, so
// callers treat it as a fatal invariant violation rather than retrying.
var ErrEmptyShoe = errors.New("shoe has no cards remaining")

// Shoe is one or more decks shuffled together and dealt from the front.
// Dealt cards never return to the shoe; a reshuffle rebuilds it wholesale.
// The RNG is explicit so that a fixed seed reproduces the full deal order.
type Shoe struct {
	cards     []Card
	next      int
	numDecks  int
	threshold float64
	rng       *rand.Rand
}

// NewShoe creates a shuffled shoe of numDecks decks that reports
// NeedsReshuffle once the dealt fraction reaches threshold.
func NewShoe(numDecks int, threshold float64, rng *rand.Rand) (*Shoe, error) {
	if numDecks < 1 {
		return nil, fmt.Errorf("shoe requires at least one deck, got %d", numDecks)
	}
	if threshold <= 0 || threshold > 1 {
		return nil, fmt.Errorf("reshuffle threshold must be in (0,1], got %g", threshold)
	}
	if rng == nil {
		return nil, errors.New("shoe requires an explicit rng")
	}

	s := &Shoe{
		cards:     make([]Card, 0, numDecks*DeckSize),
		numDecks:  numDecks,
		threshold: threshold,
		rng:       rng,
	}
	s.Reshuffle()
	return s, nil
}

// Reshuffle rebuilds the shoe with fresh decks and shuffles. The dealt
// count resets to zero.
func (s *Shoe) Reshuffle() {
	s.cards = s.cards[:0]
	for d := 0; d < s.numDecks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.next = 0

	// Fisher-Yates
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the next card.
func (s *Shoe) Draw() (Card, error) {
	if s.next >= len(s.cards) {
		return Card{}, ErrEmptyShoe
	}
	card := s.cards[s.next]
	s.next++
	return card, nil
}

// Penetration returns the fraction of the shoe dealt since the last shuffle.
func (s *Shoe) Penetration() float64 {
	return float64(s.next) / float64(len(s.cards))
}

// NeedsReshuffle reports whether penetration has reached the configured
// threshold. Checked at round boundaries only, so a single round never
// spans two shoe instances.
func (s *Shoe) NeedsReshuffle() bool {
	return s.Penetration() >= s.threshold
}

// CardsRemaining returns the number of cards left to deal.
func (s *Shoe) CardsRemaining() int {
	return len(s.cards) - s.next
}

// Size returns the total number of cards in a full shoe.
func (s *Shoe) Size() int {
	return s.numDecks * DeckSize
}

// NumDecks returns the number of decks in the shoe.
func (s *Shoe) NumDecks() int {
	return s.numDecks
}

// Threshold returns the configured reshuffle penetration threshold.
func (s *Shoe) Threshold() float64 {
	return s.threshold
}
