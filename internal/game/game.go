package game

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjacksim/internal/deck"
)

// Game owns the shoe and drives rounds through the six phases: bet, deal,
// player turns, dealer turn, settlement, record. The shoe is the only
// shared mutable resource and is touched exclusively by the game loop, so
// a fixed shuffle seed reproduces every round exactly.
type Game struct {
	shoe    *deck.Shoe
	rules   RuleSet
	dealer  *Dealer
	players []*Player // kept sorted by seat
	logger  *log.Logger
	round   int
}

// NewGame creates a game over the given shoe and ruleset. A nil logger
// falls back to the package default.
func NewGame(shoe *deck.Shoe, rules RuleSet, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		shoe:   shoe,
		rules:  rules,
		dealer: NewDealer(),
		logger: logger,
	}
}

// AddPlayer registers a strategy at a seat. Seat ids must be unique
// within the game.
func (g *Game) AddPlayer(seat int, strategy Strategy) error {
	for _, p := range g.players {
		if p.Seat == seat {
			return fmt.Errorf("seat %d: %w", seat, ErrDuplicateSeat)
		}
	}
	g.players = append(g.players, NewPlayer(seat, strategy))
	sort.Slice(g.players, func(i, j int) bool {
		return g.players[i].Seat < g.players[j].Seat
	})
	return nil
}

// Players returns the registered players in seat order.
func (g *Game) Players() []*Player {
	return g.players
}

// Round returns the number of completed rounds.
func (g *Game) Round() int {
	return g.round
}

// Play runs numRounds rounds and returns the final profit-per-dollar per
// seat. Round records go to sink if one is supplied. Any error aborts the
// whole game; there are no partial rounds.
func (g *Game) Play(numRounds int, sink RecordSink) (map[int]float64, error) {
	if len(g.players) == 0 {
		return nil, ErrNoPlayers
	}

	for i := 0; i < numRounds; i++ {
		if err := g.playRound(sink); err != nil {
			return nil, fmt.Errorf("round %d: %w", g.round+1, err)
		}
		g.round++
	}

	result := make(map[int]float64, len(g.players))
	for _, p := range g.players {
		result[p.Seat] = p.ProfitPerDollar()
	}
	return result, nil
}

func (g *Game) playRound(sink RecordSink) error {
	// Round boundary: reshuffle before any cards move so a round never
	// spans two shoe instances.
	if g.shoe.NeedsReshuffle() {
		g.logger.Debug("reshuffling shoe",
			"penetration", g.shoe.Penetration(),
			"threshold", g.shoe.Threshold())
		g.shoe.Reshuffle()
		g.notifyShuffle()
	}
	penetrationAtDeal := g.shoe.Penetration()

	// BET
	for _, p := range g.players {
		bet := p.Strategy.AdviseBet(g.context(p, false))
		if bet <= 0 {
			return &InvalidBetError{Seat: p.Seat, Bet: bet}
		}
		p.placeBet(bet)
		g.logger.Debug("bet placed", "seat", p.Seat, "bet", bet)
	}

	// DEAL_INITIAL: two passes in seat order, dealer last. The dealer's
	// first card is the upcard; the second stays hidden until the
	// dealer's turn.
	g.dealer.Hand.Reset()
	for _, p := range g.players {
		p.Hand.Reset()
	}
	for pass := 0; pass < 2; pass++ {
		for _, p := range g.players {
			card, err := g.shoe.Draw()
			if err != nil {
				return err
			}
			p.Hand.AddCard(card)
			g.notifyCard(card)
		}
		card, err := g.shoe.Draw()
		if err != nil {
			return err
		}
		g.dealer.Hand.AddCard(card)
		if pass == 0 {
			g.notifyCard(card)
		}
	}

	// PLAYER_TURNS
	anyLive := false
	for _, p := range g.players {
		if p.Hand.IsBlackjack() {
			g.logger.Debug("player blackjack", "seat", p.Seat, "hand", p.Hand)
			continue
		}
		if err := g.playerTurn(p); err != nil {
			return err
		}
		if !p.Hand.IsBust() {
			anyLive = true
		}
	}

	// DEALER_TURN: the hole card becomes visible regardless; the hit loop
	// only runs when a live hand needs the dealer total. Settlement still
	// sees the two-card dealer hand, so dealer naturals are checked either
	// way.
	holeCard := g.dealer.Hand.Cards()[1]
	g.notifyCard(holeCard)
	if anyLive {
		err := g.dealer.Play(g.rules, g.shoe.Draw, g.notifyCard)
		if err != nil {
			return err
		}
		g.logger.Debug("dealer played", "hand", g.dealer.Hand, "bust", g.dealer.Hand.IsBust())
	}

	// SETTLE
	for _, p := range g.players {
		payout := g.rules.Payout(p.Hand, g.dealer.Hand, p.Bet())
		p.settle(payout)
		g.logger.Debug("settled",
			"seat", p.Seat,
			"hand", p.Hand,
			"dealer", g.dealer.Hand,
			"net", payout)
	}

	// RECORD
	if sink != nil {
		if err := sink.WriteRecord(g.buildRecord(penetrationAtDeal)); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return nil
}

// playerTurn runs the decision loop for one non-blackjack hand.
func (g *Game) playerTurn(p *Player) error {
	for !p.Hand.IsBust() {
		legal := g.rules.PlayerOptions(p.Hand)
		if len(legal) == 0 {
			return nil
		}
		action := p.Strategy.AdvisePlay(g.context(p, true), legal)
		if !containsAction(legal, action) {
			return &InvalidActionError{Seat: p.Seat, Action: action, Legal: legal}
		}
		g.logger.Debug("player action", "seat", p.Seat, "hand", p.Hand, "action", action)
		if action == Stand {
			return nil
		}
		card, err := g.shoe.Draw()
		if err != nil {
			return err
		}
		p.Hand.AddCard(card)
		g.notifyCard(card)
	}
	g.logger.Debug("player bust", "seat", p.Seat, "hand", p.Hand)
	return nil
}

// context builds the read-only view handed to strategies. The upcard is
// only exposed during play decisions.
func (g *Game) context(p *Player, dealt bool) Context {
	ctx := Context{
		Hand:        p.Hand,
		Penetration: g.shoe.Penetration(),
		NumDecks:    g.shoe.NumDecks(),
		Round:       g.round + 1,
	}
	if dealt {
		ctx.Upcard = g.dealer.Upcard()
		ctx.UpcardKnown = true
	}
	return ctx
}

func (g *Game) buildRecord(penetrationAtDeal float64) RoundRecord {
	rec := RoundRecord{
		Round:           g.round + 1,
		RuleSet:         g.rules.Name(),
		NumDecks:        g.shoe.NumDecks(),
		Threshold:       g.shoe.Threshold(),
		Penetration:     penetrationAtDeal,
		Seats:           make([]int, len(g.players)),
		RoundNet:        make([]float64, len(g.players)),
		GameNet:         make([]float64, len(g.players)),
		ProfitPerDollar: make([]float64, len(g.players)),
	}
	for i, p := range g.players {
		rec.Seats[i] = p.Seat
		rec.RoundNet[i] = p.RoundNet()
		rec.GameNet[i] = p.GameNet()
		rec.ProfitPerDollar[i] = p.ProfitPerDollar()
	}
	return rec
}

// notifyCard reports a newly visible card to counting strategies.
func (g *Game) notifyCard(card deck.Card) {
	for _, p := range g.players {
		if obs, ok := p.Strategy.(CardObserver); ok {
			obs.ObserveCard(card)
		}
	}
}

func (g *Game) notifyShuffle() {
	for _, p := range g.players {
		if obs, ok := p.Strategy.(CardObserver); ok {
			obs.ShoeShuffled()
		}
	}
}
