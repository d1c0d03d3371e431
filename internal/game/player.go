package game

// Player occupies one seat for the lifetime of a game. The hand is reset
// each round; the winnings accumulators persist across rounds.
type Player struct {
	Seat     int
	Strategy Strategy
	Hand     *Hand

	bet      float64
	roundNet float64
	gameNet  float64
	wagered  float64
}

// NewPlayer creates a player bound to a seat and strategy.
func NewPlayer(seat int, strategy Strategy) *Player {
	return &Player{
		Seat:     seat,
		Strategy: strategy,
		Hand:     NewHand(),
	}
}

// Bet returns the wager placed for the current round.
func (p *Player) Bet() float64 {
	return p.bet
}

// RoundNet returns the net winnings of the most recent settled round.
func (p *Player) RoundNet() float64 {
	return p.roundNet
}

// GameNet returns the cumulative net winnings across all rounds.
func (p *Player) GameNet() float64 {
	return p.gameNet
}

// TotalWagered returns the cumulative amount bet across all rounds.
func (p *Player) TotalWagered() float64 {
	return p.wagered
}

// ProfitPerDollar returns cumulative net winnings divided by cumulative
// amount wagered. This is the strategy-comparison metric: unlike raw
// winnings it is independent of bet sizing.
func (p *Player) ProfitPerDollar() float64 {
	if p.wagered == 0 {
		return 0
	}
	return p.gameNet / p.wagered
}

// placeBet stores the round wager and adds it to the wagered total.
func (p *Player) placeBet(bet float64) {
	p.bet = bet
	p.wagered += bet
}

// settle records the signed payout for the round.
func (p *Player) settle(payout float64) {
	p.roundNet = payout
	p.gameNet += payout
}
