package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/lox/blackjacksim/internal/rules"
	"github.com/lox/blackjacksim/internal/strategy"
)

// scripted bets a fixed amount and always returns the same action,
// whether or not it is legal.
type scripted struct {
	bet    float64
	action game.Action
}

func (s *scripted) AdviseBet(game.Context) float64 {
	return s.bet
}

func (s *scripted) AdvisePlay(game.Context, []game.Action) game.Action {
	return s.action
}

// captureSink keeps every record in memory.
type captureSink struct {
	records []game.RoundRecord
}

func (s *captureSink) WriteRecord(rec game.RoundRecord) error {
	s.records = append(s.records, rec)
	return nil
}

// observer wraps a strategy and counts card and shuffle notifications.
type observer struct {
	game.Strategy
	cards    int
	shuffles int
}

func (o *observer) ObserveCard(deck.Card) { o.cards++ }

func (o *observer) ShoeShuffled() {
	o.shuffles++
	o.cards = 0
}

func newShoe(t *testing.T, decks int, threshold float64, seed int64) *deck.Shoe {
	t.Helper()
	shoe, err := deck.NewShoe(decks, threshold, randutil.New(seed))
	require.NoError(t, err)
	return shoe
}

func TestGameDuplicateSeat(t *testing.T) {
	g := game.NewGame(newShoe(t, 1, 0.75, 1), rules.NewStandard(), nil)
	require.NoError(t, g.AddPlayer(1, strategy.NewMimic(1)))

	err := g.AddPlayer(1, strategy.NewMimic(1))
	require.ErrorIs(t, err, game.ErrDuplicateSeat)
}

func TestGameNoPlayers(t *testing.T) {
	g := game.NewGame(newShoe(t, 1, 0.75, 1), rules.NewStandard(), nil)

	_, err := g.Play(1, nil)
	require.ErrorIs(t, err, game.ErrNoPlayers)
}

func TestGameInvalidBet(t *testing.T) {
	g := game.NewGame(newShoe(t, 1, 0.75, 1), rules.NewStandard(), nil)
	require.NoError(t, g.AddPlayer(1, &scripted{bet: 0, action: game.Stand}))

	_, err := g.Play(1, nil)
	require.Error(t, err)

	var betErr *game.InvalidBetError
	require.ErrorAs(t, err, &betErr)
	assert.Equal(t, 1, betErr.Seat)
}

func TestGameInvalidAction(t *testing.T) {
	g := game.NewGame(newShoe(t, 6, 0.75, 1), rules.NewStandard(), nil)
	require.NoError(t, g.AddPlayer(1, &scripted{bet: 1, action: game.Action(99)}))

	// Run enough rounds that at least one hand is not a blackjack.
	_, err := g.Play(10, nil)
	require.Error(t, err)

	var actionErr *game.InvalidActionError
	require.ErrorAs(t, err, &actionErr)
	assert.Equal(t, 1, actionErr.Seat)
}

func TestGameDeterministicWithSeed(t *testing.T) {
	run := func() (map[int]float64, []game.RoundRecord) {
		g := game.NewGame(newShoe(t, 6, 0.75, 4242), rules.NewStandard(), nil)
		require.NoError(t, g.AddPlayer(1, strategy.NewMimic(1)))
		require.NoError(t, g.AddPlayer(2, strategy.NewBasic(5)))

		sink := &captureSink{}
		result, err := g.Play(200, sink)
		require.NoError(t, err)
		return result, sink.records
	}

	firstResult, firstRecords := run()
	secondResult, secondRecords := run()

	assert.Equal(t, firstResult, secondResult)
	assert.Equal(t, firstRecords, secondRecords)
}

func TestGameAccountingIdentity(t *testing.T) {
	const rounds = 150
	const bet = 2.0

	g := game.NewGame(newShoe(t, 6, 0.75, 7), rules.NewStandard(), nil)
	require.NoError(t, g.AddPlayer(1, strategy.NewBasic(bet)))

	sink := &captureSink{}
	result, err := g.Play(rounds, sink)
	require.NoError(t, err)
	require.Len(t, sink.records, rounds)

	var sumNet float64
	for _, rec := range sink.records {
		require.Equal(t, []int{1}, rec.Seats)
		sumNet += rec.RoundNet[0]
	}

	p := g.Players()[0]
	assert.InDelta(t, sumNet, p.GameNet(), 1e-9, "game net must equal the sum of round nets")
	assert.InDelta(t, bet*rounds, p.TotalWagered(), 1e-9, "flat bettor wagers bet x rounds")
	assert.InDelta(t, p.GameNet()/p.TotalWagered(), result[1], 1e-9)

	last := sink.records[rounds-1]
	assert.InDelta(t, p.GameNet(), last.GameNet[0], 1e-9)
	assert.InDelta(t, p.ProfitPerDollar(), last.ProfitPerDollar[0], 1e-9)
}

func TestGameRecordMetadata(t *testing.T) {
	g := game.NewGame(newShoe(t, 2, 0.5, 11), rules.NewStandard(), nil)
	require.NoError(t, g.AddPlayer(3, strategy.NewMimic(1)))

	sink := &captureSink{}
	_, err := g.Play(5, sink)
	require.NoError(t, err)

	for i, rec := range sink.records {
		assert.Equal(t, i+1, rec.Round)
		assert.Equal(t, "standard", rec.RuleSet)
		assert.Equal(t, 2, rec.NumDecks)
		assert.Equal(t, 0.5, rec.Threshold)
		assert.Less(t, rec.Penetration, 0.5, "rounds must start below the reshuffle threshold")
	}
}

func TestGameObserverSeesEveryCard(t *testing.T) {
	shoe := newShoe(t, 6, 0.75, 21)
	obs := &observer{Strategy: strategy.NewMimic(1)}

	g := game.NewGame(shoe, rules.NewStandard(), nil)
	require.NoError(t, g.AddPlayer(1, obs))

	_, err := g.Play(50, nil)
	require.NoError(t, err)

	dealt := shoe.Size() - shoe.CardsRemaining()
	assert.Equal(t, dealt, obs.cards, "every card dealt since the last shuffle must be observed")
}

func TestGameObserverShuffleNotification(t *testing.T) {
	// A low threshold on a single deck forces frequent reshuffles.
	obs := &observer{Strategy: strategy.NewMimic(1)}

	g := game.NewGame(newShoe(t, 1, 0.25, 33), rules.NewStandard(), nil)
	require.NoError(t, g.AddPlayer(1, obs))

	_, err := g.Play(40, nil)
	require.NoError(t, err)

	assert.Greater(t, obs.shuffles, 0, "forty single-deck rounds must cross the threshold")
}
