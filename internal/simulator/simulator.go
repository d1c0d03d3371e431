// Package simulator drives batches of independent blackjack games and
// aggregates their results.
package simulator

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/lox/blackjacksim/internal/rules"
	"github.com/lox/blackjacksim/internal/statistics"
	"github.com/lox/blackjacksim/internal/strategy"
)

// PlayerSpec describes one seat in every simulated game.
type PlayerSpec struct {
	Seat     int
	Strategy string
	Bet      float64
}

// Config holds configuration for running simulations.
type Config struct {
	Games       int
	Rounds      int
	Seed        int64
	Decks       int
	Penetration float64
	HitSoft17   bool
	Players     []PlayerSpec

	// Parallelism caps concurrently running games. Games are independent;
	// each gets its own shoe seeded from Seed and the game index, so the
	// aggregate is identical regardless of scheduling. Defaults to
	// GOMAXPROCS, or 1 when a Sink is set so rows stay in order.
	Parallelism int

	// Sink receives every round record of every game when set.
	Sink game.RecordSink

	Logger *log.Logger

	// Clock drives progress reporting; tests inject a mock.
	Clock quartz.Clock
}

// Simulator runs blackjack game simulations.
type Simulator struct {
	cfg Config
}

// New creates a simulator with the given configuration.
func New(cfg Config) *Simulator {
	return &Simulator{cfg: cfg}
}

// Run executes the configured number of games and returns aggregate
// statistics. Results are added in game order, so a fixed seed yields an
// identical Statistics value regardless of parallelism.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	logger := s.cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	clock := s.cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	parallelism := s.cfg.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	if s.cfg.Sink != nil {
		parallelism = 1
	}

	var completed atomic.Int64
	tickCtx, cancelTick := context.WithCancel(ctx)
	defer cancelTick()
	ticker := clock.TickerFunc(tickCtx, 10*time.Second, func() error {
		logger.Info("simulation progress",
			"games", completed.Load(),
			"total", s.cfg.Games)
		return nil
	}, "progress")

	results := make([]statistics.GameResult, s.cfg.Games)
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(parallelism)

	for i := 0; i < s.cfg.Games; i++ {
		grp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}
			seed := randutil.Derive(s.cfg.Seed, i)
			result, err := s.playGame(seed, logger)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = result
			completed.Add(1)
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	cancelTick()
	_ = ticker.Wait()

	stats := statistics.New()
	for _, result := range results {
		stats.Add(result)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("simulation complete",
		"games", stats.Games,
		"rounds", stats.Rounds)
	return stats, nil
}

// playGame runs one complete game with its own shoe and fresh strategy
// instances, so counting state never leaks between games.
func (s *Simulator) playGame(seed int64, logger *log.Logger) (statistics.GameResult, error) {
	shoe, err := deck.NewShoe(s.cfg.Decks, s.cfg.Penetration, randutil.New(seed))
	if err != nil {
		return statistics.GameResult{}, err
	}

	ruleset := rules.NewStandard()
	ruleset.HitSoft17 = s.cfg.HitSoft17

	g := game.NewGame(shoe, ruleset, logger)
	for _, spec := range s.cfg.Players {
		strat, err := strategy.New(spec.Strategy, spec.Bet)
		if err != nil {
			return statistics.GameResult{}, err
		}
		if err := g.AddPlayer(spec.Seat, strat); err != nil {
			return statistics.GameResult{}, err
		}
	}

	if _, err := g.Play(s.cfg.Rounds, s.cfg.Sink); err != nil {
		return statistics.GameResult{}, err
	}

	result := statistics.GameResult{
		Seed:   seed,
		Rounds: s.cfg.Rounds,
		Seats:  make([]statistics.SeatResult, 0, len(g.Players())),
	}
	for _, p := range g.Players() {
		result.Seats = append(result.Seats, statistics.SeatResult{
			Seat:    p.Seat,
			Net:     p.GameNet(),
			Wagered: p.TotalWagered(),
		})
	}
	return result, nil
}

func (s *Simulator) validate() error {
	if s.cfg.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", s.cfg.Games)
	}
	if s.cfg.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", s.cfg.Rounds)
	}
	if len(s.cfg.Players) == 0 {
		return fmt.Errorf("at least one player is required")
	}
	for _, spec := range s.cfg.Players {
		if spec.Bet <= 0 {
			return fmt.Errorf("seat %d: bet must be positive, got %g", spec.Seat, spec.Bet)
		}
	}
	return nil
}
