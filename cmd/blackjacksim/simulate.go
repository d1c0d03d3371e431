package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjacksim/internal/config"
	"github.com/lox/blackjacksim/internal/simulator"
	"github.com/lox/blackjacksim/internal/sink"
)

type SimulateCmd struct {
	Config      string   `type:"path" default:"blackjacksim.hcl" help:"HCL configuration file"`
	Games       int      `help:"Number of independent games (overrides config)"`
	Rounds      int      `help:"Rounds per game (overrides config)"`
	Decks       int      `help:"Decks in the shoe (overrides config)"`
	Penetration float64  `help:"Reshuffle penetration threshold (overrides config)"`
	Seed        int64    `default:"0" help:"RNG seed (0 for random)"`
	HitSoft17   bool     `help:"Dealer hits soft 17"`
	Player      []string `help:"Player as seat:strategy:bet (e.g. 1:basic:10), repeatable; overrides config players"`
	Output      string   `type:"path" help:"Write per-round CSV records to this file"`
	LogLevel    string   `default:"warn" enum:"debug,info,warn,error" help:"Log level"`
}

func (c *SimulateCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLevel(c.LogLevel),
	})

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := c.applyOverrides(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	simCfg := simulator.Config{
		Games:       cfg.Simulation.Games,
		Rounds:      cfg.Simulation.Rounds,
		Seed:        seed,
		Decks:       cfg.Shoe.Decks,
		Penetration: cfg.Shoe.Penetration,
		HitSoft17:   cfg.Rules.HitSoft17,
		Parallelism: cfg.Simulation.Parallelism,
		Logger:      logger,
	}
	for _, p := range cfg.Players {
		simCfg.Players = append(simCfg.Players, simulator.PlayerSpec{
			Seat:     p.Seat,
			Strategy: p.Strategy,
			Bet:      p.Bet,
		})
	}

	var csvSink *sink.AtomicCSV
	if c.Output != "" {
		csvSink = sink.NewAtomicCSV(c.Output)
		simCfg.Sink = csvSink
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("starting simulation",
		"games", simCfg.Games,
		"rounds", simCfg.Rounds,
		"decks", simCfg.Decks,
		"penetration", simCfg.Penetration,
		"seed", seed)

	start := time.Now()
	stats, err := simulator.New(simCfg).Run(ctx)
	if err != nil {
		return err
	}

	if csvSink != nil {
		if err := csvSink.Close(); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
		logger.Info("wrote round records", "path", c.Output)
	}

	printSummary(stats, simCfg, time.Since(start))
	return nil
}

// applyOverrides layers non-zero CLI flags over the file config.
func (c *SimulateCmd) applyOverrides(cfg *config.SimConfig) error {
	if c.Games > 0 {
		cfg.Simulation.Games = c.Games
	}
	if c.Rounds > 0 {
		cfg.Simulation.Rounds = c.Rounds
	}
	if c.Decks > 0 {
		cfg.Shoe.Decks = c.Decks
	}
	if c.Penetration > 0 {
		cfg.Shoe.Penetration = c.Penetration
	}
	if c.HitSoft17 {
		cfg.Rules.HitSoft17 = true
	}
	if len(c.Player) > 0 {
		cfg.Players = cfg.Players[:0]
		for _, spec := range c.Player {
			player, err := parsePlayerSpec(spec)
			if err != nil {
				return err
			}
			cfg.Players = append(cfg.Players, player)
		}
	}
	return nil
}

// parsePlayerSpec parses "seat:strategy:bet" with bet optional.
func parsePlayerSpec(spec string) (config.PlayerConfig, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return config.PlayerConfig{}, fmt.Errorf("player spec must be seat:strategy[:bet], got %q", spec)
	}
	seat, err := strconv.Atoi(parts[0])
	if err != nil {
		return config.PlayerConfig{}, fmt.Errorf("invalid seat in %q: %w", spec, err)
	}
	bet := 1.0
	if len(parts) == 3 {
		bet, err = strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return config.PlayerConfig{}, fmt.Errorf("invalid bet in %q: %w", spec, err)
		}
	}
	return config.PlayerConfig{
		Name:     fmt.Sprintf("seat%d", seat),
		Seat:     seat,
		Strategy: parts[1],
		Bet:      bet,
	}, nil
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
