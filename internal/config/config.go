// Package config loads simulation configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// SimConfig represents a complete simulation configuration.
type SimConfig struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Shoe       ShoeSettings       `hcl:"shoe,block"`
	Rules      RuleSettings       `hcl:"rules,block"`
	Players    []PlayerConfig     `hcl:"player,block"`
}

// SimulationSettings controls the batch of games.
type SimulationSettings struct {
	Games       int   `hcl:"games,optional"`
	Rounds      int   `hcl:"rounds,optional"`
	Seed        int64 `hcl:"seed,optional"`
	Parallelism int   `hcl:"parallelism,optional"`
}

// ShoeSettings controls deck count and reshuffle penetration.
type ShoeSettings struct {
	Decks       int     `hcl:"decks,optional"`
	Penetration float64 `hcl:"penetration,optional"`
}

// RuleSettings selects house rule variants.
type RuleSettings struct {
	HitSoft17 bool `hcl:"hit_soft_17,optional"`
}

// PlayerConfig seats one strategy in every game.
type PlayerConfig struct {
	Name     string  `hcl:"name,label"`
	Seat     int     `hcl:"seat"`
	Strategy string  `hcl:"strategy"`
	Bet      float64 `hcl:"bet,optional"`
}

// Default returns the default configuration: one basic-strategy player,
// a six-deck shoe reshuffled at 75% penetration, 100 games of 100 rounds.
func Default() *SimConfig {
	return &SimConfig{
		Simulation: SimulationSettings{
			Games:  100,
			Rounds: 100,
		},
		Shoe: ShoeSettings{
			Decks:       6,
			Penetration: 0.75,
		},
		Players: []PlayerConfig{
			{Name: "player1", Seat: 1, Strategy: "basic", Bet: 1},
		},
	}
}

// Load reads simulation configuration from an HCL file, returning
// defaults if the file does not exist.
func Load(filename string) (*SimConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg SimConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *SimConfig) {
	if cfg.Simulation.Games == 0 {
		cfg.Simulation.Games = 100
	}
	if cfg.Simulation.Rounds == 0 {
		cfg.Simulation.Rounds = 100
	}
	if cfg.Shoe.Decks == 0 {
		cfg.Shoe.Decks = 6
	}
	if cfg.Shoe.Penetration == 0 {
		cfg.Shoe.Penetration = 0.75
	}
	for i := range cfg.Players {
		if cfg.Players[i].Bet == 0 {
			cfg.Players[i].Bet = 1
		}
	}
}

// Validate validates the simulation configuration.
func (c *SimConfig) Validate() error {
	if c.Simulation.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", c.Simulation.Games)
	}
	if c.Simulation.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", c.Simulation.Rounds)
	}
	if c.Shoe.Decks < 1 {
		return fmt.Errorf("shoe must have at least 1 deck, got %d", c.Shoe.Decks)
	}
	if c.Shoe.Penetration <= 0 || c.Shoe.Penetration > 1 {
		return fmt.Errorf("penetration must be in (0,1], got %g", c.Shoe.Penetration)
	}
	if len(c.Players) == 0 {
		return fmt.Errorf("at least one player must be configured")
	}

	seats := make(map[int]string)
	for _, p := range c.Players {
		if p.Seat < 1 {
			return fmt.Errorf("player %s: seat must be at least 1, got %d", p.Name, p.Seat)
		}
		if other, taken := seats[p.Seat]; taken {
			return fmt.Errorf("player %s: seat %d already taken by %s", p.Name, p.Seat, other)
		}
		seats[p.Seat] = p.Name
		if p.Bet <= 0 {
			return fmt.Errorf("player %s: bet must be positive, got %g", p.Name, p.Bet)
		}
	}
	return nil
}
