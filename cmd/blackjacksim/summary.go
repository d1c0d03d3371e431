package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjacksim/internal/simulator"
	"github.com/lox/blackjacksim/internal/statistics"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	winStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true)
	lossStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	neutralStyle = lipgloss.NewStyle().Bold(true)
)

// printSummary renders per-seat results after a simulation run.
func printSummary(stats *statistics.Statistics, cfg simulator.Config, elapsed time.Duration) {
	strategies := make(map[int]string, len(cfg.Players))
	for _, p := range cfg.Players {
		strategies[p.Seat] = p.Strategy
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("=== SIMULATION RESULTS ==="))
	fmt.Printf("%s %d games x %d rounds, %d decks, %.0f%% penetration, seed %d\n",
		labelStyle.Render("setup:"),
		stats.Games, cfg.Rounds, cfg.Decks, cfg.Penetration*100, cfg.Seed)
	fmt.Printf("%s %v (%d rounds total)\n",
		labelStyle.Render("elapsed:"), elapsed.Round(time.Millisecond), stats.Rounds)

	for _, seat := range stats.Seats() {
		ss := stats.Seat(seat)
		low, high := ss.ConfidenceInterval95()

		fmt.Println()
		fmt.Printf("%s seat %d (%s)\n", titleStyle.Render("▸"), seat, strategies[seat])
		fmt.Printf("  %s %s\n", labelStyle.Render("profit/$:"), styleAmount(ss.ProfitPerDollar()))
		fmt.Printf("  %s %.5f ± %.5f SE per game\n", labelStyle.Render("mean:"), ss.Mean(), ss.StdError())
		fmt.Printf("  %s [%.5f, %.5f]\n", labelStyle.Render("95% CI:"), low, high)
		fmt.Printf("  %s %.5f  %s %.2f  %s %.2f\n",
			labelStyle.Render("median:"), ss.Median(),
			labelStyle.Render("net:"), ss.Net,
			labelStyle.Render("wagered:"), ss.Wagered)
	}
	fmt.Println()
}

func styleAmount(v float64) string {
	formatted := fmt.Sprintf("%+.5f", v)
	switch {
	case v > 0:
		return winStyle.Render(formatted)
	case v < 0:
		return lossStyle.Render(formatted)
	default:
		return neutralStyle.Render(formatted)
	}
}
