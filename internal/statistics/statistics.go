// Package statistics aggregates per-seat results across simulated games.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// SeatResult is the outcome of one game for one seat.
type SeatResult struct {
	Seat    int
	Net     float64 // net winnings over the whole game
	Wagered float64 // total amount bet over the whole game
}

// GameResult is the outcome of a single simulated game.
type GameResult struct {
	Seed   int64 // shoe seed for this game (for replay)
	Rounds int
	Seats  []SeatResult
}

// ProfitPerDollar returns net winnings divided by total wagered for one
// seat-game.
func (r SeatResult) ProfitPerDollar() float64 {
	if r.Wagered == 0 {
		return 0
	}
	return r.Net / r.Wagered
}

// SeatStats accumulates one seat's results across games. The per-game
// profit-per-dollar values are retained for median/percentile queries.
type SeatStats struct {
	Games   int
	Net     float64
	Wagered float64
	Sum     float64 // sum of per-game profit-per-dollar
	Sum2    float64 // sum of squares, for variance
	Values  []float64
}

// Mean returns the arithmetic mean of per-game profit-per-dollar.
func (s *SeatStats) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.Sum / float64(s.Games)
}

// Variance returns the sample variance of per-game profit-per-dollar.
func (s *SeatStats) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation.
func (s *SeatStats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *SeatStats) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *SeatStats) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// ProfitPerDollar returns overall net winnings divided by overall amount
// wagered. This weights games by their wagers, unlike Mean which treats
// each game equally.
func (s *SeatStats) ProfitPerDollar() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return s.Net / s.Wagered
}

// Median returns the median per-game profit-per-dollar.
func (s *SeatStats) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Statistics tracks simulation results across games, keyed by seat.
type Statistics struct {
	Games  int
	Rounds int
	seats  map[int]*SeatStats
}

// New creates empty statistics.
func New() *Statistics {
	return &Statistics{seats: make(map[int]*SeatStats)}
}

// Add incorporates one game's results.
func (s *Statistics) Add(result GameResult) {
	s.Games++
	s.Rounds += result.Rounds
	for _, sr := range result.Seats {
		ss := s.seats[sr.Seat]
		if ss == nil {
			ss = &SeatStats{}
			s.seats[sr.Seat] = ss
		}
		ppd := sr.ProfitPerDollar()
		ss.Games++
		ss.Net += sr.Net
		ss.Wagered += sr.Wagered
		ss.Sum += ppd
		ss.Sum2 += ppd * ppd
		ss.Values = append(ss.Values, ppd)
	}
}

// Seat returns the accumulated stats for a seat, or nil if unseen.
func (s *Statistics) Seat(seat int) *SeatStats {
	return s.seats[seat]
}

// Seats returns the seat ids in ascending order.
func (s *Statistics) Seats() []int {
	seats := make([]int, 0, len(s.seats))
	for seat := range s.seats {
		seats = append(seats, seat)
	}
	sort.Ints(seats)
	return seats
}

// Validate checks internal consistency before results are reported.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	for seat, ss := range s.seats {
		if ss.Games != s.Games {
			return fmt.Errorf("seat %d: games count %d does not match total %d", seat, ss.Games, s.Games)
		}
		if len(ss.Values) != ss.Games {
			return fmt.Errorf("seat %d: values length %d does not match games count %d", seat, len(ss.Values), ss.Games)
		}
		if ss.Wagered < 0 {
			return fmt.Errorf("seat %d: negative wagered total %f", seat, ss.Wagered)
		}
	}
	return nil
}
