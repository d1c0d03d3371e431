// Package sink provides RecordSink implementations for round records.
package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lox/blackjacksim/internal/game"
)

// CSV writes one row per round to an io.Writer. The header is written on
// the first record, once the seat layout is known. Not safe for
// concurrent use; callers running games in parallel must serialize.
type CSV struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewCSV creates a CSV sink over w.
func NewCSV(w io.Writer) *CSV {
	return &CSV{w: csv.NewWriter(w)}
}

// WriteRecord appends one round as a CSV row.
func (s *CSV) WriteRecord(rec game.RoundRecord) error {
	if !s.wroteHeader {
		if err := s.w.Write(header(rec.Seats)); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
		s.wroteHeader = true
	}

	row := make([]string, 0, 5+3*len(rec.Seats))
	row = append(row,
		strconv.Itoa(rec.Round),
		rec.RuleSet,
		strconv.Itoa(rec.NumDecks),
		formatFloat(rec.Threshold),
		formatFloat(rec.Penetration),
	)
	for i := range rec.Seats {
		row = append(row, formatFloat(rec.RoundNet[i]))
	}
	for i := range rec.Seats {
		row = append(row, formatFloat(rec.GameNet[i]))
	}
	for i := range rec.Seats {
		row = append(row, formatFloat(rec.ProfitPerDollar[i]))
	}
	if err := s.w.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

// Flush writes any buffered rows to the underlying writer.
func (s *CSV) Flush() error {
	s.w.Flush()
	return s.w.Error()
}

func header(seats []int) []string {
	cols := []string{"round", "ruleset", "decks", "threshold", "penetration"}
	for _, seat := range seats {
		cols = append(cols, fmt.Sprintf("round_net_%d", seat))
	}
	for _, seat := range seats {
		cols = append(cols, fmt.Sprintf("game_net_%d", seat))
	}
	for _, seat := range seats {
		cols = append(cols, fmt.Sprintf("profit_per_dollar_%d", seat))
	}
	return cols
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
