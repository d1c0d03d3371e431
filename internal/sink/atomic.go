package sink

import (
	"bytes"

	"github.com/lox/blackjacksim/internal/fileutil"
	"github.com/lox/blackjacksim/internal/game"
)

// AtomicCSV buffers rows in memory and writes the whole file atomically
// on Close. An interrupted or failed simulation leaves either the
// previous results file or none at all, never a truncated one.
type AtomicCSV struct {
	path string
	buf  bytes.Buffer
	csv  *CSV
}

// NewAtomicCSV creates a sink that will write path on Close.
func NewAtomicCSV(path string) *AtomicCSV {
	s := &AtomicCSV{path: path}
	s.csv = NewCSV(&s.buf)
	return s
}

// WriteRecord appends one round to the in-memory buffer.
func (s *AtomicCSV) WriteRecord(rec game.RoundRecord) error {
	return s.csv.WriteRecord(rec)
}

// Close flushes the buffer and atomically replaces the target file.
func (s *AtomicCSV) Close() error {
	if err := s.csv.Flush(); err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(s.path, s.buf.Bytes(), 0o644)
}
