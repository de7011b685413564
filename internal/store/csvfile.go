// internal/store/csvfile.go
//
// Flat-file result store.
// Responsibilities:
//   - Append one FormatRecord line per finished game.
//   - Read the whole file back, skipping corrupt lines one at a time.
//
// Notes:
//   - Lines are read with bufio.Reader, so a line of any length is handled
//     as a single record (usually a corrupt one) instead of stopping the read.

package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-cli/internal/game"
)

// CSVFile is a Store backed by an append-only stats file, one record per
// line in the FormatRecord layout.
type CSVFile struct {
	path string
}

// NewCSVFile returns a store writing to path. The file is created on the
// first Append.
func NewCSVFile(path string) *CSVFile { return &CSVFile{path: path} }

// Path is the stats file location.
func (c *CSVFile) Path() string { return c.path }

// Append writes r as a new line at the end of the file.
func (c *CSVFile) Append(ctx context.Context, r game.Result) error {
	if dir := filepath.Dir(c.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open stats file: %w", err)
	}
	if _, err := f.WriteString(FormatRecord(r) + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("write stats file: %w", err)
	}
	return f.Close()
}

// All returns every readable record. A missing file is an empty history;
// corrupt lines are skipped.
func (c *CSVFile) All(ctx context.Context) ([]game.Result, error) {
	f, err := os.Open(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open stats file: %w", err)
	}
	defer f.Close()

	var out []game.Result
	br := bufio.NewReader(f)
	lineNo := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return out, fmt.Errorf("read stats file: %w", readErr)
		}
		if line != "" {
			lineNo++
			if strings.TrimSpace(line) != "" {
				r, err := ParseRecord(line)
				if err != nil {
					log.Debug().Str("path", c.path).Int("line", lineNo).Msg("skipping corrupt stats record")
				} else {
					out = append(out, r)
				}
			}
		}
		if readErr != nil {
			return out, nil
		}
	}
}

// AllForUser returns the user's records in file order.
func (c *CSVFile) AllForUser(ctx context.Context, username string) ([]game.Result, error) {
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []game.Result
	for _, r := range all {
		if strings.EqualFold(r.Username, username) {
			out = append(out, r)
		}
	}
	return out, nil
}
