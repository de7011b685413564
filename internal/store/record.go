// internal/store/record.go
//
// Stats record codec.
// Format (one finished game per line, no quoting):
//
//	username,secretWord,attemptsUsed,result
//
// Parsing rules:
//   - Trailing empty fields are dropped before counting, so "a,B,3," has
//     three fields and "a,B,3,win," has four.
//   - Exactly four fields and an integer attempts field, otherwise corrupt.

package store

import (
	"errors"
	"strconv"
	"strings"

	"github.com/robalobadob/wordle-cli/internal/game"
)

// ErrCorruptRecord marks a stats line that cannot be parsed.
var ErrCorruptRecord = errors.New("corrupt stats record")

// FormatRecord renders r as one stats line without the trailing newline.
func FormatRecord(r game.Result) string {
	return r.Username + "," + r.Secret + "," + strconv.Itoa(r.Attempts) + "," + string(r.Outcome)
}

// ParseRecord parses one stats line.
func ParseRecord(line string) (game.Result, error) {
	parts := strings.Split(strings.TrimRight(line, "\r\n"), ",")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 4 {
		return game.Result{}, ErrCorruptRecord
	}
	attempts, err := strconv.Atoi(parts[2])
	if err != nil {
		return game.Result{}, ErrCorruptRecord
	}
	return game.Result{
		Username: parts[0],
		Secret:   parts[1],
		Attempts: attempts,
		Outcome:  game.Outcome(parts[3]),
	}, nil
}
