// internal/game/matcher.go
//
// Feedback scoring for a single guess.
// Responsibilities:
//   - Classify each guess position as exact, present or absent.
//   - Never mark a letter present more often than the secret still holds it.
//
// Notes:
//   - Consumed secret positions live in a per-call array; no state survives
//     between calls.

package game

import (
	"errors"
	"strings"
)

// ErrLengthMismatch is returned by Classify when guess and secret differ in
// length. Callers validate guesses first, so seeing it means a bug upstream.
var ErrLengthMismatch = errors.New("game: guess and secret differ in length")

// Classify scores guess against secret, one Mark per guess position.
//
// Pass 1:
//   - Mark exact matches and consume the matching secret position.
//
// Pass 2:
//   - Left to right, each remaining guess letter takes the first unconsumed
//     secret position holding the same letter (present) or is absent.
//
// The consumed array is per call, so a letter is never reported present more
// times than the secret contains it.
func Classify(guess, secret string) ([]Mark, error) {
	guess, secret = strings.ToUpper(guess), strings.ToUpper(secret)
	if len(guess) != len(secret) {
		return nil, ErrLengthMismatch
	}

	n := len(guess)
	marks := make([]Mark, n)
	consumed := make([]bool, n)

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			marks[i] = MarkExact
			consumed[i] = true
		}
	}

	for i := 0; i < n; i++ {
		if marks[i] == MarkExact {
			continue
		}
		marks[i] = MarkAbsent
		for j := 0; j < n; j++ {
			if !consumed[j] && secret[j] == guess[i] {
				marks[i] = MarkPresent
				consumed[j] = true
				break
			}
		}
	}
	return marks, nil
}

// AllExact reports whether every mark is MarkExact.
func AllExact(marks []Mark) bool {
	for _, m := range marks {
		if m != MarkExact {
			return false
		}
	}
	return len(marks) > 0
}
