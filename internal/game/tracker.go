// internal/game/tracker.go
//
// Letters ruled out across a game.
// Responsibilities:
//   - Remember every guessed letter the secret does not contain.
//   - Render the remaining alphabet in A–Z order.
//
// Notes:
//   - Backed by a 26-bit bitset, so insertion order never shows in the output.

package game

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const alphabetSize = 26

// LetterTracker accumulates letters confirmed absent from the secret word.
//
// Letters that are exact or present stay in Remaining: they may still occur
// at other positions. Only a letter the secret does not contain at all is
// removed.
type LetterTracker struct {
	absent *bitset.BitSet // bit i set => letter 'A'+i is absent
}

// NewLetterTracker returns a tracker with every letter remaining.
func NewLetterTracker() *LetterTracker {
	return &LetterTracker{absent: bitset.New(alphabetSize)}
}

// Update records every letter of guess that occurs nowhere in secret.
// Non-letters are ignored.
func (t *LetterTracker) Update(guess, secret string) {
	guess, secret = strings.ToUpper(guess), strings.ToUpper(secret)
	for i := 0; i < len(guess); i++ {
		c := guess[i]
		if c < 'A' || c > 'Z' {
			continue
		}
		if strings.IndexByte(secret, c) < 0 {
			t.absent.Set(uint(c - 'A'))
		}
	}
}

// Remaining returns the letters A–Z not yet confirmed absent, in
// alphabetical order.
func (t *LetterTracker) Remaining() string {
	var b strings.Builder
	b.Grow(alphabetSize)
	for i := uint(0); i < alphabetSize; i++ {
		if !t.absent.Test(i) {
			b.WriteByte(byte('A' + i))
		}
	}
	return b.String()
}
