package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	E = MarkExact
	P = MarkPresent
	A = MarkAbsent
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		secret string
		want   []Mark
	}{
		{"all exact", "CRANE", "CRANE", []Mark{E, E, E, E, E}},
		{"all absent", "FJORD", "BLAST", []Mark{A, A, A, A, A}},
		{"duplicate E in both", "SPEED", "ERASE", []Mark{P, A, P, P, A}},
		{"one S in secret, exact wins", "SASSY", "CRASH", []Mark{A, P, A, E, A}},
		{"one S in secret, first S present", "SASSY", "TORUS", []Mark{P, A, A, A, A}},
		{"left to right tie break", "EERIE", "THEME", []Mark{P, A, A, A, E}},
		{"anagram", "LEAST", "SLATE", []Mark{P, P, E, P, P}},
		{"lowercase input", "crane", "CRANE", []Mark{E, E, E, E, E}},
		{"three L guess two L secret", "LLAMA", "HELLO", []Mark{P, P, A, A, A}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.guess, tt.secret)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyLengthMismatch(t *testing.T) {
	_, err := Classify("AB", "CRANE")
	require.ErrorIs(t, err, ErrLengthMismatch)
}

// Every word over {A,B,C} of length 5 against every other: one mark per
// position, and no letter is credited more times than the secret holds it.
func TestClassifyNeverOvercountsDuplicates(t *testing.T) {
	words := allWords("ABC", WordLength)
	for _, secret := range words {
		for _, guess := range words {
			marks, err := Classify(guess, secret)
			require.NoError(t, err)
			require.Len(t, marks, len(guess))

			credited := map[byte]int{}
			for i, m := range marks {
				if m != MarkAbsent {
					credited[guess[i]]++
				}
				if m == MarkExact {
					require.Equal(t, secret[i], guess[i], "%s vs %s", guess, secret)
				}
			}
			for letter, n := range credited {
				require.LessOrEqual(t, n, strings.Count(secret, string(letter)),
					"%s vs %s letter %c", guess, secret, letter)
			}
		}
	}
}

func TestAllExact(t *testing.T) {
	assert.True(t, AllExact([]Mark{E, E}))
	assert.False(t, AllExact([]Mark{E, P}))
	assert.False(t, AllExact(nil))
}

func allWords(alphabet string, n int) []string {
	if n == 0 {
		return []string{""}
	}
	var out []string
	for _, prefix := range allWords(alphabet, n-1) {
		for i := 0; i < len(alphabet); i++ {
			out = append(out, prefix+alphabet[i:i+1])
		}
	}
	return out
}
