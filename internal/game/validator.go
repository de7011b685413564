// internal/game/validator.go
//
// Guess validation.
// Responsibilities:
//   - Shape check: exactly 5 letters, A–Z in either case.
//   - Dictionary check against the allowed word set.
//
// Notes:
//   - A nil or empty dictionary fails open: every well-formed guess passes.

package game

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// WordLength is the fixed length of secrets and guesses.
const WordLength = 5

// Rejection reasons returned by Validator.Check and Session.Submit.
var (
	ErrWrongLength   = errors.New("guess must be exactly 5 letters long")
	ErrNotAlphabetic = errors.New("guess must only contain letters")
	ErrUnknownWord   = errors.New("word not in list")
)

// IsWellFormed reports whether guess has exactly WordLength runes, all of them
// unaccented Latin letters in either case.
func IsWellFormed(guess string) bool {
	return checkShape(guess) == nil
}

func checkShape(guess string) error {
	if utf8.RuneCountInString(guess) != WordLength {
		return ErrWrongLength
	}
	if !isAlpha(guess) {
		return ErrNotAlphabetic
	}
	return nil
}

// isAlpha checks that s consists only of ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// Validator checks guesses against an optional dictionary.
type Validator struct {
	known map[string]struct{} // uppercase words; nil means no dictionary
}

// NewValidator builds a validator over dictionary.
//
// A nil or empty dictionary means the word list could not be loaded; the
// validator then fails open and IsKnownWord accepts every guess so the game
// stays playable.
func NewValidator(dictionary []string) *Validator {
	if len(dictionary) == 0 {
		return &Validator{}
	}
	known := make(map[string]struct{}, len(dictionary))
	for _, w := range dictionary {
		known[strings.ToUpper(w)] = struct{}{}
	}
	return &Validator{known: known}
}

// FailOpen reports whether the validator has no dictionary.
func (v *Validator) FailOpen() bool { return v == nil || v.known == nil }

// IsKnownWord reports whether the uppercased guess is in the dictionary.
// Always true when the validator fails open.
func (v *Validator) IsKnownWord(guess string) bool {
	if v.FailOpen() {
		return true
	}
	_, ok := v.known[strings.ToUpper(guess)]
	return ok
}

// Check returns nil for an acceptable guess, otherwise the first reason it
// is rejected: ErrWrongLength, ErrNotAlphabetic or ErrUnknownWord.
func (v *Validator) Check(guess string) error {
	if err := checkShape(guess); err != nil {
		return err
	}
	if !v.IsKnownWord(guess) {
		return ErrUnknownWord
	}
	return nil
}
