// internal/game/engine.go
//
// Session state machine for a single Wordle game.
// Responsibilities:
//   - Create sessions with the fixed 6x5 dimensions.
//   - Validate guesses (shape, dictionary) without consuming attempts on rejection.
//   - Score accepted guesses with Classify and feed the letter tracker.
//   - Track state transitions: playing → won/lost, and build the final Result.
//
// Notes:
//   - A Session is owned by one caller and is not safe for concurrent use.
//   - Reading input and persisting results live in the play package.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxAttempts is the number of accepted guesses a session allows.
const MaxAttempts = 6

var (
	// ErrSessionOver is returned by Submit once the session is won or lost.
	ErrSessionOver = errors.New("game finished")
	// ErrInvalidSecret is returned by NewSession for a malformed secret word.
	ErrInvalidSecret = errors.New("secret must be 5 letters A-Z")
)

// Turn describes the effect of one accepted guess.
type Turn struct {
	Guess        string // Uppercased guess.
	Marks        []Mark // Per-letter classification.
	State        State  // State after the guess.
	AttemptsUsed int
	AttemptsLeft int
}

// Session holds the state of one game.
type Session struct {
	ID       string // Random id used to correlate log lines.
	Username string

	secret    string
	validator *Validator
	tracker   *LetterTracker

	attemptsUsed int
	attemptsMax  int
	guesses      []string
	state        State
}

// NewSession constructs a session for username against secret.
// A nil validator fails open.
func NewSession(username, secret string, v *Validator) (*Session, error) {
	secret = strings.ToUpper(strings.TrimSpace(secret))
	if !IsWellFormed(secret) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSecret, secret)
	}
	if v == nil {
		v = NewValidator(nil)
	}
	return &Session{
		ID:          uuid.NewString(),
		Username:    username,
		secret:      secret,
		validator:   v,
		tracker:     NewLetterTracker(),
		attemptsMax: MaxAttempts,
		guesses:     []string{},
		state:       StatePlaying,
	}, nil
}

// Submit validates and applies a raw guess.
//
// Validation rules:
//   - Session must still be playing (ErrSessionOver).
//   - Guess is trimmed; it must be WordLength letters (ErrWrongLength, ErrNotAlphabetic).
//   - Guess must be in the dictionary unless the validator fails open (ErrUnknownWord).
//
// A rejected guess leaves the attempt counter unchanged.
//
// State transitions:
//   - Guess equals the secret → won.
//   - Else marks are computed, absent letters tracked, and the session is lost
//     once attemptsUsed reaches the maximum.
func (s *Session) Submit(raw string) (Turn, error) {
	if s.state.Finished() {
		return Turn{}, ErrSessionOver
	}
	guess := strings.TrimSpace(raw)
	if err := s.validator.Check(guess); err != nil {
		return Turn{}, err
	}
	guess = strings.ToUpper(guess)

	marks, err := Classify(guess, s.secret)
	if err != nil {
		return Turn{}, err
	}
	s.attemptsUsed++
	s.guesses = append(s.guesses, guess)

	if AllExact(marks) {
		s.state = StateWon
	} else {
		s.tracker.Update(guess, s.secret)
		if s.attemptsUsed == s.attemptsMax {
			s.state = StateLost
		}
	}

	return Turn{
		Guess:        guess,
		Marks:        marks,
		State:        s.state,
		AttemptsUsed: s.attemptsUsed,
		AttemptsLeft: s.attemptsMax - s.attemptsUsed,
	}, nil
}

// State reports the current state.
func (s *Session) State() State { return s.state }

// AttemptsUsed is the number of accepted guesses so far.
func (s *Session) AttemptsUsed() int { return s.attemptsUsed }

// AttemptsLeft is the number of accepted guesses still allowed.
func (s *Session) AttemptsLeft() int { return s.attemptsMax - s.attemptsUsed }

// Guesses returns a copy of the accepted guesses in order.
func (s *Session) Guesses() []string { return append([]string(nil), s.guesses...) }

// Remaining returns the letters not yet confirmed absent.
func (s *Session) Remaining() string { return s.tracker.Remaining() }

// Secret returns the secret word. Callers reveal it only after a loss.
func (s *Session) Secret() string { return s.secret }

// Result returns the final record once the session is won or lost.
func (s *Session) Result() (Result, bool) {
	if !s.state.Finished() {
		return Result{}, false
	}
	out := OutcomeLoss
	if s.state == StateWon {
		out = OutcomeWin
	}
	return Result{
		Username: s.Username,
		Secret:   s.secret,
		Attempts: s.attemptsUsed,
		Outcome:  out,
	}, true
}
