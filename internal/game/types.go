// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter classification of a guess (exact/present/absent).
//   - State: session state (playing/won/lost).
//   - Outcome + Result: the record produced when a session ends.

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter occurs at another, not yet consumed, position.
//   - "absent":  no unconsumed occurrence of the letter is left.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// State is the coarse lifecycle state of a Session.
type State string

const (
	StatePlaying State = "playing" // awaiting a guess
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Finished reports whether s is terminal.
func (s State) Finished() bool { return s == StateWon || s == StateLost }

// Outcome is the persisted result of a finished game.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// Result is created once when a session ends and handed to a result store.
type Result struct {
	Username string  // Player name as typed at the prompt.
	Secret   string  // The secret word (uppercase).
	Attempts int     // Accepted guesses used.
	Outcome  Outcome // win | loss
}

// Won reports whether the result is a win.
func (r Result) Won() bool { return r.Outcome == OutcomeWin }
