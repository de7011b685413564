// internal/play/play.go
//
// Interactive prompt loop around a game.Session.
// Responsibilities:
//   - Ask for the username and guesses on the input source.
//   - Print validation messages, feedback tiles, remaining letters and attempts.
//   - Hand the final result to the result store (errors logged, never fatal).
//   - Offer the player their stats after the game.
//
// End of input at any prompt aborts quietly: no "game over" text and nothing
// is written to the store.

package play

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-cli/internal/game"
	"github.com/robalobadob/wordle-cli/internal/store"
)

// Runner drives one game over an input source and an output stream.
type Runner struct {
	In    InputSource
	Out   io.Writer
	Store store.Store
	Theme Theme
}

// NewRunner builds a Runner with a theme detected from out.
func NewRunner(in InputSource, out io.Writer, st store.Store) *Runner {
	return &Runner{In: in, Out: out, Store: st, Theme: NewTheme(out)}
}

// Run plays a complete game against secret: username prompt, guesses,
// persistence and the stats offer. End of input returns nil.
func (r *Runner) Run(ctx context.Context, secret string, v *game.Validator) error {
	username, err := r.AskUsername()
	if err != nil {
		return quiet(err)
	}

	sess, err := game.NewSession(username, secret, v)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Out, "Welcome to Wordle! Guess the 5-letter word.")

	if _, err := r.Play(ctx, sess); err != nil {
		return quiet(err)
	}
	return quiet(r.OfferStats(ctx, username))
}

// AskUsername prompts until a usable name is entered. Commas are refused so
// stats records keep exactly four fields.
func (r *Runner) AskUsername() (string, error) {
	for {
		fmt.Fprint(r.Out, "Enter your username: ")
		line, err := r.In.NextLine()
		if err != nil {
			return "", err
		}
		name := strings.TrimSpace(line)
		switch {
		case name == "":
			fmt.Fprintln(r.Out, " Username cannot be empty.")
		case strings.ContainsAny(name, ",\r\n"):
			fmt.Fprintln(r.Out, " Username cannot contain commas.")
		default:
			return name, nil
		}
	}
}

// Play runs the guess loop until the session is won or lost, then stores
// the result. It returns ErrEndOfInput, with no result, if input runs out.
func (r *Runner) Play(ctx context.Context, sess *game.Session) (game.Result, error) {
	logger := log.With().Str("session", sess.ID).Str("user", sess.Username).Logger()
	logger.Debug().Msg("session started")

	for !sess.State().Finished() {
		fmt.Fprint(r.Out, "Enter your guess: ")
		line, err := r.In.NextLine()
		if err != nil {
			fmt.Fprintln(r.Out)
			if errors.Is(err, ErrEndOfInput) {
				logger.Debug().Int("attempts", sess.AttemptsUsed()).Msg("input ended, session aborted")
			}
			return game.Result{}, err
		}

		turn, err := sess.Submit(line)
		if err != nil {
			fmt.Fprintln(r.Out, " "+rejection(err))
			continue
		}

		if turn.State == game.StateWon {
			fmt.Fprintln(r.Out, " Congratulations! You've guessed the word correctly.")
			break
		}
		fmt.Fprintln(r.Out, " Feedback: "+r.Theme.Tiles(turn.Guess, turn.Marks))
		fmt.Fprintln(r.Out, "Remaining letters: "+spaced(sess.Remaining()))
		fmt.Fprintf(r.Out, "Attempts remaining: %d\n", sess.AttemptsLeft())
	}

	res, _ := sess.Result()
	if !res.Won() {
		fmt.Fprintln(r.Out, "Game over. The correct word was: "+strings.ToLower(sess.Secret()))
	}
	logger.Info().
		Str("outcome", string(res.Outcome)).
		Int("attempts", res.Attempts).
		Strs("guesses", sess.Guesses()).
		Msg("session finished")

	if r.Store != nil {
		if err := r.Store.Append(ctx, res); err != nil {
			logger.Error().Err(err).Msg("could not save game result")
		}
	}
	return res, nil
}

// OfferStats asks whether to show the player's stats and prints them on yes.
func (r *Runner) OfferStats(ctx context.Context, username string) error {
	fmt.Fprint(r.Out, "Do you want to see your stats? (yes/no): ")
	line, err := r.In.NextLine()
	if err != nil {
		fmt.Fprintln(r.Out)
		return err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "yes", "y":
		PrintStats(ctx, r.Out, r.Store, username, false)
	}
	return nil
}

// PrintStats writes the user's summary, and optionally every game, to w.
// A missing store or a read failure is reported briefly; it never aborts the
// caller.
func PrintStats(ctx context.Context, w io.Writer, st store.Store, username string, history bool) {
	if st == nil {
		fmt.Fprintln(w, "Could not read stats.")
		return
	}
	sum, results, err := store.UserSummary(ctx, st, username)
	if err != nil {
		log.Error().Err(err).Str("user", username).Msg("could not read stats")
		fmt.Fprintln(w, "Could not read stats.")
		return
	}
	if sum.GamesPlayed == 0 {
		fmt.Fprintln(w, "No stats found for "+username)
		return
	}
	fmt.Fprintf(w, "Stats for %s:\n", username)
	fmt.Fprintf(w, "Games played: %d\n", sum.GamesPlayed)
	fmt.Fprintf(w, "Games won: %d\n", sum.Wins)
	fmt.Fprintf(w, "Win rate: %.0f%%\n", sum.WinRate*100)
	fmt.Fprintf(w, "Average attempts per game: %.2f\n", sum.AverageAttempts)
	fmt.Fprintf(w, "Current streak: %d\n", sum.Streak)
	if !history {
		return
	}
	fmt.Fprintln(w)
	for _, res := range results {
		fmt.Fprintf(w, "%s played %s in %d attempts - %s\n", res.Username, res.Secret, res.Attempts, res.Outcome)
	}
}

// rejection maps a Submit error to the message shown to the player.
func rejection(err error) string {
	switch {
	case errors.Is(err, game.ErrWrongLength):
		return "Your guess must be exactly 5 letters long."
	case errors.Is(err, game.ErrNotAlphabetic):
		return "Your guess must only contain letters."
	case errors.Is(err, game.ErrUnknownWord):
		return "Word not in list. Please enter a valid word."
	default:
		return err.Error()
	}
}

// quiet turns end of input into a clean exit.
func quiet(err error) error {
	if errors.Is(err, ErrEndOfInput) {
		return nil
	}
	return err
}
