package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-cli/internal/config"
)

// usageError marks a bad command line; main prints usage and exits 2.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

// app carries configuration shared by every command.
type app struct {
	cfg config.Config

	wordsFile   string
	allowedFile string
	statsFile   string
	statsDB     string
	logLevel    string
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(os.Stderr, "Error:", ue.err)
			fmt.Fprint(os.Stderr, root.UsageString())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "wordle <word-index>",
		Short: "Play Wordle in the terminal",
		Long: `Play Wordle against the word at <word-index> in the word list.

Guess the 5-letter word in six attempts. After each guess every letter is
marked: [X] right place, (X) elsewhere in the word, plain X not in the word.
Results are appended to the stats file.`,
		Args:          parseIndexArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.configure(cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, _ := strconv.Atoi(args[0])
			return a.playIndex(cmd, idx)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&a.wordsFile, "words", "", "word list file (env WORDS_ANSWERS_FILE)")
	pf.StringVar(&a.allowedFile, "allowed", "", "dictionary for guess checks (env WORDS_ALLOWED_FILE)")
	pf.StringVar(&a.statsFile, "stats", "", "CSV stats file (env STATS_FILE)")
	pf.StringVar(&a.statsDB, "db", "", "SQLite stats database, replaces the CSV file (env STATS_DB)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")

	root.AddCommand(a.dailyCmd(), a.statsCmd(), a.serveCmd())
	return root
}

// parseIndexArgs accepts exactly one non-negative integer.
func parseIndexArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageError{errors.New("please provide a word index as the only argument")}
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return usageError{fmt.Errorf("invalid word index %q: must be a number", args[0])}
	}
	if idx < 0 {
		return usageError{fmt.Errorf("invalid word index %d: must not be negative", idx)}
	}
	return nil
}

// configure loads the environment and applies flags given on the command line.
func (a *app) configure(cmd *cobra.Command) {
	a.cfg = config.Load()
	flags := cmd.Flags()
	override := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("words", &a.cfg.WordsFile, a.wordsFile)
	override("allowed", &a.cfg.AllowedFile, a.allowedFile)
	override("stats", &a.cfg.StatsFile, a.statsFile)
	override("db", &a.cfg.StatsDB, a.statsDB)
	override("log-level", &a.cfg.LogLevel, a.logLevel)

	setupLogging(a.cfg.Level())
}

func setupLogging(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}
