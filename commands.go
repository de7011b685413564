package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-cli/internal/daily"
	"github.com/robalobadob/wordle-cli/internal/game"
	"github.com/robalobadob/wordle-cli/internal/httpserver"
	"github.com/robalobadob/wordle-cli/internal/play"
	"github.com/robalobadob/wordle-cli/internal/store"
	"github.com/robalobadob/wordle-cli/internal/words"
)

func (a *app) dailyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Play today's word (same word for everyone, changes at 00:00 UTC)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.loadAnswers()
			if err != nil {
				return err
			}
			now := time.Now()
			idx := daily.WordIndex(now, a.cfg.DailySalt, list.Len())
			log.Debug().Str("date", daily.DateKey(now)).Int("index", idx).Msg("daily word selected")
			fmt.Fprintf(cmd.OutOrStdout(), "Daily Wordle for %s\n", daily.DateKey(now))
			return a.play(cmd, list, idx)
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <username>",
		Short: "Show a player's results",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError{fmt.Errorf("stats takes exactly one username, got %d", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeStore := a.openStore()
			defer closeStore()
			play.PrintStats(cmd.Context(), cmd.OutOrStdout(), st, args[0], true)
			return nil
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve player stats as JSON over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeStore := a.openStore()
			defer closeStore()
			if st == nil {
				return fmt.Errorf("stats store unavailable")
			}

			answers, err := a.loadAnswers()
			if err != nil {
				log.Warn().Err(err).Msg("serving without word list")
			}
			srv := httpserver.New(st, httpserver.Options{
				Answers:      answers,
				Allowed:      a.dictionary(answers),
				ClientOrigin: a.cfg.ClientOrigin,
			})
			log.Info().Str("port", a.cfg.Port).Msg("starting stats server")
			return srv.Start(":" + a.cfg.Port)
		},
	}
}

// playIndex plays the word at idx of the configured word list.
func (a *app) playIndex(cmd *cobra.Command, idx int) error {
	list, err := a.loadAnswers()
	if err != nil {
		return err
	}
	return a.play(cmd, list, idx)
}

// play picks the secret and runs the interactive game. An index outside the
// list is reported before any prompt is shown.
func (a *app) play(cmd *cobra.Command, list *words.List, idx int) error {
	secret, err := list.At(idx)
	if err != nil {
		return err
	}
	st, closeStore := a.openStore()
	defer closeStore()

	r := play.NewRunner(play.NewLineReader(cmd.InOrStdin()), cmd.OutOrStdout(), st)
	return r.Run(cmd.Context(), secret, game.NewValidator(a.dictionary(list)))
}

// loadAnswers loads the secret word list; failure is a configuration error.
func (a *app) loadAnswers() (*words.List, error) {
	list, err := words.FileSource{Path: a.cfg.WordsFile}.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load word list, please check the word file: %w", err)
	}
	return list, nil
}

// dictionary returns the guess dictionary, reusing answers when both come
// from the same file. nil means validation fails open.
func (a *app) dictionary(answers *words.List) []string {
	path := a.cfg.DictionaryFile()
	if path == a.cfg.WordsFile && answers != nil {
		return answers.Words()
	}
	return words.LoadDictionary(path)
}

// openStore opens the configured result store. A SQLite failure is logged and
// play continues without persistence.
func (a *app) openStore() (store.Store, func()) {
	if a.cfg.StatsDB == "" {
		csv := store.NewCSVFile(a.cfg.StatsFile)
		log.Debug().Str("path", csv.Path()).Msg("using stats file")
		return csv, func() {}
	}
	db, err := store.OpenSQLite(a.cfg.StatsDB)
	if err != nil {
		log.Error().Err(err).Str("db", a.cfg.StatsDB).Msg("could not open stats database, results will not be saved")
		return nil, func() {}
	}
	return db, func() { _ = db.Close() }
}
