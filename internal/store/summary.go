package store

import (
	"context"

	"github.com/robalobadob/wordle-cli/internal/game"
)

// Summary aggregates one user's finished games.
type Summary struct {
	Username        string  `json:"username"`
	GamesPlayed     int     `json:"gamesPlayed"`
	Wins            int     `json:"wins"`
	WinRate         float64 `json:"winRate"`         // 0..1
	AverageAttempts float64 `json:"averageAttempts"` // over all games, wins and losses
	Streak          int     `json:"streak"`          // consecutive wins ending with the latest game
}

// Summarize folds results (oldest first) into a Summary.
func Summarize(username string, results []game.Result) Summary {
	s := Summary{Username: username, GamesPlayed: len(results)}
	if len(results) == 0 {
		return s
	}
	total := 0
	for _, r := range results {
		total += r.Attempts
		if r.Won() {
			s.Wins++
			s.Streak++
		} else {
			s.Streak = 0
		}
	}
	s.WinRate = float64(s.Wins) / float64(s.GamesPlayed)
	s.AverageAttempts = float64(total) / float64(s.GamesPlayed)
	return s
}

// UserSummary loads the user's games from st and summarizes them.
func UserSummary(ctx context.Context, st Store, username string) (Summary, []game.Result, error) {
	results, err := st.AllForUser(ctx, username)
	if err != nil {
		return Summary{}, nil, err
	}
	return Summarize(username, results), results, nil
}
