package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, secret string, dict ...string) *Session {
	t.Helper()
	s, err := NewSession("alice", secret, NewValidator(dict))
	require.NoError(t, err)
	return s
}

func TestNewSessionRejectsBadSecret(t *testing.T) {
	for _, secret := range []string{"", "CRAN", "CRANES", "CR4NE"} {
		_, err := NewSession("alice", secret, nil)
		require.ErrorIs(t, err, ErrInvalidSecret, secret)
	}
}

func TestNewSessionNormalizesSecret(t *testing.T) {
	s, err := NewSession("alice", " crane ", nil)
	require.NoError(t, err)
	assert.Equal(t, "CRANE", s.Secret())
	assert.Equal(t, StatePlaying, s.State())
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, MaxAttempts, s.AttemptsLeft())
}

func TestSessionWinCountsAllAcceptedGuesses(t *testing.T) {
	s := newTestSession(t, "CRANE")

	turn, err := s.Submit("slate")
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, turn.State)
	assert.Equal(t, 1, turn.AttemptsUsed)
	assert.Equal(t, 5, turn.AttemptsLeft)

	_, err = s.Submit("  trace ")
	require.NoError(t, err)

	turn, err = s.Submit("CRANE")
	require.NoError(t, err)
	assert.Equal(t, StateWon, turn.State)
	assert.True(t, AllExact(turn.Marks))
	assert.Equal(t, []string{"SLATE", "TRACE", "CRANE"}, s.Guesses())

	res, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, Result{Username: "alice", Secret: "CRANE", Attempts: 3, Outcome: OutcomeWin}, res)
	assert.True(t, res.Won())
}

func TestSessionRejectedGuessDoesNotConsumeAttempt(t *testing.T) {
	s := newTestSession(t, "CRANE", "CRANE", "SLATE")

	for _, raw := range []string{"AB", "12345", "ZZZZZ", ""} {
		_, err := s.Submit(raw)
		require.Error(t, err, raw)
	}
	assert.Zero(t, s.AttemptsUsed())
	assert.Equal(t, StatePlaying, s.State())

	_, err := s.Submit("AB")
	assert.ErrorIs(t, err, ErrWrongLength)
	_, err = s.Submit("ZZZZZ")
	assert.ErrorIs(t, err, ErrUnknownWord)

	_, err = s.Submit("slate")
	require.NoError(t, err)
	assert.Equal(t, 1, s.AttemptsUsed())
}

func TestSessionLosesAfterSixMisses(t *testing.T) {
	s := newTestSession(t, "CRANE")

	for i := 1; i <= MaxAttempts; i++ {
		turn, err := s.Submit("FJORD")
		require.NoError(t, err)
		assert.Equal(t, i, turn.AttemptsUsed)
		if i < MaxAttempts {
			assert.Equal(t, StatePlaying, turn.State)
			_, ok := s.Result()
			assert.False(t, ok)
		}
	}
	assert.Equal(t, StateLost, s.State())

	res, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, OutcomeLoss, res.Outcome)
	assert.Equal(t, 6, res.Attempts)

	_, err := s.Submit("CRANE")
	assert.ErrorIs(t, err, ErrSessionOver)
}

func TestSessionTracksAbsentLettersOnMiss(t *testing.T) {
	s := newTestSession(t, "CRANE")

	turn, err := s.Submit("SLATE")
	require.NoError(t, err)
	assert.Equal(t, []Mark{A, A, E, A, E}, turn.Marks)
	assert.Equal(t, "ABCDEFGHIJKMNOPQRUVWXYZ", s.Remaining())
}

func TestSessionWinDoesNotTouchTracker(t *testing.T) {
	s := newTestSession(t, "CRANE")
	_, err := s.Submit("CRANE")
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", s.Remaining())
}
