package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-cli/internal/words"
)

type fixture struct {
	words string
	stats string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{words: filepath.Join(dir, "wordle-words.txt"), stats: filepath.Join(dir, "stats.csv")}
	require.NoError(t, os.WriteFile(f.words, []byte("crane\nslate\ntrace\n"), 0o644))
	return f
}

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&out)
	if args == nil {
		args = []string{} // nil makes cobra read os.Args
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseIndexArgs(t *testing.T) {
	require.NoError(t, parseIndexArgs(nil, []string{"0"}))
	require.NoError(t, parseIndexArgs(nil, []string{"42"}))

	for _, args := range [][]string{nil, {"a"}, {"-1"}, {"1", "2"}, {"1.5"}} {
		err := parseIndexArgs(nil, args)
		var ue usageError
		assert.True(t, errors.As(err, &ue), "%v", args)
	}
}

func TestRootUsageErrors(t *testing.T) {
	var ue usageError

	_, err := run(t, "")
	assert.True(t, errors.As(err, &ue))

	_, err = run(t, "", "abc")
	assert.True(t, errors.As(err, &ue))

	_, err = run(t, "", "--bogus", "1")
	assert.True(t, errors.As(err, &ue))
}

func TestPlayWinAppendsRecord(t *testing.T) {
	f := newFixture(t)
	out, err := run(t, "alice\nslate\ncrane\nno\n", "--words", f.words, "--stats", f.stats, "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Congratulations!")

	raw, err := os.ReadFile(f.stats)
	require.NoError(t, err)
	assert.Equal(t, "alice,CRANE,2,win\n", string(raw))
}

func TestPlayRejectsWordsOutsideList(t *testing.T) {
	f := newFixture(t)
	out, err := run(t, "alice\nzzzzz\nslate\n", "--words", f.words, "--stats", f.stats, "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Word not in list.")

	raw, err := os.ReadFile(f.stats)
	require.NoError(t, err)
	assert.Equal(t, "alice,SLATE,1,win\n", string(raw))
}

func TestPlayFailsOpenWhenDictionaryMissing(t *testing.T) {
	f := newFixture(t)
	missing := filepath.Join(t.TempDir(), "allowed.txt")
	out, err := run(t, "alice\nzzzzz\n", "--words", f.words, "--allowed", missing, "--stats", f.stats, "0")
	require.NoError(t, err)
	assert.NotContains(t, out, "Word not in list.")
	assert.Contains(t, out, "Attempts remaining: 5")
}

func TestIndexOutOfRangeIsConfigError(t *testing.T) {
	f := newFixture(t)
	out, err := run(t, "alice\n", "--words", f.words, "--stats", f.stats, "3")
	require.ErrorIs(t, err, words.ErrIndexOutOfRange)
	assert.NotContains(t, out, "Enter your username")
	_, statErr := os.Stat(f.stats)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMissingWordListIsConfigError(t *testing.T) {
	_, err := run(t, "", "--words", filepath.Join(t.TempDir(), "none.txt"), "0")
	require.ErrorIs(t, err, os.ErrNotExist)
	var ue usageError
	assert.False(t, errors.As(err, &ue))
}

func TestEndOfInputWritesNothing(t *testing.T) {
	f := newFixture(t)
	out, err := run(t, "alice\nslate\n", "--words", f.words, "--stats", f.stats, "0")
	require.NoError(t, err)
	assert.NotContains(t, out, "Game over")
	_, statErr := os.Stat(f.stats)
	assert.True(t, os.IsNotExist(statErr))
}

func TestStatsCommand(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.stats, []byte("alice,CRANE,2,win\nbroken line\nalice,SLATE,6,loss\n"), 0o644))

	out, err := run(t, "", "stats", "alice", "--stats", f.stats)
	require.NoError(t, err)
	assert.Contains(t, out, "Games played: 2")
	assert.Contains(t, out, "alice played CRANE in 2 attempts - win")

	_, err = run(t, "", "stats")
	var ue usageError
	assert.True(t, errors.As(err, &ue))
}

func TestPlayWithSQLiteStore(t *testing.T) {
	f := newFixture(t)
	db := filepath.Join(t.TempDir(), "stats.db")
	_, err := run(t, "bob\ncrane\nno\n", "--words", f.words, "--db", db, "0")
	require.NoError(t, err)

	out, err := run(t, "", "stats", "bob", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Games won: 1")
}

func TestStatsWithUnavailableDatabase(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	out, err := run(t, "", "stats", "alice", "--db", filepath.Join(blocker, "stats.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "Could not read stats.")
	assert.NotContains(t, out, "No stats found")
}
