// internal/words/words.go
//
// Word list management for the game.
//
// Responsibilities:
//   - Load the secret word list from a file (one word per line).
//   - Pick the secret by index.
//   - Load the dictionary used for guess validation, failing open when the
//     dictionary cannot be read.
//
// Word Lists:
//   - answers: indexed secret words, in file order.
//   - allowed: dictionary for "word not in list" checks (defaults to answers).
//
// Constraints:
//   • Kept words are exactly 5 letters A–Z; other lines are skipped.
//   • Lists are normalized to uppercase.
//   • Lists are plain values owned by the caller; there is no package state.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	// ErrIndexOutOfRange is returned by List.At for an index outside the list.
	ErrIndexOutOfRange = errors.New("word index out of range")
	// ErrEmptyList is returned by FileSource.Load when no usable word was read.
	ErrEmptyList = errors.New("word list is empty")
)

// List is an ordered word list.
type List struct {
	words []string
}

// NewList normalizes words and keeps the valid ones, preserving order.
func NewList(words []string) *List {
	l := &List{words: make([]string, 0, len(words))}
	for _, w := range words {
		w = normalize(w)
		if !valid(w) {
			continue
		}
		l.words = append(l.words, w)
	}
	return l
}

// Len is the number of words in the list.
func (l *List) Len() int { return len(l.words) }

// At returns the word at index i.
func (l *List) At(i int) (string, error) {
	if i < 0 || i >= len(l.words) {
		if len(l.words) == 0 {
			return "", fmt.Errorf("%w: %d (list is empty)", ErrIndexOutOfRange, i)
		}
		return "", fmt.Errorf("%w: %d (valid range: 0 to %d)", ErrIndexOutOfRange, i, len(l.words)-1)
	}
	return l.words[i], nil
}

// Words returns a copy of the list.
func (l *List) Words() []string { return append([]string(nil), l.words...) }

// FileSource reads a word list from a file on every Load.
type FileSource struct {
	Path string
}

// Load reads the file and returns its valid words.
// An unreadable file or one without a single usable word is an error.
func (s FileSource) Load() (*List, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	raw, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", s.Path, err)
	}
	l := NewList(raw)
	if l.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", s.Path, ErrEmptyList)
	}
	if skipped := len(raw) - l.Len(); skipped > 0 {
		log.Debug().Str("path", s.Path).Int("skipped", skipped).Msg("ignored lines that are not 5-letter words")
	}
	log.Debug().Str("path", s.Path).Int("words", l.Len()).Msg("word list loaded")
	return l, nil
}

// Read returns the non-blank lines of r, trimmed. Lines have no length
// limit; an over-long line is kept here and dropped later by NewList.
func Read(r io.Reader) ([]string, error) {
	var out []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return out, err
		}
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
		if err != nil {
			return out, nil
		}
	}
}

// LoadDictionary loads the guess dictionary at path.
//
// A failure is logged and returns nil: a validator built from a nil
// dictionary accepts every well-formed guess, so a missing or corrupt file
// never blocks play.
func LoadDictionary(path string) []string {
	l, err := FileSource{Path: path}.Load()
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("dictionary unavailable, accepting any 5-letter guess")
		return nil
	}
	return l.Words()
}

func normalize(w string) string { return strings.ToUpper(strings.TrimSpace(w)) }

// valid reports whether w is 5 uppercase ASCII letters.
func valid(w string) bool {
	if len(w) != 5 {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
