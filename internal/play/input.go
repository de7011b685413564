package play

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrEndOfInput is returned when the input source has no more lines.
// The game treats it as a clean abort, not a failure.
var ErrEndOfInput = errors.New("end of input")

// InputSource yields raw lines typed by the player.
type InputSource interface {
	NextLine() (string, error)
}

// LineReader is an InputSource over any reader, one line per call.
// Lines of any length are returned whole; validation decides what to do
// with them.
type LineReader struct {
	br *bufio.Reader
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{br: bufio.NewReader(r)}
}

// NextLine blocks for the next line without its line ending. A final line
// with no newline is still returned; ErrEndOfInput follows it.
func (l *LineReader) NextLine() (string, error) {
	line, err := l.br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrEndOfInput
	}
	return strings.TrimRight(line, "\r\n"), nil
}
