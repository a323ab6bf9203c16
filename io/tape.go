package io

import (
	"bufio"
	"io"
	"iter"
	"unicode/utf8"
)

// Tape provides sequential character I/O over byte streams.
// It wraps an io.Reader for input and io.Writer for output, converting
// between character codes and UTF-8 text.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive returns an iterator that yields the code of each character read
// from the input stream, until end of input.
func (tc *Tape) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		if tc.Input == nil {
			return
		}
		if tc.reader == nil {
			tc.reader = bufio.NewReader(tc.Input)
		}
		for {
			r, _, err := tc.reader.ReadRune()
			if err != nil {
				return
			}
			if !yield(int64(r)) {
				return
			}
		}
	}
}

// Send writes a character code to the output stream. Codes that are not
// valid characters are written as the replacement character.
func (tc *Tape) Send(value int64) (err error) {
	if tc.Output == nil {
		return
	}

	r := utf8.RuneError
	if value >= 0 && value <= utf8.MaxRune {
		r = rune(value)
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	_, err = tc.Output.Write(buf[:n])

	return
}
