package buffer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// LineSeparator is the only separator recognised when splitting file contents.
// A "\r" preceding it stays part of the line so that JoinLines restores it.
const LineSeparator = "\n"

// SplitLines splits text into lines on LineSeparator.
// The result is never empty: "" yields a single empty line.
func SplitLines(text string) []string {
	return strings.Split(text, LineSeparator)
}

// JoinLines rejoins lines with LineSeparator. JoinLines(SplitLines(s)) == s.
func JoinLines(lines []string) string {
	return strings.Join(lines, LineSeparator)
}

// ErrNotUTF8 is returned by CheckText for text that cannot be held as runes
// without replacing bytes.
var ErrNotUTF8 = errors.New("not valid UTF-8 text")

// CheckText returns an error wrapping ErrNotUTF8 if text contains an invalid
// UTF-8 sequence, naming the byte offset of the first one.
func CheckText(text string) error {
	if utf8.ValidString(text) {
		return nil
	}
	for off := 0; off < len(text); {
		r, size := utf8.DecodeRuneInString(text[off:])
		if r == utf8.RuneError && size <= 1 {
			return fmt.Errorf("%w (invalid byte at offset %d)", ErrNotUTF8, off)
		}
		off += size
	}
	return ErrNotUTF8
}
