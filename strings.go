package lazylist

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tychoish/fun/ers"
)

// FromString returns the sealed list of the string's runes. The
// string is already materialized, so nothing is gained by keeping
// the conversion lazy.
func FromString(s string) *List[rune] { return Of([]rune(s)...) }

// AsString fully evaluates a rune list and returns it as a string.
// It never returns on an infinite list; Show is the bounded
// rendering.
func AsString(l *List[rune]) string {
	l.Force()
	return string(l.buf)
}

// Show renders up to max elements without requiring the list to be
// finite: "[1 2 3]" when the list seals within the bound, and
// "[1 2 3 ...]" when elements remain beyond it. This is the only
// printable form that makes progress on an infinite list.
func (l *List[T]) Show(max int) string {
	if max < 0 {
		max = 0
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < max && l.fillTo(i+1); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, l.buf[i])
	}
	if l.fillTo(max + 1) {
		if max > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("...")
	}
	sb.WriteByte(']')
	return sb.String()
}

// Lines lazily splits a rune list into its lines, consuming runes
// only as lines are demanded. Newlines are not part of the output,
// and a trailing newline does not produce a trailing empty line.
func Lines(l *List[rune]) *List[string] {
	cursor := 0
	return Generate(func([]string) (string, bool) {
		start := cursor
		for {
			if !l.fillTo(cursor + 1) {
				if cursor > start {
					return string(l.buf[start:cursor]), true
				}
				return "", false
			}
			r := l.buf[cursor]
			cursor++
			if r == '\n' {
				return string(l.buf[start : cursor-1]), true
			}
		}
	})
}

// Unlines lazily joins a list of lines back into a rune list,
// appending a newline after every line.
func Unlines(l *List[string]) *List[rune] {
	return Concat(Map(l, func(line string) *List[rune] {
		return FromString(line + "\n")
	}))
}

// Words lazily splits a rune list on runs of whitespace, dropping
// empty fields, so leading, trailing, and repeated whitespace
// produce no output.
func Words(l *List[rune]) *List[string] {
	cursor := 0
	return Generate(func([]string) (string, bool) {
		for l.fillTo(cursor+1) && unicode.IsSpace(l.buf[cursor]) {
			cursor++
		}
		start := cursor
		for l.fillTo(cursor+1) && !unicode.IsSpace(l.buf[cursor]) {
			cursor++
		}
		if cursor == start {
			return "", false
		}
		return string(l.buf[start:cursor]), true
	})
}

// Unwords lazily joins a list of words with single spaces.
func Unwords(l *List[string]) *List[rune] {
	first := true
	return Concat(Map(l, func(word string) *List[rune] {
		if first {
			first = false
			return FromString(word)
		}
		return FromString(" " + word)
	}))
}

// SplitOn lazily splits a rune list on a delimiter string. Unlike
// Words it keeps empty fields, so adjacent or trailing delimiters
// produce empty strings, and the empty input splits to a single
// empty field. An empty delimiter returns ers.ErrInvalidInput.
func SplitOn(l *List[rune], sep string) (*List[string], error) {
	if sep == "" {
		return nil, ers.ErrInvalidInput
	}
	delim := []rune(sep)
	cursor := 0
	done := false
	return Generate(func([]string) (string, bool) {
		if done {
			return "", false
		}
		start := cursor
		for {
			if l.fillTo(cursor+len(delim)) && matchesAt(l.buf, cursor, delim) {
				field := string(l.buf[start:cursor])
				cursor += len(delim)
				return field, true
			}
			if !l.fillTo(cursor + 1) {
				done = true
				return string(l.buf[start:cursor]), true
			}
			cursor++
		}
	}), nil
}

func matchesAt(buf []rune, at int, delim []rune) bool {
	for i, r := range delim {
		if buf[at+i] != r {
			return false
		}
	}
	return true
}

// ConcatStrings flattens a list of strings into the lazy rune list
// of their concatenation.
func ConcatStrings(l *List[string]) *List[rune] {
	return Concat(Map(l, FromString))
}
