package lazylist

import (
	"testing"
	"time"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
	"github.com/tychoish/fun/ers"
)

func TestStrings(t *testing.T) {
	t.Parallel()
	t.Run("RoundTrip", func(t *testing.T) {
		check.Equal(t, AsString(FromString("héllo")), "héllo")
		check.Equal(t, AsString(FromString("")), "")
	})
	t.Run("ConcatStrings", func(t *testing.T) {
		chars := ConcatStrings(Of("Hello ", "World"))
		check.Equal(t, AsString(chars), "Hello World")
		t.Run("LazyOverInfinite", func(t *testing.T) {
			assert.MaxRuntime(t, 5*time.Second, func() {
				chars := ConcatStrings(Repeat("ab"))
				check.Equal(t, string(chars.Take(5).Slice()), "ababa")
			})
		})
	})
	t.Run("Show", func(t *testing.T) {
		t.Run("SealsWithinBound", func(t *testing.T) {
			check.Equal(t, Of(1, 2, 3).Show(10), "[1 2 3]")
			check.Equal(t, Empty[int]().Show(10), "[]")
		})
		t.Run("Unbounded", func(t *testing.T) {
			assert.MaxRuntime(t, 5*time.Second, func() {
				check.Equal(t, naturals().Show(3), "[1 2 3 ...]")
				check.Equal(t, naturals().Show(0), "[...]")
			})
		})
		t.Run("ExactBound", func(t *testing.T) {
			check.Equal(t, Of(1, 2, 3).Show(3), "[1 2 3]")
		})
	})
	t.Run("Lines", func(t *testing.T) {
		l := Lines(FromString("one\ntwo\n\nthree"))
		check.EqualItems(t, l.Slice(), []string{"one", "two", "", "three"})
		t.Run("TrailingNewline", func(t *testing.T) {
			check.EqualItems(t, Lines(FromString("a\nb\n")).Slice(), []string{"a", "b"})
		})
		t.Run("Empty", func(t *testing.T) {
			check.True(t, Lines(FromString("")).IsEmpty())
		})
	})
	t.Run("Unlines", func(t *testing.T) {
		check.Equal(t, AsString(Unlines(Of("a", "b"))), "a\nb\n")
	})
	t.Run("Words", func(t *testing.T) {
		l := Words(FromString("  the quick\tbrown\n fox "))
		check.EqualItems(t, l.Slice(), []string{"the", "quick", "brown", "fox"})
		check.True(t, Words(FromString("   ")).IsEmpty())
	})
	t.Run("Unwords", func(t *testing.T) {
		check.Equal(t, AsString(Unwords(Of("the", "quick", "fox"))), "the quick fox")
		check.Equal(t, AsString(Unwords(Empty[string]())), "")
	})
	t.Run("SplitOn", func(t *testing.T) {
		t.Run("KeepsEmptyFields", func(t *testing.T) {
			l, err := SplitOn(FromString("a,,b,"), ",")
			assert.NotError(t, err)
			check.EqualItems(t, l.Slice(), []string{"a", "", "b", ""})
		})
		t.Run("MultiRuneDelimiter", func(t *testing.T) {
			l, err := SplitOn(FromString("x::y::z"), "::")
			assert.NotError(t, err)
			check.EqualItems(t, l.Slice(), []string{"x", "y", "z"})
		})
		t.Run("NoDelimiter", func(t *testing.T) {
			l, err := SplitOn(FromString("abc"), ",")
			assert.NotError(t, err)
			check.EqualItems(t, l.Slice(), []string{"abc"})
		})
		t.Run("EmptyInput", func(t *testing.T) {
			l, err := SplitOn(FromString(""), ",")
			assert.NotError(t, err)
			check.EqualItems(t, l.Slice(), []string{""})
		})
		t.Run("EmptyDelimiter", func(t *testing.T) {
			_, err := SplitOn(FromString("abc"), "")
			check.ErrorIs(t, err, ers.ErrInvalidInput)
		})
	})
	t.Run("LinesStayLazy", func(t *testing.T) {
		assert.MaxRuntime(t, 5*time.Second, func() {
			stream := Concat(Map(naturals(), func(n int) *List[rune] { return FromString("line\n") }))
			l := Lines(stream)
			check.EqualItems(t, l.Take(2).Slice(), []string{"line", "line"})
		})
	})
}
