package lazylist

import (
	"testing"
	"time"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestQueries(t *testing.T) {
	t.Parallel()
	t.Run("HeadTailInitLast", func(t *testing.T) {
		l := Of(1, 2, 3)
		t.Run("Head", func(t *testing.T) {
			v, err := l.Head()
			assert.NotError(t, err)
			check.Equal(t, v, 1)
			_, err = Empty[int]().Head()
			check.ErrorIs(t, err, ErrEmpty)
		})
		t.Run("Tail", func(t *testing.T) {
			tail, err := l.Tail()
			assert.NotError(t, err)
			check.EqualItems(t, tail.Slice(), []int{2, 3})
			_, err = Empty[int]().Tail()
			check.ErrorIs(t, err, ErrEmpty)
		})
		t.Run("Init", func(t *testing.T) {
			init, err := l.Init()
			assert.NotError(t, err)
			check.EqualItems(t, init.Slice(), []int{1, 2})
			_, err = Empty[int]().Init()
			check.ErrorIs(t, err, ErrEmpty)
		})
		t.Run("InitStaysLazy", func(t *testing.T) {
			init, err := naturals().Init()
			assert.NotError(t, err)
			check.EqualItems(t, init.Take(3).Slice(), []int{1, 2, 3})
		})
		t.Run("Last", func(t *testing.T) {
			v, err := l.Last()
			assert.NotError(t, err)
			check.Equal(t, v, 3)
			_, err = Empty[int]().Last()
			check.ErrorIs(t, err, ErrEmpty)
		})
	})
	t.Run("Length", func(t *testing.T) {
		check.Equal(t, Of(1, 2, 3).Length(), 3)
		check.Equal(t, Empty[int]().Length(), 0)
	})
	t.Run("BoundedLengthQueries", func(t *testing.T) {
		assert.MaxRuntime(t, 5*time.Second, func() {
			l := naturals()
			check.True(t, l.LengthIsAtLeast(1000))
			check.True(t, !l.LengthIsAtMost(1000))
			check.True(t, !l.LengthEquals(1000))
		})
		t.Run("Finite", func(t *testing.T) {
			l := Of(1, 2, 3)
			check.True(t, l.LengthIsAtLeast(3))
			check.True(t, !l.LengthIsAtLeast(4))
			check.True(t, l.LengthIsAtMost(3))
			check.True(t, !l.LengthIsAtMost(2))
			check.True(t, l.LengthEquals(3))
			check.True(t, !l.LengthEquals(2))
		})
		t.Run("NegativeBounds", func(t *testing.T) {
			l := Of(1)
			check.True(t, l.LengthIsAtLeast(-1))
			check.True(t, !l.LengthIsAtMost(-1))
			check.True(t, !l.LengthEquals(-1))
		})
		t.Run("RealizesNoMoreThanNeeded", func(t *testing.T) {
			l := naturals()
			l.LengthIsAtLeast(10)
			check.Equal(t, l.Realized(), 10)
			l.LengthEquals(20)
			check.Equal(t, l.Realized(), 21)
		})
	})
	t.Run("ContainsIndexOf", func(t *testing.T) {
		l := Of("a", "b", "c")
		check.Equal(t, IndexOf(l, "b"), 1)
		check.Equal(t, IndexOf(l, "z"), -1)
		check.True(t, Contains(l, "c"))
		check.True(t, !Contains(l, "z"))
		t.Run("LastIndexOf", func(t *testing.T) {
			l := Of(1, 2, 1, 3, 1)
			check.Equal(t, LastIndexOf(l, 1), 4)
			check.Equal(t, LastIndexOf(l, 2), 1)
			check.Equal(t, LastIndexOf(l, 9), -1)
			check.Equal(t, LastIndexOf(Empty[int](), 1), -1)
		})
		t.Run("HitOnInfinite", func(t *testing.T) {
			assert.MaxRuntime(t, 5*time.Second, func() {
				check.Equal(t, IndexOf(naturals(), 500), 499)
			})
		})
	})
	t.Run("AnyAll", func(t *testing.T) {
		l := Of(2, 4, 5)
		check.True(t, l.Any(func(n int) bool { return n%2 == 1 }))
		check.True(t, !l.All(func(n int) bool { return n%2 == 0 }))
		check.True(t, l.All(func(n int) bool { return n < 10 }))
		t.Run("EarlyExitOnInfinite", func(t *testing.T) {
			assert.MaxRuntime(t, 5*time.Second, func() {
				check.True(t, naturals().Any(func(n int) bool { return n > 10 }))
				check.True(t, !naturals().All(func(n int) bool { return n < 5 }))
			})
		})
	})
	t.Run("IsOrderedBy", func(t *testing.T) {
		check.True(t, Of(1, 2, 2, 3).IsOrderedBy(LessThanNative[int]))
		check.True(t, !Of(1, 3, 2).IsOrderedBy(LessThanNative[int]))
		check.True(t, Of(3, 2, 1).IsOrderedBy(ReverseOrder(LessThanNative[int])))
	})
	t.Run("Equal", func(t *testing.T) {
		check.True(t, Equal(Of(1, 2, 3), Range(1, 3)))
		check.True(t, !Equal(Of(1, 2, 3), Of(1, 2)))
		check.True(t, !Equal(Of(1, 2, 3), Of(1, 2, 4)))
		check.True(t, Equal(Empty[int](), Empty[int]()))
		t.Run("DifferenceFoundOnInfinite", func(t *testing.T) {
			assert.MaxRuntime(t, 5*time.Second, func() {
				evens := Map(naturals(), func(n int) int { return n * 2 })
				check.True(t, !Equal(naturals(), evens))
			})
		})
	})
	t.Run("Compare", func(t *testing.T) {
		lt := LessThanNative[int]
		check.Equal(t, Compare(Of(1, 2), Of(1, 3), lt), -1)
		check.Equal(t, Compare(Of(1, 3), Of(1, 2), lt), 1)
		check.Equal(t, Compare(Of(1, 2), Of(1, 2), lt), 0)
		t.Run("PrefixOrdersFirst", func(t *testing.T) {
			check.Equal(t, Compare(Of(1, 2), Of(1, 2, 3), lt), -1)
			check.Equal(t, Compare(Of(1, 2, 3), Of(1, 2), lt), 1)
		})
	})
	t.Run("HashWith", func(t *testing.T) {
		ident := func(n int) uint64 { return uint64(n) }
		check.Equal(t, Empty[int]().HashWith(ident), 0)
		check.Equal(t, Of(7, 8, 9).HashWith(ident), 7)
		t.Run("TerminatesOnInfinite", func(t *testing.T) {
			assert.MaxRuntime(t, 5*time.Second, func() {
				check.Equal(t, naturals().HashWith(ident), 1)
			})
		})
		t.Run("FirstElementOnly", func(t *testing.T) {
			check.Equal(t, Of(1, 2).HashWith(ident), Of(1, 99).HashWith(ident))
		})
	})
}
