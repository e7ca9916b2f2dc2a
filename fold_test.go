package lazylist

import (
	"testing"
	"time"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestFolds(t *testing.T) {
	t.Parallel()
	add := func(a, b int) int { return a + b }
	t.Run("Foldl", func(t *testing.T) {
		sub := func(acc, v int) int { return acc - v }
		check.Equal(t, Foldl(Of(1, 2, 3), 10, sub), 4)
		check.Equal(t, Foldl(Empty[int](), 10, sub), 10)
	})
	t.Run("Foldr", func(t *testing.T) {
		sub := func(v, acc int) int { return v - acc }
		// 1 - (2 - (3 - 0))
		check.Equal(t, Foldr(Of(1, 2, 3), 0, sub), 2)
	})
	t.Run("Foldl1", func(t *testing.T) {
		v, err := Foldl1(Of(1, 2, 3), add)
		assert.NotError(t, err)
		check.Equal(t, v, 6)
		_, err = Foldl1(Empty[int](), add)
		check.ErrorIs(t, err, ErrEmpty)
	})
	t.Run("Foldr1", func(t *testing.T) {
		sub := func(a, b int) int { return a - b }
		// 1 - (2 - 3)
		v, err := Foldr1(Of(1, 2, 3), sub)
		assert.NotError(t, err)
		check.Equal(t, v, 2)
		_, err = Foldr1(Empty[int](), sub)
		check.ErrorIs(t, err, ErrEmpty)
	})
	t.Run("Scanl", func(t *testing.T) {
		l := Scanl(Of(1, 2, 3), 0, add)
		check.EqualItems(t, l.Slice(), []int{0, 1, 3, 6})
		t.Run("EmptyInput", func(t *testing.T) {
			check.EqualItems(t, Scanl(Empty[int](), 5, add).Slice(), []int{5})
		})
		t.Run("StaysLazy", func(t *testing.T) {
			assert.MaxRuntime(t, 5*time.Second, func() {
				sums := Scanl(naturals(), 0, add)
				check.EqualItems(t, sums.Take(5).Slice(), []int{0, 1, 3, 6, 10})
			})
		})
	})
	t.Run("Scanl1", func(t *testing.T) {
		check.EqualItems(t, Scanl1(Of(1, 2, 3, 4), add).Slice(), []int{1, 3, 6, 10})
		check.True(t, Scanl1(Empty[int](), add).IsEmpty())
	})
	t.Run("Scanr", func(t *testing.T) {
		l := Scanr(Of(1, 2, 3), 0, func(v, acc int) int { return v + acc })
		check.EqualItems(t, l.Slice(), []int{6, 5, 3, 0})
	})
	t.Run("Scanr1", func(t *testing.T) {
		check.EqualItems(t, Scanr1(Of(1, 2, 3), add).Slice(), []int{6, 5, 3})
		check.True(t, Scanr1(Empty[int](), add).IsEmpty())
	})
	t.Run("MinMax", func(t *testing.T) {
		lt := LessThanNative[int]
		v, err := Min(Of(3, 1, 2), lt)
		assert.NotError(t, err)
		check.Equal(t, v, 1)
		v, err = Max(Of(3, 1, 2), lt)
		assert.NotError(t, err)
		check.Equal(t, v, 3)
		_, err = Min(Empty[int](), lt)
		check.ErrorIs(t, err, ErrEmpty)
		t.Run("EarliestWinsTies", func(t *testing.T) {
			type scored struct {
				name  string
				score int
			}
			byScore := func(a, b scored) bool { return a.score < b.score }
			l := Of(scored{"first", 1}, scored{"second", 1})
			low, err := Min(l, byScore)
			assert.NotError(t, err)
			check.Equal(t, low.name, "first")
			high, err := Max(l, byScore)
			assert.NotError(t, err)
			check.Equal(t, high.name, "first")
		})
	})
	t.Run("SumProductAverage", func(t *testing.T) {
		check.Equal(t, Sum(Of(1, 2, 3)), 6)
		check.Equal(t, Sum(Empty[int]()), 0)
		check.Equal(t, Product(Of(2, 3, 4)), 24)
		check.Equal(t, Product(Empty[int]()), 1)
		check.Equal(t, Average(Of(1, 2, 3, 4)), 2.5)
		check.Equal(t, Average(Empty[float64]()), 0)
	})
}
