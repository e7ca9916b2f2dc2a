// Package seqs provides pre-built infinite number sequences on top
// of the lazylist constructors. Every function returns a fresh list,
// so callers own the memoization of whatever prefix they realize.
package seqs

import "github.com/k-gruenberg/lazylist"

// Naturals returns 1, 2, 3, ...
func Naturals() *lazylist.List[int64] {
	return lazylist.Iterate(func(n int64) int64 { return n + 1 }, 1)
}

// Evens returns 0, 2, 4, ...
func Evens() *lazylist.List[int64] {
	return lazylist.Iterate(func(n int64) int64 { return n + 2 }, 0)
}

// Odds returns 1, 3, 5, ...
func Odds() *lazylist.List[int64] {
	return lazylist.Iterate(func(n int64) int64 { return n + 2 }, 1)
}

// Squares returns 1, 4, 9, ...
func Squares() *lazylist.List[int64] {
	return lazylist.Map(Naturals(), func(n int64) int64 { return n * n })
}

// Cubes returns 1, 8, 27, ...
func Cubes() *lazylist.List[int64] {
	return lazylist.Map(Naturals(), func(n int64) int64 { return n * n * n })
}

// Factorials returns 0!, 1!, 2!, ... = 1, 1, 2, 6, 24, ...
func Factorials() *lazylist.List[int64] {
	return lazylist.Generate(func(realized []int64) (int64, bool) {
		return realized[len(realized)-1] * int64(len(realized)), true
	}, 1)
}

// PowersOfTwo returns 1, 2, 4, 8, ...
func PowersOfTwo() *lazylist.List[int64] {
	return lazylist.Iterate(func(n int64) int64 { return n * 2 }, 1)
}

// Fibonacci returns 0, 1, 1, 2, 3, 5, ...
func Fibonacci() *lazylist.List[int64] {
	return lazylist.Recurrence(0, 1, func(a, b int64) int64 { return a + b })
}

// Lucas returns 2, 1, 3, 4, 7, 11, ...
func Lucas() *lazylist.List[int64] {
	return lazylist.Recurrence(2, 1, func(a, b int64) int64 { return a + b })
}

// Primes returns 2, 3, 5, 7, 11, ... by trial division against the
// primes already realized, so producing the nth prime costs no
// repeated work across demands.
func Primes() *lazylist.List[int64] {
	return lazylist.Generate(func(realized []int64) (int64, bool) {
		for candidate := realized[len(realized)-1] + 1; ; candidate++ {
			composite := false
			for _, p := range realized {
				if p*p > candidate {
					break
				}
				if candidate%p == 0 {
					composite = true
					break
				}
			}
			if !composite {
				return candidate, true
			}
		}
	}, 2)
}
