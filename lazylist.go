// Package lazylist provides List, an ordered sequence container
// whose elements are computed on demand and memoized. Lists can be
// finite, conceptually infinite, or backed by side-effecting sources
// (readers, producers, iterators) while still supporting random
// access, equality, and the usual sequence algebra: map, filter,
// zip, set operations, folds, scans, and string conversions.
//
// A List is a realized buffer of already-computed elements plus a
// generation step that computes the next element, or reports that no
// more elements exist. Every element is computed by exactly one step
// invocation; all other access reads the buffer. Derived lists
// (Map, Filter, Append, ...) compose the upstream list's step and
// remain lazy themselves.
//
// Many operations are termination-sensitive. Bounded queries
// (LengthIsAtLeast, Any, Contains-with-a-hit, Take) decide their
// answer from a finite prefix and terminate even on infinite lists.
// Total-evaluation operations (Length, Reverse, Last, String,
// equality of two pointwise-identical infinite lists) never return
// on an infinite list; this is a documented semantic consequence,
// not an error condition, and callers should bound such calls
// externally when a list may be infinite.
//
// Lists are not safe for concurrent use. Evaluation is synchronous
// and cooperative: there are no background goroutines, and a list
// together with all lists derived from it forms a single-writer
// group that callers must synchronize externally if shared.
package lazylist

import (
	"fmt"

	"github.com/tychoish/fun/ft"
)

// step computes the next logical element of a list. The step owns
// appending: on success the returned value has already been added to
// the receiver's buffer as a side effect of the call. Returning
// false seals the list at its current length; a sealed list drops
// its step, so sealing is permanent.
type step[T any] func(*List[T]) (T, bool)

// List is a sequence whose elements are produced on demand by a
// generation step and cached in a realized buffer. The zero value is
// an empty, sealed list.
//
// A List exclusively owns its buffer. Lists derived from it capture
// a handle to the upstream list and use only its read path (indexed
// access, which may trigger upstream generation); they never write
// through it.
type List[T any] struct {
	buf []T
	gen step[T]
}

// Generate constructs a list from a seed prefix and a generator
// function. The generator receives the realized prefix (read-only)
// and returns the next element, or false when the sequence is
// exhausted. The seed is copied and counts as realized from the
// start; only elements past the seed are produced lazily.
//
// Recurrences fall out naturally: the generator can read the tail of
// the prefix to compute the next value.
func Generate[T any](next func(realized []T) (T, bool), seed ...T) *List[T] {
	l := &List[T]{buf: append([]T(nil), seed...)}
	l.gen = func(l *List[T]) (T, bool) {
		v, ok := next(l.buf)
		if ok {
			l.buf = append(l.buf, v)
		}
		return v, ok
	}
	return l
}

// advance invokes the generation step once. It returns the newly
// realized element, or false if the list is (now) sealed. Once a
// step reports exhaustion the step reference is dropped, so a sealed
// list can never grow again.
func (l *List[T]) advance() (out T, ok bool) {
	if l.gen == nil {
		return out, false
	}
	out, ok = l.gen(l)
	if !ok {
		l.gen = nil
	}
	return out, ok
}

// fillTo drives the generation step until at least n elements are
// realized, and reports whether it succeeded. It never invokes the
// step once the target is reached, preserving laziness.
func (l *List[T]) fillTo(n int) bool {
	for len(l.buf) < n {
		if _, ok := l.advance(); !ok {
			return false
		}
	}
	return true
}

// Sealed reports whether the list's generation step has been
// exhausted, which means the realized buffer holds the complete
// sequence. Sealing is discovered lazily; a finite list stays
// "growing" until some operation forces one step past its end.
func (l *List[T]) Sealed() bool { return l.gen == nil }

// Realized returns the number of elements computed so far, without
// forcing any evaluation.
func (l *List[T]) Realized() int { return len(l.buf) }

// Get returns the element at the given index, forcing evaluation up
// to and including that position. Negative indexes, and indexes at
// or past the end of a sealed list, return ErrIndexOutOfRange.
func (l *List[T]) Get(idx int) (T, error) {
	var zero T
	if idx < 0 {
		return zero, ErrIndexOutOfRange
	}
	if !l.fillTo(idx + 1) {
		return zero, ErrIndexOutOfRange
	}
	return l.buf[idx], nil
}

// String fully evaluates the list and renders it the way fmt renders
// a slice. It never returns on an infinite list; use Show for a lazy
// rendering.
func (l *List[T]) String() string {
	l.Force()
	return fmt.Sprint(l.buf)
}

// isNil reports whether a value (of any type) is an absent value:
// either a nil interface or a nil-able kind holding nil.
func isNil(in any) bool { return ft.IsNil(in) }
