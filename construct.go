package lazylist

import (
	"context"

	"github.com/tychoish/fun"
)

// Empty returns a new empty list.
func Empty[T any]() *List[T] { return &List[T]{} }

// Of constructs a finite, fully realized list from its arguments.
func Of[T any](vals ...T) *List[T] {
	return &List[T]{buf: append([]T(nil), vals...)}
}

// FromSlice constructs a finite list by copying the input slice.
// For a lazy view over an external source use View.
func FromSlice[T any](in []T) *List[T] { return Of(in...) }

// Cons prepends a head element to a tail list, the structural
// list constructor. The tail is absorbed into the result and must
// not be used afterwards: the two lists would share generator state.
//
// A nil tail produces a single-element list. A nil-valued head in
// front of a non-empty tail is rejected with ErrNilElement; a
// nil-valued head with a nil tail produces the empty list.
func Cons[T any](head T, tail *List[T]) (*List[T], error) {
	if isNil(head) {
		if tail == nil {
			return Empty[T](), nil
		}
		return nil, ErrNilElement
	}
	if tail == nil {
		return Of(head), nil
	}
	return &List[T]{buf: append([]T{head}, tail.buf...), gen: tail.gen}, nil
}

// Repeat returns the infinite list that repeats a single value.
func Repeat[T any](value T) *List[T] {
	return Generate(func([]T) (T, bool) { return value, true })
}

// Replicate returns a list with the value repeated n times. The
// result is lazy, so very large n costs nothing until forced.
func Replicate[T any](n int, value T) *List[T] {
	left := n
	return Generate(func([]T) (T, bool) {
		if left <= 0 {
			var zero T
			return zero, false
		}
		left--
		return value, true
	})
}

// Iterate returns the infinite list of repeated applications of fn
// to the seed: seed, fn(seed), fn(fn(seed)), ...
func Iterate[T any](fn func(T) T, seed T) *List[T] {
	return Generate(func(realized []T) (T, bool) {
		return fn(realized[len(realized)-1]), true
	}, seed)
}

// Recurrence returns the infinite list seeded with two values where
// every later element is fn of the previous two. Fibonacci is
// Recurrence(0, 1, add).
func Recurrence[T any](first, second T, fn func(a, b T) T) *List[T] {
	return Generate(func(realized []T) (T, bool) {
		n := len(realized)
		return fn(realized[n-2], realized[n-1]), true
	}, first, second)
}

// View returns a lazy list over an external pull source. The source
// is polled only when unrealized elements are needed; once it
// reports exhaustion the list is sealed and the source is never
// polled again.
func View[T any](pull func() (T, bool)) *List[T] {
	return Generate(func([]T) (T, bool) { return pull() })
}

// Produce returns a lazy list fed by a fun.Producer. Any error from
// the producer, including io.EOF and context expiration, seals the
// list.
func Produce[T any](ctx context.Context, prod fun.Producer[T]) *List[T] {
	return View(func() (T, bool) {
		v, err := prod(ctx)
		if err != nil {
			var zero T
			return zero, false
		}
		return v, true
	})
}

// FromFuture returns the infinite list of successive resolutions of
// the future.
func FromFuture[T any](f fun.Future[T]) *List[T] {
	return View(func() (T, bool) { return f(), true })
}
