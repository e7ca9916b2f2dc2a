package lazylist

import "unicode/utf8"

// Successor is the ordinal capability consumed by the range
// constructors: given a value it returns the next value in the
// type's domain, or false when the last value of a bounded domain
// has been reached (e.g. true for bool, the maximum of an integer
// type).
//
// Successors for the builtin ordinal types are provided below;
// custom types supply their own at the call site.
type Successor[T any] func(T) (T, bool)

// NextInteger returns the successor function for an integer type.
// The maximum value of the type has no successor.
func NextInteger[T Integer]() Successor[T] {
	return func(v T) (T, bool) {
		next := v + 1
		if next > v {
			return next, true
		}
		var zero T
		return zero, false
	}
}

// NextFloat returns the successor function for a float type, which
// adds one and is never exhausted.
func NextFloat[T Float]() Successor[T] {
	return func(v T) (T, bool) { return v + 1, true }
}

// NextRune returns the successor function for runes, bounded at the
// maximum unicode code point.
func NextRune() Successor[rune] {
	return func(v rune) (rune, bool) {
		if v >= utf8.MaxRune {
			return 0, false
		}
		return v + 1, true
	}
}

// NextBool returns the successor function for booleans: false is
// succeeded by true, and true is the last value of the domain.
func NextBool() Successor[bool] {
	return func(v bool) (bool, bool) { return true, !v }
}

// NextOf is the dynamically typed fallback successor, for sequences
// of values whose static type is not known at the call site. It
// handles the builtin integer, float, rune, and bool types and
// returns ErrNotOrdinal for everything else. Prefer the typed
// successor constructors, which resolve at compile time.
func NextOf(in any) (any, bool, error) {
	switch v := in.(type) {
	case nil:
		return nil, false, ErrNotOrdinal
	case bool:
		next, ok := NextBool()(v)
		return next, ok, nil
	case int:
		next, ok := NextInteger[int]()(v)
		return next, ok, nil
	case int8:
		next, ok := NextInteger[int8]()(v)
		return next, ok, nil
	case int16:
		next, ok := NextInteger[int16]()(v)
		return next, ok, nil
	case int32:
		next, ok := NextInteger[int32]()(v)
		return next, ok, nil
	case int64:
		next, ok := NextInteger[int64]()(v)
		return next, ok, nil
	case uint:
		next, ok := NextInteger[uint]()(v)
		return next, ok, nil
	case uint8:
		next, ok := NextInteger[uint8]()(v)
		return next, ok, nil
	case uint16:
		next, ok := NextInteger[uint16]()(v)
		return next, ok, nil
	case uint32:
		next, ok := NextInteger[uint32]()(v)
		return next, ok, nil
	case uint64:
		next, ok := NextInteger[uint64]()(v)
		return next, ok, nil
	case float32:
		next, ok := NextFloat[float32]()(v)
		return next, ok, nil
	case float64:
		next, ok := NextFloat[float64]()(v)
		return next, ok, nil
	default:
		return nil, false, ErrNotOrdinal
	}
}

// From returns the list that begins at from and continues through
// repeated application of the successor. The result is infinite
// unless the successor's domain is bounded.
func From[T any](next Successor[T], from T) *List[T] {
	return Generate(func(realized []T) (T, bool) {
		return next(realized[len(realized)-1])
	}, from)
}

// Range returns the inclusive list counting up by one from from to
// to. When to is less than from the result is empty; use FromThenTo
// for descending ranges.
func Range[T Numeric](from, to T) *List[T] {
	cur := from
	return Generate(func([]T) (T, bool) {
		if cur > to {
			var zero T
			return zero, false
		}
		v := cur
		cur++
		return v, true
	})
}

// FromThen returns the arithmetic progression whose first two
// elements are from and then, continuing indefinitely. Integer
// progressions seal at the point the next step would overflow.
func FromThen[T Numeric](from, then T) *List[T] {
	delta := then - from
	cur, started := from, false
	return Generate(func([]T) (T, bool) {
		if started {
			next := cur + delta
			if (delta > 0 && next < cur) || (delta < 0 && next > cur) {
				var zero T
				return zero, false
			}
			cur = next
		}
		started = true
		return cur, true
	})
}

// FromThenTo returns the arithmetic progression from, then, ...
// bounded inclusively by to. The direction of the progression
// follows the sign of then-from, so descending ranges work.
func FromThenTo[T Numeric](from, then, to T) *List[T] {
	delta := then - from
	cur, started := from, false
	return Generate(func([]T) (T, bool) {
		var zero T
		if started {
			next := cur + delta
			if (delta > 0 && next < cur) || (delta < 0 && next > cur) {
				return zero, false
			}
			cur = next
		}
		started = true
		if (delta >= 0 && cur > to) || (delta < 0 && cur < to) {
			return zero, false
		}
		return cur, true
	})
}
