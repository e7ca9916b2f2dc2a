package lazylist

// IsEmpty reports whether the list has no elements, forcing at most
// one generation step.
func (l *List[T]) IsEmpty() bool { return !l.fillTo(1) }

// HeadOK returns the first element, or false for the empty list.
func (l *List[T]) HeadOK() (T, bool) {
	if !l.fillTo(1) {
		var zero T
		return zero, false
	}
	return l.buf[0], true
}

// Head returns the first element, or ErrEmpty for the empty list.
func (l *List[T]) Head() (T, error) {
	v, ok := l.HeadOK()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// Tail returns the lazy list of everything after the first element,
// or ErrEmpty for the empty list.
func (l *List[T]) Tail() (*List[T], error) {
	if !l.fillTo(1) {
		return nil, ErrEmpty
	}
	return l.Drop(1), nil
}

// Init returns the lazy list of everything except the last element,
// or ErrEmpty for the empty list. Each element of the result is
// produced only after its successor in the input exists, which is
// what makes dropping the last element possible without knowing the
// length.
func (l *List[T]) Init() (*List[T], error) {
	if !l.fillTo(1) {
		return nil, ErrEmpty
	}
	cursor := 0
	return Generate(func([]T) (T, bool) {
		if !l.fillTo(cursor + 2) {
			var zero T
			return zero, false
		}
		v := l.buf[cursor]
		cursor++
		return v, true
	}), nil
}

// LastOK fully evaluates the list and returns its final element, or
// false for the empty list. It never returns on an infinite list.
func (l *List[T]) LastOK() (T, bool) {
	l.Force()
	if len(l.buf) == 0 {
		var zero T
		return zero, false
	}
	return l.buf[len(l.buf)-1], true
}

// Last is LastOK with ErrEmpty for the empty list.
func (l *List[T]) Last() (T, error) {
	v, ok := l.LastOK()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// Length fully evaluates the list and returns the number of
// elements. It never returns on an infinite list; for a bounded
// check that terminates on any list use LengthIsAtLeast,
// LengthIsAtMost, or LengthEquals.
func (l *List[T]) Length() int {
	l.Force()
	return len(l.buf)
}

// LengthIsAtLeast reports whether the list has at least n elements,
// realizing at most n of them. Terminates on every list.
func (l *List[T]) LengthIsAtLeast(n int) bool {
	if n <= 0 {
		return true
	}
	return l.fillTo(n)
}

// LengthIsAtMost reports whether the list has at most n elements,
// realizing at most n+1 of them. Terminates on every list.
func (l *List[T]) LengthIsAtMost(n int) bool {
	if n < 0 {
		return false
	}
	return !l.fillTo(n + 1)
}

// LengthEquals reports whether the list has exactly n elements,
// realizing at most n+1 of them. Terminates on every list.
func (l *List[T]) LengthEquals(n int) bool {
	if n < 0 {
		return false
	}
	if l.fillTo(n + 1) {
		return false
	}
	return len(l.buf) == n
}

// IndexOf returns the index of the first element equal to the
// target, or -1 when the list seals without a match. A missing
// target on an infinite list never returns; Any with a bounded
// prefix is the terminating alternative.
func IndexOf[T comparable](l *List[T], target T) int {
	for i := 0; l.fillTo(i + 1); i++ {
		if l.buf[i] == target {
			return i
		}
	}
	return -1
}

// LastIndexOf fully evaluates the list and returns the index of the
// last element equal to the target, or -1 when it never occurs. It
// never returns on an infinite list; IndexOf finds the first
// occurrence without sealing.
func LastIndexOf[T comparable](l *List[T], target T) int {
	l.Force()
	for i := len(l.buf) - 1; i >= 0; i-- {
		if l.buf[i] == target {
			return i
		}
	}
	return -1
}

// Contains reports whether the target occurs in the list. A hit
// returns as soon as the element is realized, even on an infinite
// list; a miss requires sealing.
func Contains[T comparable](l *List[T], target T) bool { return IndexOf(l, target) >= 0 }

// Any reports whether some element matches the predicate, scanning
// until a hit or the end of the list. It can return true on an
// infinite list but never false.
func (l *List[T]) Any(pred func(T) bool) bool {
	for i := 0; l.fillTo(i + 1); i++ {
		if pred(l.buf[i]) {
			return true
		}
	}
	return false
}

// All reports whether every element matches the predicate, scanning
// until a miss or the end of the list. It can return false on an
// infinite list but never true.
func (l *List[T]) All(pred func(T) bool) bool {
	return !l.Any(func(v T) bool { return !pred(v) })
}

// IsOrderedBy fully evaluates the list and reports whether its
// elements are in non-decreasing order under the relation.
func (l *List[T]) IsOrderedBy(lt LessThan[T]) bool {
	l.Force()
	for i := 1; i < len(l.buf); i++ {
		if lt(l.buf[i], l.buf[i-1]) {
			return false
		}
	}
	return true
}

// Equal reports whether two lists hold the same elements in the
// same order, walking both in lockstep and returning at the first
// difference in value or length. Comparing two pointwise-identical
// infinite lists never returns.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualBy(a, b, func(x, y T) bool { return x == y })
}

// EqualBy is Equal under a caller-supplied equality relation.
func EqualBy[T any](a, b *List[T], eq func(x, y T) bool) bool {
	for i := 0; ; i++ {
		aok := a.fillTo(i + 1)
		bok := b.fillTo(i + 1)
		if aok != bok {
			return false
		}
		if !aok {
			return true
		}
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
}

// Compare orders two lists lexicographically under the relation,
// returning -1, 0, or 1. A strict prefix orders before its
// extension. Comparing identical infinite lists never returns.
func Compare[T any](a, b *List[T], lt LessThan[T]) int {
	for i := 0; ; i++ {
		aok := a.fillTo(i + 1)
		bok := b.fillTo(i + 1)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		case lt(a.buf[i], b.buf[i]):
			return -1
		case lt(b.buf[i], a.buf[i]):
			return 1
		}
	}
}

// HashWith returns a hash derived from the first element only, or
// zero for the empty list. Equal lists hash equal; the converse does
// not hold, which is the price of a hash that terminates on
// infinite lists.
func (l *List[T]) HashWith(fn func(T) uint64) uint64 {
	v, ok := l.HeadOK()
	if !ok {
		return 0
	}
	return fn(v)
}
