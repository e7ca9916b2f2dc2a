package lazylist

// Map returns the lazy list of fn applied to every element of the
// input. The result realizes upstream elements one at a time as its
// own elements are demanded.
func Map[T any, U any](l *List[T], fn func(T) U) *List[U] {
	cursor := 0
	return Generate(func([]U) (U, bool) {
		if !l.fillTo(cursor + 1) {
			var zero U
			return zero, false
		}
		v := fn(l.buf[cursor])
		cursor++
		return v, true
	})
}

// Filter returns the lazy list of elements matching the predicate,
// in order. Realizing one output element may realize many upstream
// elements; a predicate that never matches again on an infinite list
// makes the next demand spin forever.
func (l *List[T]) Filter(pred func(T) bool) *List[T] {
	cursor := 0
	return Generate(func([]T) (T, bool) {
		for {
			if !l.fillTo(cursor + 1) {
				var zero T
				return zero, false
			}
			v := l.buf[cursor]
			cursor++
			if pred(v) {
				return v, true
			}
		}
	})
}

// TakeWhile returns the lazy longest prefix of elements matching the
// predicate.
func (l *List[T]) TakeWhile(pred func(T) bool) *List[T] {
	cursor := 0
	return Generate(func([]T) (T, bool) {
		var zero T
		if !l.fillTo(cursor + 1) {
			return zero, false
		}
		if v := l.buf[cursor]; pred(v) {
			cursor++
			return v, true
		}
		return zero, false
	})
}

// DropWhile returns the lazy remainder of the list after the longest
// matching prefix. The prefix is scanned on the first demand.
func (l *List[T]) DropWhile(pred func(T) bool) *List[T] {
	skipped := false
	cursor := 0
	return Generate(func([]T) (T, bool) {
		var zero T
		if !skipped {
			for {
				if !l.fillTo(cursor + 1) {
					return zero, false
				}
				if !pred(l.buf[cursor]) {
					break
				}
				cursor++
			}
			skipped = true
		}
		if !l.fillTo(cursor + 1) {
			return zero, false
		}
		v := l.buf[cursor]
		cursor++
		return v, true
	})
}

// Take returns the first n elements as a new sealed list, forcing
// their evaluation immediately. n of zero or less produces the empty
// list; an n past the end of a finite list produces the whole list.
func (l *List[T]) Take(n int) *List[T] {
	if n <= 0 {
		return Empty[T]()
	}
	l.fillTo(n)
	if n > len(l.buf) {
		n = len(l.buf)
	}
	return &List[T]{buf: append([]T(nil), l.buf[:n]...)}
}

// Drop returns the lazy list with the first n elements removed. n of
// zero or less leaves the list unchanged; dropping past the end of a
// finite list produces the empty list. Nothing is evaluated until the
// result is demanded.
func (l *List[T]) Drop(n int) *List[T] {
	if n < 0 {
		n = 0
	}
	cursor := n
	return Generate(func([]T) (T, bool) {
		if !l.fillTo(cursor + 1) {
			var zero T
			return zero, false
		}
		v := l.buf[cursor]
		cursor++
		return v, true
	})
}

// SplitAt returns the pair Take(n), Drop(n): an eager prefix and a
// lazy suffix. A negative n yields an empty prefix and the whole list
// as suffix; an oversized n yields the whole list and an empty
// suffix.
func (l *List[T]) SplitAt(n int) (*List[T], *List[T]) {
	return l.Take(n), l.Drop(n)
}

// Append returns the lazy concatenation of two lists. The second list
// is reached only once the first seals, so it is unreachable behind
// an infinite first operand.
func (l *List[T]) Append(other *List[T]) *List[T] {
	first, second := 0, 0
	return Generate(func([]T) (T, bool) {
		if l.fillTo(first + 1) {
			v := l.buf[first]
			first++
			return v, true
		}
		if other.fillTo(second + 1) {
			v := other.buf[second]
			second++
			return v, true
		}
		var zero T
		return zero, false
	})
}

// Cycle returns the infinite list repeating the receiver's elements
// in order. It is only defined for fully evaluated lists: one
// generation step is spent probing an unsealed receiver, and if that
// step produces an element the receiver is still growing and
// ErrPartiallyEvaluated is returned. Cycling the empty list returns
// ErrEmpty.
func (l *List[T]) Cycle() (*List[T], error) {
	if !l.Sealed() {
		if _, ok := l.advance(); ok {
			return nil, ErrPartiallyEvaluated
		}
	}
	n := len(l.buf)
	if n == 0 {
		return nil, ErrEmpty
	}
	src := append([]T(nil), l.buf...)
	cursor := 0
	return Generate(func([]T) (T, bool) {
		v := src[cursor%n]
		cursor++
		return v, true
	}, src...), nil
}

// Reverse fully evaluates the list and returns a sealed list of its
// elements in reverse order. It never returns on an infinite list.
func (l *List[T]) Reverse() *List[T] {
	l.Force()
	out := make([]T, len(l.buf))
	for i, v := range l.buf {
		out[len(out)-1-i] = v
	}
	return &List[T]{buf: out}
}

// Nub returns the lazy list of first occurrences: each element
// appears once, at the position of its earliest appearance. An
// element is kept exactly when it is absent from the output produced
// so far.
func Nub[T comparable](l *List[T]) *List[T] {
	cursor := 0
	seen := map[T]struct{}{}
	return Generate(func([]T) (T, bool) {
		for {
			if !l.fillTo(cursor + 1) {
				var zero T
				return zero, false
			}
			v := l.buf[cursor]
			cursor++
			if _, dup := seen[v]; !dup {
				seen[v] = struct{}{}
				return v, true
			}
		}
	})
}

// NubBy is Nub under a caller-supplied equality relation. Each
// candidate is compared against the realized output, so producing
// element k costs k comparisons.
func (l *List[T]) NubBy(eq func(a, b T) bool) *List[T] {
	cursor := 0
	return Generate(func(realized []T) (T, bool) {
	next:
		for {
			if !l.fillTo(cursor + 1) {
				var zero T
				return zero, false
			}
			v := l.buf[cursor]
			cursor++
			for _, prev := range realized {
				if eq(prev, v) {
					continue next
				}
			}
			return v, true
		}
	})
}

// Comprehension returns the lazy list of fn applied to the elements
// matching the predicate, the one-variable list comprehension. It is
// Map over Filter, so the cost and termination caveats of both
// apply.
func Comprehension[T any, U any](l *List[T], fn func(T) U, pred func(T) bool) *List[U] {
	return Map(l.Filter(pred), fn)
}

// Concat lazily flattens a list of lists into a single list. Both
// the outer list and the inner lists are realized on demand, so a
// list of infinite lists simply never advances past its first
// element's elements.
func Concat[T any](ll *List[*List[T]]) *List[T] {
	outer, inner := 0, 0
	return Generate(func([]T) (T, bool) {
		for {
			if !ll.fillTo(outer + 1) {
				var zero T
				return zero, false
			}
			cur := ll.buf[outer]
			if cur != nil && cur.fillTo(inner+1) {
				v := cur.buf[inner]
				inner++
				return v, true
			}
			outer++
			inner = 0
		}
	})
}

// FlattenAny flattens a dynamically typed list whose elements are
// themselves sequences: each element must be a *List[any] or a
// []any, anything else returns ErrUnsupportedShape. The outer list
// is fully evaluated to validate its shape; the inner sequences stay
// lazy.
func FlattenAny(l *List[any]) (*List[any], error) {
	l.Force()
	parts := Empty[*List[any]]()
	for _, elem := range l.buf {
		switch v := elem.(type) {
		case *List[any]:
			parts.buf = append(parts.buf, v)
		case []any:
			parts.buf = append(parts.buf, Of(v...))
		default:
			return nil, ErrUnsupportedShape
		}
	}
	return Concat(parts), nil
}
