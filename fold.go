package lazylist

// Foldl reduces the list left to right from an initial accumulator.
// The whole list is evaluated; never returns on an infinite list.
func Foldl[T any, A any](l *List[T], init A, fn func(A, T) A) A {
	acc := init
	for i := 0; l.fillTo(i + 1); i++ {
		acc = fn(acc, l.buf[i])
	}
	return acc
}

// Foldr reduces the list right to left toward an initial
// accumulator. The whole list is evaluated first.
func Foldr[T any, A any](l *List[T], init A, fn func(T, A) A) A {
	l.Force()
	acc := init
	for i := len(l.buf) - 1; i >= 0; i-- {
		acc = fn(l.buf[i], acc)
	}
	return acc
}

// Foldl1 is Foldl seeded with the first element. The empty list
// returns ErrEmpty.
func Foldl1[T any](l *List[T], fn func(T, T) T) (T, error) {
	head, ok := l.HeadOK()
	if !ok {
		return head, ErrEmpty
	}
	return Foldl(l.Drop(1), head, fn), nil
}

// Foldr1 is Foldr seeded with the last element. The empty list
// returns ErrEmpty.
func Foldr1[T any](l *List[T], fn func(T, T) T) (T, error) {
	l.Force()
	if len(l.buf) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	acc := l.buf[len(l.buf)-1]
	for i := len(l.buf) - 2; i >= 0; i-- {
		acc = fn(l.buf[i], acc)
	}
	return acc, nil
}

// Scanl returns the lazy list of left-fold intermediates: init,
// fn(init, x0), fn(fn(init, x0), x1), ... Its length is one more
// than the input's, and each intermediate is computed exactly once
// from the running accumulator held by the step.
func Scanl[T any, A any](l *List[T], init A, fn func(A, T) A) *List[A] {
	acc := init
	cursor := 0
	return Generate(func([]A) (A, bool) {
		if !l.fillTo(cursor + 1) {
			var zero A
			return zero, false
		}
		acc = fn(acc, l.buf[cursor])
		cursor++
		return acc, true
	}, init)
}

// Scanl1 is Scanl seeded with the first element; the empty list
// scans to the empty list.
func Scanl1[T any](l *List[T], fn func(T, T) T) *List[T] {
	var acc T
	started := false
	cursor := 0
	return Generate(func([]T) (T, bool) {
		if !l.fillTo(cursor + 1) {
			var zero T
			return zero, false
		}
		if started {
			acc = fn(acc, l.buf[cursor])
		} else {
			acc = l.buf[cursor]
			started = true
		}
		cursor++
		return acc, true
	})
}

// Scanr returns the sealed list of right-fold intermediates, ending
// with init. The whole input is evaluated first.
func Scanr[T any, A any](l *List[T], init A, fn func(T, A) A) *List[A] {
	l.Force()
	out := make([]A, len(l.buf)+1)
	out[len(l.buf)] = init
	for i := len(l.buf) - 1; i >= 0; i-- {
		out[i] = fn(l.buf[i], out[i+1])
	}
	return &List[A]{buf: out}
}

// Scanr1 is Scanr seeded with the last element; the empty list
// scans to the empty list.
func Scanr1[T any](l *List[T], fn func(T, T) T) *List[T] {
	l.Force()
	if len(l.buf) == 0 {
		return Empty[T]()
	}
	out := make([]T, len(l.buf))
	out[len(out)-1] = l.buf[len(out)-1]
	for i := len(out) - 2; i >= 0; i-- {
		out[i] = fn(l.buf[i], out[i+1])
	}
	return &List[T]{buf: out}
}

// Min returns the least element under the relation, or ErrEmpty for
// the empty list. Ties keep the earliest element.
func Min[T any](l *List[T], lt LessThan[T]) (T, error) {
	return Foldl1(l, func(best, v T) T {
		if lt(v, best) {
			return v
		}
		return best
	})
}

// Max returns the greatest element under the relation, or ErrEmpty
// for the empty list. Ties keep the earliest element.
func Max[T any](l *List[T], lt LessThan[T]) (T, error) {
	return Foldl1(l, func(best, v T) T {
		if lt(best, v) {
			return v
		}
		return best
	})
}

// Sum fully evaluates a numeric list and returns the sum of its
// elements, zero for the empty list.
func Sum[T Numeric](l *List[T]) T {
	var zero T
	return Foldl(l, zero, func(acc, v T) T { return acc + v })
}

// Product fully evaluates a numeric list and returns the product of
// its elements, one for the empty list.
func Product[T Numeric](l *List[T]) T {
	return Foldl(l, T(1), func(acc, v T) T { return acc * v })
}

// Average fully evaluates a numeric list and returns the mean of its
// elements as a float64, zero for the empty list.
func Average[T Numeric](l *List[T]) float64 {
	l.Force()
	if len(l.buf) == 0 {
		return 0
	}
	var total float64
	for _, v := range l.buf {
		total += float64(v)
	}
	return total / float64(len(l.buf))
}
