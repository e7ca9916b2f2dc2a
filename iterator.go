package lazylist

// Force drives the generation step until the list seals. It never
// returns on an infinite list. Forcing a sealed list is a no-op.
func (l *List[T]) Force() {
	for l.gen != nil {
		l.advance()
	}
}

// Slice fully evaluates the list and returns a copy of its elements.
func (l *List[T]) Slice() []T {
	l.Force()
	return append([]T(nil), l.buf...)
}

// Observe calls the function for every element in order, realizing
// them as it goes. It never returns on an infinite list.
func (l *List[T]) Observe(fn func(T)) {
	for i := 0; l.fillTo(i + 1); i++ {
		fn(l.buf[i])
	}
}

// Cursor is a pull iterator over a list: a read position that
// realizes elements as it passes them. Multiple cursors over one
// list are independent positions over the shared buffer.
type Cursor[T any] struct {
	list *List[T]
	idx  int
	val  T
}

// Cursor returns a pull iterator positioned before the first
// element.
func (l *List[T]) Cursor() *Cursor[T] { return &Cursor[T]{list: l} }

// Next advances to the next element, realizing it if needed, and
// reports whether one exists.
func (c *Cursor[T]) Next() bool {
	if !c.list.fillTo(c.idx + 1) {
		return false
	}
	c.val = c.list.buf[c.idx]
	c.idx++
	return true
}

// Value returns the element Next advanced to.
func (c *Cursor[T]) Value() T { return c.val }
