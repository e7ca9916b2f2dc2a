package lazylist

// The editing operations below work on the realized prefix of a
// list. Positions are materialized on demand before an edit, so
// editing never interleaves with generation inside one call: first
// the list grows to cover the position, then the buffer is edited.
// A generation step that reads the realized prefix (Iterate,
// Recurrence) observes edits and continues from the edited values.

// Set replaces the element at the given index, materializing through
// it first. Indexes outside the list return ErrIndexOutOfRange; a
// nil-valued replacement returns ErrNilElement.
func (l *List[T]) Set(idx int, value T) error {
	if isNil(value) {
		return ErrNilElement
	}
	if idx < 0 || !l.fillTo(idx+1) {
		return ErrIndexOutOfRange
	}
	l.buf[idx] = value
	return nil
}

// Insert places a value before the given index, materializing the
// positions in front of it first. Inserting at the realized length
// of a sealed list appends; on a growing list the same index places
// the value in front of every not-yet-generated element, which then
// shift one position further. A nil value returns ErrNilElement.
func (l *List[T]) Insert(idx int, value T) error {
	if isNil(value) {
		return ErrNilElement
	}
	if idx < 0 {
		return ErrIndexOutOfRange
	}
	l.fillTo(idx)
	if idx > len(l.buf) {
		return ErrIndexOutOfRange
	}
	l.buf = append(l.buf, value)
	copy(l.buf[idx+1:], l.buf[idx:])
	l.buf[idx] = value
	return nil
}

// RemoveAt removes and returns the element at the given index,
// materializing through it first.
func (l *List[T]) RemoveAt(idx int) (T, error) {
	var zero T
	if idx < 0 || !l.fillTo(idx+1) {
		return zero, ErrIndexOutOfRange
	}
	out := l.buf[idx]
	l.buf = append(l.buf[:idx], l.buf[idx+1:]...)
	return out, nil
}

// RemoveValue removes the first occurrence of the value, scanning
// and realizing until it is found, and reports whether it was. A
// missing value on an infinite list never returns.
func RemoveValue[T comparable](l *List[T], value T) bool {
	idx := IndexOf(l, value)
	if idx < 0 {
		return false
	}
	_, err := l.RemoveAt(idx)
	return err == nil
}

// Push prepends a value. A nil value returns ErrNilElement.
func (l *List[T]) Push(value T) error {
	if isNil(value) {
		return ErrNilElement
	}
	l.buf = append([]T{value}, l.buf...)
	return nil
}

// Clear resets the list to empty and sealed, discarding both the
// realized buffer and any remaining generation step.
func (l *List[T]) Clear() {
	l.buf = nil
	l.gen = nil
}
