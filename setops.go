package lazylist

// Union returns the lazy list union of two lists: the receiver's
// elements unchanged, followed by the argument's elements that are
// new, each appearing once. Duplicates already in the receiver are
// preserved; the suffix is deduplicated against the receiver and
// against itself. The suffix is only reachable once the receiver
// seals.
func Union[T comparable](a, b *List[T]) *List[T] {
	suffix := Nub(b).Filter(func(v T) bool { return !Contains(a, v) })
	return a.Append(suffix)
}

// Intersect returns the lazy list of the receiver's elements that
// also occur in the argument. Each membership test scans the
// argument, so the argument must be finite; the receiver may be
// infinite as long as demand stays on elements whose membership
// resolves.
func Intersect[T comparable](a, b *List[T]) *List[T] {
	return a.Filter(func(v T) bool { return Contains(b, v) })
}

// IntersectOrdered returns the lazy intersection of two lists that
// are both in strictly ascending order, walking them as an ordered
// merge. Unlike Intersect it needs no full membership scans, so it
// produces common elements of two infinite lists on demand.
func IntersectOrdered[T any](a, b *List[T], lt LessThan[T]) *List[T] {
	ai, bi := 0, 0
	return Generate(func([]T) (T, bool) {
		var zero T
		for {
			if !a.fillTo(ai+1) || !b.fillTo(bi+1) {
				return zero, false
			}
			av, bv := a.buf[ai], b.buf[bi]
			switch {
			case lt(av, bv):
				ai++
			case lt(bv, av):
				bi++
			default:
				ai++
				bi++
				return av, true
			}
		}
	})
}

// Without returns the lazy list of the receiver's elements that do
// not occur in the argument. Every element kept requires a full scan
// of the argument, so the argument must be finite.
func Without[T comparable](a, b *List[T]) *List[T] {
	return a.Filter(func(v T) bool { return !Contains(b, v) })
}
