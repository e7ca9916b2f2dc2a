package lazylist

// ZipWith returns the lazy list of fn applied to corresponding
// elements of the two inputs. The result seals as soon as either
// input runs out, so its length is the shorter of the two; zipping
// two infinite lists is itself infinite.
func ZipWith[A any, B any, C any](a *List[A], b *List[B], fn func(A, B) C) *List[C] {
	cursor := 0
	return Generate(func([]C) (C, bool) {
		if !a.fillTo(cursor+1) || !b.fillTo(cursor+1) {
			var zero C
			return zero, false
		}
		v := fn(a.buf[cursor], b.buf[cursor])
		cursor++
		return v, true
	})
}

// Zip pairs corresponding elements of two lists.
func Zip[A any, B any](a *List[A], b *List[B]) *List[Pair[A, B]] {
	return ZipWith(a, b, MakePair[A, B])
}

// Unzip splits a list of pairs into its component lists. Both
// results are lazy views over the same input, so realizing one does
// not realize the other beyond their shared upstream.
func Unzip[A any, B any](l *List[Pair[A, B]]) (*List[A], *List[B]) {
	fst := Map(l, func(p Pair[A, B]) A { return p.Fst })
	snd := Map(l, func(p Pair[A, B]) B { return p.Snd })
	return fst, snd
}
