package lazylist

import "fmt"

// Pair is a two-element tuple, primarily the element type of zipped
// lists and map views.
type Pair[A any, B any] struct {
	Fst A
	Snd B
}

// MakePair constructs a Pair from its components.
func MakePair[A any, B any](a A, b B) Pair[A, B] { return Pair[A, B]{Fst: a, Snd: b} }

// Swap returns the pair with its components exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] { return Pair[B, A]{Fst: p.Snd, Snd: p.Fst} }

func (p Pair[A, B]) String() string { return fmt.Sprintf("(%v, %v)", p.Fst, p.Snd) }

// PairList is an association-list view of a list of pairs: a lazy
// sequence of key/value entries queried like a map. Lookups scan in
// order and take the first match, so shadowed entries are permitted
// and earlier entries win.
type PairList[K comparable, V comparable] struct {
	list *List[Pair[K, V]]
}

// AsMap wraps a list of pairs in its association-list view. The view
// shares the underlying list: entries realized through the view are
// realized in the list and vice versa.
func AsMap[K comparable, V comparable](l *List[Pair[K, V]]) *PairList[K, V] {
	return &PairList[K, V]{list: l}
}

// FromMap constructs a sealed list of pairs from a Go map. Iteration
// order of the map is unspecified, so the entry order is too.
func FromMap[K comparable, V comparable](in map[K]V) *List[Pair[K, V]] {
	out := Empty[Pair[K, V]]()
	for k, v := range in {
		out.buf = append(out.buf, Pair[K, V]{Fst: k, Snd: v})
	}
	return out
}

// List returns the underlying list of entries.
func (m *PairList[K, V]) List() *List[Pair[K, V]] { return m.list }

// Get returns the value of the first entry with the given key. The
// scan realizes entries until a match or the end of the list, so a
// missing key on an infinite entry list never returns.
func (m *PairList[K, V]) Get(key K) (V, bool) {
	for i := 0; m.list.fillTo(i + 1); i++ {
		if m.list.buf[i].Fst == key {
			return m.list.buf[i].Snd, true
		}
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether any entry has the given key.
func (m *PairList[K, V]) ContainsKey(key K) bool { _, ok := m.Get(key); return ok }

// ContainsValue reports whether any entry has the given value.
func (m *PairList[K, V]) ContainsValue(value V) bool {
	for i := 0; m.list.fillTo(i + 1); i++ {
		if m.list.buf[i].Snd == value {
			return true
		}
	}
	return false
}

// Put inserts an entry at the front of the realized buffer. Existing
// entries with the same key are not removed, only shadowed: the new
// entry wins every subsequent Get because lookups scan front to
// back.
func (m *PairList[K, V]) Put(key K, value V) {
	m.list.buf = append([]Pair[K, V]{{Fst: key, Snd: value}}, m.list.buf...)
}

// Delete removes the first entry with the given key and reports
// whether one was found. Like Get, an absent key on an infinite
// entry list never returns.
func (m *PairList[K, V]) Delete(key K) bool {
	for i := 0; m.list.fillTo(i + 1); i++ {
		if m.list.buf[i].Fst == key {
			m.list.buf = append(m.list.buf[:i], m.list.buf[i+1:]...)
			return true
		}
	}
	return false
}

// Len fully evaluates the entry list and returns the number of
// entries, counting shadowed ones.
func (m *PairList[K, V]) Len() int { return m.list.Length() }

// Keys returns the lazy list of entry keys, in order, including
// shadowed keys.
func (m *PairList[K, V]) Keys() *List[K] {
	return Map(m.list, func(p Pair[K, V]) K { return p.Fst })
}

// Values returns the lazy list of entry values, in order.
func (m *PairList[K, V]) Values() *List[V] {
	return Map(m.list, func(p Pair[K, V]) V { return p.Snd })
}
