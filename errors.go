package lazylist

import "github.com/tychoish/fun/ers"

// ErrEmpty is returned by operations that need at least one element
// (Head, Tail, Last, Foldl1, Min, ...) when called on the empty list.
const ErrEmpty ers.Error = "empty list"

// ErrIndexOutOfRange is returned for negative indexes, and for
// indexes at or past the end of a sealed list.
const ErrIndexOutOfRange ers.Error = "index out of range"

// ErrNotOrdinal is returned by NextOf for values whose type has no
// defined successor operation.
const ErrNotOrdinal ers.Error = "type is not ordinal"

// ErrNilElement is returned when a construction or prefix edit would
// place a nil-valued element inside a list. Lists never contain
// absent elements: the end of a list is always signaled by the
// generation step, never by a sentinel value in the buffer.
const ErrNilElement ers.Error = "nil elements are not permitted"

// ErrUnsupportedShape is returned by dynamically typed operations
// (e.g. FlattenAny) when the runtime shape of the elements does not
// match what the operation requires.
const ErrUnsupportedShape ers.Error = "unsupported element shape"

// ErrPartiallyEvaluated is returned by Cycle when the receiver has
// not been fully evaluated: cycling is only defined for sealed
// lists, and no lazy cycling strategy is provided for growing ones.
const ErrPartiallyEvaluated ers.Error = "cycle of partially evaluated list"

// ErrNotImplemented is reserved for operations that this package
// intentionally leaves unspecified. Nothing in the current API
// returns it.
const ErrNotImplemented ers.Error = "not implemented"
