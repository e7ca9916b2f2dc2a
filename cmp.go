package lazylist

// Signed are the primitive signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned are the primitive unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of signed and unsigned integers.
type Integer interface{ Signed | Unsigned }

// Float is the set of floating point types.
type Float interface{ ~float32 | ~float64 }

// Numeric is the set of types that support arithmetic, used by the
// numeric range constructors and by Sum/Product/Average.
type Numeric interface{ Integer | Float }

// Ordered describes the native types which support the < operator.
type Ordered interface{ Numeric | ~string }

// LessThan describes a strict ordering relation, used by Compare,
// Min/Max, and IsOrderedBy. Provide LessThanNative for types that
// support <, or any custom relation.
type LessThan[T any] func(a, b T) bool

// LessThanNative wraps the < operator for types that support it.
func LessThanNative[T Ordered](a, b T) bool { return a < b }

// ReverseOrder inverts the direction of an ordering relation.
func ReverseOrder[T any](lt LessThan[T]) LessThan[T] {
	return func(a, b T) bool { return lt(b, a) }
}
