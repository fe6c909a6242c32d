// Package algebra declares the capability set a coefficient ring must
// satisfy to back a [github.com/hairshirt/polyring] polynomial, and the
// error kinds the rest of the module signals against.
package algebra

// A Ring is an element whose addition and multiplication operations
// satisfy the commutative ring axioms. T is the concrete element type;
// implementations follow the "method returns receiver type" idiom
// throughout (NewZero, Add, Sub, Mul all produce a T) so that generic
// code can build fresh values without importing a constructor.
type Ring[T any] interface {
	// NewZero returns the additive identity of the ring.
	NewZero() T
	// NewOne returns the multiplicative identity of the ring.
	NewOne() T

	// Equal reports whether x and y are equal, where x is the receiver.
	Equal(y T) bool
	// Add returns the sum x+y as a new value; the receiver, x and y are
	// not modified.
	Add(x, y T) T
	// Sub returns the difference x-y as a new value; the receiver, x and
	// y are not modified.
	Sub(x, y T) T
	// Mul returns the product x*y as a new value; the receiver, x and y
	// are not modified.
	Mul(x, y T) T

	// String returns the string representation.
	String() string
}

// A TryDivider is a ring that can attempt exact division: fields always
// succeed (except by zero); integral domains such as the integers only
// succeed when the quotient is exact. The division engine relies on
// this rather than on a general Div, since division with remainder over
// a non-field needs to know when to report not-divisible instead of
// silently truncating.
type TryDivider[T any] interface {
	// TryDivide reports x/y and whether the division was exact.
	// TryDivide does not itself check for a zero divisor; callers must
	// do that (see ErrDivisionByZero) since the zero test is a property
	// of Equal, not of the division algorithm.
	TryDivide(x, y T) (T, bool)
}

// A Negator is a ring that can produce the additive inverse directly,
// used by subtraction, which would otherwise have to round-trip through
// Sub(Zero, x).
type Negator[T any] interface {
	Neg(x T) T
}
