// Package coeff provides the built-in coefficient rings: Integer
// (arbitrary-precision ℤ), Rational (arbitrary-precision ℚ, the usual
// default), Float (arbitrary-precision binary floating point), and GF
// (a prime field), each built on math/big and lifted to the
// algebra.Ring capability set.
package coeff

import "math/big"

// Integer is an arbitrary-precision integer ring element.
type Integer struct{ *big.Int }

// NewInteger returns the Integer with value v.
func NewInteger(v int64) *Integer { return &Integer{big.NewInt(v)} }

// NewIntegerFromBig returns the Integer wrapping v directly (no copy).
func NewIntegerFromBig(v *big.Int) *Integer { return &Integer{v} }

// NewZero returns the additive identity 0.
func (x *Integer) NewZero() *Integer { return &Integer{big.NewInt(0)} }

// NewOne returns the multiplicative identity 1.
func (x *Integer) NewOne() *Integer { return &Integer{big.NewInt(1)} }

// Equal reports whether x and y are equal.
func (x *Integer) Equal(y *Integer) bool { return x.Int.Cmp(y.Int) == 0 }

// Add returns the sum x+y as a new Integer; z is not modified.
func (z *Integer) Add(x, y *Integer) *Integer { return &Integer{new(big.Int).Add(x.Int, y.Int)} }

// Sub returns the difference x-y as a new Integer; z is not modified.
func (z *Integer) Sub(x, y *Integer) *Integer { return &Integer{new(big.Int).Sub(x.Int, y.Int)} }

// Mul returns the product x*y as a new Integer; z is not modified.
func (z *Integer) Mul(x, y *Integer) *Integer { return &Integer{new(big.Int).Mul(x.Int, y.Int)} }

// Neg returns -x.
func (z *Integer) Neg(x *Integer) *Integer { return &Integer{new(big.Int).Neg(x.Int)} }

// TryDivide reports x/y and whether the division is exact; it does not
// itself guard against y == 0 (see algebra.ErrDivisionByZero).
func (z *Integer) TryDivide(x, y *Integer) (*Integer, bool) {
	q, r := new(big.Int).QuoRem(x.Int, y.Int, new(big.Int))
	if r.Sign() != 0 {
		return nil, false
	}
	return &Integer{q}, true
}

// GCD returns the nonnegative greatest common divisor of x and y.
func (x *Integer) GCD(y *Integer) *Integer {
	return &Integer{new(big.Int).GCD(nil, nil, new(big.Int).Abs(x.Int), new(big.Int).Abs(y.Int))}
}

// String returns the base-10 representation of x.
func (x *Integer) String() string { return x.Int.String() }
