package coeff

import "math/big"

// Rational is an arbitrary-precision field element, a*b^-1 for integers
// a, b.
type Rational struct{ *big.Rat }

// NewRational returns the Rational with numerator a and denominator b.
func NewRational(a, b int64) *Rational { return &Rational{big.NewRat(a, b)} }

// NewRationalFromBig returns the Rational wrapping v directly (no copy).
func NewRationalFromBig(v *big.Rat) *Rational { return &Rational{v} }

// NewZero returns the additive identity 0.
func (x *Rational) NewZero() *Rational { return &Rational{big.NewRat(0, 1)} }

// NewOne returns the multiplicative identity 1.
func (x *Rational) NewOne() *Rational { return &Rational{big.NewRat(1, 1)} }

// Add returns the sum x+y as a new Rational; z is not modified.
func (z *Rational) Add(x, y *Rational) *Rational { return &Rational{new(big.Rat).Add(x.Rat, y.Rat)} }

// Sub returns the difference x-y as a new Rational; z is not modified.
func (z *Rational) Sub(x, y *Rational) *Rational { return &Rational{new(big.Rat).Sub(x.Rat, y.Rat)} }

// Mul returns the product x*y as a new Rational; z is not modified.
func (z *Rational) Mul(x, y *Rational) *Rational { return &Rational{new(big.Rat).Mul(x.Rat, y.Rat)} }

// Neg returns -x.
func (z *Rational) Neg(x *Rational) *Rational { return &Rational{new(big.Rat).Neg(x.Rat)} }

// TryDivide returns x/y; it always succeeds for y != 0, per the field
// axioms. If y == 0, TryDivide reports false rather than panicking.
func (z *Rational) TryDivide(x, y *Rational) (*Rational, bool) {
	if y.Sign() == 0 {
		return nil, false
	}
	return &Rational{new(big.Rat).Quo(x.Rat, y.Rat)}, true
}

// Equal reports whether x and y are equal.
func (x *Rational) Equal(y *Rational) bool { return x.Rat.Cmp(y.Rat) == 0 }

// String returns a string representation of x in the form "a/b" if
// b != 1, and in the form "a" if b == 1.
func (x *Rational) String() string { return x.RatString() }
