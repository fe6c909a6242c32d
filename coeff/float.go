package coeff

import "math/big"

// DefaultPrecision is the mantissa precision, in bits, used by NewFloat.
const DefaultPrecision = 236 // well above the 53 bits big.Float uses for a float64 value by default

// Float is an arbitrary-precision, finite binary floating point ring
// element, built directly on math/big.Float. See DESIGN.md for why this
// stays on the standard library rather than a third-party bigfloat
// package.
type Float struct{ *big.Float }

// NewFloat returns the Float with value v at DefaultPrecision.
func NewFloat(v float64) *Float {
	return &Float{new(big.Float).SetPrec(DefaultPrecision).SetFloat64(v)}
}

// NewFloatFromBig returns the Float wrapping v directly (no copy).
func NewFloatFromBig(v *big.Float) *Float { return &Float{v} }

// NewZero returns the additive identity 0.
func (x *Float) NewZero() *Float { return &Float{new(big.Float).SetPrec(x.Prec())} }

// NewOne returns the multiplicative identity 1.
func (x *Float) NewOne() *Float { return &Float{new(big.Float).SetPrec(x.Prec()).SetInt64(1)} }

// Equal reports whether x and y compare equal.
func (x *Float) Equal(y *Float) bool { return x.Float.Cmp(y.Float) == 0 }

// Add returns the sum x+y as a new Float; z is not modified.
func (z *Float) Add(x, y *Float) *Float {
	return &Float{new(big.Float).SetPrec(prec(x, y)).Add(x.Float, y.Float)}
}

// Sub returns the difference x-y as a new Float; z is not modified.
func (z *Float) Sub(x, y *Float) *Float {
	return &Float{new(big.Float).SetPrec(prec(x, y)).Sub(x.Float, y.Float)}
}

// Mul returns the product x*y as a new Float; z is not modified.
func (z *Float) Mul(x, y *Float) *Float {
	return &Float{new(big.Float).SetPrec(prec(x, y)).Mul(x.Float, y.Float)}
}

// Neg returns -x.
func (z *Float) Neg(x *Float) *Float { return &Float{new(big.Float).Neg(x.Float)} }

// TryDivide returns x/y for y != 0; Float is a field over its finite
// precision, so division is "exact" up to rounding, which TryDivide
// always reports as successful except by zero.
func (z *Float) TryDivide(x, y *Float) (*Float, bool) {
	if y.Sign() == 0 {
		return nil, false
	}
	return &Float{new(big.Float).SetPrec(prec(x, y)).Quo(x.Float, y.Float)}, true
}

// String returns x formatted in shortest round-trippable decimal form.
func (x *Float) String() string { return x.Text('g', -1) }

func prec(x, y *Float) uint {
	return max(x.Prec(), y.Prec())
}
