package coeff

import "math/big"

// GF is an element of the prime field GF(p), built on *big.Int's
// Add/Sub/Mul/Mod and ModInverse-based division, usable as any
// polynomial ring's base coefficient ring. See DESIGN.md for why
// extension-field construction over GF is out of scope.
type GF struct {
	order *big.Int
	v     *big.Int
}

// NewGF returns the element i mod p of GF(p). p must be prime for the
// field axioms (in particular division by TryDivide) to hold; NewGF does
// not check this.
func NewGF(p, i int64) *GF {
	order := big.NewInt(p)
	v := new(big.Int).Mod(big.NewInt(i), order)
	return &GF{order: order, v: v}
}

// Order returns p.
func (x *GF) Order() *big.Int { return x.order }

// NewZero returns the additive identity 0 in x's field.
func (x *GF) NewZero() *GF { return &GF{order: x.order, v: big.NewInt(0)} }

// NewOne returns the multiplicative identity 1 in x's field.
func (x *GF) NewOne() *GF { return &GF{order: x.order, v: big.NewInt(1)} }

// Equal reports whether x and y are equal (same field, same value).
func (x *GF) Equal(y *GF) bool {
	return x.order.Cmp(y.order) == 0 && x.v.Cmp(y.v) == 0
}

// Add returns the sum x+y mod p as a new GF; z is not modified.
func (z *GF) Add(x, y *GF) *GF {
	v := new(big.Int).Add(x.v, y.v)
	v.Mod(v, x.order)
	return &GF{order: x.order, v: v}
}

// Sub returns the difference x-y mod p as a new GF; z is not modified.
func (z *GF) Sub(x, y *GF) *GF {
	v := new(big.Int).Sub(x.v, y.v)
	v.Mod(v, x.order)
	return &GF{order: x.order, v: v}
}

// Mul returns the product x*y mod p as a new GF; z is not modified.
func (z *GF) Mul(x, y *GF) *GF {
	v := new(big.Int).Mul(x.v, y.v)
	v.Mod(v, x.order)
	return &GF{order: x.order, v: v}
}

// Neg returns -x mod p.
func (z *GF) Neg(x *GF) *GF {
	v := new(big.Int).Neg(x.v)
	v.Mod(v, x.order)
	return &GF{order: x.order, v: v}
}

// TryDivide returns x/y; it always succeeds for y != 0, since every
// nonzero element of a field is invertible.
func (z *GF) TryDivide(x, y *GF) (*GF, bool) {
	if y.v.Sign() == 0 {
		return nil, false
	}
	inv := new(big.Int).ModInverse(y.v, y.order)
	v := new(big.Int).Mul(x.v, inv)
	v.Mod(v, x.order)
	return &GF{order: x.order, v: v}, true
}

// String returns the integer representative of x in [0, p).
func (x *GF) String() string { return x.v.String() }
