// Package monomial implements exponent-vector monomials over a fixed set
// of positionally- or sparsely-indexed variables.
//
// Two concrete representations are provided, [Dense] and [Sparse], both
// satisfying the same [Monomial] capability set. Most algebra
// (Multiply, LCM, GCD, TryDivide, LCMMultipliers) is written once
// against that capability set via the [Monomial] Construct method; Dense and Sparse each
// additionally expose same-type fast paths that avoid the closure
// indirection for the hot arithmetic kernel paths.
package monomial

import (
	"cmp"
	"fmt"
)

// Exp is the exponent type shared by all monomial representations in
// this package. A 32-bit signed integer comfortably covers exponents
// arising from ordinary polynomial arithmetic and exponentiation, while
// staying far from the width where total-degree sums could silently
// wrap; see [algebra.ErrCoefficientOverflow] for the unrelated
// coefficient-side overflow this does not replace.
type Exp = int32

// A Monomial is the formal product x1^e1 * x2^e2 * ... over variables
// indexed from 1. Index never fails for a [Sparse] value; it panics for
// a [Dense] value asked about a position past its declared arity, since
// within one polynomial ring every Dense monomial shares the same arity
// and asking otherwise is a programming error, not a runtime condition.
type Monomial interface {
	// Index returns the exponent at variable position i (1-based).
	Index(i int) Exp
	// NumVariables returns the arity for a Dense monomial, or the
	// largest stored variable index for a Sparse monomial.
	NumVariables() int
	// TotalDegree returns the sum of all exponents.
	TotalDegree() Exp
	// Construct builds a monomial of the same representation as the
	// receiver, with exponent f(i) at position i for i in 1..n.
	Construct(f func(i int) Exp, n int) Monomial

	fmt.Stringer
}

// Equal reports whether a and b denote the same monomial.
func Equal(a, b Monomial) bool {
	n := max(a.NumVariables(), b.NumVariables())
	for i := 1; i <= n; i++ {
		if a.Index(i) != b.Index(i) {
			return false
		}
	}
	return true
}

// IsOne reports whether m is the identity monomial (all exponents zero).
func IsOne(m Monomial) bool {
	return m.TotalDegree() == 0
}

// Multiply returns a*b, computed exponent-wise addition at an arity
// equal to the larger of a and b's arities.
func Multiply(a, b Monomial) Monomial {
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			return mulDense(da, db)
		}
	}
	if sa, ok := a.(*Sparse); ok {
		if sb, ok := b.(*Sparse); ok {
			return mulSparse(sa, sb)
		}
	}
	n := max(a.NumVariables(), b.NumVariables())
	return a.Construct(func(i int) Exp { return a.Index(i) + b.Index(i) }, n)
}

// LCM returns the exponent-wise maximum of a and b.
func LCM(a, b Monomial) Monomial {
	n := max(a.NumVariables(), b.NumVariables())
	return a.Construct(func(i int) Exp { return max(a.Index(i), b.Index(i)) }, n)
}

// GCD returns the exponent-wise minimum of a and b.
func GCD(a, b Monomial) Monomial {
	n := max(a.NumVariables(), b.NumVariables())
	return a.Construct(func(i int) Exp { return min(a.Index(i), b.Index(i)) }, n)
}

// Divides reports whether a | b, i.e. a[i] <= b[i] for every variable.
func Divides(a, b Monomial) bool {
	n := max(a.NumVariables(), b.NumVariables())
	for i := 1; i <= n; i++ {
		if a.Index(i) > b.Index(i) {
			return false
		}
	}
	return true
}

// TryDivide returns a/b and true if b | a; otherwise it returns the zero
// value and false. The returned monomial has the same representation as
// a.
func TryDivide(a, b Monomial) (Monomial, bool) {
	if !Divides(b, a) {
		return nil, false
	}
	n := max(a.NumVariables(), b.NumVariables())
	return a.Construct(func(i int) Exp { return a.Index(i) - b.Index(i) }, n), true
}

// LCMMultipliers returns (lcm/a, lcm/b) for the lcm of a and b.
func LCMMultipliers(a, b Monomial) (Monomial, Monomial) {
	l := LCM(a, b)
	ma, _ := TryDivide(l, a)
	mb, _ := TryDivide(l, b)
	return ma, mb
}

// Compare is a total order on monomials compatible with [cmp.Compare]'s
// contract, used only for deterministic tie-breaking where a caller has
// not supplied a [github.com/hairshirt/polyring/order.Order]; the
// arithmetic kernel itself always orders by the ring's own Order.
func Compare(a, b Monomial) int {
	n := max(a.NumVariables(), b.NumVariables())
	for i := 1; i <= n; i++ {
		if c := cmp.Compare(a.Index(i), b.Index(i)); c != 0 {
			return c
		}
	}
	return 0
}
