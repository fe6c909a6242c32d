// Package order implements monomial orders: strict total orders on
// monomials compatible with multiplication, admissible with respect to
// the identity monomial, over the commutative, arbitrary-arity exponent
// vectors in package monomial.
package order

import (
	"cmp"

	"github.com/hairshirt/polyring/monomial"
)

// An Order compares two monomials, with the same meaning as
// [cmp.Compare]: negative if a < b, zero if equal, positive if a > b.
// Every Order in this package is admissible: 1 < m for every nonidentity
// m, and a < b implies a*c < b*c for any c.
type Order func(a, b monomial.Monomial) int

// Lex compares exponents by variable index in ascending order; the
// first differing position decides, higher exponent greater.
func Lex(a, b monomial.Monomial) int {
	n := max(a.NumVariables(), b.NumVariables())
	for i := 1; i <= n; i++ {
		if c := cmp.Compare(a.Index(i), b.Index(i)); c != 0 {
			return c
		}
	}
	return 0
}

// Deglex compares total degree first, and in case of a tie applies Lex.
func Deglex(a, b monomial.Monomial) int {
	if c := cmp.Compare(a.TotalDegree(), b.TotalDegree()); c != 0 {
		return c
	}
	return Lex(a, b)
}

// DegRevLex compares total degree first, and in case of a tie applies
// reverse lex: exponents are compared from the highest variable index
// down, and the monomial with the smaller exponent at the first
// difference is the greater one.
func DegRevLex(a, b monomial.Monomial) int {
	if c := cmp.Compare(a.TotalDegree(), b.TotalDegree()); c != 0 {
		return c
	}
	n := max(a.NumVariables(), b.NumVariables())
	for i := n; i >= 1; i-- {
		ai, bi := a.Index(i), b.Index(i)
		if ai != bi {
			return cmp.Compare(bi, ai)
		}
	}
	return 0
}

// Named looks up one of the built-in orders by name: "lex", "deglex",
// or "degrevlex". It reports false for any other name.
func Named(name string) (Order, bool) {
	switch name {
	case "lex":
		return Lex, true
	case "deglex":
		return Deglex, true
	case "degrevlex":
		return DegRevLex, true
	default:
		return nil, false
	}
}

// Admissible reports whether order is admissible with respect to the
// sample monomials given: one must be least among nonidentity monomials
// in the sample, and multiplying every pairwise comparison by each
// sample monomial c must preserve its sign. It is intended for tests of
// user-defined orders, not for use on the hot path.
func Admissible(o Order, one monomial.Monomial, sample []monomial.Monomial) bool {
	for _, m := range sample {
		if !monomial.IsOne(m) && o(one, m) >= 0 {
			return false
		}
	}
	for _, a := range sample {
		for _, b := range sample {
			cmpAB := o(a, b)
			for _, c := range sample {
				ac := monomial.Multiply(a, c)
				bc := monomial.Multiply(b, c)
				cmpACBC := o(ac, bc)
				if sign(cmpAB) != sign(cmpACBC) {
					return false
				}
			}
		}
	}
	return true
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
