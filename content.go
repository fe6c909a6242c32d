package polyring

import (
	"math/big"

	"github.com/hairshirt/polyring/algebra"
	"github.com/hairshirt/polyring/coeff"
)

// Content returns the gcd of p's coefficients over an integer-coefficient
// ring, accumulated termwise by folding a running gcd across successive
// terms. It returns zero for the zero polynomial.
func Content(p *Polynomial[*coeff.Integer]) *coeff.Integer {
	if p.IsZero() {
		return coeff.NewInteger(0)
	}
	var g *coeff.Integer
	for t := range p.Terms() {
		if g == nil {
			g = &coeff.Integer{Int: new(big.Int).Abs(t.Coefficient.Int)}
			continue
		}
		g = t.Coefficient.GCD(g)
	}
	return g
}

// IntegralFraction clears the denominators of a rational-coefficient
// polynomial, returning (q, d) such that d*p = q and q has integer
// coefficients. d is the lcm of p's coefficient denominators; it is 1
// for the zero polynomial.
func IntegralFraction(p *Polynomial[*coeff.Rational], intRing *Ring[*coeff.Integer]) (*Polynomial[*coeff.Integer], *coeff.Integer) {
	d := big.NewInt(1)
	for t := range p.Terms() {
		den := t.Coefficient.Denom()
		g := new(big.Int).GCD(nil, nil, d, den)
		d.Mul(d, new(big.Int).Div(den, g))
	}
	denom := &coeff.Integer{Int: d}

	out := make([]Term[*coeff.Integer], 0, p.NTerms())
	for t := range p.Terms() {
		scaled := new(big.Rat).Mul(t.Coefficient.Rat, new(big.Rat).SetInt(d))
		if !scaled.IsInt() {
			panic("polyring: IntegralFraction's chosen denominator failed to clear a coefficient")
		}
		out = append(out, Term[*coeff.Integer]{Coefficient: &coeff.Integer{Int: scaled.Num()}, Monomial: t.Monomial})
	}
	return fromSortedUniqueTerms(intRing, out), denom
}

// MapCoefficients applies f to every coefficient of p, dropping any term
// whose image is zero in ring's coefficient type. This is the mechanism
// promotion's coefficient-ring rule is built on.
func MapCoefficients[K algebra.Ring[K], L algebra.Ring[L]](p *Polynomial[K], f func(K) L, ring *Ring[L]) *Polynomial[L] {
	out := make([]Term[L], 0, p.NTerms())
	for t := range p.Terms() {
		v := f(t.Coefficient)
		if !v.Equal(v.NewZero()) {
			out = append(out, Term[L]{Coefficient: v, Monomial: t.Monomial})
		}
	}
	insertionSortTerms(out, ring.order)
	return fromSortedUniqueTerms(ring, out)
}
