// Package division implements polynomial reduction: the single-divisor
// quotient/remainder step and its extension to reduction against a
// family of divisors, restarting from the first divisor after every
// successful step until nothing further reduces.
package division

import (
	"github.com/pkg/errors"

	"github.com/hairshirt/polyring"
	"github.com/hairshirt/polyring/algebra"
	"github.com/hairshirt/polyring/monomial"
)

// A Mode selects how a divisor's leading term is matched against the
// dividend during a single reduction step.
type Mode int

const (
	// Lead reduces only when the divisor's leading monomial divides the
	// dividend's own leading monomial.
	Lead Mode = iota
	// Full scans the dividend from its leading term downward and reduces
	// at the first term divisible by the divisor's leading monomial.
	Full
)

// DivRem performs one single-divisor division step: if g's leading term
// divides a matching term of f under mode, it returns the single-term
// quotient factor and f minus factor*g; otherwise it returns a zero
// quotient and f unchanged. It fails with ErrDivisionByZero if g is
// zero.
func DivRem[K algebra.Ring[K]](mode Mode, f, g *polyring.Polynomial[K]) (*polyring.Polynomial[K], *polyring.Polynomial[K], error) {
	if g.IsZero() {
		return nil, nil, errors.Wrap(algebra.ErrDivisionByZero, "division: divisor is zero")
	}
	r := g.Ring()
	glt := g.LeadingTerm()

	switch mode {
	case Lead:
		if f.IsZero() {
			return r.Zero(), f, nil
		}
		flt := f.LeadingTerm()
		factor, ok := reduceStep(r, flt, glt)
		if !ok {
			return r.Zero(), f, nil
		}
		return factor, polyring.Sub(f, polyring.Mul(factor, g)), nil
	case Full:
		terms := collectDescending(f)
		for _, t := range terms {
			factor, ok := reduceStep(r, t, glt)
			if !ok {
				continue
			}
			return factor, polyring.Sub(f, polyring.Mul(factor, g)), nil
		}
		return r.Zero(), f, nil
	default:
		panic("division: unknown mode")
	}
}

// collectDescending returns f's terms from the leading term down to the
// smallest, the reverse of Terms' own ascending order.
func collectDescending[K algebra.Ring[K]](f *polyring.Polynomial[K]) []polyring.Term[K] {
	var terms []polyring.Term[K]
	for t := range f.Terms() {
		terms = append(terms, t)
	}
	for i, j := 0, len(terms)-1; i < j; i, j = i+1, j-1 {
		terms[i], terms[j] = terms[j], terms[i]
	}
	return terms
}

// reduceStep attempts to build the single-term quotient factor that
// cancels t against divisor leading term glt: t's monomial must be
// divisible by glt's monomial, and t's coefficient must be exactly
// divisible by glt's coefficient in the base ring.
func reduceStep[K algebra.Ring[K]](r *polyring.Ring[K], t polyring.Term[K], glt polyring.Term[K]) (*polyring.Polynomial[K], bool) {
	monQuot, ok := monomial.TryDivide(t.Monomial, glt.Monomial)
	if !ok {
		return nil, false
	}
	divider, ok := any(r.Coeff()).(algebra.TryDivider[K])
	if !ok {
		panic("division: base coefficient ring does not support TryDivide")
	}
	coeffQuot, ok := divider.TryDivide(t.Coefficient, glt.Coefficient)
	if !ok {
		return nil, false
	}
	return r.Term(monQuot, coeffQuot), true
}

// Family reduces f against the divisors in G, accumulating one quotient
// factor per divisor and restarting from the first divisor every time a
// reduction succeeds (the well-ordering of the monomial order
// guarantees termination). The result satisfies
// f = sum_j factors[j]*G[j] + remainder, and no leading term of any
// nonzero G[j] divides any further term of remainder (Full) or its
// leading monomial (Lead).
func Family[K algebra.Ring[K]](mode Mode, f *polyring.Polynomial[K], G []*polyring.Polynomial[K]) ([]*polyring.Polynomial[K], *polyring.Polynomial[K]) {
	r := f.Ring()
	factors := make([]*polyring.Polynomial[K], len(G))
	for j := range factors {
		factors[j] = r.Zero()
	}

	fRed := f
	i := 0
	for !fRed.IsZero() && i < len(G) {
		if G[i].IsZero() {
			i++
			continue
		}
		q, next, err := DivRem(mode, fRed, G[i])
		if err != nil {
			panic("division: unexpected division-by-zero against a checked-nonzero divisor")
		}
		if q.IsZero() {
			i++
			continue
		}
		factors[i] = polyring.Add(factors[i], q)
		fRed = next
		i = 0
	}
	return factors, fRed
}
