package polyring

import (
	"fmt"
	"iter"
	"strings"

	"github.com/jba/omap"

	"github.com/hairshirt/polyring/algebra"
	"github.com/hairshirt/polyring/monomial"
)

// A Term is a monomial paired with a nonzero coefficient. A Term with a
// zero coefficient is never stored inside a Polynomial.
type Term[K algebra.Ring[K]] struct {
	Coefficient K
	Monomial    monomial.Monomial
}

// A Polynomial is a sorted sequence of terms, ascending under its ring's
// order, with unique monomials and no zero coefficients. The zero
// polynomial is the empty sequence; the leading term is the last
// element under the order.
//
// Polynomial stores its terms in a github.com/jba/omap ordered map
// keyed by the ring's order function, giving ordered iteration and
// O(log n) lookup by monomial for free.
type Polynomial[K algebra.Ring[K]] struct {
	ring  *Ring[K]
	terms *omap.MapFunc[monomial.Monomial, K]
}

func newEmptyPolynomial[K algebra.Ring[K]](r *Ring[K]) *Polynomial[K] {
	return &Polynomial[K]{
		ring:  r,
		terms: omap.NewMapFunc[monomial.Monomial, K](r.order),
	}
}

// Ring returns the ring p belongs to.
func (p *Polynomial[K]) Ring() *Ring[K] { return p.ring }

// NTerms reports the number of terms in p.
func (p *Polynomial[K]) NTerms() int { return p.terms.Len() }

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial[K]) IsZero() bool { return p.terms.Len() == 0 }

// Terms iterates p's terms in ascending order under the ring's order.
func (p *Polynomial[K]) Terms() iter.Seq[Term[K]] {
	return func(yield func(Term[K]) bool) {
		for w, c := range p.terms.All() {
			if !yield(Term[K]{Coefficient: c, Monomial: w}) {
				return
			}
		}
	}
}

// TermsInOrder returns p's terms re-sorted under ord, without mutating
// p. If ord is p's own ring order, this is equivalent to collecting
// Terms().
func (p *Polynomial[K]) TermsInOrder(ord func(a, b monomial.Monomial) int) []Term[K] {
	out := p.sortedTerms()
	if sameOrderFunc(ord, p.ring.order) {
		return out
	}
	reordered := append([]Term[K](nil), out...)
	sortTerms(reordered, ord)
	return reordered
}

func sameOrderFunc(a, b func(x, y monomial.Monomial) int) bool {
	// Go cannot compare funcs for equality; same-order fast path is an
	// optimization only, never relied on for correctness.
	return false
}

// sortedTerms returns p's terms as an ascending slice, without copying
// the underlying monomials/coefficients.
func (p *Polynomial[K]) sortedTerms() []Term[K] {
	out := make([]Term[K], 0, p.terms.Len())
	for w, c := range p.terms.All() {
		out = append(out, Term[K]{Coefficient: c, Monomial: w})
	}
	return out
}

// LeadingTerm returns p's greatest term under the ring order. It panics
// if p is the zero polynomial, which has no terms.
func (p *Polynomial[K]) LeadingTerm() Term[K] {
	w, ok := p.terms.Max()
	if !ok {
		panic("polyring: zero polynomial has no leading term")
	}
	c, _ := p.terms.Get(w)
	return Term[K]{Coefficient: c, Monomial: w}
}

// LeadingMonomial returns the monomial of p's leading term.
func (p *Polynomial[K]) LeadingMonomial() monomial.Monomial { return p.LeadingTerm().Monomial }

// LeadingCoefficient returns the coefficient of p's leading term.
func (p *Polynomial[K]) LeadingCoefficient() K { return p.LeadingTerm().Coefficient }

// LeadingTermUnder returns p's greatest term under an alternate order
// ord, without changing p's own ring order.
func (p *Polynomial[K]) LeadingTermUnder(ord func(a, b monomial.Monomial) int) Term[K] {
	terms := p.TermsInOrder(ord)
	if len(terms) == 0 {
		panic("polyring: zero polynomial has no leading term")
	}
	return terms[len(terms)-1]
}

// Tail returns p minus its leading term.
func (p *Polynomial[K]) Tail() *Polynomial[K] {
	if p.IsZero() {
		return p
	}
	lt := p.LeadingTerm()
	out := newEmptyPolynomial(p.ring)
	for t := range p.Terms() {
		if monomial.Equal(t.Monomial, lt.Monomial) {
			continue
		}
		out.setTerm(t.Monomial, t.Coefficient)
	}
	return out
}

// Equal reports whether p and q have the same coefficients and
// monomials. p and q must be in the same ring.
func (p *Polynomial[K]) Equal(q *Polynomial[K]) bool {
	if p.terms.Len() != q.terms.Len() {
		return false
	}
	pt, qt := p.sortedTerms(), q.sortedTerms()
	for i := range pt {
		if !monomial.Equal(pt[i].Monomial, qt[i].Monomial) {
			return false
		}
		if !pt[i].Coefficient.Equal(qt[i].Coefficient) {
			return false
		}
	}
	return true
}

// String renders p as a sum of terms from the leading term down, in the
// style "c1*m1 + c2*m2 + ...", or "0" for the zero polynomial.
func (p *Polynomial[K]) String() string {
	if p.IsZero() {
		return "0"
	}
	terms := p.sortedTerms()
	var b strings.Builder
	for i := len(terms) - 1; i >= 0; i-- {
		t := terms[i]
		if i != len(terms)-1 {
			b.WriteString(" + ")
		}
		if monomial.IsOne(t.Monomial) {
			fmt.Fprintf(&b, "%s", t.Coefficient.String())
		} else {
			fmt.Fprintf(&b, "%s*%s", t.Coefficient.String(), t.Monomial.String())
		}
	}
	return b.String()
}

// setTerm sets the coefficient of m to c directly, deleting the term if
// c is the ring's zero. It is the mutator the ring constructors and Tail
// use to reestablish the nonzero invariant after every write; the
// arithmetic kernel's results go through fromSortedUniqueTerms instead.
func (p *Polynomial[K]) setTerm(m monomial.Monomial, c K) {
	if c.Equal(p.ring.coeff.NewZero()) {
		p.terms.Delete(m)
		return
	}
	p.terms.Set(m, c)
}

// fromSortedUniqueTerms builds a polynomial directly from a slice that
// the caller guarantees is already ascending under r's order, has
// unique monomials, and has no zero coefficients — the postcondition
// every hard-core algorithm (merge-add, heap-multiply, multinomial
// exponentiation) establishes before calling this.
func fromSortedUniqueTerms[K algebra.Ring[K]](r *Ring[K], terms []Term[K]) *Polynomial[K] {
	p := newEmptyPolynomial(r)
	for _, t := range terms {
		p.terms.Set(t.Monomial, t.Coefficient)
	}
	return p
}

// sortTerms sorts terms ascending under ord using a straightforward
// insertion sort; used only by TermsInOrder, off the hot path.
func sortTerms[K algebra.Ring[K]](terms []Term[K], ord func(a, b monomial.Monomial) int) {
	insertionSortTerms(terms, ord)
}

func insertionSortTerms[K algebra.Ring[K]](terms []Term[K], ord func(a, b monomial.Monomial) int) {
	for i := 1; i < len(terms); i++ {
		for j := i; j > 0 && ord(terms[j-1].Monomial, terms[j].Monomial) > 0; j-- {
			terms[j-1], terms[j] = terms[j], terms[j-1]
		}
	}
}
