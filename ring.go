package polyring

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/hairshirt/polyring/algebra"
	"github.com/hairshirt/polyring/monomial"
	"github.com/hairshirt/polyring/order"
)

// A Ring holds the four things that describe a polynomial ring: the
// monomial representation, the monomial order, the naming scheme, and
// the base coefficient ring. Ring identity is the *Ring value itself:
// two polynomials are in the same ring only when they share one *Ring,
// so rings built by separate constructor calls are distinct even when
// all four parameters agree, and the arithmetic kernel panics on
// operands from two of them. Operations across differing rings must go
// through package promotion first.
type Ring[K algebra.Ring[K]] struct {
	coeff K
	order order.Order

	// Names holds the ring's variable names in declaration order, for a
	// named (dense) ring; it is nil for a numbered (sparse) ring.
	Names []string
	// Prefix is the display prefix for a numbered ring's variables
	// (e.g. "x" renders as x1, x2, ...); empty for a named ring.
	Prefix string

	one  monomial.Monomial
	dense bool
}

// Coeff returns the ring's sample coefficient, usable to synthesize
// further coefficients via its algebra.Ring methods.
func (r *Ring[K]) Coeff() K { return r.coeff }

// Order returns the ring's monomial order.
func (r *Ring[K]) Order() order.Order { return r.order }

// NumVariables returns the arity of a named (dense) ring. It panics if
// called on a numbered ring, which has no fixed arity.
func (r *Ring[K]) NumVariables() int {
	if !r.dense {
		panic("polyring: NumVariables called on a numbered ring")
	}
	return len(r.Names)
}

// IsNumbered reports whether r is a numbered (sparse, unbounded-arity)
// ring as opposed to a named (dense, fixed-arity) ring.
func (r *Ring[K]) IsNumbered() bool { return !r.dense }

// sameRing reports whether p and q belong to the same *Ring value. It
// compares the pointers only; the rings' representations, orders, names
// and coefficient samples are not compared.
func sameRing[K algebra.Ring[K]](p, q *Polynomial[K]) bool {
	return p.ring == q.ring
}

// PolynomialRing constructs a named polynomial ring over the given base
// coefficient ring, returning the ring and one generator polynomial per
// name, in declaration order. A repeated name fails with
// algebra.ErrDuplicateVariable.
func PolynomialRing[K algebra.Ring[K]](coeffSample K, ord order.Order, names ...string) (*Ring[K], []*Polynomial[K], error) {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return nil, nil, errors.Wrapf(algebra.ErrDuplicateVariable, "variable %q declared twice", n)
		}
		seen[n] = true
	}

	r := &Ring[K]{
		coeff: coeffSample,
		order: ord,
		Names: slices.Clone(names),
		one:   monomial.DenseOne(len(names)),
		dense: true,
	}

	gens := make([]*Polynomial[K], len(names))
	for i, m := range monomial.DenseGenerators(len(names)) {
		gens[i] = r.fromSingleTerm(m, r.coeff.NewOne())
	}
	return r, gens, nil
}

// NumberedPolynomialRing constructs an unbounded family of variables
// prefix1, prefix2, ... over the given base coefficient ring.
func NumberedPolynomialRing[K algebra.Ring[K]](coeffSample K, ord order.Order, prefix string) *Ring[K] {
	return &Ring[K]{
		coeff:  coeffSample,
		order:  ord,
		Prefix: prefix,
		one:    monomial.SparseOne(),
		dense:  false,
	}
}

// Generator returns the i'th variable (1-based) of a numbered ring as a
// polynomial. It panics if called on a named ring; use the generator
// slice PolynomialRing already returned for those.
func (r *Ring[K]) Generator(i int) *Polynomial[K] {
	if r.dense {
		panic("polyring: Generator(i) called on a named ring; use the slice from PolynomialRing")
	}
	return r.fromSingleTerm(monomial.SparseVar(i), r.coeff.NewOne())
}

func (r *Ring[K]) fromSingleTerm(m monomial.Monomial, c K) *Polynomial[K] {
	p := newEmptyPolynomial(r)
	p.setTerm(m, c)
	return p
}

// Term returns the single-term polynomial c*m in r, dropping it to zero
// if c is the ring's zero coefficient.
func (r *Ring[K]) Term(m monomial.Monomial, c K) *Polynomial[K] { return r.fromSingleTerm(m, c) }

// Constant returns c lifted to a constant polynomial of r (identity
// monomial, coefficient c).
func (r *Ring[K]) Constant(c K) *Polynomial[K] { return r.fromSingleTerm(r.one, c) }

// Zero returns the zero polynomial of r.
func (r *Ring[K]) Zero() *Polynomial[K] { return newEmptyPolynomial(r) }

// One returns the multiplicative identity polynomial of r.
func (r *Ring[K]) One() *Polynomial[K] { return r.fromSingleTerm(r.one, r.coeff.NewOne()) }
