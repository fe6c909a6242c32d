// Package promotion combines polynomials that live in related but
// distinct rings: when two polynomials (or a polynomial and a scalar)
// differ in coefficient ring, variable set, or ring shape, promotion
// finds a common super-ring and lifts both operands into it, preserving
// value on every shared variable.
package promotion

import (
	"sort"

	"github.com/hairshirt/polyring"
	"github.com/hairshirt/polyring/algebra"
	"github.com/hairshirt/polyring/monomial"
	"github.com/hairshirt/polyring/order"
)

// Coefficients promotes a polynomial across a change of coefficient
// ring, with the monomial representation and order held fixed: convert
// maps a K coefficient into its L image, and target is the destination
// ring. This is exactly polyring.MapCoefficients, re-exported under the
// promotion vocabulary.
func Coefficients[K algebra.Ring[K], L algebra.Ring[L]](p *polyring.Polynomial[K], convert func(K) L, target *polyring.Ring[L]) *polyring.Polynomial[L] {
	return polyring.MapCoefficients(p, convert, target)
}

// WrapScalar lifts a bare coefficient into ring as the constant
// polynomial c*1.
func WrapScalar[K algebra.Ring[K]](ring *polyring.Ring[K], c K) *polyring.Polynomial[K] {
	return ring.Constant(c)
}

// NamedUnion builds the ring whose variables are the sorted union of
// a's and b's declared names, under degrevlex, and returns the two
// projection functions that lift a polynomial from each source ring
// into the union ring. Projection maps each source variable to its
// position in the union by name; missing variables get exponent zero,
// which is always safe going from a smaller to a larger variable set.
// The opposite, lossy direction (narrowing a ring down to fewer
// variables) is not this function's concern: it is reported by
// monomial.ToDense's own false return, surfaced as
// ErrIncompatibleVariables by whichever caller attempts it.
func NamedUnion[K algebra.Ring[K]](coeffSample K, a, b *polyring.Ring[K]) (*polyring.Ring[K], []*polyring.Polynomial[K], func(*polyring.Polynomial[K]) *polyring.Polynomial[K], func(*polyring.Polynomial[K]) *polyring.Polynomial[K]) {
	union := sortedUnion(a.Names, b.Names)
	ring, gens, err := polyring.PolynomialRing(coeffSample, order.DegRevLex, union...)
	if err != nil {
		panic("promotion: union of two valid name sets produced a duplicate, which cannot happen")
	}

	aIdx := indexOf(union, a.Names)
	bIdx := indexOf(union, b.Names)
	projectA := projector(ring, a, aIdx)
	projectB := projector(ring, b, bIdx)
	return ring, gens, projectA, projectB
}

func sortedUnion(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, n := range a {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, n := range b {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

// indexOf returns, for each name in names, its 1-based position in
// union (0 if not present — which cannot happen here since union is a
// superset of names by construction).
func indexOf(union, names []string) []int {
	pos := make(map[string]int, len(union))
	for i, n := range union {
		pos[n] = i + 1
	}
	idx := make([]int, len(names))
	for i, n := range names {
		idx[i] = pos[n]
	}
	return idx
}

// projector returns a function that lifts a polynomial from src into
// dst, mapping src's i'th named variable to position idx[i-1] in dst.
func projector[K algebra.Ring[K]](dst, src *polyring.Ring[K], idx []int) func(*polyring.Polynomial[K]) *polyring.Polynomial[K] {
	return func(p *polyring.Polynomial[K]) *polyring.Polynomial[K] {
		out := dst.Zero()
		for t := range p.Terms() {
			m := t.Monomial.Construct(func(j int) monomial.Exp {
				for i, target := range idx {
					if target == j {
						return t.Monomial.Index(i + 1)
					}
				}
				return 0
			}, len(dst.Names))
			out = polyring.Add(out, dst.Term(m, t.Coefficient))
		}
		return out
	}
}

// NumberedOuter promotes a named ring combined with a numbered ring
// into a tower with the numbered ring outermost and the named ring as
// its coefficient ring. Since *polyring.Polynomial[K] itself satisfies
// algebra.Ring[*polyring.Polynomial[K]], the tower ring is just an
// ordinary NumberedPolynomialRing over that coefficient type.
func NumberedOuter[K algebra.Ring[K]](named *polyring.Ring[K], ord order.Order, prefix string) *polyring.Ring[*polyring.Polynomial[K]] {
	return polyring.NumberedPolynomialRing[*polyring.Polynomial[K]](named.Zero(), ord, prefix)
}

// LiftNamed is NumberedOuter's companion: it wraps a named-ring
// polynomial as a degree-zero tower element, i.e. a constant with
// respect to every numbered variable.
func LiftNamed[K algebra.Ring[K]](tower *polyring.Ring[*polyring.Polynomial[K]], p *polyring.Polynomial[K]) *polyring.Polynomial[*polyring.Polynomial[K]] {
	return tower.Term(monomial.SparseOne(), p)
}
