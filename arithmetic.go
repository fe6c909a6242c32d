package polyring

import (
	"container/heap"
	"math/big"

	"github.com/pkg/errors"

	"github.com/hairshirt/polyring/algebra"
	"github.com/hairshirt/polyring/monomial"
)

// Add returns p+q by an ordered merge of the two term sequences:
// ascending under the ring order, advancing whichever side holds the
// lesser candidate term and combining on a tie. p and q must share the
// same ring.
func Add[K algebra.Ring[K]](p, q *Polynomial[K]) *Polynomial[K] {
	return merge(p, q, false)
}

// Sub returns p-q by the same ordered merge, negating q's contribution.
func Sub[K algebra.Ring[K]](p, q *Polynomial[K]) *Polynomial[K] {
	return merge(p, q, true)
}

func merge[K algebra.Ring[K]](p, q *Polynomial[K], negateQ bool) *Polynomial[K] {
	if !sameRing(p, q) {
		panic("polyring: Add/Sub requires operands in the same ring; see package promotion")
	}
	r := p.ring
	a, b := p.sortedTerms(), q.sortedTerms()
	out := make([]Term[K], 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		c := r.order(a[i].Monomial, b[j].Monomial)
		switch {
		case c < 0:
			out = append(out, a[i])
			i++
		case c > 0:
			out = append(out, negateTerm(r, b[j], negateQ))
			j++
		default:
			sum := a[i].Coefficient.Add(a[i].Coefficient, signedCoeff(b[j].Coefficient, negateQ))
			if !sum.Equal(sum.NewZero()) {
				out = append(out, Term[K]{Coefficient: sum, Monomial: a[i].Monomial})
			}
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		out = append(out, a[i])
	}
	for ; j < len(b); j++ {
		out = append(out, negateTerm(r, b[j], negateQ))
	}
	return fromSortedUniqueTerms(r, out)
}

func signedCoeff[K algebra.Ring[K]](c K, negate bool) K {
	if !negate {
		return c
	}
	if n, ok := any(c).(algebra.Negator[K]); ok {
		return n.Neg(c)
	}
	return c.Sub(c.NewZero(), c)
}

func negateTerm[K algebra.Ring[K]](r *Ring[K], t Term[K], negate bool) Term[K] {
	if !negate {
		return t
	}
	return Term[K]{Coefficient: signedCoeff(t.Coefficient, true), Monomial: t.Monomial}
}

// corner identifies one cell of the multiplication grid and the product
// monomial it would contribute, used only as the heap's element type.
type corner[K algebra.Ring[K]] struct {
	r, c int
	mon  monomial.Monomial
}

type cornerHeap[K algebra.Ring[K]] struct {
	items []corner[K]
	order func(a, b monomial.Monomial) int
}

func (h *cornerHeap[K]) Len() int { return len(h.items) }
func (h *cornerHeap[K]) Less(i, j int) bool {
	return h.order(h.items[i].mon, h.items[j].mon) < 0
}
func (h *cornerHeap[K]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *cornerHeap[K]) Push(x any)    { h.items = append(h.items, x.(corner[K])) }
func (h *cornerHeap[K]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// Mul returns p*q by a heap-ordered walk of the product grid: its
// minimal corners are tracked in a priority queue, so the output
// emerges already sorted and coalesced without a separate sort pass.
func Mul[K algebra.Ring[K]](p, q *Polynomial[K]) *Polynomial[K] {
	if !sameRing(p, q) {
		panic("polyring: Mul requires operands in the same ring; see package promotion")
	}
	r := p.ring
	if p.IsZero() || q.IsZero() {
		return r.Zero()
	}
	a, b := p.sortedTerms(), q.sortedTerms()
	m, n := len(a), len(b)

	doneRow := make([]int, m) // doneRow[r] = greatest completed col in row r, -1 if none
	doneCol := make([]int, n) // doneCol[c] = greatest completed row in col c, -1 if none
	for i := range doneRow {
		doneRow[i] = -1
	}
	for j := range doneCol {
		doneCol[j] = -1
	}

	h := &cornerHeap[K]{order: r.order}
	heap.Init(h)
	enqueue := func(ri, ci int) {
		heap.Push(h, corner[K]{r: ri, c: ci, mon: monomial.Multiply(a[ri].Monomial, b[ci].Monomial)})
	}
	enqueue(0, 0)

	out := make([]Term[K], 0, m+n)
	for h.Len() > 0 {
		top := heap.Pop(h).(corner[K])
		ri, ci := top.r, top.c
		contribution := a[ri].Coefficient.Mul(a[ri].Coefficient, b[ci].Coefficient)
		if len(out) > 0 && monomial.Equal(out[len(out)-1].Monomial, top.mon) {
			last := out[len(out)-1]
			sum := last.Coefficient.Add(last.Coefficient, contribution)
			if sum.Equal(sum.NewZero()) {
				out = out[:len(out)-1]
			} else {
				out[len(out)-1] = Term[K]{Coefficient: sum, Monomial: top.mon}
			}
		} else if !contribution.Equal(contribution.NewZero()) {
			out = append(out, Term[K]{Coefficient: contribution, Monomial: top.mon})
		}

		doneRow[ri] = ci
		doneCol[ci] = ri

		if ri+1 < m && doneCol[ci] >= ri && (ci == 0 || doneRow[ri+1] >= ci-1) {
			enqueue(ri+1, ci)
		}
		if ci+1 < n && doneRow[ri] >= ci && (ri == 0 || doneCol[ci+1] >= ri-1) {
			enqueue(ri, ci+1)
		}
	}
	return fromSortedUniqueTerms(r, out)
}

// MulScalar returns c*p, termwise scalar multiplication.
func MulScalar[K algebra.Ring[K]](c K, p *Polynomial[K]) *Polynomial[K] {
	r := p.ring
	if c.Equal(c.NewZero()) {
		return r.Zero()
	}
	out := make([]Term[K], 0, p.NTerms())
	for t := range p.Terms() {
		v := c.Mul(c, t.Coefficient)
		if !v.Equal(v.NewZero()) {
			out = append(out, Term[K]{Coefficient: v, Monomial: t.Monomial})
		}
	}
	return fromSortedUniqueTerms(r, out)
}

// Pow returns p^n for n >= 0. The general case enumerates the
// multinomial expansion over p's terms; n=0 and n=1 and a zero base are
// handled as direct special cases, and a single-term base takes the
// monomial/coefficient fast path rather than entering the expansion.
func Pow[K algebra.Ring[K]](p *Polynomial[K], n int) (*Polynomial[K], error) {
	if n < 0 {
		panic("polyring: Pow requires a nonnegative exponent")
	}
	r := p.ring
	if n == 0 {
		return r.One(), nil
	}
	if p.IsZero() {
		return r.Zero(), nil
	}
	if n == 1 {
		return p, nil
	}

	terms := p.sortedTerms()
	if len(terms) == 1 {
		return powSingleTerm(r, terms[0], n), nil
	}
	return powMultinomial(r, terms, n)
}

func powSingleTerm[K algebra.Ring[K]](r *Ring[K], t Term[K], n int) *Polynomial[K] {
	c := t.Coefficient
	for i := 1; i < n; i++ {
		c = c.Mul(c, t.Coefficient)
	}
	m := t.Monomial
	for i := 1; i < n; i++ {
		m = monomial.Multiply(m, t.Monomial)
	}
	return fromSortedUniqueTerms(r, []Term[K]{{Coefficient: c, Monomial: m}})
}

// powMultinomial enumerates the multinomial expansion of terms raised
// to the n'th power. The number of summand compositions, C(n+N-1,N-1),
// grows combinatorially in n and N; numCompositions guards against
// enumerating a count too large to even size the accumulator for, which
// is a distinct concern from a coefficient ring failing to represent a
// multinomial coefficient's value (none of the coefficient rings this
// package ships can fail that way; see DESIGN.md).
func powMultinomial[K algebra.Ring[K]](r *Ring[K], terms []Term[K], n int) (*Polynomial[K], error) {
	N := len(terms)
	numCompositions := new(big.Int).Binomial(int64(n+N-1), int64(N-1))
	if !numCompositions.IsInt64() {
		return nil, errors.Wrapf(algebra.ErrCoefficientOverflow, "exponent %d has too many summands to enumerate", n)
	}

	acc := make(map[string]Term[K], numCompositions.Int64())
	keys := make([]monomial.Monomial, 0, numCompositions.Int64())
	one := r.coeff.NewOne()

	for _, comp := range compositions(n, N) {
		coeff := multinomialCoefficient(n, comp)
		scaled := scaleByInt(one, coeff)
		if scaled.Equal(scaled.NewZero()) {
			continue
		}
		m := r.one
		for k, ik := range comp {
			if ik == 0 {
				continue
			}
			mk := terms[k].Monomial
			for e := 0; e < ik; e++ {
				m = monomial.Multiply(m, mk)
			}
			scaled = scaled.Mul(scaled, powCoeff(terms[k].Coefficient, ik))
		}
		key := m.String()
		if existing, ok := acc[key]; ok {
			sum := existing.Coefficient.Add(existing.Coefficient, scaled)
			if sum.Equal(sum.NewZero()) {
				delete(acc, key)
			} else {
				acc[key] = Term[K]{Coefficient: sum, Monomial: m}
			}
		} else {
			acc[key] = Term[K]{Coefficient: scaled, Monomial: m}
			keys = append(keys, m)
		}
	}

	out := make([]Term[K], 0, len(acc))
	for _, m := range keys {
		if t, ok := acc[m.String()]; ok {
			out = append(out, t)
		}
	}
	insertionSortTerms(out, r.order)
	return fromSortedUniqueTerms(r, out), nil
}

func powCoeff[K algebra.Ring[K]](c K, i int) K {
	if i == 0 {
		return c.NewOne()
	}
	result := c
	for k := 1; k < i; k++ {
		result = result.Mul(result, c)
	}
	return result
}

// compositions enumerates every (i_1,...,i_N) with i_k >= 0 and sum n,
// in odometer order: the first index varies slowest.
func compositions(n, N int) [][]int {
	if N == 0 {
		if n == 0 {
			return [][]int{{}}
		}
		return nil
	}
	if N == 1 {
		return [][]int{{n}}
	}
	var out [][]int
	for i := 0; i <= n; i++ {
		for _, rest := range compositions(n-i, N-1) {
			comp := make([]int, 0, N)
			comp = append(comp, i)
			comp = append(comp, rest...)
			out = append(out, comp)
		}
	}
	return out
}

// multinomialCoefficient computes n! / (i_1! ... i_N!) exactly, via a
// running product of binomial coefficients rather than raw factorials.
func multinomialCoefficient(n int, comp []int) *big.Int {
	result := big.NewInt(1)
	remaining := int64(n)
	for _, ik := range comp {
		result.Mul(result, new(big.Int).Binomial(remaining, int64(ik)))
		remaining -= int64(ik)
	}
	return result
}

// scaleByInt returns the ring element n*one, computed by binary
// doubling (O(log n) Adds) so the conversion never needs a dedicated
// big.Int-to-K coercion capability.
func scaleByInt[K algebra.Ring[K]](one K, n *big.Int) K {
	zero := one.NewZero()
	if n.Sign() == 0 {
		return zero
	}
	result := zero
	addend := one
	for i := 0; i < n.BitLen(); i++ {
		if n.Bit(i) == 1 {
			result = result.Add(result, addend)
		}
		addend = addend.Add(addend, addend)
	}
	return result
}

// Diff returns the partial derivative of p with respect to variable i
// (1-based). Terms with a zero exponent at i are dropped; the surviving
// terms are sorted and coalesced unconditionally, since not every order
// is degree-preserving under differentiation.
func Diff[K algebra.Ring[K]](p *Polynomial[K], i int) *Polynomial[K] {
	r := p.ring
	out := make([]Term[K], 0, p.NTerms())
	one := r.coeff.NewOne()
	for t := range p.Terms() {
		e := t.Monomial.Index(i)
		if e == 0 {
			continue
		}
		m := t.Monomial.Construct(func(j int) monomial.Exp {
			if j == i {
				return e - 1
			}
			return t.Monomial.Index(j)
		}, t.Monomial.NumVariables())
		c := scaleByInt(one, big.NewInt(int64(e)))
		c = c.Mul(c, t.Coefficient)
		if !c.Equal(c.NewZero()) {
			out = append(out, Term[K]{Coefficient: c, Monomial: m})
		}
	}
	insertionSortTerms(out, r.order)
	return fromSortedUniqueTerms(r, out)
}
