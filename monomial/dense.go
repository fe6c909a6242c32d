package monomial

import (
	"fmt"
	"strings"
)

// Dense is a fixed-arity exponent tuple, indexed 1..N. It caches its
// total degree at construction time so repeated degree queries (the
// common case inside [github.com/hairshirt/polyring/order]) are O(1).
type Dense struct {
	exp []Exp
	deg Exp
}

// NewDense returns a Dense monomial with the given exponents, position i
// (1-based) taking exponent exps[i-1].
func NewDense(exps ...Exp) *Dense {
	d := &Dense{exp: append([]Exp(nil), exps...)}
	for _, e := range d.exp {
		if e < 0 {
			panic("monomial: negative exponent")
		}
		d.deg += e
	}
	return d
}

// DenseOne returns the identity monomial of arity n.
func DenseOne(n int) *Dense {
	return &Dense{exp: make([]Exp, n)}
}

// DenseGenerators returns the n single-variable monomials x_1, ..., x_n
// of arity n.
func DenseGenerators(n int) []*Dense {
	gens := make([]*Dense, n)
	for j := 0; j < n; j++ {
		e := make([]Exp, n)
		e[j] = 1
		gens[j] = &Dense{exp: e, deg: 1}
	}
	return gens
}

// Index returns the exponent at position i. It panics if i is outside
// 1..NumVariables(d); see the [Monomial] doc comment for why that is a
// deliberate, not a defensive, choice.
func (d *Dense) Index(i int) Exp {
	if i < 1 || i > len(d.exp) {
		panic(fmt.Sprintf("monomial: dense index %d out of range [1,%d]", i, len(d.exp)))
	}
	return d.exp[i-1]
}

// NumVariables returns d's declared arity N.
func (d *Dense) NumVariables() int { return len(d.exp) }

// TotalDegree returns the cached sum of d's exponents.
func (d *Dense) TotalDegree() Exp { return d.deg }

// Construct builds a Dense monomial of arity n with exponent f(i) at
// position i.
func (d *Dense) Construct(f func(i int) Exp, n int) Monomial {
	out := make([]Exp, n)
	var deg Exp
	for i := 1; i <= n; i++ {
		e := f(i)
		if e < 0 {
			panic("monomial: negative exponent")
		}
		out[i-1] = e
		deg += e
	}
	return &Dense{exp: out, deg: deg}
}

// String renders d as a product of x_i^e_i factors, e.g. "x1^2*x3".
func (d *Dense) String() string {
	if d.deg == 0 {
		return "1"
	}
	var b strings.Builder
	first := true
	for i, e := range d.exp {
		if e == 0 {
			continue
		}
		if !first {
			b.WriteByte('*')
		}
		first = false
		fmt.Fprintf(&b, "x%d", i+1)
		if e != 1 {
			fmt.Fprintf(&b, "^%d", e)
		}
	}
	return b.String()
}

// ToDense losslessly projects m onto arity n, provided every stored
// exponent of m lies at index <= n; otherwise it reports false, since
// projecting would silently drop a nonzero exponent.
func ToDense(n int, m Monomial) (*Dense, bool) {
	if dm, ok := m.(*Dense); ok && len(dm.exp) == n {
		return &Dense{exp: append([]Exp(nil), dm.exp...), deg: dm.deg}, true
	}
	for i := n + 1; i <= m.NumVariables(); i++ {
		if m.Index(i) != 0 {
			return nil, false
		}
	}
	out := make([]Exp, n)
	var deg Exp
	for i := 1; i <= n; i++ {
		if i <= m.NumVariables() {
			out[i-1] = m.Index(i)
		}
		deg += out[i-1]
	}
	return &Dense{exp: out, deg: deg}, true
}

func mulDense(a, b *Dense) *Dense {
	n := max(len(a.exp), len(b.exp))
	out := make([]Exp, n)
	var deg Exp
	for i := 0; i < n; i++ {
		var av, bv Exp
		if i < len(a.exp) {
			av = a.exp[i]
		}
		if i < len(b.exp) {
			bv = b.exp[i]
		}
		out[i] = av + bv
		deg += out[i]
	}
	return &Dense{exp: out, deg: deg}
}
