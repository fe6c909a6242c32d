package monomial

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Sparse is an unbounded exponent vector keyed by positive variable
// index; only nonzero exponents are stored. NumVariables reports the
// largest stored index, and Index returns zero for anything beyond it —
// the representation never fails a query, unlike [Dense].
type Sparse struct {
	exp map[int]Exp
	max int
}

// NewSparse returns a Sparse monomial from a map of variable index
// (>= 1) to exponent. Zero-valued entries are dropped.
func NewSparse(entries map[int]Exp) *Sparse {
	s := &Sparse{exp: make(map[int]Exp, len(entries))}
	for idx, e := range entries {
		if idx < 1 {
			panic("monomial: sparse variable index must be >= 1")
		}
		if e < 0 {
			panic("monomial: negative exponent")
		}
		if e == 0 {
			continue
		}
		s.exp[idx] = e
		if idx > s.max {
			s.max = idx
		}
	}
	return s
}

// SparseOne returns the identity Sparse monomial.
func SparseOne() *Sparse {
	return &Sparse{exp: map[int]Exp{}}
}

// SparseVar returns the single-variable monomial x_i.
func SparseVar(i int) *Sparse {
	return NewSparse(map[int]Exp{i: 1})
}

// SparseGenerators returns the unbounded, lazy sequence of single
// variable monomials x_1, x_2, x_3, .... Consumers range over it and
// break once they have enough variables; nothing is precomputed.
func SparseGenerators() iter.Seq[*Sparse] {
	return func(yield func(*Sparse) bool) {
		for i := 1; ; i++ {
			if !yield(SparseVar(i)) {
				return
			}
		}
	}
}

// Index returns the exponent at position i, or zero if i is not stored.
// It panics only on the out-of-domain request i < 1.
func (s *Sparse) Index(i int) Exp {
	if i < 1 {
		panic("monomial: sparse variable index must be >= 1")
	}
	return s.exp[i]
}

// NumVariables returns the largest stored variable index, or 0 if s is
// the identity monomial.
func (s *Sparse) NumVariables() int { return s.max }

// TotalDegree returns the sum of s's stored exponents.
func (s *Sparse) TotalDegree() Exp {
	var d Exp
	for _, e := range s.exp {
		d += e
	}
	return d
}

// Construct builds a Sparse monomial with exponent f(i) for i in 1..n.
func (s *Sparse) Construct(f func(i int) Exp, n int) Monomial {
	out := make(map[int]Exp)
	max := 0
	for i := 1; i <= n; i++ {
		e := f(i)
		if e < 0 {
			panic("monomial: negative exponent")
		}
		if e != 0 {
			out[i] = e
			max = i
		}
	}
	return &Sparse{exp: out, max: max}
}

// String renders s as a product of x_i^e_i factors in ascending index
// order, e.g. "x1*x3^2".
func (s *Sparse) String() string {
	if len(s.exp) == 0 {
		return "1"
	}
	idxs := make([]int, 0, len(s.exp))
	for i := range s.exp {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)

	var b strings.Builder
	for k, i := range idxs {
		if k > 0 {
			b.WriteByte('*')
		}
		fmt.Fprintf(&b, "x%d", i)
		if e := s.exp[i]; e != 1 {
			fmt.Fprintf(&b, "^%d", e)
		}
	}
	return b.String()
}

func mulSparse(a, b *Sparse) *Sparse {
	out := make(map[int]Exp, len(a.exp)+len(b.exp))
	max := 0
	for i, e := range a.exp {
		out[i] = e
	}
	for i, e := range b.exp {
		out[i] += e
	}
	for i, e := range out {
		if e == 0 {
			delete(out, i)
			continue
		}
		if i > max {
			max = i
		}
	}
	return &Sparse{exp: out, max: max}
}
