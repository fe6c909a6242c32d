package polyring

import (
	"testing"

	"github.com/hairshirt/polyring/coeff"
	"github.com/hairshirt/polyring/order"
)

func newRing(t *testing.T, names ...string) (*Ring[*coeff.Rational], []*Polynomial[*coeff.Rational]) {
	t.Helper()
	r, gens, err := PolynomialRing(coeff.NewRational(0, 1), order.Deglex, names...)
	if err != nil {
		t.Fatalf("PolynomialRing() error: %v", err)
	}
	return r, gens
}

func rat(a, b int64) *coeff.Rational { return coeff.NewRational(a, b) }

func TestPolynomialRingDuplicateName(t *testing.T) {
	_, _, err := PolynomialRing(coeff.NewRational(0, 1), order.Deglex, "x", "x")
	if err == nil {
		t.Fatal("expected an error for a duplicate variable name")
	}
}

func TestZeroAndOne(t *testing.T) {
	r, _ := newRing(t, "x", "y")
	if !r.Zero().IsZero() {
		t.Fatal("Zero() should be zero")
	}
	if r.One().IsZero() || r.One().NTerms() != 1 {
		t.Fatal("One() should be a single nonzero term")
	}
}

func TestAddCommutesAndCoalesces(t *testing.T) {
	r, gens := newRing(t, "x", "y")
	x, y := gens[0], gens[1]

	sum1 := Add(x, y)
	sum2 := Add(y, x)
	if !sum1.Equal(sum2) {
		t.Fatal("addition should be commutative")
	}

	// x + x should coalesce to 2x, a single term.
	doubled := Add(x, x)
	if doubled.NTerms() != 1 || !doubled.LeadingCoefficient().Equal(rat(2, 1)) {
		t.Fatalf("Add(x,x) = %v, want single term 2x", doubled)
	}

	// x - x should cancel to zero.
	if !Sub(x, x).IsZero() {
		t.Fatal("x - x should be zero")
	}
}

func TestMulDistributesAndAssociates(t *testing.T) {
	r, gens := newRing(t, "x", "y", "z")
	x, y, z := gens[0], gens[1], gens[2]
	_ = r

	lhs := Mul(x, Add(y, z))
	rhs := Add(Mul(x, y), Mul(x, z))
	if !lhs.Equal(rhs) {
		t.Fatalf("distributivity failed: %v != %v", lhs, rhs)
	}

	assocLHS := Mul(Mul(x, y), z)
	assocRHS := Mul(x, Mul(y, z))
	if !assocLHS.Equal(assocRHS) {
		t.Fatalf("associativity failed: %v != %v", assocLHS, assocRHS)
	}
}

func TestDifferenceOfSquares(t *testing.T) {
	_, gens := newRing(t, "x", "y")
	x, y := gens[0], gens[1]

	lhs := Mul(Add(x, y), Sub(x, y))
	x2, err := Pow(x, 2)
	if err != nil {
		t.Fatal(err)
	}
	y2, err := Pow(y, 2)
	if err != nil {
		t.Fatal(err)
	}
	rhs := Sub(x2, y2)
	if !lhs.Equal(rhs) {
		t.Fatalf("(x+y)(x-y) = %v, want %v", lhs, rhs)
	}
}

func TestPowSpecialCases(t *testing.T) {
	r, gens := newRing(t, "x")
	x := gens[0]

	p0, err := Pow(x, 0)
	if err != nil || !p0.Equal(r.One()) {
		t.Fatalf("x^0 = %v, want 1", p0)
	}
	p1, err := Pow(x, 1)
	if err != nil || !p1.Equal(x) {
		t.Fatalf("x^1 = %v, want x", p1)
	}
	pz, err := Pow(r.Zero(), 5)
	if err != nil || !pz.IsZero() {
		t.Fatalf("0^5 = %v, want 0", pz)
	}
}

func TestPowCubeExpansion(t *testing.T) {
	_, gens := newRing(t, "x", "y")
	x, y := gens[0], gens[1]

	sum := Add(x, y)
	cube, err := Pow(sum, 3)
	if err != nil {
		t.Fatal(err)
	}

	// Build x^3 + 3x^2y + 3xy^2 + y^3 by hand via repeated Mul/Add.
	x3 := Mul(Mul(x, x), x)
	x2y := MulScalar(rat(3, 1), Mul(Mul(x, x), y))
	xy2 := MulScalar(rat(3, 1), Mul(x, Mul(y, y)))
	y3 := Mul(Mul(y, y), y)
	want := Add(Add(x3, x2y), Add(xy2, y3))

	if !cube.Equal(want) {
		t.Fatalf("(x+y)^3 = %v, want %v", cube, want)
	}

	// Exponent law: p^(m+n) = p^m * p^n.
	p2, _ := Pow(sum, 2)
	p5, _ := Pow(sum, 5)
	lhs := Mul(p2, cube)
	if !lhs.Equal(p5) {
		t.Fatalf("p^2*p^3 = %v, want p^5 = %v", lhs, p5)
	}
}

func TestDiffProductRule(t *testing.T) {
	_, gens := newRing(t, "x", "y")
	x, y := gens[0], gens[1]

	f := Add(x, MulScalar(rat(2, 1), y))
	g := Mul(x, y)
	fg := Mul(f, g)

	lhs := Diff(fg, 1)
	rhs := Add(Mul(Diff(f, 1), g), Mul(f, Diff(g, 1)))
	if !lhs.Equal(rhs) {
		t.Fatalf("product rule failed: %v != %v", lhs, rhs)
	}
}

func TestDiffDropsConstant(t *testing.T) {
	r, gens := newRing(t, "x")
	x := gens[0]
	c := r.Constant(rat(5, 1))
	if !Diff(c, 1).IsZero() {
		t.Fatal("derivative of a constant should be zero")
	}
	x2, _ := Pow(x, 2)
	got := Diff(x2, 1)
	want := MulScalar(rat(2, 1), x)
	if !got.Equal(want) {
		t.Fatalf("d/dx(x^2) = %v, want %v", got, want)
	}
}

func TestTailAndLeadingTerm(t *testing.T) {
	_, gens := newRing(t, "x", "y")
	x, y := gens[0], gens[1]
	p := Add(Add(Mul(x, x), Mul(x, y)), y)
	lt := p.LeadingTerm()
	tail := p.Tail()
	if tail.NTerms() != p.NTerms()-1 {
		t.Fatalf("Tail() has %d terms, want %d", tail.NTerms(), p.NTerms()-1)
	}
	rebuilt := Add(tail, p.Ring().Term(lt.Monomial, lt.Coefficient))
	if !rebuilt.Equal(p) {
		t.Fatal("tail + leading term should reconstruct p")
	}
}

func TestNumberedRing(t *testing.T) {
	r := NumberedPolynomialRing(coeff.NewRational(0, 1), order.Deglex, "x")
	x1 := r.Generator(1)
	x2 := r.Generator(2)
	sum := Add(x1, x2)
	if sum.NTerms() != 2 {
		t.Fatalf("x1+x2 should have 2 terms, got %d", sum.NTerms())
	}
	sq, err := Pow(Add(x1, x2), 2)
	if err != nil {
		t.Fatal(err)
	}
	if sq.NTerms() != 3 {
		t.Fatalf("(x1+x2)^2 should have 3 terms, got %d", sq.NTerms())
	}
}
