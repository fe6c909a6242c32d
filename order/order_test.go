package order

import (
	"testing"

	"github.com/hairshirt/polyring/monomial"
)

func TestLex(t *testing.T) {
	tests := []struct {
		a, b *monomial.Dense
		want int
	}{
		{monomial.NewDense(2, 0), monomial.NewDense(1, 9), 1},
		{monomial.NewDense(1, 9), monomial.NewDense(2, 0), -1},
		{monomial.NewDense(1, 1), monomial.NewDense(1, 1), 0},
	}
	for _, tt := range tests {
		if got := Lex(tt.a, tt.b); got != tt.want {
			t.Errorf("Lex(%v,%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDeglex(t *testing.T) {
	tests := []struct {
		a, b *monomial.Dense
		want int
	}{
		{monomial.NewDense(2, 2, 2), monomial.NewDense(2, 2, 1), 1},
		{monomial.NewDense(2, 2, 2), monomial.NewDense(2, 3, 1), -1},
		{monomial.NewDense(2, 2, 2), monomial.NewDense(1, 1, 1), 1},
	}
	for _, tt := range tests {
		if got := Deglex(tt.a, tt.b); got != tt.want {
			t.Errorf("Deglex(%v,%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDegRevLex(t *testing.T) {
	tests := []struct {
		a, b *monomial.Dense
		want int
	}{
		// same degree, tie broken by smaller exponent at highest differing
		// index being the greater monomial.
		{monomial.NewDense(1, 1, 0), monomial.NewDense(1, 0, 1), 1},
		{monomial.NewDense(0, 1, 1), monomial.NewDense(1, 1, 0), -1},
		{monomial.NewDense(3, 0, 0), monomial.NewDense(0, 0, 1), 1},
	}
	for _, tt := range tests {
		if got := DegRevLex(tt.a, tt.b); got != tt.want {
			t.Errorf("DegRevLex(%v,%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNamed(t *testing.T) {
	if _, ok := Named("lex"); !ok {
		t.Fatal("expected lex to be recognised")
	}
	if _, ok := Named("deglex"); !ok {
		t.Fatal("expected deglex to be recognised")
	}
	if _, ok := Named("degrevlex"); !ok {
		t.Fatal("expected degrevlex to be recognised")
	}
	if _, ok := Named("bogus"); ok {
		t.Fatal("expected bogus order name to be rejected")
	}
}

func TestAdmissible(t *testing.T) {
	one := monomial.DenseOne(2)
	sample := []monomial.Monomial{
		one,
		monomial.NewDense(1, 0),
		monomial.NewDense(0, 1),
		monomial.NewDense(2, 0),
		monomial.NewDense(1, 1),
	}
	for name, o := range map[string]Order{"lex": Lex, "deglex": Deglex, "degrevlex": DegRevLex} {
		if !Admissible(o, one, sample) {
			t.Errorf("%s: expected admissible order", name)
		}
	}
}
