package coeff

import "testing"

func TestIntegerArithmetic(t *testing.T) {
	a, b := NewInteger(6), NewInteger(4)
	if got := a.Add(a, b); got.String() != "10" {
		t.Errorf("Add() = %s, want 10", got)
	}
	if got := a.Mul(a, b); got.String() != "24" {
		t.Errorf("Mul() = %s, want 24", got)
	}
	if got := a.GCD(b); got.String() != "2" {
		t.Errorf("GCD() = %s, want 2", got)
	}
	q, ok := a.TryDivide(NewInteger(8), NewInteger(4))
	if !ok || q.String() != "2" {
		t.Errorf("TryDivide(8,4) = %s, %v, want 2, true", q, ok)
	}
	if _, ok := a.TryDivide(NewInteger(7), NewInteger(2)); ok {
		t.Error("TryDivide(7,2) should fail: not exact")
	}
}

func TestIntegerEqualAndNeg(t *testing.T) {
	a := NewInteger(-3)
	if !a.Equal(a.Neg(NewInteger(3))) {
		t.Error("Neg(3) should equal -3")
	}
	if !NewInteger(0).Equal(NewInteger(0).NewZero()) {
		t.Error("NewZero should equal 0")
	}
}

func TestRationalArithmetic(t *testing.T) {
	a, b := NewRational(1, 2), NewRational(1, 3)
	if got := a.Add(a, b); got.String() != "5/6" {
		t.Errorf("Add() = %s, want 5/6", got)
	}
	q, ok := a.TryDivide(NewRational(1, 2), NewRational(1, 4))
	if !ok || q.String() != "2" {
		t.Errorf("TryDivide() = %s, %v, want 2, true", q, ok)
	}
	if _, ok := a.TryDivide(NewRational(1, 2), NewRational(0, 1)); ok {
		t.Error("division by zero should fail")
	}
}

func TestFloatArithmetic(t *testing.T) {
	a, b := NewFloat(1.5), NewFloat(2.5)
	sum := a.Add(a, b)
	f, _ := sum.Float64()
	if f != 4 {
		t.Errorf("Add() = %v, want 4", f)
	}
	q, ok := a.TryDivide(NewFloat(6), NewFloat(3))
	if !ok {
		t.Fatal("TryDivide should succeed for nonzero divisor")
	}
	qf, _ := q.Float64()
	if qf != 2 {
		t.Errorf("TryDivide() = %v, want 2", qf)
	}
	if _, ok := a.TryDivide(NewFloat(1), NewFloat(0)); ok {
		t.Error("division by zero should fail")
	}
}

func TestGFArithmetic(t *testing.T) {
	x := NewGF(7, 5)
	y := NewGF(7, 4)
	if got := x.Add(x, y); got.String() != "2" { // 5+4=9 mod 7 = 2
		t.Errorf("Add() = %s, want 2", got)
	}
	if got := x.Mul(x, y); got.String() != "6" { // 5*4=20 mod 7 = 6
		t.Errorf("Mul() = %s, want 6", got)
	}
	inv, ok := x.TryDivide(x.NewOne(), NewGF(7, 3))
	if !ok {
		t.Fatal("expected TryDivide to succeed in a field")
	}
	// 3*5=15=1 mod 7, so 1/3 = 5.
	if inv.String() != "5" {
		t.Errorf("TryDivide(1,3) = %s, want 5", inv)
	}
	if _, ok := x.TryDivide(x.NewOne(), NewGF(7, 0)); ok {
		t.Error("division by zero should fail")
	}
}
