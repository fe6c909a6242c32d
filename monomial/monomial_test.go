package monomial

import "testing"

func TestDenseIndexAndDegree(t *testing.T) {
	d := NewDense(2, 0, 3)
	if d.Index(1) != 2 || d.Index(2) != 0 || d.Index(3) != 3 {
		t.Fatalf("unexpected exponents: %v", d)
	}
	if d.TotalDegree() != 5 {
		t.Fatalf("TotalDegree() = %d, want 5", d.TotalDegree())
	}
	if d.NumVariables() != 3 {
		t.Fatalf("NumVariables() = %d, want 3", d.NumVariables())
	}
}

func TestDenseIndexPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range index")
		}
	}()
	NewDense(1, 2).Index(3)
}

func TestSparseIndexNeverFails(t *testing.T) {
	s := NewSparse(map[int]Exp{3: 2})
	if s.Index(1) != 0 || s.Index(100) != 0 {
		t.Fatalf("unstored sparse index should be 0")
	}
	if s.Index(3) != 2 {
		t.Fatalf("stored sparse index wrong")
	}
	if s.NumVariables() != 3 {
		t.Fatalf("NumVariables() = %d, want 3", s.NumVariables())
	}
}

func TestSparseIndexPanicsBelowOne(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for index < 1")
		}
	}()
	NewSparse(nil).Index(0)
}

func TestMultiplyDenseFastPath(t *testing.T) {
	a := NewDense(1, 2)
	b := NewDense(3, 0)
	got := Multiply(a, b)
	want := NewDense(4, 2)
	if !Equal(got, want) {
		t.Fatalf("Multiply() = %v, want %v", got, want)
	}
}

func TestMultiplySparseFastPath(t *testing.T) {
	a := NewSparse(map[int]Exp{1: 1, 3: 2})
	b := NewSparse(map[int]Exp{3: 1, 4: 5})
	got := Multiply(a, b)
	want := NewSparse(map[int]Exp{1: 1, 3: 3, 4: 5})
	if !Equal(got, want) {
		t.Fatalf("Multiply() = %v, want %v", got, want)
	}
}

func TestMultiplyMixedRepresentations(t *testing.T) {
	a := NewDense(1, 0, 2)
	b := NewSparse(map[int]Exp{2: 3})
	got := Multiply(a, b)
	want := NewDense(1, 3, 2)
	if !Equal(got, want) {
		t.Fatalf("Multiply() = %v, want %v", got, want)
	}
}

func TestLCMAndGCD(t *testing.T) {
	a := NewDense(1, 4, 0)
	b := NewDense(3, 2, 1)
	if got := LCM(a, b); !Equal(got, NewDense(3, 4, 1)) {
		t.Fatalf("LCM() = %v", got)
	}
	if got := GCD(a, b); !Equal(got, NewDense(1, 2, 0)) {
		t.Fatalf("GCD() = %v", got)
	}
}

func TestDividesAndTryDivide(t *testing.T) {
	a := NewDense(1, 2)
	b := NewDense(2, 3)
	if !Divides(a, b) {
		t.Fatal("expected a | b")
	}
	q, ok := TryDivide(b, a)
	if !ok || !Equal(q, NewDense(1, 1)) {
		t.Fatalf("TryDivide() = %v, %v", q, ok)
	}
	if _, ok := TryDivide(a, b); ok {
		t.Fatal("expected TryDivide to fail when divisor has larger exponent")
	}
}

func TestLCMMultipliers(t *testing.T) {
	a := NewDense(2, 0)
	b := NewDense(0, 3)
	ma, mb := LCMMultipliers(a, b)
	if !Equal(ma, NewDense(0, 3)) || !Equal(mb, NewDense(2, 0)) {
		t.Fatalf("LCMMultipliers() = %v, %v", ma, mb)
	}
}

func TestIsOne(t *testing.T) {
	if !IsOne(DenseOne(3)) {
		t.Fatal("DenseOne should be identity")
	}
	if !IsOne(SparseOne()) {
		t.Fatal("SparseOne should be identity")
	}
	if IsOne(NewDense(0, 1)) {
		t.Fatal("x2 is not identity")
	}
}

func TestToDense(t *testing.T) {
	s := NewSparse(map[int]Exp{1: 2})
	d, ok := ToDense(3, s)
	if !ok || !Equal(d, NewDense(2, 0, 0)) {
		t.Fatalf("ToDense() = %v, %v", d, ok)
	}
	if _, ok := ToDense(0, s); ok {
		t.Fatal("expected ToDense to fail when a nonzero exponent is dropped")
	}
}

func TestDenseGeneratorsAndString(t *testing.T) {
	gens := DenseGenerators(3)
	if gens[0].String() != "x1" || gens[1].String() != "x2" || gens[2].String() != "x3" {
		t.Fatalf("unexpected generator strings: %v %v %v", gens[0], gens[1], gens[2])
	}
	if DenseOne(2).String() != "1" {
		t.Fatal("identity monomial should render as 1")
	}
}

func TestSparseGeneratorsLazy(t *testing.T) {
	var got []*Sparse
	for v := range SparseGenerators() {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	if len(got) != 3 || got[0].Index(1) != 1 || got[2].Index(3) != 1 {
		t.Fatalf("unexpected generators: %v", got)
	}
}
