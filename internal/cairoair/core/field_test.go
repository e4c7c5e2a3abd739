package core

import (
	"math/big"
	"testing"
)

func TestNewField(t *testing.T) {
	if _, err := NewField(big.NewInt(2)); err == nil {
		t.Error("expected error for modulus <= 2")
	}
	if _, err := NewField(big.NewInt(1)); err == nil {
		t.Error("expected error for modulus <= 2")
	}
	f, err := NewField(big.NewInt(101))
	if err != nil {
		t.Fatalf("NewField(101) failed: %v", err)
	}
	if f.Modulus().Cmp(big.NewInt(101)) != 0 {
		t.Errorf("Modulus() = %v, want 101", f.Modulus())
	}
}

func TestNewFieldFromHex(t *testing.T) {
	f, err := NewFieldFromHex("0x65")
	if err != nil {
		t.Fatalf("NewFieldFromHex(0x65) failed: %v", err)
	}
	if f.Modulus().Cmp(big.NewInt(101)) != 0 {
		t.Errorf("Modulus() = %v, want 101", f.Modulus())
	}

	f2, err := NewFieldFromHex("65")
	if err != nil {
		t.Fatalf("NewFieldFromHex(65) failed: %v", err)
	}
	if !f.Equals(f2) {
		t.Error("hex parsing with and without 0x prefix should agree")
	}

	if _, err := NewFieldFromHex("not-hex"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestFieldArithmetic(t *testing.T) {
	f, err := NewField(big.NewInt(101))
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}

	a := f.NewElementFromInt64(60)
	b := f.NewElementFromInt64(70)

	if sum := a.Add(b); sum.Big().Cmp(big.NewInt(29)) != 0 {
		t.Errorf("60+70 mod 101 = %v, want 29", sum.Big())
	}
	if diff := a.Sub(b); diff.Big().Cmp(big.NewInt(91)) != 0 {
		t.Errorf("60-70 mod 101 = %v, want 91", diff.Big())
	}
	if prod := a.Mul(b); prod.Big().Cmp(big.NewInt(59)) != 0 {
		t.Errorf("60*70 mod 101 = %v, want 59", prod.Big())
	}
	if neg := a.Neg(); neg.Big().Cmp(big.NewInt(41)) != 0 {
		t.Errorf("-60 mod 101 = %v, want 41", neg.Big())
	}
}

func TestFieldInv(t *testing.T) {
	f, err := NewField(big.NewInt(101))
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}

	a := f.NewElementFromInt64(60)
	inv, err := a.Inv()
	if err != nil {
		t.Fatalf("Inv() failed: %v", err)
	}
	if prod := a.Mul(inv); !prod.IsOne() {
		t.Errorf("a * a^-1 = %v, want 1", prod.Big())
	}

	if _, err := f.Zero().Inv(); err == nil {
		t.Error("expected error inverting zero")
	}
}

func TestFieldDiv(t *testing.T) {
	f, err := NewField(big.NewInt(101))
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}

	a := f.NewElementFromInt64(60)
	b := f.NewElementFromInt64(70)

	quotient, err := a.Div(b)
	if err != nil {
		t.Fatalf("Div() failed: %v", err)
	}
	if product := quotient.Mul(b); !product.Equal(a) {
		t.Errorf("(a/b)*b = %v, want %v", product.Big(), a.Big())
	}

	if _, err := a.Div(f.Zero()); err == nil {
		t.Error("expected error dividing by zero")
	}
}

func TestFieldExp(t *testing.T) {
	f, err := NewField(big.NewInt(101))
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}

	a := f.NewElementFromInt64(5)
	if got := a.ExpUint64(4); got.Big().Cmp(big.NewInt(625%101)) != 0 {
		t.Errorf("5^4 mod 101 = %v, want %v", got.Big(), 625%101)
	}
	if got := a.Square(); !got.Equal(a.Mul(a)) {
		t.Error("Square() should equal self-multiplication")
	}
}

func TestFieldEqualAndZeroOne(t *testing.T) {
	f, err := NewField(big.NewInt(101))
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}

	if !f.Zero().IsZero() {
		t.Error("Zero() should report IsZero() true")
	}
	if !f.One().IsOne() {
		t.Error("One() should report IsOne() true")
	}
	if f.Zero().Equal(f.One()) {
		t.Error("Zero should not equal One")
	}

	other, err := NewField(big.NewInt(103))
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}
	if f.Zero().Equal(other.Zero()) {
		t.Error("elements from different fields should never be equal")
	}
}

func TestFieldMismatchPanics(t *testing.T) {
	f1, _ := NewField(big.NewInt(101))
	f2, _ := NewField(big.NewInt(103))
	a := f1.One()
	b := f2.One()

	assertPanics(t, "Add", func() { a.Add(b) })
	assertPanics(t, "Sub", func() { a.Sub(b) })
	assertPanics(t, "Mul", func() { a.Mul(b) })
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s across fields should panic", name)
		}
	}()
	fn()
}

func TestStark252Modulus(t *testing.T) {
	// 2^251 + 17*2^192 + 1
	expected := new(big.Int).Lsh(big.NewInt(1), 251)
	term := new(big.Int).Lsh(big.NewInt(17), 192)
	expected.Add(expected, term)
	expected.Add(expected, big.NewInt(1))

	if Stark252Modulus.Cmp(expected) != 0 {
		t.Errorf("Stark252Modulus = %v, want %v", Stark252Modulus, expected)
	}
	if DefaultPrimeField.Modulus().Cmp(Stark252Modulus) != 0 {
		t.Error("DefaultPrimeField should use Stark252Modulus")
	}
}

func TestRandomElement(t *testing.T) {
	f, err := NewField(big.NewInt(101))
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}
	e, err := f.RandomElement()
	if err != nil {
		t.Fatalf("RandomElement failed: %v", err)
	}
	if e.Big().Cmp(big.NewInt(0)) < 0 || e.Big().Cmp(big.NewInt(101)) >= 0 {
		t.Errorf("random element %v out of field bounds", e.Big())
	}
}
