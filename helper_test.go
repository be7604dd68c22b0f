package ladder

import (
	"math"
	"testing"
)

// mustProperty is a helper for tests to create a residential property.
func mustProperty(t *testing.T, value float64, kind Kind, terms Terms) Property {
	t.Helper()
	p, err := NewProperty(A(value), kind, false, terms)
	if err != nil {
		t.Fatalf("NewProperty(%v, %s, %+v) failed: %v", value, kind, terms, err)
	}
	return p
}

// referenceFlat returns the £150k flat, 10% deposit, 5% over 40 years.
func referenceFlat(t *testing.T) Property {
	t.Helper()
	return mustProperty(t, 150000, Flat, Terms{TermYears: 40, Deposit: R(0.1), InterestRate: R(0.05)})
}

// assertAmount fails unless got is within tolerance of want.
func assertAmount(t *testing.T, name string, got Amount, want, tolerance float64) {
	t.Helper()
	if math.Abs(got.Float64()-want) > tolerance {
		t.Errorf("%s = %s, want %v (±%v)", name, got, want, tolerance)
	}
}
