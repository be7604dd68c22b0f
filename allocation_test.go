package ladder

import (
	"errors"
	"testing"
)

func TestAssumptions_MonthlyExpenses(t *testing.T) {
	a := DefaultAssumptions()
	// 1% of 150000 a year, plus 2400 a year of service charge.
	if got := a.MonthlyExpenses(referenceFlat(t)); !got.Equal(A(325)) {
		t.Errorf("MonthlyExpenses(flat) = %s, want 325", got)
	}
	house := mustProperty(t, 240000, House, Terms{TermYears: 40, Deposit: R(0.1), InterestRate: R(0.05)})
	if got := a.MonthlyExpenses(house); !got.Equal(A(200)) {
		t.Errorf("MonthlyExpenses(house) = %s, want 200", got)
	}
}

func TestAssumptions_AvailableOverpaymentBudget(t *testing.T) {
	a := DefaultAssumptions()
	flat := referenceFlat(t)

	got, err := a.AvailableOverpaymentBudget(flat, A(1800))
	if err != nil {
		t.Fatalf("AvailableOverpaymentBudget() failed: %v", err)
	}
	if !got.Equal(A(1475)) {
		t.Errorf("AvailableOverpaymentBudget() = %s, want 1475", got)
	}

	t.Run("no income", func(t *testing.T) {
		before := flat
		_, err := a.AvailableOverpaymentBudget(flat, A(0))
		if !errors.Is(err, ErrInsufficientIncome) {
			t.Errorf("AvailableOverpaymentBudget() error = %v, want ErrInsufficientIncome", err)
		}
		if !flat.Equal(before) {
			t.Error("AvailableOverpaymentBudget() modified the property")
		}
	})

	t.Run("income equal to expenses", func(t *testing.T) {
		got, err := a.AvailableOverpaymentBudget(flat, A(325))
		if err != nil || !got.IsZero() {
			t.Errorf("AvailableOverpaymentBudget() = %s, %v, want 0", got, err)
		}
	})
}

func TestAssumptions_AllocateSavingVsOverpayment(t *testing.T) {
	a := DefaultAssumptions()
	next := referenceFlat(t) // 21900 required for a repeat buyer
	budget := A(1475)

	testCases := []struct {
		name        string
		deposit     float64 // of the current property
		savings     float64
		fraction    float64
		wantSaving  float64
		wantOverpay float64
	}{
		{"below 75% LTV saves everything", 0.3, 0, 0.75, 1475, 0},
		{"below 75% LTV saves even when affordable", 0.3, 50000, 0.75, 1475, 0},
		{"affordable overpays everything", 0.1, 30000, 0.75, 0, 1475},
		{"exactly affordable splits", 0.1, 21900, 0.75, 369, 1106},
		{"split rounds the overpayment down", 0.1, 400, 0.75, 369, 1106},
		{"exactly 75% LTV splits", 0.25, 0, 0.5, 738, 737},
		{"no overpayment", 0.1, 400, 0, 1475, 0},
		{"full overpayment", 0.1, 400, 1, 0, 1475},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			current := mustProperty(t, 150000, Flat, Terms{TermYears: 40, Deposit: R(tc.deposit), InterestRate: R(0.05)})
			got, err := a.AllocateSavingVsOverpayment(budget, current, next, A(tc.savings), R(tc.fraction))
			if err != nil {
				t.Fatalf("AllocateSavingVsOverpayment() failed: %v", err)
			}
			if !got.Saving.Equal(A(tc.wantSaving)) || !got.Overpay.Equal(A(tc.wantOverpay)) {
				t.Errorf("AllocateSavingVsOverpayment() = saving %s overpay %s, want %v and %v", got.Saving, got.Overpay, tc.wantSaving, tc.wantOverpay)
			}
			if sum := got.Saving.Add(got.Overpay); !sum.Equal(budget) {
				t.Errorf("allocation adds up to %s, want %s", sum, budget)
			}
		})
	}

	t.Run("invalid fraction", func(t *testing.T) {
		_, err := a.AllocateSavingVsOverpayment(budget, next, next, A(0), R(1.5))
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("AllocateSavingVsOverpayment() error = %v, want ErrInvalidConfiguration", err)
		}
	})

	t.Run("negative budget", func(t *testing.T) {
		_, err := a.AllocateSavingVsOverpayment(A(-1), next, next, A(0), R(0.5))
		if !errors.Is(err, ErrInsufficientIncome) {
			t.Errorf("AllocateSavingVsOverpayment() error = %v, want ErrInsufficientIncome", err)
		}
	})
}
