package ladder

import "testing"

func TestAssumptions_LettingProfit(t *testing.T) {
	a := DefaultAssumptions()
	flat, err := a.BuyToLetOf(Flat)
	if err != nil {
		t.Fatalf("BuyToLetOf(Flat) failed: %v", err)
	}
	if !flat.BuyToLet() || !flat.Principal().Equal(A(112500)) {
		t.Fatalf("BuyToLetOf(Flat) = %v, want a buy-to-let flat with 112500 principal", flat)
	}

	t.Run("managed, interest only", func(t *testing.T) {
		got := a.LettingProfit(flat, false, true)
		if !got.Revenue.Equal(A(1100)) || !got.Expenses.Equal(A(325)) || !got.Management.Equal(A(132)) {
			t.Errorf("LettingProfit() = %+v, want 1100 revenue, 325 expenses, 132 management", got)
		}
		// 112500 × 5.2% / 12
		assertAmount(t, "Mortgage", got.Mortgage, 487.5, 0.0001)
		assertAmount(t, "Profit", got.Profit, 155.5, 0.0001)
	})

	t.Run("self managed, repayment", func(t *testing.T) {
		got := a.LettingProfit(flat, true, false)
		if !got.Management.IsZero() {
			t.Errorf("Management = %s, want 0", got.Management)
		}
		if !got.Mortgage.Equal(FixedMonthlyPayment(flat)) {
			t.Errorf("Mortgage = %s, want the fixed payment %s", got.Mortgage, FixedMonthlyPayment(flat))
		}
		want := A(1100).Sub(A(325)).Sub(got.Mortgage)
		if !got.Profit.Equal(want) {
			t.Errorf("Profit = %s, want %s", got.Profit, want)
		}
	})

	t.Run("house rent", func(t *testing.T) {
		house, err := a.BuyToLetOf(House)
		if err != nil {
			t.Fatalf("BuyToLetOf(House) failed: %v", err)
		}
		if got := a.LettingProfit(house, true, true); !got.Revenue.Equal(A(1200)) {
			t.Errorf("Revenue = %s, want 1200", got.Revenue)
		}
	})
}
