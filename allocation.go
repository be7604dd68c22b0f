package ladder

import "fmt"

// savingLTV is the loan-to-value under which all the spare income goes to
// saving for the next property, and above which the next purchase waits.
var savingLTV = R(0.75)

// MonthlyExpenses returns the running costs of owning p for one month:
// maintenance plus the service charge of flats.
func (a Assumptions) MonthlyExpenses(p Property) Amount {
	expenses := p.value.Mul(a.MaintenanceRate).DivInt(12)
	if p.IsFlat() {
		expenses = expenses.Add(a.ServiceCharge.DivInt(12))
	}
	return expenses
}

// AvailableOverpaymentBudget returns what is left of income once p's monthly
// expenses are paid. That budget is split between saving and overpaying.
//
// Expenses above the income are reported as ErrInsufficientIncome.
func (a Assumptions) AvailableOverpaymentBudget(p Property, income Amount) (Amount, error) {
	expenses := a.MonthlyExpenses(p)
	budget := income.Sub(expenses)
	if budget.IsNegative() {
		return Amount{}, fmt.Errorf("%w: income %s does not cover the %s monthly expenses", ErrInsufficientIncome, income, expenses)
	}
	return budget, nil
}

// Allocation is the split of a monthly budget.
type Allocation struct {
	Saving  Amount
	Overpay Amount
}

// AllocateSavingVsOverpayment splits budget between saving for next and
// overpaying the mortgage of current:
//
//   - below 75% loan-to-value, everything is saved;
//   - otherwise, once savings already exceed the cash required to buy next,
//     everything is overpaid;
//   - otherwise overpaymentFraction of the budget (rounded down to the unit)
//     is overpaid and the rest is saved.
func (a Assumptions) AllocateSavingVsOverpayment(budget Amount, current, next Property, savings Amount, overpaymentFraction Ratio) (Allocation, error) {
	if budget.IsNegative() {
		return Allocation{}, fmt.Errorf("%w: negative budget %s", ErrInsufficientIncome, budget)
	}
	if !overpaymentFraction.Between(zeroRatio, oneRatio) {
		return Allocation{}, fmt.Errorf("%w: overpayment fraction %s outside [0%%, 100%%]", ErrInvalidConfiguration, overpaymentFraction)
	}
	switch {
	case current.LTV().LessThan(savingLTV):
		return Allocation{Saving: budget}, nil
	case savings.GreaterThan(a.CashRequired(next, false)):
		return Allocation{Overpay: budget}, nil
	}
	overpay := budget.Mul(overpaymentFraction).Floor()
	return Allocation{Saving: budget.Sub(overpay), Overpay: overpay}, nil
}
