package ladder

import (
	"fmt"
	"strings"
)

// Strategy is a validated strategy code: the kinds of properties to buy, in
// order. "FH" buys a flat, then a house.
type Strategy []Kind

// ParseStrategy parses a strategy code made of F and H letters.
func ParseStrategy(code string) (Strategy, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: empty strategy code", ErrInvalidConfiguration)
	}
	s := make(Strategy, 0, len(code))
	for _, r := range code {
		k, err := ParseKind(r)
		if err != nil {
			return nil, fmt.Errorf("strategy %q: %w", code, err)
		}
		s = append(s, k)
	}
	return s, nil
}

func (s Strategy) String() string {
	var b strings.Builder
	for _, k := range s {
		b.WriteByte(byte(k))
	}
	return b.String()
}

// Result is the outcome of a strategy run.
type Result struct {
	Strategy  Strategy
	Months    int        // months elapsed until the last purchase
	NetAssets Amount     // equity of every property plus the remaining savings
	Savings   Amount     // savings left after the last purchase
	Portfolio []Property // properties in purchase order
	History   History    // one snapshot per month
}

// run is the state of a single strategy run. It is never shared.
type run struct {
	Assumptions
	income   Amount
	fraction Ratio
	deposit  Ratio

	savings   Amount
	month     int
	portfolio []Property
	payment   Amount // installment of the active mortgage
	history   History
}

// RunStrategy simulates buying the properties of strategyCode one after the
// other, starting from currentSavings and earning income every month.
//
// Before the first purchase the income, minus rent, is saved. Afterwards the
// income left after expenses is split each month between saving for the next
// property and overpaying the mortgage of the latest one (see
// AllocateSavingVsOverpayment). The next property is bought as soon as it is
// affordable and the latest mortgage is at most 75% loan-to-value.
//
// overpaymentFraction must be within [0, 1] and depositFraction within (0, 1).
func (a Assumptions) RunStrategy(income, currentSavings Amount, overpaymentFraction Ratio, strategyCode string, depositFraction Ratio) (Result, error) {
	strategy, err := ParseStrategy(strategyCode)
	if err != nil {
		return Result{}, err
	}
	if !overpaymentFraction.Between(zeroRatio, oneRatio) {
		return Result{}, fmt.Errorf("%w: overpayment fraction %s outside [0%%, 100%%]", ErrInvalidConfiguration, overpaymentFraction)
	}
	if !depositFraction.GreaterThan(zeroRatio) || !depositFraction.LessThan(oneRatio) {
		return Result{}, fmt.Errorf("%w: deposit %s outside (0%%, 100%%)", ErrInvalidConfiguration, depositFraction)
	}
	if err := a.Validate(); err != nil {
		return Result{}, err
	}

	r := &run{
		Assumptions: a,
		income:      income,
		fraction:    overpaymentFraction,
		deposit:     depositFraction,
		savings:     currentSavings,
	}
	for i, kind := range strategy {
		if i == 0 {
			err = r.purchaseFirstProperty(kind)
		} else {
			err = r.advanceUntilNextPurchase(kind)
		}
		if err != nil {
			return Result{}, fmt.Errorf("strategy %s, property %d (%s), month %d: %w", strategy, i+1, kind, r.month, err)
		}
	}

	net := r.savings
	for _, p := range r.portfolio {
		net = net.Add(p.Equity())
	}
	return Result{
		Strategy:  strategy,
		Months:    r.month,
		NetAssets: net,
		Savings:   r.savings,
		Portfolio: r.portfolio,
		History:   r.history,
	}, nil
}

// RunStrategy runs a strategy under DefaultAssumptions.
func RunStrategy(income, currentSavings Amount, overpaymentFraction Ratio, strategyCode string, depositFraction Ratio) (Result, error) {
	return DefaultAssumptions().RunStrategy(income, currentSavings, overpaymentFraction, strategyCode, depositFraction)
}

// purchaseFirstProperty saves the income net of rent until the first property
// and its costs are affordable, then buys it.
func (r *run) purchaseFirstProperty(kind Kind) error {
	next, err := r.NewPropertyOf(kind, r.deposit)
	if err != nil {
		return err
	}
	required := r.CashRequired(next, true)
	saved := r.income.Sub(r.Rent)
	if r.savings.LessThan(required) && !saved.IsPositive() {
		return fmt.Errorf("%w: income %s does not cover the %s rent", ErrInsufficientIncome, r.income, r.Rent)
	}
	for r.savings.LessThan(required) {
		if err := r.nextMonth(); err != nil {
			return err
		}
		r.savings = r.savings.Add(saved)
		if err := r.record(); err != nil {
			return err
		}
	}
	r.buy(next, required)
	return nil
}

// advanceUntilNextPurchase services the latest mortgage, saving and overpaying
// month after month, until the next property can be bought.
func (r *run) advanceUntilNextPurchase(kind Kind) error {
	next, err := r.NewPropertyOf(kind, r.deposit)
	if err != nil {
		return err
	}
	required := r.CashRequired(next, false)
	last := len(r.portfolio) - 1
	for r.savings.LessThan(required) || r.portfolio[last].LTV().GreaterThan(savingLTV) {
		active := r.portfolio[last]
		budget, err := r.AvailableOverpaymentBudget(active, r.income)
		if err != nil {
			return err
		}
		if budget.IsZero() && r.savings.LessThan(required) {
			return fmt.Errorf("%w: nothing left to save after the %s monthly expenses", ErrInsufficientIncome, r.MonthlyExpenses(active))
		}
		alloc, err := r.AllocateSavingVsOverpayment(budget, active, next, r.savings, r.fraction)
		if err != nil {
			return err
		}
		if err := r.nextMonth(); err != nil {
			return err
		}
		r.savings = r.savings.Add(alloc.Saving)
		r.portfolio[last] = Step(active, r.payment, alloc.Overpay)
		if err := r.record(); err != nil {
			return err
		}
	}
	r.buy(next, required)
	return nil
}

// buy pays for p and makes it the active property.
func (r *run) buy(p Property, cost Amount) {
	r.savings = r.savings.Sub(cost)
	r.portfolio = append(r.portfolio, p)
	r.payment = FixedMonthlyPayment(p)
}

func (r *run) nextMonth() error {
	if r.month >= r.MaxMonths {
		return fmt.Errorf("%w: no purchase within %d months", ErrNonConvergent, r.MaxMonths)
	}
	r.month++
	return nil
}

func (r *run) record() error { return r.history.Append(r.month, r.savings, r.portfolio) }
