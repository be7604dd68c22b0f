package ladder

import "fmt"

// stampDutyBand is a slice of the value taxed at a single rate.
type stampDutyBand struct {
	upTo      Amount // upper bound of the band, zero for the last one
	firstTime Ratio  // rate for first-time buyers
	other     Ratio  // rate for everyone else
}

var stampDutyBands = []stampDutyBand{
	{upTo: A(250000), firstTime: R(0), other: R(0.03)},
	{upTo: A(925000), firstTime: R(0.05), other: R(0.08)},
	{upTo: A(1500000), firstTime: R(0.10), other: R(0.13)},
	{firstTime: R(0.12), other: R(0.15)},
}

// StampDuty returns the stamp duty owed on a purchase at value.
//
// The tax is progressive: each band taxes the part of the value that falls
// inside it at its own rate, and the total adds up every band reached.
func StampDuty(firstTimeBuyer bool, value Amount) Amount {
	var tax, lower Amount
	for _, b := range stampDutyBands {
		rate := b.other
		if firstTimeBuyer {
			rate = b.firstTime
		}
		upper := value
		if !b.upTo.IsZero() {
			upper = MinAmount(value, b.upTo)
		}
		if upper.LessThanOrEqual(lower) {
			break
		}
		tax = tax.Add(upper.Sub(lower).Mul(rate))
		lower = b.upTo
		if lower.IsZero() {
			break
		}
	}
	return tax
}

// PurchaseCost returns the one-off costs of buying p: fees, moving and stamp
// duty. The deposit is not included.
func (f Fees) PurchaseCost(p Property, firstTimeBuyer, professionalMove bool) Amount {
	moving := f.Moving
	if professionalMove {
		moving = f.ProfessionalMoving
	}
	return f.MortgageArrangement.
		Add(f.Legal).
		Add(f.Survey).
		Add(moving).
		Add(StampDuty(firstTimeBuyer, p.value))
}

// TotalPurchaseCost returns the one-off costs of buying p under the default fees.
func TotalPurchaseCost(p Property, firstTimeBuyer, professionalMove bool) Amount {
	return DefaultAssumptions().Fees.PurchaseCost(p, firstTimeBuyer, professionalMove)
}

// CashRequired returns the savings needed to buy p: its purchase cost plus
// its deposit.
func (a Assumptions) CashRequired(p Property, firstTimeBuyer bool) Amount {
	return a.Fees.PurchaseCost(p, firstTimeBuyer, a.ProfessionalMove).Add(p.mortgage.deposit)
}

// MonthsUntilAffordable returns how many months of saving monthlySaved it takes
// to go from currentSavings to the cash required to buy p.
//
// It returns 0 when p is already affordable, and ErrInsufficientIncome when it
// is not and monthlySaved is not positive.
func (f Fees) MonthsUntilAffordable(currentSavings, monthlySaved Amount, p Property, firstTimeBuyer, professionalMove bool) (int, error) {
	missing := f.PurchaseCost(p, firstTimeBuyer, professionalMove).Add(p.mortgage.deposit).Sub(currentSavings)
	if !missing.IsPositive() {
		return 0, nil
	}
	if !monthlySaved.IsPositive() {
		return 0, fmt.Errorf("%w: saving %s a month never reaches the %s missing", ErrInsufficientIncome, monthlySaved, missing)
	}
	months := missing.value.Div(monthlySaved.value).Ceil()
	return int(months.IntPart()), nil
}
