package ladder

// Letting is the monthly account of a let property.
type Letting struct {
	Revenue    Amount // rent received
	Expenses   Amount // maintenance and service charge
	Management Amount // letting agent fee
	Mortgage   Amount // mortgage payment
	Profit     Amount // revenue minus all the costs
}

// LettingProfit estimates the monthly profit of letting p.
//
// The rent depends on the kind of property. Unless selfManage is set, an
// agent takes ManagementRate of it. The mortgage costs either the interest
// only, or the fixed installment.
func (a Assumptions) LettingProfit(p Property, selfManage, interestOnly bool) Letting {
	l := Letting{Revenue: a.HouseRent}
	if p.IsFlat() {
		l.Revenue = a.FlatRent
	}
	l.Expenses = a.MonthlyExpenses(p)
	if !selfManage {
		l.Management = l.Revenue.Mul(a.ManagementRate)
	}
	if interestOnly {
		l.Mortgage = InterestOnlyMonthlyPayment(p)
	} else {
		l.Mortgage = FixedMonthlyPayment(p)
	}
	l.Profit = l.Revenue.Sub(l.Expenses).Sub(l.Management).Sub(l.Mortgage)
	return l
}
