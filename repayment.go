package ladder

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// DefaultMaxIterations is the number of months MonthsToReachLTV tries when
// no explicit limit is given.
const DefaultMaxIterations = 1000

// FixedMonthlyPayment returns the contractual installment of p's mortgage:
// the constant monthly payment that repays the initial principal and its
// interest over the whole term.
//
//	payment = P × r(1+r)^n / ((1+r)^n − 1)
//
// with r the monthly rate and n the number of payments. A zero rate repays
// the principal linearly.
func FixedMonthlyPayment(p Property) Amount {
	m := p.mortgage
	n := m.TermMonths()
	r := m.interestRate.Monthly()
	if r.IsZero() {
		return m.initialPrincipal.DivInt(n)
	}
	// (1+r)^n is the only computation that leaves decimals: exact powers of a
	// 16 digits rate grow to thousands of digits.
	rf := r.Float64()
	g := math.Pow(1+rf, float64(n))
	factor := Ratio{value: decimal.NewFromFloat(rf * g / (g - 1))}
	return m.initialPrincipal.Mul(factor)
}

// InterestOnlyMonthlyPayment returns the monthly payment of an interest-only
// mortgage on p's remaining principal.
func InterestOnlyMonthlyPayment(p Property) Amount {
	return p.mortgage.principal.Mul(p.mortgage.interestRate.Monthly())
}

// MonthlyInterestDue returns this month's interest on p's remaining principal,
// rounded to the unit, exact halves rounding up.
func MonthlyInterestDue(p Property) Amount {
	m := p.mortgage
	// multiply before dividing to keep halves exact: 135000 × 5% / 12 = 562.5
	yearly := m.principal.Mul(m.interestRate)
	return yearly.DivInt(12).Round()
}

// Step repays one month of p's mortgage with fixedPayment plus overpay and
// returns the new state of the property. p itself is never modified.
//
// The part of the payment above the interest due pays the principal down,
// never below zero. A payment that does not cover the interest leaves the
// principal unchanged. Elapsed time stops at the end of the term, a balance
// left by then is repaid by the following payments.
//
// A fully repaid property is returned as is.
func Step(p Property, fixedPayment, overpay Amount) Property {
	m := p.mortgage
	if !m.principal.IsPositive() {
		return p
	}
	paid := fixedPayment.Add(overpay).Sub(MonthlyInterestDue(p))
	if paid.IsNegative() {
		paid = Amount{}
	}
	if paid.GreaterThan(m.principal) {
		paid = m.principal
	}
	m.principal = m.principal.Sub(paid)
	m.advance()
	p.mortgage = m
	return p
}

// MultiStep applies Step for the given number of months, stopping early once
// the mortgage is repaid.
func MultiStep(p Property, months int, fixedPayment, overpay Amount) Property {
	for range months {
		if !p.mortgage.principal.IsPositive() {
			break
		}
		p = Step(p, fixedPayment, overpay)
	}
	return p
}

// MonthsToReachLTV steps p until its loan-to-value is at most target, or its
// mortgage is repaid. It returns the number of months stepped and the
// property at that point.
//
// After maxIterations months without reaching the target, it stops and
// returns ErrNonConvergent along with the last state. A maxIterations of zero
// or less means DefaultMaxIterations.
func MonthsToReachLTV(p Property, target Ratio, fixedPayment, overpay Amount, maxIterations int) (int, Property, error) {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	months := 0
	for p.LTV().GreaterThan(target) && p.mortgage.principal.IsPositive() {
		if months == maxIterations {
			return months, p, fmt.Errorf("%w: LTV still %s after %d months, target %s", ErrNonConvergent, p.LTV(), months, target)
		}
		p = Step(p, fixedPayment, overpay)
		months++
	}
	return months, p, nil
}
