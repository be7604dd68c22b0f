package ladder

import (
	"errors"
	"fmt"
)

// Grid is the set of strategies explored by Search.
type Grid struct {
	Income       Amount
	Savings      Amount
	Deposits     []Ratio
	Overpayments []Ratio
	Strategies   []string
}

// OverpaymentRange returns the overpayment fractions from 0 to 1 included,
// every step.
func OverpaymentRange(step Ratio) ([]Ratio, error) {
	if !step.GreaterThan(zeroRatio) || step.GreaterThan(oneRatio) {
		return nil, fmt.Errorf("%w: overpayment step %s outside (0%%, 100%%]", ErrInvalidConfiguration, step)
	}
	var list []Ratio
	for f := zeroRatio; f.LessThanOrEqual(oneRatio); f = f.Add(step) {
		list = append(list, f)
	}
	return list, nil
}

// Candidate is one run of a search.
type Candidate struct {
	Strategy    string
	Deposit     Ratio
	Overpayment Ratio
	Months      int
	NetAssets   Amount
	Err         error // set when the run failed
}

// better reports whether c beats d: fewer months, then more net assets.
func (c Candidate) better(d Candidate) bool {
	if c.Months != d.Months {
		return c.Months < d.Months
	}
	return c.NetAssets.GreaterThan(d.NetAssets)
}

// SearchResult is the outcome of a Search.
type SearchResult struct {
	Best       Candidate
	Found      bool // false when every run failed
	Candidates []Candidate
}

// Search runs every combination of the grid, for each deposit, each strategy
// and each overpayment in that order, and keeps the one reaching the end of
// its strategy first, breaking ties by the highest net assets. On exact ties
// the first one found wins.
//
// Runs that cannot complete, for lack of income or time, are kept as failed
// candidates. Invalid grids are reported before running anything.
func (a Assumptions) Search(g Grid) (SearchResult, error) {
	if len(g.Deposits) == 0 || len(g.Overpayments) == 0 || len(g.Strategies) == 0 {
		return SearchResult{}, fmt.Errorf("%w: empty search grid", ErrInvalidConfiguration)
	}
	for _, code := range g.Strategies {
		if _, err := ParseStrategy(code); err != nil {
			return SearchResult{}, err
		}
	}
	if err := a.Validate(); err != nil {
		return SearchResult{}, err
	}

	var res SearchResult
	for _, deposit := range g.Deposits {
		for _, code := range g.Strategies {
			for _, overpay := range g.Overpayments {
				c := Candidate{Strategy: code, Deposit: deposit, Overpayment: overpay}
				r, err := a.RunStrategy(g.Income, g.Savings, overpay, code, deposit)
				switch {
				case errors.Is(err, ErrInsufficientIncome), errors.Is(err, ErrNonConvergent):
					c.Err = err
				case err != nil:
					return SearchResult{}, err
				default:
					c.Months, c.NetAssets = r.Months, r.NetAssets
					if !res.Found || c.better(res.Best) {
						res.Best, res.Found = c, true
					}
				}
				res.Candidates = append(res.Candidates, c)
			}
		}
	}
	return res, nil
}
