// Package renderer turns simulation results into markdown reports.
package renderer

import (
	"fmt"

	"github.com/etnz/ladder"
	"github.com/etnz/ladder/date"
)

// Options holds configuration for rendering reports.
type Options struct {
	Currency string     // ISO code used to format amounts, like "GBP"
	Start    date.Month // calendar month of the first simulated month, zero to show month numbers only
	Every    int        // history sampling in months, 0 or 1 shows every month
}

func (o Options) money(a ladder.Amount) string {
	if o.Currency == "" {
		return a.String()
	}
	return a.Format(o.Currency)
}

// label names the n-th simulated month, counting from 1.
func (o Options) label(n int) string {
	if o.Start.IsZero() {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d (%s)", n, o.Start.Add(n-1))
}

// sampled reports whether the n-th of total months is shown in a history table.
// The last month is always shown.
func (o Options) sampled(n, total int) bool {
	return o.Every <= 1 || n%o.Every == 0 || n == total
}
