package ladder

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ratio is a dimensionless fraction: a deposit share, a loan-to-value, an
// annual interest rate or an overpayment split. 0.05 means 5%.
type Ratio struct {
	value decimal.Decimal
}

// R returns the Ratio for value.
func R[T numeric](value T) Ratio { return Ratio{value: newDecimal(value)} }

// ParseRatio parses "0.75" or "75%".
func ParseRatio(s string) (Ratio, error) {
	percent := len(s) > 0 && s[len(s)-1] == '%'
	if percent {
		s = s[:len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Ratio{}, fmt.Errorf("invalid ratio %q: %w", s, err)
	}
	if percent {
		d = d.Shift(-2)
	}
	return Ratio{value: d}, nil
}

var (
	zeroRatio = Ratio{}
	oneRatio  = R(1)
)

func (r Ratio) Equal(q Ratio) bool              { return r.value.Equal(q.value) }
func (r Ratio) IsZero() bool                    { return r.value.IsZero() }
func (r Ratio) IsNegative() bool                { return r.value.IsNegative() }
func (r Ratio) LessThan(q Ratio) bool           { return r.value.LessThan(q.value) }
func (r Ratio) LessThanOrEqual(q Ratio) bool    { return r.value.LessThanOrEqual(q.value) }
func (r Ratio) GreaterThan(q Ratio) bool        { return r.value.GreaterThan(q.value) }
func (r Ratio) GreaterThanOrEqual(q Ratio) bool { return r.value.GreaterThanOrEqual(q.value) }
func (r Ratio) Add(q Ratio) Ratio               { return Ratio{value: r.value.Add(q.value)} }
func (r Ratio) Sub(q Ratio) Ratio               { return Ratio{value: r.value.Sub(q.value)} }

// Round rounds to the given number of decimal places.
func (r Ratio) Round(places int32) Ratio { return Ratio{value: r.value.Round(places)} }

// Monthly returns the monthly share of an annual ratio.
func (r Ratio) Monthly() Ratio { return Ratio{value: r.value.Div(decimal.NewFromInt(12))} }

// Between reports whether lo <= r <= hi.
func (r Ratio) Between(lo, hi Ratio) bool {
	return r.GreaterThanOrEqual(lo) && r.LessThanOrEqual(hi)
}

// Float64 returns the nearest float64.
func (r Ratio) Float64() float64 { return r.value.InexactFloat64() }

// String returns the ratio as a percentage, like "75.00%".
func (r Ratio) String() string { return r.value.Shift(2).StringFixed(2) + "%" }

// MarshalJSON writes the ratio as a JSON number.
func (r Ratio) MarshalJSON() ([]byte, error) { return []byte(r.value.String()), nil }

// UnmarshalJSON reads a JSON number or a quoted decimal.
func (r *Ratio) UnmarshalJSON(b []byte) error { return r.value.UnmarshalJSON(b) }
