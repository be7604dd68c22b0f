package ladder

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// numeric lists the Go types accepted by the A and R factories.
type numeric interface {
	float32 | float64 | int | int32 | int64 | decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T numeric](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Amount is an amount of money, in plain units.
//
// Amounts carry no currency: the simulation is currency agnostic and only
// reports attach a currency code for display.
type Amount struct {
	value decimal.Decimal
}

// A returns the Amount for value.
func A[T numeric](value T) Amount { return Amount{value: newDecimal(value)} }

// ParseAmount parses a decimal string like "1234.50".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: d}, nil
}

func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) IsPositive() bool                 { return a.value.IsPositive() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) LessThanOrEqual(b Amount) bool    { return a.value.LessThanOrEqual(b.value) }
func (a Amount) GreaterThan(b Amount) bool        { return a.value.GreaterThan(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }
func (a Amount) Add(b Amount) Amount              { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount              { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount                      { return Amount{value: a.value.Neg()} }
func (a Amount) Mul(r Ratio) Amount               { return Amount{value: a.value.Mul(r.value)} }
func (a Amount) MulInt(n int) Amount              { return Amount{value: a.value.Mul(decimal.NewFromInt(int64(n)))} }
func (a Amount) DivInt(n int) Amount              { return Amount{value: a.value.Div(decimal.NewFromInt(int64(n)))} }

// Ratio returns a/b. b must not be zero.
func (a Amount) Ratio(b Amount) Ratio { return Ratio{value: a.value.Div(b.value)} }

// Round rounds to the nearest unit, exact halves away from zero.
func (a Amount) Round() Amount { return Amount{value: a.value.Round(0)} }

// Floor rounds down to the unit.
func (a Amount) Floor() Amount { return Amount{value: a.value.Floor()} }

// Truncate drops the fractional part.
func (a Amount) Truncate() Amount { return Amount{value: a.value.Truncate(0)} }

// Ceil rounds up to the unit.
func (a Amount) Ceil() Amount { return Amount{value: a.value.Ceil()} }

// IntPart returns the integer part of the amount.
func (a Amount) IntPart() int64 { return a.value.IntPart() }

// Float64 returns the nearest float64. Only reports should need it.
func (a Amount) Float64() float64 { return a.value.InexactFloat64() }

// MinAmount returns the smallest of a and b.
func MinAmount(a, b Amount) Amount {
	if b.LessThan(a) {
		return b
	}
	return a
}

// String returns the amount with two decimals.
func (a Amount) String() string { return a.value.StringFixed(2) }

// Format formats the amount in the given ISO currency code, like "£1,234.50".
// Unknown codes fall back to String.
func (a Amount) Format(code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return a.String()
	}
	fraction := int32(cur.Fraction)
	return cur.Formatter().Format(a.value.Shift(fraction).Round(0).IntPart())
}

// MarshalJSON writes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) { return []byte(a.value.String()), nil }

// UnmarshalJSON reads a JSON number or a quoted decimal.
func (a *Amount) UnmarshalJSON(b []byte) error { return a.value.UnmarshalJSON(b) }
