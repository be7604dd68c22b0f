// Package date labels simulated months with calendar months.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

const readMonthFormat = "2006-1" // Permissive read format (allows single-digit month).

// MonthFormat is the format used to represent months as strings, in ISO-8601.
const MonthFormat = "2006-01" // write format

// Month is a calendar month.
type Month struct {
	y int
	m time.Month
}

// time returns a time.Time that is a canonical representation of the month
// (first day at midnight UTC).
func (d Month) time() time.Time { return time.Date(d.y, d.m, 1, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Month: New(2025, 13) is January 2026.
func New(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{t.Year(), t.Month()}
}

// Current returns the current month.
func Current() Month {
	now := time.Now()
	return New(now.Year(), now.Month())
}

// Year returns the year of the month.
func (d Month) Year() int { return d.y }

// Month returns the month of the year.
func (d Month) Month() time.Month { return d.m }

// IsZero reports whether d is the zero Month.
func (d Month) IsZero() bool { return d == Month{} }

// Add returns the month n months after d.
func (d Month) Add(n int) Month { return New(d.y, d.m+time.Month(n)) }

// Before reports whether the month d is before x.
func (d Month) Before(x Month) bool { return d.time().Before(x.time()) }

// After reports whether the month d is after x.
func (d Month) After(x Month) bool { return d.time().After(x.time()) }

// Sub returns the number of months from x to d.
func (d Month) Sub(x Month) int { return (d.y-x.y)*12 + int(d.m-x.m) }

// String formats the month in its standard format.
func (d Month) String() string { return d.time().Format(MonthFormat) }

// Parse parses a Month from a string. It is lenient and accepts "2025-7".
func Parse(str string) (Month, error) {
	on, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return New(on.Year(), on.Month()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Month {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a month from a json string.
func (j *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.String())
}

// check that a Month pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)
