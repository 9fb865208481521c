package timeutil

import (
	"fmt"
	"time"
)

// Date is an absolute calendar date. It stores only the day ordinal
// (truncated to UTC midnight) so that addition and weekday extraction are
// cheap and comparisons are exact.
type Date struct {
	t time.Time
}

// NewDate builds a Date from a year/month/day triple.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("timeutil: invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// Time returns the date as a UTC-midnight time.Time, for interop with
// libraries (such as rrule expansion) that operate on time.Time.
func (d Date) Time() time.Time {
	return d.t
}

// AddDays returns the date n days later (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Weekday returns the ISO weekday with 0=Monday ... 6=Sunday, matching the
// convention fixed at the interface boundary.
func (d Date) Weekday() int {
	// time.Weekday is 0=Sunday..6=Saturday; shift to 0=Monday..6=Sunday.
	return (int(d.t.Weekday()) + 6) % 7
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Equal reports whether d and o denote the same calendar day.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// Compare returns -1, 0, or 1 as d is before, equal to, or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.t.Before(o.t):
		return -1
	case d.t.After(o.t):
		return 1
	default:
		return 0
	}
}

// DaysSince returns the number of days between start and d (d - start).
func (d Date) DaysSince(start Date) int {
	return int(d.t.Sub(start.t).Hours() / 24)
}

// Year, Month and Day of the date.
func (d Date) Year() int        { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int         { return d.t.Day() }

// InRange reports whether d falls within the inclusive range [start, end].
func (d Date) InRange(start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}

// MarshalText implements encoding.TextMarshaler for persistence and config.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
