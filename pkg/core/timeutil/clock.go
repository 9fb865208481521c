// Package timeutil provides the interval primitives shared by the care
// scheduler: clock-of-day arithmetic, absolute calendar dates, and half-open
// overlap checks. Nothing here depends on the scheduling domain.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a time of day expressed as minutes since midnight.
type Clock int

// MinutesInDay bounds the range a Clock may validly take (00:00 to 24:00).
const MinutesInDay = 24 * 60

// NewClock builds a Clock from an hour and minute.
func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock parses an "HH:MM" 24-hour clock string.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("timeutil: invalid clock %q, want HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("timeutil: invalid clock hour %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("timeutil: invalid clock minute %q: %w", s, err)
	}
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("timeutil: clock %q out of range", s)
	}
	return NewClock(hour, minute), nil
}

// String renders the clock as "HH:MM".
func (c Clock) String() string {
	h := int(c) / 60
	m := int(c) % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Add returns the clock advanced by the given number of minutes.
func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// Before reports whether c is strictly before o.
func (c Clock) Before(o Clock) bool { return c < o }

// After reports whether c is strictly after o.
func (c Clock) After(o Clock) bool { return c > o }

// RangesOverlap reports whether half-open ranges [aStart,aEnd) and
// [bStart,bEnd) overlap: aStart < bEnd && bStart < aEnd.
func RangesOverlap(aStart, aEnd, bStart, bEnd Clock) bool {
	return aStart < bEnd && bStart < aEnd
}
