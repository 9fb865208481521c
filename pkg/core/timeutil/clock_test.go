package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("08:30")
	require.NoError(t, err)
	assert.Equal(t, NewClock(8, 30), c)
	assert.Equal(t, "08:30", c.String())
}

func TestParseClock_Midnight(t *testing.T) {
	c, err := ParseClock("24:00")
	require.NoError(t, err)
	assert.Equal(t, Clock(MinutesInDay), c)
}

func TestParseClock_Invalid(t *testing.T) {
	cases := []string{"8:30:00", "25:00", "08:60", "nope"}
	for _, s := range cases {
		_, err := ParseClock(s)
		assert.Error(t, err, s)
	}
}

func TestClock_Add(t *testing.T) {
	c := NewClock(9, 0)
	assert.Equal(t, NewClock(9, 30), c.Add(30))
}

func TestClock_BeforeAfter(t *testing.T) {
	a := NewClock(9, 0)
	b := NewClock(10, 0)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		name         string
		aStart, aEnd Clock
		bStart, bEnd Clock
		want         bool
	}{
		{"disjoint", NewClock(9, 0), NewClock(10, 0), NewClock(10, 0), NewClock(11, 0), false},
		{"touching start", NewClock(9, 0), NewClock(10, 0), NewClock(8, 0), NewClock(9, 0), false},
		{"overlapping", NewClock(9, 0), NewClock(10, 0), NewClock(9, 30), NewClock(10, 30), true},
		{"identical", NewClock(9, 0), NewClock(10, 0), NewClock(9, 0), NewClock(10, 0), true},
		{"contained", NewClock(9, 0), NewClock(12, 0), NewClock(10, 0), NewClock(11, 0), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, RangesOverlap(c.aStart, c.aEnd, c.bStart, c.bEnd))
		})
	}
}
