package util

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateInUsesLocation(t *testing.T) {
	ts := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*3600)

	assert.Equal(t, civil.Date{Year: 2024, Month: 3, Day: 1}, DateIn(ts, time.UTC))
	assert.Equal(t, civil.Date{Year: 2024, Month: 3, Day: 2}, DateIn(ts, tokyo))
}

func TestDaysBetweenAcrossMonth(t *testing.T) {
	from := civil.Date{Year: 2024, Month: 2, Day: 27}
	to := civil.Date{Year: 2024, Month: 3, Day: 2}
	assert.Equal(t, 4, DaysBetween(from, to))
	assert.Equal(t, -4, DaysBetween(to, from))
}

func TestMidnightIsStartOfLocalDay(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	d := civil.Date{Year: 2024, Month: 1, Day: 5}

	m := Midnight(d, tokyo)
	assert.Equal(t, "2024-01-05", m.Format(DateFormat))
	assert.Equal(t, time.Date(2024, 1, 4, 15, 0, 0, 0, time.UTC), m.UTC())
	require.Equal(t, d, DateIn(m, tokyo))
	assert.Equal(t, d.AddDays(-1), DateIn(m.Add(-time.Nanosecond), tokyo))
}
