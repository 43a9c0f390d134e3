package repository

import (
	"testing"

	"YenDong/internal/domain/models"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(d civil.Date, rate string) models.RateObservation {
	return models.RateObservation{Date: d, Rate: decimal.RequireFromString(rate), Source: "test"}
}

func TestMemRateSeriesKeepsDatesSorted(t *testing.T) {
	s := NewMemRateSeries()
	d := civil.Date{Year: 2024, Month: 1, Day: 10}

	assert.True(t, s.Append(obs(d, "172")))
	assert.True(t, s.Append(obs(d.AddDays(-2), "170")))
	assert.True(t, s.Append(obs(d.AddDays(-1), "171")))

	tail := s.Tail(10)
	require.Len(t, tail, 3)
	assert.Equal(t, d.AddDays(-2), tail[0].Date)
	assert.Equal(t, d.AddDays(-1), tail[1].Date)
	assert.Equal(t, d, tail[2].Date)

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, d, latest.Date)
}

func TestMemRateSeriesReplacesSameDate(t *testing.T) {
	s := NewMemRateSeries()
	d := civil.Date{Year: 2024, Month: 1, Day: 10}

	require.True(t, s.Append(obs(d, "172")))
	assert.False(t, s.Append(obs(d, "173.5")))
	assert.Len(t, s.Tail(10), 1)

	latest, _ := s.Latest()
	assert.Equal(t, "173.5", latest.Rate.String())
}

func TestMemRateSeriesTailIsCountBasedSuffix(t *testing.T) {
	s := NewMemRateSeries()
	start := civil.Date{Year: 2024, Month: 1, Day: 1}
	for i := 0; i < 31; i++ {
		s.Append(obs(start.AddDays(i), "172"))
	}

	tail := s.Tail(7)
	require.Len(t, tail, 7)
	assert.Equal(t, start.AddDays(24), tail[0].Date)
	assert.Equal(t, start.AddDays(30), tail[6].Date)

	assert.Len(t, s.Tail(100), 31)
	assert.Empty(t, s.Tail(0))
	assert.Empty(t, s.Tail(-3))
}

func TestMemRateSeriesEmpty(t *testing.T) {
	s := NewMemRateSeries()
	_, ok := s.Latest()
	assert.False(t, ok)
	assert.Zero(t, s.Version())
	assert.Empty(t, s.Tail(7))
}

func TestMemRateSeriesVersionBumpsOnEveryAppend(t *testing.T) {
	s := NewMemRateSeries()
	d := civil.Date{Year: 2024, Month: 1, Day: 1}

	s.Append(obs(d, "172"))
	assert.Equal(t, uint64(1), s.Version())
	s.Append(obs(d, "173"))
	assert.Equal(t, uint64(2), s.Version())
	s.Append(obs(d.AddDays(1), "174"))
	assert.Equal(t, uint64(3), s.Version())
}

func TestMemRateSeriesTailReturnsCopy(t *testing.T) {
	s := NewMemRateSeries()
	d := civil.Date{Year: 2024, Month: 1, Day: 1}
	s.Append(obs(d, "172"))

	tail := s.Tail(1)
	tail[0].Source = "mutated"

	again := s.Tail(1)
	assert.Equal(t, "test", again[0].Source)
}
