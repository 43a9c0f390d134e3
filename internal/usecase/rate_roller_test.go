package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"YenDong/internal/domain/models"
	"YenDong/internal/repository"
	"YenDong/internal/seed"
	"YenDong/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoller(t *testing.T, series *repository.MemRateSeries, pub *recordingPublisher, n *recordingNotifier) *RateRoller {
	t.Helper()
	opts := []Option{WithClock(fixedClock), WithLocation(time.UTC), WithPublisher(pub)}
	rates := newRateService(series, opts...)
	wave := seed.NewWave(config.Default().Seed, rand.New(rand.NewSource(3)))
	return NewRateRoller(rates, series, wave, fixedDay(), n, opts...)
}

func TestRollerNoopWhenTodayPresent(t *testing.T) {
	series := seriesOf(t, "170", "171")
	pub := &recordingPublisher{}
	n := &recordingNotifier{}

	require.NoError(t, newRoller(t, series, pub, n).Tick(context.Background(), fixedNow))
	assert.Len(t, series.Tail(10), 2)
	assert.Empty(t, pub.events)
	assert.Empty(t, n.rates)
}

func TestRollerBackfillsMissingDays(t *testing.T) {
	series := seriesOf(t, "170", "171")
	pub := &recordingPublisher{}
	n := &recordingNotifier{}
	r := newRoller(t, series, pub, n)

	require.NoError(t, r.Tick(context.Background(), fixedNow.Add(72*time.Hour)))

	assert.Len(t, series.Tail(10), 5)
	latest, ok := series.Latest()
	require.True(t, ok)
	assert.Equal(t, fixedDay().AddDays(3), latest.Date)
	assert.Equal(t, seed.RollSource, latest.Source)

	assert.Equal(t, []string{models.EventRateAppended, models.EventRateAppended, models.EventRateAppended}, pub.types())
	require.Len(t, n.rates, 1)
	assert.True(t, n.rates[0].Rate.Equal(latest.Rate))
}

func TestRollerStartsAtTodayOnEmptySeries(t *testing.T) {
	series := repository.NewMemRateSeries()
	r := newRoller(t, series, &recordingPublisher{}, &recordingNotifier{})

	require.NoError(t, r.Tick(context.Background(), fixedNow))
	tail := series.Tail(10)
	require.Len(t, tail, 1)
	assert.Equal(t, fixedDay(), tail[0].Date)
}
