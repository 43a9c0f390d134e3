package seed

import (
	"math/rand"
	"testing"

	"YenDong/internal/domain/models"
	"YenDong/pkg/config"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCoversThirtyOneDaysEndingToday(t *testing.T) {
	cfg := config.Default().Seed
	today := civil.Date{Year: 2024, Month: 3, Day: 15}

	obs := History(today, cfg, rand.New(rand.NewSource(1)))

	require.Len(t, obs, 31)
	assert.Equal(t, civil.Date{Year: 2024, Month: 2, Day: 14}, obs[0].Date)
	assert.Equal(t, today, obs[30].Date)

	lo := decimal.NewFromFloat(172.3 - 3)
	hi := decimal.NewFromFloat(172.3 + 3 + 0.5)
	for i, o := range obs {
		assert.Equal(t, "mock-data", o.Source)
		assert.True(t, o.Rate.GreaterThanOrEqual(lo) && o.Rate.LessThanOrEqual(hi), "rate %s out of band", o.Rate)
		if i > 0 {
			assert.True(t, obs[i-1].Date.Before(o.Date))
		}
	}
}

func TestWaveWithoutJitterIsDeterministic(t *testing.T) {
	cfg := config.Default().Seed
	cfg.Jitter = 0
	w := NewWave(cfg, rand.New(rand.NewSource(1)))

	assert.True(t, w.At(0).Equal(decimal.RequireFromString("172.3")))
}

func TestVotesDistribution(t *testing.T) {
	votes := Votes(10000, rand.New(rand.NewSource(42)))
	require.Len(t, votes, 10000)

	counts := map[models.VoteLabel]int{}
	for _, v := range votes {
		counts[v]++
	}
	assert.InDelta(t, 6800, counts[models.VoteYes], 300)
	assert.InDelta(t, 2200, counts[models.VoteNeutral], 300)
	assert.InDelta(t, 1000, counts[models.VoteNo], 300)
}
