// Package seed generates the synthetic rate history and poll votes a fresh
// process starts with.
package seed

import (
	"math"
	"math/rand"

	"YenDong/internal/domain/models"
	"YenDong/pkg/config"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// RollSource marks observations appended by the roll-forward job.
const RollSource = "mock-roll"

// Wave produces the sine-wave-plus-noise rate for a day offset.
// Offset is measured in days before the anchor date, so negative offsets lie after it.
type Wave struct {
	cfg config.SeedConfig
	rng *rand.Rand
}

func NewWave(cfg config.SeedConfig, rng *rand.Rand) *Wave {
	return &Wave{cfg: cfg, rng: rng}
}

// At returns base + sin(offset/period)*amplitude + U[0, jitter), rounded to 2 places.
func (w *Wave) At(offset int) decimal.Decimal {
	v := w.cfg.BaseRate + math.Sin(float64(offset)/w.cfg.Period)*w.cfg.Amplitude
	if w.cfg.Jitter > 0 {
		v += w.rng.Float64() * w.cfg.Jitter
	}
	return decimal.NewFromFloat(v).Round(2)
}

// History returns HistoryDays+1 observations ending at today, oldest first.
func History(today civil.Date, cfg config.SeedConfig, rng *rand.Rand) []models.RateObservation {
	if cfg.HistoryDays < 0 {
		return nil
	}
	w := NewWave(cfg, rng)
	out := make([]models.RateObservation, 0, cfg.HistoryDays+1)
	for i := cfg.HistoryDays; i >= 0; i-- {
		out = append(out, models.RateObservation{
			Date:   today.AddDays(-i),
			Rate:   w.At(i),
			Source: cfg.Source,
		})
	}
	return out
}

// Votes draws n labels: yes with p=0.68, neutral with p=0.22, no otherwise.
func Votes(n int, rng *rand.Rand) []models.VoteLabel {
	out := make([]models.VoteLabel, n)
	for i := range out {
		u := rng.Float64()
		switch {
		case u < 0.68:
			out[i] = models.VoteYes
		case u < 0.9:
			out[i] = models.VoteNeutral
		default:
			out[i] = models.VoteNo
		}
	}
	return out
}
