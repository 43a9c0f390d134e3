package analytics

import (
	"math/rand"
	"sync"

	"YenDong/internal/domain/models"
	domsvc "YenDong/internal/domain/service"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// LinearForecaster projects a fixed upward drift with noise and a widening band.
// Point i (0-based) is dated from+i+1 with rate r0 + step*i + U[0, noise) and
// band ±(baseBand + bandStep*i).
type LinearForecaster struct {
	mu       sync.Mutex
	rng      *rand.Rand
	step     decimal.Decimal
	noise    float64
	baseBand decimal.Decimal
	bandStep decimal.Decimal
}

// NewLinearForecaster uses the dashboard's drift of 0.5/day, noise 0.2 and band 0.5 + 0.3/day.
func NewLinearForecaster(rng *rand.Rand) *LinearForecaster {
	return &LinearForecaster{
		rng:      rng,
		step:     decimal.RequireFromString("0.5"),
		noise:    0.2,
		baseBand: decimal.RequireFromString("0.5"),
		bandStep: decimal.RequireFromString("0.3"),
	}
}

func (f *LinearForecaster) Forecast(current decimal.Decimal, from civil.Date, days int) []models.ForecastPoint {
	if days <= 0 {
		return []models.ForecastPoint{}
	}

	out := make([]models.ForecastPoint, days)
	for i := 0; i < days; i++ {
		di := decimal.NewFromInt(int64(i))
		rate := current.Add(f.step.Mul(di)).Add(f.jitter())
		band := f.baseBand.Add(f.bandStep.Mul(di))
		out[i] = models.ForecastPoint{
			Date:            from.AddDays(i + 1),
			Rate:            rate,
			ConfidenceLower: rate.Sub(band),
			ConfidenceUpper: rate.Add(band),
		}
	}
	return out
}

// *rand.Rand is not safe for concurrent use.
func (f *LinearForecaster) jitter() decimal.Decimal {
	f.mu.Lock()
	u := f.rng.Float64()
	f.mu.Unlock()
	return decimal.NewFromFloat(u * f.noise)
}

var _ domsvc.Forecaster = (*LinearForecaster)(nil)
