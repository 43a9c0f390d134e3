package usecase

import (
	"context"
	"time"

	"YenDong/internal/domain/models"
	drepo "YenDong/internal/domain/repository"
	"YenDong/internal/seed"
	"YenDong/pkg/logger"
	"YenDong/pkg/util"

	"cloud.google.com/go/civil"
)

// maxBackfillDays bounds how many missing days a single tick fills in.
const maxBackfillDays = 366

// RateRoller keeps the synthetic series current in a long-running process by
// appending one observation per missing day up to today.
type RateRoller struct {
	deps
	rates    *RateService
	series   drepo.RateSeries
	wave     *seed.Wave
	anchor   civil.Date
	notifier drepo.RateNotifier
}

// NewRateRoller continues wave from anchor, the date the seed history ends on.
func NewRateRoller(rates *RateService, series drepo.RateSeries, wave *seed.Wave, anchor civil.Date, notifier drepo.RateNotifier, opts ...Option) *RateRoller {
	d := newDeps(opts)
	d.log = d.log.With(logger.String("component", "rate_roller"))
	return &RateRoller{deps: d, rates: rates, series: series, wave: wave, anchor: anchor, notifier: notifier}
}

// Tick matches scheduler.TickFunc. Days already present are left untouched.
func (r *RateRoller) Tick(ctx context.Context, at time.Time) error {
	today := util.DateIn(at, r.loc)

	from := today
	if latest, ok := r.series.Latest(); ok {
		if !latest.Date.Before(today) {
			return nil
		}
		from = latest.Date.AddDays(1)
	}
	if util.DaysBetween(from, today) >= maxBackfillDays {
		from = today.AddDays(-(maxBackfillDays - 1))
	}

	appended := 0
	for d := from; !d.After(today); d = d.AddDays(1) {
		if err := ctx.Err(); err != nil {
			return err
		}
		obs := models.RateObservation{
			Date:   d,
			Rate:   r.wave.At(util.DaysBetween(d, r.anchor)),
			Source: seed.RollSource,
		}
		if !r.rates.Record(ctx, obs) {
			continue
		}
		appended++
		r.publish(ctx, models.NewEvent(models.EventRateAppended, d.String(), r.clock(), rateAppended{
			Date:   d.String(),
			Rate:   obs.Rate.InexactFloat64(),
			Source: obs.Source,
		}))
	}

	if appended > 0 {
		current := r.rates.CurrentRate(ctx)
		if r.notifier != nil {
			r.notifier.NotifyRate(current)
		}
		r.log.Info("rate series rolled forward",
			logger.Int("appended", appended),
			logger.String("through", today.String()),
			logger.String("rate", current.Rate.String()),
		)
	}
	return nil
}

type rateAppended struct {
	Date   string  `json:"date"`
	Rate   float64 `json:"rate"`
	Source string  `json:"source"`
}
