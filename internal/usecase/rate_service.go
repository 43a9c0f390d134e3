package usecase

import (
	"context"
	"time"

	"YenDong/internal/domain/models"
	drepo "YenDong/internal/domain/repository"
	domsvc "YenDong/internal/domain/service"
	"YenDong/pkg/cache"
	"YenDong/pkg/logger"

	"github.com/shopspring/decimal"
)

const (
	rateCachePrefix = "rate"
	suggestionDays  = 7
)

var fallbackRate = decimal.NewFromFloat(models.FallbackRate)

// RateService answers current, history, forecast and suggestion queries over a RateSeries.
type RateService struct {
	deps
	series     drepo.RateSeries
	forecaster domsvc.Forecaster
	classifier domsvc.TrendClassifier
}

func NewRateService(series drepo.RateSeries, forecaster domsvc.Forecaster, classifier domsvc.TrendClassifier, opts ...Option) *RateService {
	d := newDeps(opts)
	d.log = d.log.With(logger.String("component", "rate_service"))
	return &RateService{deps: d, series: series, forecaster: forecaster, classifier: classifier}
}

// CurrentRate returns the latest observed rate, or the fallback when the series is empty.
func (s *RateService) CurrentRate(_ context.Context) models.CurrentRate {
	rate := s.latestRate()
	f, _ := rate.Float64()
	s.metrics.RecordCurrentRate(f)
	return models.CurrentRate{Rate: rate, Timestamp: s.clock()}
}

// History returns the days most recent observations, oldest first. It is a count suffix, not a date range.
func (s *RateService) History(ctx context.Context, days int) []models.HistoryPoint {
	defer s.observe("history", time.Now())
	if days <= 0 {
		return []models.HistoryPoint{}
	}

	key := cache.GenerateKeyWithParams(rateCachePrefix, "history", s.series.Version(), days)
	out, _ := cache.GetOrLoad(ctx, s.cache, key, s.cacheTTL, func() ([]models.HistoryPoint, error) {
		return s.history(days), nil
	})
	return out
}

// Forecast projects days points starting tomorrow. Never cached since every call draws fresh noise.
func (s *RateService) Forecast(_ context.Context, days int) []models.ForecastPoint {
	defer s.observe("forecast", time.Now())
	return s.forecaster.Forecast(s.latestRate(), s.today(), days)
}

// Suggestion classifies the trend across the last week of observations.
func (s *RateService) Suggestion(ctx context.Context) models.Suggestion {
	defer s.observe("suggestion", time.Now())

	key := cache.GenerateKeyWithParams(rateCachePrefix, "suggestion", s.series.Version())
	out, _ := cache.GetOrLoad(ctx, s.cache, key, s.cacheTTL, func() (models.Suggestion, error) {
		return s.classifier.Classify(s.history(suggestionDays)), nil
	})
	return out
}

// Record stores obs and drops cached views derived from the series. Reports whether the date was new.
// Cache keys carry the series version, so a load racing this append can only fill a key no later read uses.
func (s *RateService) Record(ctx context.Context, obs models.RateObservation) bool {
	added := s.series.Append(obs)
	if err := s.cache.DeleteByPattern(ctx, cache.BuildPattern(rateCachePrefix)); err != nil {
		s.log.Warn("rate cache invalidation failed", logger.Error(err))
	}
	return added
}

func (s *RateService) latestRate() decimal.Decimal {
	if obs, ok := s.series.Latest(); ok {
		return obs.Rate
	}
	return fallbackRate
}

func (s *RateService) history(days int) []models.HistoryPoint {
	tail := s.series.Tail(days)
	out := make([]models.HistoryPoint, len(tail))
	for i, o := range tail {
		out[i] = models.HistoryPoint{Date: o.Date, Rate: o.Rate}
	}
	return out
}

func (s *RateService) observe(op string, start time.Time) {
	s.metrics.RecordLatency(op, time.Since(start).Seconds())
}
