package service

import (
	"time"

	"YenDong/internal/domain/models"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Forecaster projects future rates from the current one.
type Forecaster interface {
	Forecast(current decimal.Decimal, from civil.Date, days int) []models.ForecastPoint
}

// TrendClassifier maps a chronological window of rates to a suggestion.
type TrendClassifier interface {
	Classify(window []models.HistoryPoint) models.Suggestion
}

// Clock returns the current time. Injected so tests can pin "today".
type Clock func() time.Time
