package models

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// FallbackRate is reported as the current rate while no observation exists.
const FallbackRate = 172.3

// RateObservation is a single dated JPY→VND rate. At most one exists per date.
type RateObservation struct {
	Date   civil.Date
	Rate   decimal.Decimal
	Source string
}

// CurrentRate is the latest rate and the instant it was read.
type CurrentRate struct {
	Rate      decimal.Decimal
	Timestamp time.Time
}

// HistoryPoint is the date/rate projection of an observation.
type HistoryPoint struct {
	Date civil.Date
	Rate decimal.Decimal
}

// ForecastPoint is a projected rate with a symmetric confidence band.
type ForecastPoint struct {
	Date            civil.Date
	Rate            decimal.Decimal
	ConfidenceLower decimal.Decimal
	ConfidenceUpper decimal.Decimal
}

// Width returns ConfidenceUpper - ConfidenceLower.
func (p ForecastPoint) Width() decimal.Decimal {
	return p.ConfidenceUpper.Sub(p.ConfidenceLower)
}

// Suggestion is the coarse trend signal derived from the last week of rates.
type Suggestion string

const (
	SuggestionGood    Suggestion = "good"
	SuggestionNeutral Suggestion = "neutral"
	SuggestionBad     Suggestion = "bad"
)
