package analytics

import (
	"YenDong/internal/domain/models"
	domsvc "YenDong/internal/domain/service"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ThresholdClassifier compares the first and last rate of a window.
// A change strictly above +threshold percent is good, strictly below -threshold is bad.
type ThresholdClassifier struct {
	threshold decimal.Decimal
}

func NewThresholdClassifier() *ThresholdClassifier {
	return &ThresholdClassifier{threshold: decimal.NewFromInt(1)}
}

func (c *ThresholdClassifier) Classify(window []models.HistoryPoint) models.Suggestion {
	if len(window) < 2 {
		return models.SuggestionNeutral
	}

	pct := PercentChange(window)
	switch {
	case pct.GreaterThan(c.threshold):
		return models.SuggestionGood
	case pct.LessThan(c.threshold.Neg()):
		return models.SuggestionBad
	default:
		return models.SuggestionNeutral
	}
}

// PercentChange returns (last-first)/first*100 over window, or zero when undefined.
func PercentChange(window []models.HistoryPoint) decimal.Decimal {
	if len(window) < 2 || window[0].Rate.IsZero() {
		return decimal.Zero
	}
	first := window[0].Rate
	return window[len(window)-1].Rate.Sub(first).Mul(hundred).Div(first)
}

var _ domsvc.TrendClassifier = (*ThresholdClassifier)(nil)
