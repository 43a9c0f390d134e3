package api

import (
	"YenDong/internal/domain/models"
)

// isoMillis matches JavaScript's Date.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type currentRateResponse struct {
	Rate      float64 `json:"rate"`
	Timestamp string  `json:"timestamp"`
}

type historyPointResponse struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

type forecastPointResponse struct {
	Date       string     `json:"date"`
	Rate       float64    `json:"rate"`
	Confidence [2]float64 `json:"confidence"`
}

type suggestionResponse struct {
	Suggestion models.Suggestion `json:"suggestion"`
}

func toCurrentRate(c models.CurrentRate) currentRateResponse {
	return currentRateResponse{
		Rate:      c.Rate.InexactFloat64(),
		Timestamp: c.Timestamp.UTC().Format(isoMillis),
	}
}

func toHistory(pts []models.HistoryPoint) []historyPointResponse {
	out := make([]historyPointResponse, len(pts))
	for i, p := range pts {
		out[i] = historyPointResponse{
			Date: p.Date.String(),
			Rate: p.Rate.InexactFloat64(),
		}
	}
	return out
}

func toForecast(pts []models.ForecastPoint) []forecastPointResponse {
	out := make([]forecastPointResponse, len(pts))
	for i, p := range pts {
		out[i] = forecastPointResponse{
			Date:       p.Date.String(),
			Rate:       p.Rate.InexactFloat64(),
			Confidence: [2]float64{p.ConfidenceLower.InexactFloat64(), p.ConfidenceUpper.InexactFloat64()},
		}
	}
	return out
}
