package models

// Requests for the dashboard HTTP endpoints. Defined in domain for consistency and reuse.

type HistoryRequest struct {
	Days int `query:"days" json:"days" default:"30" validate:"gte=1"`
}

// ForecastRequest caps days because every requested point is generated per call.
type ForecastRequest struct {
	Days int `query:"days" json:"days" default:"7" validate:"gte=1,lte=365"`
}

type CreateAlertRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	TargetRate float64 `json:"targetRate" validate:"required,gt=0"`
	IsAbove    *bool   `json:"isAbove" validate:"required"`
}

type CreateVoteRequest struct {
	Vote string `json:"vote" validate:"required,oneof=yes neutral no"`
}
