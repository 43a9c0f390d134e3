package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventAlertCreated = "alert.created"
	EventVoteCreated  = "vote.created"
	EventRateAppended = "rate.appended"
)

// Event is the envelope published for every registry insertion.
type Event struct {
	ID         uuid.UUID   `json:"id"`
	Type       string      `json:"type"`
	Key        string      `json:"key"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// NewEvent stamps a fresh id on an envelope.
func NewEvent(typ, key string, at time.Time, payload interface{}) Event {
	return Event{ID: uuid.New(), Type: typ, Key: key, OccurredAt: at, Payload: payload}
}
