package repository

import (
	"context"
	"time"

	"YenDong/internal/domain/models"
)

// RateSeries holds dated observations, at most one per calendar date.
type RateSeries interface {
	// Append inserts obs, replacing any observation on the same date. Reports whether the date was new.
	Append(obs models.RateObservation) bool
	Latest() (models.RateObservation, bool)
	// Tail returns the n chronologically latest observations in ascending order.
	Tail(n int) []models.RateObservation
	// Version increases on every Append. Views derived from the series are keyed by it.
	Version() uint64
}

type AlertRegistry interface {
	Create(email string, targetRate float64, isAbove bool, created time.Time) models.Alert
	List() []models.Alert
}

type PollRegistry interface {
	Create(label models.VoteLabel, created time.Time) models.Vote
	// Counts returns per-label counts and the total in one consistent read.
	Counts() (map[models.VoteLabel]int, int)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev models.Event) error
	Close() error
}

type Metrics interface {
	RecordAlertCreated()
	RecordVote(label string)
	RecordCurrentRate(rate float64)
	RecordLatency(op string, seconds float64)
	RecordPublishError(eventType string)
}

// RateNotifier pushes a new current rate to live subscribers.
type RateNotifier interface {
	NotifyRate(rate models.CurrentRate)
}
