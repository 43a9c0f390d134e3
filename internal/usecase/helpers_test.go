package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"YenDong/internal/domain/models"
	"YenDong/internal/repository"
	"YenDong/internal/services/analytics"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func fixedDay() civil.Date { return civil.DateOf(fixedNow) }

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev models.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

var errBroker = errors.New("broker down")

type countingMetrics struct {
	mu            sync.Mutex
	alerts        int
	votes         map[string]int
	rate          float64
	publishErrors map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{votes: map[string]int{}, publishErrors: map[string]int{}}
}

func (m *countingMetrics) RecordAlertCreated() {
	m.mu.Lock()
	m.alerts++
	m.mu.Unlock()
}

func (m *countingMetrics) RecordVote(label string) {
	m.mu.Lock()
	m.votes[label]++
	m.mu.Unlock()
}

func (m *countingMetrics) RecordCurrentRate(rate float64) {
	m.mu.Lock()
	m.rate = rate
	m.mu.Unlock()
}

func (m *countingMetrics) RecordLatency(string, float64) {}

func (m *countingMetrics) RecordPublishError(eventType string) {
	m.mu.Lock()
	m.publishErrors[eventType]++
	m.mu.Unlock()
}

type recordingNotifier struct {
	rates []models.CurrentRate
}

func (n *recordingNotifier) NotifyRate(r models.CurrentRate) { n.rates = append(n.rates, r) }

// seriesOf builds a series whose last date is fixedDay with the given rates, oldest first.
func seriesOf(t *testing.T, rates ...string) *repository.MemRateSeries {
	t.Helper()
	s := repository.NewMemRateSeries()
	last := fixedDay()
	for i, r := range rates {
		s.Append(models.RateObservation{
			Date:   last.AddDays(i - len(rates) + 1),
			Rate:   decimal.RequireFromString(r),
			Source: "test",
		})
	}
	return s
}

func newRateService(series *repository.MemRateSeries, opts ...Option) *RateService {
	opts = append([]Option{WithClock(fixedClock), WithLocation(time.UTC)}, opts...)
	return NewRateService(series,
		analytics.NewLinearForecaster(rand.New(rand.NewSource(1))),
		analytics.NewThresholdClassifier(),
		opts...,
	)
}
