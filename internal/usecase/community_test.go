package usecase

import (
	"context"
	"testing"

	"YenDong/internal/domain/models"
	"YenDong/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertServiceCreateAndList(t *testing.T) {
	pub := &recordingPublisher{}
	m := newCountingMetrics()
	svc := NewAlertService(repository.NewMemAlertRegistry(), WithClock(fixedClock), WithPublisher(pub), WithMetrics(m))
	ctx := context.Background()

	a := svc.Create(ctx, "me@example.com", 175.5, true)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, fixedNow, a.Created)
	assert.False(t, a.Triggered)
	svc.Create(ctx, "you@example.com", 170, false)

	list := svc.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[1].ID)
	assert.Equal(t, 2, m.alerts)

	require.Len(t, pub.events, 2)
	assert.Equal(t, models.EventAlertCreated, pub.events[0].Type)
	assert.Equal(t, "1", pub.events[0].Key)
}

func TestAlertServicePublishFailureDoesNotFailCreate(t *testing.T) {
	m := newCountingMetrics()
	svc := NewAlertService(repository.NewMemAlertRegistry(),
		WithPublisher(&recordingPublisher{err: errBroker}),
		WithMetrics(m),
	)

	a := svc.Create(context.Background(), "me@example.com", 1, true)
	assert.Equal(t, int64(1), a.ID)
	assert.Len(t, svc.List(context.Background()), 1)
	assert.Equal(t, 1, m.publishErrors[models.EventAlertCreated])
}

func TestPollSummaryZeroVotes(t *testing.T) {
	svc := NewPollService(repository.NewMemPollRegistry())

	s := svc.Summary(context.Background())
	assert.Equal(t, models.PollSummary{}, s)
}

func TestPollSummaryCountsAndRounding(t *testing.T) {
	pub := &recordingPublisher{}
	m := newCountingMetrics()
	svc := NewPollService(repository.NewMemPollRegistry(), WithPublisher(pub), WithMetrics(m))
	ctx := context.Background()

	for _, l := range []models.VoteLabel{models.VoteYes, models.VoteYes, models.VoteNeutral} {
		svc.Vote(ctx, l)
	}

	s := svc.Summary(ctx)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, models.PollBucket{Count: 2, Percentage: 67}, s.Yes)
	assert.Equal(t, models.PollBucket{Count: 1, Percentage: 33}, s.Neutral)
	assert.Equal(t, models.PollBucket{Count: 0, Percentage: 0}, s.No)
	assert.Equal(t, 2, m.votes["yes"])
	assert.Equal(t, []string{models.EventVoteCreated, models.EventVoteCreated, models.EventVoteCreated}, pub.types())
}

func TestPollSummaryPercentagesSumNearHundred(t *testing.T) {
	svc := NewPollService(repository.NewMemPollRegistry())
	ctx := context.Background()
	for i := 0; i < 1400; i++ {
		switch {
		case i%7 == 0:
			svc.Vote(ctx, models.VoteNo)
		case i%3 == 0:
			svc.Vote(ctx, models.VoteNeutral)
		default:
			svc.Vote(ctx, models.VoteYes)
		}
	}

	s := svc.Summary(ctx)
	assert.Equal(t, 1400, s.Total)
	assert.Equal(t, s.Total, s.Yes.Count+s.Neutral.Count+s.No.Count)
	assert.InDelta(t, 100, s.Yes.Percentage+s.Neutral.Percentage+s.No.Percentage, 1)
}

func TestPercentageRoundsHalfUp(t *testing.T) {
	assert.Equal(t, 0, percentage(0, 0))
	assert.Equal(t, 50, percentage(1, 2))
	assert.Equal(t, 13, percentage(1, 8)) // 12.5
	assert.Equal(t, 38, percentage(3, 8)) // 37.5
	assert.Equal(t, 100, percentage(5, 5))
}
