package usecase

import (
	"context"
	"strconv"

	"YenDong/internal/domain/models"
	drepo "YenDong/internal/domain/repository"
	"YenDong/pkg/logger"
)

type PollService struct {
	deps
	registry drepo.PollRegistry
}

func NewPollService(registry drepo.PollRegistry, opts ...Option) *PollService {
	d := newDeps(opts)
	d.log = d.log.With(logger.String("component", "poll_service"))
	return &PollService{deps: d, registry: registry}
}

func (s *PollService) Vote(ctx context.Context, label models.VoteLabel) models.Vote {
	v := s.registry.Create(label, s.clock())
	s.metrics.RecordVote(string(v.Vote))
	s.publish(ctx, models.NewEvent(models.EventVoteCreated, strconv.FormatInt(v.ID, 10), v.Created, v))
	return v
}

// Summary counts votes per label. Percentages are rounded half up and are all 0 when there are no votes.
func (s *PollService) Summary(_ context.Context) models.PollSummary {
	counts, total := s.registry.Counts()
	bucket := func(l models.VoteLabel) models.PollBucket {
		return models.PollBucket{Count: counts[l], Percentage: percentage(counts[l], total)}
	}
	return models.PollSummary{
		Yes:     bucket(models.VoteYes),
		Neutral: bucket(models.VoteNeutral),
		No:      bucket(models.VoteNo),
		Total:   total,
	}
}

// percentage returns round(count/total*100) with halves rounded up, in integer arithmetic.
func percentage(count, total int) int {
	if total <= 0 {
		return 0
	}
	return (count*200 + total) / (2 * total)
}
