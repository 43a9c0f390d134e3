package scheduler

import (
	"context"
	"errors"
	"time"

	"YenDong/pkg/logger"
	"YenDong/pkg/util"
)

const day = 24 * time.Hour

// TickFunc is invoked on every interval with the start of the bucket it belongs to.
type TickFunc func(ctx context.Context, bucket time.Time) error

// Options tune scheduler behaviour.
type Options struct {
	Interval     time.Duration
	AlignToStart bool
	// RunOnStart fires one tick immediately, before waiting for the first boundary.
	RunOnStart bool
	// Location anchors aligned buckets to its midnights. Nil means UTC.
	// Intervals of a day or more align to whole local days.
	Location *time.Location
}

// Scheduler drives periodic execution of a single job.
type Scheduler struct {
	opts Options
	log  *logger.Logger
	now  func() time.Time
}

// New constructs a Scheduler. It returns an error for a non-positive interval.
func New(opts Options, log *logger.Logger) (*Scheduler, error) {
	if opts.Interval <= 0 {
		return nil, errors.New("scheduler interval must be positive")
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Scheduler{
		opts: opts,
		log:  log.With(logger.String("component", "scheduler")),
		now:  time.Now,
	}, nil
}

// Run blocks, invoking tick at each interval until ctx is cancelled. Tick errors are logged, not returned.
func (s *Scheduler) Run(ctx context.Context, tick TickFunc) error {
	if s.opts.RunOnStart {
		s.fire(ctx, tick, s.now().UTC())
	}

	next := s.nextTick(s.now().UTC())
	for {
		delay := next.Sub(s.now())
		if delay < 0 {
			next = s.nextTick(s.now().UTC())
			delay = next.Sub(s.now())
		}

		timer := time.NewTimer(delay)
		s.log.Debug("waiting for next bucket", logger.String("next", next.Format(time.RFC3339)))

		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		s.fire(ctx, tick, s.bucketStart(next))
		next = s.nextTick(next)
	}
}

func (s *Scheduler) fire(ctx context.Context, tick TickFunc, bucket time.Time) {
	s.log.Debug("executing scheduled tick", logger.String("bucket", bucket.Format(time.RFC3339)))
	if err := tick(ctx, bucket); err != nil && !errors.Is(err, context.Canceled) {
		s.log.Error("tick execution failed", logger.Error(err), logger.String("bucket", bucket.Format(time.RFC3339)))
	}
}

func (s *Scheduler) nextTick(now time.Time) time.Time {
	if !s.opts.AlignToStart {
		return now.Add(s.opts.Interval)
	}
	loc := s.opts.Location
	start := s.bucketStart(now)
	today := util.DateIn(start, loc)
	if s.opts.Interval >= day {
		return util.Midnight(today.AddDays(int(s.opts.Interval/day)), loc)
	}
	next := start.Add(s.opts.Interval)
	// Sub-day buckets restart at every local midnight, DST days included.
	if tomorrow := util.Midnight(today.AddDays(1), loc); next.After(tomorrow) {
		next = tomorrow
	}
	return next
}

func (s *Scheduler) bucketStart(t time.Time) time.Time {
	if !s.opts.AlignToStart {
		return t
	}
	loc := s.opts.Location
	start := util.Midnight(util.DateIn(t, loc), loc)
	if s.opts.Interval >= day {
		return start
	}
	return start.Add(t.Sub(start).Truncate(s.opts.Interval))
}
