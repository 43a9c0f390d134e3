package usecase

import (
	"time"

	drepo "YenDong/internal/domain/repository"
	domsvc "YenDong/internal/domain/service"
	"YenDong/pkg/cache"
	"YenDong/pkg/logger"
	"YenDong/pkg/metrics"
	"YenDong/pkg/util"

	"cloud.google.com/go/civil"
)

// Option configures the dashboard services.
type Option func(*deps)

type deps struct {
	log      *logger.Logger
	metrics  drepo.Metrics
	pub      drepo.EventPublisher
	cache    cache.Store
	cacheTTL time.Duration
	clock    domsvc.Clock
	loc      *time.Location
}

func newDeps(opts []Option) deps {
	d := deps{
		log:      logger.Nop(),
		metrics:  metrics.Nop{},
		pub:      nopPublisher{},
		cache:    cache.Nop{},
		cacheTTL: time.Minute,
		clock:    time.Now,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func (d deps) today() civil.Date {
	return util.DateIn(d.clock(), d.loc)
}

// WithLogger sets the structured logger.
func WithLogger(l *logger.Logger) Option {
	return func(d *deps) {
		if l != nil {
			d.log = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m drepo.Metrics) Option {
	return func(d *deps) {
		if m != nil {
			d.metrics = m
		}
	}
}

// WithPublisher sets where domain events go.
func WithPublisher(p drepo.EventPublisher) Option {
	return func(d *deps) {
		if p != nil {
			d.pub = p
		}
	}
}

// WithCache puts derived rate views behind c for ttl.
func WithCache(c cache.Store, ttl time.Duration) Option {
	return func(d *deps) {
		if c != nil {
			d.cache = c
			d.cacheTTL = ttl
		}
	}
}

// WithClock overrides time.Now.
func WithClock(c domsvc.Clock) Option {
	return func(d *deps) {
		if c != nil {
			d.clock = c
		}
	}
}

// WithLocation sets the zone used to derive today's date.
func WithLocation(loc *time.Location) Option {
	return func(d *deps) {
		if loc != nil {
			d.loc = loc
		}
	}
}
