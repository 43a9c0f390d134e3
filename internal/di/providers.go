package di

import (
	"fmt"
	"math/rand"
	"time"

	"YenDong/internal/domain/repository"
	domsvc "YenDong/internal/domain/service"
	"YenDong/internal/handler/api"
	"YenDong/internal/handler/ws"
	internalrepo "YenDong/internal/repository"
	"YenDong/internal/scheduler"
	"YenDong/internal/seed"
	"YenDong/internal/services/analytics"
	"YenDong/internal/usecase"
	"YenDong/pkg/cache"
	"YenDong/pkg/config"
	xhttp "YenDong/pkg/http"
	pkgkafka "YenDong/pkg/kafka"
	"YenDong/pkg/logger"
	"YenDong/pkg/metrics"
	"YenDong/pkg/ratelimit"
	"YenDong/pkg/server"
	"YenDong/pkg/util"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// ProvideLogger builds the process logger from the logging section.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(logger.String("env", cfg.Environment)), nil
}

// ProvideLocation resolves the zone that decides today's date.
func ProvideLocation(cfg *config.Config) (*time.Location, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	return loc, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache selects the cache backend. "none" disables caching.
func ProvideCache(cfg *config.Config) (cache.Store, error) {
	c := cfg.Cache
	switch c.Backend {
	case "none":
		return cache.Nop{}, nil
	case "memory":
		return cache.NewMemoryCache(cache.WithMemoryMaxSize(c.MemoryMaxSize)), nil
	}

	remote, err := cache.NewRedisCache(
		cache.WithRedisHost(c.Redis.Host),
		cache.WithRedisPort(c.Redis.Port),
		cache.WithRedisPassword(c.Redis.Password),
		cache.WithRedisDB(c.Redis.DB),
		cache.WithRedisPrefix(c.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	if c.Backend == "layered" {
		return cache.NewLayeredCache(remote, c.MemoryMaxSize), nil
	}
	return remote, nil
}

// ProvidePublisher creates the Kafka event publisher. It returns nil when events are
// disabled, and the services then fall back to dropping events.
func ProvidePublisher(cfg *config.Config) (repository.EventPublisher, error) {
	if cfg.Events.Backend != "kafka" {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Events.Brokers),
		pkgkafka.WithCompression(cfg.Events.Compression),
		pkgkafka.WithRequiredAcks(cfg.Events.RequiredAcks),
		pkgkafka.WithAsync(cfg.Events.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Events.Topic), nil
}

// ProvideRateSeries creates the rate series, seeded with synthetic history ending today when enabled.
func ProvideRateSeries(cfg *config.Config, loc *time.Location) repository.RateSeries {
	series := internalrepo.NewMemRateSeries()
	if cfg.Seed.Enabled {
		today := util.DateIn(time.Now(), loc)
		for _, obs := range seed.History(today, cfg.Seed, newRand()) {
			series.Append(obs)
		}
	}
	return series
}

func ProvideAlertRegistry() repository.AlertRegistry {
	return internalrepo.NewMemAlertRegistry()
}

// ProvidePollRegistry creates the poll registry, pre-filled with synthetic votes when seeding is enabled.
func ProvidePollRegistry(cfg *config.Config) repository.PollRegistry {
	reg := internalrepo.NewMemPollRegistry()
	if cfg.Seed.Enabled {
		now := time.Now()
		for _, label := range seed.Votes(cfg.Seed.PollVotes, newRand()) {
			reg.Create(label, now)
		}
	}
	return reg
}

func ProvideForecaster() domsvc.Forecaster {
	return analytics.NewLinearForecaster(newRand())
}

func ProvideClassifier() domsvc.TrendClassifier {
	return analytics.NewThresholdClassifier()
}

// ProvideServiceOptions collects the shared dependencies of every dashboard service.
func ProvideServiceOptions(
	cfg *config.Config,
	log *logger.Logger,
	loc *time.Location,
	m repository.Metrics,
	pub repository.EventPublisher,
	store cache.Store,
) []usecase.Option {
	return []usecase.Option{
		usecase.WithLogger(log),
		usecase.WithLocation(loc),
		usecase.WithMetrics(m),
		usecase.WithPublisher(pub),
		usecase.WithCache(store, cfg.Cache.TTL),
	}
}

func ProvideRateService(series repository.RateSeries, f domsvc.Forecaster, c domsvc.TrendClassifier, opts []usecase.Option) *usecase.RateService {
	return usecase.NewRateService(series, f, c, opts...)
}

func ProvideAlertService(reg repository.AlertRegistry, opts []usecase.Option) *usecase.AlertService {
	return usecase.NewAlertService(reg, opts...)
}

func ProvidePollService(reg repository.PollRegistry, opts []usecase.Option) *usecase.PollService {
	return usecase.NewPollService(reg, opts...)
}

func ProvideHub(log *logger.Logger) *ws.Hub {
	return ws.NewHub(log)
}

// ProvideRateRoller continues the seed wave from the last seeded date.
func ProvideRateRoller(
	cfg *config.Config,
	loc *time.Location,
	rates *usecase.RateService,
	series repository.RateSeries,
	hub *ws.Hub,
	opts []usecase.Option,
) *usecase.RateRoller {
	anchor := util.DateIn(time.Now(), loc)
	if latest, ok := series.Latest(); ok {
		anchor = latest.Date
	}
	return usecase.NewRateRoller(rates, series, seed.NewWave(cfg.Seed, newRand()), anchor, hub, opts...)
}

// ProvideScheduler returns nil when the roller is disabled. Daily buckets start at midnight in loc.
func ProvideScheduler(cfg *config.Config, log *logger.Logger, loc *time.Location) (*scheduler.Scheduler, error) {
	if !cfg.Roller.Enabled {
		return nil, nil
	}
	return scheduler.New(scheduler.Options{
		Interval:     cfg.Roller.Interval,
		AlignToStart: cfg.Roller.Align,
		RunOnStart:   true,
		Location:     loc,
	}, log)
}

// ProvideLimiter returns nil when write rate limiting is disabled.
func ProvideLimiter(cfg *config.Config) *ratelimit.Limiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec)
}

// ProvideHandlers lists every route group mounted on the HTTP server.
func ProvideHandlers(
	log *logger.Logger,
	rates *usecase.RateService,
	alerts *usecase.AlertService,
	polls *usecase.PollService,
	hub *ws.Hub,
	limiter *ratelimit.Limiter,
) []xhttp.Handler {
	return []xhttp.Handler{
		api.NewDashboardHandler(log, rates, alerts, polls, limiter),
		ws.NewRateStreamHandler(hub, rates, log),
	}
}

func ProvideHTTPServer(cfg *config.Config, log *logger.Logger, handlers []xhttp.Handler) *xhttp.Server {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	return xhttp.NewServer(log, handlers,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithMetricsPath(metricsPath),
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	httpServer *xhttp.Server,
	hub *ws.Hub,
	roller *usecase.RateRoller,
	sched *scheduler.Scheduler,
	pub repository.EventPublisher,
	store cache.Store,
	limiter *ratelimit.Limiter,
) *server.App {
	return server.New(cfg, log, httpServer, hub, roller, sched, pub, store, limiter)
}

// ProvideExportRates builds a standalone rate service with no cache, events or metrics.
func ProvideExportRates(series repository.RateSeries, f domsvc.Forecaster, c domsvc.TrendClassifier, loc *time.Location) *usecase.RateService {
	return usecase.NewRateService(series, f, c, usecase.WithLocation(loc))
}
