package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	drepo "YenDong/internal/domain/repository"
	"YenDong/internal/handler/ws"
	"YenDong/internal/scheduler"
	"YenDong/internal/usecase"
	"YenDong/pkg/cache"
	"YenDong/pkg/config"
	xhttp "YenDong/pkg/http"
	"YenDong/pkg/logger"
	"YenDong/pkg/ratelimit"
)

const limiterIdle = 10 * time.Minute

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *logger.Logger
	httpServer *xhttp.Server
	hub        *ws.Hub
	roller     *usecase.RateRoller
	sched      *scheduler.Scheduler
	publisher  drepo.EventPublisher
	cache      cache.Store
	limiter    *ratelimit.Limiter
}

// New creates a new App instance with all dependencies. sched and limiter may be nil.
func New(
	cfg *config.Config,
	log *logger.Logger,
	httpServer *xhttp.Server,
	hub *ws.Hub,
	roller *usecase.RateRoller,
	sched *scheduler.Scheduler,
	publisher drepo.EventPublisher,
	store cache.Store,
	limiter *ratelimit.Limiter,
) *App {
	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: httpServer,
		hub:        hub,
		roller:     roller,
		sched:      sched,
		publisher:  publisher,
		cache:      store,
		limiter:    limiter,
	}
}

// Run starts background jobs and the HTTP server, then blocks until ctx is
// cancelled, an interrupt arrives, or the server fails.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobsCtx, cancelJobs := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		a.hub.Run(jobsCtx)
	}()

	if a.sched != nil && a.roller != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := a.sched.Run(jobsCtx, a.roller.Tick); err != nil {
				a.log.Error("rate roller stopped", logger.Error(err))
			}
		}()
		a.log.Info("rate roller started", logger.Duration("interval", a.cfg.Roller.Interval))
	}

	if a.limiter != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.pruneLimiter(jobsCtx)
		}()
	}

	errCh := a.httpServer.Start()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	case err, ok := <-errCh:
		if ok && err != nil {
			a.log.Error("http server error", logger.Error(err))
			runErr = err
		}
	}

	a.shutdown(cancelJobs, &wg)
	return runErr
}

func (a *App) pruneLimiter(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.limiter.Prune(limiterIdle); n > 0 {
				a.log.Debug("pruned idle rate limit buckets", logger.Int("count", n))
			}
		}
	}
}

// shutdown stops the HTTP server first so no request observes closed dependencies.
func (a *App) shutdown(cancelJobs context.CancelFunc, wg *sync.WaitGroup) {
	a.log.Info("shutting down...")

	if err := a.httpServer.Stop(context.Background()); err != nil {
		a.log.Error("http shutdown error", logger.Error(err))
	}

	cancelJobs()
	wg.Wait()

	var errs []error
	if a.publisher != nil {
		errs = append(errs, a.publisher.Close())
	}
	if a.cache != nil {
		errs = append(errs, a.cache.Close())
	}
	if err := errors.Join(errs...); err != nil {
		a.log.Warn("resource close error", logger.Error(err))
	}

	a.log.Info("shutdown complete")
}
