//go:build wireinject
// +build wireinject

package di

import (
	"YenDong/internal/usecase"
	"YenDong/pkg/config"
	"YenDong/pkg/server"

	"github.com/google/wire"
)

var storeSet = wire.NewSet(
	ProvideLocation,
	ProvideRateSeries,
	ProvideForecaster,
	ProvideClassifier,
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideCache,
		ProvidePublisher,

		// Stores
		storeSet,
		ProvideAlertRegistry,
		ProvidePollRegistry,

		// Use cases
		ProvideServiceOptions,
		ProvideRateService,
		ProvideAlertService,
		ProvidePollService,

		// Realtime
		ProvideHub,
		ProvideRateRoller,
		ProvideScheduler,

		// HTTP
		ProvideLimiter,
		ProvideHandlers,
		ProvideHTTPServer,

		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializeExportRates wires a freshly seeded rate service for offline export.
func InitializeExportRates(cfg *config.Config) (*usecase.RateService, error) {
	wire.Build(storeSet, ProvideExportRates)
	return &usecase.RateService{}, nil
}
